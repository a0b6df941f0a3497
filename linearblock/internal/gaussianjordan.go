package internal

import (
	"context"
	"os"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// Elimination configures a GF(2) Gauss-Jordan elimination.
type Elimination struct {
	Threads     int // threads used to clear a pivot column, <=0 uses runtime.NumCPU()
	ProgressBar bool
	Logger      logrus.FieldLogger
}

func (e Elimination) logger() logrus.FieldLogger {
	if e.Logger == nil {
		return logrus.StandardLogger()
	}
	return e.Logger
}

// swapColumns exchanges columns i and j of H and of the ordering.
// SparseMat.SwapColumns is avoided since it misbehaves on CSR matrices.
func swapColumns(H mat.SparseMat, i, j int, ordering []int) {
	if i == j {
		return
	}
	ci := H.Column(i)
	cj := H.Column(j)
	H.SetColumn(i, cj)
	H.SetColumn(j, ci)
	ordering[i], ordering[j] = ordering[j], ordering[i]
}

// pivotColumn finds a column > forRow holding a one in some row >= forRow.
func pivotColumn(H mat.SparseMat, forRow int) int {
	rows, _ := H.Dims()
	for r := forRow; r < rows; r++ {
		nonzero := H.Row(r).NonzeroArray()
		if len(nonzero) == 0 {
			continue
		}
		if col := nonzero[len(nonzero)-1]; col > forRow {
			return col
		}
	}
	return -1
}

// pivotRows returns the rows with a one in column r, swapping in a new column
// when no row >= r has one. It returns nil when the rows are linearly dependent.
func pivotRows(H mat.SparseMat, r int, ordering []int) []int {
	pivots := H.Column(r).NonzeroArray()
	if len(pivots) > 0 && pivots[len(pivots)-1] >= r {
		return pivots
	}

	col := pivotColumn(H, r)
	if col == -1 {
		return nil
	}
	swapColumns(H, r, col, ordering)
	return H.Column(r).NonzeroArray()
}

// clearColumn adds row r to every other row holding a one in column r.
// When below is true only the rows after r are cleared.
func clearColumn(ctx context.Context, H mat.SparseMat, r int, below bool, threads int) {
	pivots := H.Column(r).NonzeroArray()
	pool := threadpool.New(ctx, threads)
	pivotRow := H.Row(r)
	mux := sync.RWMutex{}

	for _, p := range pivots {
		if p == r || (below && p < r) {
			continue
		}
		index := p
		pool.Add(func() {
			mux.RLock()
			row := H.Row(index)
			mux.RUnlock()
			row.Add(row, pivotRow)
			mux.Lock()
			H.SetRow(index, row)
			mux.Unlock()
		})
	}
	pool.Wait()
}

func (e Elimination) bar(rows int, prefix string) *pb.ProgressBar {
	bar := pb.Full.New(rows)
	bar.Set("prefix", prefix)
	bar.SetWriter(os.Stdout)
	if e.ProgressBar {
		bar.Start()
	}
	return bar
}

func finish(bar *pb.ProgressBar) {
	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()
}

// echelon puts the first rows of H in row echelon form with a unit diagonal.
// It returns the number of rows processed; less than rows means rank deficient.
func (e Elimination) echelon(ctx context.Context, H mat.SparseMat, rows int, ordering []int) int {
	bar := e.bar(rows, "Row echelon ")
	defer finish(bar)

	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return -1
		default:
		}
		bar.Increment()

		pivots := pivotRows(H, r, ordering)
		if pivots == nil {
			return r
		}
		H.SwapRows(r, pivots[len(pivots)-1])
		clearColumn(ctx, H, r, true, e.Threads)
	}
	return rows
}

func (e Elimination) reduce(ctx context.Context, H mat.SparseMat, rows int) bool {
	bar := e.bar(rows, "Reduced row echelon ")
	defer finish(bar)

	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		bar.Increment()
		clearColumn(ctx, H, r, false, e.Threads)
	}
	return true
}

// Run transforms a full rank H (rows <= cols) into [I | A] by row operations and column swaps.
// ordering[c] is the column of H that ended up in column c. Run returns nil when H is rank
// deficient or ctx is cancelled. H is not modified.
func (e Elimination) Run(ctx context.Context, H mat.SparseMat) (reduced mat.SparseMat, ordering []int) {
	rows, cols := H.Dims()
	if cols < rows {
		return nil, nil
	}

	reduced = mat.CSRMatCopy(H)
	ordering = make([]int, cols)
	for c := range ordering {
		ordering[c] = c
	}

	// the lower triangle fails fast on dependent rows
	if e.echelon(ctx, reduced, rows, ordering) != rows {
		e.logger().Debugf("Rows of H are not linearly independent")
		return nil, nil
	}
	if !e.reduce(ctx, reduced, rows) {
		return nil, nil
	}

	e.logger().Debugf("Gauss-Jordan elimination complete")
	return reduced, ordering
}

// Rank returns the GF(2) rank of H.
func (e Elimination) Rank(ctx context.Context, H mat.SparseMat) int {
	if H == nil {
		return -1
	}
	rows, cols := H.Dims()
	min := rows
	if cols < rows {
		min = cols
	}
	ordering := make([]int, cols)
	for c := range ordering {
		ordering[c] = c
	}
	return e.echelon(ctx, mat.CSRMatCopy(H), min, ordering)
}
