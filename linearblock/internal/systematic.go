package internal

import (
	"context"

	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

// Systematic reduces a full rank np x n parity check matrix H to [A | I] and returns the
// matching generator G = [I; A] (n x k, k = n-np) in the reordered column space.
// Codeword bit c of the reordered space is bit ordering[c] of the original space.
func (e Elimination) Systematic(ctx context.Context, H mat.SparseMat) (ordering []int, G mat.SparseMat, err error) {
	np, n := H.Dims()
	if np >= n {
		return nil, nil, errors.Errorf("H matrix shape (%v, %v) requires rows < cols", np, n)
	}

	reduced, swaps := e.Run(ctx, H)
	if reduced == nil {
		return nil, nil, errors.New("unable to reduce H to systematic form")
	}
	if !reduced.Slice(0, 0, np, np).Equals(mat.CSRIdentity(np)) {
		return nil, nil, errors.New("reduced H is not of the form [I | A]")
	}

	// [I | A] becomes [A | I]
	k := n - np
	ordering = make([]int, n)
	copy(ordering[0:k], swaps[np:n])
	copy(ordering[k:n], swaps[0:np])

	A := reduced.Slice(0, np, np, k)
	G = mat.DOKMat(n, k)
	G.SetMatrix(mat.CSRIdentity(k), 0, 0)
	G.SetMatrix(A, k, 0)

	e.logger().Debugf("Generator matrix complete")
	return ordering, G, nil
}

// Unorder maps the rows of a matrix built over the reordered column space back to the
// original space: row c of m becomes row ordering[c].
func Unorder(m mat.SparseMat, ordering []int) mat.SparseMat {
	rows, cols := m.Dims()
	if rows != len(ordering) {
		panic("matrix rows must equal ordering length")
	}
	result := mat.CSRMat(rows, cols)
	for c, c1 := range ordering {
		result.SetRow(c1, m.Row(c))
	}
	return result
}

// ColumnSwapped returns H with column c taken from column order[c].
func ColumnSwapped(H mat.SparseMat, order []int) mat.SparseMat {
	rows, cols := H.Dims()
	result := mat.CSRMat(rows, cols)
	for c, c1 := range order {
		result.SetColumn(c, H.Column(c1))
	}
	return result
}

// ValidateHG tests H*G == 0 where G is n x k and H is np x n.
func ValidateHG(H, G mat.SparseMat) bool {
	_, k := G.Dims()
	np, _ := H.Dims()

	// rows of H and columns of G are cached once
	hRows := make([]mat.SparseVector, np)
	for i := range hRows {
		hRows[i] = H.Row(i)
	}
	for j := 0; j < k; j++ {
		col := G.Column(j)
		for _, row := range hRows {
			if row.Dot(col)%2 != 0 {
				return false
			}
		}
	}
	return true
}

// ValidateRG tests R*G == I where R is k x n and G is n x k.
func ValidateRG(R, G mat.SparseMat) bool {
	k, _ := R.Dims()
	_, gk := G.Dims()
	if k != gk {
		return false
	}
	for i := 0; i < k; i++ {
		row := R.Row(i)
		for j := 0; j < k; j++ {
			expected := 0
			if i == j {
				expected = 1
			}
			if row.Dot(G.Column(j))%2 != expected {
				return false
			}
		}
	}
	return true
}

// ColumnSyndromes returns each column of H read as an integer, row i being bit i.
// It fails when a column is zero or repeated.
func ColumnSyndromes(H mat.SparseMat) ([]int, error) {
	np, n := H.Dims()
	if np >= 63 {
		return nil, errors.Errorf("H has too many rows (%v)", np)
	}
	syndromes := make([]int, n)
	seen := make(map[int]int, n)
	for c := 0; c < n; c++ {
		s := 0
		for _, r := range H.Column(c).NonzeroArray() {
			s |= 1 << r
		}
		if s == 0 {
			return nil, errors.Errorf("column %v of H is zero", c)
		}
		if other, has := seen[s]; has {
			return nil, errors.Errorf("columns %v and %v of H are equal", other, c)
		}
		seen[s] = c
		syndromes[c] = s
	}
	return syndromes, nil
}
