// Package benchmarking verifies codes against their stated correction capability: data words
// are encoded, exactly N uniformly placed bit errors are injected for every N from 0 to the
// codeword length, and any N <= t that is not fully corrected is recorded as a failure.
package benchmarking

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/threadpool"
	"gonum.org/v1/gonum/stat/combin"
)

// MaxRecordedFailures bounds the failures kept in a Result; the rest are only counted.
const MaxRecordedFailures = 16

// Stats accumulates the decoding outcome for one number of injected errors.
type Stats struct {
	DataBitErrors avgstd.AvgStd // data bits still wrong after decoding
	WordErrors    avgstd.AvgStd // 1 when the decoded data word differs from the original
}

func (s Stats) String() string {
	return fmt.Sprintf("{DataBits:%0.02f(+/-%0.02f), Words:%0.02f(+/-%0.02f)}",
		s.DataBitErrors.Mean, math.Sqrt(s.DataBitErrors.SampledVariance()),
		s.WordErrors.Mean, math.Sqrt(s.WordErrors.SampledVariance()),
	)
}

// Failure is an error pattern of weight <= t that the code did not correct.
type Failure struct {
	Positions     []int
	DataBitErrors int
}

// Result is the outcome of checking one code.
type Result struct {
	Name                 string
	ShortName            string
	Scheme               ecc.Scheme
	UID                  uint64
	NDataBits            int
	NCodeBits            int
	CorrectionCapability int
	Permutation          int

	Trials           int
	ExhaustiveChecks int           // error patterns of weight <= t enumerated exhaustively
	Stats            map[int]Stats // keyed by the number of injected errors
	FailureCount     int
	Failures         []Failure
}

// Passed reports whether every error pattern of weight <= t was corrected.
func (r *Result) Passed() bool {
	return r.FailureCount == 0
}

func (r *Result) record(injected []int, dataBitErrors int) {
	s := r.Stats[len(injected)]
	s.DataBitErrors.Update(float64(dataBitErrors))
	wordError := 0.0
	if dataBitErrors > 0 {
		wordError = 1
	}
	s.WordErrors.Update(wordError)
	r.Stats[len(injected)] = s

	if dataBitErrors > 0 && len(injected) <= r.CorrectionCapability {
		r.fail(Failure{Positions: injected, DataBitErrors: dataBitErrors})
	}
}

func (r *Result) fail(f Failure) {
	r.FailureCount++
	if len(r.Failures) < MaxRecordedFailures {
		r.Failures = append(r.Failures, f)
	}
}

// Config controls a conformance run.
type Config struct {
	Trials  int // data words per code
	Threads int // <=0 uses runtime.NumCPU()
	Pattern DataPattern
	Seed    int64

	// MaxErrors bounds the number of injected errors, <0 means up to the codeword length.
	MaxErrors int

	// Exhaustive enumerates every error pattern of weight <= t on one data word,
	// for each weight whose number of patterns does not exceed ExhaustiveLimit.
	Exhaustive      bool
	ExhaustiveLimit int

	ShowProgress bool
}

// DefaultExhaustiveLimit is used when Config.ExhaustiveLimit is not positive.
const DefaultExhaustiveLimit = 1 << 16

// Checkpoints is called, holding the result lock, after each completed trial.
type Checkpoints func(updated *Result)

// Conformance runs cfg.Trials trials against code on a pool of cfg.Threads workers.
// Trial i draws its data word and error positions from a source seeded with cfg.Seed+i.
func Conformance(ctx context.Context, code ecc.Code, cfg Config, checkpoints Checkpoints) *Result {
	result := &Result{
		Name:                 code.Name(),
		ShortName:            code.ShortName(),
		Scheme:               code.Scheme(),
		UID:                  code.UID(),
		NDataBits:            code.NDataBits(),
		NCodeBits:            code.NCodeBits(),
		CorrectionCapability: code.CorrectionCapability(),
		Permutation:          code.Permutation(),
		Stats:                map[int]Stats{},
	}

	maxErrors := cfg.MaxErrors
	if maxErrors < 0 || maxErrors > code.NCodeBits() {
		maxErrors = code.NCodeBits()
	}

	var bar *pb.ProgressBar
	if cfg.ShowProgress {
		bar = pb.StartNew(cfg.Trials)
	}

	pool := threadpool.New(ctx, cfg.Threads)
	resultMux := sync.Mutex{}

	trial := func(i int) {
		if cfg.ShowProgress {
			bar.Increment()
		}
		r := rand.New(rand.NewSource(cfg.Seed + int64(i)))
		message := DataWord(r, cfg.Pattern, code.NDataBits())
		codeword := code.Encode(message)

		type outcome struct {
			positions []int
			errors    int
		}
		outcomes := make([]outcome, 0, maxErrors+1)
		for n := 0; n <= maxErrors; n++ {
			received, positions := RandomFlipBitCount(r, codeword, n)
			decoded := code.Decode(received)
			outcomes = append(outcomes, outcome{positions, decoded.HammingDistance(message)})
		}

		resultMux.Lock()
		for _, o := range outcomes {
			result.record(o.positions, o.errors)
		}
		result.Trials++
		if checkpoints != nil {
			checkpoints(result)
		}
		resultMux.Unlock()
	}

	for i := 0; i < cfg.Trials; i++ {
		index := i
		pool.Add(func() { trial(index) })
	}
	pool.Wait()
	if cfg.ShowProgress {
		bar.Finish()
	}

	if cfg.Exhaustive {
		exhaustive(ctx, code, cfg, result, &resultMux)
	}
	return result
}

// exhaustive checks every error pattern of weight 1..t for which that is affordable.
func exhaustive(ctx context.Context, code ecc.Code, cfg Config, result *Result, resultMux *sync.Mutex) {
	limit := cfg.ExhaustiveLimit
	if limit <= 0 {
		limit = DefaultExhaustiveLimit
	}
	n := code.NCodeBits()
	r := rand.New(rand.NewSource(cfg.Seed))
	message := DataWord(r, cfg.Pattern, code.NDataBits())
	codeword := code.Encode(message)

	const chunk = 256
	pool := threadpool.New(ctx, cfg.Threads)
	for weight := 1; weight <= code.CorrectionCapability() && weight <= n; weight++ {
		if combin.Binomial(n, weight) > limit {
			break
		}

		gen := combin.NewCombinationGenerator(n, weight)
		patterns := make([][]int, 0, chunk)
		submit := func(patterns [][]int) {
			pool.Add(func() {
				failures := make([]Failure, 0)
				for _, positions := range patterns {
					decoded := code.Decode(FlipBits(codeword, positions))
					if d := decoded.HammingDistance(message); d > 0 {
						failures = append(failures, Failure{Positions: positions, DataBitErrors: d})
					}
				}

				resultMux.Lock()
				result.ExhaustiveChecks += len(patterns)
				for _, f := range failures {
					result.fail(f)
				}
				resultMux.Unlock()
			})
		}
		for gen.Next() {
			patterns = append(patterns, gen.Combination(nil))
			if len(patterns) == chunk {
				submit(patterns)
				patterns = make([][]int, 0, chunk)
			}
		}
		if len(patterns) > 0 {
			submit(patterns)
		}
	}
	pool.Wait()
}
