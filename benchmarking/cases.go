package benchmarking

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathanhack/eccsim/bch"
	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/linearblock/hamming"
	"github.com/nathanhack/eccsim/linearblock/repetition"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Family is a code family. Unlike a scheme tag it leaves t (BCH) or the number of
// repetitions free, so the harness can cover parameters no tag names.
type Family string

const (
	BCH        Family = "BCH"
	Hamming    Family = "HSC"
	Repetition Family = "REP"
)

func Families() []Family {
	return []Family{Repetition, Hamming, BCH}
}

func ParseFamily(s string) (Family, error) {
	for _, f := range Families() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ecc.ErrUnknownScheme, "unknown code family %q", s)
}

// FamilyOf returns the family and parameter (t or repetitions) a scheme tag stands for.
func FamilyOf(scheme ecc.Scheme) (Family, int, error) {
	if reps, ok := scheme.Repetitions(); ok {
		return Repetition, reps, nil
	}
	if t, ok := scheme.BCHCorrection(); ok {
		return BCH, t, nil
	}
	if scheme == ecc.HammingSEC {
		return Hamming, 1, nil
	}
	return "", 0, errors.Wrapf(ecc.ErrUnknownScheme, "%q", scheme)
}

// Mode selects the size of the predefined case tables.
type Mode string

const (
	Fast Mode = "fast"
	Slow Mode = "slow"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case Fast:
		return Fast, nil
	case Slow:
		return Slow, nil
	}
	return "", errors.Errorf("unknown mode %q (valid: %v, %v)", s, Fast, Slow)
}

// Case is one code to check. Param is t for BCH codes and the number of repetitions
// for repetition codes; Hamming codes ignore it.
type Case struct {
	Family      Family
	Permutation int
	NDataBits   int
	Param       int
	Trials      int
}

func (c Case) String() string {
	return fmt.Sprintf("%v(p:%v k:%v param:%v trials:%v)", c.Family, c.Permutation, c.NDataBits, c.Param, c.Trials)
}

// Build creates the code the case describes.
func (c Case) Build(opts ...ecc.Option) (ecc.Code, error) {
	switch c.Family {
	case BCH:
		b, err := bch.FindCode(c.Permutation, c.NDataBits, c.Param, opts...)
		if err != nil {
			return nil, err
		}
		return b, nil
	case Hamming:
		h, err := hamming.New(c.Permutation, c.NDataBits, hamming.StandardForm, opts...)
		if err != nil {
			return nil, err
		}
		return h, nil
	case Repetition:
		r, err := repetition.New(c.Permutation, c.NDataBits, c.Param, opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, errors.Wrapf(ecc.ErrUnknownScheme, "unknown code family %q", c.Family)
}

var commonSizes = []int{1, 2, 3, 4, 7, 8, 15, 16, 31, 32, 64, 128, 256}

// Cases returns the predefined cases of a family.
func Cases(family Family, mode Mode) []Case {
	cases := make([]Case, 0)
	switch {
	case family == BCH && mode == Fast:
		for t := 1; t <= 7; t++ {
			cases = append(cases, Case{BCH, 0, 128, t, 100})
		}
	case family == BCH && mode == Slow:
		for p := 0; p < 10; p++ {
			for _, k := range commonSizes {
				for t := 3; t <= 9; t += 2 {
					cases = append(cases, Case{BCH, p, k, t, 100})
				}
			}
		}
	case family == Hamming && mode == Fast:
		sizes := []int{1, 2, 3, 4, 7, 8, 15, 16, 31, 32, 63, 64, 65, 127, 128, 129, 255, 256}
		for p := 0; p < 10; p++ {
			for _, k := range sizes {
				cases = append(cases, Case{Hamming, p, k, 1, 1})
			}
		}
	case family == Hamming && mode == Slow:
		for p := 0; p < 10; p++ {
			// powers of two and their neighbours, without repeats
			sizes := map[int]bool{}
			for k := 1; k < 1000; k <<= 1 {
				sizes[k-1], sizes[k], sizes[k+1] = true, true, true
			}
			delete(sizes, 0)
			keys := maps.Keys(sizes)
			slices.Sort(keys)
			for _, k := range keys {
				cases = append(cases, Case{Hamming, p, k, 1, 100})
			}
		}
	case family == Repetition && mode == Fast:
		for p := 0; p < 2; p++ {
			for _, k := range commonSizes {
				for reps := 3; reps <= 9; reps += 2 {
					cases = append(cases, Case{Repetition, p, k, reps, 1})
				}
			}
		}
	case family == Repetition && mode == Slow:
		sizes := []int{1, 2, 3, 4, 7, 8, 15, 16, 31, 32, 63, 64, 127, 128, 255, 256, 511, 512}
		for p := 0; p < 10; p++ {
			for _, k := range sizes {
				for reps := 3; reps <= 11; reps += 2 {
					cases = append(cases, Case{Repetition, p, k, reps, 100})
				}
			}
		}
	}
	return cases
}

// RunCases builds and checks every case in order, stopping at the first case that cannot be
// built. cfg.Trials is replaced by each case's Trials when cfg.Trials <= 0.
func RunCases(ctx context.Context, cases []Case, cfg Config, opts ...ecc.Option) ([]*Result, error) {
	options := ecc.NewOptions(opts...)
	results := make([]*Result, 0, len(cases))
	for _, c := range cases {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		code, err := c.Build(opts...)
		if err != nil {
			return results, errors.Wrapf(err, "building %v", c)
		}

		caseCfg := cfg
		if caseCfg.Trials <= 0 {
			caseCfg.Trials = c.Trials
		}
		result := Conformance(ctx, code, caseCfg, nil)
		if result.Passed() {
			options.Logger.Debugf("%v: passed %v trials", code.ShortName(), result.Trials)
		} else {
			options.Logger.Errorf("%v: %v uncorrected error patterns within t = %v", code.ShortName(), result.FailureCount, result.CorrectionCapability)
		}
		results = append(results, result)
	}
	return results, nil
}
