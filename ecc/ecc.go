// Package ecc defines the capability surface shared by every error correcting code in eccsim,
// along with the scheme tags, the persisted document format and the typed construction errors.
package ecc

import (
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

// Code is implemented by the BCH, Hamming and repetition codecs. A Code is immutable once
// built, so Encode and Decode may be called concurrently on the same instance.
type Code interface {
	Name() string
	ShortName() string
	Scheme() Scheme

	CorrectionCapability() int
	NDataBits() int
	NCodeBits() int
	Permutation() int
	UID() uint64

	Encode(dataword mat.SparseVector) (codeword mat.SparseVector)
	Decode(codeword mat.SparseVector) (dataword mat.SparseVector)

	// Document returns the persisted form of the code, or ErrUnimplemented
	// for code families that cannot be persisted.
	Document() (*Document, error)
}

// Scheme is the tag used on the command line and in documents to name a code.
type Scheme string

const (
	RepetitionT1 Scheme = "REP_T1"
	RepetitionT2 Scheme = "REP_T2"
	RepetitionT3 Scheme = "REP_T3"
	HammingSEC   Scheme = "HSC"
	BCHT1        Scheme = "BCH_T1"
	BCHT2        Scheme = "BCH_T2"
	BCHT3        Scheme = "BCH_T3"
)

var allSchemes = []Scheme{RepetitionT1, RepetitionT2, RepetitionT3, HammingSEC, BCHT1, BCHT2, BCHT3}

// AllSchemes returns every known scheme in a stable order.
func AllSchemes() []Scheme {
	result := make([]Scheme, len(allSchemes))
	copy(result, allSchemes)
	return result
}

// ParseScheme converts a (case insensitive) tag into a Scheme.
func ParseScheme(s string) (Scheme, error) {
	tag := Scheme(strings.ToUpper(strings.TrimSpace(s)))
	for _, scheme := range allSchemes {
		if scheme == tag {
			return scheme, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownScheme, "%q (valid: %v)", s, SchemeList())
}

// SchemeList returns all the scheme tags as a comma separated string.
func SchemeList() string {
	tags := make([]string, len(allSchemes))
	for i, s := range allSchemes {
		tags[i] = string(s)
	}
	return strings.Join(tags, ", ")
}

// Repetitions returns the number of copies a repetition scheme stores per data bit.
// Note the T number is not the correction capability.
func (s Scheme) Repetitions() (int, bool) {
	switch s {
	case RepetitionT1:
		return 3, true
	case RepetitionT2:
		return 5, true
	case RepetitionT3:
		return 7, true
	}
	return 0, false
}

// BCHCorrection returns the correction capability t of a BCH scheme.
func (s Scheme) BCHCorrection() (int, bool) {
	switch s {
	case BCHT1:
		return 1, true
	case BCHT2:
		return 2, true
	case BCHT3:
		return 3, true
	}
	return 0, false
}

// BCHScheme returns the scheme tag for a BCH code of correction capability t.
func BCHScheme(t int) (Scheme, error) {
	for _, s := range []Scheme{BCHT1, BCHT2, BCHT3} {
		if c, _ := s.BCHCorrection(); c == t {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownScheme, "no BCH scheme tag for t=%v", t)
}

// RepetitionScheme returns the scheme tag for a repetition code with reps copies.
func RepetitionScheme(reps int) (Scheme, error) {
	for _, s := range []Scheme{RepetitionT1, RepetitionT2, RepetitionT3} {
		if r, _ := s.Repetitions(); r == reps {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownScheme, "no repetition scheme tag for %v repetitions", reps)
}
