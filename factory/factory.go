// Package factory builds ecc.Code instances from a scheme tag and parameters
// or from a persisted document.
package factory

import (
	"github.com/nathanhack/eccsim/bch"
	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/linearblock/hamming"
	"github.com/nathanhack/eccsim/linearblock/repetition"
	"github.com/pkg/errors"
)

// Build creates the code named by scheme.
func Build(scheme ecc.Scheme, nDataBits, permutation int, opts ...ecc.Option) (ecc.Code, error) {
	if reps, ok := scheme.Repetitions(); ok {
		r, err := repetition.New(permutation, nDataBits, reps, opts...)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	if t, ok := scheme.BCHCorrection(); ok {
		b, err := bch.FindCode(permutation, nDataBits, t, opts...)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	if scheme == ecc.HammingSEC {
		h, err := hamming.New(permutation, nDataBits, hamming.StandardForm, opts...)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, errors.Wrapf(ecc.ErrUnknownScheme, "%q", scheme)
}

// FromDocument rebuilds the code stored in doc. Only Hamming documents are supported.
func FromDocument(doc *ecc.Document, opts ...ecc.Option) (ecc.Code, error) {
	switch {
	case doc.Scheme == ecc.HammingSEC:
		h, err := hamming.FromDocument(doc, opts...)
		if err != nil {
			return nil, err
		}
		return h, nil
	case isRepetition(doc.Scheme), isBCH(doc.Scheme):
		return nil, errors.Wrapf(ecc.ErrUnimplemented, "building %v codes from documents", doc.Scheme)
	}
	return nil, errors.Wrapf(ecc.ErrUnknownScheme, "%q", doc.Scheme)
}

// BuildFromFile loads the document at filepath and rebuilds its code.
func BuildFromFile(filepath string, opts ...ecc.Option) (ecc.Code, error) {
	doc, err := ecc.LoadDocument(filepath)
	if err != nil {
		return nil, err
	}
	code, err := FromDocument(doc, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %v", filepath)
	}
	return code, nil
}

// BuildAll builds every combination of scheme and permutation. Two codes with the same
// uid are reported as an error, since results are keyed by uid.
//
// BCH codes that fit in GF(2^3) or GF(2^4) (t=1 with at most 11 data bits, for example)
// have a single catalog polynomial, so every permutation yields the same code and asking
// for more than one permutation of them always fails with a collision.
func BuildAll(schemes []ecc.Scheme, nDataBits int, permutations []int, opts ...ecc.Option) ([]ecc.Code, error) {
	codes := make([]ecc.Code, 0, len(schemes)*len(permutations))
	uids := make(map[uint64]ecc.Code)
	for _, scheme := range schemes {
		for _, p := range permutations {
			code, err := Build(scheme, nDataBits, p, opts...)
			if err != nil {
				return nil, errors.Wrapf(err, "%v (k: %v, p: %v)", scheme, nDataBits, p)
			}
			if other, has := uids[code.UID()]; has {
				return nil, errors.Errorf("uid collision detected between %v and %v", other.ShortName(), code.ShortName())
			}
			uids[code.UID()] = code
			codes = append(codes, code)
		}
	}
	return codes, nil
}

func isRepetition(s ecc.Scheme) bool {
	_, ok := s.Repetitions()
	return ok
}

func isBCH(s ecc.Scheme) bool {
	_, ok := s.BCHCorrection()
	return ok
}

