// Package bch implements shortened binary BCH codes parameterized by the number of data bits
// and the number of correctable errors. The codeword length is chosen by searching for the
// smallest Galois field whose BCH code can hold the requested data bits.
package bch

import (
	"fmt"

	"github.com/nathanhack/eccsim/cyclic"
	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/galois"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

// MaxOrder bounds the field search in FindCode.
const MaxOrder = 13

// BCH is a systematic binary BCH code storing NDataBits data bits (which may be fewer than
// the K the code supports; the remaining message bits are implicitly zero). Codewords are
// laid out as [parity | data].
type BCH struct {
	Field *galois.Field
	Code  *cyclic.Code

	nDataBits   int
	t           int
	permutation int
	uid         uint64
}

// FindCode searches the field orders from ceil(log2(nDataBits)) up to MaxOrder for the
// first BCH code correcting t errors with at least nDataBits message bits.
// The permutation selects the primitive polynomial used for every candidate field.
func FindCode(permutation, nDataBits, t int, opts ...ecc.Option) (*BCH, error) {
	if nDataBits <= 0 {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "invalid number of data bits: %v", nDataBits)
	}
	if t <= 0 {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "invalid correction capability: %v", t)
	}
	options := ecc.NewOptions(opts...)
	log := options.Logger.WithField("permutation", permutation).WithField("t", t)

	minOrder := 1
	for 1<<minOrder < nDataBits {
		minOrder++
	}
	if minOrder < galois.MinOrder {
		minOrder = galois.MinOrder
	}

	for m := minOrder; m <= MaxOrder; m++ {
		if t >= 1<<(m-1) {
			log.Debugf("Rejecting BCH code m: %v, t >= 2^(m-1)", m)
			continue
		}

		poly, err := galois.PrimitivePolynomial(permutation, m)
		if err != nil {
			return nil, err
		}
		field, err := galois.New(m, poly)
		if err != nil {
			return nil, err
		}

		n := field.N()
		code, err := cyclic.Synthesize(field, n, 2*t+1, opts...)
		if err != nil {
			log.Debugf("Rejecting BCH code m: %v n: %v: %v", m, n, err)
			continue
		}
		if code.K < nDataBits {
			log.Debugf("Rejecting BCH code m: %v n: %v k: %v < %v data bits", m, n, code.K, nDataBits)
			continue
		}

		b := &BCH{
			Field:       field,
			Code:        code,
			nDataBits:   nDataBits,
			t:           t,
			permutation: permutation,
		}
		b.uid = ecc.HashPolynomials(field.Polynomial, code.Generator, []int{nDataBits})

		log.Infof("Found usable BCH code m: %v n: %v k: %v (%v data + %v parity = %v code bits), g(x): %v",
			m, n, code.K, nDataBits, code.Degree(), b.NCodeBits(), galois.PolynomialString(code.Generator))
		return b, nil
	}

	return nil, errors.Wrapf(ecc.ErrNoSuchCode, "no BCH code with k >= %v and t = %v for m <= %v", nDataBits, t, MaxOrder)
}

func (b *BCH) CorrectionCapability() int {
	return b.t
}

// NDataBits is the number of data bits requested, not K.
func (b *BCH) NDataBits() int {
	return b.nDataBits
}

func (b *BCH) NCodeBits() int {
	return b.Code.Degree() + b.nDataBits
}

func (b *BCH) NParityBits() int {
	return b.Code.Degree()
}

func (b *BCH) Permutation() int {
	return b.permutation
}

func (b *BCH) UID() uint64 {
	return b.uid
}

func (b *BCH) Scheme() ecc.Scheme {
	s, err := ecc.BCHScheme(b.t)
	if err != nil {
		return ecc.Scheme(fmt.Sprintf("BCH_T%v", b.t))
	}
	return s
}

func (b *BCH) Name() string {
	return fmt.Sprintf("BCH Code (m: %v, n: %v, k: %v, t: %v) with #errors correctable: %v (permutation: %v, n_data_bits: %v, n_code_bits: %v)",
		b.Field.Order, b.Field.N(), b.Code.K, b.t, b.t, b.permutation, b.nDataBits, b.NCodeBits())
}

func (b *BCH) ShortName() string {
	return fmt.Sprintf("BCH: p:%v t:%v k:%v n:%v m:%v", b.permutation, b.t, b.Code.K, b.Field.N(), b.Field.Order)
}

// Document is not supported for BCH codes; they are rebuilt from their parameters.
func (b *BCH) Document() (*ecc.Document, error) {
	return nil, errors.Wrap(ecc.ErrUnimplemented, "BCH code documents")
}

// Encode computes the parity bits as the remainder of x^(n-k)*d(x) divided by g(x)
// using a shift register and returns [parity | data].
func (b *BCH) Encode(dataword mat.SparseVector) (codeword mat.SparseVector) {
	if dataword.Len() != b.nDataBits {
		panic(fmt.Sprintf("dataword length == %v is required but found %v", b.nDataBits, dataword.Len()))
	}

	data := make([]int, b.nDataBits)
	for _, i := range dataword.NonzeroArray() {
		data[i] = 1
	}

	g := b.Code.Generator
	nk := b.Code.Degree()
	parity := make([]int, nk)
	// the message is zero padded up to k; the padding precedes the data
	// in shift order and leaves the register empty so it is skipped
	for i := b.nDataBits - 1; i >= 0; i-- {
		feedback := data[i] ^ parity[nk-1]
		if feedback != 0 {
			for j := nk - 1; j > 0; j-- {
				if g[j] != 0 {
					parity[j] = parity[j-1] ^ feedback
				} else {
					parity[j] = parity[j-1]
				}
			}
			parity[0] = g[0] & feedback
		} else {
			for j := nk - 1; j > 0; j-- {
				parity[j] = parity[j-1]
			}
			parity[0] = 0
		}
	}

	codeword = mat.CSRVec(nk + b.nDataBits)
	for j, p := range parity {
		if p != 0 {
			codeword.Set(j, 1)
		}
	}
	for i, d := range data {
		if d != 0 {
			codeword.Set(nk+i, 1)
		}
	}
	return codeword
}

// Decode corrects up to t errors and returns the data bits. Words with more errors than the
// decoder can locate are returned uncorrected.
func (b *BCH) Decode(codeword mat.SparseVector) (dataword mat.SparseVector) {
	dataword, _ = b.DecodeWithStatus(codeword)
	return
}

// DecodeWithStatus is Decode that also reports what the decoder did.
func (b *BCH) DecodeWithStatus(codeword mat.SparseVector) (dataword mat.SparseVector, status Status) {
	if codeword.Len() != b.NCodeBits() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", b.NCodeBits(), codeword.Len()))
	}

	// zero padded up to n
	received := make([]int, b.Field.N())
	for _, i := range codeword.NonzeroArray() {
		received[i] = 1
	}

	status = decode(b.Field, b.t, received)

	nk := b.Code.Degree()
	dataword = mat.CSRVec(b.nDataBits)
	for i := 0; i < b.nDataBits; i++ {
		if received[nk+i] != 0 {
			dataword.Set(i, 1)
		}
	}
	return
}

func (b *BCH) String() string {
	return b.ShortName()
}
