// Package hamming implements single error correcting Hamming codes over any number of data bits.
package hamming

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/linearblock"
	"github.com/nathanhack/eccsim/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

// Strategy selects how the generator and degenerator are derived from H.
type Strategy int

const (
	// StandardForm row reduces H to [A | I] and derives G and R from the reduced form.
	StandardForm Strategy = iota
	// Raw uses G = [I; P] and R = [I | 0] built directly alongside H = [P | I].
	Raw
)

func (s Strategy) String() string {
	switch s {
	case StandardForm:
		return "standard form"
	case Raw:
		return "raw"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Hamming is a single error correcting code. The data and parity positions are shuffled
// by the permutation so H, G and R are not simply [P | I], [I; P] and [I | 0].
type Hamming struct {
	*linearblock.LinearBlock

	nDataBits   int
	permutation int
	syndromes   []int // column c of H as an integer
	uid         uint64
}

// ParityBits returns the smallest np with 2^np >= np + nDataBits + 1.
func ParityBits(nDataBits int) int {
	np := 0
	for 1<<np < np+nDataBits+1 {
		np++
	}
	return np
}

// New creates the Hamming code with nDataBits data bits. The permutation seeds the choice
// and placement of the data syndromes and the shuffle of all codeword positions.
func New(permutation, nDataBits int, strategy Strategy, opts ...ecc.Option) (*Hamming, error) {
	if nDataBits <= 0 {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "invalid number of data bits: %v", nDataBits)
	}
	options := ecc.NewOptions(opts...)
	log := options.Logger.WithField("permutation", permutation)

	np := ParityBits(nDataBits)
	n := nDataBits + np

	// every value with more than one bit set is a candidate data syndrome
	syndromeValues := make([]int, 0, 1<<np)
	for i := 0; i < 1<<np; i++ {
		if i&(i-1) != 0 {
			syndromeValues = append(syndromeValues, i)
		}
	}

	r := rand.New(rand.NewSource(int64(permutation)))
	chosen := r.Perm(len(syndromeValues))
	position := r.Perm(n)

	// H0 = [P | I]
	H0 := mat.CSRMat(np, n)
	for col := 0; col < nDataBits; col++ {
		value := syndromeValues[chosen[col]]
		for row := 0; row < np; row++ {
			if value>>row&1 == 1 {
				H0.Set(row, col, 1)
			}
		}
	}
	for row := 0; row < np; row++ {
		H0.Set(row, nDataBits+row, 1)
	}

	// bit j of the unshuffled codeword lands at position[j]
	H := mat.CSRMat(np, n)
	for j := 0; j < n; j++ {
		H.SetColumn(position[j], H0.Column(j))
	}

	var G, R mat.SparseMat
	switch strategy {
	case Raw:
		G0 := mat.CSRMat(n, nDataBits)
		for j := 0; j < nDataBits; j++ {
			G0.Set(j, j, 1)
		}
		for row := 0; row < np; row++ {
			for _, col := range H0.Row(row).NonzeroArray() {
				if col < nDataBits {
					G0.Set(nDataBits+row, col, 1)
				}
			}
		}
		G = internal.Unorder(G0, position)

		R = mat.CSRMat(nDataBits, n)
		for i := 0; i < nDataBits; i++ {
			R.Set(i, position[i], 1)
		}
	case StandardForm:
		elimination := internal.Elimination{Threads: 1, Logger: log}
		ordering, Gsys, err := elimination.Systematic(context.Background(), H)
		if err != nil {
			panic(fmt.Sprintf("hamming code H is not full rank: %v", err))
		}
		G = internal.Unorder(Gsys, ordering)

		// the data bits are the leading bits of the reordered codeword
		R = mat.CSRMat(nDataBits, n)
		for i := 0; i < nDataBits; i++ {
			R.Set(i, ordering[i], 1)
		}
	default:
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "unknown strategy %v", strategy)
	}

	h, err := build(&linearblock.LinearBlock{G: G, H: H, R: R}, permutation)
	if err != nil {
		// a freshly built code failing its checks is a logic defect
		panic(err)
	}

	log.Debugf("Created Hamming code (%v) with %v data bits and %v parity bits", strategy, nDataBits, np)
	return h, nil
}

// FromDocument rebuilds a Hamming code from its persisted form. Any inconsistency in the
// document is reported as ErrIntegrity.
func FromDocument(doc *ecc.Document, opts ...ecc.Option) (*Hamming, error) {
	if doc.Scheme != ecc.HammingSEC {
		return nil, errors.Wrapf(ecc.ErrIntegrity, "document scheme %v is not %v", doc.Scheme, ecc.HammingSEC)
	}
	l, err := linearblock.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	if np := ParityBits(doc.K); l.ParitySymbols() != np {
		return nil, errors.Wrapf(ecc.ErrIntegrity, "H has %v parity bits, expected %v", l.ParitySymbols(), np)
	}

	h, err := build(l, doc.P)
	if err != nil {
		return nil, err
	}
	ecc.NewOptions(opts...).Logger.Debugf("Loaded Hamming code with %v data bits, uid %v", h.nDataBits, h.uid)
	return h, nil
}

func build(l *linearblock.LinearBlock, permutation int) (*Hamming, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	syndromes, err := l.ColumnSyndromes()
	if err != nil {
		return nil, err
	}
	return &Hamming{
		LinearBlock: l,
		nDataBits:   l.MessageLength(),
		permutation: permutation,
		syndromes:   syndromes,
		uid:         l.UID(),
	}, nil
}

func (h *Hamming) CorrectionCapability() int {
	return 1
}

func (h *Hamming) NDataBits() int {
	return h.nDataBits
}

func (h *Hamming) NCodeBits() int {
	return h.CodewordLength()
}

func (h *Hamming) Permutation() int {
	return h.permutation
}

func (h *Hamming) UID() uint64 {
	return h.uid
}

func (h *Hamming) Scheme() ecc.Scheme {
	return ecc.HammingSEC
}

func (h *Hamming) Name() string {
	return fmt.Sprintf("Hamming SEC Code with #errors correctable: %v (permutation: %v, n_data_bits: %v, n_parity_bits: %v)",
		h.CorrectionCapability(), h.permutation, h.nDataBits, h.ParitySymbols())
}

func (h *Hamming) ShortName() string {
	return fmt.Sprintf("HSC: p:%v t:%v k:%v n:%v", h.permutation, h.CorrectionCapability(), h.nDataBits, h.NCodeBits())
}

func (h *Hamming) Document() (*ecc.Document, error) {
	return h.LinearBlock.Document(ecc.HammingSEC, h.permutation), nil
}

// Decode flips the bit whose column of H matches the syndrome, if any, and returns the data bits.
func (h *Hamming) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != h.NCodeBits() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", h.NCodeBits(), codeword.Len()))
	}

	syndrome := 0
	for _, r := range h.Syndrome(codeword).NonzeroArray() {
		syndrome |= 1 << r
	}
	if syndrome == 0 {
		return h.Extract(codeword)
	}

	for c, s := range h.syndromes {
		if s == syndrome {
			corrected := mat.CSRVecCopy(codeword)
			corrected.Set(c, corrected.At(c)^1)
			return h.Extract(corrected)
		}
	}
	return h.Extract(codeword)
}

func (h *Hamming) String() string {
	return h.ShortName()
}
