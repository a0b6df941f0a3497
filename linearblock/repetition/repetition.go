// Package repetition implements the n-fold repetition code: every data bit is stored
// reps times at seeded, shuffled positions and recovered by majority vote.
package repetition

import (
	"fmt"
	"math/rand"

	"github.com/nathanhack/eccsim/ecc"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

type Repetition struct {
	// Mapping is the (nDataBits*reps) x nDataBits encoding matrix; column i holds
	// a one at every replica of data bit i.
	Mapping mat.SparseMat

	nDataBits   int
	reps        int
	permutation int
	replicas    [][]int
	uid         uint64
}

// New creates a repetition code. reps must be odd so the majority vote is never tied.
func New(permutation, nDataBits, reps int, opts ...ecc.Option) (*Repetition, error) {
	if nDataBits <= 0 {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "invalid number of data bits: %v", nDataBits)
	}
	if reps <= 0 || reps%2 == 0 {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "invalid number of repetitions: %v: ambiguous decoding for even repetitions", reps)
	}

	n := nDataBits * reps
	position := rand.New(rand.NewSource(int64(permutation))).Perm(n)

	mapping := mat.CSRMat(n, nDataBits)
	replicas := make([][]int, nDataBits)
	for row := 0; row < n; row++ {
		bit := row / reps
		mapping.Set(position[row], bit, 1)
		replicas[bit] = append(replicas[bit], position[row])
	}

	r := &Repetition{
		Mapping:     mapping,
		nDataBits:   nDataBits,
		reps:        reps,
		permutation: permutation,
		replicas:    replicas,
		uid:         ecc.HashMatrices(mapping),
	}
	ecc.NewOptions(opts...).Logger.WithField("permutation", permutation).
		Debugf("Created repetition code with %v data bits and %v repetitions", nDataBits, reps)
	return r, nil
}

func (r *Repetition) CorrectionCapability() int {
	return (r.reps - 1) / 2
}

func (r *Repetition) NDataBits() int {
	return r.nDataBits
}

func (r *Repetition) NCodeBits() int {
	return r.nDataBits * r.reps
}

func (r *Repetition) Repetitions() int {
	return r.reps
}

func (r *Repetition) Permutation() int {
	return r.permutation
}

func (r *Repetition) UID() uint64 {
	return r.uid
}

// Scheme falls back to "REP_N<reps>" when no tag covers reps.
func (r *Repetition) Scheme() ecc.Scheme {
	s, err := ecc.RepetitionScheme(r.reps)
	if err != nil {
		return ecc.Scheme(fmt.Sprintf("REP_N%v", r.reps))
	}
	return s
}

func (r *Repetition) Name() string {
	return fmt.Sprintf("Repetition Code with #errors correctable: %v (permutation: %v, n_reps: %v, n_data_bits: %v)",
		r.CorrectionCapability(), r.permutation, r.reps, r.nDataBits)
}

func (r *Repetition) ShortName() string {
	return fmt.Sprintf("REP: p:%v t:%v k:%v n:%v", r.permutation, r.CorrectionCapability(), r.nDataBits, r.NCodeBits())
}

func (r *Repetition) Document() (*ecc.Document, error) {
	return nil, errors.Wrap(ecc.ErrUnimplemented, "repetition code documents")
}

func (r *Repetition) Encode(dataword mat.SparseVector) (codeword mat.SparseVector) {
	if dataword.Len() != r.nDataBits {
		panic(fmt.Sprintf("dataword length == %v is required but found %v", r.nDataBits, dataword.Len()))
	}
	codeword = mat.CSRVec(r.NCodeBits())
	codeword.MatMul(r.Mapping, dataword)
	return
}

// Decode takes the majority of each bit's replicas, computed as (2*sum)/(reps+1).
func (r *Repetition) Decode(codeword mat.SparseVector) (dataword mat.SparseVector) {
	if codeword.Len() != r.NCodeBits() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", r.NCodeBits(), codeword.Len()))
	}

	dataword = mat.CSRVec(r.nDataBits)
	for bit, positions := range r.replicas {
		sum := 0
		for _, p := range positions {
			sum += codeword.At(p)
		}
		if (2*sum)/(r.reps+1) == 1 {
			dataword.Set(bit, 1)
		}
	}
	return
}

func (r *Repetition) String() string {
	return r.ShortName()
}
