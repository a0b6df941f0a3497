// Package linearblock holds the matrix form shared by the binary linear block codes:
// a generator G, a parity check matrix H and a degenerator R that recovers the data bits.
package linearblock

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

// LinearBlock contains the matrices of a code with k data bits, n code bits and np = n-k parity bits.
type LinearBlock struct {
	G mat.SparseMat // n x k generator, codeword = G*data
	H mat.SparseMat // np x n parity check matrix
	R mat.SparseMat // k x n degenerator, data = R*codeword
}

// FromDocument builds the matrices stored in doc and checks their shapes and the stored uid.
// It does not check the algebraic relations between them, see Validate.
func FromDocument(doc *ecc.Document) (*LinearBlock, error) {
	G, H, R, err := doc.Matrices()
	if err != nil {
		return nil, err
	}
	l := &LinearBlock{G: G, H: H, R: R}

	n, k := G.Dims()
	hrows, hcols := H.Dims()
	rrows, rcols := R.Dims()
	switch {
	case k != doc.K:
		return nil, errors.Wrapf(ecc.ErrIntegrity, "G has %v columns but k is %v", k, doc.K)
	case hcols != n || hrows >= n:
		return nil, errors.Wrapf(ecc.ErrIntegrity, "H is %vx%v, expected %vx%v", hrows, hcols, n-k, n)
	case hrows != n-k:
		return nil, errors.Wrapf(ecc.ErrIntegrity, "H has %v rows, expected %v", hrows, n-k)
	case rrows != k || rcols != n:
		return nil, errors.Wrapf(ecc.ErrIntegrity, "R is %vx%v, expected %vx%v", rrows, rcols, k, n)
	}

	if uid := l.UID(); uid != doc.UID {
		return nil, errors.Wrapf(ecc.ErrIntegrity, "uid %v does not match the stored uid %v", uid, doc.UID)
	}
	return l, nil
}

// Document returns the persisted form of the matrices.
func (l *LinearBlock) Document(scheme ecc.Scheme, permutation int) *ecc.Document {
	return &ecc.Document{
		Scheme: scheme,
		K:      l.MessageLength(),
		P:      permutation,
		UID:    l.UID(),
		G:      ecc.MatrixToRows(l.G),
		H:      ecc.MatrixToRows(l.H),
		R:      ecc.MatrixToRows(l.R),
	}
}

// UID is the content hash of G, H and R.
func (l *LinearBlock) UID() uint64 {
	return ecc.HashMatrices(l.G, l.H, l.R)
}

// Encode takes in a message and encodes it using the linear block, returning a codeword.
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	n, k := l.G.Dims()
	if message.Len() != k {
		panic(fmt.Sprintf("message length == %v is required but found %v", k, message.Len()))
	}

	codeword = mat.CSRVec(n)
	codeword.MatMul(l.G, message)
	return
}

// Extract projects a codeword onto its data bits without any correction.
func (l *LinearBlock) Extract(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	message = mat.CSRVec(l.MessageLength())
	message.MatMul(l.R, codeword)
	return
}

func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

func (l *LinearBlock) MessageLength() int {
	_, k := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

// Validate tests that H has full row rank, H*G == 0 and R*G == I.
func (l *LinearBlock) Validate() error {
	np, _ := l.H.Dims()
	if rank := (internal.Elimination{Threads: 1}).Rank(context.Background(), l.H); rank != np {
		return errors.Wrapf(ecc.ErrIntegrity, "H has rank %v, expected %v", rank, np)
	}
	if !internal.ValidateHG(l.H, l.G) {
		return errors.Wrap(ecc.ErrIntegrity, "H*G != 0")
	}
	if !internal.ValidateRG(l.R, l.G) {
		return errors.Wrap(ecc.ErrIntegrity, "R*G != I")
	}
	return nil
}

// ColumnSyndromes returns each column of H read as an integer, failing with ErrIntegrity
// when a column is zero or repeated (such a code cannot locate single errors).
func (l *LinearBlock) ColumnSyndromes() ([]int, error) {
	syndromes, err := internal.ColumnSyndromes(l.H)
	if err != nil {
		return nil, errors.Wrap(ecc.ErrIntegrity, err.Error())
	}
	return syndromes, nil
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\nR:\n")
	buf.WriteString(l.R.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
