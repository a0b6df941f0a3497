package ecc

import (
	"encoding/json"
	"io"
	"os"

	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

// Document is the persisted form of a code. Matrices are row-major 0/1 arrays.
// Either G (codeword bits x data bits) or its transpose GT is present.
type Document struct {
	Scheme Scheme  `json:"scheme"`
	K      int     `json:"k"`
	P      int     `json:"p"`
	UID    uint64  `json:"uid"`
	G      [][]int `json:"G,omitempty"`
	GT     [][]int `json:"GT,omitempty"`
	H      [][]int `json:"H"`
	R      [][]int `json:"R"`
}

// ReadDocument decodes a document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding ecc document")
	}
	return &doc, nil
}

// LoadDocument reads the document stored at filepath.
func LoadDocument(filepath string) (*Document, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening ecc document %v", filepath)
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", filepath)
	}
	return doc, nil
}

// Save writes the document to filepath as JSON.
func (d *Document) Save(filepath string) error {
	bs, err := json.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "serializing ecc document")
	}
	return errors.Wrapf(os.WriteFile(filepath, bs, 0644), "writing %v", filepath)
}

// Matrices converts G (or GT), H and R into sparse matrices, with G in
// codeword bits x data bits orientation. Ragged or non-binary matrices are rejected.
func (d *Document) Matrices() (G, H, R mat.SparseMat, err error) {
	switch {
	case d.G != nil && d.GT != nil:
		return nil, nil, nil, errors.Wrap(ErrIntegrity, "document has both G and GT")
	case d.G != nil:
		G, err = MatrixFromRows(d.G)
	case d.GT != nil:
		G, err = MatrixFromRows(d.GT)
		if err == nil {
			G = G.T()
		}
	default:
		return nil, nil, nil, errors.Wrap(ErrIntegrity, "document has no generator matrix")
	}
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "G")
	}

	H, err = MatrixFromRows(d.H)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "H")
	}
	R, err = MatrixFromRows(d.R)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "R")
	}
	return
}

// MatrixFromRows builds a sparse matrix from row-major 0/1 values.
func MatrixFromRows(rows [][]int) (mat.SparseMat, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrIntegrity, "empty matrix")
	}
	cols := len(rows[0])
	values := make([]int, 0, len(rows)*cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrIntegrity, "row %v has %v columns, expected %v", r, len(row), cols)
		}
		for c, v := range row {
			if v != 0 && v != 1 {
				return nil, errors.Wrapf(ErrIntegrity, "value %v at (%v,%v) is not binary", v, r, c)
			}
		}
		values = append(values, row...)
	}
	return mat.CSRMat(len(rows), cols, values...), nil
}

// MatrixToRows is the inverse of MatrixFromRows.
func MatrixToRows(m mat.SparseMat) [][]int {
	rows, cols := m.Dims()
	result := make([][]int, rows)
	for r := 0; r < rows; r++ {
		result[r] = make([]int, cols)
		for _, c := range m.Row(r).NonzeroArray() {
			result[r][c] = 1
		}
	}
	return result
}
