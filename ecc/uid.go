package ecc

import (
	"hash/crc64"
	"strconv"

	mat "github.com/nathanhack/sparsemat"
)

var crcTable = crc64.MakeTable(crc64.ECMA)

// HashMatrices returns the content hash of the matrices, read row-major in order.
// Two codes built from the same parameters hash identically.
func HashMatrices(matrices ...mat.SparseMat) uint64 {
	var buf []byte
	for _, m := range matrices {
		rows, cols := m.Dims()
		buf = strconv.AppendInt(buf, int64(rows), 10)
		buf = append(buf, 'x')
		buf = strconv.AppendInt(buf, int64(cols), 10)
		buf = append(buf, ':')
		for r := 0; r < rows; r++ {
			row := make([]byte, cols)
			for i := range row {
				row[i] = '0'
			}
			for _, c := range m.Row(r).NonzeroArray() {
				row[c] = '1'
			}
			buf = append(buf, row...)
		}
		buf = append(buf, ';')
	}
	return crc64.Checksum(buf, crcTable)
}

// HashPolynomials returns the content hash of the polynomial coefficient lists.
func HashPolynomials(polys ...[]int) uint64 {
	var buf []byte
	for _, p := range polys {
		for _, coef := range p {
			buf = strconv.AppendInt(buf, int64(coef), 10)
			buf = append(buf, ',')
		}
		buf = append(buf, ';')
	}
	return crc64.Checksum(buf, crcTable)
}
