package benchmarking

import (
	"fmt"
	"math/rand"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// DataPattern selects the data words used by the conformance harness.
type DataPattern int

const (
	AllOnes DataPattern = iota
	AllZeros
	Random
)

var dataPatternNames = map[DataPattern]string{
	AllOnes:  "ones",
	AllZeros: "zeros",
	Random:   "random",
}

func (p DataPattern) String() string {
	if s, has := dataPatternNames[p]; has {
		return s
	}
	return fmt.Sprintf("DataPattern(%d)", int(p))
}

func ParseDataPattern(s string) (DataPattern, error) {
	for p, name := range dataPatternNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, errors.Errorf("unknown data pattern %q", s)
}

// DataWord creates a data word of length len following pattern.
func DataWord(r *rand.Rand, pattern DataPattern, len int) mat.SparseVector {
	switch pattern {
	case AllOnes:
		word := mat.CSRVec(len)
		for i := 0; i < len; i++ {
			word.Set(i, 1)
		}
		return word
	case Random:
		return RandomMessage(r, len)
	}
	return mat.CSRVec(len)
}

// RandomMessage creates a random message of length len.
func RandomMessage(r *rand.Rand, len int) mat.SparseVector {
	message := mat.CSRVec(len)
	for i := 0; i < len; i++ {
		message.Set(i, r.Intn(2))
	}
	return message
}

// RandomFlipBitCount flips min(numberOfBitsToFlip,len(input)) distinct, uniformly chosen bits
// of a copy of input. The flipped positions are returned in increasing order.
func RandomFlipBitCount(r *rand.Rand, input mat.SparseVector, numberOfBitsToFlip int) (mat.SparseVector, []int) {
	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < input.Len() {
		flip[r.Intn(input.Len())] = true
	}

	positions := make([]int, 0, len(flip))
	for i := range flip {
		positions = append(positions, i)
	}
	slices.Sort(positions)

	return FlipBits(input, positions), positions
}

// FlipBits returns a copy of input with the bits at positions inverted.
func FlipBits(input mat.SparseVector, positions []int) mat.SparseVector {
	output := mat.CSRVecCopy(input)
	for _, i := range positions {
		output.Set(i, output.At(i)^1)
	}
	return output
}
