// Package cyclic synthesizes the generator polynomial of binary BCH codes from the
// cyclotomic cosets of a Galois field.
package cyclic

import (
	"fmt"

	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/galois"
	"github.com/pkg/errors"
)

// slowCosetOrder is the field order above which coset enumeration becomes noticeably slow.
const slowCosetOrder = 9

// Code is a binary cyclic code of length Length and dimension K whose generator
// polynomial has Generator[i] as the coefficient of x^i.
type Code struct {
	Length          int
	K               int
	MinimumDistance int
	Generator       []int
	Roots           []int // exponents i of the roots alpha^i of the generator
}

// Cosets partitions {0,...,n-1} into the cyclotomic cosets modulo n: {s, 2s, 4s, ...}.
// Cosets are ordered by their smallest member.
func Cosets(n int) [][]int {
	visited := make([]bool, n)
	cosets := make([][]int, 0)
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		coset := []int{s}
		visited[s] = true
		for c := (s * 2) % n; c != s; c = (c * 2) % n {
			coset = append(coset, c)
			visited[c] = true
		}
		cosets = append(cosets, coset)
	}
	return cosets
}

// Synthesize computes the generator polynomial of the BCH code of the given length over f
// with designed distance hd. The roots of the generator are the members of every coset that
// contains one of 1..hd-1, and the generator is the product of (x + alpha^i) over those roots.
// ErrNoSuchCode is returned when the roots consume the entire codeword.
func Synthesize(f *galois.Field, length, hd int, opts ...ecc.Option) (*Code, error) {
	n := f.N()
	if length <= 0 || length > n {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "code length %v outside [1,%v]", length, n)
	}
	if hd < 2 {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "minimum distance %v < 2", hd)
	}

	options := ecc.NewOptions(opts...)
	if f.Order > slowCosetOrder {
		options.Logger.Warnf("Computing cycle sets modulo %v - this is slow", n)
	}

	roots := make([]int, 0)
	for _, coset := range Cosets(n) {
		if containsDesignedRoot(coset, hd) {
			roots = append(roots, coset...)
		}
	}

	k := length - len(roots)
	if k <= 0 {
		return nil, errors.Wrapf(ecc.ErrNoSuchCode, "n: %v hd: %v leaves k: %v", length, hd, k)
	}

	return &Code{
		Length:          length,
		K:               k,
		MinimumDistance: hd,
		Generator:       generator(f, roots),
		Roots:           roots,
	}, nil
}

func containsDesignedRoot(coset []int, hd int) bool {
	for _, c := range coset {
		if 1 <= c && c < hd {
			return true
		}
	}
	return false
}

// generator multiplies out (x + alpha^r) for every root r, keeping
// the coefficients in polynomial form.
func generator(f *galois.Field, roots []int) []int {
	n := f.N()
	g := make([]int, len(roots)+1)
	g[0] = f.AlphaTo[roots[0]]
	g[1] = 1
	for i := 1; i < len(roots); i++ {
		g[i+1] = 1
		for j := i; j > 0; j-- {
			if g[j] != 0 {
				g[j] = g[j-1] ^ f.AlphaTo[(f.IndexOf[g[j]]+roots[i])%n]
			} else {
				g[j] = g[j-1]
			}
		}
		g[0] = f.AlphaTo[(f.IndexOf[g[0]]+roots[i])%n]
	}
	return g
}

// Degree is the degree of the generator, the number of parity bits n-k.
func (c *Code) Degree() int {
	return len(c.Generator) - 1
}

func (c *Code) String() string {
	return fmt.Sprintf("(n: %v, k: %v, d: %v) g(x)=%v", c.Length, c.K, c.MinimumDistance, galois.PolynomialString(c.Generator))
}
