// Package galois builds the binary extension fields GF(2^m) used by the BCH codes.
package galois

import (
	"fmt"

	"github.com/nathanhack/eccsim/ecc"
	"github.com/pkg/errors"
)

const (
	MinOrder = 3
	MaxOrder = 32
)

// Field is GF(2^m) generated by a primitive polynomial with alpha=2 as the primitive element.
//  AlphaTo[i] = alpha^i (index form -> polynomial form), len 2^m-1
//  IndexOf[x] = log_alpha(x) (polynomial form -> index form), len 2^m, IndexOf[0] == -1
// A Field is never modified after New returns.
type Field struct {
	Order      int
	Polynomial []int
	AlphaTo    []int
	IndexOf    []int
}

// New generates GF(2^order) from the coefficients poly[0]..poly[order].
// The polynomial is assumed to be primitive; this is not verified.
func New(order int, poly []int) (*Field, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "field order %v outside [%v,%v]", order, MinOrder, MaxOrder)
	}
	if len(poly) != order+1 || poly[order] == 0 {
		return nil, errors.Wrapf(ecc.ErrInvalidParameters, "polynomial %v is not of degree %v", poly, order)
	}

	n := 1<<order - 1
	alphaTo := make([]int, n)
	indexOf := make([]int, n+1)

	mask := 1
	for i := 0; i < order; i++ {
		alphaTo[i] = mask
		indexOf[alphaTo[i]] = i
		if poly[i] != 0 {
			alphaTo[order] ^= mask
		}
		mask <<= 1
	}
	indexOf[alphaTo[order]] = order

	mask >>= 1
	for i := order + 1; i < n; i++ {
		if alphaTo[i-1] >= mask {
			alphaTo[i] = alphaTo[order] ^ ((alphaTo[i-1] ^ mask) << 1)
		} else {
			alphaTo[i] = alphaTo[i-1] << 1
		}
		indexOf[alphaTo[i]] = i
	}
	indexOf[0] = -1

	p := make([]int, len(poly))
	copy(p, poly)
	return &Field{
		Order:      order,
		Polynomial: p,
		AlphaTo:    alphaTo,
		IndexOf:    indexOf,
	}, nil
}

// N is the size of the multiplicative group, 2^m-1.
func (f *Field) N() int {
	return len(f.AlphaTo)
}

// Multiply multiplies two elements in polynomial form.
func (f *Field) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return f.AlphaTo[(f.IndexOf[a]+f.IndexOf[b])%f.N()]
}

// Power returns alpha^i for any (possibly negative) i.
func (f *Field) Power(i int) int {
	n := f.N()
	i %= n
	if i < 0 {
		i += n
	}
	return f.AlphaTo[i]
}

// IsPrimitive reports whether alpha generates every nonzero element exactly once,
// i.e. whether the polynomial used to build the field really is primitive.
func (f *Field) IsPrimitive() bool {
	seen := make([]bool, f.N()+1)
	for _, x := range f.AlphaTo {
		if x <= 0 || x > f.N() || seen[x] {
			return false
		}
		seen[x] = true
	}
	return true
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(2^%v) p(x)=%v", f.Order, PolynomialString(f.Polynomial))
}
