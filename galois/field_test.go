package galois

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/nathanhack/eccsim/ecc"
)

func TestNew(t *testing.T) {
	tests := []struct {
		order    int
		poly     []int
		expected []int
	}{
		{3, []int{1, 1, 0, 1}, []int{1, 2, 4, 3, 6, 7, 5}},
		{4, []int{1, 1, 0, 0, 1}, []int{1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			f, err := New(test.order, test.poly)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if !reflect.DeepEqual(f.AlphaTo, test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, f.AlphaTo)
			}
			if f.IndexOf[0] != -1 {
				t.Fatalf("expected IndexOf[0] == -1 but found %v", f.IndexOf[0])
			}
			for x := 1; x <= f.N(); x++ {
				if f.AlphaTo[f.IndexOf[x]] != x {
					t.Fatalf("expected AlphaTo[IndexOf[%v]] == %v but found %v", x, x, f.AlphaTo[f.IndexOf[x]])
				}
			}
			if !f.IsPrimitive() {
				t.Fatalf("expected a primitive field")
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		order int
		poly  []int
	}{
		{2, []int{1, 1, 1}},
		{33, make([]int, 34)},
		{4, []int{1, 1, 0, 1}},
		{4, []int{1, 1, 0, 0, 0}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := New(test.order, test.poly)
			if !errors.Is(err, ecc.ErrInvalidParameters) {
				t.Fatalf("expected ErrInvalidParameters but found %v", err)
			}
		})
	}
}

func TestFieldMultiply(t *testing.T) {
	f, err := New(4, []int{1, 1, 0, 0, 1})
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	for a := 0; a <= f.N(); a++ {
		for b := 0; b <= f.N(); b++ {
			// carry-less multiply then reduce by x^4+x+1
			expected := 0
			for i := 0; i < 4; i++ {
				if b&(1<<i) != 0 {
					expected ^= a << i
				}
			}
			for i := 7; i >= 4; i-- {
				if expected&(1<<i) != 0 {
					expected ^= 0x13 << (i - 4)
				}
			}
			if actual := f.Multiply(a, b); actual != expected {
				t.Fatalf("expected %v*%v == %v but found %v", a, b, expected, actual)
			}
		}
	}

	if f.Power(-1) != f.AlphaTo[f.N()-1] {
		t.Fatalf("expected alpha^-1 == %v but found %v", f.AlphaTo[f.N()-1], f.Power(-1))
	}
}

func TestNonPrimitiveField(t *testing.T) {
	// x^4+x^3+x^2+x+1 is irreducible but alpha only has order 5
	f, err := New(4, []int{1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if f.IsPrimitive() {
		t.Fatalf("expected a non primitive field")
	}
}
