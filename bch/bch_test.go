package bch

import (
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/nathanhack/eccsim/ecc"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

func randomDataword(r *rand.Rand, n int) mat.SparseVector {
	v := mat.CSRVec(n)
	for i := 0; i < n; i++ {
		if r.Intn(2) == 1 {
			v.Set(i, 1)
		}
	}
	return v
}

func flip(v mat.SparseVector, positions ...int) mat.SparseVector {
	result := mat.CSRVecCopy(v)
	for _, p := range positions {
		result.Set(p, result.At(p)^1)
	}
	return result
}

func TestFindCode(t *testing.T) {
	tests := []struct {
		permutation, nDataBits, t int
		order, n, k, parity       int
	}{
		{0, 128, 1, 8, 255, 247, 8},
		{0, 128, 2, 8, 255, 239, 16},
		{0, 128, 3, 8, 255, 231, 24},
		{3, 16, 2, 5, 31, 21, 10},
		{0, 1, 1, 3, 7, 4, 3},
		{1, 4, 3, 4, 15, 5, 10},
		{5, 64, 5, 7, 127, 92, 35},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b, err := FindCode(test.permutation, test.nDataBits, test.t)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if b.Field.Order != test.order {
				t.Fatalf("expected %v but found %v", test.order, b.Field.Order)
			}
			if b.Field.N() != test.n {
				t.Fatalf("expected %v but found %v", test.n, b.Field.N())
			}
			if b.Code.K != test.k {
				t.Fatalf("expected %v but found %v", test.k, b.Code.K)
			}
			if b.NParityBits() != test.parity {
				t.Fatalf("expected %v but found %v", test.parity, b.NParityBits())
			}
			if b.NCodeBits() != test.nDataBits+test.parity {
				t.Fatalf("expected %v but found %v", test.nDataBits+test.parity, b.NCodeBits())
			}
			if b.CorrectionCapability() != test.t {
				t.Fatalf("expected %v but found %v", test.t, b.CorrectionCapability())
			}
		})
	}
}

func TestFindCodeErrors(t *testing.T) {
	tests := []struct {
		nDataBits, t int
		expected     error
	}{
		{0, 1, ecc.ErrInvalidParameters},
		{-3, 1, ecc.ErrInvalidParameters},
		{16, 0, ecc.ErrInvalidParameters},
		{10000, 1, ecc.ErrNoSuchCode},
		{8000, 600, ecc.ErrNoSuchCode},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := FindCode(0, test.nDataBits, test.t)
			if !errors.Is(err, test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, err)
			}
		})
	}
}

func TestZeroCodeword(t *testing.T) {
	b, err := FindCode(0, 128, 1)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if b.Field.N() != 255 {
		t.Fatalf("expected %v but found %v", 255, b.Field.N())
	}
	if b.Code.K < 128 {
		t.Fatalf("expected k >= 128 but found %v", b.Code.K)
	}

	codeword := b.Encode(mat.CSRVec(128))
	if codeword.Len() != b.NCodeBits() {
		t.Fatalf("expected %v but found %v", b.NCodeBits(), codeword.Len())
	}
	if !codeword.IsZero() {
		t.Fatalf("expected the zero codeword but found %v", codeword)
	}
}

func TestEncodeSystematic(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	b, err := FindCode(0, 100, 2)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	nk := b.NParityBits()
	for i := 0; i < 20; i++ {
		data := randomDataword(r, b.NDataBits())
		codeword := b.Encode(data)
		for j := 0; j < b.NDataBits(); j++ {
			if codeword.At(nk+j) != data.At(j) {
				t.Fatalf("expected data bit %v at %v", j, nk+j)
			}
		}

		_, status := b.DecodeWithStatus(codeword)
		if status.Detected {
			t.Fatalf("expected a valid codeword but decoder reported %v", status)
		}
	}
}

func TestDecodeExhaustive(t *testing.T) {
	tests := []struct {
		permutation, nDataBits, t int
	}{
		{0, 4, 1},
		{0, 11, 1},
		{2, 16, 2},
		{1, 5, 3},
	}
	r := rand.New(rand.NewSource(2))
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b, err := FindCode(test.permutation, test.nDataBits, test.t)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			data := randomDataword(r, b.NDataBits())
			codeword := b.Encode(data)

			n := b.NCodeBits()
			for errs := 1; errs <= test.t; errs++ {
				gen := combin.NewCombinationGenerator(n, errs)
				positions := make([]int, errs)
				for gen.Next() {
					gen.Combination(positions)
					actual, status := b.DecodeWithStatus(flip(codeword, positions...))
					if !actual.Equals(data) {
						t.Fatalf("errors at %v: expected %v but found %v", positions, data, actual)
					}
					if status.Corrected != errs {
						t.Fatalf("expected %v but found %v", errs, status.Corrected)
					}
				}
			}
		})
	}
}

func TestDecodeRandom(t *testing.T) {
	tests := []struct {
		permutation, nDataBits, t int
	}{
		{0, 128, 1},
		{0, 128, 2},
		{0, 128, 3},
		{4, 512, 3},
		{0, 128, 7},
	}
	r := rand.New(rand.NewSource(3))
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b, err := FindCode(test.permutation, test.nDataBits, test.t)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			for trial := 0; trial < 50; trial++ {
				data := randomDataword(r, b.NDataBits())
				codeword := b.Encode(data)
				for errs := 0; errs <= test.t; errs++ {
					positions := r.Perm(b.NCodeBits())[:errs]
					actual := b.Decode(flip(codeword, positions...))
					if !actual.Equals(data) {
						t.Fatalf("errors at %v: expected %v but found %v", positions, data, actual)
					}
				}
			}
		})
	}
}

func TestDecodeBeyondCapability(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, capability := range []int{1, 2, 3} {
		b, err := FindCode(0, 64, capability)
		if err != nil {
			t.Fatalf("expected no error but found %v", err)
		}
		for trial := 0; trial < 50; trial++ {
			data := randomDataword(r, b.NDataBits())
			positions := r.Perm(b.NCodeBits())[:capability+1]
			actual, status := b.DecodeWithStatus(flip(b.Encode(data), positions...))
			if actual.Len() != b.NDataBits() {
				t.Fatalf("expected %v but found %v", b.NDataBits(), actual.Len())
			}
			if !status.Detected {
				t.Fatalf("expected %v errors to be detected", capability+1)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	a, err := FindCode(7, 200, 2)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	b, err := FindCode(7, 200, 2)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if a.UID() != b.UID() {
		t.Fatalf("expected %v but found %v", a.UID(), b.UID())
	}

	c, err := FindCode(7, 200, 3)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if a.UID() == c.UID() {
		t.Fatalf("expected different uids for different codes")
	}

	d, err := FindCode(7, 201, 2)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if a.UID() == d.UID() {
		t.Fatalf("expected different uids for different data sizes")
	}
}

func TestSchemeAndDocument(t *testing.T) {
	b, err := FindCode(0, 32, 2)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if b.Scheme() != ecc.BCHT2 {
		t.Fatalf("expected %v but found %v", ecc.BCHT2, b.Scheme())
	}
	if _, err := b.Document(); !errors.Is(err, ecc.ErrUnimplemented) {
		t.Fatalf("expected %v but found %v", ecc.ErrUnimplemented, err)
	}

	b, err = FindCode(0, 32, 5)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if b.Scheme() != "BCH_T5" {
		t.Fatalf("expected %v but found %v", "BCH_T5", b.Scheme())
	}
}

func TestConcurrentUse(t *testing.T) {
	b, err := FindCode(0, 128, 3)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	var wg sync.WaitGroup
	failures := make(chan string, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for trial := 0; trial < 25; trial++ {
				data := randomDataword(r, b.NDataBits())
				positions := r.Perm(b.NCodeBits())[:r.Intn(4)]
				actual := b.Decode(flip(b.Encode(data), positions...))
				if !actual.Equals(data) {
					failures <- actual.String()
					return
				}
			}
		}(int64(g))
	}
	wg.Wait()
	close(failures)
	for f := range failures {
		t.Fatalf("concurrent decode failed: %v", f)
	}
}

func TestWrongLengthPanics(t *testing.T) {
	b, err := FindCode(0, 16, 1)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	b.Encode(mat.CSRVec(15))
}
