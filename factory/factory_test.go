package factory

import (
	"fmt"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nathanhack/eccsim/ecc"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		scheme                 ecc.Scheme
		nDataBits, permutation int
		t, nCodeBits           int
	}{
		{ecc.RepetitionT1, 8, 0, 1, 24},
		{ecc.RepetitionT2, 8, 1, 2, 40},
		{ecc.RepetitionT3, 8, 2, 3, 56},
		{ecc.HammingSEC, 4, 0, 1, 7},
		{ecc.HammingSEC, 128, 3, 1, 136},
		{ecc.BCHT1, 128, 0, 1, 136},
		{ecc.BCHT2, 128, 0, 2, 144},
		{ecc.BCHT3, 128, 0, 3, 152},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			code, err := Build(test.scheme, test.nDataBits, test.permutation)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if code.Scheme() != test.scheme {
				t.Fatalf("expected %v but found %v", test.scheme, code.Scheme())
			}
			if code.CorrectionCapability() != test.t {
				t.Fatalf("expected %v but found %v", test.t, code.CorrectionCapability())
			}
			if code.NCodeBits() != test.nCodeBits {
				t.Fatalf("expected %v but found %v", test.nCodeBits, code.NCodeBits())
			}
			if code.NDataBits() != test.nDataBits || code.Permutation() != test.permutation {
				t.Fatalf("unexpected parameters %v", code.ShortName())
			}

			message := mat.CSRVec(test.nDataBits)
			message.Set(test.nDataBits-1, 1)
			if actual := code.Decode(code.Encode(message)); !actual.Equals(message) {
				t.Fatalf("expected %v but found %v", message, actual)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		scheme    ecc.Scheme
		nDataBits int
		expected  error
	}{
		{"LDPC", 8, ecc.ErrUnknownScheme},
		{ecc.HammingSEC, 0, ecc.ErrInvalidParameters},
		{ecc.RepetitionT1, -1, ecc.ErrInvalidParameters},
		{ecc.BCHT3, 100000, ecc.ErrNoSuchCode},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			code, err := Build(test.scheme, test.nDataBits, 0)
			if !errors.Is(err, test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, err)
			}
			if code != nil {
				t.Fatalf("expected nil but found %v", code)
			}
		})
	}
}

func TestFromDocument(t *testing.T) {
	code, err := Build(ecc.HammingSEC, 32, 5)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	doc, err := code.Document()
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}

	path := filepath.Join(t.TempDir(), "hsc.json")
	if err := doc.Save(path); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	loaded, err := BuildFromFile(path)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if loaded.UID() != code.UID() || loaded.Scheme() != ecc.HammingSEC {
		t.Fatalf("expected %v but found %v", code.ShortName(), loaded.ShortName())
	}

	for _, scheme := range []ecc.Scheme{ecc.BCHT1, ecc.RepetitionT2} {
		if _, err := FromDocument(&ecc.Document{Scheme: scheme}); !errors.Is(err, ecc.ErrUnimplemented) {
			t.Fatalf("expected %v but found %v", ecc.ErrUnimplemented, err)
		}
	}
	if _, err := FromDocument(&ecc.Document{Scheme: "XYZ"}); !errors.Is(err, ecc.ErrUnknownScheme) {
		t.Fatalf("expected %v but found %v", ecc.ErrUnknownScheme, err)
	}

	doc.UID++
	if err := doc.Save(path); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if _, err := BuildFromFile(path); !errors.Is(err, ecc.ErrIntegrity) {
		t.Fatalf("expected %v but found %v", ecc.ErrIntegrity, err)
	}
	if _, err := BuildFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestBuildAll(t *testing.T) {
	codes, err := BuildAll([]ecc.Scheme{ecc.RepetitionT1, ecc.HammingSEC, ecc.BCHT2}, 64, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if len(codes) != 9 {
		t.Fatalf("expected %v but found %v", 9, len(codes))
	}

	// the order 3 and 4 catalogs have a single entry so every permutation gives the same code
	for _, k := range []int{4, 11} {
		if _, err := BuildAll([]ecc.Scheme{ecc.BCHT1}, k, []int{0, 1}); err == nil {
			t.Fatalf("k %v: expected a uid collision", k)
		}
	}
	// 12 data bits need GF(2^5), which has three polynomials
	if _, err := BuildAll([]ecc.Scheme{ecc.BCHT1}, 12, []int{0, 1, 2}); err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
}

func ExampleBuild() {
	for _, scheme := range []ecc.Scheme{ecc.RepetitionT1, ecc.HammingSEC, ecc.BCHT1} {
		code, err := Build(scheme, 128, 0)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(code.ShortName())
	}
	// Output:
	// REP: p:0 t:1 k:128 n:384
	// HSC: p:0 t:1 k:128 n:136
	// BCH: p:0 t:1 k:247 n:255 m:8
}
