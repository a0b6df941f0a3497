package linearblock

import (
	"strconv"
	"testing"

	"github.com/nathanhack/eccsim/ecc"
	mat "github.com/nathanhack/sparsemat"
	"github.com/pkg/errors"
)

// hamming7 is the textbook (7,4) code with H = [P | I].
func hamming7() *LinearBlock {
	return &LinearBlock{
		G: mat.CSRMat(7, 4,
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
			1, 1, 0, 1,
			1, 0, 1, 1,
			0, 1, 1, 1),
		H: mat.CSRMat(3, 7,
			1, 1, 0, 1, 1, 0, 0,
			1, 0, 1, 1, 0, 1, 0,
			0, 1, 1, 1, 0, 0, 1),
		R: mat.CSRMat(4, 7,
			1, 0, 0, 0, 0, 0, 0,
			0, 1, 0, 0, 0, 0, 0,
			0, 0, 1, 0, 0, 0, 0,
			0, 0, 0, 1, 0, 0, 0),
	}
}

func TestEncodeExtract(t *testing.T) {
	l := hamming7()
	if err := l.Validate(); err != nil {
		t.Fatalf("expected valid code but found %v", err)
	}

	tests := []struct {
		message  mat.SparseVector
		codeword mat.SparseVector
	}{
		{mat.CSRVec(4, 0, 0, 0, 0), mat.CSRVec(7, 0, 0, 0, 0, 0, 0, 0)},
		{mat.CSRVec(4, 1, 0, 0, 0), mat.CSRVec(7, 1, 0, 0, 0, 1, 1, 0)},
		{mat.CSRVec(4, 1, 1, 0, 1), mat.CSRVec(7, 1, 1, 0, 1, 1, 0, 0)},
		{mat.CSRVec(4, 1, 1, 1, 1), mat.CSRVec(7, 1, 1, 1, 1, 1, 1, 1)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			codeword := l.Encode(test.message)
			if !codeword.Equals(test.codeword) {
				t.Fatalf("expected %v but found %v", test.codeword, codeword)
			}
			if !l.Syndrome(codeword).IsZero() {
				t.Fatalf("expected zero syndrome for %v", codeword)
			}
			message := l.Extract(codeword)
			if !message.Equals(test.message) {
				t.Fatalf("expected %v but found %v", test.message, message)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	l := hamming7()
	l.G = mat.CSRMatCopy(l.G)
	l.G.Set(4, 0, 0)
	if err := l.Validate(); !errors.Is(err, ecc.ErrIntegrity) {
		t.Fatalf("expected %v but found %v", ecc.ErrIntegrity, err)
	}

	// a repeated check keeps H*G == 0 but loses a parity bit
	l = hamming7()
	l.H = mat.CSRMat(3, 7,
		1, 1, 0, 1, 1, 0, 0,
		1, 1, 0, 1, 1, 0, 0,
		0, 1, 1, 1, 0, 0, 1)
	if err := l.Validate(); !errors.Is(err, ecc.ErrIntegrity) {
		t.Fatalf("expected %v but found %v", ecc.ErrIntegrity, err)
	}

	l = hamming7()
	l.R = mat.CSRMat(4, 7)
	if err := l.Validate(); !errors.Is(err, ecc.ErrIntegrity) {
		t.Fatalf("expected %v but found %v", ecc.ErrIntegrity, err)
	}
}

func TestColumnSyndromes(t *testing.T) {
	l := hamming7()
	syndromes, err := l.ColumnSyndromes()
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	expected := []int{3, 5, 6, 7, 1, 2, 4}
	for i := range expected {
		if syndromes[i] != expected[i] {
			t.Fatalf("expected %v but found %v", expected, syndromes)
		}
	}

	l.H = mat.CSRMat(3, 7,
		1, 1, 0, 1, 1, 0, 0,
		1, 1, 1, 1, 0, 1, 0,
		0, 0, 1, 1, 0, 0, 1)
	if _, err := l.ColumnSyndromes(); !errors.Is(err, ecc.ErrIntegrity) {
		t.Fatalf("expected %v but found %v", ecc.ErrIntegrity, err)
	}
}

func TestDocument(t *testing.T) {
	l := hamming7()
	doc := l.Document(ecc.HammingSEC, 3)
	if doc.K != 4 || doc.P != 3 || doc.Scheme != ecc.HammingSEC {
		t.Fatalf("unexpected document header %v %v %v", doc.Scheme, doc.K, doc.P)
	}

	actual, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if !actual.G.Equals(l.G) || !actual.H.Equals(l.H) || !actual.R.Equals(l.R) {
		t.Fatalf("expected %v but found %v", l, actual)
	}

	tests := []func(d *ecc.Document){
		func(d *ecc.Document) { d.UID++ },
		func(d *ecc.Document) { d.K = 3 },
		func(d *ecc.Document) { d.H = d.H[:2] },
		func(d *ecc.Document) { d.R = d.R[:3] },
		func(d *ecc.Document) { d.H[1] = d.H[1][:6] },
		func(d *ecc.Document) { d.GT = d.G },
		func(d *ecc.Document) { d.G = nil },
	}
	for i, corrupt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d := l.Document(ecc.HammingSEC, 3)
			corrupt(d)
			if _, err := FromDocument(d); !errors.Is(err, ecc.ErrIntegrity) {
				t.Fatalf("expected %v but found %v", ecc.ErrIntegrity, err)
			}
		})
	}
}

func TestEncodeWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	hamming7().Encode(mat.CSRVec(5))
}
