package internal

import (
	"context"
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestRun(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected mat.SparseMat
	}{
		{ //Hamming 7
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
		},
		{ //Random - one linearly dependent row
			mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1),
			nil,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, _ := Elimination{Threads: 1}.Run(context.Background(), test.input)

			if test.expected != nil {
				if !test.expected.Equals(actual) {
					t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, actual)
				}
			} else {
				if actual != nil {
					t.Fatalf("expected nil but found \n%v\n", actual)
				}
			}
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		{mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1), 3},
		{mat.CSRMat(3, 4, 1, 1, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0), 2},
		{mat.CSRMat(2, 3, 0, 0, 0, 0, 0, 0), 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Elimination{Threads: 1}.Rank(context.Background(), test.input)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestSystematic(t *testing.T) {
	tests := []mat.SparseMat{
		// identity at the end
		mat.CSRMat(3, 7, 1, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 1, 0, 0, 1),
		// columns scrambled
		mat.CSRMat(3, 7, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1),
		// needs column swaps to find pivots
		mat.CSRMat(3, 6, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 0, 1, 1, 1),
	}
	for i, H := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ordering, G, err := Elimination{Threads: 1}.Systematic(context.Background(), H)
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}

			np, n := H.Dims()
			rows, cols := G.Dims()
			if rows != n || cols != n-np {
				t.Fatalf("expected (%v,%v) but found (%v,%v)", n, n-np, rows, cols)
			}

			// back in the original column space G must still be in the null space of H
			if !ValidateHG(H, Unorder(G, ordering)) {
				t.Fatalf("expected H*G == 0 for \n%v\n", G)
			}
			if !ValidateHG(ColumnSwapped(H, ordering), G) {
				t.Fatalf("expected reordered H*G == 0")
			}
		})
	}
}

func TestSystematicRankDeficient(t *testing.T) {
	H := mat.CSRMat(3, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0)
	if _, _, err := (Elimination{Threads: 1}).Systematic(context.Background(), H); err == nil {
		t.Fatalf("expected an error for a rank deficient H")
	}
}

func TestColumnSyndromes(t *testing.T) {
	H := mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1)
	syndromes, err := ColumnSyndromes(H)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	expected := []int{1, 2, 4, 3, 7, 5, 6}
	for i := range expected {
		if syndromes[i] != expected[i] {
			t.Fatalf("expected %v but found %v", expected, syndromes)
		}
	}

	duplicate := mat.CSRMat(2, 3, 1, 1, 0, 0, 0, 1)
	if _, err := ColumnSyndromes(duplicate); err == nil {
		t.Fatalf("expected an error for duplicate columns")
	}
	zero := mat.CSRMat(2, 3, 1, 0, 1, 0, 0, 1)
	if _, err := ColumnSyndromes(zero); err == nil {
		t.Fatalf("expected an error for a zero column")
	}
}

func TestValidateRG(t *testing.T) {
	G := mat.CSRMat(3, 1, 1, 1, 1)
	if !ValidateRG(mat.CSRMat(1, 3, 0, 1, 0), G) {
		t.Fatalf("expected R*G == I")
	}
	if ValidateRG(mat.CSRMat(1, 3, 1, 1, 0), G) {
		t.Fatalf("expected R*G != I")
	}
}

func TestRunThreads(t *testing.T) {
	// every nonzero 6 bit column once, so H is full rank and most columns hold several ones
	H := mat.CSRMat(6, 63)
	for c := 0; c < 63; c++ {
		for r := 0; r < 6; r++ {
			if (c+1)>>r&1 == 1 {
				H.Set(r, c, 1)
			}
		}
	}

	expected, expectedOrdering := Elimination{Threads: 1}.Run(context.Background(), H)
	if expected == nil {
		t.Fatalf("expected a reduced matrix")
	}
	for _, threads := range []int{2, 4, 8} {
		actual, ordering := Elimination{Threads: threads}.Run(context.Background(), H)
		if !expected.Equals(actual) {
			t.Fatalf("threads %v: expected \n%v\n but found \n%v\n", threads, expected, actual)
		}
		for i := range expectedOrdering {
			if ordering[i] != expectedOrdering[i] {
				t.Fatalf("threads %v: expected %v but found %v", threads, expectedOrdering, ordering)
			}
		}
		if rank := (Elimination{Threads: threads}).Rank(context.Background(), H); rank != 6 {
			t.Fatalf("expected %v but found %v", 6, rank)
		}
	}
}
