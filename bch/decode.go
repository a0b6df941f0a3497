package bch

import (
	"fmt"

	"github.com/nathanhack/eccsim/galois"
)

// Status describes the outcome of a single decode.
type Status struct {
	Detected      bool // a nonzero syndrome was found
	Corrected     int  // number of bits flipped
	Uncorrectable bool // errors were detected but could not be located
}

func (s Status) String() string {
	switch {
	case !s.Detected:
		return "no error"
	case s.Uncorrectable:
		return "uncorrectable"
	}
	return fmt.Sprintf("corrected %v", s.Corrected)
}

// scratch holds the working tables of one decode. It is never shared between calls.
//  s[i]    syndrome i in index form, i = 1..2t
//  elp[u]  error locator polynomial at step u
//  d[u]    discrepancy at step u in index form
//  l[u]    degree of elp[u]
//  ulu[u]  u - l[u]
type scratch struct {
	s   []int
	elp [][]int
	d   []int
	l   []int
	ulu []int
}

func newScratch(t int) *scratch {
	t2 := 2 * t
	elp := make([][]int, t2+2)
	for i := range elp {
		elp[i] = make([]int, 2*t2+2)
	}
	return &scratch{
		s:   make([]int, t2+1),
		elp: elp,
		d:   make([]int, t2+2),
		l:   make([]int, t2+2),
		ulu: make([]int, t2+2),
	}
}

// decode corrects received (a length n word) in place.
//
// The 2t syndromes are found by evaluating received at alpha^1..alpha^2t. When any is
// nonzero the error locator polynomial is built with the Berlekamp iteration (Lin & Costello
// terminology), keeping values in index form and converting to polynomial form only to add.
// A locator of degree > t means the error pattern is uncorrectable. Otherwise the Chien search
// evaluates the locator at every nonzero element; the inverse of each root is an error
// position. If fewer roots than the degree are found the word is left untouched.
func decode(f *galois.Field, t int, received []int) Status {
	n := f.N()
	t2 := 2 * t
	alphaTo, indexOf := f.AlphaTo, f.IndexOf
	w := newScratch(t)
	s, elp, d, l, ulu := w.s, w.elp, w.d, w.l, w.ulu

	ones := make([]int, 0)
	for j, r := range received {
		if r != 0 {
			ones = append(ones, j)
		}
	}

	synError := false
	for i := 1; i <= t2; i++ {
		s[i] = 0
		for _, j := range ones {
			s[i] ^= alphaTo[(i*j)%n]
		}
		if s[i] != 0 {
			synError = true
		}
		s[i] = indexOf[s[i]]
	}

	if !synError {
		return Status{}
	}
	status := Status{Detected: true}

	d[0] = 0
	d[1] = s[1]
	elp[0][0] = 0
	elp[1][0] = 1
	for i := 1; i < t2; i++ {
		elp[0][i] = -1
		elp[1][i] = 0
	}
	l[0] = 0
	l[1] = 0
	ulu[0] = -1
	ulu[1] = 0

	u := 0
	for {
		u++
		if d[u] == -1 {
			l[u+1] = l[u]
			for i := 0; i <= l[u]; i++ {
				elp[u+1][i] = elp[u][i]
				elp[u][i] = indexOf[elp[u][i]]
			}
		} else {
			// find the previous step q with d[q] != 0 and the largest u_lu[q]
			q := u - 1
			for d[q] == -1 && q > 0 {
				q--
			}
			if q > 0 {
				for j := q - 1; j >= 0; j-- {
					if d[j] != -1 && ulu[q] < ulu[j] {
						q = j
					}
				}
			}

			if l[u] > l[q]+u-q {
				l[u+1] = l[u]
			} else {
				l[u+1] = l[q] + u - q
			}

			for i := 0; i < t2; i++ {
				elp[u+1][i] = 0
			}
			for i := 0; i <= l[q]; i++ {
				if elp[q][i] != -1 {
					elp[u+1][i+u-q] = alphaTo[(d[u]+n-d[q]+elp[q][i])%n]
				}
			}
			for i := 0; i <= l[u]; i++ {
				elp[u+1][i] ^= elp[u][i]
				elp[u][i] = indexOf[elp[u][i]]
			}
		}
		ulu[u+1] = u - l[u+1]

		// no discrepancy is needed after the last step
		if u < t2 {
			if s[u+1] != -1 {
				d[u+1] = alphaTo[s[u+1]]
			} else {
				d[u+1] = 0
			}
			for i := 1; i <= l[u+1]; i++ {
				if s[u+1-i] != -1 && elp[u+1][i] != 0 {
					d[u+1] ^= alphaTo[(s[u+1-i]+indexOf[elp[u+1][i]])%n]
				}
			}
			d[u+1] = indexOf[d[u+1]]
		}

		if u >= t2 || l[u+1] > t {
			break
		}
	}

	u++
	if l[u] > t {
		status.Uncorrectable = true
		return status
	}

	// Chien search
	reg := make([]int, l[u]+1)
	for i := 1; i <= l[u]; i++ {
		reg[i] = indexOf[elp[u][i]]
	}
	roots := make([]int, 0, l[u])
	for i := 1; i <= n; i++ {
		q := 1
		for j := 1; j <= l[u]; j++ {
			if reg[j] != -1 {
				reg[j] = (reg[j] + j) % n
				q ^= alphaTo[reg[j]]
			}
		}
		if q == 0 {
			roots = append(roots, n-i)
		}
	}

	if len(roots) != l[u] || len(roots) == 0 {
		status.Uncorrectable = true
		return status
	}

	for _, loc := range roots {
		received[loc] ^= 1
	}
	status.Corrected = len(roots)
	return status
}
