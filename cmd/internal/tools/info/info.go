package info

import (
	"fmt"

	"github.com/nathanhack/eccsim/cmd/internal/tools"
	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/factory"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Scheme      string
	NDataBits   uint
	Permutation int
	Matrices    bool
)

var InfoRun = func(cmd *cobra.Command, args []string) {
	var code ecc.Code
	var err error
	if len(args) == 1 {
		code, err = tools.LoadCode(args[0])
	} else {
		var scheme ecc.Scheme
		scheme, err = ecc.ParseScheme(Scheme)
		if err == nil {
			code, err = factory.Build(scheme, int(NDataBits), Permutation, ecc.WithLogger(logrus.StandardLogger()))
		}
	}
	if err != nil {
		if errors.Is(err, ecc.ErrIntegrity) {
			logrus.Fatalf("the code failed its integrity checks: %v", err)
		}
		fmt.Println(err)
		return
	}

	fmt.Println(code.Name())
	fmt.Printf("scheme: %v\n", code.Scheme())
	fmt.Printf("data bits (k): %v\n", code.NDataBits())
	fmt.Printf("code bits (n): %v\n", code.NCodeBits())
	fmt.Printf("correctable errors (t): %v\n", code.CorrectionCapability())
	fmt.Printf("rate: %0.4f\n", float64(code.NDataBits())/float64(code.NCodeBits()))
	fmt.Printf("uid: %v\n", code.UID())

	if !Matrices {
		return
	}
	doc, err := code.Document()
	if err != nil {
		fmt.Println(err)
		return
	}
	G, H, R, err := doc.Matrices()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("G:\n%v\nH:\n%v\nR:\n%v\n", G, H, R)
}
