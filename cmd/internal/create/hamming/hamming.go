package hamming

import (
	"fmt"

	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	NDataBits   uint
	Permutation int
	Raw         bool
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	strategy := hamming.StandardForm
	if Raw {
		strategy = hamming.Raw
	}

	h, err := hamming.New(Permutation, int(NDataBits), strategy, ecc.WithLogger(logrus.StandardLogger()))
	if err != nil {
		fmt.Println("Unable to create Hamming code: ", err)
		return
	}

	doc, err := h.Document()
	if err != nil {
		fmt.Println("Unable to serialize the Hamming code: ", err)
		return
	}

	err = doc.Save(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Saved %v (uid %v) to %v", h.ShortName(), h.UID(), args[0])
}
