package cmd

import (
	"github.com/nathanhack/eccsim/cmd/internal/create/hamming"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new ECC",
	Long:    `create provides the ability to make a new ECC and save it so it can be used later by the tools.`,
}

// createHammingCmd represents the Hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming OUTPUT_HAMMING_JSON",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a new Hamming code based ECC",
	Long: `Creates a new single error correcting Hamming code for any number of data bits.
The permutation selects the data syndromes and shuffles the codeword positions.`,
	Args: cobra.ExactArgs(1),
	Run:  hamming.HammingRun,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.NDataBits, "data", "k", 4, "the number of data bits (>=1)")
	createHammingCmd.Flags().IntVarP(&hamming.Permutation, "permutation", "p", 0, "the permutation used to shuffle the code")
	createHammingCmd.Flags().BoolVar(&hamming.Raw, "raw", false, "derive G and R directly instead of from the standard form of H")
}
