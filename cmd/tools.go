package cmd

import (
	"github.com/nathanhack/eccsim/cmd/internal/tools/chart"
	"github.com/nathanhack/eccsim/cmd/internal/tools/csv"
	"github.com/nathanhack/eccsim/cmd/internal/tools/info"
	"github.com/nathanhack/eccsim/cmd/internal/tools/selftest"
	"github.com/nathanhack/eccsim/ecc"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsInfoCmd represents the info command
var toolsInfoCmd = &cobra.Command{
	Use:     "info [ECC_JSON_FILE]",
	Aliases: []string{"i"},
	Short:   "Describes a code",
	Long:    `Describes a saved code, or the code built from --scheme, --data and --permutation.`,
	Args:    cobra.MaximumNArgs(1),
	Run:     info.InfoRun,
}

// toolsSelftestCmd represents the selftest command
var toolsSelftestCmd = &cobra.Command{
	Use:     "selftest [RESULT_JSON]",
	Aliases: []string{"st", "s"},
	Short:   "Checks codes against their correction capability",
	Long: `Encodes data words, injects every number of bit errors from 0 to the codeword length and
reports any error pattern within the correction capability that was not corrected.
With --scheme or --code a single code is checked, otherwise the predefined cases of each family.`,
	Args: cobra.MaximumNArgs(1),
	Run:  selftest.SelftestRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an html bar chart",
	Long:  `Export to an html bar chart of the residual errors per number of injected errors`,
	Run:   chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsInfoCmd)
	toolsCmd.AddCommand(toolsSelftestCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsInfoCmd.Flags().StringVarP(&info.Scheme, "scheme", "s", string(ecc.HammingSEC), "the scheme of the code: "+ecc.SchemeList())
	toolsInfoCmd.Flags().UintVarP(&info.NDataBits, "data", "k", 128, "the number of data bits")
	toolsInfoCmd.Flags().IntVarP(&info.Permutation, "permutation", "p", 0, "the permutation of the code")
	toolsInfoCmd.Flags().BoolVarP(&info.Matrices, "matrices", "m", false, "print G, H and R when the code has them")

	toolsSelftestCmd.Flags().StringVarP(&selftest.Scheme, "scheme", "s", "", "check the single code of this scheme: "+ecc.SchemeList())
	toolsSelftestCmd.Flags().StringVarP(&selftest.CodeFile, "code", "c", "", "check the single code saved in this ECC_JSON_FILE")
	toolsSelftestCmd.Flags().UintVarP(&selftest.NDataBits, "data", "k", 128, "the number of data bits used with --scheme")
	toolsSelftestCmd.Flags().IntVarP(&selftest.Permutation, "permutation", "p", 0, "the permutation used with --scheme")
	toolsSelftestCmd.Flags().StringSliceVarP(&selftest.Families, "family", "f", []string{"REP", "HSC", "BCH"}, "the code families to check")
	toolsSelftestCmd.Flags().StringVarP(&selftest.Mode, "mode", "m", "fast", "the predefined cases to run: fast or slow")
	toolsSelftestCmd.Flags().UintVarP(&selftest.Trials, "trials", "t", 0, "the number of data words per code (0 means the case default)")
	toolsSelftestCmd.Flags().UintVar(&selftest.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsSelftestCmd.Flags().IntVar(&selftest.MaxErrors, "max-errors", -1, "the largest number of injected errors (-1 means the codeword length)")
	toolsSelftestCmd.Flags().BoolVarP(&selftest.Exhaustive, "exhaustive", "e", false, "also check every error pattern of weight <= t where affordable")
	toolsSelftestCmd.Flags().StringVar(&selftest.Pattern, "pattern", "ones", "the data words: ones, zeros or random")
	toolsSelftestCmd.Flags().Int64Var(&selftest.Seed, "seed", 0, "the seed of the first trial")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.WordError, "word", "w", false, "outputs the word error rate instead of the residual data bit errors")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().BoolVarP(&chart.WordError, "word", "w", false, "charts the word error rate instead of the residual data bit errors")
}
