package selftest

import (
	"fmt"
	"runtime"

	"github.com/nathanhack/eccsim/benchmarking"
	"github.com/nathanhack/eccsim/cmd/internal/tools"
	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/factory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Scheme      string
	CodeFile    string
	NDataBits   uint
	Permutation int
	Families    []string
	Mode        string
	Trials      uint
	Threads     uint
	MaxErrors   int
	Exhaustive  bool
	Pattern     string
	Seed        int64
)

// defaultTrials is used for a single code when --trials is not given.
const defaultTrials = 100

var SelftestRun = func(cmd *cobra.Command, args []string) {
	pattern, err := benchmarking.ParseDataPattern(Pattern)
	if err != nil {
		fmt.Println(err)
		return
	}
	mode, err := benchmarking.ParseMode(Mode)
	if err != nil {
		fmt.Println(err)
		return
	}

	numberOfThread := int(Threads)
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}
	cfg := benchmarking.Config{
		Trials:     int(Trials),
		Threads:    numberOfThread,
		Pattern:    pattern,
		Seed:       Seed,
		MaxErrors:  MaxErrors,
		Exhaustive: Exhaustive,
	}

	outputFilename := ""
	if len(args) == 1 {
		outputFilename = args[0]
	}
	report := &tools.Report{Mode: string(mode)}
	ctx := tools.SignalContext()

	var code ecc.Code
	switch {
	case CodeFile != "":
		code, err = tools.LoadCode(CodeFile)
	case Scheme != "":
		var scheme ecc.Scheme
		scheme, err = ecc.ParseScheme(Scheme)
		if err == nil {
			code, err = factory.Build(scheme, int(NDataBits), Permutation, ecc.WithLogger(logrus.StandardLogger()))
		}
	}
	if err != nil {
		logrus.Fatal(err)
	}

	if code != nil {
		if cfg.Trials == 0 {
			cfg.Trials = defaultTrials
		}
		cfg.ShowProgress = true
		logrus.Infof("Self testing %v", code.Name())

		report.Results = []*benchmarking.Result{nil}
		checkpointCount := 0
		checkpoint := func(updated *benchmarking.Result) {
			checkpointCount++
			if outputFilename == "" || checkpointCount%(numberOfThread*10) != 0 {
				return
			}
			report.Results[0] = updated
			if err := tools.SaveReport(outputFilename, report); err != nil {
				fmt.Println(err)
			}
		}
		report.Results[0] = benchmarking.Conformance(ctx, code, cfg, checkpoint)
	} else {
		cases := make([]benchmarking.Case, 0)
		for _, name := range Families {
			family, err := benchmarking.ParseFamily(name)
			if err != nil {
				logrus.Fatal(err)
			}
			cases = append(cases, benchmarking.Cases(family, mode)...)
		}
		logrus.Infof("Self testing %v codes (%v)", len(cases), mode)

		report.Results, err = benchmarking.RunCases(ctx, cases, cfg, ecc.WithLogger(logrus.StandardLogger()))
		if err != nil {
			logrus.Error(err)
		}
	}

	if outputFilename != "" {
		if err := tools.SaveReport(outputFilename, report); err != nil {
			fmt.Println(err)
		}
	}

	for _, result := range report.Results {
		fmt.Printf("%v: %v trials, %v exhaustive checks, %v failures\n",
			result.ShortName, result.Trials, result.ExhaustiveChecks, result.FailureCount)
	}
	failed := report.Failed()
	for _, result := range failed {
		for _, f := range result.Failures {
			logrus.Errorf("%v: errors at %v left %v data bit errors", result.ShortName, f.Positions, f.DataBitErrors)
		}
	}
	if len(failed) > 0 {
		logrus.Fatalf("%v of %v codes failed", len(failed), len(report.Results))
	}
	logrus.Infof("All %v codes passed", len(report.Results))
}
