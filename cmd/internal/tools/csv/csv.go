package csv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/nathanhack/eccsim/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var WordError bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	reports, err := tools.LoadReports(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	injected := tools.InjectedErrors(reports)

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	//first write headers
	header := []string{"Code", "UID", "Failures"}
	for _, n := range injected {
		header = append(header, fmt.Sprintf("%v", n))
	}

	err = w.Write(header)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, report := range reports {
		for _, result := range report.Results {
			record := make([]string, len(header))
			record[0] = result.ShortName
			record[1] = fmt.Sprintf("%v", result.UID)
			record[2] = fmt.Sprintf("%v", result.FailureCount)

			for i, n := range injected {
				v, has := result.Stats[n]
				if has {
					record[i+3] = fmt.Sprintf("%v", tools.Residual(v, WordError))
				}
			}

			err = w.Write(record)
			if err != nil {
				fmt.Println(err)
				return
			}
		}
	}
}
