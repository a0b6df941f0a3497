package chart

import (
	"fmt"
	"os"

	"github.com/nathanhack/eccsim/benchmarking"
	"github.com/nathanhack/eccsim/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var WordError bool

var ChartRun = func(cmd *cobra.Command, args []string) {
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
	xnames := make([]string, len(injected))
	for i, n := range injected {
		xnames[i] = fmt.Sprint(n)
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	yName := "Residual Data Bit Errors"
	if WordError {
		yName = "Word Error Rate"
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: yName,
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Injected Errors",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      yName,
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	for _, report := range reports {
		for _, result := range report.Results {
			bar.AddSeries(result.ShortName, series(result, injected))
		}
	}

	err = bar.Render(f)
	if err != nil {
		fmt.Println(err)
	}
}

func series(result *benchmarking.Result, injected []int) []opts.BarData {
	results := make([]opts.BarData, len(injected))
	null := opts.BarData{Value: nil}
	for i, n := range injected {
		x, has := result.Stats[n]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: tools.Residual(x, WordError),
		}
	}
	return results
}
