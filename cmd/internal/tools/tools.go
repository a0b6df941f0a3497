package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nathanhack/eccsim/benchmarking"
	"github.com/nathanhack/eccsim/ecc"
	"github.com/nathanhack/eccsim/factory"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Report is the saved outcome of a self test run.
type Report struct {
	Mode    string
	Results []*benchmarking.Result
}

// Failed returns the results with at least one uncorrected error pattern within t.
func (r *Report) Failed() []*benchmarking.Result {
	failed := make([]*benchmarking.Result, 0)
	for _, result := range r.Results {
		if !result.Passed() {
			failed = append(failed, result)
		}
	}
	return failed
}

// LoadCode rebuilds the code saved at filepath.
func LoadCode(filepath string) (ecc.Code, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the ECC_JSON_FILE must exist")
	}
	return factory.BuildFromFile(filepath, ecc.WithLogger(logrus.StandardLogger()))
}

// LoadReport returns nil, nil when there is no report at filepath yet.
func LoadReport(filepath string) (*Report, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %v", filepath, err)
	}

	var report Report
	err = json.Unmarshal(bs, &report)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %v", filepath, err)
	}
	return &report, nil
}

func SaveReport(filepath string, report *Report) error {
	bs, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error serializing report: %v", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving report to %v: %v", filepath, err)
	}
	return nil
}

// LoadReports loads every file in filepaths, each of which must exist.
func LoadReports(filepaths []string) ([]*Report, error) {
	reports := make([]*Report, len(filepaths))
	for i, f := range filepaths {
		report, err := LoadReport(f)
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, fmt.Errorf("no report found at %v", f)
		}
		reports[i] = report
	}
	return reports, nil
}

// InjectedErrors returns the sorted union of the injected error counts over all results.
func InjectedErrors(reports []*Report) []int {
	counts := map[int]bool{}
	for _, report := range reports {
		for _, result := range report.Results {
			for n := range result.Stats {
				counts[n] = true
			}
		}
	}
	keys := maps.Keys(counts)
	slices.Sort(keys)
	return keys
}

// Residual returns the mean residual data bit errors, or the word error rate when words is set.
func Residual(s benchmarking.Stats, words bool) float64 {
	if words {
		return s.WordErrors.Mean
	}
	return s.DataBitErrors.Mean
}

// SignalContext is cancelled on SIGINT or SIGTERM.
func SignalContext() context.Context {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()
	return ctx
}
