package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/stlmon/driver"
	"github.com/katalvlaran/stlmon/stlconfig"
)

var (
	flagConfig  string
	flagTrace   string
	flagSignals string
	flagFormula string
	flagHorizon []float64
	flagVerbose bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Stream (upper, lower) robustness bounds for a CSV trace",
	Long: `monitor reads a CSV trace (column 0 = timestamp) and a formula, either
from a YAML --config file or from --signals/--formula/--horizon flags, and
prints one "upper lower" pair per line as each trace row is consumed.`,
	RunE: runMonitor,
}

func init() {
	var f *pflag.FlagSet = monitorCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "path to a YAML monitor config (stlconfig.Config)")
	f.StringVar(&flagTrace, "trace", "", "path to a CSV trace file (overrides config's trace field)")
	f.StringVar(&flagSignals, "signals", "", "comma-separated signal names (ignored if --config is set)")
	f.StringVar(&flagFormula, "formula", "", "STL formula body, e.g. \"x > 0 and y < 5\" (ignored if --config is set)")
	f.Float64SliceVar(&flagHorizon, "horizon", nil, "horizon as start,end (ignored if --config is set)")
	f.BoolVar(&flagVerbose, "verbose", false, "print each step's full node dump to stderr")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	signalNames, formula, horizon, tracePath, parameters, err := resolveMonitorInputs()
	if err != nil {
		return err
	}

	d, err := driver.New(signalNames, formula, horizon, parameters)
	if err != nil {
		return err
	}

	f, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("stlmon: opening trace %s: %w", tracePath, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	for {
		fields, readErr := r.Read()
		if readErr != nil {
			break
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, convErr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if convErr != nil {
				return fmt.Errorf("stlmon: malformed trace field %q: %w", field, convErr)
			}
			row[i] = v
		}

		upper, lower, stepErr := d.Step(row)
		if stepErr != nil {
			return stepErr
		}
		fmt.Printf("%g %g\n", upper, lower)
		if flagVerbose {
			fmt.Fprintln(os.Stderr, d.DebugString())
		}
	}
	return nil
}

func resolveMonitorInputs() (signalNames, formula string, horizon [2]float64, tracePath string, parameters map[string]float64, err error) {
	if flagConfig != "" {
		cfg, loadErr := stlconfig.Load(flagConfig)
		if loadErr != nil {
			err = loadErr
			return
		}
		signalNames = cfg.SignalNames()
		formula = cfg.Formula
		horizon = cfg.Horizon()
		tracePath = cfg.Trace
		parameters = cfg.Parameters
	} else {
		signalNames = flagSignals
		formula = flagFormula
		if len(flagHorizon) == 2 {
			horizon = [2]float64{flagHorizon[0], flagHorizon[1]}
		}
		tracePath = flagTrace
	}

	if flagTrace != "" {
		tracePath = flagTrace
	}
	if tracePath == "" {
		err = fmt.Errorf("stlmon: no trace file given (set --trace or config's trace field)")
	}
	return
}
