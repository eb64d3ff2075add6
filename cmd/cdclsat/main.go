// Command cdclsat solves a DIMACS CNF instance with a CDCL SAT solver.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/halvardk/cdclsat/internal/sat"
	"github.com/halvardk/cdclsat/parsers"
)

var (
	flagCPUProfile string
	flagMemProfile string
)

func main() {
	root := &cobra.Command{
		Use:   "cdclsat <instance.cnf>",
		Short: "Solve a DIMACS CNF instance",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	root.Flags().StringVar(&flagCPUProfile, "cpuprofile", "", "write CPU profile to file")
	root.Flags().StringVar(&flagMemProfile, "memprofile", "", "write memory profile to file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	filepath := args[0]
	log := setupLogger()

	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			return fmt.Errorf("could not create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	totalStart := time.Now()

	opts := sat.DefaultOptions
	if log != nil {
		// log is typed *logrus.Logger; only assign it to the
		// logrus.FieldLogger interface field when non-nil, otherwise the
		// interface itself is non-nil but wraps a nil pointer.
		opts.Logger = log
	}

	start := time.Now()
	s := sat.NewSolver(opts)
	if err := parsers.LoadDIMACSAuto(filepath, s); err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}
	toParse := time.Since(start)

	start = time.Now()
	// Loading has already populated the solver; "init" is a no-op for
	// this solver but kept as a distinct phase to mirror the timing
	// breakdown callers expect on the summary line.
	toInit := time.Since(start)

	start = time.Now()
	result := s.Solve()
	toSolve := time.Since(start)

	total := time.Since(totalStart)

	fmt.Printf(
		"%s ===== %s in %s ===== %s to parse | %s to init | %s to solve\n",
		filepath, resultString(result), total, toParse, toInit, toSolve,
	)

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %w", err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %w", err)
		}
	}

	return nil
}

func resultString(r sat.LBool) string {
	switch r {
	case sat.True:
		return "Sat"
	case sat.False:
		return "Unsat"
	default:
		return "Unknown"
	}
}

// setupLogger mirrors the LOG=1 trace-to-stdout-and-file setup: nil when
// unset, so the solver's logTrace calls cost nothing.
func setupLogger() *logrus.Logger {
	if os.Getenv("LOG") == "" {
		return nil
	}

	f, err := os.Create("output.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open output.log: %s\n", err)
		return nil
	}

	log := logrus.New()
	log.SetLevel(logrus.TraceLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return log
}
