// Command mpcalc is a CLI harness over bignum.Int: a binary-expression
// evaluator, a property-fuzzer runner, and an operation micro-benchmark,
// an external consumer of the core library rather than part of it.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oisee/mpint/pkg/bignum"
	"github.com/oisee/mpint/pkg/mpop"
	"github.com/oisee/mpint/pkg/propcheck"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mpcalc",
		Short: "multi-precision arithmetic calculator, fuzzer and benchmark driver",
	}

	var radix int
	var signed bool
	var width int

	evalCmd := &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate a single binary expression over bignum.Int",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bignum.Parse(args[0], 0, signed, width)
			if err != nil {
				return fmt.Errorf("parsing first operand: %w", err)
			}
			op, err := parseOp(args[1])
			if err != nil {
				return err
			}
			b, err := bignum.Parse(args[2], 0, signed, width)
			if err != nil {
				return fmt.Errorf("parsing second operand: %w", err)
			}

			if mpop.Catalog[op].DivisorMustBeChecked && b.IsZero() {
				return fmt.Errorf("division by zero")
			}

			result, err := mpop.ApplyBinary(op, a, b)
			if err != nil {
				return err
			}
			out := result.Format(radix)
			if out == "" {
				return fmt.Errorf("unsupported radix %d", radix)
			}
			fmt.Println(out)
			return nil
		},
	}
	evalCmd.Flags().IntVar(&radix, "radix", 10, "Output radix (2, 10 or 16)")
	evalCmd.Flags().BoolVar(&signed, "signed", false, "Interpret operands as signed")
	evalCmd.Flags().IntVar(&width, "width", 0, "Fixed bit width (0 = unbounded)")

	var workers int
	var iterations int
	var verbose bool
	var checkpointPath string
	var output string
	var widthsStr string

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the random property fuzzer against the arithmetic invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			widths, err := parseWidths(widthsStr)
			if err != nil {
				return fmt.Errorf("parsing --widths: %w", err)
			}

			wp := propcheck.NewWorkerPool(workers)
			if checkpointPath != "" {
				if ckpt, err := propcheck.LoadCheckpoint(checkpointPath); err == nil {
					fmt.Printf("Previous checkpoint: %d checked, %d failures (this run starts fresh and overwrites it)\n",
						ckpt.Checked, len(ckpt.Failures))
				}
			}

			fmt.Printf("Running %d iterations across %d workers over widths %v\n",
				iterations, wp.NumWorkers, widths)
			wp.Run(propcheck.Invariants, widths, iterations, verbose)

			failures := wp.Results.Failures()
			fmt.Printf("\n%d invariant failures found\n", len(failures))
			for i, f := range failures {
				if i >= 20 {
					fmt.Printf("  ... and %d more\n", len(failures)-i)
					break
				}
				fmt.Printf("  [%s] %s\n", f.Invariant, f.Detail)
			}

			if checkpointPath != "" {
				checked, _ := wp.Stats()
				ckpt := &propcheck.Checkpoint{Failures: failures, Checked: checked, Completed: 1}
				if err := propcheck.SaveCheckpoint(checkpointPath, ckpt); err != nil {
					return fmt.Errorf("saving checkpoint: %w", err)
				}
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := propcheck.WriteJSON(f, failures); err != nil {
					return err
				}
				fmt.Printf("Written to %s\n", output)
			}

			if len(failures) > 0 {
				return fmt.Errorf("%d invariants falsified", len(failures))
			}
			return nil
		},
	}
	verifyCmd.Flags().IntVar(&workers, "workers", 0, "Number of workers (0 = NumCPU)")
	verifyCmd.Flags().IntVar(&iterations, "iterations", 100_000, "Total vectors to check")
	verifyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	verifyCmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "Checkpoint file to report and overwrite")
	verifyCmd.Flags().StringVar(&output, "output", "", "Output JSON report path")
	verifyCmd.Flags().StringVar(&widthsStr, "widths", "0,8,16,32,64,65,128", "Comma-separated candidate widths (0 = unbounded)")

	var benchOps string
	var benchDuration time.Duration

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Micro-benchmark binary operations, one after another",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOpList(benchOps)
			if err != nil {
				return err
			}
			runBench(ops, benchDuration)
			return nil
		},
	}
	benchCmd.Flags().StringVar(&benchOps, "ops", "add,mul,div", "Comma-separated operations to benchmark")
	benchCmd.Flags().DurationVar(&benchDuration, "duration", 2*time.Second, "Benchmark duration per operation")

	rootCmd.AddCommand(evalCmd, verifyCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseOp(s string) (mpop.OpCode, error) {
	s = strings.ToLower(s)
	for op := mpop.OpCode(0); op < mpop.OpCodeCount; op++ {
		if mpop.Catalog[op].Mnemonic == s || mpop.Catalog[op].Symbol == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

func parseOpList(s string) ([]mpop.OpCode, error) {
	parts := strings.Split(s, ",")
	ops := make([]mpop.OpCode, 0, len(parts))
	for _, p := range parts {
		op, err := parseOp(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseWidths(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		widths = append(widths, v)
	}
	return widths, nil
}

// runBench times how many operations of each kind, over two fixed 256-bit
// operands, complete within duration on the calling goroutine, reporting
// a throughput line per operation.
func runBench(ops []mpop.OpCode, duration time.Duration) {
	a := bignum.FromUint64(0xDEADBEEFCAFEBABE, false).WithWidth(256, false)
	b := bignum.FromUint64(0x0123456789ABCDEF, false).WithWidth(256, false)

	for _, op := range ops {
		if mpop.Catalog[op].Arity != 2 {
			fmt.Printf("  %-6s skipped (not a binary op)\n", mpop.Catalog[op].Mnemonic)
			continue
		}
		count := 0
		deadline := time.Now().Add(duration)
		start := time.Now()
		for time.Now().Before(deadline) {
			if _, err := mpop.ApplyBinary(op, a, b); err == nil {
				count++
			}
		}
		elapsed := time.Since(start)
		rate := float64(count) / elapsed.Seconds()
		fmt.Printf("  %-6s %10d ops in %s (%.1fk ops/s)\n",
			mpop.Catalog[op].Mnemonic, count, elapsed.Round(time.Millisecond), rate/1e3)
	}
}
