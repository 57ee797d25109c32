// Command mpcalc is a small command-line front end over the mpfloat
// arbitrary-precision add/sub kernel: one-shot add/sub subcommands, their
// Rational-operand counterparts, and an interactive repl.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mpfloat/mpfloat"
	"github.com/mpfloat/mpfloat/internal/precfmt"
)

func main() {
	var precStr string
	var roundStr string
	var verbose bool

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:   "mpcalc",
		Short: "Arbitrary-precision binary floating-point add/sub calculator",
	}
	rootCmd.PersistentFlags().StringVar(&precStr, "prec", "53", "result precision in bits")
	rootCmd.PersistentFlags().StringVar(&roundStr, "round", "nearest", "rounding mode: "+strings.Join(precfmt.RoundingModeNames(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace the Rational adaptive-precision loop")

	resolve := func() (uint64, mpfloat.RoundingMode, error) {
		prec, err := precfmt.ParsePrecision(precStr)
		if err != nil {
			return 0, 0, err
		}
		rm, err := precfmt.ParseRoundingMode(roundStr)
		if err != nil {
			return 0, 0, err
		}
		return prec, rm, nil
	}

	installTrace := func() {
		if !verbose {
			mpfloat.AdaptiveLoopTrace = nil
			return
		}
		mpfloat.AdaptiveLoopTrace = func(workingPrec uint64, iteration int) {
			logger.Debug().Uint64("working_prec", workingPrec).Int("iteration", iteration).Msg("adaptive loop")
		}
	}

	addCmd := &cobra.Command{
		Use:   "add <x> <y>",
		Short: "Add two decimal operands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prec, rm, err := resolve()
			if err != nil {
				return err
			}
			return runAdd(cmd.OutOrStdout(), args[0], args[1], prec, rm, false)
		},
	}

	subCmd := &cobra.Command{
		Use:   "sub <x> <y>",
		Short: "Subtract two decimal operands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prec, rm, err := resolve()
			if err != nil {
				return err
			}
			return runAdd(cmd.OutOrStdout(), args[0], args[1], prec, rm, true)
		},
	}

	addRatCmd := &cobra.Command{
		Use:   "add-rational <x> <num/den>",
		Short: "Add a decimal operand and an exact rational",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prec, rm, err := resolve()
			if err != nil {
				return err
			}
			installTrace()
			return runAddRational(cmd.OutOrStdout(), args[0], args[1], prec, rm, false)
		},
	}

	subRatCmd := &cobra.Command{
		Use:   "sub-rational <x> <num/den>",
		Short: "Subtract an exact rational from a decimal operand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prec, rm, err := resolve()
			if err != nil {
				return err
			}
			installTrace()
			return runAddRational(cmd.OutOrStdout(), args[0], args[1], prec, rm, true)
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Read add/sub/add-rational/sub-rational commands from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prec, rm, err := resolve()
			if err != nil {
				return err
			}
			installTrace()
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), prec, rm)
		},
	}

	rootCmd.AddCommand(addCmd, subCmd, addRatCmd, subRatCmd, replCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAdd(out io.Writer, xStr, yStr string, prec uint64, rm mpfloat.RoundingMode, subtract bool) error {
	x, _, err := precfmt.ParseFloat(xStr, prec, rm)
	if err != nil {
		return errors.Wrap(err, "x")
	}
	y, _, err := precfmt.ParseFloat(yStr, prec, rm)
	if err != nil {
		return errors.Wrap(err, "y")
	}
	var z mpfloat.Float
	var acc mpfloat.Accuracy
	if subtract {
		z, acc = mpfloat.SubPrecRound(x, y, prec, rm)
	} else {
		z, acc = mpfloat.AddPrecRound(x, y, prec, rm)
	}
	_, err = fmt.Fprintf(out, "%s (%s)\n", z.Text(), acc)
	return err
}

func runAddRational(out io.Writer, xStr, rStr string, prec uint64, rm mpfloat.RoundingMode, subtract bool) error {
	x, _, err := precfmt.ParseFloat(xStr, prec, rm)
	if err != nil {
		return errors.Wrap(err, "x")
	}
	r, err := precfmt.ParseRational(rStr)
	if err != nil {
		return errors.Wrap(err, "rational operand")
	}
	var z mpfloat.Float
	var acc mpfloat.Accuracy
	if subtract {
		z, acc = mpfloat.SubRationalPrecRound(x, r, prec, rm)
	} else {
		z, acc = mpfloat.AddRationalPrecRound(x, r, prec, rm)
	}
	_, err = fmt.Fprintf(out, "%s (%s)\n", z.Text(), acc)
	return err
}

// runRepl implements a line-oriented REPL: each line is either
// "add x y", "sub x y", "add-rational x num/den", or "sub-rational x
// num/den". Parse errors on one line are written to out as an "error:"
// line without aborting the session, mirroring the teacher's batch-verification loop
// (one bad record shouldn't kill the whole run).
func runRepl(in io.Reader, out io.Writer, prec uint64, rm mpfloat.RoundingMode) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			fmt.Fprintf(out, "error: expected \"<op> <x> <y>\", got %q\n", line)
			continue
		}
		op, xStr, yStr := fields[0], fields[1], fields[2]

		var err error
		switch op {
		case "add":
			err = runAdd(out, xStr, yStr, prec, rm, false)
		case "sub":
			err = runAdd(out, xStr, yStr, prec, rm, true)
		case "add-rational":
			err = runAddRational(out, xStr, yStr, prec, rm, false)
		case "sub-rational":
			err = runAddRational(out, xStr, yStr, prec, rm, true)
		default:
			err = errors.Errorf("unknown command %q (want add, sub, add-rational, or sub-rational)", op)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}
