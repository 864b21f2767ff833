package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"carrental/internal/logger"
	"carrental/internal/puzzles"
)

func newPuzzlesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzles",
		Short: "Array and grid puzzles",
	}

	cmd.AddCommand(
		newAlternatingCommand(),
		newEvenSumCommand(),
		newIsWayCommand(),
		newPrinceCommand(),
	)
	return cmd
}

func newAlternatingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alternating <bits>",
		Short: "Minimum swaps that make a balanced binary string alternate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits := args[0]
			if err := validateBalancedBits(bits); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), puzzles.Alternating(bits))
			return nil
		},
	}
}

func validateBalancedBits(s string) error {
	zeros := 0
	for i, ch := range s {
		switch ch {
		case '0':
			zeros++
		case '1':
		default:
			return fmt.Errorf("invalid character %q at position %d, expected 0 or 1", ch, i)
		}
	}
	if zeros*2 != len(s) {
		return fmt.Errorf("string must hold as many 0s as 1s, got %d of %d", zeros, len(s))
	}
	return nil
}

const intsHelp = `Values come from the arguments, or from standard input when none are given.
Flag parsing stops at the first value, so negatives after it are read as
numbers. A leading negative needs "--" before it or standard input.`

func newEvenSumCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "even-sum [--] [ints...]",
		Short: "Length of the longest contiguous run with an even sum",
		Long:  intsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readInts(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), puzzles.LongestEvenSum(a))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newIsWayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-way [--] [ints...]",
		Short: "Whether the last index is reachable by jumping a[i] left or right",
		Long:  intsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readInts(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), puzzles.IsWay(a))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newPrinceCommand() *cobra.Command {
	var row, col int

	cmd := &cobra.Command{
		Use:   "prince",
		Short: "Shortest route to the cell holding -1, grid rows read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(cmd.InOrStdin())
			if err != nil {
				return err
			}
			logger.DebugContext(cmd.Context(), "Grid read", "rows", len(grid), "row", row, "col", col)

			steps, err := puzzles.Prince(grid, row, col)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), steps)
			return nil
		},
	}

	cmd.Flags().IntVar(&row, "row", 0, "Start row")
	cmd.Flags().IntVar(&col, "col", 0, "Start column")
	return cmd
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func splitValues(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// readInts parses args, or every value on in when args is empty
func readInts(in io.Reader, args []string) ([]int, error) {
	if len(args) > 0 {
		return parseInts(args)
	}

	var fields []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields = append(fields, splitValues(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	if len(fields) == 0 {
		return nil, errors.New("no values given")
	}
	return parseInts(fields)
}

// readGrid reads one grid row per line, values separated by whitespace or
// commas. Blank lines are skipped.
func readGrid(in io.Reader) ([][]int, error) {
	var grid [][]int
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := splitValues(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		r, err := parseInts(fields)
		if err != nil {
			return nil, fmt.Errorf("grid row %d: %w", len(grid)+1, err)
		}
		grid = append(grid, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	return grid, nil
}
