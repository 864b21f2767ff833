package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"carrental/internal/geometry"
	"carrental/internal/logger"
)

const sidesPrompt = "Please enter the three lengths of the triangle's sides"

func newTriangleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triangle",
		Short: "Triangle perimeter, area and classification",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "area [a b c]",
		Short: "Print the perimeter and area of a triangle",
		Args:  sidesArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "This program calculates the area and the perimeter of a given triangle.")
			}
			t, err := readTriangle(cmd.InOrStdin(), out, args)
			if err != nil {
				return err
			}
			logger.DebugContext(cmd.Context(), "Triangle area", "a", t.A, "b", t.B, "c", t.C)

			if !t.IsValid() {
				fmt.Fprintln(out, "The lengths you entered do not form a valid triangle.")
				return nil
			}
			fmt.Fprintf(out, "The lengths of the triangle's sides are: %d, %d, %d\n", t.A, t.B, t.C)
			fmt.Fprintf(out, "The perimeter of the triangle is: %d\n", t.Perimeter())
			fmt.Fprintf(out, "The area of the triangle is: %s\n", strconv.FormatFloat(t.Area(), 'f', -1, 64))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "classify [a b c]",
		Short: "Tell whether three lengths form an equilateral, isosceles, right-angle or common triangle",
		Args:  sidesArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "This program checks if three given lengths can form a triangle and identifies the type of triangle.")
			}
			t, err := readTriangle(cmd.InOrStdin(), out, args)
			if err != nil {
				return err
			}

			kind := t.Classify()
			logger.DebugContext(cmd.Context(), "Triangle classified", "kind", kind.String())
			fmt.Fprintf(out, "The numbers: %d, %d and %d %s\n", t.A, t.B, t.C, describeKind(kind))
			return nil
		},
	})

	return cmd
}

func sidesArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return fmt.Errorf("expected no arguments or exactly 3 side lengths, got %d", len(args))
	}
	return nil
}

func describeKind(k geometry.Kind) string {
	switch k {
	case geometry.KindEquilateral:
		return "represent an equilateral triangle"
	case geometry.KindIsosceles:
		return "represent an isosceles triangle"
	case geometry.KindRightAngle:
		return "represent a right-angle triangle"
	case geometry.KindCommon:
		return "represent a common triangle"
	default:
		return "cannot represent a valid triangle."
	}
}

// readTriangle takes the sides from args when given, otherwise prompts for
// three whitespace separated integers on in.
func readTriangle(in io.Reader, out io.Writer, args []string) (geometry.Triangle, error) {
	var sides [3]int
	if len(args) == 3 {
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return geometry.Triangle{}, fmt.Errorf("invalid side length %q: %w", arg, err)
			}
			sides[i] = v
		}
	} else {
		fmt.Fprintln(out, sidesPrompt)
		if _, err := fmt.Fscan(in, &sides[0], &sides[1], &sides[2]); err != nil {
			return geometry.Triangle{}, fmt.Errorf("failed to read side lengths: %w", err)
		}
	}
	return geometry.Triangle{A: sides[0], B: sides[1], C: sides[2]}, nil
}
