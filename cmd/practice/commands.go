package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/practice/anagram"
	"github.com/katalvlaran/practice/consecutive"
	"github.com/katalvlaran/practice/interest"
	"github.com/katalvlaran/practice/internal/logging"
	"github.com/katalvlaran/practice/minmax"
	"github.com/katalvlaran/practice/shape"
	"github.com/katalvlaran/practice/wordpattern"
	"github.com/spf13/cobra"
)

// Demo inputs used when no arguments or flags are given.
var (
	defaultNums     = []int{100, 4, 200, 1, 3, 2}
	defaultAnagram  = [2]string{"anagram", "nagaram"}
	defaultPattern  = "abba"
	defaultSentence = "dog cat cat dog"
	defaultValues   = []int{5, 2, 7, 4, 8, 5, 9, 6}
	defaultInterest = interestOptions{Principal: 15000, Rate: 5.5, Time: 2, Period: 4}
	defaultShapes   = shapesOptions{Radius: 5, Length: 4, Width: 6, Sides: []float64{3, 4, 5}}
)

// noneOrAtLeast accepts zero arguments (use the demo input) or at least n.
func noneOrAtLeast(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) < n {
			return fmt.Errorf("%s: expected no arguments or at least %d, got %d", cmd.Name(), n, len(args))
		}

		return nil
	}
}

func heading(w io.Writer, text string) {
	fmt.Fprintln(w, headingStyle.Render(text))
}

// title upper-cases the first character of s.
func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	return string(unicode.ToTitle(r)) + s[size:]
}

func newConsecutiveCmd() *cobra.Command {
	nums := append([]int(nil), defaultNums...)
	cmd := &cobra.Command{
		Use:   "consecutive",
		Short: "Length of the longest run of consecutive integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsecutive(cmd.OutOrStdout(), nums)
		},
	}
	cmd.Flags().IntSliceVar(&nums, "nums", nums, "comma-separated integers")

	return cmd
}

func runConsecutive(w io.Writer, nums []int) error {
	done := logging.LogOperationStart(logging.GetLogger("consecutive"), "longest-run")
	defer done()

	heading(w, "Longest consecutive sequence")
	run := consecutive.LongestRun(nums)
	if run.Length == 0 {
		fmt.Fprintf(w, "%v -> 0\n", nums)

		return nil
	}
	fmt.Fprintf(w, "%v -> %d (%d..%d)\n", nums, run.Length, run.Start, run.End())

	return nil
}

func newAnagramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anagram [s t]",
		Short: "Check whether two strings are anagrams",
		Args:  cobra.MatchAll(cobra.MaximumNArgs(2), noneOrAtLeast(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t := defaultAnagram[0], defaultAnagram[1]
			if len(args) == 2 {
				s, t = args[0], args[1]
			}

			return runAnagram(cmd.OutOrStdout(), s, t)
		},
	}
}

func runAnagram(w io.Writer, s, t string) error {
	done := logging.LogOperationStart(logging.GetLogger("anagram"), "is-anagram")
	defer done()

	heading(w, "Valid anagram")
	fmt.Fprintf(w, "%q vs %q -> %t\n", s, t, anagram.IsAnagram(s, t))

	return nil
}

func newWordPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wordpattern [pattern word...]",
		Short: "Check whether a sentence follows a symbol pattern",
		Args:  noneOrAtLeast(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, sentence := defaultPattern, defaultSentence
			if len(args) > 0 {
				pattern, sentence = args[0], strings.Join(args[1:], " ")
			}

			return runWordPattern(cmd.OutOrStdout(), pattern, sentence)
		},
	}
}

func runWordPattern(w io.Writer, pattern, sentence string) error {
	logger := logging.GetLogger("wordpattern")
	done := logging.LogOperationStart(logger, "bijection")
	defer done()

	heading(w, "Word pattern")
	mapping, err := wordpattern.Bijection(pattern, sentence)
	if err != nil {
		logger.Info().Err(err).Msg("Pattern not followed")
		fmt.Fprintf(w, "%q / %q -> false (%v)\n", pattern, sentence, err)

		return nil
	}

	fmt.Fprintf(w, "%q / %q -> true\n", pattern, sentence)
	symbols := make([]rune, 0, len(mapping))
	for r := range mapping {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	for _, r := range symbols {
		fmt.Fprintf(w, "  %c <-> %s\n", r, mapping[r])
	}

	return nil
}

func newMinMaxCmd() *cobra.Command {
	values := append([]int(nil), defaultValues...)
	cmd := &cobra.Command{
		Use:   "minmax",
		Short: "Smallest and largest value of an array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinMax(cmd.OutOrStdout(), values)
		},
	}
	cmd.Flags().IntSliceVar(&values, "values", values, "comma-separated integers")

	return cmd
}

func runMinMax(w io.Writer, values []int) error {
	done := logging.LogOperationStart(logging.GetLogger("minmax"), "scan")
	defer done()

	lo, hi, err := minmax.MinMax(values)
	if err != nil {
		return err
	}

	heading(w, "Array min/max")
	fmt.Fprintf(w, "Array Min: %d\n", lo)
	fmt.Fprintf(w, "Array Max: %d\n", hi)

	return nil
}

// interestOptions holds the flags of the interest command.
type interestOptions struct {
	Principal float64
	Rate      float64
	Time      float64
	Period    float64
	Schedule  bool
}

func newInterestCmd() *cobra.Command {
	opts := defaultInterest
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Compound interest P(1 + r/n)^(nt) - P",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterest(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.Principal, "principal", opts.Principal, "initial principal")
	f.Float64Var(&opts.Rate, "rate", opts.Rate, "annual rate in percent")
	f.Float64Var(&opts.Time, "time", opts.Time, "time in years")
	f.Float64Var(&opts.Period, "period", opts.Period, "compounding periods per year")
	f.BoolVar(&opts.Schedule, "schedule", false, "also print the balance after every period")

	return cmd
}

func runInterest(w io.Writer, o interestOptions) error {
	done := logging.LogOperationStart(logging.GetLogger("interest"), "compound")
	defer done()

	ci, err := interest.Compound(o.Principal, o.Rate, o.Time, o.Period)
	if err != nil {
		return err
	}

	heading(w, "Compound interest")
	fmt.Fprintf(w, "P=%g r=%g%% t=%g n=%g -> %.2f\n", o.Principal, o.Rate, o.Time, o.Period, ci)
	if !o.Schedule {
		return nil
	}

	rows, err := interest.Schedule(o.Principal, o.Rate, o.Time, o.Period)
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %3d  t=%-6g balance=%.2f interest=%.2f\n", r.Index, r.Elapsed, r.Balance, r.Interest)
	}

	return nil
}

// shapesOptions holds the flags of the shapes command.
type shapesOptions struct {
	Radius float64
	Length float64
	Width  float64
	Sides  []float64
}

func newShapesCmd() *cobra.Command {
	opts := defaultShapes
	opts.Sides = append([]float64(nil), defaultShapes.Sides...)
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Area and perimeter of a circle, a rectangle and a triangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShapes(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.Radius, "radius", opts.Radius, "circle radius")
	f.Float64Var(&opts.Length, "length", opts.Length, "rectangle length")
	f.Float64Var(&opts.Width, "width", opts.Width, "rectangle width")
	f.Float64SliceVar(&opts.Sides, "sides", opts.Sides, "triangle sides a,b,c")

	return cmd
}

func runShapes(w io.Writer, o shapesOptions) error {
	done := logging.LogOperationStart(logging.GetLogger("shapes"), "measure")
	defer done()

	if len(o.Sides) != 3 {
		return fmt.Errorf("shapes: --sides needs exactly 3 values, got %d", len(o.Sides))
	}

	circle, err := shape.NewCircle(o.Radius)
	if err != nil {
		return err
	}
	rect, err := shape.NewRectangle(o.Length, o.Width)
	if err != nil {
		return err
	}
	tri, err := shape.NewTriangle(o.Sides[0], o.Sides[1], o.Sides[2])
	if err != nil {
		return err
	}

	heading(w, "Shapes")
	for i, m := range shape.Measure(circle, rect, tri) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		name := title(m.Shape.Kind().String())
		fmt.Fprintf(w, "%s Area: %.2f\n", name, m.Area)
		fmt.Fprintf(w, "%s Perimeter: %.2f\n", name, m.Perimeter)
	}

	return nil
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every exercise with its demo input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			steps := []func() error{
				func() error { return runConsecutive(w, defaultNums) },
				func() error { return runAnagram(w, defaultAnagram[0], defaultAnagram[1]) },
				func() error { return runWordPattern(w, defaultPattern, defaultSentence) },
				func() error { return runMinMax(w, defaultValues) },
				func() error { return runInterest(w, defaultInterest) },
				func() error { return runShapes(w, defaultShapes) },
			}
			for i, step := range steps {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := step(); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
