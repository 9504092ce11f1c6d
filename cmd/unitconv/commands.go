package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/lvmeasure/measure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errInvalidValue marks a value outside its unit's range; check exits non-zero with it.
var errInvalidValue = errors.New("value out of range")

func (a *app) convertCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert VALUE from one unit to another unit of the same family",
		Example: `  unitconv convert 1500 grams kilograms
  unitconv convert --normalize 450 degrees degrees
  unitconv convert -- -40 celsius fahrenheit`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			from, err := a.units.Find(args[1])
			if err != nil {
				return err
			}
			to, err := a.units.Find(args[2])
			if err != nil {
				return err
			}
			if !from.IsValid(value) {
				return rangeError(value, from)
			}

			var result float64
			if normalize {
				if from.Family() != to.Family() {
					return fmt.Errorf("convert %s to %s: %w", from, to, measure.ErrFamilyMismatch)
				}
				result = to.FromStandard(from.Normalize(from.ToStandard(value)))
			} else if result, err = measure.Convert(value, from, to); err != nil {
				return err
			}

			a.logger.Debug("converted",
				zap.Float64("value", value),
				zap.String("from", from.Name()),
				zap.String("to", to.Name()),
				zap.Float64("result", result),
			)
			fmt.Fprintf(out(cmd), "%s %s\n", formatValue(result), to.Name())

			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "fold the value into the family's canonical range")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check VALUE UNIT",
		Short: "Report whether VALUE lies within UNIT's valid range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			u, err := a.units.Find(args[1])
			if err != nil {
				return err
			}
			if !u.IsValid(value) {
				fmt.Fprintf(out(cmd), "invalid: %s outside [%s, %s] %s\n",
					formatValue(value), formatValue(u.MinValue()), formatValue(u.MaxValue()), u.Name())

				return rangeError(value, u)
			}
			fmt.Fprintln(out(cmd), "valid")

			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [FAMILY]",
		Short: "List families, or the units of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(out(cmd), 0, 0, 2, ' ', 0)

			if len(args) == 0 {
				fmt.Fprintln(w, "FAMILY\tSTANDARD\tUNITS")
				for _, f := range a.units.Families() {
					units := a.units.Units(f)
					fmt.Fprintf(w, "%s\t%s\t%d\n", f, units[0].Standard().Name(), len(units))
				}

				return w.Flush()
			}

			family := measure.Family(args[0])
			units := a.units.Units(family)
			if len(units) == 0 {
				return fmt.Errorf("list %s: %w", family, measure.ErrUnknownFamily)
			}
			fmt.Fprintln(w, "UNIT\tSCALE\tOFFSET\tMIN\tMAX\tSTANDARD")
			for _, u := range units {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%t\n",
					u.Name(), formatValue(u.Scale()), formatValue(u.Offset()),
					formatValue(u.MinValue()), formatValue(u.MaxValue()), u.IsStandard())
			}

			return w.Flush()
		},
	}
}

// parseValue reads a float64 argument; NaN is refused since it is never valid.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("invalid value %q: %w", s, errInvalidValue)
	}

	return v, nil
}

func rangeError(value float64, u *measure.Unit) error {
	return fmt.Errorf("%s %s: %w [%s, %s]", formatValue(value), u.Name(), errInvalidValue,
		formatValue(u.MinValue()), formatValue(u.MaxValue()))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
