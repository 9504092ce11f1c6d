// Command unitconv converts and validates values between units of one
// measurement family, using the stock families plus optional YAML catalogs.
//
//	unitconv convert 212 fahrenheit celsius
//	unitconv convert -- -40 celsius fahrenheit
//	unitconv check 5 grams
//	unitconv --catalog pressure.yaml list pressure
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvmeasure/catalog"
	"github.com/katalvlaran/lvmeasure/measure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every subcommand.
type app struct {
	// Flags
	catalogPaths []string
	verbose      bool

	registry *measure.Registry
	units    *catalog.Catalog
	logger   *zap.Logger
}

func main() {
	if err := newRootCmd(measure.Default()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Catalog files register their families
// into registry.
func newRootCmd(registry *measure.Registry) *cobra.Command {
	a := &app{registry: registry, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "unitconv",
		Short: "Convert values between measurement units",
		Long: `unitconv converts and validates values between units of one family.

Stock families: mass, distance, time, temperature, angle, elevation.
Extra families can be declared in YAML catalogs (--catalog, repeatable).
Unit names may be qualified as family:name when they are ambiguous.
Pass negative values after "--" so they are not read as flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringArrayVar(&a.catalogPaths, "catalog", nil, "YAML catalog file with extra families (repeatable)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.convertCmd(), a.checkCmd(), a.listCmd())

	return root
}

// setup initialises the logger and the unit catalog.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	a.units = catalog.Builtin(catalog.WithLogger(a.logger))
	for _, path := range a.catalogPaths {
		doc, err := catalog.Load(path)
		if err != nil {
			return err
		}
		if err := doc.Register(a.registry, a.units); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		a.logger.Debug("loaded catalog", zap.String("path", path), zap.Int("families", len(doc.Families)))
	}

	return nil
}

// out returns the command's output writer.
func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
