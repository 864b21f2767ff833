package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"carrental/internal/config"
	"carrental/internal/logger"
)

// app carries state shared by all subcommands
type app struct {
	configPath string
	cfg        *config.Config
}

// NewRootCommand builds the rentals command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rentals",
		Short: "Car rental company console and coursework calculators",
		Long: `rentals manages an ordered list of car rentals from the console and
bundles the triangle calculators and array puzzles that go with it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to configuration file (built-in defaults when empty)")

	root.AddCommand(
		newCompanyCommand(a),
		newTriangleCommand(),
		newPuzzlesCommand(),
	)
	return root
}

// setup loads the configuration and initializes logging before any subcommand runs
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath == "" {
		a.cfg, err = config.Default()
	} else {
		a.cfg, err = config.Load(a.configPath)
	}
	if err != nil {
		return err
	}

	logger.Initialize(cmd.ErrOrStderr(), a.cfg.Log.Level, a.cfg.Log.Format)
	logger.DebugContext(cmd.Context(), "Configuration loaded",
		"config_path", a.configPath,
		"log_level", a.cfg.Log.Level,
		"report_format", a.cfg.Report.Format,
	)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
