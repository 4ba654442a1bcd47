package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "phaseout",
		Short:        "Size the wind, solar and storage build-out that replaces a country's fossil fuels",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(sizeCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(assumptionsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func sizeCmd() *cobra.Command {
	var opts scenarioOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "size [project-path]",
		Short: "Run the sizing pipeline and print the new grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(cmd, &opts, args, asJSON)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	var opts scenarioOptions

	cmd := &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario without printing the sizing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, &opts, args)
		},
	}

	opts.register(cmd)
	return cmd
}

func presetsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List the bundled country presets, or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPresets(dir, args)
		},
	}

	cmd.Flags().StringVar(&dir, "presets-dir", "", "directory of extra preset YAML files")
	return cmd
}

func assumptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assumptions [version]",
		Short: "List the assumption sets, or print one as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAssumptions(args)
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		port        int
		cacheSize   int
		presetsDir  string
		assumptions string
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and WebSocket sizing server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, serveOverrides{
				port:        port,
				cacheSize:   cacheSize,
				presetsDir:  presetsDir,
				assumptions: assumptions,
				debug:       debug,
			})
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port (overrides PHASEOUT_PORT)")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 1024, "number of sizing results to memoize")
	cmd.Flags().StringVar(&presetsDir, "presets-dir", "", "directory of extra preset YAML files")
	cmd.Flags().StringVar(&assumptions, "assumptions", "", "default assumption set for new sessions")
	cmd.Flags().BoolVar(&debug, "debug", false, "development logging")
	return cmd
}
