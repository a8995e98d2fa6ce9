package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltopo/voltopo/internal/config"
	"github.com/voltopo/voltopo/internal/output"
	"github.com/voltopo/voltopo/internal/probe"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfgFile   string
	unitsFlag string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voltopo",
	Short: "Multi-device volume topology tool",
	Long: `voltopo presents a unified, deduplicated view of the logical
multi-device volumes visible on a host, reconciling the live mount table
with a raw block-device scan, and provides maintenance commands for
mounted volumes.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is "+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&unitsFlag, "units", "",
		"byte size rendering: raw, binary or decimal")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dfCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(defragCmd)
	rootCmd.AddCommand(replaceCmd)
}

// loadConfig reads the configuration file named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newSystem wires the Linux collaborators from the configuration.
func newSystem(cfg *config.Config) *probe.System {
	sys := probe.NewSystem()
	if cfg.MountsFile != "" {
		sys.MountsPath = cfg.MountsFile
	}
	if cfg.Tool != "" {
		sys.Tool = cfg.Tool
	}
	sys.Exclude = cfg.ExcludeDevices
	return sys
}

// resolveUnits applies flag-over-config precedence for the unit mode.
func resolveUnits(cfg *config.Config) (output.Units, error) {
	s := unitsFlag
	if s == "" {
		s = cfg.Units
	}
	return output.ParseUnits(s)
}
