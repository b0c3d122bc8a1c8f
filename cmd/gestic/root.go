package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adewitt/gestic/pkg/config"
	"github.com/adewitt/gestic/pkg/logging"
)

var (
	version = "dev"

	verbosity    int
	cfgFile      string
	forceWayland bool
	forceX11     bool

	rootCmd = &cobra.Command{
		Use:   "gestic",
		Short: "Gesture-driven input automation",
		Long: `gestic maps multi-finger touchpad gestures to actions: synthetic
keyboard input, external commands, or inline shell scripts. Gestures and
their actions are declared in a TOML configuration file; at startup the
file is translated into trigger recognizers and action executors.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file (default is $XDG_CONFIG_HOME/gestic/gestic.toml)")
	rootCmd.PersistentFlags().BoolVar(&forceWayland, "wayland", false, "Select the wayland trigger list regardless of environment")
	rootCmd.PersistentFlags().BoolVar(&forceX11, "x11", false, "Select the x11 trigger list regardless of environment")
	rootCmd.MarkFlagsMutuallyExclusive("wayland", "x11")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gestic version %s\n", version)
	},
}

// configPath resolves the configuration file: the --config flag if given,
// otherwise the XDG default.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(xdg.ConfigHome, "gestic", "gestic.toml")
}

// isWayland picks the platform trigger list: flags win, then the presence
// of WAYLAND_DISPLAY in the environment.
func isWayland() bool {
	if forceWayland {
		return true
	}
	if forceX11 {
		return false
	}
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

// loadDocument loads the configuration and surfaces applied defaults at
// debug level, as the loader itself stays silent about them.
func loadDocument() (*config.Document, error) {
	path := configPath()
	doc, applied, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	for _, d := range applied {
		log.Debug().Str("field", d.Field).Msg("Using default value")
	}
	log.Info().
		Str("path", path).
		Int("global", len(doc.GlobalTriggers)).
		Int("x11", len(doc.X11Triggers)).
		Int("wayland", len(doc.WaylandTriggers)).
		Msg("Configuration loaded")
	return doc, nil
}
