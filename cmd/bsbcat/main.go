// Command bsbcat is a diagnostic tool for the BSB wire format: it
// decodes raw frame bytes, builds frames for Get/Set requests, and
// replays a captured bus trace frame by frame.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-bsb/bsb/internal/bsblog"
)

var (
	logger     = bsblog.New("bsbcat: ")
	jsonOut    bool
	verbose    bool
	configPath string
	cfg        config
)

func main() {
	root := &cobra.Command{
		Use:   "bsbcat",
		Short: "Inspect and build BSB wire frames",
	}
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable trace logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML config with default addresses")

	cobra.OnInitialize(func() {
		loaded, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bsbcat: config:", err)
			os.Exit(1)
		}
		cfg = loaded
		if cfg.Verbose {
			verbose = true
		}
		logger.SetMode(verbose)
	})

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newEncodeGetCmd())
	root.AddCommand(newEncodeSetCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print bsbcat's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "bsbcat (bsb codec diagnostic tool)")
			return nil
		},
	}
}
