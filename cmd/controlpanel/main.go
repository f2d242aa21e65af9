package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phinze/controlpanel/internal/config"
	"github.com/phinze/controlpanel/internal/panel"
	"github.com/phinze/controlpanel/internal/window"
	"github.com/spf13/cobra"
)

var (
	configPath string
	sizeFlag   int
)

var rootCmd = &cobra.Command{
	Use:           "controlpanel",
	Short:         "Eight-way radial control panel",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the control panel in a desktop window",
	RunE:  runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().IntVar(&sizeFlag, "size", 0, "panel size in pixels (overrides config)")

	rootCmd.AddCommand(runCmd, deckCmd, renderCmd, hitCmd, setupCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// resolveConfigPath returns the path named by --config, or the default.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the config named by --config (or the default) and applies
// --size.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	if sizeFlag > 0 {
		cfg.Panel.Size = sizeFlag
	}
	return cfg, nil
}

// newPanel builds a panel styled from cfg.
func newPanel(cfg *config.Config) (*panel.Panel, error) {
	style, err := cfg.Panel.Style()
	if err != nil {
		return nil, fmt.Errorf("panel style: %w", err)
	}
	return panel.New(style), nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newPanel(cfg)
	if err != nil {
		return err
	}

	p.SetListener(panel.ListenerFunc(func(w panel.Wedge) {
		if w != panel.NoWedge {
			log.Printf("Wedge pressed: %s", w)
		} else {
			log.Println("Released")
		}
	}))

	win := window.New(p, window.Options{
		Title:     cfg.Window.Title,
		Size:      cfg.Panel.Size,
		Resizable: cfg.Window.Resizable,
		ShowState: true,
	})
	return win.Run()
}
