package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check config and Stream Deck availability",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Control Panel Status ===")
	fmt.Println()

	allOK := true

	configFile := resolveConfigPath()
	fmt.Printf("Config file: %s\n", configFile)
	if _, err := os.Stat(configFile); err == nil {
		fmt.Println("  Status: found")
	} else {
		fmt.Println("  Status: not found (using defaults)")
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("  Load error: %v\n", err)
		allOK = false
	}
	fmt.Println()

	if cfg != nil {
		fmt.Println("Panel:")
		fmt.Printf("  Size: %dx%d\n", cfg.Panel.Size, cfg.Panel.Size)
		fmt.Printf("  Colors: plate %s, shadow %s, wedge %s\n",
			cfg.Panel.PlateColor, cfg.Panel.ShadowColor, cfg.Panel.WedgeColor)
		fmt.Println()
	}

	fmt.Println("Stream Deck:")
	dev := tryGetDeviceWithTimeout(2 * time.Second)
	if dev != nil {
		fmt.Printf("  Device: CONNECTED (%s)\n", dev.GetModelName())
		if !dev.GetTouchStripSupported() {
			fmt.Println("  Touch strip: NOT SUPPORTED")
			allOK = false
		}
		dev.Close()
	} else {
		fmt.Println("  Device: not detected")
	}
	fmt.Println()

	if allOK {
		fmt.Println("All checks passed.")
	} else {
		fmt.Println("Some checks failed. Run 'controlpanel setup' to configure.")
	}
	return nil
}
