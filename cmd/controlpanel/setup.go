package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/phinze/controlpanel/internal/config"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup: write the config file",
	RunE:  runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("=== Control Panel Setup ===")
	fmt.Println()

	path := resolveConfigPath()

	// Existing file contents become the prompt defaults; env and --size
	// overrides are left out so they are not written back.
	existing, err := config.ReadFile(path)
	if err != nil {
		fmt.Printf("Ignoring existing config: %v\n", err)
		existing = config.Default()
	}
	cfg := *existing

	fmt.Println("-- Panel --")
	cfg.Panel.Size = promptInt(reader, "Size in pixels", existing.Panel.Size)
	cfg.Panel.PlateColor = prompt(reader, "Plate color", existing.Panel.PlateColor)
	cfg.Panel.ShadowColor = prompt(reader, "Shadow color", existing.Panel.ShadowColor)
	cfg.Panel.WedgeColor = prompt(reader, "Wedge color", existing.Panel.WedgeColor)
	fmt.Println()

	fmt.Println("-- Stream Deck --")
	cfg.Deck.Brightness = promptInt(reader, "Brightness (0-100)", existing.Deck.Brightness)
	cfg.Deck.StripX = promptInt(reader, "Panel position on touch strip", existing.Deck.StripX)
	cfg.Deck.Key = promptInt(reader, "Direction key (0 to disable)", existing.Deck.Key)
	fmt.Println()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := config.WriteFile(path, &cfg); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	fmt.Printf("Config written to %s\n", path)
	fmt.Println("Setup complete!")
	return nil
}

// prompt asks for a value with an optional default.
func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("  %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("  %s: ", label)
	}
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultVal
	}
	return line
}

// promptInt asks for an integer, keeping the default on empty or bad input.
func promptInt(reader *bufio.Reader, label string, defaultVal int) int {
	s := prompt(reader, label, strconv.Itoa(defaultVal))
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Printf("  -> not a number, keeping %d\n", defaultVal)
		return defaultVal
	}
	return n
}
