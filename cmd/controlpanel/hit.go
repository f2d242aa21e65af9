package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var hitCmd = &cobra.Command{
	Use:   "hit X Y",
	Short: "Print which wedge contains a point",
	Args:  cobra.ExactArgs(2),
	RunE:  runHit,
}

func runHit(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing X: %w", err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing Y: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := newPanel(cfg)
	if err != nil {
		return err
	}
	p.SetSize(cfg.Panel.Size, cfg.Panel.Size)

	w := p.HitTest(x, y)
	fmt.Printf("%d\t%s\n", int(w), w.Direction())
	return nil
}
