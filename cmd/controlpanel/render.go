package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/phinze/controlpanel/internal/panel"
	"github.com/spf13/cobra"
)

var (
	renderOut     string
	renderPressed int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the panel to a PNG file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "controlpanel.png", "output PNG path")
	renderCmd.Flags().IntVar(&renderPressed, "pressed", -1, "wedge to draw pressed (-1 for none)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pressed, err := panel.ParseWedge(renderPressed)
	if err != nil {
		return err
	}
	p, err := newPanel(cfg)
	if err != nil {
		return err
	}
	p.SetSize(cfg.Panel.Size, cfg.Panel.Size)

	if pressed.Valid() {
		c := p.Geometry().WedgeCenter(pressed)
		p.HandlePointer(panel.PointerEvent{Action: panel.ActionDown, X: c.X, Y: c.Y})
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", renderOut, err)
	}
	defer f.Close()

	if err := png.Encode(f, p.Frame()); err != nil {
		return fmt.Errorf("encoding %s: %w", renderOut, err)
	}
	fmt.Printf("Wrote %dx%d panel to %s\n", cfg.Panel.Size, cfg.Panel.Size, renderOut)
	return f.Close()
}
