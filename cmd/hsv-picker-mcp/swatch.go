package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

var (
	swatchLabel = lipgloss.NewStyle().Bold(true).Width(8)
	swatchChip  = lipgloss.NewStyle().Padding(0, 2)
)

func newSwatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "swatch [color]",
		Short: "Print a color chip with its hex, RGB, HSV and alpha forms",
		Long: "swatch parses a color in #RGB, #RRGGBB or #AARRGGBB form and prints it\n" +
			"in every notation the picker uses. Without an argument it shows the\n" +
			"configured initial color.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c hsv.Color
			if len(args) == 1 {
				parsed, err := hsv.ParseHex(args[0])
				if err != nil {
					return err
				}
				c = parsed
			} else {
				cfg, err := loadConfig(flags.configPath)
				if err != nil {
					return err
				}
				c = cfg.Picker.Initial()
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSwatch(c))
			return nil
		},
	}
}

func renderSwatch(c hsv.Color) string {
	r, g, b := c.RGB()
	rgb := fmt.Sprintf("#%02X%02X%02X", r, g, b)

	chip := swatchChip.
		Background(lipgloss.Color(rgb)).
		Foreground(lipgloss.Color(textColor(r, g, b))).
		Render(c.String())

	rows := []string{
		chip,
		swatchLabel.Render("ARGB") + fmt.Sprintf("0x%08X", c.ARGB()),
		swatchLabel.Render("RGB") + fmt.Sprintf("%d, %d, %d", r, g, b),
		swatchLabel.Render("HSV") + fmt.Sprintf("%.1f°, %.3f, %.3f", c.H, c.S, c.V),
		swatchLabel.Render("Alpha") + fmt.Sprintf("%d (%d%%)", c.A, c.AlphaPercent()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// textColor picks black or white text by the chip's perceived lightness.
func textColor(r, g, b uint8) string {
	l, _, _ := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
