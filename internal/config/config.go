// Package config loads and validates the picker server configuration.
package config

import (
	"fmt"
	"image/color"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// Config is the root of the YAML configuration file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Picker PickerConfig `yaml:"picker"`
	Render RenderConfig `yaml:"render"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level         string `yaml:"level" validate:"log_level"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Dimensions is a widget size in pixels.
type Dimensions struct {
	Width  int `yaml:"width" validate:"gte=0,lte=4096"`
	Height int `yaml:"height" validate:"gte=0,lte=4096"`
}

// PickerConfig describes the initial color and widget appearance. Sizes
// suffixed with DP are density-independent and converted with DpToPx.
type PickerConfig struct {
	InitialColor      string  `yaml:"initial_color" validate:"required,argb_hex"`
	AlphaPanelVisible bool    `yaml:"alpha_panel_visible"`
	AlphaCaption      *string `yaml:"alpha_caption"`
	Density           float64 `yaml:"density" validate:"gt=0,lte=8"`
	TrackColor        string  `yaml:"track_color" validate:"required,argb_hex"`
	BorderColor       string  `yaml:"border_color" validate:"required,argb_hex"`
	BorderWidthDP     float64 `yaml:"border_width_dp" validate:"gte=0,lte=16"`
	PaddingDP         float64 `yaml:"padding_dp" validate:"gte=0,lte=64"`
	CheckerCellDP     float64 `yaml:"checker_cell_dp" validate:"gt=0,lte=64"`
	ThumbRadiusDP     float64 `yaml:"thumb_radius_dp" validate:"gte=0,lte=64"`
	Rounded           bool    `yaml:"rounded"`

	Hue    Dimensions `yaml:"hue"`
	SatVal Dimensions `yaml:"satval"`
	Alpha  Dimensions `yaml:"alpha"`
}

// RenderConfig controls the PNG output of the render tool.
type RenderConfig struct {
	Scale float64 `yaml:"scale" validate:"gt=0,lte=8"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Picker: PickerConfig{
			InitialColor:      "#FF000000",
			AlphaPanelVisible: true,
			Density:           1,
			TrackColor:        "#FFBDBDBD",
			BorderColor:       "#FF6E6E6E",
			BorderWidthDP:     1,
			PaddingDP:         1,
			CheckerCellDP:     4,
			ThumbRadiusDP:     10,
			Rounded:           true,
			Hue:               Dimensions{Width: 360, Height: 24},
			SatVal:            Dimensions{Width: 200, Height: 200},
			Alpha:             Dimensions{Width: 255, Height: 24},
		},
		Render: RenderConfig{Scale: 1},
	}
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads path, overlays it on Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes YAML data over Default and validates the result. source
// names the data in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if line := extractLine(err); line > 0 {
			return nil, fmt.Errorf("parse %s at line %d: %w", source, line, err)
		}
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// DpToPx converts density-independent pixels to whole pixels, rounding half
// up. Any positive input yields at least one pixel.
func DpToPx(dp, density float64) int {
	val := dp * density
	px := int(val + 0.5)
	if px == 0 && val > 0 {
		return 1
	}
	return px
}

// Px converts dp with the configured density.
func (p PickerConfig) Px(dp float64) int {
	return DpToPx(dp, p.Density)
}

// Initial returns the parsed initial color.
func (p PickerConfig) Initial() hsv.Color {
	return mustColor(p.InitialColor)
}

// Track returns the parsed thumb outline color.
func (p PickerConfig) Track() color.Color {
	return mustColor(p.TrackColor).NRGBA()
}

// Border returns the parsed border color.
func (p PickerConfig) Border() color.Color {
	return mustColor(p.BorderColor).NRGBA()
}

// mustColor parses a color that already passed argb_hex validation.
func mustColor(s string) hsv.Color {
	c, err := hsv.ParseHex(s)
	if err != nil {
		return hsv.Color{}
	}
	return c
}
