// Package config holds the canvas specification shared read-only by every
// page of a run. Defaults live in an embedded YAML file and can be
// overridden by COLLAGE_* environment variables; command-line flags are
// applied on top by the CLI layer.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/collage-maker/internal/layout"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the immutable canvas specification for a run.
type Config struct {
	Width           int
	Height          int
	PicsPerPage     int
	Padding         int
	Border          bool
	BorderThickness int
	BorderColor     color.NRGBA
	Align           layout.Align
	Font            string // empty selects the platform default
	TextSize        float64
	TextOpacity     float64
	DateFormat      string // strftime-style, e.g. "%m-%d"
	Prefix          string
	Background      color.NRGBA
	InfoBox         bool
	Verbose         bool
	OutDir          string
}

// raw mirrors defaults.yaml before colors and alignment are parsed.
type raw struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	PicsPerPage     int     `yaml:"pics_per_page"`
	Padding         int     `yaml:"padding"`
	Border          bool    `yaml:"border"`
	BorderThickness int     `yaml:"border_thickness"`
	BorderColor     string  `yaml:"border_color"`
	Align           string  `yaml:"align"`
	TextSize        float64 `yaml:"text_size"`
	TextOpacity     float64 `yaml:"text_opacity"`
	DateFormat      string  `yaml:"date_format"`
	Prefix          string  `yaml:"prefix"`
	BgColor         string  `yaml:"bg_color"`
}

// Load builds the configuration from the embedded defaults plus environment
// overrides.
func Load() *Config {
	var r raw
	if err := yaml.Unmarshal(defaultsYAML, &r); err != nil {
		// Embedded file, cannot fail in a correct build.
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}

	borderColor, err := ParseRGB(r.BorderColor)
	if err != nil {
		panic("invalid border_color in embedded defaults.yaml: " + err.Error())
	}
	bgColor, err := ParseRGB(r.BgColor)
	if err != nil {
		panic("invalid bg_color in embedded defaults.yaml: " + err.Error())
	}

	return &Config{
		Width:           envInt("COLLAGE_WIDTH", r.Width),
		Height:          envInt("COLLAGE_HEIGHT", r.Height),
		PicsPerPage:     envInt("COLLAGE_PICS_PER_PAGE", r.PicsPerPage),
		Padding:         r.Padding,
		Border:          r.Border,
		BorderThickness: r.BorderThickness,
		BorderColor:     borderColor,
		Align:           layout.Align(r.Align),
		Font:            os.Getenv("COLLAGE_FONT"),
		TextSize:        r.TextSize,
		TextOpacity:     r.TextOpacity,
		DateFormat:      r.DateFormat,
		Prefix:          envStr("COLLAGE_PREFIX", r.Prefix),
		Background:      bgColor,
		InfoBox:         false,
		Verbose:         true,
		OutDir:          envStr("COLLAGE_OUT_DIR", "."),
	}
}

// ParseRGB parses a "R,G,B" triple with components in 0-255 into an opaque
// color.
func ParseRGB(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected R,G,B", s)
	}

	var vals [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: component %q out of range 0-255", s, part)
		}
		vals[i] = uint8(n)
	}

	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, nil
}

// Summary dumps the effective configuration as a short multi-line string
// for the info panel.
func (c *Config) Summary() string {
	return fmt.Sprintf(
		"width=%d height=%d pics_per_page=%d padding=%d\n"+
			"border=%t border_thickness=%d border_color=%s\n"+
			"align=%s text_size=%g text_opacity=%g date_format=%s\n"+
			"prefix=%s bg_color=%s",
		c.Width, c.Height, c.PicsPerPage, c.Padding,
		c.Border, c.BorderThickness, rgbString(c.BorderColor),
		c.Align, c.TextSize, c.TextOpacity, c.DateFormat,
		c.Prefix, rgbString(c.Background),
	)
}

func rgbString(c color.NRGBA) string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envStr(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}
