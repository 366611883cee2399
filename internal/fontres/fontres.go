// Package fontres resolves and loads the TrueType font used for captions
// and the info panel. Resolution follows a small per-OS default table and
// falls back to a system font search, so the tool works out of the box on
// the common desktop platforms.
package fontres

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

var (
	// ErrFontUnavailable means the configured or default font cannot be
	// located or parsed. Captions cannot render without it, so the whole
	// run aborts.
	ErrFontUnavailable = errors.New("font unavailable")

	// ErrUnsupportedPlatform means no default font is known for this OS
	// and none was configured.
	ErrUnsupportedPlatform = errors.New("unsupported operating system")
)

// DefaultFontName returns the platform default font path or file name.
func DefaultFontName() (string, error) {
	switch runtime.GOOS {
	case "windows":
		return "arial.ttf", nil
	case "darwin":
		return "Arial.ttf", nil
	case "linux":
		return "/usr/share/fonts/truetype/freefont/FreeSans.ttf", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}

// Resolve turns a configured font value into a loadable file path. An empty
// value selects the platform default. A value that names an existing file is
// used directly; anything else is searched for in the system font
// directories by file name.
func Resolve(configured string) (string, error) {
	name := configured
	if name == "" {
		var err error
		name, err = DefaultFontName()
		if err != nil {
			return "", err
		}
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	path, err := findfont.Find(filepath.Base(name))
	if err != nil {
		return "", fmt.Errorf("%w: cannot locate %q", ErrFontUnavailable, name)
	}
	return path, nil
}

// Load reads and parses a TrueType font file.
func Load(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrFontUnavailable, path, err)
	}
	return fnt, nil
}

// Face builds a rendering face at the given point size.
func Face(fnt *truetype.Font, size float64) font.Face {
	return truetype.NewFace(fnt, &truetype.Options{Size: size})
}
