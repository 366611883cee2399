package imagefit

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/schollz/progressbar/v3"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Source is one loaded photograph. TakenAt is the embedded capture time
// when present, otherwise the file modification time. The record is carried
// through the whole pipeline so the caption always matches the image it is
// stamped on.
type Source struct {
	Image   image.Image
	Name    string
	TakenAt time.Time
}

// LoadDirectory decodes every image file in dir, in directory listing
// order. Files that cannot be decoded are skipped with a console note and
// never enter any page. A progress bar is shown unless verbose per-image
// output is enabled.
func LoadDirectory(dir string, verbose bool) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image folder: %w", err)
	}

	var bar *progressbar.ProgressBar
	if !verbose {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetDescription("Loading images"),
			progressbar.OptionShowCount(),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	var sources []Source
	for _, entry := range entries {
		if bar != nil {
			bar.Add(1)
		}
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		img, err := decodeFile(path)
		if err != nil {
			fmt.Printf("Could not open or process '%s'. Skipping this file.\n", entry.Name())
			continue
		}

		sources = append(sources, Source{
			Image:   img,
			Name:    entry.Name(),
			TakenAt: captureTime(path),
		})
	}
	if bar != nil {
		fmt.Println()
	}

	return sources, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// captureTime returns the EXIF original capture time of the file, falling
// back to the file modification time when no usable EXIF data exists. The
// fallback is the expected common case and is not an error.
func captureTime(path string) time.Time {
	if f, err := os.Open(path); err == nil {
		meta, err := exif.Decode(f)
		f.Close()
		if err == nil {
			if taken, err := meta.DateTime(); err == nil {
				return taken
			}
		}
	}

	if info, err := os.Stat(path); err == nil {
		return info.ModTime()
	}
	return time.Now()
}
