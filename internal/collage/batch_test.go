package collage

import (
	"errors"
	"image/color"
	"os"
	"testing"

	"github.com/kozaktomas/collage-maker/internal/config"
	"github.com/kozaktomas/collage-maker/internal/imagefit"
	"github.com/kozaktomas/collage-maker/internal/layout"
)

func batchConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testConfig()
	cfg.Width = 400
	cfg.Height = 500
	cfg.OutDir = t.TempDir()
	return cfg
}

func manySources(n int) []imagefit.Source {
	var sources []imagefit.Source
	for i := 0; i < n; i++ {
		sources = append(sources, colorSource("img.png", 8, 10, color.NRGBA{uint8(i), 100, 100, 255}))
	}
	return sources
}

func TestBuildAllSinglePage(t *testing.T) {
	cfg := batchConfig(t)
	b := NewBuilder(cfg, testFaces)

	result := b.BuildAll(manySources(30), BuildOptions{})
	if len(result.Errors) != 0 {
		t.Fatalf("BuildAll() errors = %v", result.Errors)
	}
	if len(result.Pages) != 1 {
		t.Fatalf("BuildAll() built %d pages, want 1", len(result.Pages))
	}

	page := result.Pages[0]
	if page.Index != 1 || page.Images != 30 {
		t.Errorf("page = index %d with %d images, want index 1 with 30", page.Index, page.Images)
	}
	if page.Bytes <= 0 {
		t.Errorf("page bytes = %d, want > 0", page.Bytes)
	}
	if _, err := os.Stat(page.Path); err != nil {
		t.Errorf("page file missing: %v", err)
	}
}

func TestBuildAllSplitsPages(t *testing.T) {
	cfg := batchConfig(t)
	b := NewBuilder(cfg, testFaces)

	// 31 images at 30 per page: a full page plus a single-image page.
	result := b.BuildAll(manySources(31), BuildOptions{})
	if len(result.Errors) != 0 {
		t.Fatalf("BuildAll() errors = %v", result.Errors)
	}
	if len(result.Pages) != 2 {
		t.Fatalf("BuildAll() built %d pages, want 2", len(result.Pages))
	}
	if result.Pages[0].Images != 30 || result.Pages[1].Images != 1 {
		t.Errorf("page sizes = %d, %d, want 30, 1", result.Pages[0].Images, result.Pages[1].Images)
	}
	if result.Pages[0].Index != 1 || result.Pages[1].Index != 2 {
		t.Errorf("page indexes = %d, %d, want 1, 2", result.Pages[0].Index, result.Pages[1].Index)
	}
}

func TestBuildAllNoImages(t *testing.T) {
	cfg := batchConfig(t)
	b := NewBuilder(cfg, testFaces)

	result := b.BuildAll(nil, BuildOptions{})
	if len(result.Errors) != 1 || !errors.Is(result.Errors[0], layout.ErrInvalidGeometry) {
		t.Fatalf("BuildAll() errors = %v, want one ErrInvalidGeometry", result.Errors)
	}

	entries, err := os.ReadDir(cfg.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("BuildAll() wrote %d files on a failed run, want 0", len(entries))
	}
}

func TestBuildAllParallelKeepsOrder(t *testing.T) {
	cfg := batchConfig(t)
	cfg.PicsPerPage = 4
	b := NewBuilder(cfg, testFaces)

	result := b.BuildAll(manySources(10), BuildOptions{Workers: 3})
	if len(result.Errors) != 0 {
		t.Fatalf("BuildAll() errors = %v", result.Errors)
	}
	if len(result.Pages) != 3 {
		t.Fatalf("BuildAll() built %d pages, want 3", len(result.Pages))
	}
	for i, page := range result.Pages {
		if page.Index != i+1 {
			t.Errorf("pages[%d].Index = %d, want %d", i, page.Index, i+1)
		}
	}
	if result.Pages[2].Images != 2 {
		t.Errorf("last page has %d images, want 2", result.Pages[2].Images)
	}
}

func TestChunkSources(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want []int
	}{
		{name: "exact multiple", n: 60, size: 30, want: []int{30, 30}},
		{name: "remainder page", n: 31, size: 30, want: []int{30, 1}},
		{name: "fewer than one page", n: 5, size: 30, want: []int{5}},
		{name: "empty", n: 0, size: 30, want: nil},
		{name: "degenerate size", n: 3, size: 0, want: []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := chunkSources(manySources(tt.n), tt.size)
			if len(chunks) != len(tt.want) {
				t.Fatalf("chunkSources() = %d chunks, want %d", len(chunks), len(tt.want))
			}
			for i, chunk := range chunks {
				if len(chunk) != tt.want[i] {
					t.Errorf("chunk %d has %d images, want %d", i, len(chunk), tt.want[i])
				}
			}
		})
	}
}
