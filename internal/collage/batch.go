package collage

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kozaktomas/collage-maker/internal/config"
	"github.com/kozaktomas/collage-maker/internal/imagefit"
	"github.com/kozaktomas/collage-maker/internal/layout"
)

// FaceProvider returns fresh rendering faces for one page build. truetype
// faces carry mutable glyph caches, so every page gets its own pair.
type FaceProvider func() TextFaces

// BuildOptions controls one orchestrator run.
type BuildOptions struct {
	// Workers bounds how many pages build in parallel. Zero or one keeps
	// the sequential page order on the console.
	Workers int
}

// PageReport describes one finished page.
type PageReport struct {
	Index   int
	Path    string
	Images  int
	Bytes   int64
	Elapsed time.Duration
}

// RunResult aggregates a whole run. A failed page lands in Errors and does
// not stop the remaining pages.
type RunResult struct {
	Pages   []PageReport
	Errors  []error
	Elapsed time.Duration
}

// Builder drives the page-by-page build of a run.
type Builder struct {
	cfg   *config.Config
	faces FaceProvider
	namer *Namer
	runID string
}

func NewBuilder(cfg *config.Config, faces FaceProvider) *Builder {
	return &Builder{
		cfg:   cfg,
		faces: faces,
		namer: NewNamer(cfg.OutDir, cfg.Prefix),
		runID: uuid.NewString(),
	}
}

// RunID identifies this run; it is printed at startup and shown in the
// info panel.
func (b *Builder) RunID() string { return b.runID }

// BuildAll partitions the sources into contiguous pages of PicsPerPage
// images, preserving input order, and builds every page. Pages are numbered
// from 1.
func (b *Builder) BuildAll(sources []imagefit.Source, opts BuildOptions) *RunResult {
	start := time.Now()
	result := &RunResult{}

	if len(sources) == 0 {
		result.Errors = append(result.Errors, fmt.Errorf("%w: no images to place", layout.ErrInvalidGeometry))
		result.Elapsed = time.Since(start)
		return result
	}

	chunks := chunkSources(sources, b.cfg.PicsPerPage)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	if workers == 1 {
		for i, chunk := range chunks {
			report, err := b.buildOne(i+1, chunk)
			if err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			result.Pages = append(result.Pages, report)
		}
		result.Elapsed = time.Since(start)
		return result
	}

	// Pages are fully independent: separate canvases, separate output
	// files. Only the namer is shared, and it serializes itself.
	reports := make([]*PageReport, len(chunks))
	errs := make([]error, len(chunks))
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(idx int, images []imagefit.Source) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			report, err := b.buildOne(idx+1, images)
			if err != nil {
				errs[idx] = err
				return
			}
			reports[idx] = &report
		}(i, chunk)
	}
	wg.Wait()

	for i := range chunks {
		if errs[i] != nil {
			result.Errors = append(result.Errors, errs[i])
			continue
		}
		result.Pages = append(result.Pages, *reports[i])
	}
	result.Elapsed = time.Since(start)
	return result
}

func (b *Builder) buildOne(page int, images []imagefit.Source) (PageReport, error) {
	start := time.Now()
	fmt.Printf("Generating collage %d...\n", page)

	canvas, err := BuildPage(b.cfg, b.faces(), images, b.runID)
	if err != nil {
		return PageReport{}, fmt.Errorf("collage %d: %w", page, err)
	}

	path, err := b.namer.Reserve(page)
	if err != nil {
		return PageReport{}, fmt.Errorf("collage %d: %w", page, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return PageReport{}, fmt.Errorf("collage %d: failed to open %s: %w", page, path, err)
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		return PageReport{}, fmt.Errorf("collage %d: failed to encode: %w", page, err)
	}
	if err := f.Close(); err != nil {
		return PageReport{}, fmt.Errorf("collage %d: failed to write %s: %w", page, path, err)
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	fmt.Printf("Collage %d saved as %s\n", page, filepath.Base(path))
	if b.cfg.Verbose {
		fmt.Printf("Collage %d file size: %d bytes\n", page, size)
	}

	return PageReport{
		Index:   page,
		Path:    path,
		Images:  len(images),
		Bytes:   size,
		Elapsed: time.Since(start),
	}, nil
}

func chunkSources(sources []imagefit.Source, size int) [][]imagefit.Source {
	if size < 1 {
		size = 1
	}
	var chunks [][]imagefit.Source
	for start := 0; start < len(sources); start += size {
		chunks = append(chunks, sources[start:min(start+size, len(sources))])
	}
	return chunks
}
