package collage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func fixedNamer(dir string) *Namer {
	n := NewNamer(dir, "collage")
	n.now = func() time.Time {
		return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	}
	return n
}

func TestNamerReserve(t *testing.T) {
	dir := t.TempDir()
	n := fixedNamer(dir)

	path, err := n.Reserve(1)
	if err != nil {
		t.Fatalf("Reserve() error = %v", err)
	}
	if filepath.Base(path) != "collage-20240101-1.png" {
		t.Errorf("Reserve() = %s, want collage-20240101-1.png", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Reserve() did not claim the file: %v", err)
	}
}

func TestNamerSuffixesOnCollision(t *testing.T) {
	dir := t.TempDir()
	n := fixedNamer(dir)

	// A page from an earlier run on the same day is already there.
	if err := os.WriteFile(filepath.Join(dir, "collage-20240101-1.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	want := []string{"collage-20240101-1-1.png", "collage-20240101-1-2.png", "collage-20240101-1-3.png"}
	for _, name := range want {
		path, err := n.Reserve(1)
		if err != nil {
			t.Fatalf("Reserve() error = %v", err)
		}
		if filepath.Base(path) != name {
			t.Errorf("Reserve() = %s, want %s", filepath.Base(path), name)
		}
	}
}

func TestNamerConcurrentReserves(t *testing.T) {
	dir := t.TempDir()
	n := fixedNamer(dir)

	const workers = 8
	paths := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path, err := n.Reserve(1)
			if err != nil {
				t.Errorf("Reserve() error = %v", err)
				return
			}
			paths[i] = path
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, path := range paths {
		if seen[path] {
			t.Fatalf("Reserve() handed out %s twice", path)
		}
		seen[path] = true
	}
}
