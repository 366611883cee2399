package collage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Namer hands out collision-free output paths for finished pages. Names
// follow <prefix>-<YYYYMMDD>-<page>.png, with an increasing numeric suffix
// when a file of that name already exists, so a run never silently
// overwrites pages from an earlier run on the same day.
//
// Reserve creates the file exclusively under a mutex, which keeps parallel
// page builds from racing onto the same suffix.
type Namer struct {
	mu     sync.Mutex
	dir    string
	prefix string
	now    func() time.Time
}

func NewNamer(dir, prefix string) *Namer {
	return &Namer{dir: dir, prefix: prefix, now: time.Now}
}

// Reserve returns an unused path for the given page number and claims it by
// creating the file.
func (n *Namer) Reserve(page int) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	base := fmt.Sprintf("%s-%s-%d", n.prefix, n.now().Format("20060102"), page)
	name := base + ".png"
	for i := 1; ; i++ {
		path := filepath.Join(n.dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			f.Close()
			return path, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("failed to reserve output file %s: %w", path, err)
		}
		name = fmt.Sprintf("%s-%d.png", base, i)
	}
}
