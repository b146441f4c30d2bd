// tree.go renders a whole content directory, one worker per document.
package render

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileError records one failed page in a tree render.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Summary reports the outcome of a tree render.
type Summary struct {
	Rendered int
	Failures []FileError
}

// Failed returns true if any page failed to render.
func (s *Summary) Failed() bool {
	return len(s.Failures) > 0
}

// TreeOptions configures RenderTree.
type TreeOptions struct {
	Jobs      int  // worker count; <1 means 1
	CheckOnly bool // resolve macros but write no output
}

// RenderTree renders every *.md file under contentDir into a mirrored
// *.html tree under outDir. Documents render in parallel: resolution is
// pure per-document and the registry is read-only, so the only shared
// state is the summary, guarded by a mutex. A failing page aborts only
// its own render; the summary collects every failure so one broken
// document does not hide the rest.
func (r *Renderer) RenderTree(contentDir, outDir string, opts TreeOptions) (*Summary, error) {
	paths, err := collectPages(contentDir)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var (
		mu      sync.Mutex
		summary Summary
		wg      sync.WaitGroup
	)
	work := make(chan string)

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range work {
				err := r.renderFile(path, contentDir, outDir, opts.CheckOnly)
				mu.Lock()
				if err != nil {
					summary.Failures = append(summary.Failures, FileError{Path: path, Err: err})
				} else {
					summary.Rendered++
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range paths {
		work <- path
	}
	close(work)
	wg.Wait()

	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].Path < summary.Failures[j].Path
	})

	return &summary, nil
}

// renderFile renders a single page and writes the mirrored output file.
func (r *Renderer) renderFile(path, contentDir, outDir string, checkOnly bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read page: %w", err)
	}

	if checkOnly {
		_, err := r.ResolvePage(source)
		return err
	}

	html, err := r.RenderPage(source)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(contentDir, path)
	if err != nil {
		return err
	}
	outPath := filepath.Join(outDir, strings.TrimSuffix(rel, ".md")+".html")

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// collectPages lists all Markdown files under root in sorted order.
func collectPages(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content directory: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}
