// Package source holds the import adapters that turn raw dataset files into
// the dataframe and metadata contract the generator consumes.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/statmeta/cdigen/dataset"
	"github.com/statmeta/cdigen/model"
)

// Result is the output of one import: the materialized frame, the populated
// metadata contract, the resolved filename, and the total row count.
type Result struct {
	Frame    *dataset.DataFrame
	Meta     *model.Metadata
	Filename string
	Rows     int
}

// Reader reads one source format.
type Reader interface {
	// Read parses raw file content into a conversion input.
	Read(filename string, content []byte) (*Result, error)

	// Extensions returns the file extensions this reader handles,
	// lowercase with leading dot.
	Extensions() []string
}

// Registry dispatches files to readers by extension.
type Registry struct {
	mu      sync.RWMutex
	readers map[string]Reader
}

// DefaultRegistry carries the built-in readers.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry with the built-in readers registered.
func NewRegistry() *Registry {
	r := &Registry{readers: make(map[string]Reader)}
	r.Register(NewCSVReader())
	r.Register(NewJSONReader())
	return r
}

// Register adds a reader under each of its extensions.
func (r *Registry) Register(reader Reader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range reader.Extensions() {
		r.readers[strings.ToLower(ext)] = reader
	}
}

// Get returns the reader for a filename, nil when the extension is unknown.
func (r *Registry) Get(filename string) Reader {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.readers[strings.ToLower(filepath.Ext(filename))]
}

// ReadFile loads a file from disk and parses it with the matching reader.
func (r *Registry) ReadFile(path string) (*Result, error) {
	reader := r.Get(path)
	if reader == nil {
		return nil, fmt.Errorf("source: no reader for file type %q", filepath.Ext(path))
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return reader.Read(filepath.Base(path), content)
}

// Extensions returns every registered extension, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.readers))
	for ext := range r.readers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
