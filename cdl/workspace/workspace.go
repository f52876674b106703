package workspace

import (
	"sync"

	"github.com/dhamidi/cdl/cdl"
)

// Document is one open file and its latest analysis.
type Document struct {
	Path     string
	Content  string
	Version  int
	Analysis *cdl.Analysis
}

// Workspace tracks open documents. All access goes through the
// mutex; analyses are immutable once stored, so callers may hold
// them across edits.
type Workspace struct {
	mu    sync.RWMutex
	docs  map[string]*Document
	cache *DiagCache
}

func New(cacheCapacity int) *Workspace {
	return &Workspace{
		docs:  make(map[string]*Document),
		cache: NewDiagCache(cacheCapacity),
	}
}

// UpdateFile replaces the document's content and re-analyzes it.
func (w *Workspace) UpdateFile(path, content string) *Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc, ok := w.docs[path]
	if !ok {
		doc = &Document{Path: path}
		w.docs[path] = doc
	}
	doc.Content = content
	doc.Version++
	doc.Analysis = cdl.Analyze(content)
	return doc
}

// GetFile returns the open document at path, or nil.
func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}

// CloseFile forgets a document and its cached diagnostics.
func (w *Workspace) CloseFile(path string) {
	w.mu.Lock()
	delete(w.docs, path)
	w.mu.Unlock()
	w.cache.Forget(path)
}

// Diagnostics returns the document's diagnostics, served from the
// cache when the content is unchanged.
func (w *Workspace) Diagnostics(path string) []cdl.DocDiagnostic {
	doc := w.GetFile(path)
	if doc == nil {
		return nil
	}
	return w.cache.GetOrCompute(path, doc.Content)
}

// Paths lists the open documents.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.docs))
	for path := range w.docs {
		paths = append(paths, path)
	}
	return paths
}
