// Package template provides campaign template loading, caching, and
// per-recipient rendering. Campaign content is editor-produced HTML with
// Go template merge tags ({{.Name}}, {{.Email}}, {{.UnsubscribeURL}}).
package template

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Renderer handles template loading, caching, and merge-tag rendering.
type Renderer struct {
	templates map[string]*template.Template
	cache     map[string]string // rendered HTML keyed by name+data hash
	mu        sync.RWMutex
	options   *RenderOptions
}

// RenderOptions configures the renderer behavior.
type RenderOptions struct {
	EnableCache bool   // cache rendered HTML for repeated identical merges
	TemplateDir string // default directory for .html templates
}

// RendererOption configures the renderer.
type RendererOption func(*RenderOptions)

// WithCache enables rendered-HTML caching.
func WithCache(enabled bool) RendererOption {
	return func(opts *RenderOptions) {
		opts.EnableCache = enabled
	}
}

// WithTemplateDir sets the default template directory.
func WithTemplateDir(dir string) RendererOption {
	return func(opts *RenderOptions) {
		opts.TemplateDir = dir
	}
}

// NewRenderer creates a new campaign template renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	options := &RenderOptions{
		EnableCache: false,
		TemplateDir: "./templates",
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Renderer{
		templates: make(map[string]*template.Template),
		cache:     make(map[string]string),
		options:   options,
	}
}

// LoadTemplate parses and registers a template under the given name.
func (r *Renderer) LoadTemplate(name, content string) error {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[name] = tmpl

	if r.options.EnableCache {
		for key := range r.cache {
			if strings.HasPrefix(key, name+"_") {
				delete(r.cache, key)
			}
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single template from a file.
func (r *Renderer) LoadTemplateFromFile(name, filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", filePath, err)
	}

	return r.LoadTemplate(name, string(content))
}

// LoadTemplatesFromDir loads all .html files from a directory, using the
// file name without extension as the template name.
func (r *Renderer) LoadTemplatesFromDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		name := strings.TrimSuffix(filepath.Base(path), ".html")
		return r.LoadTemplateFromFile(name, path)
	})
}

// ReplaceTemplatesFromDir atomically replaces all templates by loading from
// a directory. No request observes a partially-loaded state.
func (r *Renderer) ReplaceTemplatesFromDir(dir string) error {
	newTemplates := make(map[string]*template.Template)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		name := strings.TrimSuffix(filepath.Base(path), ".html")
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		newTemplates[name] = tmpl
		return nil
	})
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.templates = newTemplates
	r.cache = make(map[string]string)
	r.mu.Unlock()

	return nil
}

// RenderTemplate renders a registered template with the given merge data.
func (r *Renderer) RenderTemplate(name string, data any) (string, error) {
	r.mu.RLock()
	tmpl, exists := r.templates[name]
	r.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("template %s not found", name)
	}

	cacheKey, err := r.createCacheKey(name, data)
	if err != nil {
		return "", fmt.Errorf("failed to create cache key for template %s: %w", name, err)
	}

	if r.options.EnableCache {
		r.mu.RLock()
		if cached, found := r.cache[cacheKey]; found {
			r.mu.RUnlock()
			return cached, nil
		}
		r.mu.RUnlock()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	html := buf.String()

	if r.options.EnableCache {
		r.mu.Lock()
		r.cache[cacheKey] = html
		r.mu.Unlock()
	}

	return html, nil
}

// RenderString renders ad-hoc campaign content without registering it.
// Used by the delivery engine to merge per-recipient fields into campaign
// HTML stored in the database.
func (r *Renderer) RenderString(content string, data any) (string, error) {
	tmpl, err := template.New("inline").Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse inline content: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute inline content: %w", err)
	}

	return buf.String(), nil
}

// ListTemplates returns the names of all loaded templates.
func (r *Renderer) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}

// HasTemplate checks if a template is loaded.
func (r *Renderer) HasTemplate(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.templates[name]
	return exists
}

// RemoveTemplate removes a template and its cache entries.
func (r *Renderer) RemoveTemplate(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.templates, name)

	if r.options.EnableCache {
		for key := range r.cache {
			if strings.HasPrefix(key, name+"_") {
				delete(r.cache, key)
			}
		}
	}
}

// ClearCache clears all cached rendered HTML.
func (r *Renderer) ClearCache() {
	if !r.options.EnableCache {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache = make(map[string]string)
}

// GetCacheSize returns the number of cached HTML entries.
func (r *Renderer) GetCacheSize() int {
	if !r.options.EnableCache {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.cache)
}

// createCacheKey builds a deterministic key from template name and data.
func (r *Renderer) createCacheKey(name string, data any) (string, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to serialize data for caching: %w", err)
	}

	hasher := sha256.New()
	hasher.Write([]byte(name))
	hasher.Write(dataBytes)
	hash := fmt.Sprintf("%x", hasher.Sum(nil))

	return fmt.Sprintf("%s_%s", name, hash[:16]), nil
}
