package template

import (
	"os"
	"strings"
	"testing"
)

func TestNewRenderer(t *testing.T) {
	renderer := NewRenderer()
	if renderer == nil {
		t.Fatal("NewRenderer returned nil")
	}
}

func TestLoadAndRenderTemplate(t *testing.T) {
	renderer := NewRenderer()

	err := renderer.LoadTemplate("welcome", `<h1>Hi {{.Name}}</h1><p><a href="{{.UnsubscribeURL}}">Unsubscribe</a></p>`)
	if err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}

	if !renderer.HasTemplate("welcome") {
		t.Error("template was not registered")
	}

	html, err := renderer.RenderTemplate("welcome", PreviewData())
	if err != nil {
		t.Fatalf("RenderTemplate failed: %v", err)
	}

	if !strings.Contains(html, "Hi Preview Recipient") {
		t.Errorf("merge tag not substituted: %s", html)
	}
	if !strings.Contains(html, "unsubscribe/preview") {
		t.Errorf("unsubscribe URL not substituted: %s", html)
	}
}

func TestRenderTemplateNotFound(t *testing.T) {
	renderer := NewRenderer()

	_, err := renderer.RenderTemplate("missing", nil)
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRenderString(t *testing.T) {
	renderer := NewRenderer()

	html, err := renderer.RenderString(`<p>Hello {{.Name}}</p>`, MergeData{Name: "Ada"})
	if err != nil {
		t.Fatalf("RenderString failed: %v", err)
	}
	if html != "<p>Hello Ada</p>" {
		t.Errorf("unexpected output: %s", html)
	}
}

func TestRenderStringBadTemplate(t *testing.T) {
	renderer := NewRenderer()

	if _, err := renderer.RenderString(`{{.Unclosed`, nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadTemplateFromFile(t *testing.T) {
	renderer := NewRenderer()

	tmpFile, err := os.CreateTemp("", "campaign_*.html")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(`<p>{{.Email}}</p>`); err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()

	if err := renderer.LoadTemplateFromFile("filebased", tmpFile.Name()); err != nil {
		t.Fatalf("LoadTemplateFromFile failed: %v", err)
	}

	if !renderer.HasTemplate("filebased") {
		t.Error("template was not loaded")
	}
}

func TestTemplateCache(t *testing.T) {
	renderer := NewRenderer(WithCache(true))

	renderer.LoadTemplate("cached", `<p>{{.Name}}</p>`)

	data := MergeData{Name: "Cache Test", Email: "c@example.com"}

	if _, err := renderer.RenderTemplate("cached", data); err != nil {
		t.Fatal(err)
	}
	if renderer.GetCacheSize() != 1 {
		t.Errorf("expected cache size 1, got %d", renderer.GetCacheSize())
	}

	// Identical data hits the cache; no second entry appears.
	if _, err := renderer.RenderTemplate("cached", data); err != nil {
		t.Fatal(err)
	}
	if renderer.GetCacheSize() != 1 {
		t.Errorf("expected cache size 1, got %d", renderer.GetCacheSize())
	}

	renderer.ClearCache()
	if renderer.GetCacheSize() != 0 {
		t.Errorf("expected empty cache after clear, got %d", renderer.GetCacheSize())
	}
}

func TestRemoveTemplate(t *testing.T) {
	renderer := NewRenderer()
	renderer.LoadTemplate("temp", `<p>x</p>`)

	renderer.RemoveTemplate("temp")
	if renderer.HasTemplate("temp") {
		t.Error("template still present after removal")
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	renderer := NewRenderer(WithCache(true))

	data := MergeData{Name: "Stable", Email: "s@example.com"}

	key1, err := renderer.createCacheKey("simple", data)
	if err != nil {
		t.Fatalf("failed to create cache key: %v", err)
	}
	key2, err := renderer.createCacheKey("simple", data)
	if err != nil {
		t.Fatalf("failed to create second cache key: %v", err)
	}

	if key1 != key2 {
		t.Errorf("cache keys are not deterministic: %s != %s", key1, key2)
	}
}
