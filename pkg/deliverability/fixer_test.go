package deliverability

import (
	"strings"
	"testing"
)

func TestFixImagesInfersDimensionsFromURL(t *testing.T) {
	fixed := FixImages(`<img src="https://x.com/600x400/foo.png">`)

	for _, want := range []string{`width="600"`, `height="400"`, "width:100%", "height:auto", "display:block"} {
		if !strings.Contains(fixed, want) {
			t.Errorf("fixed tag missing %q: %s", want, fixed)
		}
	}
}

func TestFixImagesFallbackDimensions(t *testing.T) {
	fixed := FixImages(`<img src="https://cdn.example.com/banner.png">`)

	if !strings.Contains(fixed, `width="600"`) || !strings.Contains(fixed, `height="400"`) {
		t.Errorf("expected 600x400 fallback, got %s", fixed)
	}
}

func TestFixImagesReplacesNonNumericDimensions(t *testing.T) {
	fixed := FixImages(`<img src="https://x.com/800x200/hero.jpg" width="auto" height="100%">`)

	if !strings.Contains(fixed, `width="800"`) {
		t.Errorf("auto width should be replaced with inferred 800: %s", fixed)
	}
	if !strings.Contains(fixed, `height="200"`) {
		t.Errorf("percentage height should be replaced with inferred 200: %s", fixed)
	}
}

func TestFixImagesKeepsNumericDimensions(t *testing.T) {
	in := `<img src="a.jpg" width="300" height="150" style="width:100%; height:auto; display:block;">`
	if got := FixImages(in); got != in {
		t.Errorf("already-valid tag was modified:\n in: %s\nout: %s", in, got)
	}
}

func TestFixImagesCompletesPartialStyle(t *testing.T) {
	fixed := FixImages(`<img src="a.jpg" style="border:0; width:50px">`)

	if !strings.Contains(fixed, "border:0") {
		t.Errorf("existing declarations must be preserved: %s", fixed)
	}
	if !strings.Contains(fixed, "width:50px") {
		t.Errorf("existing width declaration must not be overwritten: %s", fixed)
	}
	if !strings.Contains(fixed, "height:auto") || !strings.Contains(fixed, "display:block") {
		t.Errorf("missing declarations were not appended: %s", fixed)
	}
}

func TestFixImagesNoSrcPassthrough(t *testing.T) {
	in := `<p>before</p><img width="auto"><p>after</p>`
	if got := FixImages(in); got != in {
		t.Errorf("tag without src must pass through unchanged:\n in: %s\nout: %s", in, got)
	}
}

func TestFixImagesIdempotent(t *testing.T) {
	in := `<div><img src="https://x.com/640x480/a.png"><img src="b.jpg" width="nope"></div>`

	once := FixImages(in)
	twice := FixImages(once)

	if once != twice {
		t.Errorf("FixImages not idempotent:\n once: %s\ntwice: %s", once, twice)
	}
}

func TestFixImagesPreservesSurroundingMarkup(t *testing.T) {
	in := `<h1>Title</h1><img src="a.jpg"/><p>Tail &amp; entities stay</p>`
	fixed := FixImages(in)

	if !strings.HasPrefix(fixed, "<h1>Title</h1>") || !strings.HasSuffix(fixed, "<p>Tail &amp; entities stay</p>") {
		t.Errorf("markup around the img tag was altered: %s", fixed)
	}
	if !strings.Contains(fixed, `/>`) {
		t.Errorf("self-closing form should be preserved: %s", fixed)
	}
}

func TestInferDimensions(t *testing.T) {
	tests := []struct {
		src  string
		w, h int
	}{
		{"https://x.com/600x400/foo.png", 600, 400},
		{"https://x.com/1280x720?sig=abc", 1280, 720},
		{"https://x.com/images/photo.png", 600, 400},
		{"relative/path.gif", 600, 400},
	}
	for _, tt := range tests {
		w, h := inferDimensions(tt.src)
		if w != tt.w || h != tt.h {
			t.Errorf("inferDimensions(%q) = %dx%d, want %dx%d", tt.src, w, h, tt.w, tt.h)
		}
	}
}
