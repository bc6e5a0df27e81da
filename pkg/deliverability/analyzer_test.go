package deliverability

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyzeEmptyMarkup(t *testing.T) {
	for _, markup := range []string{"", "   ", "\n\t  \n"} {
		report := Analyze(markup)
		if report.Score != 100 {
			t.Errorf("Analyze(%q) score = %d, want 100", markup, report.Score)
		}
		if len(report.SpamWarnings) != 0 || len(report.CompatibilityWarnings) != 0 || len(report.AccessibilityWarnings) != 0 {
			t.Errorf("Analyze(%q) returned warnings for empty input: %+v", markup, report)
		}
	}
}

func TestAnalyzeMissingUnsubscribe(t *testing.T) {
	report := Analyze("<p>Hello</p>")

	if report.Score != 75 {
		t.Errorf("score = %d, want 75", report.Score)
	}
	if len(report.SpamWarnings) != 1 {
		t.Fatalf("spam warnings = %d, want 1: %v", len(report.SpamWarnings), report.SpamWarnings)
	}
	if !strings.Contains(strings.ToLower(report.SpamWarnings[0]), "unsubscribe") {
		t.Errorf("spam warning should mention unsubscribe, got %q", report.SpamWarnings[0])
	}
	if len(report.CompatibilityWarnings) != 0 {
		t.Errorf("unexpected compatibility warnings: %v", report.CompatibilityWarnings)
	}
	if len(report.AccessibilityWarnings) != 0 {
		t.Errorf("unexpected accessibility warnings: %v", report.AccessibilityWarnings)
	}
}

func TestAnalyzeImageHeavyEmail(t *testing.T) {
	markup := `<img src="a.jpg"><img src="b.jpg"><img src="c.jpg">` +
		`<img src="d.jpg"><img src="e.jpg"><img src="f.jpg"><p>Unsubscribe here</p>`
	report := Analyze(markup)

	// 6 images with 16 chars of text: ratio and image-count penalties both
	// apply, plus missing alt. Unsubscribe is present so no -25.
	want := 100 - penaltyLowTextRatio - penaltyTooManyImages - penaltyMissingAlt
	if report.Score != want {
		t.Errorf("score = %d, want %d", report.Score, want)
	}

	for _, w := range report.SpamWarnings {
		if strings.Contains(strings.ToLower(w), "unsubscribe") {
			t.Errorf("unsubscribe warning present despite unsubscribe text: %q", w)
		}
	}

	foundCount := false
	for _, w := range report.SpamWarnings {
		if strings.Contains(w, "6 images") {
			foundCount = true
		}
	}
	if !foundCount {
		t.Errorf("expected image-count warning in %v", report.SpamWarnings)
	}

	foundHere := false
	for _, w := range report.AccessibilityWarnings {
		if strings.Contains(w, "click here") {
			foundHere = true
		}
	}
	if !foundHere {
		t.Errorf("expected non-descriptive link warning in %v", report.AccessibilityWarnings)
	}
}

func TestAnalyzeSpamPhrasesCountDistinct(t *testing.T) {
	// "free" occurs three times but counts once; three distinct phrases
	// match in total, so the lexicon penalty is 24, plus 25 for the
	// missing unsubscribe link.
	report := Analyze("<p>free free free buy now act now</p>")

	if report.Score != 51 {
		t.Errorf("score = %d, want 51", report.Score)
	}
	if len(report.SpamWarnings) != 2 {
		t.Fatalf("spam warnings = %d, want 2: %v", len(report.SpamWarnings), report.SpamWarnings)
	}
	if !strings.Contains(report.SpamWarnings[0], "3 spam trigger phrase(s)") {
		t.Errorf("lexicon warning should count 3 distinct phrases, got %q", report.SpamWarnings[0])
	}
	for _, phrase := range []string{"free", "buy now", "act now"} {
		if !strings.Contains(report.SpamWarnings[0], phrase) {
			t.Errorf("lexicon warning missing phrase %q: %q", phrase, report.SpamWarnings[0])
		}
	}
}

func TestAnalyzeLexiconPenaltyCap(t *testing.T) {
	// Six distinct phrases would be 48 points uncapped; the cap holds it
	// at 40. Unsubscribe present so only the lexicon penalty applies.
	markup := "<p>free buy now act now winner urgent miracle - unsubscribe</p>"
	report := Analyze(markup)

	if want := 100 - lexiconPenaltyCap; report.Score != want {
		t.Errorf("score = %d, want %d", report.Score, want)
	}
}

func TestAnalyzeScoreClampedAtZero(t *testing.T) {
	// Every scored rule fires: capped lexicon (40), ratio (20), image
	// count (10), missing alt (5), no unsubscribe (25) = 100 deducted.
	markup := "<p>free buy now act now winner urgent miracle</p>" +
		strings.Repeat(`<img src="x.jpg">`, 6)
	report := Analyze(markup)

	if report.Score != 0 {
		t.Errorf("score = %d, want 0", report.Score)
	}
}

func TestAnalyzeScoreRange(t *testing.T) {
	inputs := []string{
		"<p>Hello</p>",
		"not html at all",
		"<<<>>><img><img",
		"<div style='display: flex'>free buy now</div>",
		strings.Repeat("x", 10000),
		"<video src='v.mp4'></video>",
	}
	for _, markup := range inputs {
		report := Analyze(markup)
		if report.Score < 0 || report.Score > 100 {
			t.Errorf("Analyze(%.30q) score = %d, out of range", markup, report.Score)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	markup := `<h1>Big Sale</h1><img src="a.jpg"><p>free buy now, no unsubscribe link here</p>` +
		`<div style="position: absolute">x</div>`

	first := Analyze(markup)
	second := Analyze(markup)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze is not deterministic:\n first: %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzeCompatibilityWarnings(t *testing.T) {
	markup := `<div style="display: flex"><video src="v.mp4"></video></div><p>unsubscribe</p>`
	report := Analyze(markup)

	if len(report.CompatibilityWarnings) != 2 {
		t.Fatalf("compatibility warnings = %d, want 2: %v",
			len(report.CompatibilityWarnings), report.CompatibilityWarnings)
	}
	// Fixed check order: CSS warning before media warning.
	if !strings.Contains(report.CompatibilityWarnings[0], "Flexbox") {
		t.Errorf("first warning should be the CSS one, got %q", report.CompatibilityWarnings[0])
	}
	if !strings.Contains(report.CompatibilityWarnings[1], "Video") {
		t.Errorf("second warning should be the media one, got %q", report.CompatibilityWarnings[1])
	}
}

func TestAnalyzeImageIssueWarnings(t *testing.T) {
	markup := `<img src="ok.png" width="600" height="400" alt="ok" style="width:100%;">` +
		`<img src="bad.png">` +
		strings.Repeat("unsubscribe text padding ", 30)
	report := Analyze(markup)

	var summary, detail string
	for _, w := range report.CompatibilityWarnings {
		if strings.Contains(w, "attribute problems") {
			summary = w
		}
		if strings.Contains(w, "bad.png") {
			detail = w
		}
	}
	if !strings.Contains(summary, "1 image(s)") {
		t.Errorf("expected a one-image summary, got %q", summary)
	}
	// The clean image still occupies position 1, so the broken one is 2.
	if !strings.Contains(detail, "Image 2") {
		t.Errorf("expected issue for image index 2, got %q", detail)
	}
}

func TestAnalyzeHeadingSuggestion(t *testing.T) {
	long := "<p>unsubscribe " + strings.Repeat("lorem ipsum dolor ", 20) + "</p>"
	report := Analyze(long)

	found := false
	for _, w := range report.AccessibilityWarnings {
		if strings.Contains(w, "headings") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected heading suggestion for long headingless content: %v", report.AccessibilityWarnings)
	}

	withHeading := "<h2>Title</h2>" + long
	report = Analyze(withHeading)
	for _, w := range report.AccessibilityWarnings {
		if strings.Contains(w, "headings") {
			t.Errorf("heading suggestion present despite h2: %v", report.AccessibilityWarnings)
		}
	}
}
