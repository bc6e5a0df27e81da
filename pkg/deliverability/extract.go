package deliverability

import (
	"regexp"
	"strings"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	imgTagPattern  = regexp.MustCompile(`(?i)<img[^>]*>`)
	headingPattern = regexp.MustCompile(`(?i)<h[1-6][\s/>]`)
)

// CSS markers that break rendering in legacy mail clients.
var fragileCSSMarkers = []string{
	"flexbox",
	"display: flex",
	"position: absolute",
	"position: fixed",
}

// contentSummary holds the structural signals extracted from campaign markup.
type contentSummary struct {
	PlainTextLength      int
	ImageCount           int
	HasFlexOrAbsoluteCSS bool
	HasMediaTags         bool
}

// extractContent strips tags and scans for structural markers. It never
// fails; garbage input just produces a summary of whatever was found.
func extractContent(markup string) contentSummary {
	plain := strings.TrimSpace(tagPattern.ReplaceAllString(markup, ""))
	lower := strings.ToLower(markup)

	summary := contentSummary{
		PlainTextLength: len(plain),
		ImageCount:      len(imgTagPattern.FindAllString(markup, -1)),
		HasMediaTags:    strings.Contains(lower, "<video") || strings.Contains(lower, "<audio"),
	}

	for _, marker := range fragileCSSMarkers {
		if strings.Contains(markup, marker) {
			summary.HasFlexOrAbsoluteCSS = true
			break
		}
	}

	return summary
}

// countImagesWithoutAlt counts img tags that carry no alt attribute at all.
// This is a raw tag scan, independent of the DOM-based inspector, so a
// broken tag the parser drops is still counted here.
func countImagesWithoutAlt(markup string) int {
	count := 0
	for _, tag := range imgTagPattern.FindAllString(markup, -1) {
		if !strings.Contains(strings.ToLower(tag), "alt=") {
			count++
		}
	}
	return count
}
