package deliverability

import (
	"fmt"
	"regexp"
	"strings"
)

// Fallback dimensions when the source URL carries no size hint.
const (
	defaultImageWidth  = 600
	defaultImageHeight = 400
)

// Baseline declarations every fixed image ends up with.
const responsiveImageStyle = "width:100%; height:auto; display:block;"

var (
	srcAttrPattern    = regexp.MustCompile(`(?i)\ssrc\s*=\s*("([^"]*)"|'([^']*)')`)
	widthAttrPattern  = regexp.MustCompile(`(?i)\swidth\s*=\s*("[^"]*"|'[^']*')`)
	heightAttrPattern = regexp.MustCompile(`(?i)\sheight\s*=\s*("[^"]*"|'[^']*')`)
	styleAttrPattern  = regexp.MustCompile(`(?i)\sstyle\s*=\s*("([^"]*)"|'([^']*)')`)
	urlDimsPattern    = regexp.MustCompile(`/(\d+)x(\d+)[/?]`)
)

// FixImages rewrites every img tag in the markup so it has a numeric width
// and height and a complete inline style. Existing numeric dimensions and
// style declarations are preserved; tags without a src pass through
// unchanged. The function never fails and is idempotent on already-fixed
// markup.
func FixImages(markup string) string {
	return imgTagPattern.ReplaceAllStringFunc(markup, fixImageTag)
}

func fixImageTag(tag string) string {
	src, ok := extractSrc(tag)
	if !ok {
		return tag
	}

	width, height := inferDimensions(src)
	tag = ensureDimensionAttr(tag, widthAttrPattern, "width", width)
	tag = ensureDimensionAttr(tag, heightAttrPattern, "height", height)
	return ensureStyleAttr(tag)
}

func extractSrc(tag string) (string, bool) {
	m := srcAttrPattern.FindStringSubmatch(tag)
	if m == nil {
		return "", false
	}
	if m[2] != "" {
		return m[2], true
	}
	return m[3], true
}

// inferDimensions looks for a /WxH/ or /WxH? segment in the source URL,
// the convention used by most image CDNs and placeholder services.
func inferDimensions(src string) (int, int) {
	if m := urlDimsPattern.FindStringSubmatch(src); m != nil {
		var w, h int
		fmt.Sscanf(m[1], "%d", &w)
		fmt.Sscanf(m[2], "%d", &h)
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultImageWidth, defaultImageHeight
}

// ensureDimensionAttr appends the attribute when missing and replaces its
// value when present but not numeric. Valid numeric values are left alone.
func ensureDimensionAttr(tag string, pattern *regexp.Regexp, name string, value int) string {
	m := pattern.FindStringSubmatch(tag)
	if m == nil {
		return insertAttr(tag, fmt.Sprintf(` %s="%d"`, name, value))
	}

	current := strings.Trim(m[1], `"'`)
	if isNumericDimension(current) {
		return tag
	}
	return strings.Replace(tag, m[0], fmt.Sprintf(` %s="%d"`, name, value), 1)
}

// ensureStyleAttr appends a full responsive style when the attribute is
// missing, or appends only the missing declarations when one exists.
func ensureStyleAttr(tag string) string {
	m := styleAttrPattern.FindStringSubmatch(tag)
	if m == nil {
		return insertAttr(tag, fmt.Sprintf(` style="%s"`, responsiveImageStyle))
	}

	style := m[2]
	if style == "" {
		style = m[3]
	}

	var missing []string
	if !strings.Contains(style, "width:") {
		missing = append(missing, "width:100%")
	}
	if !strings.Contains(style, "height:") {
		missing = append(missing, "height:auto")
	}
	if !strings.Contains(style, "display:") {
		missing = append(missing, "display:block")
	}
	if len(missing) == 0 {
		return tag
	}

	merged := strings.TrimSpace(style)
	if merged != "" && !strings.HasSuffix(merged, ";") {
		merged += ";"
	}
	for _, decl := range missing {
		merged += " " + decl + ";"
	}
	merged = strings.TrimSpace(merged)

	return strings.Replace(tag, m[0], fmt.Sprintf(` style="%s"`, merged), 1)
}

// insertAttr places an attribute just before the tag's closing bracket.
func insertAttr(tag, attr string) string {
	if strings.HasSuffix(tag, "/>") {
		return strings.TrimSuffix(tag, "/>") + attr + "/>"
	}
	return strings.TrimSuffix(tag, ">") + attr + ">"
}
