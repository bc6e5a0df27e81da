package deliverability

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Problem descriptions reported by the image inspector.
const (
	ProblemMissingWidth  = "missing width attribute"
	ProblemInvalidWidth  = "invalid width attribute"
	ProblemMissingHeight = "missing height attribute"
	ProblemInvalidHeight = "invalid height attribute"
	ProblemMissingAlt    = "missing alt text"
	ProblemMissingCSS    = "missing responsive CSS"
)

// ImageIssue describes a single image with incomplete attributes. Index is
// the 1-based position among all img elements in document order, including
// images that had no problems.
type ImageIssue struct {
	Index    int      `json:"index"`
	Src      string   `json:"src"`
	Problems []string `json:"problems"`
}

// inspectImages parses the markup with an HTML5-tolerant parser and checks
// every img element for attribute completeness. Malformed markup is handled
// by the parser's error recovery; an image the parser cannot locate is
// simply skipped.
func inspectImages(markup string) []ImageIssue {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var issues []ImageIssue
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		var problems []string

		if width, ok := sel.Attr("width"); !ok {
			problems = append(problems, ProblemMissingWidth)
		} else if !isNumericDimension(width) {
			problems = append(problems, ProblemInvalidWidth)
		}

		if height, ok := sel.Attr("height"); !ok {
			problems = append(problems, ProblemMissingHeight)
		} else if !isNumericDimension(height) {
			problems = append(problems, ProblemInvalidHeight)
		}

		if _, ok := sel.Attr("alt"); !ok {
			problems = append(problems, ProblemMissingAlt)
		}

		if style, ok := sel.Attr("style"); !ok {
			problems = append(problems, ProblemMissingCSS)
		} else if !strings.Contains(style, "width:") && !strings.Contains(style, "height:") {
			problems = append(problems, ProblemMissingCSS)
		}

		if len(problems) > 0 {
			src, _ := sel.Attr("src")
			issues = append(issues, ImageIssue{
				Index:    i + 1,
				Src:      src,
				Problems: problems,
			})
		}
	})

	return issues
}

// isNumericDimension reports whether an attribute value is a plain number.
// "auto", percentages and unit suffixes all fail the check.
func isNumericDimension(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" || strings.EqualFold(v, "auto") {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}
