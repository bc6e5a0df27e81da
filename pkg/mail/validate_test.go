package mail

import (
	"strings"
	"testing"
)

const wellFormedDoc = `<!DOCTYPE html>
<html xmlns:v="urn:schemas-microsoft-com:vml">
<head>
<!--[if mso]><style>table{border-collapse:collapse;}</style><![endif]-->
</head>
<body>
<table style="border-collapse:collapse"><tr><td>hello</td></tr></table>
</body>
</html>`

func TestLintHTMLCleanDocument(t *testing.T) {
	if issues := LintHTML(wellFormedDoc); len(issues) != 0 {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestLintHTMLBareFragment(t *testing.T) {
	issues := LintHTML("<p>hello</p>")
	if len(issues) != 4 {
		t.Fatalf("got %d issues, want 4: %v", len(issues), issues)
	}

	for _, want := range []string{"DOCTYPE", "VML", "conditional", "border-collapse"} {
		if !containsIssue(issues, want) {
			t.Errorf("missing issue mentioning %q in %v", want, issues)
		}
	}
}

func TestLintHTMLBackgroundImage(t *testing.T) {
	doc := strings.Replace(wellFormedDoc, "<td>hello</td>",
		`<td style="background-image:url(bg.png)">hello</td>`, 1)

	issues := LintHTML(doc)
	if !containsIssue(issues, "Background images") {
		t.Errorf("issues = %v, want background-image warning", issues)
	}

	// mso-hide fallback silences the warning.
	doc = strings.Replace(doc, "</body>", `<div style="mso-hide:all"></div></body>`, 1)
	if issues := LintHTML(doc); containsIssue(issues, "Background images") {
		t.Errorf("issues = %v, want no background-image warning", issues)
	}
}

func TestLintHTMLBorderCollapseSpacing(t *testing.T) {
	// Both "border-collapse:collapse" and "border-collapse: collapse" count.
	doc := strings.Replace(wellFormedDoc, "border-collapse:collapse", "border-collapse: collapse", -1)
	if issues := LintHTML(doc); containsIssue(issues, "border-collapse") {
		t.Errorf("issues = %v, spaced declaration should pass", issues)
	}
}

func containsIssue(issues []string, substr string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, substr) {
			return true
		}
	}
	return false
}
