package mail

import (
	"strings"
)

// LintHTML performs structural checks on a fully-assembled email document:
// boilerplate the campaign editor does not produce but mail clients expect.
// Content-level scoring (spam phrases, image attributes, accessibility)
// lives in pkg/deliverability; the two reports complement each other.
func LintHTML(htmlContent string) []string {
	var issues []string

	if !strings.Contains(strings.ToLower(htmlContent), "doctype html") {
		issues = append(issues, "Missing DOCTYPE declaration")
	}

	if !strings.Contains(htmlContent, "xmlns:v=\"urn:schemas-microsoft-com:vml\"") {
		issues = append(issues, "Missing VML namespace for Outlook compatibility")
	}

	if !strings.Contains(htmlContent, "<!--[if mso") {
		issues = append(issues, "Missing Outlook conditional comments")
	}

	if !strings.Contains(htmlContent, "border-collapse:collapse") && !strings.Contains(htmlContent, "border-collapse: collapse") {
		issues = append(issues, "Missing border-collapse for table compatibility")
	}

	if strings.Contains(htmlContent, "background-image") && !strings.Contains(htmlContent, "mso-hide") {
		issues = append(issues, "WARNING: Background images not supported in Outlook")
	}

	return issues
}
