// Package deliverability scores campaign HTML for spam-filter and
// mail-client risk. Everything here is a pure function of the markup string:
// the engine keeps no state between calls, so it can be invoked on every
// editor keystroke. Scores are advisory and never block a save or a send.
package deliverability

import (
	"fmt"
	"strings"
)

// Deduction table applied by Analyze.
const (
	penaltyLowTextRatio   = 20
	penaltyTooManyImages  = 10
	penaltyMissingAlt     = 5
	penaltyNoUnsubscribe  = 25
	maxImagesBeforeFlag   = 5
	minTextPerImage       = 100
	minTextForHeadingNote = 200
)

// Report is the deliverability verdict for one piece of campaign markup.
// Score starts at 100 and loses points per the deduction table; warnings
// are grouped by concern and ordered by check, so identical input always
// produces an identical report.
type Report struct {
	Score                 int      `json:"score"`
	SpamWarnings          []string `json:"spamWarnings"`
	CompatibilityWarnings []string `json:"compatibilityWarnings"`
	AccessibilityWarnings []string `json:"accessibilityWarnings"`
}

// Analyze scores the markup and collects categorized warnings. Empty or
// whitespace-only input is a perfect score with no warnings.
func Analyze(markup string) Report {
	report := Report{
		Score:                 100,
		SpamWarnings:          []string{},
		CompatibilityWarnings: []string{},
		AccessibilityWarnings: []string{},
	}
	if strings.TrimSpace(markup) == "" {
		return report
	}

	lower := strings.ToLower(markup)
	summary := extractContent(markup)
	score := 100

	if found := matchLexicon(lower); len(found) > 0 {
		penalty := len(found) * lexiconPenaltyPerPhrase
		if penalty > lexiconPenaltyCap {
			penalty = lexiconPenaltyCap
		}
		report.SpamWarnings = append(report.SpamWarnings,
			fmt.Sprintf("Contains %d spam trigger phrase(s): %s", len(found), strings.Join(found, ", ")))
		score -= penalty
	}

	if summary.ImageCount > 0 {
		ratio := float64(summary.PlainTextLength) / float64(summary.ImageCount)
		if ratio < minTextPerImage {
			report.SpamWarnings = append(report.SpamWarnings,
				"Low text-to-image ratio; image-heavy emails are more likely to be filtered")
			score -= penaltyLowTextRatio
		}
	}

	if summary.ImageCount > maxImagesBeforeFlag {
		report.SpamWarnings = append(report.SpamWarnings,
			fmt.Sprintf("Email contains %d images; more than %d often triggers spam filters",
				summary.ImageCount, maxImagesBeforeFlag))
		score -= penaltyTooManyImages
	}

	if summary.HasFlexOrAbsoluteCSS {
		report.CompatibilityWarnings = append(report.CompatibilityWarnings,
			"Flexbox or absolute/fixed positioning may not render in Outlook and other legacy mail clients")
	}

	if summary.HasMediaTags {
		report.CompatibilityWarnings = append(report.CompatibilityWarnings,
			"Video and audio tags are unsupported in most mail clients; link a thumbnail instead")
	}

	if issues := inspectImages(markup); len(issues) > 0 {
		report.CompatibilityWarnings = append(report.CompatibilityWarnings,
			fmt.Sprintf("%d image(s) have attribute problems:", len(issues)))
		for _, issue := range issues {
			report.CompatibilityWarnings = append(report.CompatibilityWarnings,
				fmt.Sprintf("Image %d (%s): %s", issue.Index, issue.Src, strings.Join(issue.Problems, ", ")))
		}
	}

	if n := countImagesWithoutAlt(markup); n > 0 {
		report.AccessibilityWarnings = append(report.AccessibilityWarnings,
			fmt.Sprintf("%d image(s) are missing alt text", n))
		score -= penaltyMissingAlt
	}

	if !headingPattern.MatchString(markup) && summary.PlainTextLength > minTextForHeadingNote {
		report.AccessibilityWarnings = append(report.AccessibilityWarnings,
			"Long content without headings is hard to scan; add h1-h6 headings")
	}

	if !strings.Contains(lower, "unsubscribe") {
		report.SpamWarnings = append(report.SpamWarnings,
			"Missing an unsubscribe link; commercial email without one is heavily penalized")
		score -= penaltyNoUnsubscribe
	}

	if strings.Contains(lower, "click here") || strings.Contains(lower, "here") {
		report.AccessibilityWarnings = append(report.AccessibilityWarnings,
			`Link text like "click here" is not descriptive; name the destination instead`)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	report.Score = score

	analysesTotal.Inc(scoreBucket(score))
	scoreObserved.Observe(int64(score))

	return report
}

// scoreBucket coarsens a score into a metric label.
func scoreBucket(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "poor"
	default:
		return "critical"
	}
}
