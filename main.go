// Campaign CLI - deliverability checking and test sending
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joeblew999/plat-campaign/pkg/deliverability"
	"github.com/joeblew999/plat-campaign/pkg/mail"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		analyzeCmd(os.Args[2:])
	case "fix":
		fixCmd(os.Args[2:])
	case "lint":
		lintCmd(os.Args[2:])
	case "send":
		sendCmd(os.Args[2:])
	case "version":
		fmt.Println("campaign v0.1.0")
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Campaign - Email Deliverability CLI

Usage:
  campaign <command> [options]

Commands:
  analyze    Score campaign HTML for deliverability
  fix        Repair image tags (dimensions, responsive CSS)
  lint       Check HTML structure for email client compatibility
  send       Send a test email via SMTP
  version    Show version
  help       Show this help

Examples:
  campaign analyze -file=newsletter.html
  campaign analyze -file=newsletter.html -json
  campaign fix -file=newsletter.html -out=fixed.html
  campaign lint -file=newsletter.html
  campaign send -to=test@example.com -file=newsletter.html

Environment Variables:
  SMTP_HOST        SMTP server host (default: smtp.gmail.com)
  SMTP_PORT        SMTP server port (default: 587)
  SMTP_USERNAME    SMTP username
  SMTP_PASSWORD    SMTP password
  SMTP_FROM_EMAIL  Sender address (default: SMTP_USERNAME)
  SMTP_FROM_NAME   Sender display name`)
}

func analyzeCmd(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to analyze")
	asJSON := fs.Bool("json", false, "Output the report as JSON")
	minScore := fs.Int("min-score", 0, "Exit non-zero if the score is below this")
	fs.Parse(args)

	if *file == "" {
		fmt.Println("Error: -file is required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	report := deliverability.Analyze(string(content))

	if *asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	} else {
		printReport(*file, report)
	}

	if report.Score < *minScore {
		os.Exit(1)
	}
}

func printReport(file string, report deliverability.Report) {
	fmt.Printf("%s - deliverability score %d/100\n", file, report.Score)

	printSection("Spam", report.SpamWarnings)
	printSection("Compatibility", report.CompatibilityWarnings)
	printSection("Accessibility", report.AccessibilityWarnings)

	if len(report.SpamWarnings)+len(report.CompatibilityWarnings)+len(report.AccessibilityWarnings) == 0 {
		fmt.Println("✓ No warnings")
	}
}

func printSection(title string, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, warning := range warnings {
		fmt.Printf("  • %s\n", warning)
	}
}

func fixCmd(args []string) {
	fs := flag.NewFlagSet("fix", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to repair")
	outFile := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)

	if *file == "" {
		fmt.Println("Error: -file is required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	fixed := deliverability.FixImages(string(content))

	if *outFile != "" {
		if err := os.WriteFile(*outFile, []byte(fixed), 0644); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
		if fixed == string(content) {
			fmt.Printf("No changes needed; wrote %s\n", *outFile)
		} else {
			fmt.Printf("Fixed image tags; wrote %s\n", *outFile)
		}
	} else {
		fmt.Println(fixed)
	}
}

func lintCmd(args []string) {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to lint")
	fs.Parse(args)

	if *file == "" {
		fmt.Println("Error: -file is required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	issues := mail.LintHTML(string(content))
	if len(issues) == 0 {
		fmt.Printf("✓ %s - No structural issues found\n", *file)
	} else {
		fmt.Printf("⚠ %s - Found %d issue(s):\n", *file, len(issues))
		for _, issue := range issues {
			fmt.Printf("  • %s\n", issue)
		}
		os.Exit(1)
	}
}

func sendCmd(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "Recipient email addresses (comma-separated)")
	file := fs.String("file", "", "HTML file to send")
	subject := fs.String("subject", "Campaign Test Email", "Email subject")
	fs.Parse(args)

	if *to == "" || *file == "" {
		fmt.Println("Error: -to and -file are required")
		os.Exit(1)
	}

	smtpCfg := mail.ConfigFromEnv()
	if smtpCfg.Username == "" || smtpCfg.Password == "" {
		fmt.Println("Error: SMTP_USERNAME and SMTP_PASSWORD environment variables required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	for _, recipient := range strings.Split(*to, ",") {
		recipient = strings.TrimSpace(recipient)
		if recipient == "" {
			continue
		}
		if err := mail.Send(smtpCfg, recipient, *subject, string(content)); err != nil {
			fmt.Printf("Error sending to %s: %v\n", recipient, err)
			os.Exit(1)
		}
		fmt.Printf("✓ Email sent to %s\n", recipient)
	}
}
