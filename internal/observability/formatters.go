// Package observability provides formatted report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/chhaviambor/resume-improvement-assistant/internal/types"
)

const (
	// boxWidth is the width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the number of list items displayed per section
	maxItemsToShow = 8
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable rendering of a full analysis report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score:   %d/100\n", report.Diagnostics.ATSScore))
	sb.WriteString(fmt.Sprintf("Word count:  %d\n", report.WordCount))
	sb.WriteString(fmt.Sprintf("Readability: %.2f\n", report.Readability))
	sb.WriteString(fmt.Sprintf("Similarity:  %.3f\n", report.Similarity))
	sb.WriteString(fmt.Sprintf("Run:         %s", report.RunID))
	p.printBox("Analysis", sb.String())

	p.printBox("Explanation", report.Diagnostics.Explanation)

	if len(report.MatchedSkills) > 0 {
		var ms strings.Builder
		count := min(len(report.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := report.MatchedSkills[i]
			ms.WriteString(fmt.Sprintf("• %s (%d%%) — '%s'\n", m.Name, m.Confidence, m.MatchedPhrase))
		}
		if len(report.MatchedSkills) > maxItemsToShow {
			ms.WriteString(fmt.Sprintf("... and %d more\n", len(report.MatchedSkills)-maxItemsToShow))
		}
		p.printBox("Matched skills", strings.TrimRight(ms.String(), "\n"))
	} else {
		p.printBox("Matched skills", "No matched skills found.")
	}

	if len(report.MissingKeywords) > 0 {
		shown := report.MissingKeywords
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		p.printBox("Missing keywords", strings.Join(shown, ", "))
	}

	if report.Summary != "" {
		p.printBox("Summary (extractive)", report.Summary)
	}

	if len(report.Suggestions) > 0 {
		var sg strings.Builder
		for _, s := range report.Suggestions {
			sg.WriteString("• " + s + "\n")
		}
		p.printBox("Suggestions", strings.TrimRight(sg.String(), "\n"))
	}
}

// PrintJobKeywords outputs the top extracted job keywords.
func (p *Printer) PrintJobKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}
	p.printBox("Top job keywords", strings.Join(keywords, ", "))
}
