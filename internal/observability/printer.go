// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the width of formatted output boxes.
	boxWidth = 72
	// maxSkillsToShow caps how many skills are listed per candidate.
	maxSkillsToShow = 8
	// excerptLength caps section excerpts in candidate detail output.
	excerptLength = 200
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title, content string) {
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

// PrintRanking outputs the ranked candidate table.
func (p *Printer) PrintRanking(runID string, rows []types.RankingRow) {
	var sb strings.Builder

	if len(rows) == 0 {
		sb.WriteString("No candidates ranked.\n")
	}
	for i, row := range rows {
		name := row.Name
		if name == "" {
			name = row.FileName
		}
		sb.WriteString(fmt.Sprintf("%2d. %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    file: %s\n", row.FileName))
		if row.Email != "" {
			sb.WriteString(fmt.Sprintf("    email: %s\n", row.Email))
		}
		sb.WriteString(fmt.Sprintf("    similarity: %s  skill matches: %d  total: %.4f\n",
			row.SimilarityPercentage, row.RequiredSkillMatchCount, row.TotalScore))
	}

	p.printBox(fmt.Sprintf("Candidate Ranking (run %s)", runID), strings.TrimRight(sb.String(), "\n"))
}

// PrintRecord outputs the parsed details of one candidate.
func (p *Printer) PrintRecord(record types.CandidateRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", orNotDetected(record.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orNotDetected(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orNotDetected(record.Phone)))

	if len(record.Skills) > 0 {
		skills := record.Skills
		suffix := ""
		if len(skills) > maxSkillsToShow {
			suffix = fmt.Sprintf(" ... and %d more", len(skills)-maxSkillsToShow)
			skills = skills[:maxSkillsToShow]
		}
		sb.WriteString(fmt.Sprintf("Skills: %s%s\n", strings.Join(skills, ", "), suffix))
	} else {
		sb.WriteString("Skills: not detected\n")
	}

	sb.WriteString(fmt.Sprintf("Education:  %s\n", excerpt(record.Education)))
	sb.WriteString(fmt.Sprintf("Experience: %s", excerpt(record.Experience)))

	p.printBox(record.FileName, sb.String())
}

func orNotDetected(value string) string {
	if value == "" {
		return "not detected"
	}
	return value
}

// excerpt flattens a section to one line and truncates it for display.
func excerpt(section string) string {
	if section == "" {
		return "not detected"
	}
	flat := strings.Join(strings.Fields(section), " ")
	if len(flat) > excerptLength {
		return flat[:excerptLength-3] + "..."
	}
	return flat
}
