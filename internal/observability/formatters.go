// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobfit/internal/pipeline"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/jonathan/jobfit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for human-readable CLI mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a job analysis.
func (p *Printer) PrintAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Experience level: %s\n", analysis.ExperienceLevel))
	sb.WriteString("\n")

	if len(analysis.Skills.Technical) > 0 {
		skills := strings.Join(analysis.Skills.Technical, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Technical: %s\n", skills))
	}
	if len(analysis.Skills.Soft) > 0 {
		skills := strings.Join(analysis.Skills.Soft, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Soft:      %s\n", skills))
	}

	if len(analysis.PrioritySkills) > 0 {
		sb.WriteString("\nPriority skills:\n")
		count := min(len(analysis.PrioritySkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			ps := analysis.PrioritySkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (×%d)", ps.Skill, ps.Frequency))
			if ps.InRequirements {
				sb.WriteString(" [required]")
			}
			sb.WriteString("\n")
		}
		if len(analysis.PrioritySkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.PrioritySkills)-maxItemsToShow))
		}
	}

	if len(analysis.Requirements) > 0 {
		sb.WriteString(fmt.Sprintf("\nRequirements extracted: %d\n", len(analysis.Requirements)))
	}
	if len(analysis.Responsibilities) > 0 {
		sb.WriteString(fmt.Sprintf("Responsibilities extracted: %d\n", len(analysis.Responsibilities)))
	}

	if len(analysis.Keywords) > 0 {
		count := min(len(analysis.Keywords), maxItemsToShow)
		words := make([]string, 0, count)
		for i := 0; i < count; i++ {
			words = append(words, analysis.Keywords[i].Word)
		}
		sb.WriteString(fmt.Sprintf("Top keywords: %s\n", strings.Join(words, ", ")))
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the match score with a coarse verdict line.
func (p *Printer) PrintScore(score float64, candidateSkills []string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match score: %.1f%%\n", score))

	var verdict string
	switch {
	case score >= 80:
		verdict = "Strong match"
	case score >= 50:
		verdict = "Moderate match"
	case score > 0:
		verdict = "Weak match"
	default:
		verdict = "No overlap found"
	}
	sb.WriteString(fmt.Sprintf("Verdict:     %s\n", verdict))

	if len(candidateSkills) > 0 {
		skills := strings.Join(candidateSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Candidate:   %s", skills))
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanked outputs the top ranked analyses with scores.
func (p *Printer) PrintRanked(ranked []pipeline.RankedAnalysis) {
	if len(ranked) == 0 {
		p.printBox("RANKED ANALYSES", "No stored analyses to rank")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Analyses ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := ranked[i]
		title := entry.Title
		if entry.Company != "" {
			title = fmt.Sprintf("%s @ %s", entry.Title, entry.Company)
		}
		if len(title) > 42 {
			title = title[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%\n", entry.Score))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED ANALYSES", sb.String())
}

// PrintTailoringPlan outputs the tailoring plan summary.
func (p *Printer) PrintTailoringPlan(plan *types.TailoringPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder

	if len(plan.Experiences) > 0 {
		sb.WriteString("Experience order:\n")
		count := min(len(plan.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := plan.Experiences[i]
			line := exp.Title
			if exp.Company != "" {
				line = fmt.Sprintf("%s, %s", exp.Title, exp.Company)
			}
			if len(line) > 48 {
				line = line[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, line))
		}
		if len(plan.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(plan.Experiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if plan.Skills != "" {
		skills := plan.Skills
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:  %s\n", skills))
	}

	if plan.Summary != "" {
		summary := plan.Summary
		if len(summary) > 45 {
			summary = summary[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Summary: %s\n", summary))
	}

	if plan.Recommendations != nil && len(plan.Recommendations.KeywordsToEmphasize) > 0 {
		keywords := strings.Join(plan.Recommendations.KeywordsToEmphasize, ", ")
		if len(keywords) > 42 {
			keywords = keywords[:39] + "..."
		}
		sb.WriteString(fmt.Sprintf("Emphasize: %s\n", keywords))
	}

	p.printBox("TAILORING PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs aggregate statistics over the stored analyses.
func (p *Printer) PrintStats(stats *store.AnalysisStats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total analyses:   %d\n", stats.TotalAnalyses))
	sb.WriteString(fmt.Sprintf("Unique companies: %d\n", stats.UniqueCompanies))

	if len(stats.ExperienceLevels) > 0 {
		sb.WriteString("\nBy experience level:\n")
		for _, level := range []string{"entry", "mid", "senior", "executive", "unknown"} {
			if n, ok := stats.ExperienceLevels[level]; ok {
				sb.WriteString(fmt.Sprintf("  %-10s %d\n", level, n))
			}
		}
	}

	if len(stats.TopSkills) > 0 {
		sb.WriteString("\nTop skills:\n")
		count := min(len(stats.TopSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", stats.TopSkills[i].Skill, stats.TopSkills[i].Count))
		}
	}

	p.printBox("STORED ANALYSES", strings.TrimSuffix(sb.String(), "\n"))
}
