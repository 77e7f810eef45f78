// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(label + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintMatchResult outputs a summary of one match score.
func (p *Printer) PrintMatchResult(result types.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:   %d%%\n", result.MatchScore))
	sb.WriteString(fmt.Sprintf("Source:  %s\n", result.Source))
	sb.WriteString("\n")
	writeList(&sb, "Matched", result.MatchedSkills)
	writeList(&sb, "Missing", result.MissingSkills)

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedJobs outputs the top N jobs with scores.
func (p *Printer) PrintRankedJobs(matches []types.JobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		label := m.Job.Title
		if label == "" {
			label = m.Job.ID
		}
		if m.Job.Company != "" {
			label += " @ " + m.Job.Company
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    Score: %d%% (%s)\n", m.Result.MatchScore, m.Result.Source))
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStrengthScore outputs the section breakdown and suggestions of a resume score.
func (p *Printer) PrintStrengthScore(score types.ResumeStrengthScore) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:                %d%%\n\n", score.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills completeness:    %d%%\n", score.Sections.SkillsCompleteness))
	sb.WriteString(fmt.Sprintf("Experience relevance:   %d%%\n", score.Sections.ExperienceRelevance))
	sb.WriteString(fmt.Sprintf("Project strength:       %d%%\n", score.Sections.ProjectStrength))
	sb.WriteString(fmt.Sprintf("Formatting consistency: %d%%\n", score.Sections.FormattingConsistency))

	if len(score.Suggestions) > 0 {
		sb.WriteString("\n")
		writeList(&sb, "Suggestions", score.Suggestions)
	}

	p.printBox("RESUME STRENGTH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs each roadmap skill with its status and level.
func (p *Printer) PrintRoadmap(items []types.SkillRoadmapItem) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	completed := 0
	for _, item := range items {
		marker := " "
		switch item.Status {
		case types.StatusCompleted:
			marker = "✓"
			completed++
		case types.StatusInProgress:
			marker = "~"
		}
		sb.WriteString(fmt.Sprintf("[%s] %-28s %s\n", marker, item.Skill, item.Level))
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d skills completed", completed, len(items)))

	p.printBox("SKILL ROADMAP", sb.String())
}

// PrintLearningPlan outputs the week titles of a plan.
func (p *Printer) PrintLearningPlan(plan *types.LearningPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", plan.RoleName))
	sb.WriteString(fmt.Sprintf("Duration: %d days\n\n", plan.DurationDays))
	for _, week := range plan.Weeks {
		sb.WriteString(week.Title + "\n")
	}

	p.printBox("LEARNING PLAN", strings.TrimSuffix(sb.String(), "\n"))
}
