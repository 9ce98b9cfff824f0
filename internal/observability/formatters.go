// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/skillpath/mitra/internal/types"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the learner profile.
func (p *Printer) PrintProfile(profile *types.LearnerProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:        %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Education:   %s\n", profile.Education))
	sb.WriteString(fmt.Sprintf("Skills:      %s\n", profile.Skills))
	sb.WriteString(fmt.Sprintf("Aspirations: %s", profile.Aspirations))
	if profile.Budget != "" {
		sb.WriteString(fmt.Sprintf("\nBudget:      %s", profile.Budget))
	}

	p.printBox("LEARNER PROFILE", sb.String())
}

// PrintLearningPath outputs a human-readable summary of a generated path.
func (p *Printer) PrintLearningPath(path *types.LearningPath) {
	if path == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Goal:       %s\n", path.CareerGoal))
	sb.WriteString(fmt.Sprintf("Match:      %d/100\n", path.CareerMatchScore.Int()))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", path.Confidence))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Steps (%d):\n", len(path.NsqfMapping)))
	for i, step := range path.NsqfMapping {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(path.NsqfMapping)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %d. [L%d] %s (%s)\n", i+1, step.NsqfLevel.Int(), step.Step, step.CourseID))
	}

	if len(path.SkillGap) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkill gaps (%d):\n", len(path.SkillGap)))
		for i, gap := range path.SkillGap {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(path.SkillGap)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  - %s: %s -> %s\n", gap.Skill, gap.CurrentLevel, gap.RequiredLevel))
		}
	}

	if len(path.AlternativePaths) > 0 {
		sb.WriteString("\nAlternatives: " + strings.Join(path.AlternativePaths, ", "))
	}

	p.printBox("LEARNING PATH", sb.String())
}

// PrintLabourMarket outputs the labour-market signals attached to a path.
func (p *Printer) PrintLabourMarket(signals *types.LabourMarketSignals) {
	if signals == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Demand index: %d/100\n", signals.DemandIndex.Int()))
	sb.WriteString(fmt.Sprintf("Avg salary:   ₹%d per annum\n", signals.AvgSalaryINR.Int()))
	sb.WriteString(fmt.Sprintf("Locations:    %s", strings.Join(signals.TopLocations, ", ")))

	p.printBox("LABOUR MARKET SIGNALS", sb.String())
}
