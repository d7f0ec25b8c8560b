// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-matcher/internal/ranking"
	"github.com/jonathan/career-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
// Long lines are wrapped on word boundaries, keeping their indentation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, truncate(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %-*s │\n", inner, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs ranked recommendations with scores and reasons.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		p.printBox("CAREER RECOMMENDATIONS", "No careers matched this profile.\nTry adding interests, skills or strengths.")
		return
	}

	var sb strings.Builder
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, rec.CareerName, rec.CareerID))
		sb.WriteString(fmt.Sprintf("    Match: %d%%  Confidence: %s\n", rec.MatchScore, rec.Confidence))
		sb.WriteString(fmt.Sprintf("    Domain: %s\n", rec.Domain))
		if rec.SalaryRange != "" {
			sb.WriteString(fmt.Sprintf("    Salary: %s\n", rec.SalaryRange))
		}
		if len(rec.KeyRequirements) > 0 {
			sb.WriteString(fmt.Sprintf("    Key skills: %s\n", strings.Join(rec.KeyRequirements, ", ")))
		}
		if len(rec.Explanations) > 0 {
			sb.WriteString(fmt.Sprintf("    Scores: %s\n", strings.Join(rec.Explanations, ", ")))
		}
		sb.WriteString(fmt.Sprintf("    Why: %s\n", rec.WhyItFits))
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CAREER RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareer outputs the full details of one career.
func (p *Printer) PrintCareer(career types.Career) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\n", career.Description))
	writeField(&sb, "Domain", career.Domain)
	writeField(&sb, "Salary", career.SalaryRange)
	writeField(&sb, "Education", career.Education)
	writeField(&sb, "Experience", career.ExperienceLevel)
	writeField(&sb, "Environment", career.WorkEnvironment)
	writeField(&sb, "Growth", career.GrowthPotential)
	writeField(&sb, "Satisfaction", career.JobSatisfaction)
	writeField(&sb, "Balance", career.WorkLifeBalance)
	writeField(&sb, "Outlook", career.FutureOutlook)
	sb.WriteString("\n")
	writeField(&sb, "Interests", strings.Join(career.Interests, ", "))
	writeField(&sb, "Skills", strings.Join(career.Skills, ", "))
	writeField(&sb, "Strengths", strings.Join(career.Strengths, ", "))

	p.printBox(strings.ToUpper(career.Name), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLearningPlan outputs a learning roadmap phase by phase.
func (p *Printer) PrintLearningPlan(plan types.LearningPlan) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Duration: %d months\n\n", plan.DurationMonths))

	for i, phase := range plan.Phases {
		sb.WriteString(fmt.Sprintf("Phase %d: %s (%s)\n", i+1, phase.Phase, phase.Duration))
		sb.WriteString(fmt.Sprintf("  Focus: %s\n", phase.Focus))
		for _, resource := range phase.Resources {
			sb.WriteString(fmt.Sprintf("  • %s\n", resource))
		}
		sb.WriteString("\n")
	}

	if len(plan.KeySkillsToLearn) > 0 {
		sb.WriteString(fmt.Sprintf("Key skills: %s\n", strings.Join(plan.KeySkillsToLearn, ", ")))
	}
	sb.WriteString("Certifications:\n")
	for _, cert := range plan.RecommendedCertifications {
		sb.WriteString(fmt.Sprintf("  • %s\n", cert))
	}
	sb.WriteString(fmt.Sprintf("Progression: %s", strings.Join(plan.CareerProgression, " → ")))

	p.printBox("LEARNING PATH: "+strings.ToUpper(plan.Career), sb.String())
}

// PrintSearchResults outputs the top keyword search hits.
func (p *Printer) PrintSearchResults(keywords []string, hits []types.SearchHit) {
	title := "SEARCH: " + strings.Join(keywords, ", ")
	if len(hits) == 0 {
		p.printBox(title, "No careers found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d careers\n\n", len(hits)))

	count := min(len(hits), maxItemsToShow)
	for i := 0; i < count; i++ {
		hit := hits[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (score %d)\n", i+1, hit.Career.Name, hit.Score))
		sb.WriteString(fmt.Sprintf("    %s\n", strings.Join(hit.MatchedKeywords, "; ")))
	}

	if len(hits) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more careers", len(hits)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareers outputs a compact list of careers.
func (p *Printer) PrintCareers(title string, careers []types.Career) {
	var sb strings.Builder
	for _, career := range careers {
		sb.WriteString(fmt.Sprintf("%-24s %s\n", career.ID, career.Name))
	}
	sb.WriteString(fmt.Sprintf("\n%d careers", len(careers)))
	p.printBox(title, sb.String())
}

// PrintDomains outputs the catalog domains.
func (p *Printer) PrintDomains(domains []string) {
	var sb strings.Builder
	for _, domain := range domains {
		sb.WriteString(fmt.Sprintf("• %s\n", domain))
	}
	p.printBox("CAREER DOMAINS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs an exportable profile summary.
func (p *Printer) PrintSummary(summary types.Summary) {
	var sb strings.Builder
	writeField(&sb, "Interests", joinOrNone(summary.Profile.Interests))
	writeField(&sb, "Skills", joinOrNone(summary.Profile.Skills))
	writeField(&sb, "Strengths", joinOrNone(summary.Profile.Strengths))
	writeField(&sb, "Preferences", joinOrNone(summary.Profile.Preferences))

	if len(summary.Careers) > 0 {
		sb.WriteString("\nTop careers:\n")
		for i, career := range summary.Careers {
			sb.WriteString(fmt.Sprintf("  %d. %s (%s)\n", i+1, career.Name, career.Domain))
		}
	}

	p.printBox("CAREER EXPLORATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the score breakdown of a profile against one career.
func (p *Printer) PrintMatch(career types.Career, result types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %d%%  Confidence: %s\n\n", result.Score, result.Confidence))
	writeField(&sb, "Interests", fmt.Sprintf("%.0f%%", result.Facets.Interests))
	writeField(&sb, "Skills", fmt.Sprintf("%.0f%%", result.Facets.Skills))
	writeField(&sb, "Strengths", fmt.Sprintf("%.0f%%", result.Facets.Strengths))
	writeField(&sb, "Preferences", fmt.Sprintf("%.0f%%", result.Facets.Preferences))
	if len(result.Explanations) > 0 {
		sb.WriteString("\n" + ranking.JoinReasons(result.Explanations) + "\n")
	}

	p.printBox("MATCH: "+strings.ToUpper(career.Name), strings.TrimSuffix(sb.String(), "\n"))
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("%-13s %s\n", label+":", value))
}

func joinOrNone(terms []string) string {
	if len(terms) == 0 {
		return "(none)"
	}
	return strings.Join(terms, ", ")
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// wrap splits line into pieces of at most width runes, breaking on spaces
// and repeating the line's leading indentation on continuation lines.
func wrap(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	words := strings.Fields(line)
	lines := make([]string, 0, 2)
	current := indent

	for _, word := range words {
		candidate := current + word
		if current != indent {
			candidate = current + " " + word
		}
		if len([]rune(candidate)) <= width || current == indent {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = indent + "  " + word
	}
	lines = append(lines, current)

	for i, l := range lines {
		lines[i] = truncate(l, width)
	}
	return lines
}
