// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintProjection outputs a summary of every block and whether it renders.
func (p *Printer) PrintProjection(proj *types.Projection) {
	if proj == nil {
		return
	}

	p.PrintHeader(proj)

	var sb strings.Builder
	blocks := []struct {
		category types.Category
		block    types.Block
		count    int
	}{
		{types.CategoryPersonal, proj.Summary.Block, len(proj.Summary.Lines)},
		{types.CategoryExperience, proj.Experience.Block, len(proj.Experience.Items)},
		{types.CategoryEducation, proj.Education.Block, len(proj.Education.Items)},
		{types.CategorySkills, proj.Skills.Block, len(proj.Skills.Groups)},
		{types.CategoryProjects, proj.Projects.Block, len(proj.Projects.Items)},
		{types.CategoryLanguages, proj.Languages.Block, len(proj.Languages.Items)},
		{types.CategoryCertifications, proj.Certifications.Block, len(proj.Certifications.Items)},
	}
	for _, b := range blocks {
		mark := "·"
		switch {
		case b.block.Renderable:
			mark = "✓"
		case b.block.Found:
			mark = "○"
		}
		sb.WriteString(fmt.Sprintf("%s %-15s %-26s %d\n", mark, b.category, truncate(b.block.Heading, 26), b.count))
	}

	order := make([]string, 0, len(proj.Order))
	for _, c := range proj.Order {
		order = append(order, string(c))
	}
	sb.WriteString("\nOrder: ")
	if len(order) == 0 {
		sb.WriteString("(nothing to render)")
	} else {
		sb.WriteString(strings.Join(order, " → "))
	}

	p.printBox("SECTIONS", sb.String())

	p.PrintSkillGroups(proj.Skills.Groups)
}

// PrintHeader outputs the identity and contact rows.
func (p *Printer) PrintHeader(proj *types.Projection) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", proj.Header.FullName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", proj.Header.JobTitle))
	if proj.Header.ProfilePicture != "" {
		sb.WriteString(fmt.Sprintf("Photo:    %d chars\n", len(proj.Header.ProfilePicture)))
	}
	if len(proj.Contacts) > 0 {
		sb.WriteString("\n")
		for _, c := range proj.Contacts {
			sb.WriteString(fmt.Sprintf("  %-9s %s\n", c.Kind, c.Value))
		}
	}

	p.printBox("HEADER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGroups outputs the skill buckets in order.
func (p *Printer) PrintSkillGroups(groups types.SkillGroups) {
	if len(groups) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(groups), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%s: %s\n", groups[i].Category, strings.Join(groups[i].Skills, ", ")))
	}
	if len(groups) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more categories\n", len(groups)-maxItemsToShow))
	}

	p.printBox("SKILL GROUPS", strings.TrimSuffix(sb.String(), "\n"))
}
