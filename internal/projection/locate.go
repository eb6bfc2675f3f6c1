// Package projection turns a ResumeDocument into the render-ready form shared by every template.
//
// All functions here are total and pure: they never return errors, never
// mutate their input, and treat missing data as "render nothing".
package projection

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// FindSection returns the first section in document order whose type is
// category. For the personal category it falls back to the first section
// with id "summary" when no section is typed personal. Later sections of
// the same type are never visible.
func FindSection(sections []types.ResumeSection, category types.Category) (*types.ResumeSection, bool) {
	summary := -1
	for i := range sections {
		if sections[i].Type == string(category) {
			return &sections[i], true
		}
		if category == types.CategoryPersonal && summary < 0 && sections[i].ID == types.SummarySectionID {
			summary = i
		}
	}
	if summary >= 0 {
		return &sections[summary], true
	}
	return nil, false
}

// Heading returns the section's custom title, or the category fallback.
func Heading(section *types.ResumeSection, category types.Category) string {
	if section != nil {
		if title := strings.TrimSpace(section.Title); title != "" {
			return title
		}
	}
	return category.FallbackTitle()
}

// IsSectionRenderable reports whether a located section should produce a
// block: it must exist and either have items or carry a custom title.
// An absent section and a present-but-empty one give the same answer.
func IsSectionRenderable(section *types.ResumeSection) bool {
	if section == nil {
		return false
	}
	return len(section.Items) > 0 || strings.TrimSpace(section.Title) != ""
}

// sectionOrder returns the renderable categories by the document position
// of their located section.
func sectionOrder(sections []types.ResumeSection, located map[types.Category]*types.ResumeSection) []types.Category {
	order := make([]types.Category, 0, len(located))
	for i := range sections {
		for _, category := range types.Categories {
			if located[category] == &sections[i] {
				order = append(order, category)
			}
		}
	}
	return order
}
