// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strconv"

// Category is the closed set of section types the extractor recognizes.
type Category string

// Recognized section categories. Any other section type is carried through
// decoding untouched and ignored by the extractor.
const (
	CategoryPersonal       Category = "personal"
	CategoryExperience     Category = "experience"
	CategoryEducation      Category = "education"
	CategorySkills         Category = "skills"
	CategoryProjects       Category = "projects"
	CategoryLanguages      Category = "languages"
	CategoryCertifications Category = "certifications"
)

// SummarySectionID is the section id matched when no section is typed personal.
const SummarySectionID = "summary"

// Categories lists every recognized category in canonical order.
var Categories = []Category{
	CategoryPersonal,
	CategoryExperience,
	CategoryEducation,
	CategorySkills,
	CategoryProjects,
	CategoryLanguages,
	CategoryCertifications,
}

var fallbackTitles = map[Category]string{
	CategoryPersonal:       "PROFESSIONAL SUMMARY",
	CategoryExperience:     "PROFESSIONAL EXPERIENCE",
	CategoryEducation:      "EDUCATION",
	CategorySkills:         "SKILLS",
	CategoryProjects:       "PROJECTS",
	CategoryLanguages:      "LANGUAGES",
	CategoryCertifications: "CERTIFICATIONS",
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	_, ok := fallbackTitles[c]
	return ok
}

// FallbackTitle returns the heading shown when a section has no custom title.
func (c Category) FallbackTitle() string {
	return fallbackTitles[c]
}

// ParseCategory converts a raw section type into a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}

// ResumeDocument is the whole resume as supplied by the editing store on every render.
type ResumeDocument struct {
	PersonalInfo PersonalInfo    `json:"personalInfo"`
	Sections     []ResumeSection `json:"sections"`
}

// PersonalInfo holds the free-standing identity and contact fields.
type PersonalInfo struct {
	FullName       string `json:"fullName,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	Summary        string `json:"summary,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"` // data URI or empty
}

// ResumeSection is a typed, ordered group of items.
// Items is nil when absent from the source and empty when given as [].
type ResumeSection struct {
	ID    string       `json:"id"`
	Type  string       `json:"type"`
	Title string       `json:"title,omitempty"`
	Items []ResumeItem `json:"items,omitempty"`
}

// ResumeItem is one entry of a section. The meaning of Title and Subtitle
// depends on the section category.
type ResumeItem struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ItemKey returns the item's id, or its position when the id is empty.
func ItemKey(item ResumeItem, index int) string {
	if item.ID != "" {
		return item.ID
	}
	return strconv.Itoa(index)
}
