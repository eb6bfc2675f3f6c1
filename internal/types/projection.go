// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContactKind names a contact fact derived from PersonalInfo.
type ContactKind string

// Contact kinds in the order they are checked.
const (
	ContactPhone    ContactKind = "phone"
	ContactEmail    ContactKind = "email"
	ContactWebsite  ContactKind = "website"
	ContactLinkedIn ContactKind = "linkedin"
	ContactLocation ContactKind = "location"
)

// ContactItem is a single contact fact, passed through without formatting.
type ContactItem struct {
	Kind  ContactKind `json:"kind"`
	Value string      `json:"value"`
}

// SkillGroup is one category bucket of skill names.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// SkillGroups is an ordered mapping from category label to skill names.
type SkillGroups []SkillGroup

// Lookup returns the skills filed under label.
func (g SkillGroups) Lookup(label string) ([]string, bool) {
	for _, group := range g {
		if group.Category == label {
			return group.Skills, true
		}
	}
	return nil, false
}

// Labels returns the category labels in bucket order.
func (g SkillGroups) Labels() []string {
	labels := make([]string, 0, len(g))
	for _, group := range g {
		labels = append(labels, group.Category)
	}
	return labels
}

// Header is the identity block at the top of every template.
type Header struct {
	FullName       string `json:"fullName,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Block carries what every renderer needs to decide whether and how to
// emit a section heading.
type Block struct {
	SectionID  string `json:"sectionId,omitempty"`
	Heading    string `json:"heading"`
	Found      bool   `json:"found"`
	Renderable bool   `json:"renderable"`
}

// SummaryBlock is rendered from PersonalInfo.Summary rather than items.
type SummaryBlock struct {
	Block
	Lines []string `json:"lines"`
}

// ExperienceItem is a job entry.
type ExperienceItem struct {
	Key     string   `json:"key"`
	Role    string   `json:"role,omitempty"`
	Company string   `json:"company,omitempty"`
	Date    string   `json:"date,omitempty"`
	Bullets []string `json:"bullets"`
}

// EducationItem is a degree entry.
type EducationItem struct {
	Key         string   `json:"key"`
	Degree      string   `json:"degree,omitempty"`
	Institution string   `json:"institution,omitempty"`
	Date        string   `json:"date,omitempty"`
	Details     []string `json:"details"`
}

// ProjectItem is a project entry. URL comes from the item subtitle.
type ProjectItem struct {
	Key     string   `json:"key"`
	Name    string   `json:"name,omitempty"`
	URL     string   `json:"url,omitempty"`
	Date    string   `json:"date,omitempty"`
	Bullets []string `json:"bullets"`
}

// LanguageItem is a spoken language with its proficiency level.
type LanguageItem struct {
	Key         string `json:"key"`
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// CertificationItem is a certificate entry.
type CertificationItem struct {
	Key    string   `json:"key"`
	Name   string   `json:"name,omitempty"`
	Issuer string   `json:"issuer,omitempty"`
	Date   string   `json:"date,omitempty"`
	Notes  []string `json:"notes"`
}

// ExperienceBlock is the projected experience section.
type ExperienceBlock struct {
	Block
	Items []ExperienceItem `json:"items"`
}

// EducationBlock is the projected education section.
type EducationBlock struct {
	Block
	Items []EducationItem `json:"items"`
}

// SkillsBlock is the projected skills section.
type SkillsBlock struct {
	Block
	Groups SkillGroups `json:"groups"`
}

// ProjectsBlock is the projected projects section.
type ProjectsBlock struct {
	Block
	Items []ProjectItem `json:"items"`
}

// LanguagesBlock is the projected languages section.
type LanguagesBlock struct {
	Block
	Items []LanguageItem `json:"items"`
}

// CertificationsBlock is the projected certifications section.
type CertificationsBlock struct {
	Block
	Items []CertificationItem `json:"items"`
}

// Projection is the render-ready form of a ResumeDocument consumed by
// every template.
type Projection struct {
	Header         Header              `json:"header"`
	Contacts       []ContactItem       `json:"contacts"`
	Summary        SummaryBlock        `json:"summary"`
	Experience     ExperienceBlock     `json:"experience"`
	Education      EducationBlock      `json:"education"`
	Skills         SkillsBlock         `json:"skills"`
	Projects       ProjectsBlock       `json:"projects"`
	Languages      LanguagesBlock      `json:"languages"`
	Certifications CertificationsBlock `json:"certifications"`
	// Order lists renderable categories in document order.
	Order []Category `json:"order"`
}
