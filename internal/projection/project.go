package projection

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// Options are the caller conventions that differ between templates.
type Options struct {
	// SkillCategory labels skills that have no subtitle.
	SkillCategory string
	// Contact selects the link shown in the third contact slot.
	Contact ContactVariant
}

// DefaultOptions returns the conventions used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SkillCategory: DefaultSkillCategory,
		Contact:       ContactWithWebsite,
	}
}

// Project builds the full projection of doc. A nil doc yields an empty
// projection where nothing is renderable.
func Project(doc *types.ResumeDocument, opts Options) *types.Projection {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}

	p := &types.Projection{
		Header: types.Header{
			FullName:       doc.PersonalInfo.FullName,
			JobTitle:       doc.PersonalInfo.JobTitle,
			ProfilePicture: doc.PersonalInfo.ProfilePicture,
		},
		Contacts: DeriveContactItems(doc.PersonalInfo, opts.Contact),
	}

	located := make(map[types.Category]*types.ResumeSection, len(types.Categories))
	block := func(category types.Category) (types.Block, *types.ResumeSection) {
		section, found := FindSection(doc.Sections, category)
		b := types.Block{
			Heading:    Heading(section, category),
			Found:      found,
			Renderable: IsSectionRenderable(section),
		}
		if found {
			b.SectionID = section.ID
		}
		return b, section
	}

	summary, summarySection := block(types.CategoryPersonal)
	p.Summary = types.SummaryBlock{
		Block: summary,
		Lines: SplitDescriptionLines(doc.PersonalInfo.Summary),
	}

	experience, section := block(types.CategoryExperience)
	p.Experience = types.ExperienceBlock{Block: experience, Items: experienceItems(section)}
	markLocated(located, types.CategoryExperience, section, experience)

	education, section := block(types.CategoryEducation)
	p.Education = types.EducationBlock{Block: education, Items: educationItems(section)}
	markLocated(located, types.CategoryEducation, section, education)

	skills, section := block(types.CategorySkills)
	p.Skills = types.SkillsBlock{Block: skills, Groups: GroupSkillsByCategory(section, opts.SkillCategory)}
	markLocated(located, types.CategorySkills, section, skills)

	projects, section := block(types.CategoryProjects)
	p.Projects = types.ProjectsBlock{Block: projects, Items: projectItems(section)}
	markLocated(located, types.CategoryProjects, section, projects)

	languages, section := block(types.CategoryLanguages)
	p.Languages = types.LanguagesBlock{Block: languages, Items: languageItems(section)}
	markLocated(located, types.CategoryLanguages, section, languages)

	certifications, section := block(types.CategoryCertifications)
	p.Certifications = types.CertificationsBlock{Block: certifications, Items: certificationItems(section)}
	markLocated(located, types.CategoryCertifications, section, certifications)

	markLocated(located, types.CategoryPersonal, summarySection, summary)
	p.Order = sectionOrder(doc.Sections, located)

	return p
}

func markLocated(located map[types.Category]*types.ResumeSection, category types.Category, section *types.ResumeSection, b types.Block) {
	if b.Renderable {
		located[category] = section
	}
}

func experienceItems(section *types.ResumeSection) []types.ExperienceItem {
	items := []types.ExperienceItem{}
	if section == nil {
		return items
	}
	for i, item := range section.Items {
		items = append(items, types.ExperienceItem{
			Key:     types.ItemKey(item, i),
			Role:    item.Title,
			Company: item.Subtitle,
			Date:    item.Date,
			Bullets: SplitDescriptionLines(item.Description),
		})
	}
	return items
}

func educationItems(section *types.ResumeSection) []types.EducationItem {
	items := []types.EducationItem{}
	if section == nil {
		return items
	}
	for i, item := range section.Items {
		items = append(items, types.EducationItem{
			Key:         types.ItemKey(item, i),
			Degree:      item.Title,
			Institution: item.Subtitle,
			Date:        item.Date,
			Details:     SplitDescriptionLines(item.Description),
		})
	}
	return items
}

func projectItems(section *types.ResumeSection) []types.ProjectItem {
	items := []types.ProjectItem{}
	if section == nil {
		return items
	}
	for i, item := range section.Items {
		items = append(items, types.ProjectItem{
			Key:     types.ItemKey(item, i),
			Name:    item.Title,
			URL:     item.Subtitle,
			Date:    item.Date,
			Bullets: SplitDescriptionLines(item.Description),
		})
	}
	return items
}

func languageItems(section *types.ResumeSection) []types.LanguageItem {
	items := []types.LanguageItem{}
	if section == nil {
		return items
	}
	for i, item := range section.Items {
		items = append(items, types.LanguageItem{
			Key:         types.ItemKey(item, i),
			Language:    item.Title,
			Proficiency: item.Subtitle,
		})
	}
	return items
}

func certificationItems(section *types.ResumeSection) []types.CertificationItem {
	items := []types.CertificationItem{}
	if section == nil {
		return items
	}
	for i, item := range section.Items {
		items = append(items, types.CertificationItem{
			Key:    types.ItemKey(item, i),
			Name:   item.Title,
			Issuer: item.Subtitle,
			Date:   item.Date,
			Notes:  SplitDescriptionLines(item.Description),
		})
	}
	return items
}
