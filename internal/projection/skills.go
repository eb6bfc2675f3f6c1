package projection

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultSkillCategory is the bucket for skills without a subtitle.
const DefaultSkillCategory = "Technical Skills"

// GroupSkillsByCategory buckets the skills of section by subtitle. Skills
// with no subtitle go to defaultLabel (DefaultSkillCategory when empty).
// Subtitles and titles are trimmed before use, so " Languages " and
// "Languages" share a bucket and a whitespace-only subtitle counts as none.
// Buckets appear in order of first occurrence; untitled items are skipped
// and never open a bucket.
func GroupSkillsByCategory(section *types.ResumeSection, defaultLabel string) types.SkillGroups {
	groups := types.SkillGroups{}
	if section == nil || len(section.Items) == 0 {
		return groups
	}
	if strings.TrimSpace(defaultLabel) == "" {
		defaultLabel = DefaultSkillCategory
	}

	index := make(map[string]int)
	for _, item := range section.Items {
		name := strings.TrimSpace(item.Title)
		if name == "" {
			continue
		}
		key := strings.TrimSpace(item.Subtitle)
		if key == "" {
			key = defaultLabel
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, types.SkillGroup{Category: key})
		}
		groups[i].Skills = append(groups[i].Skills, name)
	}
	return groups
}
