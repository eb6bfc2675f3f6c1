package projection

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FullName: "Ada Lovelace",
			JobTitle: "Engineer",
			Summary:  "• Builds analytical engines\n• Writes programs",
			Phone:    "555-0100",
			Email:    "ada@example.com",
			LinkedIn: "linkedin.com/in/ada",
			Location: "London",
		},
		Sections: []types.ResumeSection{
			{ID: "skills", Type: "skills", Items: []types.ResumeItem{
				{Title: "Go", Subtitle: "Languages"},
				{Title: "SQL"},
			}},
			{ID: "summary", Type: "personal", Title: "Profile"},
			{ID: "exp", Type: "experience", Title: "Work", Items: []types.ResumeItem{
				{ID: "job1", Title: "Engineer", Subtitle: "Analytical Co", Date: "1842 - 1843", Description: "- Wrote notes\n- Designed loops"},
				{Title: "Intern", Subtitle: "Babbage Ltd"},
			}},
			{ID: "hobbies", Type: "hobbies", Items: []types.ResumeItem{{Title: "Poetry"}}},
			{ID: "edu", Type: "education", Items: []types.ResumeItem{}},
			{ID: "langs", Type: "languages", Items: []types.ResumeItem{{Title: "French", Subtitle: "Fluent"}}},
			{ID: "certs", Type: "certifications", Title: "Awards"},
			{ID: "proj", Type: "projects", Items: []types.ResumeItem{{Title: "Engine", Subtitle: "https://example.com", Description: "* Gears"}}},
		},
	}
}

func TestProject_Sample(t *testing.T) {
	p := Project(sampleDocument(), Options{SkillCategory: "Technical", Contact: ContactWithLinkedIn})

	assert.Equal(t, "Ada Lovelace", p.Header.FullName)
	assert.Equal(t, []types.ContactItem{
		{Kind: types.ContactPhone, Value: "555-0100"},
		{Kind: types.ContactEmail, Value: "ada@example.com"},
		{Kind: types.ContactLinkedIn, Value: "linkedin.com/in/ada"},
		{Kind: types.ContactLocation, Value: "London"},
	}, p.Contacts)

	assert.Equal(t, []string{"Builds analytical engines", "Writes programs"}, p.Summary.Lines)
	assert.Equal(t, "Profile", p.Summary.Heading)
	assert.True(t, p.Summary.Renderable)

	assert.Equal(t, "Work", p.Experience.Heading)
	require.Len(t, p.Experience.Items, 2)
	assert.Equal(t, "job1", p.Experience.Items[0].Key)
	assert.Equal(t, "Analytical Co", p.Experience.Items[0].Company)
	assert.Equal(t, []string{"Wrote notes", "Designed loops"}, p.Experience.Items[0].Bullets)
	assert.Equal(t, "1", p.Experience.Items[1].Key)
	assert.Empty(t, p.Experience.Items[1].Bullets)

	assert.True(t, p.Education.Found)
	assert.False(t, p.Education.Renderable)

	assert.Equal(t, []string{"Languages", "Technical"}, p.Skills.Groups.Labels())
	assert.Equal(t, "French", p.Languages.Items[0].Language)
	assert.Equal(t, "Fluent", p.Languages.Items[0].Proficiency)
	assert.Equal(t, "https://example.com", p.Projects.Items[0].URL)
	assert.Equal(t, []string{"Gears"}, p.Projects.Items[0].Bullets)

	assert.Equal(t, "Awards", p.Certifications.Heading)
	assert.True(t, p.Certifications.Renderable)
	assert.Empty(t, p.Certifications.Items)

	assert.Equal(t, []types.Category{
		types.CategorySkills,
		types.CategoryPersonal,
		types.CategoryExperience,
		types.CategoryLanguages,
		types.CategoryCertifications,
		types.CategoryProjects,
	}, p.Order)
}

func TestProject_SummaryWithoutSection(t *testing.T) {
	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Summary: "Short bio"},
		Sections: []types.ResumeSection{
			{ID: "exp", Type: "experience", Items: []types.ResumeItem{{Title: "Dev"}}},
		},
	}

	p := Project(doc, DefaultOptions())

	assert.False(t, p.Summary.Found)
	assert.False(t, p.Summary.Renderable)
	assert.Equal(t, []string{"Short bio"}, p.Summary.Lines)
	assert.Equal(t, []types.Category{types.CategoryExperience}, p.Order)
}

func TestProject_SummarySectionWithoutText(t *testing.T) {
	doc := &types.ResumeDocument{
		Sections: []types.ResumeSection{{ID: "summary", Type: "other", Title: "About"}},
	}

	p := Project(doc, DefaultOptions())

	assert.True(t, p.Summary.Found)
	assert.Equal(t, "About", p.Summary.Heading)
	assert.True(t, p.Summary.Renderable)
	assert.Empty(t, p.Summary.Lines)
	assert.Equal(t, []types.Category{types.CategoryPersonal}, p.Order)
}

func TestProject_SummaryMatchesSectionPredicate(t *testing.T) {
	tests := []struct {
		name     string
		sections []types.ResumeSection
	}{
		{name: "titled personal section without items", sections: []types.ResumeSection{{ID: "summary", Type: "personal", Title: "About Me", Items: []types.ResumeItem{}}}},
		{name: "untitled personal section", sections: []types.ResumeSection{{ID: "p", Type: "personal"}}},
		{name: "no personal section", sections: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &types.ResumeDocument{
				PersonalInfo: types.PersonalInfo{Summary: "Short bio"},
				Sections:     tt.sections,
			}
			section, _ := FindSection(doc.Sections, types.CategoryPersonal)

			p := Project(doc, DefaultOptions())

			assert.Equal(t, IsSectionRenderable(section), p.Summary.Renderable)
			assert.Equal(t, p.Summary.Renderable, len(p.Order) == 1)
		})
	}
}

func TestProject_NilDocument(t *testing.T) {
	p := Project(nil, DefaultOptions())

	require.NotNil(t, p)
	assert.Empty(t, p.Contacts)
	assert.Empty(t, p.Order)
	assert.False(t, p.Experience.Found)
	assert.Equal(t, "PROFESSIONAL EXPERIENCE", p.Experience.Heading)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	doc := sampleDocument()
	before, err := json.Marshal(doc)
	require.NoError(t, err)

	_ = Project(doc, DefaultOptions())

	after, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestProject_Deterministic(t *testing.T) {
	doc := sampleDocument()
	first, err := json.Marshal(Project(doc, DefaultOptions()))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := json.Marshal(Project(doc, DefaultOptions()))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestProject_ConcurrentCallers(t *testing.T) {
	doc := sampleDocument()
	want := Project(doc, DefaultOptions())

	var wg sync.WaitGroup
	results := make([]*types.Projection, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Project(doc, DefaultOptions())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestProject_EmptySlicesMarshalAsArrays(t *testing.T) {
	data, err := json.Marshal(Project(&types.ResumeDocument{}, DefaultOptions()))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"contacts":[]`)
	assert.Contains(t, string(data), `"groups":[]`)
	assert.Contains(t, string(data), `"order":[]`)
}
