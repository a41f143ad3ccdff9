package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/models"
)

func testData() models.PortfolioData {
	data := models.DefaultPortfolioData()
	data.Social = models.SocialLinks{
		"github":   {URL: "https://github.com/x", Visible: true},
		"linkedin": {URL: "https://linkedin.com/in/x", Visible: false},
		"twitter":  {URL: "", Visible: true},
	}
	data.Projects = []models.Project{
		{ID: 1, Title: "Shown", Visible: true},
		{ID: 2, Title: "Hidden", Visible: false},
	}
	data.Experience = []models.ExperienceItem{
		{ID: 1, Role: "Shown", Visible: true},
		{ID: 2, Role: "Hidden", Visible: false},
	}
	return data
}

func TestProjectFiltersHiddenItems(t *testing.T) {
	view := Project(testData())

	require.Len(t, view.Projects, 1)
	assert.Equal(t, "Shown", view.Projects[0].Title)

	require.Len(t, view.Experience, 1)
	assert.Equal(t, "Shown", view.Experience[0].Role)
}

func TestProjectHidesWholeSections(t *testing.T) {
	data := testData()
	data.SectionVisibility.Projects = false
	data.SectionVisibility.Experience = false

	view := Project(data)

	assert.Empty(t, view.Projects)
	assert.Empty(t, view.Experience)
	assert.Empty(t, view.Education)
	assert.Empty(t, view.Certifications)
	assert.Empty(t, view.Achievements)
}

func TestProjectSocialFiltering(t *testing.T) {
	view := Project(testData())

	// Hidden links and links without a URL are dropped.
	require.Len(t, view.Social, 1)
	assert.Equal(t, "github", view.Social[0].Platform)
	assert.Equal(t, "https://github.com/x", view.Social[0].URL)
}

func TestProjectSocialOrderFollowsPlatformList(t *testing.T) {
	data := testData()
	data.Social = models.SocialLinks{}
	for _, platform := range models.SocialPlatforms {
		data.Social[platform] = models.SocialLink{URL: "https://example.com/" + platform, Visible: true}
	}

	view := Project(data)

	require.Len(t, view.Social, len(models.SocialPlatforms))
	for i, platform := range models.SocialPlatforms {
		assert.Equal(t, platform, view.Social[i].Platform)
	}
}

func TestProjectStatusBadge(t *testing.T) {
	data := testData()
	data.StatusBadge = models.StatusBadge{Enabled: true, Text: "Open to work", Color: "green"}

	view := Project(data)
	require.NotNil(t, view.StatusBadge)
	assert.Equal(t, "Open to work", view.StatusBadge.Text)

	data.StatusBadge.Enabled = false
	assert.Nil(t, Project(data).StatusBadge)
}

func TestProjectFiltersHighlightsAndSkills(t *testing.T) {
	data := testData()
	data.About.Highlights = []models.AboutHighlight{
		{Label: "Shown", Value: "1", Visible: true},
		{Label: "Hidden", Value: "2", Visible: false},
	}
	data.Skills = models.SkillsData{
		Programming: []models.Skill{
			{Name: "Go", Level: 80, Visible: true},
			{Name: "COBOL", Level: 50, Visible: false},
		},
		Other: []models.OtherSkill{
			{Name: "Agile", Visible: true},
			{Name: "Waterfall", Visible: false},
		},
	}

	view := Project(data)

	require.Len(t, view.About.Highlights, 1)
	assert.Equal(t, "Shown", view.About.Highlights[0].Label)

	require.Len(t, view.Skills.Programming, 1)
	assert.Equal(t, "Go", view.Skills.Programming[0].Name)

	require.Len(t, view.Skills.Other, 1)
	assert.Equal(t, "Agile", view.Skills.Other[0].Name)
}

func TestRenderMarkdown(t *testing.T) {
	html := renderMarkdown("**bold** and [link](https://example.com)")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, `<a href="https://example.com">link</a>`)
}
