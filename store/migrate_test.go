package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/models"
)

func TestMigrateEmptyDocument(t *testing.T) {
	data, err := Migrate([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultPortfolioData(), data)
}

func TestMigrateInvalidJSON(t *testing.T) {
	data, err := Migrate([]byte(`not json`))
	assert.Error(t, err)

	// The defaults come back so the caller always has a usable document.
	assert.Equal(t, models.DefaultPortfolioData(), data)
}

func TestMigrateSocialBareStrings(t *testing.T) {
	data, err := Migrate([]byte(`{
		"social": {
			"github": "https://github.com/old",
			"linkedin": "https://linkedin.com/in/old"
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, models.SocialLink{URL: "https://github.com/old", Visible: true}, data.Social["github"])
	assert.Equal(t, models.SocialLink{URL: "https://linkedin.com/in/old", Visible: true}, data.Social["linkedin"])
}

func TestMigrateSocialObjectWithoutVisible(t *testing.T) {
	// An object link without a visible flag defaults to visible, even for
	// platforms whose default entry is hidden.
	data, err := Migrate([]byte(`{
		"social": {
			"facebook": {"url": "https://facebook.com/old"}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, models.SocialLink{URL: "https://facebook.com/old", Visible: true}, data.Social["facebook"])
}

func TestMigrateSocialExplicitFalseSurvives(t *testing.T) {
	data, err := Migrate([]byte(`{
		"social": {
			"github": {"url": "https://github.com/old", "visible": false}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, models.SocialLink{URL: "https://github.com/old", Visible: false}, data.Social["github"])
}

func TestMigrateSocialFillsMissingPlatforms(t *testing.T) {
	data, err := Migrate([]byte(`{
		"social": {"github": "https://github.com/old"}
	}`))
	require.NoError(t, err)

	def := models.DefaultPortfolioData()
	for _, platform := range models.SocialPlatforms {
		_, ok := data.Social[platform]
		assert.True(t, ok, "platform %s missing after migration", platform)
	}
	assert.Equal(t, def.Social["dribbble"], data.Social["dribbble"])
}

func TestMigrateSkillsBackfillsVisible(t *testing.T) {
	data, err := Migrate([]byte(`{
		"skills": {
			"programming": [
				{"name": "Go", "level": 80},
				{"name": "Python", "level": 90, "visible": false}
			],
			"other": ["Agile", {"name": "Scrum", "visible": false}]
		}
	}`))
	require.NoError(t, err)

	require.Len(t, data.Skills.Programming, 2)
	assert.Equal(t, models.Skill{Name: "Go", Level: 80, Visible: true}, data.Skills.Programming[0])
	assert.Equal(t, models.Skill{Name: "Python", Level: 90, Visible: false}, data.Skills.Programming[1])

	require.Len(t, data.Skills.Other, 2)
	assert.Equal(t, models.OtherSkill{Name: "Agile", Visible: true}, data.Skills.Other[0])
	assert.Equal(t, models.OtherSkill{Name: "Scrum", Visible: false}, data.Skills.Other[1])
}

func TestMigrateAboutHighlights(t *testing.T) {
	data, err := Migrate([]byte(`{
		"about": {
			"description": "hi",
			"highlights": [
				{"label": "Projects", "value": "10"},
				{"label": "Awards", "value": "2", "visible": false}
			]
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "hi", data.About.Description)
	require.Len(t, data.About.Highlights, 2)
	assert.True(t, data.About.Highlights[0].Visible)
	assert.False(t, data.About.Highlights[1].Visible)
}

func TestMigrateAboutHighlightsMissingGetDefaults(t *testing.T) {
	data, err := Migrate([]byte(`{"about": {"description": "hi"}}`))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultPortfolioData().About.Highlights, data.About.Highlights)
}

func TestMigrateAboutEmptiedHighlightsStayEmpty(t *testing.T) {
	// An explicitly empty list means the admin deleted every highlight; the
	// defaults must not come back.
	data, err := Migrate([]byte(`{"about": {"description": "hi", "highlights": []}}`))
	require.NoError(t, err)

	assert.Empty(t, data.About.Highlights)
}

func TestMigrateItemVisibility(t *testing.T) {
	data, err := Migrate([]byte(`{
		"projects": [
			{"id": 1, "title": "One"},
			{"id": 2, "title": "Two", "visible": false}
		],
		"certifications": [{"name": "Cert"}]
	}`))
	require.NoError(t, err)

	require.Len(t, data.Projects, 2)
	assert.True(t, data.Projects[0].Visible)
	assert.False(t, data.Projects[1].Visible)

	require.Len(t, data.Certifications, 1)
	assert.True(t, data.Certifications[0].Visible)
}

func TestMigrateNullFieldKeepsDefault(t *testing.T) {
	data, err := Migrate([]byte(`{"personal": {"name": null, "title": "Engineer"}}`))
	require.NoError(t, err)

	def := models.DefaultPortfolioData()
	assert.Equal(t, def.Personal.Name, data.Personal.Name)
	assert.Equal(t, "Engineer", data.Personal.Title)
}

func TestMigrateMissingSectionsFilledFromDefaults(t *testing.T) {
	data, err := Migrate([]byte(`{"personal": {"name": "Someone"}}`))
	require.NoError(t, err)

	def := models.DefaultPortfolioData()
	assert.Equal(t, "Someone", data.Personal.Name)
	assert.Equal(t, def.Personal.Email, data.Personal.Email)
	assert.Equal(t, def.StatusBadge, data.StatusBadge)
	assert.Equal(t, def.SectionVisibility, data.SectionVisibility)
	assert.Equal(t, def.Projects, data.Projects)
}

func TestMigrateIdempotent(t *testing.T) {
	once, err := Migrate([]byte(`{
		"social": {"github": "https://github.com/old"},
		"skills": {"other": ["Agile"]},
		"projects": [{"id": 1, "title": "One"}]
	}`))
	require.NoError(t, err)

	raw, err := json.Marshal(once)
	require.NoError(t, err)

	twice, err := Migrate(raw)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}
