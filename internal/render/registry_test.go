package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hebrew-cv/cv-api/internal/models"
)

func minimalCV() models.CVData {
	return models.CVData{
		PersonalInfo: models.PersonalInfo{
			FullName: "דנה לוי",
			Email:    "dana@example.com",
		},
	}
}

func fullCV() models.CVData {
	return models.CVData{
		PersonalInfo: models.PersonalInfo{
			FullName: "דנה לוי",
			Email:    "dana@example.com",
			Phone:    "050-1234567",
			Address:  "תל אביב",
			Summary:  "מנהלת פרויקטים עם ניסיון רב.",
		},
		Experience: []models.Experience{
			{
				ID:          "exp-1",
				JobTitle:    "מנהלת פרויקטים",
				Company:     "חברת הייטק",
				Location:    "תל אביב",
				StartDate:   "2020-01",
				EndDate:     "2023-05",
				Current:     true,
				Description: "ניהול צוות פיתוח.",
			},
		},
		Education: []models.Education{
			{
				ID:          "edu-1",
				Degree:      "תואר ראשון במדעי המחשב",
				Institution: "אוניברסיטת תל אביב",
				Location:    "תל אביב",
				StartDate:   "2015-10",
				EndDate:     "2019-06",
				GPA:         "88",
			},
		},
		Skills: []models.Skill{
			{ID: "sk-1", Name: "ניהול פרויקטים", Level: models.SkillExpert},
		},
		Languages: []models.Language{
			{ID: "lang-1", Name: "עברית", Level: models.LanguageNative},
		},
		DrivingLicenses: []models.DrivingLicense{
			{ID: "lic-1", Category: "B", IssueYear: "2015"},
			{ID: "lic-2", Category: "Z9"},
		},
	}
}

func TestResolveTemplateID(t *testing.T) {
	assert.Equal(t, TemplateClassic, ResolveTemplateID("classic"))
	assert.Equal(t, TemplateModern, ResolveTemplateID("modern"))
	assert.Equal(t, TemplateClassic, ResolveTemplateID(""))
	assert.Equal(t, TemplateClassic, ResolveTemplateID("fancy"))
	assert.Equal(t, TemplateClassic, ResolveTemplateID("CLASSIC"))
}

func TestDocumentMinimal(t *testing.T) {
	for _, templateID := range []string{TemplateClassic, TemplateModern} {
		t.Run(templateID, func(t *testing.T) {
			html, err := Document(minimalCV(), templateID, Options{Tier: TierWide})
			require.NoError(t, err)

			assert.Contains(t, html, "דנה לוי")
			assert.Contains(t, html, "dana@example.com")

			// Empty sections never emit their headers
			assert.NotContains(t, html, "ניסיון תעסוקתי")
			assert.NotContains(t, html, "השכלה")
			assert.NotContains(t, html, "מיומנויות")
			assert.NotContains(t, html, "שפות")
			assert.NotContains(t, html, "רישיונות נהיגה")
			assert.NotContains(t, html, "שירות צבאי")
			assert.NotContains(t, html, "שירות לאומי")
			assert.NotContains(t, html, "תקציר מקצועי")
		})
	}
}

func TestDocumentFull(t *testing.T) {
	for _, templateID := range []string{TemplateClassic, TemplateModern} {
		t.Run(templateID, func(t *testing.T) {
			html, err := Document(fullCV(), templateID, Options{Tier: TierWide})
			require.NoError(t, err)

			assert.Contains(t, html, "תקציר מקצועי")
			assert.Contains(t, html, "ניסיון תעסוקתי")
			assert.Contains(t, html, "השכלה")
			assert.Contains(t, html, "מיומנויות")
			assert.Contains(t, html, "שפות")
			assert.Contains(t, html, "רישיונות נהיגה")

			assert.Contains(t, html, "מנהלת פרויקטים")
			assert.Contains(t, html, "ציון: 88")
			assert.Contains(t, html, "שנת הוצאה: 2015")
		})
	}
}

func TestDocumentCurrentEntryHidesEndDate(t *testing.T) {
	html, err := Document(fullCV(), TemplateClassic, Options{Tier: TierWide})
	require.NoError(t, err)

	assert.Contains(t, html, "ינואר 2020 - נוכחי")
	assert.NotContains(t, html, "מאי 2023")
}

func TestDocumentLicenseLabels(t *testing.T) {
	html, err := Document(fullCV(), TemplateClassic, Options{Tier: TierWide})
	require.NoError(t, err)

	// Known category resolves to the descriptive label
	assert.Contains(t, html, "B - רכב פרטי עד 3.5 טון")
	// Unknown category renders verbatim
	assert.Contains(t, html, "Z9")
}

func TestDocumentUnknownTemplateFallsBackToClassic(t *testing.T) {
	fallback, err := Document(fullCV(), "no-such-template", Options{Tier: TierWide})
	require.NoError(t, err)

	classic, err := Document(fullCV(), TemplateClassic, Options{Tier: TierWide})
	require.NoError(t, err)

	assert.Equal(t, classic, fallback)
}

func TestDocumentEscapesMarkup(t *testing.T) {
	data := minimalCV()
	data.PersonalInfo.FullName = "<script>alert(1)</script>"

	html, err := Document(data, TemplateClassic, Options{Tier: TierWide})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
}

func TestDocumentMalformedDateRendersVerbatim(t *testing.T) {
	data := fullCV()
	data.Experience[0].Current = false
	data.Experience[0].StartDate = "בקרוב"
	data.Experience[0].EndDate = "2023-05"

	html, err := Document(data, TemplateClassic, Options{Tier: TierWide})
	require.NoError(t, err)

	assert.Contains(t, html, "בקרוב - מאי 2023")
}

func TestDocumentDoesNotMutateInput(t *testing.T) {
	data := minimalCV()
	_, err := Document(data, TemplateClassic, Options{Tier: TierWide})
	require.NoError(t, err)

	assert.Nil(t, data.Experience)
	assert.Nil(t, data.Skills)
}

func TestDocumentTierSizing(t *testing.T) {
	wide, err := Document(fullCV(), TemplateClassic, Options{Tier: TierWide})
	require.NoError(t, err)
	narrow, err := Document(fullCV(), TemplateClassic, Options{Tier: TierNarrow})
	require.NoError(t, err)

	assert.Contains(t, wide, "font-size: 14px")
	assert.Contains(t, narrow, "font-size: 11px")
	assert.NotEqual(t, wide, narrow)
}

func TestPageChrome(t *testing.T) {
	t.Run("interactive page carries site chrome", func(t *testing.T) {
		page, err := Page(fullCV(), TemplateClassic, Options{Tier: TierWide})
		require.NoError(t, err)

		assert.Contains(t, page, "<!DOCTYPE html>")
		assert.Contains(t, page, "קורות חיים")
		assert.Contains(t, page, "לוח הבקרה")
		assert.Contains(t, page, "כל הזכויות שמורות")
		assert.Contains(t, page, "דנה לוי")
	})

	t.Run("export mode strips site chrome", func(t *testing.T) {
		page, err := Page(fullCV(), TemplateClassic, Options{Tier: TierWide, ExportMode: true})
		require.NoError(t, err)

		assert.Contains(t, page, "<!DOCTYPE html>")
		assert.Contains(t, page, "דנה לוי")
		assert.NotContains(t, page, "לוח הבקרה")
		assert.NotContains(t, page, "כל הזכויות שמורות")
	})
}

func TestPageTitle(t *testing.T) {
	page, err := Page(fullCV(), TemplateModern, Options{Tier: TierWide, ExportMode: true})
	require.NoError(t, err)
	assert.Contains(t, page, "<title>דנה לוי</title>")

	untitled, err := Page(models.CVData{}, TemplateClassic, Options{Tier: TierWide, ExportMode: true})
	require.NoError(t, err)
	assert.Contains(t, untitled, "<title>קורות חיים ללא שם</title>")
}
