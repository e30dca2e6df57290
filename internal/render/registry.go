package render

import (
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/hebrew-cv/cv-api/internal/models"
)

// Known template identifiers
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
)

// DefaultTemplateID is used when no template was chosen for a document
const DefaultTemplateID = TemplateClassic

// Options carries the per-request rendering knobs
type Options struct {
	Tier       Tier
	ExportMode bool
}

// ResolveTemplateID maps a stored template id to a renderable one. Unknown or
// empty ids fall back to the classic template without complaint, so documents
// saved with a template that no longer exists keep rendering.
func ResolveTemplateID(id string) string {
	switch id {
	case TemplateClassic, TemplateModern:
		return id
	default:
		return DefaultTemplateID
	}
}

// Document renders the CV itself, without any page chrome, using the
// template selected by id. The caller's data is not modified.
func Document(data models.CVData, templateID string, opts Options) (string, error) {
	doc := data
	doc.Normalize()

	tmpl := classicTemplate
	if ResolveTemplateID(templateID) == TemplateModern {
		tmpl = modernTemplate
	}

	return tmpl.Execute(documentContext(&doc, opts))
}

// Page renders the full HTML page around a CV document. In export mode the
// site header and footer are omitted so the converted PDF contains only the
// document itself.
func Page(data models.CVData, templateID string, opts Options) (string, error) {
	body, err := Document(data, templateID, opts)
	if err != nil {
		return "", err
	}

	return pageTemplate.Execute(pongo2.Context{
		"title":       data.Title(),
		"body":        body,
		"export_mode": opts.ExportMode,
		"year":        time.Now().Year(),
	})
}

func documentContext(doc *models.CVData, opts Options) pongo2.Context {
	return pongo2.Context{
		"cv":          doc,
		"personal":    doc.PersonalInfo,
		"font":        Fonts(opts.Tier),
		"tier":        string(opts.Tier),
		"export_mode": opts.ExportMode,
		"date_range":  DateRange,
	}
}
