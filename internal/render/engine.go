// Package render turns CV documents into printable HTML. Rendering is pure:
// the document, template id, size tier and export flag go in, markup comes
// out, and nothing is read from ambient state.
package render

import (
	"bytes"
	"embed"
	"io"
	"io/fs"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var templateFS embed.FS

// fsLoader adapts an fs.FS to pongo2's template loader contract
type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Abs(base, name string) string {
	return name
}

func (l fsLoader) Get(path string) (io.Reader, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

var (
	templateSet *pongo2.TemplateSet

	classicTemplate *pongo2.Template
	modernTemplate  *pongo2.Template
	pageTemplate    *pongo2.Template
)

func init() {
	if err := pongo2.RegisterFilter("license_label", filterLicenseLabel); err != nil {
		panic(err)
	}
	if err := pongo2.RegisterFilter("month_year", filterMonthYear); err != nil {
		panic(err)
	}

	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	templateSet = pongo2.NewSet("cv", fsLoader{fsys: sub})

	classicTemplate = pongo2.Must(templateSet.FromFile("classic.html"))
	modernTemplate = pongo2.Must(templateSet.FromFile("modern.html"))
	pageTemplate = pongo2.Must(templateSet.FromFile("page.html"))
}

func filterLicenseLabel(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(LicenseLabel(in.String())), nil
}

func filterMonthYear(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(FormatMonthYear(in.String())), nil
}
