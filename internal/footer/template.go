package footer

import (
	_ "embed"
	"strings"
	"text/template"
)

// Marker is present in every rendered footer and in no legacy footer shape.
// A document containing it has already been updated.
const Marker = "static-footer"

//go:embed footer.html.tmpl
var footerTemplateSource string

// text/template keeps the HTML comments that html/template would strip; the
// rendered block must be byte-for-byte stable across runs.
var footerTemplate = template.Must(template.New("footer").Option("missingkey=error").Parse(footerTemplateSource))

type footerData struct {
	LogoPath string
}

// Render returns the canonical footer markup referencing the logo at assetPath.
// The output depends on nothing but assetPath.
func Render(assetPath string) string {
	var b strings.Builder
	// Execution cannot fail: the template is parsed at init and only reads LogoPath.
	_ = footerTemplate.Execute(&b, footerData{LogoPath: assetPath})
	return b.String()
}
