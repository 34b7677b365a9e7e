package html

import (
	"embed"
	"io/fs"
)

var (
	//go:embed templates/*.tpl
	templateFiles embed.FS

	//go:embed assets/srdview.css
	assetFiles embed.FS
)

// StylesheetName is the file name of the default stylesheet in AssetsFS.
const StylesheetName = "srdview.css"

// TemplatesFS returns the built-in templates, rooted so that the record
// template is "templates/record.tpl".
func TemplatesFS() fs.FS { return templateFiles }

// AssetsFS returns the static files served next to rendered pages.
func AssetsFS() fs.FS {
	assets, _ := fs.Sub(assetFiles, "assets")
	return assets
}

func defaultStylesheet() string {
	css, _ := fs.ReadFile(assetFiles, "assets/"+StylesheetName)
	return string(css)
}
