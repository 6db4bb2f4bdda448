package webserver

import (
	"io"
	"path/filepath"

	"github.com/cbroglie/mustache"
	"github.com/labstack/echo/v4"
)

// MustacheRenderer renders storefront pages from .mustache files. Templates
// are re-parsed per render, consistent with the rest of the system reading
// the filesystem fresh on every request.
type MustacheRenderer struct {
	dir      string
	partials mustache.PartialProvider
}

func NewMustacheRenderer(dir string) *MustacheRenderer {
	return &MustacheRenderer{
		dir: dir,
		partials: &mustache.FileProvider{
			Paths:      []string{dir},
			Extensions: []string{".mustache"},
		},
	}
}

var _ echo.Renderer = (*MustacheRenderer)(nil)

func (r *MustacheRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, err := mustache.ParseFilePartials(filepath.Join(r.dir, name+".mustache"), r.partials)
	if err != nil {
		return err
	}
	return tmpl.FRender(w, data)
}
