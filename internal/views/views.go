// Package views renders the server-side HTML pages poolers see.
package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var files embed.FS

// Page names.
const (
	PagePicks    = "picks"
	PagePlayoffs = "playoffs"
	PageSuccess  = "success"
	PageError    = "error"
)

var pages = parsePages(PagePicks, PagePlayoffs, PageSuccess, PageError)

func parsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.New(name).ParseFS(files, "templates/layout.html", "templates/"+name+".html"))
	}
	return out
}

// component executes one page inside the shared layout.
func component(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tmpl, ok := pages[name]
		if !ok {
			return fmt.Errorf("views: unknown page %q", name)
		}
		return tmpl.ExecuteTemplate(w, "layout", data)
	})
}

// Success confirms a stored submission.
func Success(message string) templ.Component {
	return component(PageSuccess, struct{ Message string }{Message: message})
}

// Error is the single generic failure page. It never says why.
func Error() templ.Component {
	return component(PageError, nil)
}
