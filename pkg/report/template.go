package report

import (
	"io"

	gotemplatepkg "github.com/goliatone/go-template"
)

// TemplateRenderer matches the github.com/goliatone/go-template engine
// surface. Callers already running that engine can hand it to WithRenderer
// and skip the built-in pongo2 set entirely.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// WithGoTemplateOptions exists for compatibility with callers configuring the
// go-template engine directly; the built-in renderer ignores it.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) HTMLOption {
	return func(*HTMLRenderer) {}
}
