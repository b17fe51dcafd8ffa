package report

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formvalidate/pkg/validation"
)

//go:embed templates/*.tpl
var builtinTemplates embed.FS

const reportTemplateName = "templates/report.html.tpl"

// HTMLRenderer renders validation summaries as HTML fragments suitable for
// embedding above a form. Output is deterministic: fields sort by name and
// theme CSS vars sort by property.
type HTMLRenderer struct {
	templates fs.FS
	renderer  TemplateRenderer
	selector  theme.ThemeSelector
	themeName string
	variant   string

	set *pongo2.TemplateSet
}

// HTMLOption configures an HTMLRenderer before construction completes.
type HTMLOption func(*HTMLRenderer)

// WithTemplates overrides the embedded template set. The filesystem must
// contain templates/report.html.tpl.
func WithTemplates(fsys fs.FS) HTMLOption {
	return func(r *HTMLRenderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// WithRenderer swaps the pongo2 set for a caller-supplied template engine
// implementing the go-template contract.
func WithRenderer(renderer TemplateRenderer) HTMLOption {
	return func(r *HTMLRenderer) {
		r.renderer = renderer
	}
}

// WithThemeSelector resolves the named theme/variant through a go-theme
// selector and exposes its tokens to the template as CSS custom properties.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) HTMLOption {
	return func(r *HTMLRenderer) {
		r.selector = selector
		r.themeName = name
		r.variant = variant
	}
}

// NewHTML constructs an HTML renderer backed by the embedded template unless
// overridden.
func NewHTML(options ...HTMLOption) (*HTMLRenderer, error) {
	r := &HTMLRenderer{templates: builtinTemplates}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.renderer == nil {
		r.set = pongo2.NewSet("report", pongo2.NewFSLoader(r.templates))
	}
	return r, nil
}

// Render produces the HTML fragment for a summary.
func (r *HTMLRenderer) Render(summary Summary) ([]byte, error) {
	resolved, err := resolveTheme(r.selector, r.themeName, r.variant)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"summary": summaryContext(summary),
		"theme": map[string]any{
			"name":       resolved.Name,
			"variant":    resolved.Variant,
			"style":      cssVarsStyle(resolved.CSSVars),
			"stylesheet": resolved.Stylesheet,
		},
	}

	if r.renderer != nil {
		rendered, err := r.renderer.RenderTemplate(reportTemplateName, data)
		if err != nil {
			return nil, fmt.Errorf("report: render template: %w", err)
		}
		return []byte(rendered), nil
	}

	tpl, err := r.set.FromFile(reportTemplateName)
	if err != nil {
		return nil, fmt.Errorf("report: load template: %w", err)
	}
	out, err := tpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return nil, fmt.Errorf("report: execute template: %w", err)
	}
	return out, nil
}

// RenderState is a convenience wrapper building the summary first.
func (r *HTMLRenderer) RenderState(state validation.FormState) ([]byte, error) {
	return r.Render(NewSummary(state))
}

func summaryContext(summary Summary) map[string]any {
	fields := make([]map[string]any, 0, len(summary.Fields))
	for _, field := range summary.Fields {
		fields = append(fields, map[string]any{
			"name":    field.Name,
			"message": field.Message,
			"type":    string(field.Type),
		})
	}
	return map[string]any{
		"valid":       summary.Valid,
		"error_count": summary.ErrorCount,
		"fields":      fields,
		"form":        summary.Form,
	}
}
