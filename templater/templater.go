package templater

import (
	"fmt"
	"maps"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/yuribeats/the-boards/utils"
)

// Templater renders Jinja2-style (pongo2) templates such as the upstream
// source URLs.
type Templater struct{}

// NewTemplater creates a new Templater.
func NewTemplater() *Templater {
	return &Templater{}
}

// Render renders a template string with the provided data using pongo2.
// Output is not HTML-escaped; callers escape values for their context.
func (t *Templater) Render(tmpl string, data map[string]any) (string, error) {
	if data == nil {
		return "", fmt.Errorf("template data is nil")
	}
	ctx := make(pongo2.Context, len(data))
	maps.Copy(ctx, data)
	utils.Debug("Templater.Render: tmpl = %q", tmpl)
	pl, err := pongo2.FromString("{% autoescape off %}" + tmpl + "{% endautoescape %}")
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	out, err := pl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return out, nil
}

// Render applies templating to the given string with the provided data.
func Render(tmpl string, data map[string]any) (string, error) {
	return NewTemplater().Render(tmpl, data)
}
