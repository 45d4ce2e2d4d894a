// Package template loads and serves the statically authored checklist
// trees. Templates come from an optional YAML file; the built-in
// client-meeting checklist is always available as a fallback.
package template

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"remodel-checklist/pkg/checktree"
	"remodel-checklist/pkg/log"
)

// Registry holds the loaded templates. Immutable after construction.
type Registry struct {
	l         log.Logger
	templates map[string]Template
	order     []string
}

// NewRegistry loads templates from the given YAML file path. An empty path
// means built-in templates only. Duplicate item ids inside a template are
// reported but do not reject the template; the uniqueness invariant is
// enforced upstream by the checklist authors.
func NewRegistry(l log.Logger, path string) (*Registry, error) {
	r := &Registry{
		l:         l,
		templates: make(map[string]Template),
	}

	r.add(context.Background(), defaultTemplate())

	if path == "" {
		return r, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read templates file %s: %w", path, err)
	}

	var file templatesFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse templates file %s: %w", path, err)
	}

	ctx := context.Background()
	for _, tpl := range file.Templates {
		if tpl.ID == "" {
			r.l.Warnf(ctx, "Skipping template with empty id in %s", path)
			continue
		}
		r.add(ctx, tpl)
	}

	return r, nil
}

func (r *Registry) add(ctx context.Context, tpl Template) {
	if v := checktree.ValidateUniqueIDs(tpl.Items); !v.IsValid {
		// Advisory only: log and keep the template.
		r.l.Warnf(ctx, "Template %q has duplicate item ids: %v", tpl.ID, v.Duplicates)
	}
	if _, exists := r.templates[tpl.ID]; !exists {
		r.order = append(r.order, tpl.ID)
	}
	r.templates[tpl.ID] = tpl
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (Template, bool) {
	tpl, ok := r.templates[id]
	return tpl, ok
}

// Default returns the built-in client-meeting template (possibly overridden
// by the templates file).
func (r *Registry) Default() Template {
	return r.templates[DefaultTemplateID]
}

// List returns all templates in load order.
func (r *Registry) List() []Template {
	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}
