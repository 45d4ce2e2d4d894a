package usecase

import (
	"context"

	"remodel-checklist/internal/checklist"
)

// ListTemplates returns the configured checklist templates.
func (uc *implUseCase) ListTemplates(ctx context.Context) (checklist.ListTemplatesOutput, error) {
	templates := uc.registry.List()

	out := checklist.ListTemplatesOutput{Templates: make([]checklist.TemplateOutput, 0, len(templates))}
	for _, tpl := range templates {
		out.Templates = append(out.Templates, checklist.TemplateOutput{
			ID:    tpl.ID,
			Name:  tpl.Name,
			Items: tpl.Items,
		})
	}
	return out, nil
}
