package template

import "remodel-checklist/pkg/checktree"

// DefaultTemplateID is the template used when a session does not name one.
const DefaultTemplateID = "client-meeting"

// defaultTemplate is the canonical client-meeting checklist, used when no
// templates file is configured. Two levels deep by convention.
func defaultTemplate() Template {
	return Template{
		ID:   DefaultTemplateID,
		Name: "Client Meeting Checklist",
		Items: checktree.Tree{
			{
				ID:   "project-scope",
				Text: "Project scope",
				SubItems: []checktree.Item{
					{ID: "scope-rooms", Text: "Which rooms are involved"},
					{ID: "scope-structural", Text: "Structural changes needed"},
					{ID: "scope-priorities", Text: "Must-haves vs. nice-to-haves"},
				},
			},
			{
				ID:   "budget",
				Text: "Budget",
				SubItems: []checktree.Item{
					{ID: "budget-range", Text: "Confirm budget range"},
					{ID: "budget-financing", Text: "Financing options"},
					{ID: "budget-contingency", Text: "Contingency expectations"},
				},
			},
			{
				ID:   "timeline",
				Text: "Timeline",
				SubItems: []checktree.Item{
					{ID: "timeline-start", Text: "Earliest start date"},
					{ID: "timeline-deadline", Text: "Hard deadlines or events"},
				},
			},
			{ID: "site-visit", Text: "Schedule site visit"},
			{ID: "portfolio-review", Text: "Review similar past projects"},
			{ID: "next-steps", Text: "Agree on next steps"},
		},
	}
}
