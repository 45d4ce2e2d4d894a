package template

import "remodel-checklist/pkg/checktree"

// Template is a statically authored checklist tree.
type Template struct {
	ID    string         `mapstructure:"id"`
	Name  string         `mapstructure:"name"`
	Items checktree.Tree `mapstructure:"items"`
}

type templatesFile struct {
	Templates []Template `mapstructure:"templates"`
}
