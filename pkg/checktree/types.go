package checktree

// Item is a single checklist entry. An item with a non-empty SubItems slice
// is a parent; the canonical trees are two levels deep but nothing here
// depends on that.
type Item struct {
	ID       string `json:"id"        mapstructure:"id"        yaml:"id"`
	Text     string `json:"text"      mapstructure:"text"      yaml:"text"`
	SubItems []Item `json:"sub_items,omitempty" mapstructure:"sub_items" yaml:"sub_items,omitempty"`
}

// Tree is an ordered sequence of top-level items.
type Tree []Item

// Validation is the result of a unique-id check over a tree.
type Validation struct {
	IsValid    bool
	Duplicates []string
}
