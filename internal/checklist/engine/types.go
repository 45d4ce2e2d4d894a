package engine

// Progress reports completion over the direct children of one parent item.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// AggregateProgress reports completion over a whole set of items, with a
// rounded 0-100 percentage.
type AggregateProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
