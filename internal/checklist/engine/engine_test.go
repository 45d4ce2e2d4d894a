package engine_test

import (
	"testing"

	"remodel-checklist/internal/checklist/engine"
	"remodel-checklist/pkg/checktree"
)

// One parent with two children plus one standalone leaf, 4 items total.
func testTree() checktree.Tree {
	return checktree.Tree{
		{
			ID:   "p",
			Text: "Parent",
			SubItems: []checktree.Item{
				{ID: "c1", Text: "Child 1"},
				{ID: "c2", Text: "Child 2"},
			},
		},
		{ID: "solo", Text: "Standalone"},
	}
}

func TestToggleItemCascadeDown(t *testing.T) {
	e := engine.New(testTree())

	e.ToggleItem("p")
	for _, id := range []string{"p", "c1", "c2"} {
		if !e.IsItemChecked(id) {
			t.Errorf("after checking parent, expected %q checked", id)
		}
	}

	e.ToggleItem("p")
	for _, id := range []string{"p", "c1", "c2"} {
		if e.IsItemChecked(id) {
			t.Errorf("after unchecking parent, expected %q unchecked", id)
		}
	}
}

func TestToggleItemCascadeUp(t *testing.T) {
	e := engine.New(testTree())

	e.ToggleItem("c1")
	if e.IsItemChecked("p") {
		t.Errorf("parent should stay unchecked while a child is pending")
	}

	e.ToggleItem("c2")
	if !e.IsItemChecked("p") {
		t.Errorf("parent should auto-check once every child is checked")
	}

	// Un-checking any child pulls the parent back down.
	e.ToggleItem("c1")
	if e.IsItemChecked("p") {
		t.Errorf("parent should auto-uncheck when a child is unchecked")
	}
}

func TestToggleItemStandaloneLeaf(t *testing.T) {
	e := engine.New(testTree())

	e.ToggleItem("solo")
	if !e.IsItemChecked("solo") {
		t.Errorf("expected standalone leaf checked")
	}
	if e.IsItemChecked("p") || e.IsItemChecked("c1") {
		t.Errorf("standalone toggle must not touch other items")
	}
}

func TestToggleExpanded(t *testing.T) {
	e := engine.New(testTree())

	if e.IsItemExpanded("p") {
		t.Errorf("parents default to collapsed")
	}

	e.ToggleExpanded("p")
	if !e.IsItemExpanded("p") {
		t.Errorf("expected parent expanded after toggle")
	}

	// Leaves cannot be expanded.
	e.ToggleExpanded("solo")
	if e.IsItemExpanded("solo") {
		t.Errorf("leaf must never report expanded")
	}
}

func TestSetItemCheckedNoCascade(t *testing.T) {
	e := engine.New(testTree())

	e.SetItemChecked("p", true)
	if !e.IsItemChecked("p") {
		t.Errorf("expected direct write to take effect")
	}
	if e.IsItemChecked("c1") || e.IsItemChecked("c2") {
		t.Errorf("direct write must not cascade to children")
	}

	e.SetItemChecked("ghost", true)
	if e.IsItemChecked("ghost") {
		t.Errorf("unknown id must stay a no-op")
	}
}

func TestReset(t *testing.T) {
	e := engine.New(testTree())

	e.ToggleItem("p")
	e.ToggleItem("solo")
	e.ToggleExpanded("p")
	e.Reset()

	total := e.TotalProgress()
	if total.Completed != 0 || total.Total != 4 {
		t.Errorf("after reset expected 0/4, got %d/%d", total.Completed, total.Total)
	}
	if e.IsItemExpanded("p") {
		t.Errorf("after reset every parent must be collapsed")
	}
}

func TestNotFoundTolerance(t *testing.T) {
	e := engine.New(testTree())
	before := e.TotalProgress()

	e.ToggleItem("nonexistent-id")
	e.ToggleExpanded("nonexistent-id")

	if e.IsItemChecked("nonexistent-id") {
		t.Errorf("unknown id must read as unchecked")
	}
	if p := e.ItemProgress("nonexistent-id"); p.Completed != 0 || p.Total != 0 {
		t.Errorf("unknown id must report zero progress, got %+v", p)
	}
	if after := e.TotalProgress(); after != before {
		t.Errorf("unknown-id operations must not change state: %+v != %+v", after, before)
	}
}

func TestProgressConsistency(t *testing.T) {
	e := engine.New(testTree())

	e.ToggleItem("c1")

	total := e.TotalProgress()
	if total.Completed != 1 || total.Total != 4 || total.Percentage != 25 {
		t.Errorf("total progress: expected 1/4 (25%%), got %d/%d (%d%%)",
			total.Completed, total.Total, total.Percentage)
	}

	parents := e.ParentProgress()
	if parents.Completed != 0 || parents.Total != 1 || parents.Percentage != 0 {
		t.Errorf("parent progress: expected 0/1 (0%%), got %d/%d (%d%%)",
			parents.Completed, parents.Total, parents.Percentage)
	}

	item := e.ItemProgress("p")
	if item.Completed != 1 || item.Total != 2 {
		t.Errorf("item progress: expected 1/2, got %d/%d", item.Completed, item.Total)
	}
}

func TestItemProgressLeaf(t *testing.T) {
	e := engine.New(testTree())
	if p := e.ItemProgress("solo"); p.Completed != 0 || p.Total != 0 {
		t.Errorf("leaf must report zero item progress, got %+v", p)
	}
}

func TestEmptyTreeProgress(t *testing.T) {
	e := engine.New(nil)
	total := e.TotalProgress()
	if total.Total != 0 || total.Percentage != 0 {
		t.Errorf("empty tree: expected zero totals, got %+v", total)
	}
}

func TestSeededState(t *testing.T) {
	e := engine.New(testTree(),
		engine.WithChecked(map[string]bool{"c1": true, "ghost": true}),
		engine.WithExpanded(map[string]bool{"p": true, "solo": true}),
	)

	if !e.IsItemChecked("c1") {
		t.Errorf("expected seeded checked state for c1")
	}
	if e.IsItemChecked("ghost") {
		t.Errorf("seed entries for unknown ids must be dropped")
	}
	if !e.IsItemExpanded("p") {
		t.Errorf("expected seeded expanded state for p")
	}
	if e.IsItemExpanded("solo") {
		t.Errorf("seed entries for non-parents must be dropped")
	}
}

func TestStateCopies(t *testing.T) {
	e := engine.New(testTree())
	checked := e.CheckedStates()
	checked["p"] = true

	if e.IsItemChecked("p") {
		t.Errorf("mutating a returned state copy must not affect the engine")
	}
}
