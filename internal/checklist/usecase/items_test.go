package usecase

import (
	"context"
	"errors"
	"testing"

	"remodel-checklist/internal/checklist"
)

func createSession(t *testing.T, uc *implUseCase) checklist.SessionDetailOutput {
	t.Helper()
	out, err := uc.CreateSession(context.Background(), checklist.CreateSessionInput{})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return out
}

func TestToggleItemCascades(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()
	session := createSession(t, uc)

	// "budget" is a parent in the default template; toggling it checks
	// every direct child.
	out, err := uc.ToggleItem(ctx, checklist.ToggleItemInput{SessionID: session.Session.ID, ItemID: "budget"})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	for _, id := range []string{"budget", "budget-range", "budget-financing", "budget-contingency"} {
		if !out.State.Checked[id] {
			t.Errorf("expected %q checked after parent toggle", id)
		}
	}
	if out.State.Checked["timeline"] {
		t.Errorf("unrelated parent must stay unchecked")
	}
}

func TestToggleItemUnknownIDTolerated(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()
	session := createSession(t, uc)

	out, err := uc.ToggleItem(ctx, checklist.ToggleItemInput{SessionID: session.Session.ID, ItemID: "no-such-item"})
	if err != nil {
		t.Fatalf("unknown item id must not error: %v", err)
	}
	if out.State.Total.Completed != 0 {
		t.Errorf("state must be unchanged, got %d completed", out.State.Total.Completed)
	}
}

func TestToggleItemUnknownSession(t *testing.T) {
	uc := newTestUseCase(nil)

	_, err := uc.ToggleItem(context.Background(), checklist.ToggleItemInput{SessionID: "ghost", ItemID: "budget"})
	if !errors.Is(err, checklist.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestToggleExpandedAndReset(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()
	session := createSession(t, uc)
	id := session.Session.ID

	out, err := uc.ToggleExpanded(ctx, checklist.ToggleItemInput{SessionID: id, ItemID: "budget"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !out.State.Expanded["budget"] {
		t.Errorf("expected budget expanded")
	}

	uc.ToggleItem(ctx, checklist.ToggleItemInput{SessionID: id, ItemID: "site-visit"})

	out, err = uc.ResetItems(ctx, id)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if out.State.Total.Completed != 0 {
		t.Errorf("expected nothing checked after reset")
	}
	for itemID, expanded := range out.State.Expanded {
		if expanded {
			t.Errorf("expected %q collapsed after reset", itemID)
		}
	}
}

func TestSetItemCheckedDirect(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()
	session := createSession(t, uc)

	out, err := uc.SetItemChecked(ctx, checklist.SetCheckedInput{
		SessionID: session.Session.ID,
		ItemID:    "budget",
		Checked:   true,
	})
	if err != nil {
		t.Fatalf("set checked: %v", err)
	}
	if !out.State.Checked["budget"] {
		t.Errorf("expected direct write applied")
	}
	if out.State.Checked["budget-range"] {
		t.Errorf("direct write must not cascade")
	}
}

func TestProgressQueries(t *testing.T) {
	uc := newTestUseCase(nil)
	ctx := context.Background()
	session := createSession(t, uc)
	id := session.Session.ID

	uc.ToggleItem(ctx, checklist.ToggleItemInput{SessionID: id, ItemID: "budget-range"})

	progress, err := uc.Progress(ctx, id)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}

	if progress.Total.Completed != 1 {
		t.Errorf("expected 1 item completed, got %d", progress.Total.Completed)
	}
	if progress.Parents.Completed != 0 {
		t.Errorf("parent must not be complete yet, got %d", progress.Parents.Completed)
	}

	budget, ok := progress.Items["budget"]
	if !ok {
		t.Fatalf("expected per-parent progress entry for budget")
	}
	if budget.Completed != 1 || budget.Total != 3 {
		t.Errorf("expected budget 1/3, got %d/%d", budget.Completed, budget.Total)
	}

	// Leaves never get a per-item entry.
	if _, ok := progress.Items["site-visit"]; ok {
		t.Errorf("leaf items must not appear in per-parent progress")
	}
}
