package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"vacuum/internal/app"
)

func TestListPrintsCandidates(t *testing.T) {
	var got app.ListParams
	withController(t, &stubController{
		listFunc: func(ctx context.Context, params app.ListParams) (app.View, error) {
			got = params
			return app.View{
				Candidates: []app.Candidate{
					{ID: "a.finder", Name: "Finder", Safe: true},
					{ID: "b.notes", Name: "Notes", Selected: true},
				},
				SelectedCount: 1,
			}, nil
		},
	})
	buf := withOutput(t, cmdList)

	oldSearch, oldAll := listSearch, listAll
	listSearch, listAll = "no", true
	t.Cleanup(func() { listSearch, listAll = oldSearch, oldAll })

	if err := cmdList.RunE(cmdList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got.Filters.Search != "no" || !got.Filters.IncludeSafe {
		t.Fatalf("filters not forwarded: %+v", got)
	}
	want := "[safe] Finder (a.finder)\n[x] Notes (b.notes)\n1 selected\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestListEmpty(t *testing.T) {
	withController(t, &stubController{
		listFunc: func(context.Context, app.ListParams) (app.View, error) {
			return app.View{}, nil
		},
	})
	buf := withOutput(t, cmdList)

	if err := cmdList.RunE(cmdList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if buf.String() != "No apps found\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSelectRejectsMixedArgs(t *testing.T) {
	withController(t, &stubController{})
	oldAll := selectAll
	selectAll = true
	t.Cleanup(func() { selectAll = oldAll })

	if err := cmdSelect.RunE(cmdSelect, []string{"a"}); err == nil {
		t.Fatal("expected error when mixing ids and --all")
	}
}

func TestSelectNone(t *testing.T) {
	var value = true
	withController(t, &stubController{
		selectAllFunc: func(_ context.Context, v bool, _ time.Duration) (int, error) {
			value = v
			return 0, nil
		},
	})
	buf := withOutput(t, cmdSelect)
	oldNone := selectNone
	selectNone = true
	t.Cleanup(func() { selectNone = oldNone })

	if err := cmdSelect.RunE(cmdSelect, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if value || buf.String() != "0 selected\n" {
		t.Fatalf("unexpected result value=%v output=%q", value, buf.String())
	}
}

func TestSelectIDsReportsSkips(t *testing.T) {
	withController(t, &stubController{
		toggleFunc: func(_ context.Context, params app.ToggleParams) ([]app.ToggleEvent, error) {
			return []app.ToggleEvent{
				{ID: "a.finder", Skipped: true, Reason: "safe-listed"},
				{ID: "b.notes", Selected: true},
			}, nil
		},
	})
	buf := withOutput(t, cmdSelect)

	if err := cmdSelect.RunE(cmdSelect, []string{"a.finder", "b.notes"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if buf.String() != "skipped a.finder (safe-listed)\nselected b.notes\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestCleanPrintsMessage(t *testing.T) {
	var got app.CleanParams
	withController(t, &stubController{
		cleanFunc: func(_ context.Context, params app.CleanParams) (app.CleanResult, error) {
			got = params
			return app.CleanResult{Terminated: 2, Message: "Cleaned 2 app(s)"}, nil
		},
	})
	buf := withOutput(t, cmdClean)
	oldAll := cleanAll
	cleanAll = true
	t.Cleanup(func() { cleanAll = oldAll })

	if err := cmdClean.RunE(cmdClean, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if !got.All || got.Timeout != 15*time.Second {
		t.Fatalf("unexpected params %+v", got)
	}
	if buf.String() != "Cleaned 2 app(s)\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSafeToggleAndList(t *testing.T) {
	withController(t, &stubController{
		toggleSafeFunc: func(_ context.Context, id string, _ time.Duration) (bool, error) {
			return id == "a.finder", nil
		},
		safeListFunc: func(context.Context, time.Duration) ([]string, error) {
			return nil, nil
		},
	})
	toggleOut := withOutput(t, cmdSafeToggle)
	if err := cmdSafeToggle.RunE(cmdSafeToggle, []string{"a.finder"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if toggleOut.String() != "a.finder is now safe-listed\n" {
		t.Fatalf("unexpected output %q", toggleOut.String())
	}

	listOut := withOutput(t, cmdSafeList)
	if err := cmdSafeList.RunE(cmdSafeList, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if listOut.String() != "Safe-list is empty\n" {
		t.Fatalf("unexpected output %q", listOut.String())
	}
}

func TestLoginOnReportsFailure(t *testing.T) {
	withController(t, &stubController{
		loginFunc: func(set, enabled bool) (bool, error) {
			return false, nil
		},
	})
	buf := withOutput(t, cmdLogin)

	if err := cmdLogin.RunE(cmdLogin, []string{"on"}); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if !strings.Contains(buf.String(), "Start at login: disabled") || !strings.Contains(buf.String(), "could not be registered") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
