package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"vacuum/api/vacuumv1"
)

func TestAppListDaemonNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)
	app := New(Options{})
	_, err := app.List(context.Background(), ListParams{Timeout: time.Second})
	if err == nil || err.Error() != "daemon is not running" {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}

func TestAppListDialError(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (vacuumv1.VacuumClient, io.Closer, error) {
		return nil, nil, errors.New("dial failed")
	})
	app := New(Options{})
	_, err := app.List(context.Background(), ListParams{Timeout: time.Second})
	if err == nil || err.Error() != "connect to daemon: dial failed" {
		t.Fatalf("expected dial error, got %v", err)
	}
}

func TestAppListSuccess(t *testing.T) {
	var captured *vacuumv1.ListRequest
	stubConn(t, func(method string, args, reply interface{}) error {
		req, ok := args.(*vacuumv1.ListRequest)
		if !ok {
			t.Fatalf("unexpected args type %T", args)
		}
		captured = req
		resp := reply.(*vacuumv1.ListResponse)
		resp.Candidates = []*vacuumv1.Candidate{
			{Id: "a.finder", Name: "Finder", Safe: true},
			{Id: "b.notes", Name: "Notes", Selected: true},
		}
		resp.SelectedCount = 1
		resp.AllSelected = true
		resp.Total = 2
		return nil
	})

	app := New(Options{})
	view, err := app.List(context.Background(), ListParams{
		Timeout: 750 * time.Millisecond,
		Filters: ListFilters{Search: "  no  ", IncludeSafe: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Candidates) != 2 || view.Candidates[1].ID != "b.notes" || !view.Candidates[1].Selected {
		t.Fatalf("unexpected candidates: %+v", view.Candidates)
	}
	if !view.Candidates[0].Safe || view.SelectedCount != 1 || !view.AllSelected || view.Total != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if captured == nil {
		t.Fatal("expected captured request")
	}
	if captured.Filter != "  no  " || !captured.IncludeSafe {
		t.Fatalf("filters not passed correctly: %+v", captured)
	}
}

func TestAppListRPCError(t *testing.T) {
	stubConn(t, func(string, interface{}, interface{}) error {
		return errors.New("boom")
	})
	app := New(Options{})
	_, err := app.List(context.Background(), ListParams{Timeout: time.Second})
	if err == nil || err.Error() != "daemon list RPC failed: boom" {
		t.Fatalf("expected wrapped rpc error, got %v", err)
	}
}
