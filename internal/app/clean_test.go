package app

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"vacuum/api/vacuumv1"
)

func TestAppCleanRejectsAllWithIDs(t *testing.T) {
	app := New(Options{})
	_, err := app.Clean(context.Background(), CleanParams{All: true, IDs: []string{"x"}, Timeout: time.Second})
	if err == nil {
		t.Fatal("expected conflicting selector error")
	}
}

func TestAppCleanAll(t *testing.T) {
	var methods []string
	stubConn(t, func(method string, args, reply interface{}) error {
		methods = append(methods, method)
		switch method {
		case vacuumv1.Vacuum_SelectAll_FullMethodName:
			if !args.(*vacuumv1.SelectAllRequest).Value {
				t.Fatal("expected select-all true")
			}
		case vacuumv1.Vacuum_Clean_FullMethodName:
			reply.(*vacuumv1.CleanResponse).Terminated = 2
		}
		return nil
	})

	app := New(Options{})
	res, err := app.Clean(context.Background(), CleanParams{All: true, Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Terminated != 2 || res.Message != "Cleaned 2 app(s)" {
		t.Fatalf("unexpected result: %+v", res)
	}
	want := []string{vacuumv1.Vacuum_SelectAll_FullMethodName, vacuumv1.Vacuum_Clean_FullMethodName}
	if len(methods) != len(want) || methods[0] != want[0] || methods[1] != want[1] {
		t.Fatalf("unexpected call order: %v", methods)
	}
}

func TestAppCleanByIDReplacesSelection(t *testing.T) {
	var methods []string
	stubConn(t, func(method string, args, reply interface{}) error {
		methods = append(methods, method)
		switch method {
		case vacuumv1.Vacuum_SelectAll_FullMethodName:
			if args.(*vacuumv1.SelectAllRequest).Value {
				t.Fatal("expected selection to be cleared first")
			}
		case vacuumv1.Vacuum_Toggle_FullMethodName:
			if args.(*vacuumv1.ToggleRequest).Id == "a.finder" {
				return status.Error(codes.FailedPrecondition, "candidate is safe-listed")
			}
		case vacuumv1.Vacuum_Clean_FullMethodName:
			reply.(*vacuumv1.CleanResponse).Terminated = 1
		}
		return nil
	})

	app := New(Options{})
	res, err := app.Clean(context.Background(), CleanParams{IDs: []string{"a.finder", "b.notes"}, Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Terminated != 1 || len(res.Skipped) != 1 || res.Skipped[0].ID != "a.finder" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(methods) != 4 {
		t.Fatalf("expected select-all, two toggles and clean, got %v", methods)
	}
}

func TestAppCleanNothingSelected(t *testing.T) {
	stubConn(t, func(string, interface{}, interface{}) error { return nil })

	app := New(Options{})
	res, err := app.Clean(context.Background(), CleanParams{Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Terminated != 0 || res.Message != "Nothing selected to clean" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAppCleanByIDTogglesEachIDOnce(t *testing.T) {
	toggles := map[string]int{}
	stubConn(t, func(method string, args, reply interface{}) error {
		switch method {
		case vacuumv1.Vacuum_Toggle_FullMethodName:
			toggles[args.(*vacuumv1.ToggleRequest).Id]++
		case vacuumv1.Vacuum_Clean_FullMethodName:
			reply.(*vacuumv1.CleanResponse).Terminated = int32(len(toggles))
		}
		return nil
	})

	app := New(Options{})
	res, err := app.Clean(context.Background(), CleanParams{IDs: []string{"b.notes", "b.notes", "c.mail", "b.notes"}, Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggles["b.notes"] != 1 || toggles["c.mail"] != 1 {
		t.Fatalf("expected one toggle per id, got %v", toggles)
	}
	if res.Terminated != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
