package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"vacuum/api/vacuumv1"
)

func TestAppSafeList(t *testing.T) {
	stubConn(t, func(method string, args, reply interface{}) error {
		reply.(*vacuumv1.SafeListResponse).Ids = []string{"a.finder", "c.mail"}
		return nil
	})

	app := New(Options{})
	ids, err := app.SafeList(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a.finder" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestAppToggleSafe(t *testing.T) {
	var got string
	stubConn(t, func(method string, args, reply interface{}) error {
		got = args.(*vacuumv1.ToggleSafeRequest).Id
		reply.(*vacuumv1.ToggleSafeResponse).Safe = true
		return nil
	})

	app := New(Options{})
	safe, err := app.ToggleSafe(context.Background(), " a.finder ", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !safe || got != "a.finder" {
		t.Fatalf("unexpected result safe=%v id=%q", safe, got)
	}
}

func TestAppToggleSafeRejectsBlank(t *testing.T) {
	app := New(Options{})
	if _, err := app.ToggleSafe(context.Background(), "  ", time.Second); err == nil {
		t.Fatal("expected blank id error")
	}
}

func TestAppLogin(t *testing.T) {
	var last *vacuumv1.LoginRequest
	stubConn(t, func(method string, args, reply interface{}) error {
		last = args.(*vacuumv1.LoginRequest)
		reply.(*vacuumv1.LoginResponse).Enabled = last.Set && last.Enabled
		return nil
	})

	app := New(Options{})
	enabled, err := app.SetLogin(context.Background(), true, time.Second)
	if err != nil || !enabled {
		t.Fatalf("SetLogin: enabled=%v err=%v", enabled, err)
	}
	enabled, err = app.LoginStatus(context.Background(), time.Second)
	if err != nil || enabled || last.Set {
		t.Fatalf("LoginStatus: enabled=%v err=%v req=%+v", enabled, err, last)
	}
}

func TestAppWatchNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)
	app := New(Options{})
	if _, err := app.Watch(context.Background(), time.Second); !errors.Is(err, ErrDaemonNotRunning) {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}
