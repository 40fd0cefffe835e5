package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"vacuum/api/vacuumv1"
)

func TestAppPingNotRunning(t *testing.T) {
	stubDaemon(t, false, nil)

	app := New(Options{})
	if _, err := app.Ping(context.Background(), time.Second); !errors.Is(err, ErrDaemonNotRunning) {
		t.Fatalf("expected daemon not running error, got %v", err)
	}
}

func TestAppPingSuccess(t *testing.T) {
	stubConn(t, func(method string, args, reply interface{}) error {
		if method != vacuumv1.Vacuum_Ping_FullMethodName {
			t.Fatalf("unexpected method %s", method)
		}
		resp, ok := reply.(*wrapperspb.StringValue)
		if !ok {
			t.Fatalf("unexpected reply type %T", reply)
		}
		resp.Value = "pong"
		return nil
	})

	app := New(Options{})
	msg, err := app.Ping(context.Background(), 500*time.Millisecond)
	if err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if msg != "pong" {
		t.Fatalf("expected pong, got %q", msg)
	}
}

func TestAppPingDialError(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (vacuumv1.VacuumClient, io.Closer, error) {
		return nil, nil, errors.New("dial failed")
	})

	app := New(Options{})
	if _, err := app.Ping(context.Background(), time.Second); err == nil || err.Error() != "connect to daemon: dial failed" {
		t.Fatalf("expected wrapped dial error, got %v", err)
	}
}

func TestAppPingInvalidTimeout(t *testing.T) {
	stubDaemon(t, true, func(ctx context.Context) (vacuumv1.VacuumClient, io.Closer, error) {
		return nil, nil, errors.New("should not dial")
	})

	app := New(Options{})
	if _, err := app.Ping(context.Background(), 0); err == nil || err.Error() != "timeout must be greater than 0" {
		t.Fatalf("expected timeout error, got %v", err)
	}
}
