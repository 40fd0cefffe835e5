package daemon

import (
	"context"
	"errors"

	"vacuum/api/vacuumv1"
	"vacuum/internal/prefs"
	"vacuum/internal/registry"
	"vacuum/internal/safelist"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// service implements the Vacuum gRPC service. Every registry and safe-list
// access goes through owner.
type service struct {
	vacuumv1.UnimplementedVacuumServer

	owner  *registry.Owner
	reg    *registry.Registry
	safe   *safelist.SafeList
	login  prefs.LoginItem
	logger *zap.Logger
}

func (s *service) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("pong"), nil
}

func (s *service) List(ctx context.Context, req *vacuumv1.ListRequest) (*vacuumv1.ListResponse, error) {
	resp := &vacuumv1.ListResponse{}
	err := s.owner.Do(ctx, func() {
		var hide registry.Membership = s.safe
		if req.IncludeSafe {
			hide = nil
		}
		visible := s.reg.Visible(req.Filter, hide)
		resp.Candidates = make([]*vacuumv1.Candidate, 0, len(visible))
		for _, c := range visible {
			resp.Candidates = append(resp.Candidates, &vacuumv1.Candidate{
				Id:       c.ID,
				Name:     c.Name,
				Icon:     c.Icon,
				Selected: c.Selected,
				Safe:     s.safe.Contains(c.ID),
			})
		}
		resp.SelectedCount = int32(s.reg.SelectedCount())
		resp.AllSelected = s.reg.AllSelected()
		resp.Total = int32(s.reg.Len())
	})
	if err != nil {
		return nil, ownerStatus(err)
	}
	return resp, nil
}

func (s *service) Toggle(ctx context.Context, req *vacuumv1.ToggleRequest) (*vacuumv1.ToggleResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	var (
		selected bool
		opErr    error
	)
	if err := s.owner.Do(ctx, func() { selected, opErr = s.reg.ToggleSelection(req.Id) }); err != nil {
		return nil, ownerStatus(err)
	}
	if opErr != nil {
		return nil, registryStatus(opErr)
	}
	return &vacuumv1.ToggleResponse{Selected: selected}, nil
}

func (s *service) SelectAll(ctx context.Context, req *vacuumv1.SelectAllRequest) (*vacuumv1.SelectAllResponse, error) {
	var count int
	err := s.owner.Do(ctx, func() {
		s.reg.SetSelectAll(req.Value)
		count = s.reg.SelectedCount()
	})
	if err != nil {
		return nil, ownerStatus(err)
	}
	return &vacuumv1.SelectAllResponse{SelectedCount: int32(count)}, nil
}

func (s *service) Refresh(ctx context.Context, _ *vacuumv1.RefreshRequest) (*vacuumv1.RefreshResponse, error) {
	var (
		total int
		opErr error
	)
	err := s.owner.Do(ctx, func() {
		opErr = s.reg.Refresh()
		total = s.reg.Len()
	})
	if err != nil {
		return nil, ownerStatus(err)
	}
	if opErr != nil {
		return nil, status.Errorf(codes.Unavailable, "refresh: %v", opErr)
	}
	return &vacuumv1.RefreshResponse{Total: int32(total)}, nil
}

// Clean waits for the settle delay and the follow-up refresh before replying.
func (s *service) Clean(ctx context.Context, _ *vacuumv1.CleanRequest) (*vacuumv1.CleanResponse, error) {
	done := make(chan registry.CleanResult, 1)
	var requested registry.CleanResult
	err := s.owner.Do(ctx, func() {
		requested = s.reg.TerminateSelected(func(r registry.CleanResult) { done <- r })
	})
	if err != nil {
		return nil, ownerStatus(err)
	}
	if requested.Terminated == 0 {
		return &vacuumv1.CleanResponse{}, nil
	}
	select {
	case r := <-done:
		return &vacuumv1.CleanResponse{Terminated: int32(r.Terminated)}, nil
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	}
}

func (s *service) ToggleSafe(ctx context.Context, req *vacuumv1.ToggleSafeRequest) (*vacuumv1.ToggleSafeResponse, error) {
	var (
		safe  bool
		opErr error
	)
	if err := s.owner.Do(ctx, func() { safe, opErr = s.reg.ToggleSafe(req.Id) }); err != nil {
		return nil, ownerStatus(err)
	}
	if opErr != nil {
		var invalid *safelist.InvalidIDError
		if errors.As(opErr, &invalid) {
			return nil, status.Error(codes.InvalidArgument, opErr.Error())
		}
		// the in-memory toggle stands; the next successful write persists it
		s.logger.Warn("persist safe-list", zap.String("id", req.Id), zap.Error(opErr))
	}
	return &vacuumv1.ToggleSafeResponse{Safe: safe}, nil
}

func (s *service) SafeList(ctx context.Context, _ *vacuumv1.SafeListRequest) (*vacuumv1.SafeListResponse, error) {
	var ids []string
	if err := s.owner.Do(ctx, func() { ids = s.safe.IDs() }); err != nil {
		return nil, ownerStatus(err)
	}
	return &vacuumv1.SafeListResponse{Ids: ids}, nil
}

// Login reports the login item state and optionally changes it. Registration
// failures are logged, not returned; the reply carries whatever state resulted.
func (s *service) Login(ctx context.Context, req *vacuumv1.LoginRequest) (*vacuumv1.LoginResponse, error) {
	if req.Set {
		var err error
		if req.Enabled {
			err = s.login.Register()
		} else {
			err = s.login.Unregister()
		}
		if err != nil {
			s.logger.Warn("update login item", zap.Bool("enabled", req.Enabled), zap.Error(err))
		}
	}
	return &vacuumv1.LoginResponse{Enabled: s.login.Enabled()}, nil
}

// Watch streams one event per coalesced batch of registry mutations until the
// client goes away.
func (s *service) Watch(_ *vacuumv1.WatchRequest, stream grpc.ServerStreamingServer[vacuumv1.WatchEvent]) error {
	ctx := stream.Context()
	changed := make(chan struct{}, 1)
	var unsubscribe func()
	err := s.owner.Do(ctx, func() {
		unsubscribe = s.reg.Subscribe(func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	})
	if err != nil {
		return ownerStatus(err)
	}
	defer s.owner.Post(unsubscribe)

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			seq++
			if err := stream.Send(&vacuumv1.WatchEvent{Seq: seq}); err != nil {
				return err
			}
		}
	}
}

func registryStatus(err error) error {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, registry.ErrSafeListed):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func ownerStatus(err error) error {
	if errors.Is(err, registry.ErrOwnerStopped) {
		return status.Error(codes.Unavailable, "daemon is shutting down")
	}
	return status.FromContextError(err).Err()
}
