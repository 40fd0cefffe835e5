package vacuumv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	Vacuum_Ping_FullMethodName       = "/vacuum.v1.Vacuum/Ping"
	Vacuum_List_FullMethodName       = "/vacuum.v1.Vacuum/List"
	Vacuum_Toggle_FullMethodName     = "/vacuum.v1.Vacuum/Toggle"
	Vacuum_SelectAll_FullMethodName  = "/vacuum.v1.Vacuum/SelectAll"
	Vacuum_Refresh_FullMethodName    = "/vacuum.v1.Vacuum/Refresh"
	Vacuum_Clean_FullMethodName      = "/vacuum.v1.Vacuum/Clean"
	Vacuum_ToggleSafe_FullMethodName = "/vacuum.v1.Vacuum/ToggleSafe"
	Vacuum_SafeList_FullMethodName   = "/vacuum.v1.Vacuum/SafeList"
	Vacuum_Login_FullMethodName      = "/vacuum.v1.Vacuum/Login"
	Vacuum_Watch_FullMethodName      = "/vacuum.v1.Vacuum/Watch"
)

// VacuumClient is the client API for the Vacuum service.
type VacuumClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error)
	Toggle(ctx context.Context, in *ToggleRequest, opts ...grpc.CallOption) (*ToggleResponse, error)
	SelectAll(ctx context.Context, in *SelectAllRequest, opts ...grpc.CallOption) (*SelectAllResponse, error)
	Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*RefreshResponse, error)
	// Clean returns once the post-termination refresh has run.
	Clean(ctx context.Context, in *CleanRequest, opts ...grpc.CallOption) (*CleanResponse, error)
	ToggleSafe(ctx context.Context, in *ToggleSafeRequest, opts ...grpc.CallOption) (*ToggleSafeResponse, error)
	SafeList(ctx context.Context, in *SafeListRequest, opts ...grpc.CallOption) (*SafeListResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Watch(ctx context.Context, in *WatchRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[WatchEvent], error)
}

type vacuumClient struct {
	cc grpc.ClientConnInterface
}

func NewVacuumClient(cc grpc.ClientConnInterface) VacuumClient {
	return &vacuumClient{cc}
}

func callOpts(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *vacuumClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, Vacuum_Ping_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	err := c.cc.Invoke(ctx, Vacuum_List_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) Toggle(ctx context.Context, in *ToggleRequest, opts ...grpc.CallOption) (*ToggleResponse, error) {
	out := new(ToggleResponse)
	err := c.cc.Invoke(ctx, Vacuum_Toggle_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) SelectAll(ctx context.Context, in *SelectAllRequest, opts ...grpc.CallOption) (*SelectAllResponse, error) {
	out := new(SelectAllResponse)
	err := c.cc.Invoke(ctx, Vacuum_SelectAll_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*RefreshResponse, error) {
	out := new(RefreshResponse)
	err := c.cc.Invoke(ctx, Vacuum_Refresh_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) Clean(ctx context.Context, in *CleanRequest, opts ...grpc.CallOption) (*CleanResponse, error) {
	out := new(CleanResponse)
	err := c.cc.Invoke(ctx, Vacuum_Clean_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) ToggleSafe(ctx context.Context, in *ToggleSafeRequest, opts ...grpc.CallOption) (*ToggleSafeResponse, error) {
	out := new(ToggleSafeResponse)
	err := c.cc.Invoke(ctx, Vacuum_ToggleSafe_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) SafeList(ctx context.Context, in *SafeListRequest, opts ...grpc.CallOption) (*SafeListResponse, error) {
	out := new(SafeListResponse)
	err := c.cc.Invoke(ctx, Vacuum_SafeList_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, Vacuum_Login_FullMethodName, in, out, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vacuumClient) Watch(ctx context.Context, in *WatchRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[WatchEvent], error) {
	stream, err := c.cc.NewStream(ctx, &Vacuum_ServiceDesc.Streams[0], Vacuum_Watch_FullMethodName, callOpts(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchRequest, WatchEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// VacuumServer is the server API for the Vacuum service.
type VacuumServer interface {
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	List(context.Context, *ListRequest) (*ListResponse, error)
	Toggle(context.Context, *ToggleRequest) (*ToggleResponse, error)
	SelectAll(context.Context, *SelectAllRequest) (*SelectAllResponse, error)
	Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error)
	Clean(context.Context, *CleanRequest) (*CleanResponse, error)
	ToggleSafe(context.Context, *ToggleSafeRequest) (*ToggleSafeResponse, error)
	SafeList(context.Context, *SafeListRequest) (*SafeListResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Watch(*WatchRequest, grpc.ServerStreamingServer[WatchEvent]) error
	mustEmbedUnimplementedVacuumServer()
}

// UnimplementedVacuumServer must be embedded to have forward compatible implementations.
type UnimplementedVacuumServer struct{}

func (UnimplementedVacuumServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedVacuumServer) List(context.Context, *ListRequest) (*ListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedVacuumServer) Toggle(context.Context, *ToggleRequest) (*ToggleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Toggle not implemented")
}
func (UnimplementedVacuumServer) SelectAll(context.Context, *SelectAllRequest) (*SelectAllResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SelectAll not implemented")
}
func (UnimplementedVacuumServer) Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedVacuumServer) Clean(context.Context, *CleanRequest) (*CleanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clean not implemented")
}
func (UnimplementedVacuumServer) ToggleSafe(context.Context, *ToggleSafeRequest) (*ToggleSafeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToggleSafe not implemented")
}
func (UnimplementedVacuumServer) SafeList(context.Context, *SafeListRequest) (*SafeListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SafeList not implemented")
}
func (UnimplementedVacuumServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedVacuumServer) Watch(*WatchRequest, grpc.ServerStreamingServer[WatchEvent]) error {
	return status.Errorf(codes.Unimplemented, "method Watch not implemented")
}
func (UnimplementedVacuumServer) mustEmbedUnimplementedVacuumServer() {}

func RegisterVacuumServer(s grpc.ServiceRegistrar, srv VacuumServer) {
	s.RegisterService(&Vacuum_ServiceDesc, srv)
}

func _Vacuum_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_Ping_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_List_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_List_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_Toggle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).Toggle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_Toggle_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).Toggle(ctx, req.(*ToggleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_SelectAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).SelectAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_SelectAll_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).SelectAll(ctx, req.(*SelectAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_Refresh_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).Refresh(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_Refresh_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).Refresh(ctx, req.(*RefreshRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_Clean_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CleanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).Clean(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_Clean_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).Clean(ctx, req.(*CleanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_ToggleSafe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleSafeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).ToggleSafe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_ToggleSafe_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).ToggleSafe(ctx, req.(*ToggleSafeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_SafeList_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SafeListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).SafeList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_SafeList_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).SafeList(ctx, req.(*SafeListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VacuumServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Vacuum_Login_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VacuumServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vacuum_Watch_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(VacuumServer).Watch(m, &grpc.GenericServerStream[WatchRequest, WatchEvent]{ServerStream: stream})
}

// Vacuum_ServiceDesc is the grpc.ServiceDesc for the Vacuum service.
var Vacuum_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vacuum.v1.Vacuum",
	HandlerType: (*VacuumServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: _Vacuum_Ping_Handler},
		{MethodName: "List", Handler: _Vacuum_List_Handler},
		{MethodName: "Toggle", Handler: _Vacuum_Toggle_Handler},
		{MethodName: "SelectAll", Handler: _Vacuum_SelectAll_Handler},
		{MethodName: "Refresh", Handler: _Vacuum_Refresh_Handler},
		{MethodName: "Clean", Handler: _Vacuum_Clean_Handler},
		{MethodName: "ToggleSafe", Handler: _Vacuum_ToggleSafe_Handler},
		{MethodName: "SafeList", Handler: _Vacuum_SafeList_Handler},
		{MethodName: "Login", Handler: _Vacuum_Login_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Watch",
			Handler:       _Vacuum_Watch_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "vacuum/v1/vacuum.proto",
}
