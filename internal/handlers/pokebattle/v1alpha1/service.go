// Package v1alpha1 serves the pokebattle.v1alpha1.BattleService gRPC API.
// Messages are protobuf well-known types, so the service needs no generated contract package.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Fully-qualified names of the service and its methods
const (
	BattleServiceName = "pokebattle.v1alpha1.BattleService"

	BattleService_GetPokemon_FullMethodName     = "/pokebattle.v1alpha1.BattleService/GetPokemon"
	BattleService_SimulateBattle_FullMethodName = "/pokebattle.v1alpha1.BattleService/SimulateBattle"
	BattleService_GetBattle_FullMethodName      = "/pokebattle.v1alpha1.BattleService/GetBattle"
	BattleService_ListBattles_FullMethodName    = "/pokebattle.v1alpha1.BattleService/ListBattles"
)

// BattleServiceServer is the server API for BattleService
type BattleServiceServer interface {
	GetPokemon(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	SimulateBattle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBattle(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListBattles(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBattleServiceServer registers srv on s
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleService_ServiceDesc, srv)
}

// BattleService_ServiceDesc is the grpc.ServiceDesc for BattleService
var BattleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: BattleServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetPokemon", Handler: _BattleService_GetPokemon_Handler},
		{MethodName: "SimulateBattle", Handler: _BattleService_SimulateBattle_Handler},
		{MethodName: "GetBattle", Handler: _BattleService_GetBattle_Handler},
		{MethodName: "ListBattles", Handler: _BattleService_ListBattles_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: battleFileName,
}

func _BattleService_GetPokemon_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).GetPokemon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BattleService_GetPokemon_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BattleServiceServer).GetPokemon(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_SimulateBattle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).SimulateBattle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BattleService_SimulateBattle_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BattleServiceServer).SimulateBattle(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_GetBattle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).GetBattle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BattleService_GetBattle_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BattleServiceServer).GetBattle(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BattleService_ListBattles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BattleServiceServer).ListBattles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: BattleService_ListBattles_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BattleServiceServer).ListBattles(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// BattleServiceClient is the client API for BattleService
type BattleServiceClient interface {
	GetPokemon(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	SimulateBattle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetBattle(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListBattles(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client bound to cc
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc}
}

func (c *battleServiceClient) GetPokemon(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BattleService_GetPokemon_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) SimulateBattle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BattleService_SimulateBattle_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) GetBattle(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BattleService_GetBattle_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) ListBattles(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, BattleService_ListBattles_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
