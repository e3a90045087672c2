package v1alpha1

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const battleFileName = "pokebattle/v1alpha1/battle.proto"

// The file descriptor lets server reflection describe BattleService.
// Its dependencies are registered by the structpb and wrapperspb imports.
func battleFileDescriptor() *descriptorpb.FileDescriptorProto {
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(in),
			OutputType: proto.String(out),
		}
	}

	const (
		str    = ".google.protobuf.StringValue"
		object = ".google.protobuf.Struct"
	)

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(battleFileName),
		Package: proto.String("pokebattle.v1alpha1"),
		Dependency: []string{
			"google/protobuf/struct.proto",
			"google/protobuf/wrappers.proto",
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("BattleService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("GetPokemon", str, object),
				method("SimulateBattle", object, object),
				method("GetBattle", str, object),
				method("ListBattles", object, object),
			},
		}},
		Syntax: proto.String("proto3"),
	}
}

func init() {
	fd, err := protodesc.NewFile(battleFileDescriptor(), protoregistry.GlobalFiles)
	if err != nil {
		panic(err)
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(err)
	}
}
