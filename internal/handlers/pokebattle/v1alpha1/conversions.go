package v1alpha1

import (
	"encoding/json"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/entities"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/orchestrators/battle"
)

// maxExactInt is the largest whole number a Struct number (float64) carries without rounding
const maxExactInt = 1 << 53

type battleList struct {
	Battles []*entities.BattleRecord `json:"battles"`
}

// toStruct encodes v through its JSON shape so both transports return the same documents
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return st, nil
}

func simulateInputFromStruct(req *structpb.Struct) (*battle.SimulateBattleInput, error) {
	vb := errors.NewValidationBuilder()

	pokemon1 := stringField(req, "pokemon1", vb)
	pokemon2 := stringField(req, "pokemon2", vb)

	seed, err := intField(req, "seed")
	if err != nil {
		return nil, err
	}
	if seed < 0 {
		vb.Field("seed", "must not be negative")
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &battle.SimulateBattleInput{
		Pokemon1: pokemon1,
		Pokemon2: pokemon2,
		Seed:     uint64(seed),
	}, nil
}

// stringField reads a required string field
func stringField(req *structpb.Struct, name string, vb *errors.ValidationBuilder) string {
	v, ok := req.GetFields()[name]
	if !ok {
		vb.RequiredField(name)
		return ""
	}

	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		vb.Field(name, "must be a string")
		return ""
	}
	if s.StringValue == "" {
		vb.RequiredField(name)
	}
	return s.StringValue
}

// intField reads an optional whole-number field; a missing field is zero
func intField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, nil
	}

	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", name)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > maxExactInt {
		return 0, errors.InvalidArgumentf("%s must be a whole number", name)
	}
	return int(n.NumberValue), nil
}
