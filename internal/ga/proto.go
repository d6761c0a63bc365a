// proto.go converts between the Analytics APIs' protobuf messages and the
// JSON shapes tools exchange with LLM clients.
//
// Marshalling keeps field names as declared in the proto files (snake_case,
// not camelCase) and renders enums as strings, because the tool descriptions
// document arguments and results in proto terms. Decoding goes the other
// way: pass-through payloads such as filter expressions and order-bys arrive
// as generic JSON mappings and are decoded structurally into their proto
// types, with unknown fields rejected so typos surface as argument errors
// rather than silently dropped clauses.

package ga

import (
	"bytes"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var marshaler = protojson.MarshalOptions{
	UseProtoNames:  true,
	UseEnumNumbers: false,
}

var unmarshaler = protojson.UnmarshalOptions{
	DiscardUnknown: false,
}

// ProtoJSON renders a proto message as indented JSON with proto field names
// preserved.
func ProtoJSON(msg proto.Message) (string, error) {
	raw, err := marshaler.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("marshal %T: %w", msg, err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

// ProtoSliceJSON renders a slice of proto messages as one indented JSON array.
func ProtoSliceJSON[M proto.Message](msgs []M) (string, error) {
	items := make([]json.RawMessage, 0, len(msgs))
	for _, m := range msgs {
		raw, err := marshaler.Marshal(m)
		if err != nil {
			return "", fmt.Errorf("marshal %T: %w", m, err)
		}
		items = append(items, raw)
	}
	out, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeMessage decodes a generic JSON value (as produced by encoding/json:
// maps, slices, strings, float64s) into a proto message. Used for
// pass-through arguments whose structure is defined by the Data API rather
// than by this server. A shape mismatch or unknown field wraps
// ErrInvalidArgument.
func DecodeMessage(value any, msg proto.Message) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := unmarshaler.Unmarshal(raw, msg); err != nil {
		return fmt.Errorf("%w: cannot decode %s: %v", ErrInvalidArgument, msg.ProtoReflect().Descriptor().Name(), err)
	}
	return nil
}
