package server

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Binary frames carry a google.protobuf.Struct whose fields mirror the JSON
// request/reply, so both framings share one schema.

// protoToJSON decodes a wire-format Struct into its canonical JSON form.
func protoToJSON(data []byte) ([]byte, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("protobuf unmarshal: %w", err)
	}
	out, err := protojson.Marshal(&msg)
	if err != nil {
		return nil, fmt.Errorf("protojson marshal: %w", err)
	}
	return out, nil
}

// jsonToProto encodes a JSON object as a wire-format Struct.
func jsonToProto(data []byte) ([]byte, error) {
	var msg structpb.Struct
	if err := protojson.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("protojson unmarshal: %w", err)
	}
	out, err := proto.Marshal(&msg)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	return out, nil
}

// handleProto is handleJSON for binary frames.
func (s *Service) handleProto(data []byte) ([]byte, error) {
	var reply []byte
	body, err := protoToJSON(data)
	if err != nil {
		reply = mustMarshal(errorDTO{Type: "error", Error: err.Error()})
	} else {
		reply = s.handleJSON(body)
	}
	return jsonToProto(reply)
}
