package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// EncodeSnapshot serializes the whole collection as one JSON array. The local
// repository and the remote sync file share this format byte for byte.
func EncodeSnapshot(notes []*Note) ([]byte, error) {
	if notes == nil {
		notes = []*Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode snapshot")
	}
	return data, nil
}

// DecodeSnapshot deserializes a snapshot produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) ([]*Note, error) {
	if len(data) == 0 {
		return []*Note{}, nil
	}

	var notes []*Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, goerr.Wrap(err, "failed to decode snapshot")
	}
	if notes == nil {
		notes = []*Note{}
	}
	return notes, nil
}
