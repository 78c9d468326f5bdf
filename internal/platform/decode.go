package platform

import (
	"encoding/json"

	"github.com/hienthq-zcv/admin-service/internal/model"
)

type ListShape int

const (
	ShapeArray ListShape = iota
	ShapeEnvelope
	ShapeUnrecognized
)

type listEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodePostList accepts the two list shapes the upstream is known to
// produce: a bare JSON array of posts, or an envelope object whose "data"
// field holds the array. Anything else is ShapeUnrecognized with
// ErrUnrecognizedShape.
func DecodePostList(body []byte) ([]model.Post, ListShape, error) {
	var posts []model.Post
	if err := json.Unmarshal(body, &posts); err == nil {
		return posts, ShapeArray, nil
	}

	var envelope listEnvelope
	// A json.RawMessage holds the literal "null" for {"data":null};
	// that shape is unrecognized, not an empty envelope.
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, &posts); err == nil {
			return posts, ShapeEnvelope, nil
		}
	}

	return nil, ShapeUnrecognized, ErrUnrecognizedShape
}

// DecodeStatistics fills a snapshot from the upstream counters object.
// Absent fields stay zero; a non-object body is an error.
func DecodeStatistics(body []byte, stats *model.Statistics) error {
	return json.Unmarshal(body, stats)
}
