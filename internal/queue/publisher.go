package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/hetulpatel/athletemon/internal/docstore"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// WriteEvent is the payload published for each seeded document.
type WriteEvent struct {
	Backend string         `json:"backend"`
	Write   docstore.Write `json:"write"`
}

// BuildMessages turns writes into messages keyed by document path.
func BuildMessages(backend string, writes []docstore.Write) ([]kafka.Message, error) {
	msgs := make([]kafka.Message, 0, len(writes))
	for _, w := range writes {
		payload, err := json.Marshal(WriteEvent{Backend: backend, Write: w})
		if err != nil {
			return nil, fmt.Errorf("marshal write %s: %w", w.Path(), err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(w.Path()), Value: payload, Time: w.At})
	}
	return msgs, nil
}

// PublishWrites sends one message per write. A nil writer publishes nothing.
func PublishWrites(ctx context.Context, writer MessageWriter, backend string, writes []docstore.Write) error {
	if writer == nil || len(writes) == 0 {
		return nil
	}
	msgs, err := BuildMessages(backend, writes)
	if err != nil {
		return err
	}
	return writer.WriteMessages(ctx, msgs...)
}
