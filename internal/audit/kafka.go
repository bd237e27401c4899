package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink publishes audit events keyed by doctor id, so one doctor's
// events stay ordered within a partition.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

type kafkaPayload struct {
	DoctorID   string    `json:"doctor_id"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id,omitempty"`
	Metadata   any       `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func encode(ev Event) (kafka.Message, error) {
	p := kafkaPayload{
		DoctorID:   ev.DoctorID.String(),
		Action:     ev.Action,
		Entity:     ev.Entity,
		Metadata:   ev.Metadata,
		OccurredAt: ev.OccurredAt.UTC(),
	}
	if ev.EntityID != nil {
		p.EntityID = ev.EntityID.String()
	}

	value, err := json.Marshal(p)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(p.DoctorID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Action)},
		},
		Time: p.OccurredAt,
	}, nil
}

func (s *KafkaSink) Write(ctx context.Context, ev Event) error {
	msg, err := encode(ev)
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, msg)
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
