// Package audit publishes auth and mutation events to Kafka. Audit is
// best effort: a broker outage degrades to a logged warning, never a
// failed request.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

type Event struct {
	Action   string         `json:"action"`
	Session  string         `json:"session,omitempty"`
	UserUUID string         `json:"user_uuid,omitempty"`
	At       time.Time      `json:"at"`
	Detail   map[string]any `json:"detail,omitempty"`
}

type Producer struct {
	writer *kafka.Writer
	log    *slog.Logger
}

func NewProducer(brokers []string, topic string, log *slog.Logger) *Producer {
	if len(brokers) == 0 {
		return &Producer{log: log}
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: w, log: log}
}

func (p *Producer) Publish(ctx context.Context, ev Event) {
	if p.writer == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("audit_marshal_failed", "action", ev.Action, "error", err)
		return
	}
	msg := kafka.Message{Key: []byte(ev.Session), Value: data}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("audit_publish_failed", "action", ev.Action, "error", err)
	}
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
