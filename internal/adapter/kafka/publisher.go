package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/AwesomeTrading/ordercore/internal/codec"
	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

var _ port.EventPublisher = (*Publisher)(nil)

// Publisher fans applied order events out to a Kafka topic. Messages are
// keyed by client order id so the lifecycle of one order stays on one
// partition, with the event encoded as msgpack.
type Publisher struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewPublisher(brokers []string, topic string, log *zap.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return &Publisher{writer: writer, log: log}
}

func (p *Publisher) Publish(ctx context.Context, ev domain.OrderEvent) error {
	value, err := codec.EncodeMsgpack(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(ev.GetClientOrderID()),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("publish order event",
			zap.String("client_order_id", string(ev.GetClientOrderID())),
			zap.String("event_type", ev.EventType()),
			zap.Error(err))
		return err
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
