package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

// Producer публикует события жизненного цикла заказов в Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

// OrderEvent — формат сообщения в топике заказов.
type OrderEvent struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	Total      int64  `json:"total"`
	OccurredAt int64  `json:"occurred_at"` // UnixNano
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishOrderEvent сериализует и отправляет событие заказа, ключ — ID заказа.
func (p *Producer) PublishOrderEvent(ctx context.Context, req *usecase.PublishOrderEventReq) error {
	event := OrderEvent{
		EventID:    uuid.NewString(),
		Type:       req.Type,
		OrderID:    req.OrderID,
		Status:     string(req.Status),
		Total:      req.Total,
		OccurredAt: time.Now().UnixNano(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(req.OrderID),
		Value: value,
	})
}

// EnsureTopic создаёт топик заказов, если он ещё не существует.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// DisabledProducer — заглушка на случай, когда брокеры не сконфигурированы.
type DisabledProducer struct{}

func NewDisabledProducer() *DisabledProducer {
	return &DisabledProducer{}
}

func (d *DisabledProducer) PublishOrderEvent(ctx context.Context, req *usecase.PublishOrderEventReq) error {
	return nil
}
