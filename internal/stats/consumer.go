package stats

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"library-management/internal/model"
)

type persistEvent func(ctx context.Context, ev model.IssueEvent) error

// Consumer drains issue lifecycle events from kafka into the audit table.
type Consumer struct {
	persist persistEvent
	log     *zap.Logger
	ready   chan bool
}

func NewConsumer(persist persistEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		persist: persist,
		log:     log.Named("stats-consumer"),
		ready:   make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg model.IssueEventMessage
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("unmarshal issue event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			ev := model.IssueEvent{
				IssueUID:   msg.IssueUID,
				BookID:     msg.BookID,
				UserID:     msg.UserID,
				Event:      msg.Event,
				OccurredAt: msg.OccurredAt,
			}
			if err := consumer.persist(context.Background(), ev); err != nil {
				consumer.log.Error("persist issue event", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
