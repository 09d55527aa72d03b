package service

import (
	"context"
	"encoding/json"
	"time"

	"studiq-be/internal/entity"
	"studiq-be/internal/pkg/logger"
	"studiq-be/internal/repository/unitofwork"
	"studiq-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IAuditService drains the in-process event bus into the system_logs table
// so the admin surface can browse an auditable trail.
type IAuditService interface {
	Consume(ctx context.Context) error
}

type auditService struct {
	subscriber message.Subscriber
	topic      string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAuditService(subscriber message.Subscriber, topic string, uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IAuditService {
	return &auditService{
		subscriber: subscriber,
		topic:      topic,
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (s *auditService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		s.handle(ctx, msg)
		// Ack regardless; a bad audit record should never wedge the bus.
		msg.Ack()
	}
	return nil
}

func (s *auditService) handle(ctx context.Context, msg *message.Message) {
	var envelope events.Envelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		s.logger.Warn("audit", "dropping malformed event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	module := "audit"
	var details *string
	if len(envelope.Data) > 0 {
		if raw, err := json.Marshal(envelope.Data); err == nil {
			detailStr := string(raw)
			details = &detailStr
		}
	}

	record := &entity.SystemLog{
		Id:        uuid.New(),
		Level:     "INFO",
		Module:    &module,
		Message:   envelope.Type,
		Details:   details,
		CreatedAt: envelope.OccurredAt,
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, record); err != nil {
		s.logger.Error("audit", "failed to persist audit event", map[string]interface{}{
			"event": envelope.Type,
			"error": err.Error(),
		})
	}
}
