package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"taskly/config"
	"taskly/infras/kafka"
	"taskly/infras/otel"
	"taskly/internal/domains/task/model"
	"taskly/shared/constant"
	"taskly/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeTaskCreated = "task.created"
	TypeTaskUpdated = "task.updated"
	TypeTaskDeleted = "task.deleted"
)

type TaskEvent struct {
	Type       string `json:"type"`
	TaskID     int64  `json:"task_id"`
	UserID     int64  `json:"user_id"`
	OccurredAt string `json:"occurred_at"`
}

// Publisher emits task lifecycle events. Publishing is best effort: a broker
// failure is logged and never surfaces to the caller.
type Publisher interface {
	TaskCreated(ctx context.Context, task model.Task)
	TaskUpdated(ctx context.Context, task model.Task)
	TaskDeleted(ctx context.Context, id, userID int64)
}

type publisherImpl struct {
	config *config.Config
	kafka  kafka.Client
	otel   otel.Otel
}

func NewPublisher(config *config.Config, kafka kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		config: config,
		kafka:  kafka,
		otel:   otel,
	}
}

func (p *publisherImpl) TaskCreated(ctx context.Context, task model.Task) {
	p.publish(ctx, TypeTaskCreated, task.ID, task.UserID)
}

func (p *publisherImpl) TaskUpdated(ctx context.Context, task model.Task) {
	p.publish(ctx, TypeTaskUpdated, task.ID, task.UserID)
}

func (p *publisherImpl) TaskDeleted(ctx context.Context, id, userID int64) {
	p.publish(ctx, TypeTaskDeleted, id, userID)
}

func (p *publisherImpl) publish(ctx context.Context, eventType string, taskID, userID int64) {
	if !p.config.Events.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, fmt.Sprintf("%s.%s.publish", constant.OtelEventScopeName, model.EntityName))
	defer scope.End()

	message := kafka.Message{
		Key: strconv.FormatInt(taskID, 10),
		Value: TaskEvent{
			Type:       eventType,
			TaskID:     taskID,
			UserID:     userID,
			OccurredAt: timezone.Now().Format(constant.DateFormat),
		},
	}

	if err := p.kafka.SendMessages(ctx, p.config.Events.Kafka.Topic, message); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).
			Str("type", eventType).
			Int64("task_id", taskID).
			Msg("Failed to publish task event.")
	}
}
