package reminderqueue

import (
	"context"
	"sync"
	"time"

	"messmenu-service/internal/app/contracts"
	"messmenu-service/internal/app/models"
	"messmenu-service/internal/pkg/constvars"
	"messmenu-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ReminderSetMessage is the payload stored in RabbitMQ. ReplacesAll tells the
// consumer to clear every previously installed reminder before installing the
// records, so no reminder from an older menu document survives a refresh.
type ReminderSetMessage struct {
	SetID       string                  `json:"set_id"`
	GeneratedAt time.Time               `json:"generated_at"`
	ReplacesAll bool                    `json:"replaces_all"`
	Reminders   []models.ReminderRecord `json:"reminders"`
}

// Service publishes full reminder sets to a durable queue. A mutex
// serializes publishes so two regenerations never interleave on the channel.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.ReminderQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, exceptions.ErrReminderQueueDeclare(err)
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (s *Service) PublishSet(ctx context.Context, setID string, records []models.ReminderRecord) error {
	message := ReminderSetMessage{
		SetID:       setID,
		GeneratedAt: time.Now(),
		ReplacesAll: true,
		Reminders:   records,
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    setID,
			Body:         body,
		},
	)
	if err != nil {
		s.log.Error("reminderqueue.PublishSet failed",
			zap.String("set_id", setID),
			zap.Error(err),
		)
		return exceptions.ErrReminderQueuePublish(err)
	}

	s.log.Info("reminderqueue.PublishSet succeeded",
		zap.String("set_id", setID),
		zap.Int(constvars.LoggingReminderCount, len(records)),
	)
	return nil
}
