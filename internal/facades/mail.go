package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-todo-boards/internal/logger"
	"github.com/sbilibin2017/gw-todo-boards/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=mail.go -destination=mail_mock.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MailKafkaFacade queues rendered mails on a Kafka topic for the mail
// worker. Without a writer, or when publishing fails, the mail is written
// to the log instead so that links stay reachable in development.
type MailKafkaFacade struct {
	writer KafkaWriter
}

// NewMailKafkaFacade creates a new facade. writer may be nil.
func NewMailKafkaFacade(writer KafkaWriter) *MailKafkaFacade {
	return &MailKafkaFacade{writer: writer}
}

// NewKafkaWriter creates a writer publishing to topic on brokers. Messages
// of one recipient land on the same partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Send queues a mail. Publishing errors are logged and the mail falls back
// to the log; only an unencodable message is reported.
func (f *MailKafkaFacade) Send(ctx context.Context, to, subject, html string) error {
	msg := models.MailMessage{
		ID:        uuid.NewString(),
		To:        to,
		Subject:   subject,
		HTML:      html,
		CreatedAt: time.Now().UTC(),
	}

	if f.writer == nil {
		logMail(msg, "console")
		return nil
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("failed to marshal mail for Kafka", "mail_id", msg.ID, "error", err)
		return err
	}

	if err := f.writer.WriteMessages(ctx, kafka.Message{Key: []byte(to), Value: data}); err != nil {
		logger.Log.Errorw("failed to publish mail to Kafka", "mail_id", msg.ID, "error", err)
		logMail(msg, "fallback")
		return nil
	}

	logger.Log.Infow("mail published to Kafka", "mail_id", msg.ID, "subject", subject)
	return nil
}

// Close releases the underlying writer.
func (f *MailKafkaFacade) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}

func logMail(msg models.MailMessage, mode string) {
	logger.Log.Infow("mail",
		"mode", mode,
		"mail_id", msg.ID,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.HTML,
	)
}
