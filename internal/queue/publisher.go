package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-cv-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	PublishEmailTask(ctx context.Context, task EmailCVTask) (string, error)
	Close() error
}

// TaskPublisher publishes tasks to the RabbitMQ task exchange. When no
// broker URI is configured the publisher is disabled and enqueues are
// reported as unavailable rather than silently dropped.
type TaskPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	enabled bool
}

func NewTaskPublisher(amqpURI string) (*TaskPublisher, error) {
	if amqpURI == "" {
		logger.Log.Warn("AMQP URI is empty, task publishing is disabled")
		return &TaskPublisher{enabled: false}, nil
	}

	conn, err := amqp091.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		TaskExchange, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Log.Info("Task publisher initialized", "exchange", TaskExchange)

	return &TaskPublisher{
		conn:    conn,
		channel: channel,
		enabled: true,
	}, nil
}

// PublishEmailTask enqueues an email delivery task and returns its id.
// Fire-and-forget: the caller does not wait for delivery.
func (p *TaskPublisher) PublishEmailTask(ctx context.Context, task EmailCVTask) (string, error) {
	if !p.enabled {
		return "", fmt.Errorf("task broker is not configured")
	}

	if task.TaskID == "" {
		task.TaskID = uuid.NewString()
	}

	body, err := json.Marshal(task)
	if err != nil {
		return "", fmt.Errorf("failed to marshal task: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		TaskExchange, // exchange
		EmailTaskKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			MessageId:    task.TaskID,
			Body:         body,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to publish task: %w", err)
	}

	logger.Log.Info("Published email task",
		"task_id", task.TaskID, "recipient", task.Recipient)
	return task.TaskID, nil
}

func (p *TaskPublisher) Close() error {
	if !p.enabled {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
