package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go-cv-backend/pkg/logger"

	"github.com/rabbitmq/amqp091-go"
)

// EmailHandler executes one email delivery task.
type EmailHandler func(ctx context.Context, task EmailCVTask) error

// TaskConsumer consumes email tasks from the broker and runs them through
// the handler. A failed task is requeued once; a second failure is logged as
// a delivery failure and dropped, matching the at-most-one-retry policy.
type TaskConsumer struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	handler  EmailHandler
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func NewTaskConsumer(amqpURI string, handler EmailHandler) (*TaskConsumer, error) {
	if amqpURI == "" {
		return nil, fmt.Errorf("AMQP URI is required for the worker")
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

	if err := channel.Qos(prefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &TaskConsumer{
		conn:     conn,
		channel:  channel,
		handler:  handler,
		shutdown: make(chan struct{}),
	}, nil
}

func (c *TaskConsumer) Start() error {
	err := c.channel.ExchangeDeclare(
		TaskExchange, "direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		EmailQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := c.channel.QueueBind(EmailQueue, EmailTaskKey, TaskExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	deliveries, err := c.channel.Consume(
		EmailQueue,
		consumerName,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	logger.Log.Info("Task consumer started", "queue", EmailQueue)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-c.shutdown:
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				c.handleDelivery(d)
			}
		}
	}()

	return nil
}

func (c *TaskConsumer) handleDelivery(d amqp091.Delivery) {
	var task EmailCVTask
	if err := json.Unmarshal(d.Body, &task); err != nil {
		logger.Log.Error("Dropping malformed task message", "error", err)
		_ = d.Nack(false, false)
		return
	}

	if err := c.handler(context.Background(), task); err != nil {
		if d.Redelivered {
			// Second failure: give up and record the delivery failure.
			logger.Log.Error("Email delivery failed permanently",
				"task_id", task.TaskID, "recipient", task.Recipient, "error", err)
			_ = d.Nack(false, false)
			return
		}
		logger.Log.Warn("Email task failed, requeueing once",
			"task_id", task.TaskID, "error", err)
		_ = d.Nack(false, true)
		return
	}

	logger.Log.Info("Email task completed",
		"task_id", task.TaskID, "recipient", task.Recipient)
	_ = d.Ack(false)
}

func (c *TaskConsumer) Close() error {
	close(c.shutdown)
	c.wg.Wait()
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
