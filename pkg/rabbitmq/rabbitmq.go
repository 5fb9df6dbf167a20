package rabbitmq

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// ProductEventsQueue receives an event after every committed product write.
const ProductEventsQueue = "product_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing

	closeOnce sync.Once
	closeErr  error
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string // defaults to ProductEventsQueue
}

// NewClient connects to RabbitMQ, opens a channel and declares the queue.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Queue == "" {
		cfg.Queue = ProductEventsQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declare(ch, cfg.Queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("RabbitMQ client connected", zap.String("queue", cfg.Queue))

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
		logger:  logger,
	}, nil
}

func declare(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", queue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection. Only the first call does
// any work; later calls return its result.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		var errs []error
		if c.channel != nil {
			if err := c.channel.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
			}
		}
		if c.conn != nil {
			if err := c.conn.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
			}
		}
		if len(errs) > 0 {
			c.closeErr = fmt.Errorf("errors during RabbitMQ client close: %v", errs)
		}
	})
	return c.closeErr
}

// Publish marshals event to JSON and publishes it as a persistent message on
// the client's queue.
func (c *Client) Publish(event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("Published event", zap.ByteString("body", body))
	return nil
}

// Consume delivers messages from the queue to handler until the channel
// closes. Messages are acked when handler succeeds and requeued otherwise.
func (c *Client) Consume(handler func(msg amqp.Delivery) error) error {
	msgs, err := c.channel.Consume(
		c.queue, // queue
		"",      // consumer tag
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	for msg := range msgs {
		if err := handler(msg); err != nil {
			c.logger.Warn("Error processing message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(err))
			if nackErr := msg.Nack(false, true); nackErr != nil {
				c.logger.Error("Error nacking message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(nackErr))
			}
			continue
		}
		if ackErr := msg.Ack(false); ackErr != nil {
			c.logger.Error("Error acking message", zap.Uint64("delivery_tag", msg.DeliveryTag), zap.Error(ackErr))
		}
	}
	return nil
}
