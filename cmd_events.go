package main

import (
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"teslo/internal/models"
)

// teslo events
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Tail the product event queue and log every event",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := boot()
		if err != nil {
			return err
		}
		defer shutdown(c)

		if c.Events == nil {
			return errors.New("RABBITMQ_URL is not configured")
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)
		go func() {
			<-quit
			c.Logger.Info("Stopping event consumer...")
			// Closing the channel ends Consume.
			_ = c.Events.Close()
		}()

		c.Logger.Info("Waiting for product events")
		return c.Events.Consume(logProductEvent(c.Logger))
	},
}

// logProductEvent logs each delivery as a product event. Undecodable messages
// are logged and acked so they are not redelivered forever.
func logProductEvent(logger *zap.Logger) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		var event models.ProductEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			logger.Warn("Dropping malformed product event",
				zap.Uint64("delivery_tag", msg.DeliveryTag),
				zap.ByteString("body", msg.Body),
				zap.Error(err),
			)
			return nil
		}
		logger.Info("Product event",
			zap.String("type", event.Type),
			zap.String("product_id", event.ProductID),
			zap.String("slug", event.Slug),
			zap.Time("occurred_at", event.OccurredAt),
		)
		return nil
	}
}
