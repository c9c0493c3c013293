package website

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/ports"
	"exportpro/internal/pkg/errs"
)

var _ ports.WebsiteGateway = &KafkaGateway{}

const publishTimeout = 5 * time.Second

// KafkaGateway publishes storefront sync events to a Kafka topic. The
// storefront consumes them to refresh its catalog and order pages.
type KafkaGateway struct {
	writer *kafka.Writer
}

func NewKafkaGateway(brokers []string, topic string) (*KafkaGateway, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	return &KafkaGateway{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}, nil
}

type orderCreatedEvent struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Company     string    `json:"company"`
	TotalValue  string    `json:"total_value"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type inventoryChangeEvent struct {
	Event       string               `json:"event"`
	OrderID     string               `json:"order_id"`
	OrderNumber string               `json:"order_number"`
	Items       []inventoryLineEvent `json:"items"`
	OccurredAt  time.Time            `json:"occurred_at"`
}

type inventoryLineEvent struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

func (g *KafkaGateway) NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error {
	details := aggregate.Details()
	event := orderCreatedEvent{
		Event:       "order_created",
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.Number().String(),
		Company:     aggregate.Client().CompanyName(),
		TotalValue:  details.TotalValue().String(),
		Currency:    details.Currency(),
		OccurredAt:  time.Now().UTC(),
	}
	return g.publish(ctx, aggregate.Number().String(), event)
}

func (g *KafkaGateway) NotifyInventoryChange(ctx context.Context, aggregate *order.Order) error {
	items := aggregate.Items()
	lines := make([]inventoryLineEvent, 0, len(items))
	for _, item := range items {
		lines = append(lines, inventoryLineEvent{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}
	event := inventoryChangeEvent{
		Event:       "inventory_change",
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.Number().String(),
		Items:       lines,
		OccurredAt:  time.Now().UTC(),
	}
	return g.publish(ctx, aggregate.Number().String(), event)
}

func (g *KafkaGateway) publish(ctx context.Context, key string, event any) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (g *KafkaGateway) Close() error {
	return g.writer.Close()
}
