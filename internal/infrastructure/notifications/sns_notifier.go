package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/infrastructure/database"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
)

var ErrMissingTopicARN = errors.New("missing NOTIFICATIONS_TOPIC_ARN")

// SNSNotifier publishes back-office events to an SNS topic. Delivery is
// best-effort: callers log publish errors and keep the committed state.
//
// Env vars:
//   - NOTIFICATIONS_TOPIC_ARN (required)
//   - SNS_ENDPOINT (optional, for local stacks)

type SNSNotifier struct {
	client   *sns.Client
	topicARN string
}

var _ interfaces.INotifier = (*SNSNotifier)(nil)

func NewSNSNotifier(ctx context.Context) (*SNSNotifier, error) {
	topicARN := strings.TrimSpace(os.Getenv("NOTIFICATIONS_TOPIC_ARN"))
	if topicARN == "" {
		return nil, ErrMissingTopicARN
	}

	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}

	var client *sns.Client
	if endpoint := os.Getenv("SNS_ENDPOINT"); endpoint != "" {
		client = sns.NewFromConfig(cfg, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	} else {
		client = sns.NewFromConfig(cfg)
	}

	return &SNSNotifier{client: client, topicARN: topicARN}, nil
}

type event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func (n *SNSNotifier) PublishVehicleAdded(ctx context.Context, v entities.Vehicle) error {
	return n.publish(ctx, "vehicle.added", map[string]any{
		"vehicle_id": v.ID,
		"number":     v.Number,
		"brand":      v.Brand,
		"model":      v.Model,
	})
}

func (n *SNSNotifier) PublishSaleOpened(ctx context.Context, s entities.Sale) error {
	return n.publish(ctx, "sale.opened", map[string]any{
		"sale_id":    s.ID,
		"vehicle_id": s.VehicleID,
		"number":     s.Snapshot.Number,
		"customer":   s.Customer.Name,
	})
}

func (n *SNSNotifier) publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(eventType),
		Message:  aws.String(string(body)),
	})
	if err != nil {
		return err
	}

	log.Printf("[notifications][sns] published type=%s", eventType)
	return nil
}
