package notification

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const joinQueue = "event-joined"

// JoinMessage is published whenever a user joins an event.
type JoinMessage struct {
	UserID  uint `json:"userId"`
	EventID uint `json:"eventId"`
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewPublisher(connection *amqp.Connection) (*publisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	_, err = channel.QueueDeclare(joinQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue %q: %v", joinQueue, err)
	}

	return &publisher{channel}, nil
}

type publisher struct {
	channel *amqp.Channel
}

func (p publisher) PublishJoin(ctx context.Context, userID, eventID uint) error {
	body, err := json.Marshal(JoinMessage{UserID: userID, EventID: eventID})
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx, "", joinQueue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
}
