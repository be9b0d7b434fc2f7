package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/eventt-hub/event-manager/internal/errdef"
	"github.com/eventt-hub/event-manager/pkg/model"
	"github.com/go-mail/mail"
	amqp "github.com/rabbitmq/amqp091-go"
)

type userFinder interface {
	FindById(ctx context.Context, id uint) (*model.User, error)
}

type eventFinder interface {
	FindById(ctx context.Context, id uint) (*model.Event, error)
}

type dailer interface {
	DialAndSend(m ...*mail.Message) error
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewJoinConsumer(channel *amqp.Channel, userFinder userFinder, eventFinder eventFinder, dailer dailer, from string, logger *slog.Logger) *joinConsumer {
	return &joinConsumer{
		channel:     channel,
		userFinder:  userFinder,
		eventFinder: eventFinder,
		dailer:      dailer,
		from:        from,
		logger:      logger,
	}
}

type joinConsumer struct {
	channel     *amqp.Channel
	userFinder  userFinder
	eventFinder eventFinder
	dailer      dailer
	from        string
	logger      *slog.Logger
}

// Consume starts delivering join messages to the consumer. Each message emails
// the joining user a confirmation. Messages for users or events that no longer
// exist are acknowledged and dropped.
func (c *joinConsumer) Consume() error {
	_, err := c.channel.QueueDeclare(joinQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue %q: %v", joinQueue, err)
	}

	deliveries, err := c.channel.Consume(joinQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue %q: %v", joinQueue, err)
	}

	go func() {
		for d := range deliveries {
			c.handle(d)
		}
	}()

	return nil
}

func (c *joinConsumer) handle(d amqp.Delivery) {
	ctx := context.Background()

	err := c.process(ctx, d.Body)
	if err != nil {
		if errdef.IsNotFound(err) {
			c.logger.InfoContext(ctx, "Dropping join notification", "error", err)
			if err := d.Ack(false); err != nil {
				c.logger.ErrorContext(ctx, "Failed to acknowledge dropped join message", "error", err)
			}
			return
		}

		c.logger.ErrorContext(ctx, "Failed to process join message", "error", err)
		if err := d.Nack(false, false); err != nil {
			c.logger.ErrorContext(ctx, "Failed to negatively acknowledge join message", "error", err)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		c.logger.ErrorContext(ctx, "Failed to acknowledge join message", "error", err)
	}
}

func (c *joinConsumer) process(ctx context.Context, body []byte) error {
	var message JoinMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return errdef.NewBadRequest("unreadable join message: %v", err)
	}

	user, err := c.userFinder.FindById(ctx, message.UserID)
	if err != nil {
		return err
	}

	event, err := c.eventFinder.FindById(ctx, message.EventID)
	if err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", fmt.Sprintf("You joined %s", event.EventTitle))
	content := fmt.Sprintf("Hello %s,<br/>you joined <b>%s</b> at %s on %s. See you there!",
		user.Name, event.EventTitle, event.Location, event.DateAndTime.Format("Mon, 02 Jan 2006 15:04"))
	m.SetBody("text/html", content)

	return c.dailer.DialAndSend(m)
}
