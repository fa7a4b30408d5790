package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/constants"
	"guestpass/internal/domain/service"
	"guestpass/internal/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/access-events-push"
	localMaxAttempts    = 3
	localRetryBaseDelay = 200 * time.Millisecond
)

// PubSubPushMessage is the body Pub/Sub push subscriptions deliver.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher pushes events straight to the access worker. Like a push
// subscription it redelivers on 5xx answers and transport errors; any other
// answer acknowledges the message.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	retryDelay time.Duration
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryDelay: localRetryBaseDelay,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishAccessEvent(ctx context.Context, event *service.AccessEventMessage) error {
	body, err := pushBody(event)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "publish access event")
			case <-time.After(p.retryDelay * time.Duration(attempt-1)):
			}
		}

		redeliver, err := p.push(ctx, event, body)
		if err == nil {
			p.logger.Debug("Access event pushed to worker",
				slog.String("event_id", event.EventID),
				slog.String(constants.AttrEventType, event.Type),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if !redeliver {
			return err
		}
		lastErr = err
	}

	return errors.Wrapf(lastErr, "gave up after %d attempts", localMaxAttempts)
}

func pushBody(event *service.AccessEventMessage) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var msg PubSubPushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	msg.Message.Attributes = messageAttributes(event)

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

// push reports whether a failed delivery should be retried.
func (p *localHTTPPublisher) push(ctx context.Context, event *service.AccessEventMessage, body []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return true, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return true, errors.Errorf("worker returned status %d", resp.StatusCode)
	case resp.StatusCode >= 300:
		return false, errors.Errorf("worker returned status %d", resp.StatusCode)
	}

	return false, nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
