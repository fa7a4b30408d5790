package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"guestpass/config"
	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/constants"
	"guestpass/internal/domain/service"
	"guestpass/internal/errors"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PubSubMessage is the push envelope. Data is base64 in JSON, which
// encoding/json decodes straight into the byte slice.
type PubSubMessage struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription    string `json:"subscription"`
	DeliveryAttempt int    `json:"deliveryAttempt,omitempty"`
}

// PushHandler receives access events pushed by Pub/Sub.
type PushHandler struct {
	auth          *pushAuthenticator
	logger        *slog.Logger
	accessEventUC usecase.AccessEventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	AccessEventUC usecase.AccessEventUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		auth:          newPushAuthenticator(params.Config),
		logger:        params.Logger,
		accessEventUC: params.AccessEventUC,
	}
}

// HandlePush acknowledges with 200 once an event is stored or can never be
// stored, and answers 503 so Pub/Sub redelivers after a storage failure.
// Undecodable envelopes get 400.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.auth != nil {
		if err := h.auth.authenticate(req); err != nil {
			h.logger.Warn("[Worker] rejected push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	push, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] undecodable push", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := requestIDOf(req.Context(), push, event)
	logger := h.logger.With(
		slog.String(constants.AttrRequestID, requestID),
		slog.String("event_id", event.EventID),
		slog.String(constants.AttrEventType, event.Type),
		slog.String("message_id", push.Message.MessageID),
	)
	if push.DeliveryAttempt > 1 {
		logger = logger.With(slog.Int("delivery_attempt", push.DeliveryAttempt))
	}

	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), logger)

	switch err := h.accessEventUC.Record(ctx, event); {
	case err == nil:
		logger.Debug("[Worker] access event recorded")
	case errors.Is(err, usecase.ErrMalformedEvent):
		logger.Warn("[Worker] dropping malformed access event", slog.Any("error", err))
	default:
		logger.Error("[Worker] access event not recorded, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*PubSubMessage, *service.AccessEventMessage, error) {
	var push PubSubMessage
	if err := c.Bind(&push); err != nil {
		return nil, nil, errors.Wrap(err, "bind envelope")
	}

	var event service.AccessEventMessage
	if err := json.Unmarshal(push.Message.Data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "unmarshal access event")
	}

	return &push, &event, nil
}

// requestIDOf prefers message attributes, then the event payload, then the
// push request itself.
func requestIDOf(ctx context.Context, push *PubSubMessage, event *service.AccessEventMessage) string {
	for _, id := range []string{
		push.Message.Attributes[constants.AttrRequestID],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}
