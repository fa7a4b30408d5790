package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"guestpass/config"
	deliverycontext "guestpass/internal/delivery/context"
	"guestpass/internal/domain/entity"
	"guestpass/internal/domain/repository"
	"guestpass/internal/domain/service"
	"guestpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessEventService implements the AccessEventUsecase interface.
type accessEventService struct {
	eventRepo       repository.AccessEventRepository
	guestRepo       repository.GuestRepository
	notificationSvc service.NotificationService
	hostAlertTopic  string
	logger          *slog.Logger
	now             func() time.Time
}

// AccessEventServiceParams holds dependencies for AccessEventService, injected by Fx.
type AccessEventServiceParams struct {
	fx.In

	EventRepo       repository.AccessEventRepository
	GuestRepo       repository.GuestRepository
	NotificationSvc service.NotificationService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAccessEventService is the constructor for accessEventService.
func NewAccessEventService(params AccessEventServiceParams) usecase.AccessEventUsecase {
	topic := ""
	if params.Config != nil && params.Config.Firebase != nil {
		topic = params.Config.Firebase.HostAlertTopic
	}

	return &accessEventService{
		eventRepo:       params.EventRepo,
		guestRepo:       params.GuestRepo,
		notificationSvc: params.NotificationSvc,
		hostAlertTopic:  topic,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *accessEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record stores the event and sends a host alert for exhausted quotas.
func (srv *accessEventService) Record(ctx context.Context, msg *service.AccessEventMessage) error {
	event, err := srv.toEntity(msg)
	if err != nil {
		return err
	}
	if event == nil {
		// token_invalid carries no guest to attach the event to
		srv.log(ctx).Debug("Skipping access event without guest", slog.String("type", msg.Type))

		return nil
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return errors.Wrap(err, "failed to store access event")
	}

	if event.Type == entity.AccessEventDeviceLimitReached {
		srv.alertHost(ctx, event)
	}

	return nil
}

func (srv *accessEventService) toEntity(msg *service.AccessEventMessage) (*entity.AccessEvent, error) {
	eventType := entity.AccessEventType(msg.Type)
	if !eventType.IsValid() {
		return nil, errors.Wrapf(usecase.ErrMalformedEvent, "unknown type %q", msg.Type)
	}

	if msg.GuestID == "" {
		return nil, nil //nolint:nilnil
	}

	guestID, err := uuid.Parse(msg.GuestID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrMalformedEvent, "guest id %q", msg.GuestID)
	}

	eventID, err := uuid.Parse(msg.EventID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrMalformedEvent, "event id %q", msg.EventID)
	}

	occurredAt := msg.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = srv.now()
	}

	return &entity.AccessEvent{
		ID:          eventID,
		GuestID:     guestID,
		Type:        eventType,
		Fingerprint: msg.Fingerprint,
		Detail:      msg.Detail,
		RequestID:   msg.RequestID,
		OccurredAt:  occurredAt.UTC(),
	}, nil
}

// alertHost is best-effort: failures are logged and never trigger redelivery.
func (srv *accessEventService) alertHost(ctx context.Context, event *entity.AccessEvent) {
	if srv.hostAlertTopic == "" {
		return
	}

	name := event.GuestID.String()
	if guest, err := srv.guestRepo.FindByID(ctx, event.GuestID); err == nil {
		name = guest.Name
	} else {
		srv.log(ctx).Warn("Failed to load guest for host alert", slog.Any("error", err))
	}

	title := "邀請裝置數已達上限"
	body := fmt.Sprintf("%s 的邀請連結已達可使用裝置上限，有新裝置嘗試開啟", name)
	data := map[string]string{
		"guest_id": event.GuestID.String(),
		"event_id": event.ID.String(),
		"type":     string(event.Type),
	}

	if err := srv.notificationSvc.SendTopicNotification(ctx, srv.hostAlertTopic, title, body, data); err != nil {
		srv.log(ctx).Error("Failed to send host alert",
			slog.String("guest_id", event.GuestID.String()),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Host alerted", slog.String("guest_id", event.GuestID.String()))
}
