package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

type Kind string

const (
	KindNewAppointment       Kind = models.NotificationNewAppointment
	KindAppointmentCancelled Kind = models.NotificationAppointmentCancelled
)

type Event struct {
	Kind      Kind
	ProfileID uuid.UUID

	ClientName string
	Date       string
	Time       string
}

type Repository interface {
	CreateNotifications(ctx context.Context, items []models.Notification) error
	GetSettings(ctx context.Context, profileID uuid.UUID) (*models.BarbershopSettings, error)
	ListNotifications(ctx context.Context, profileID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, profileID, id uuid.UUID) error
}

// Publisher is what use cases depend on to raise booking notifications.
type Publisher interface {
	Publish(ev Event)
}

func title(k Kind) string {
	switch k {
	case KindAppointmentCancelled:
		return "Agendamento cancelado"
	default:
		return "Novo agendamento"
	}
}

func message(ev Event) string {
	switch ev.Kind {
	case KindAppointmentCancelled:
		return fmt.Sprintf("%s cancelou o horário de %s às %s.", ev.ClientName, ev.Date, ev.Time)
	default:
		return fmt.Sprintf("%s agendou um horário para %s às %s.", ev.ClientName, ev.Date, ev.Time)
	}
}

// Build returns the rows recorded for ev: always the in-app notification,
// plus one queued row per delivery channel the tenant has switched on.
// A nil settings row only yields the in-app one.
func Build(ev Event, settings *models.BarbershopSettings) []models.Notification {
	t, msg := title(ev.Kind), message(ev)

	out := []models.Notification{{
		ProfileID: ev.ProfileID,
		Type:      string(ev.Kind),
		Title:     t,
		Message:   msg,
	}}

	if settings == nil {
		return out
	}

	if settings.EmailNotifications {
		out = append(out, models.Notification{
			ProfileID: ev.ProfileID,
			Type:      models.NotificationEmail,
			Title:     t,
			Message:   msg,
		})
	}
	if settings.WhatsappNotifications && settings.WhatsappNumber != "" {
		out = append(out, models.Notification{
			ProfileID: ev.ProfileID,
			Type:      models.NotificationWhatsapp,
			Title:     t,
			Message:   msg,
		})
	}

	return out
}
