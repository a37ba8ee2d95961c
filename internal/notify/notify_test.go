package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

func TestBuildHonoursChannelToggles(t *testing.T) {
	ev := Event{Kind: KindNewAppointment, ProfileID: uuid.New(), ClientName: "Ana", Date: "2025-05-10", Time: "10:30"}

	rows := Build(ev, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, models.NotificationNewAppointment, rows[0].Type)
	assert.Contains(t, rows[0].Message, "Ana")
	assert.Contains(t, rows[0].Message, "10:30")

	settings := &models.BarbershopSettings{EmailNotifications: true, WhatsappNotifications: true, WhatsappNumber: "+5511999999999"}
	rows = Build(ev, settings)
	require.Len(t, rows, 3)
	assert.Equal(t, models.NotificationEmail, rows[1].Type)
	assert.Equal(t, models.NotificationWhatsapp, rows[2].Type)

	settings.WhatsappNumber = ""
	settings.EmailNotifications = false
	assert.Len(t, Build(ev, settings), 1)
}

type memRepo struct {
	mu       sync.Mutex
	settings map[uuid.UUID]*models.BarbershopSettings
	rows     []models.Notification
}

func (m *memRepo) CreateNotifications(_ context.Context, items []models.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, items...)
	return nil
}

func (m *memRepo) GetSettings(_ context.Context, id uuid.UUID) (*models.BarbershopSettings, error) {
	if s, ok := m.settings[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) ListNotifications(context.Context, uuid.UUID, bool, int) ([]models.Notification, error) {
	return m.rows, nil
}

func (m *memRepo) MarkRead(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func TestDispatcherRecordsRows(t *testing.T) {
	withSettings := uuid.New()
	repo := &memRepo{settings: map[uuid.UUID]*models.BarbershopSettings{
		withSettings: {EmailNotifications: true},
	}}

	d := NewDispatcher(repo, zap.NewNop())
	d.Publish(Event{Kind: KindAppointmentCancelled, ProfileID: withSettings, ClientName: "João"})
	d.Publish(Event{Kind: KindNewAppointment, ProfileID: uuid.New(), ClientName: "Bia"})
	d.Close()

	require.Len(t, repo.rows, 3)
	assert.Equal(t, models.NotificationAppointmentCancelled, repo.rows[0].Type)
	assert.Equal(t, "Agendamento cancelado", repo.rows[0].Title)
	assert.Equal(t, models.NotificationEmail, repo.rows[1].Type)
	assert.Equal(t, models.NotificationNewAppointment, repo.rows[2].Type)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	repo := &memRepo{}
	d := NewDispatcher(repo, zap.NewNop())
	d.Close()

	assert.NotPanics(t, func() {
		d.Publish(Event{Kind: KindNewAppointment, ProfileID: uuid.New()})
	})
	assert.Empty(t, repo.rows)
}
