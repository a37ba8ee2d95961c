package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/domain/catalog"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

// memRepo backs the catalog, appointment and slug lookups in memory. Every
// lookup is scoped by profile id like the gorm repositories.
type memRepo struct {
	mu    sync.Mutex
	calls int

	profiles      map[string]*models.Profile
	services      map[uuid.UUID]models.Service
	professionals map[uuid.UUID]models.Professional
	appointments  map[uuid.UUID]models.Appointment
}

func newMemRepo() *memRepo {
	return &memRepo{
		profiles:      map[string]*models.Profile{},
		services:      map[uuid.UUID]models.Service{},
		professionals: map[uuid.UUID]models.Professional{},
		appointments:  map[uuid.UUID]models.Appointment{},
	}
}

func (m *memRepo) touch() {
	m.calls++
}

func (m *memRepo) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *memRepo) addProfile(slug string) *models.Profile {
	p := &models.Profile{ID: uuid.New(), Slug: slug, BarbershopName: slug}
	m.profiles[slug] = p
	return p
}

// -------- slug lookup --------

func (m *memRepo) GetProfileBySlug(_ context.Context, slug string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	p, ok := m.profiles[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

// -------- services --------

func (m *memRepo) ListServices(_ context.Context, profileID uuid.UUID, filter catalog.ListFilter) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	out := []models.Service{}
	for _, s := range m.services {
		if s.ProfileID != profileID {
			continue
		}
		if filter.Active != nil && s.IsActive != *filter.Active {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) GetService(_ context.Context, profileID, id uuid.UUID) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	s, ok := m.services[id]
	if !ok || s.ProfileID != profileID {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (m *memRepo) CreateService(_ context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	m.services[s.ID] = *s
	return nil
}

func (m *memRepo) UpdateService(_ context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	cur, ok := m.services[s.ID]
	if !ok || cur.ProfileID != s.ProfileID {
		return gorm.ErrRecordNotFound
	}
	m.services[s.ID] = *s
	return nil
}

func (m *memRepo) DeleteService(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	s, ok := m.services[id]
	if !ok || s.ProfileID != profileID {
		return gorm.ErrRecordNotFound
	}
	delete(m.services, id)
	return nil
}

// -------- professionals --------

func (m *memRepo) ListProfessionals(_ context.Context, profileID uuid.UUID, filter catalog.ListFilter) ([]models.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	out := []models.Professional{}
	for _, p := range m.professionals {
		if p.ProfileID != profileID {
			continue
		}
		if filter.Active != nil && p.IsActive != *filter.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) GetProfessional(_ context.Context, profileID, id uuid.UUID) (*models.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	p, ok := m.professionals[id]
	if !ok || p.ProfileID != profileID {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (m *memRepo) CreateProfessional(_ context.Context, p *models.Professional) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.professionals[p.ID] = *p
	return nil
}

func (m *memRepo) UpdateProfessional(_ context.Context, p *models.Professional) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	cur, ok := m.professionals[p.ID]
	if !ok || cur.ProfileID != p.ProfileID {
		return gorm.ErrRecordNotFound
	}
	m.professionals[p.ID] = *p
	return nil
}

func (m *memRepo) DeleteProfessional(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	p, ok := m.professionals[id]
	if !ok || p.ProfileID != profileID {
		return gorm.ErrRecordNotFound
	}
	delete(m.professionals, id)
	return nil
}

// -------- appointments --------

func (m *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	m.appointments[ap.ID] = *ap
	return nil
}

func (m *memRepo) GetAppointment(_ context.Context, profileID, id uuid.UUID) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	ap, ok := m.appointments[id]
	if !ok || ap.ProfileID != profileID {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (m *memRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	cur, ok := m.appointments[ap.ID]
	if !ok || cur.ProfileID != ap.ProfileID {
		return gorm.ErrRecordNotFound
	}
	m.appointments[ap.ID] = *ap
	return nil
}

func (m *memRepo) DeleteAppointment(_ context.Context, profileID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	ap, ok := m.appointments[id]
	if !ok || ap.ProfileID != profileID {
		return gorm.ErrRecordNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *memRepo) ListAppointments(_ context.Context, profileID uuid.UUID, filter domain.ListFilter) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	out := []models.Appointment{}
	for _, ap := range m.appointments {
		if ap.ProfileID != profileID {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate.String() != out[j].AppointmentDate.String() {
			return out[i].AppointmentDate.String() < out[j].AppointmentDate.String()
		}
		return out[i].AppointmentTime < out[j].AppointmentTime
	})
	return out, nil
}

func (m *memRepo) ListBookedTimes(_ context.Context, profileID, professionalID uuid.UUID, date time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch()

	day := date.Format("2006-01-02")
	var out []string
	for _, ap := range m.appointments {
		if ap.ProfileID != profileID || ap.ProfessionalID == nil || *ap.ProfessionalID != professionalID {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) || ap.AppointmentDate.String() != day {
			continue
		}
		out = append(out, ap.AppointmentTime)
	}
	return out, nil
}
