package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/dto"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	profileID uuid.UUID,
	filter domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	if filter.Status != "" && !domain.Status(filter.Status).Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	appointments, err := uc.repo.ListAppointments(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAppointmentListDTO(ap))
	}

	return out, nil
}
