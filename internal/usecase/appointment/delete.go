package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/appointment"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteAppointment(repo domain.Repository, audit audit.Recorder) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, profileID, appointmentID uuid.UUID) error {
	if err := uc.repo.DeleteAppointment(ctx, profileID, appointmentID); err != nil {
		return httperr.NotFoundAs(err, "appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "appointment_deleted",
		Entity:    "appointment",
		EntityID:  &appointmentID,
	})
	return nil
}
