package httperr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrBusiness("service_not_found"))

	assert.True(t, IsBusiness(err, "service_not_found"))
	assert.False(t, IsBusiness(err, "invalid_state"))
	assert.False(t, IsBusiness(fmt.Errorf("plain"), "service_not_found"))
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_profiles_slug"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "idx_profiles_slug"))
	assert.False(t, IsUniqueViolation(err, "idx_profiles_email"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
}

func TestNotFoundAs(t *testing.T) {
	err := NotFoundAs(fmt.Errorf("get: %w", gorm.ErrRecordNotFound), "service_not_found")
	assert.True(t, IsBusiness(err, "service_not_found"))

	other := fmt.Errorf("boom")
	assert.Equal(t, other, NotFoundAs(other, "service_not_found"))
	assert.Nil(t, NotFoundAs(nil, "service_not_found"))
}
