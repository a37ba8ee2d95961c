package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

// dryRunDB builds statements against the postgres dialect without a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return db
}

func TestUpdateProfileLeavesSubscriptionAlone(t *testing.T) {
	ends := time.Now().Add(24 * time.Hour)
	p := &models.Profile{
		ID:                 uuid.New(),
		BarbershopName:     "Barbearia do Zé",
		OwnerName:          "Zé",
		Email:              "ze@example.com",
		Slug:               "barbearia-do-ze",
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionTrial,
		TrialEndsAt:        &ends,
	}

	stmt := updateProfile(dryRunDB(t), p).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, `"barbershop_name"`)
	assert.Contains(t, sql, `"slug"`)
	for _, col := range profileReadOnlyColumns {
		assert.NotContains(t, sql, `"`+col+`"`, col)
	}
}
