package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
)

func TestApplyTransitions(t *testing.T) {
	cases := []struct {
		from   Status
		action Action
		want   Status
		ok     bool
	}{
		{StatusScheduled, ActionConfirm, StatusConfirmed, true},
		{StatusConfirmed, ActionConfirm, StatusConfirmed, false},
		{StatusScheduled, ActionComplete, StatusCompleted, true},
		{StatusConfirmed, ActionComplete, StatusCompleted, true},
		{StatusConfirmed, ActionCancel, StatusCancelled, true},
		{StatusCancelled, ActionCancel, StatusCancelled, false},
		{StatusCompleted, ActionNoShow, StatusCompleted, false},
		{StatusScheduled, ActionNoShow, StatusNoShow, true},
	}

	for _, tc := range cases {
		ap := &models.Appointment{Status: string(tc.from)}
		err := Apply(ap, tc.action)

		if tc.ok {
			require.NoError(t, err, "%s -> %s", tc.from, tc.action)
			assert.Equal(t, string(tc.want), ap.Status)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", tc.from, tc.action)
			assert.Equal(t, string(tc.from), ap.Status)
		}
	}
}

func TestApplyUnknownAction(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	assert.True(t, httperr.IsBusiness(Apply(ap, "archive"), "invalid_action"))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusNoShow.Valid())
	assert.False(t, Status("pending").Valid())
}

func TestActionTo(t *testing.T) {
	for _, target := range []Status{StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		action, ok := ActionTo(target)
		require.True(t, ok, target)

		ap := &models.Appointment{Status: string(StatusScheduled)}
		require.NoError(t, Apply(ap, action))
		assert.Equal(t, string(target), ap.Status)
	}

	_, ok := ActionTo(StatusScheduled)
	assert.False(t, ok)
}
