package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/pkg/ptr"
)

func TestIsActiveSlotViolation(t *testing.T) {
	assert.False(t, isActiveSlotViolation(nil))
	assert.False(t, isActiveSlotViolation(fmt.Errorf("plain error")))

	assert.True(t, isActiveSlotViolation(&pq.Error{Code: "23505", Constraint: ActiveSlotConstraint}))
	assert.True(t, isActiveSlotViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505", Constraint: ActiveSlotConstraint})))

	assert.False(t, isActiveSlotViolation(&pq.Error{Code: "23505", Constraint: "clients_document_number_key"}))
	assert.False(t, isActiveSlotViolation(&pq.Error{Code: "40001", Constraint: ActiveSlotConstraint}))
}

func TestApplyFilter(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	filter := domain.BookingFilter{
		Status: ptr.Ptr(domain.StatusConfirmed),
		Date:   &date,
	}

	query, args, err := applyFilter(detailsSelect(), filter).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "JOIN clients c ON c.id = b.client_id")
	assert.Contains(t, query, "b.status = $1")
	assert.Contains(t, query, "b.booking_date = $2")
	assert.Equal(t, []interface{}{"confirmed", "2025-10-15"}, args)
}

func TestApplyFilter_Empty(t *testing.T) {
	query, args, err := applyFilter(detailsSelect(), domain.BookingFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}
