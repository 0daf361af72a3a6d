package courts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

func TestEntriesRoundTrip(t *testing.T) {
	courts := []*domain.Court{
		{ID: 1, Name: "Cancha 1", Kind: "Fútbol 5vs5", HourlyPrice: 70000, IsActive: true},
		{ID: 4, Name: "Cancha 4", Kind: "Fútbol 6vs6 VIP", HourlyPrice: 140000, IsActive: true},
	}

	assert.Equal(t, courts, toDomain(fromDomain(courts)))
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "courts:active", NewCache(nil, "", time.Minute).key())
	assert.Equal(t, "prod:courts:active", NewCache(nil, "prod", time.Minute).key())
}
