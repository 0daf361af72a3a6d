package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDDL_ContainsActiveSlotIndex(t *testing.T) {
	ddl := DDL()

	assert.Contains(t, ddl, "CREATE UNIQUE INDEX IF NOT EXISTS bookings_active_slot_key")
	assert.Contains(t, ddl, "WHERE status IN ('pending', 'confirmed')")
	assert.Contains(t, ddl, "document_number VARCHAR(20)  NOT NULL UNIQUE")
}
