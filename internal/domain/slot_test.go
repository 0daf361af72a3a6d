package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot("17:00 - 18:00")
	require.NoError(t, err)
	assert.Equal(t, Slot("17:00 - 18:00"), slot)

	slot, err = ParseSlot(" 22:00-23:00 ")
	require.NoError(t, err)
	assert.Equal(t, Slot("22:00 - 23:00"), slot)

	for _, bad := range []string{"", "16:00 - 17:00", "17:00", "17:00 - 18:00 - 19:00"} {
		_, err := ParseSlot(bad)
		assert.ErrorIs(t, err, ErrUnknownSlot, bad)
	}
}

func TestSplitSlots_PartitionsSchedule(t *testing.T) {
	cases := [][]Slot{
		nil,
		{"19:00 - 20:00"},
		{"22:00 - 23:00", "17:00 - 18:00", "17:00 - 18:00"},
		{"09:00 - 10:00"},
		Slots,
	}

	for _, taken := range cases {
		available, occupied := SplitSlots(taken)

		seen := make(map[Slot]int)
		for _, s := range available {
			seen[s]++
		}
		for _, s := range occupied {
			seen[s]++
		}

		assert.Len(t, seen, len(Slots))
		for _, s := range Slots {
			assert.Equal(t, 1, seen[s], "slot %s must appear exactly once", s)
		}
	}
}

func TestSplitSlots_KeepsScheduleOrder(t *testing.T) {
	available, occupied := SplitSlots([]Slot{"21:00 - 22:00", "18:00 - 19:00"})

	assert.Equal(t, []Slot{"18:00 - 19:00", "21:00 - 22:00"}, occupied)
	assert.Equal(t, []Slot{"17:00 - 18:00", "19:00 - 20:00", "20:00 - 21:00", "22:00 - 23:00"}, available)
}

func TestSlotKey_String(t *testing.T) {
	key := SlotKey{CourtID: 3, Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Slot: Slots[0]}
	assert.Equal(t, "3|2025-10-15|17:00 - 18:00", key.String())
}
