package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Slot is a one-hour time range label, e.g. "17:00 - 18:00"
type Slot string

// ErrUnknownSlot возвращается ParseSlot для слота вне расписания
var ErrUnknownSlot = errors.New("domain: unknown slot")

// Slots the fixed daily schedule, in order
var Slots = []Slot{
	"17:00 - 18:00",
	"18:00 - 19:00",
	"19:00 - 20:00",
	"20:00 - 21:00",
	"21:00 - 22:00",
	"22:00 - 23:00",
}

// IsValid returns true if the slot belongs to the schedule
func (s Slot) IsValid() bool {
	for _, slot := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

func (s Slot) String() string {
	return string(s)
}

// ParseSlot принимает метку слота из расписания.
// Допускаются лишние пробелы вокруг дефиса: "17:00-18:00".
func ParseSlot(s string) (Slot, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return "", ErrUnknownSlot
	}

	slot := Slot(strings.TrimSpace(parts[0]) + " - " + strings.TrimSpace(parts[1]))
	if !slot.IsValid() {
		return "", ErrUnknownSlot
	}
	return slot, nil
}

// SplitSlots делит расписание на свободные и занятые слоты.
// Метки вне расписания игнорируются, порядок соответствует Slots.
func SplitSlots(taken []Slot) (available, occupied []Slot) {
	takenSet := make(map[Slot]struct{}, len(taken))
	for _, slot := range taken {
		takenSet[slot] = struct{}{}
	}

	available = make([]Slot, 0, len(Slots))
	occupied = make([]Slot, 0, len(takenSet))
	for _, slot := range Slots {
		if _, ok := takenSet[slot]; ok {
			occupied = append(occupied, slot)
		} else {
			available = append(available, slot)
		}
	}
	return available, occupied
}

// SlotKey identifies a bookable unit: one court, one date, one slot
type SlotKey struct {
	CourtID int64
	Date    time.Time
	Slot    Slot
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%d|%s|%s", k.CourtID, k.Date.Format(DateFormat), k.Slot)
}
