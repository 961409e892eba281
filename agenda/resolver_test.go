package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateAt(clock string, duration int) CandidateSlot {
	mins, ok := parseClock(clock)
	if !ok {
		panic("bad clock in test: " + clock)
	}
	return CandidateSlot{StartMinutes: mins, Time: clock, DurationMinutes: duration}
}

func TestResolveAvailabilityProximityMatch(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	candidates := []CandidateSlot{
		candidateAt("14:00", 30),
		candidateAt("14:35", 30),
	}
	appointments := []Appointment{
		{
			ProfessionalID: "prof-1",
			StartTime:      time.Date(2026, 3, 2, 14, 2, 0, 0, time.Local),
			PatientName:    "Ana Souza",
		},
	}

	slots := ResolveAvailability(candidates, "prof-1", appointments, day)
	require.Len(t, slots, 2)

	// 14:02 lands inside the 14:00 slot's window even though it is off grid
	assert.Equal(t, StatusBooked, slots[0].Status)
	assert.Equal(t, "Ana Souza", slots[0].OccupantLabel)
	// 14:35 is a full consultation away from 14:02
	assert.Equal(t, StatusAvailable, slots[1].Status)
	assert.Empty(t, slots[1].OccupantLabel)
}

func TestResolveAvailabilityLunchWinsOverBooking(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	lunch := candidateAt("12:00", 30)
	lunch.ExcludedByLunch = true
	appointments := []Appointment{
		{ProfessionalID: "prof-1", StartTime: time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local), PatientName: "Bruno Lima"},
	}

	slots := ResolveAvailability([]CandidateSlot{lunch}, "prof-1", appointments, day)
	require.Len(t, slots, 1)
	assert.Equal(t, StatusLunchBreak, slots[0].Status)
	assert.Empty(t, slots[0].OccupantLabel)
}

func TestResolveAvailabilityIgnoresOtherProfessionals(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	appointments := []Appointment{
		{ProfessionalID: "prof-2", StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)},
	}

	slots := ResolveAvailability([]CandidateSlot{candidateAt("10:00", 30)}, "prof-1", appointments, day)
	require.Len(t, slots, 1)
	assert.Equal(t, StatusAvailable, slots[0].Status)
}

func TestResolveAvailabilityNoAppointments(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	candidates := []CandidateSlot{
		candidateAt("08:00", 30),
		candidateAt("08:35", 30),
		candidateAt("09:10", 30),
	}

	slots := ResolveAvailability(candidates, "prof-1", nil, day)
	require.Len(t, slots, 3)
	for i, slot := range slots {
		assert.Equal(t, StatusAvailable, slot.Status)
		assert.Equal(t, candidates[i].Time, slot.Time, "order must follow the generator")
		assert.Equal(t, "2026-03-02", slot.Date)
	}
}

// Full pipeline: text in, resolved day out.
func TestParseGenerateResolve(t *testing.T) {
	raw := `Duração da consulta: 30 minutos
Intervalo entre pacientes: 5 minutos
Intervalo de almoço: 12:00 às 13:00
Segunda-feira: 08:00 às 14:00`

	week, settings := ParseScheduleText(raw)
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	candidates := GenerateDaySlots(week[WeekdayName(monday.Weekday())], settings)

	appointments := []Appointment{
		{ProfessionalID: "prof-1", StartTime: time.Date(2026, 3, 2, 8, 35, 0, 0, time.Local), PatientName: "Carla Dias"},
	}
	slots := ResolveAvailability(candidates, "prof-1", appointments, monday)
	require.NotEmpty(t, slots)

	statuses := make(map[string]SlotStatus, len(slots))
	for _, slot := range slots {
		statuses[slot.Time] = slot.Status
	}
	assert.Equal(t, StatusAvailable, statuses["08:00"])
	assert.Equal(t, StatusBooked, statuses["08:35"])
	// 11:30 ends exactly when lunch begins, so it stays bookable
	assert.Equal(t, StatusAvailable, statuses["11:30"])
	assert.Equal(t, StatusLunchBreak, statuses["12:05"])
	assert.Equal(t, StatusLunchBreak, statuses["12:40"])
	assert.Equal(t, StatusAvailable, statuses["13:15"])
}
