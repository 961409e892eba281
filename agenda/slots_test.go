package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaySlotsClosedDay(t *testing.T) {
	slots := GenerateDaySlots(DaySchedule{IsOpen: false}, ScheduleSettings{
		ConsultationDurationMinutes: 30,
		PatientIntervalMinutes:      5,
	})
	assert.Empty(t, slots)
}

func TestGenerateDaySlotsMorningWindow(t *testing.T) {
	day := DaySchedule{IsOpen: true, StartTime: "08:00", EndTime: "12:00"}
	settings := ScheduleSettings{ConsultationDurationMinutes: 30, PatientIntervalMinutes: 5}

	slots := GenerateDaySlots(day, settings)

	// 11:30 still fits: its consultation ends exactly at closing time
	want := []string{"08:00", "08:35", "09:10", "09:45", "10:20", "10:55", "11:30"}
	require.Len(t, slots, len(want))
	for i, slot := range slots {
		assert.Equal(t, want[i], slot.Time)
		assert.Equal(t, 30, slot.DurationMinutes)
		assert.False(t, slot.ExcludedByLunch)
	}
}

func TestGenerateDaySlotsSpacingAndClosing(t *testing.T) {
	day := DaySchedule{IsOpen: true, StartTime: "09:00", EndTime: "17:30"}
	settings := ScheduleSettings{ConsultationDurationMinutes: 50, PatientIntervalMinutes: 10}

	slots := GenerateDaySlots(day, settings)
	require.NotEmpty(t, slots)

	end, _ := parseClock(day.EndTime)
	step := settings.ConsultationDurationMinutes + settings.PatientIntervalMinutes
	for i, slot := range slots {
		assert.LessOrEqual(t, slot.StartMinutes+slot.DurationMinutes, end,
			"slot %s overruns closing time", slot.Time)
		if i > 0 {
			assert.Equal(t, step, slot.StartMinutes-slots[i-1].StartMinutes)
		}
	}
}

func TestGenerateDaySlotsLunchOverlap(t *testing.T) {
	day := DaySchedule{IsOpen: true, StartTime: "08:00", EndTime: "15:00"}
	settings := ScheduleSettings{
		ConsultationDurationMinutes: 30,
		PatientIntervalMinutes:      15,
		LunchBreak:                  &LunchBreak{StartTime: "12:00", EndTime: "13:00"},
	}

	slots := GenerateDaySlots(day, settings)

	byTime := make(map[string]CandidateSlot, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot
	}

	// [11:45, 12:15) straddles the start of lunch
	require.Contains(t, byTime, "11:45")
	assert.True(t, byTime["11:45"].ExcludedByLunch)
	// [12:30, 13:00) sits inside lunch and is still emitted
	require.Contains(t, byTime, "12:30")
	assert.True(t, byTime["12:30"].ExcludedByLunch)
	// [13:15, 13:45) is clear of it
	require.Contains(t, byTime, "13:15")
	assert.False(t, byTime["13:15"].ExcludedByLunch)
	assert.False(t, byTime["08:00"].ExcludedByLunch)
}

func TestGenerateDaySlotsIdempotent(t *testing.T) {
	day := DaySchedule{IsOpen: true, StartTime: "08:00", EndTime: "18:00"}
	settings := ScheduleSettings{
		ConsultationDurationMinutes: 45,
		PatientIntervalMinutes:      0,
		LunchBreak:                  &LunchBreak{StartTime: "12:00", EndTime: "14:00"},
	}

	assert.Equal(t, GenerateDaySlots(day, settings), GenerateDaySlots(day, settings))
}

func TestGenerateDaySlotsDayConsumedByLunch(t *testing.T) {
	day := DaySchedule{IsOpen: true, StartTime: "12:00", EndTime: "13:00"}
	settings := ScheduleSettings{
		ConsultationDurationMinutes: 30,
		PatientIntervalMinutes:      0,
		LunchBreak:                  &LunchBreak{StartTime: "12:00", EndTime: "13:00"},
	}

	slots := GenerateDaySlots(day, settings)
	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.True(t, slot.ExcludedByLunch)
	}
}
