package agenda

import "fmt"

// GenerateDaySlots produces the ordered candidate slot starts for one
// day. All arithmetic is integer minutes since midnight; "HH:MM" strings
// exist only at the boundary. A closed day yields no slots. The last
// slot emitted is the latest one whose full consultation still fits
// before closing time (ending exactly at closing time counts as fitting).
//
// Slots overlapping the lunch break are flagged, not dropped, so callers
// can render them as lunch instead of silently omitting a time.
func GenerateDaySlots(day DaySchedule, settings ScheduleSettings) []CandidateSlot {
	if !day.IsOpen {
		return nil
	}
	start, okStart := parseClock(day.StartTime)
	end, okEnd := parseClock(day.EndTime)
	if !okStart || !okEnd || start >= end {
		return nil
	}

	duration := settings.ConsultationDurationMinutes
	if duration <= 0 {
		duration = DefaultConsultationMinutes
	}
	interval := settings.PatientIntervalMinutes
	if interval < 0 {
		interval = 0
	}
	step := duration + interval

	lunchStart, lunchEnd := -1, -1
	if lb := settings.LunchBreak; lb != nil {
		if s, ok := parseClock(lb.StartTime); ok {
			if e, ok := parseClock(lb.EndTime); ok && s < e {
				lunchStart, lunchEnd = s, e
			}
		}
	}

	var slots []CandidateSlot
	for t := start; t+duration <= end; t += step {
		slots = append(slots, CandidateSlot{
			StartMinutes:    t,
			Time:            formatClock(t),
			DurationMinutes: duration,
			ExcludedByLunch: lunchStart >= 0 && t < lunchEnd && t+duration > lunchStart,
		})
	}
	return slots
}

// parseClock converts a zero-padded "HH:MM" string to minutes since
// midnight.
func parseClock(clock string) (int, bool) {
	var hour, min int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &min); err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
