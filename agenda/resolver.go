package agenda

import "time"

// ResolveAvailability turns the candidate slots of one day into the
// final TimeSlot list for a professional, in the order the generator
// produced them. A slot flagged for lunch always resolves to LunchBreak,
// regardless of bookings. Otherwise the slot is Booked when any of the
// professional's appointments starts within one consultation duration of
// the slot start; the proximity window (rather than exact equality)
// absorbs legacy bookings that were written off the current grid. An
// empty appointment list simply resolves every non-lunch slot to
// Available.
func ResolveAvailability(candidates []CandidateSlot, professionalID string, appointments []Appointment, forDate time.Time) []TimeSlot {
	midnight := time.Date(forDate.Year(), forDate.Month(), forDate.Day(), 0, 0, 0, 0, forDate.Location())
	date := midnight.Format("2006-01-02")

	slots := make([]TimeSlot, 0, len(candidates))
	for _, cand := range candidates {
		slot := TimeSlot{
			Date:            date,
			Time:            cand.Time,
			DurationMinutes: cand.DurationMinutes,
			Status:          StatusAvailable,
		}
		if cand.ExcludedByLunch {
			slot.Status = StatusLunchBreak
			slots = append(slots, slot)
			continue
		}
		slotStart := midnight.Add(time.Duration(cand.StartMinutes) * time.Minute)
		window := time.Duration(cand.DurationMinutes) * time.Minute
		for _, appt := range appointments {
			if appt.ProfessionalID != professionalID {
				continue
			}
			diff := appt.StartTime.Sub(slotStart)
			if diff < 0 {
				diff = -diff
			}
			if diff < window {
				slot.Status = StatusBooked
				slot.OccupantLabel = appt.PatientName
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots
}
