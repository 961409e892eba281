// Package agenda computes bookable appointment slots for a professional
// from the free-text weekly hours field kept on their profile. It is a
// pure in-process library: parse the text, generate the day's candidate
// slots, resolve them against existing appointments. No stage touches
// the database or keeps state between calls.
package agenda

import "time"

// SlotStatus is the resolved state of a single time slot.
type SlotStatus string

const (
	StatusAvailable   SlotStatus = "available"
	StatusBooked      SlotStatus = "booked"
	StatusLunchBreak  SlotStatus = "lunch_break"
	StatusUnavailable SlotStatus = "unavailable"
)

// Default timing settings applied when the schedule text does not set them.
const (
	DefaultConsultationMinutes    = 30
	DefaultPatientIntervalMinutes = 5
)

// Weekdays lists the canonical weekday keys of a WeeklySchedule, in week
// order, as the clinic operators write them.
var Weekdays = []string{
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
	"Domingo",
}

// WeekdayName maps a time.Weekday to the canonical key used in a
// WeeklySchedule.
func WeekdayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "Segunda-feira"
	case time.Tuesday:
		return "Terça-feira"
	case time.Wednesday:
		return "Quarta-feira"
	case time.Thursday:
		return "Quinta-feira"
	case time.Friday:
		return "Sexta-feira"
	case time.Saturday:
		return "Sábado"
	default:
		return "Domingo"
	}
}

// DaySchedule is one weekday's attendance window. StartTime and EndTime
// are wall-clock "HH:MM" strings and are only meaningful when IsOpen.
// When IsOpen, StartTime < EndTime.
type DaySchedule struct {
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// WeeklySchedule maps every weekday in Weekdays to its DaySchedule. All
// seven keys are always present.
type WeeklySchedule map[string]DaySchedule

// LunchBreak is a daily time range during which no slot is bookable.
type LunchBreak struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleSettings are the timing parameters shared by every day of one
// professional's schedule. LunchBreak nil means no lunch exclusion.
type ScheduleSettings struct {
	ConsultationDurationMinutes int         `json:"consultationDurationMinutes"`
	PatientIntervalMinutes      int         `json:"patientIntervalMinutes"`
	LunchBreak                  *LunchBreak `json:"lunchBreak,omitempty"`
}

// CandidateSlot is one slot start emitted by GenerateDaySlots, before
// booking resolution. StartMinutes is minutes since midnight; Time is
// the same instant formatted "HH:MM".
type CandidateSlot struct {
	StartMinutes    int
	Time            string
	DurationMinutes int
	ExcludedByLunch bool
}

// TimeSlot is one resolved slot as returned to callers. OccupantLabel is
// set only for booked slots, and only once, during resolution.
type TimeSlot struct {
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          SlotStatus `json:"status"`
	OccupantLabel   string     `json:"occupantLabel,omitempty"`
}

// Appointment is the read-only view of an existing booking used for
// overlap checks. PatientName may be empty when the caller has no label
// to show.
type Appointment struct {
	ProfessionalID string
	StartTime      time.Time
	PatientName    string
}

func emptyWeek() WeeklySchedule {
	week := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = DaySchedule{IsOpen: false}
	}
	return week
}
