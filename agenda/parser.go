package agenda

import (
	"regexp"
	"strconv"
	"strings"
)

// The schedule text is typed by clinic staff into a plain textarea, so
// parsing is best effort: lines that match nothing are skipped and never
// abort the parse. Matching is case and accent insensitive.
var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
	"ç", "c",
)

var (
	minutesPattern = regexp.MustCompile(`(\d+)\s*min`)
	// two clock times joined by a connector: "8 as 12", "08:00 às 12:30",
	// "09:00 - 18:00", "13 ate 17"
	timeRangePattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(?:as|ate|a|-|–)\s*(\d{1,2})(?::(\d{2}))?`)
)

var weekdayKeys = map[string]string{
	"segunda": "Segunda-feira",
	"terca":   "Terça-feira",
	"quarta":  "Quarta-feira",
	"quinta":  "Quinta-feira",
	"sexta":   "Sexta-feira",
	"sabado":  "Sábado",
	"domingo": "Domingo",
}

// ParseScheduleText turns a professional's free-text weekly hours into a
// structured WeeklySchedule plus the timing settings shared by all days.
// Empty text is a valid input and yields all days closed with default
// settings. Line order does not matter and malformed lines are ignored.
func ParseScheduleText(raw string) (WeeklySchedule, ScheduleSettings) {
	week := emptyWeek()
	settings := ScheduleSettings{
		ConsultationDurationMinutes: DefaultConsultationMinutes,
		PatientIntervalMinutes:      DefaultPatientIntervalMinutes,
	}
	if strings.TrimSpace(raw) == "" {
		return week, settings
	}

	for _, line := range strings.Split(raw, "\n") {
		folded := normalize(line)
		if folded == "" {
			continue
		}
		switch {
		case strings.Contains(folded, "duracao") && strings.Contains(folded, "consulta"):
			if n, ok := firstMinutes(folded); ok && n > 0 {
				settings.ConsultationDurationMinutes = n
			}
		case strings.Contains(folded, "intervalo") && strings.Contains(folded, "paciente"):
			if n, ok := firstMinutes(folded); ok {
				settings.PatientIntervalMinutes = n
			}
		case strings.Contains(folded, "almoco"):
			if isClosedMarker(folded) {
				continue
			}
			if start, end, ok := parseTimeRange(folded); ok {
				settings.LunchBreak = &LunchBreak{StartTime: start, EndTime: end}
			}
		default:
			parseWeekdayLine(week, folded)
		}
	}
	return week, settings
}

// parseWeekdayLine handles "<Weekday>: <rest>" lines. Lines without a
// colon, or whose prefix is not one of the seven weekday names, are left
// alone; a rest that neither marks the day closed nor carries a valid
// time range keeps the day at its prior state.
func parseWeekdayLine(week WeeklySchedule, folded string) {
	idx := strings.Index(folded, ":")
	if idx < 0 {
		return
	}
	key, ok := canonicalWeekday(folded[:idx])
	if !ok {
		return
	}
	rest := folded[idx+1:]
	if isClosedMarker(rest) {
		week[key] = DaySchedule{IsOpen: false}
		return
	}
	if start, end, ok := parseTimeRange(rest); ok {
		week[key] = DaySchedule{IsOpen: true, StartTime: start, EndTime: end}
	}
}

func canonicalWeekday(prefix string) (string, bool) {
	p := strings.TrimSpace(prefix)
	p = strings.TrimSuffix(p, "-feira")
	p = strings.TrimSuffix(p, " feira")
	key, ok := weekdayKeys[strings.TrimSpace(p)]
	return key, ok
}

func isClosedMarker(s string) bool {
	return strings.Contains(s, "fechad") || strings.Contains(s, "nao atende")
}

func normalize(s string) string {
	return accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func firstMinutes(s string) (int, bool) {
	m := minutesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseTimeRange extracts "HH[:MM] <connector> HH[:MM]" from a folded
// line and returns both ends zero-padded. The range must be a valid
// wall-clock window with start strictly before end.
func parseTimeRange(s string) (string, string, bool) {
	m := timeRangePattern.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	start, ok1 := clockMinutes(m[1], m[2])
	end, ok2 := clockMinutes(m[3], m[4])
	if !ok1 || !ok2 || start >= end {
		return "", "", false
	}
	return formatClock(start), formatClock(end), true
}

func clockMinutes(hourStr, minStr string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return 0, false
	}
	min := 0
	if minStr != "" {
		min, err = strconv.Atoi(minStr)
		if err != nil || min > 59 {
			return 0, false
		}
	}
	return hour*60 + min, true
}
