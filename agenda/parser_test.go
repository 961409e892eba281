package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleTextEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n  \n"} {
		week, settings := ParseScheduleText(raw)

		require.Len(t, week, 7)
		for _, day := range Weekdays {
			d, ok := week[day]
			require.True(t, ok, "missing weekday %s", day)
			assert.False(t, d.IsOpen)
		}
		assert.Equal(t, DefaultConsultationMinutes, settings.ConsultationDurationMinutes)
		assert.Equal(t, DefaultPatientIntervalMinutes, settings.PatientIntervalMinutes)
		assert.Nil(t, settings.LunchBreak)
	}
}

func TestParseScheduleTextFull(t *testing.T) {
	raw := `Duração da consulta: 50 minutos
Intervalo entre pacientes: 10 min
Intervalo de almoço: 12:00 às 13:00
Segunda-feira: 08:00 às 18:00
Terça-feira: 8 as 12
Quarta-feira: fechado
Quinta-feira: 09:00 - 17:30
Sábado: não atende`

	week, settings := ParseScheduleText(raw)

	assert.Equal(t, 50, settings.ConsultationDurationMinutes)
	assert.Equal(t, 10, settings.PatientIntervalMinutes)
	require.NotNil(t, settings.LunchBreak)
	assert.Equal(t, "12:00", settings.LunchBreak.StartTime)
	assert.Equal(t, "13:00", settings.LunchBreak.EndTime)

	assert.Equal(t, DaySchedule{IsOpen: true, StartTime: "08:00", EndTime: "18:00"}, week["Segunda-feira"])
	// bare hours are zero-padded on the way in
	assert.Equal(t, DaySchedule{IsOpen: true, StartTime: "08:00", EndTime: "12:00"}, week["Terça-feira"])
	assert.Equal(t, DaySchedule{IsOpen: true, StartTime: "09:00", EndTime: "17:30"}, week["Quinta-feira"])
	assert.False(t, week["Quarta-feira"].IsOpen)
	assert.False(t, week["Sábado"].IsOpen)
	assert.False(t, week["Sexta-feira"].IsOpen)
	assert.False(t, week["Domingo"].IsOpen)
}

func TestParseScheduleTextCaseAndAccents(t *testing.T) {
	week, _ := ParseScheduleText("SEGUNDA-FEIRA: 09:00 ÀS 17:00\nsabado: 8 ate 12")

	assert.Equal(t, DaySchedule{IsOpen: true, StartTime: "09:00", EndTime: "17:00"}, week["Segunda-feira"])
	assert.Equal(t, DaySchedule{IsOpen: true, StartTime: "08:00", EndTime: "12:00"}, week["Sábado"])
}

func TestParseScheduleTextOrderIndependent(t *testing.T) {
	a := "Segunda-feira: 08:00 às 12:00\nDuração da consulta: 40 minutos"
	b := "Duração da consulta: 40 minutos\nSegunda-feira: 08:00 às 12:00"

	weekA, settingsA := ParseScheduleText(a)
	weekB, settingsB := ParseScheduleText(b)

	assert.Equal(t, weekA, weekB)
	assert.Equal(t, settingsA, settingsB)
}

func TestParseScheduleTextSkipsGarbage(t *testing.T) {
	raw := `Segunda-feira: 08:00 às 12:00
Feriado: 08:00 às 12:00
linha sem nenhum formato
Terça 08 as 12
Quinta-feira: 19:00 às 08:00
Sexta-feira: 08:60 às 12:00`

	week, settings := ParseScheduleText(raw)

	// the one well-formed day is untouched by the noise around it
	assert.Equal(t, DaySchedule{IsOpen: true, StartTime: "08:00", EndTime: "12:00"}, week["Segunda-feira"])
	// inverted range, invalid minute, missing colon: day stays closed
	assert.False(t, week["Quinta-feira"].IsOpen)
	assert.False(t, week["Sexta-feira"].IsOpen)
	assert.False(t, week["Terça-feira"].IsOpen)
	assert.Equal(t, DefaultConsultationMinutes, settings.ConsultationDurationMinutes)
}

func TestParseScheduleTextLunchClosed(t *testing.T) {
	_, settings := ParseScheduleText("Intervalo de almoço: não atende")
	assert.Nil(t, settings.LunchBreak)
}

func TestParseScheduleTextZeroInterval(t *testing.T) {
	_, settings := ParseScheduleText("Intervalo entre pacientes: 0 min")
	assert.Equal(t, 0, settings.PatientIntervalMinutes)
}

func TestParseScheduleTextIgnoresZeroDuration(t *testing.T) {
	_, settings := ParseScheduleText("Duração da consulta: 0 minutos")
	assert.Equal(t, DefaultConsultationMinutes, settings.ConsultationDurationMinutes)
}
