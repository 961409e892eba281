package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"consultorio_back_end_go/agenda"
	"consultorio_back_end_go/models"
	"consultorio_back_end_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// GetAvailableSlots implements GET /api/v1/available-slots. It reads the
// professional's free-text schedule, runs the agenda pipeline for the
// requested day and reconciles the result against that day's
// appointments. Everything is computed per request; nothing is cached.
func GetAvailableSlots(c *gin.Context, pool *pgxpool.Pool) {
	logger := utils.GetLogger()
	professionalId := c.DefaultQuery("professionalId", "")
	day := c.DefaultQuery("day", "")

	if professionalId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "professionalId is required"})
		return
	}
	const customDateFormat = "2006-01-02"
	dayStart, err := time.ParseInLocation(customDateFormat, day, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day format"})
		return
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	var scheduleText string
	err = pool.QueryRow(context.Background(),
		"SELECT schedule_text FROM professional_info WHERE professional_id = $1", professionalId).Scan(&scheduleText)
	if err != nil {
		if err.Error() == "no rows in result set" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
			return
		}
		logger.Error("Fetch schedule text failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	week, settings := agenda.ParseScheduleText(scheduleText)
	candidates := agenda.GenerateDaySlots(week[agenda.WeekdayName(dayStart.Weekday())], settings)

	rows, err := pool.Query(context.Background(), `
		SELECT appointments.professional_id, appointments.appointment_start,
			patient_info.first_name, patient_info.last_name
		FROM appointments
		JOIN patient_info ON appointments.patient_id = patient_info.patient_id
		WHERE appointments.professional_id = $1
			AND appointments.appointment_start >= $2
			AND appointments.appointment_start < $3
			AND appointments.status <> 'CANCELADO'`,
		professionalId, dayStart, dayEnd)
	if err != nil {
		logger.Error("Fetch appointments failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	var appointments []agenda.Appointment
	for rows.Next() {
		var appt agenda.Appointment
		var firstName, lastName string
		if err := rows.Scan(&appt.ProfessionalID, &appt.StartTime, &firstName, &lastName); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		appt.StartTime = appt.StartTime.In(time.Local)
		appt.PatientName = strings.TrimSpace(firstName + " " + lastName)
		appointments = append(appointments, appt)
	}

	slots := agenda.ResolveAvailability(candidates, professionalId, appointments, dayStart)

	c.JSON(http.StatusOK, gin.H{
		"professional_id": professionalId,
		"date":            dayStart.Format(customDateFormat),
		"slots":           slots,
	})
}

// CreateAppointment implements POST /api/v1/appointments. The slot end
// is derived from the professional's configured consultation duration
// when the caller does not send one. Double-booking is left to the
// unique constraint on (professional_id, appointment_start).
func CreateAppointment(c *gin.Context, pool *pgxpool.Pool) {
	logger := utils.GetLogger()
	var appointment models.Appointment

	if err := c.ShouldBindJSON(&appointment); err != nil {
		logger.Warn("Bind error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if appointment.ProfessionalID == "" || appointment.PatientID == "" || appointment.AppointmentStart.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ProfessionalId, PatientId and AppointmentStart are required"})
		return
	}

	conn, err := pool.Acquire(context.Background())
	if err != nil {
		logger.Error("Connection error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer conn.Release()

	if appointment.AppointmentEnd.IsZero() {
		var scheduleText string
		err = conn.QueryRow(context.Background(),
			"SELECT schedule_text FROM professional_info WHERE professional_id = $1",
			appointment.ProfessionalID).Scan(&scheduleText)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Professional not found"})
			return
		}
		_, settings := agenda.ParseScheduleText(scheduleText)
		duration := time.Duration(settings.ConsultationDurationMinutes) * time.Minute
		appointment.AppointmentEnd = appointment.AppointmentStart.Add(duration)
	}
	if appointment.Status == "" {
		appointment.Status = "AGENDADO"
	}

	_, err = conn.Exec(context.Background(),
		`INSERT INTO appointments (appointment_start, appointment_end, title, status, professional_id, patient_id, service_id)
		VALUES ($1::timestamp with time zone, $2::timestamp with time zone, $3, $4, $5, $6, $7)`,
		appointment.AppointmentStart, appointment.AppointmentEnd, appointment.Title,
		appointment.Status, appointment.ProfessionalID, appointment.PatientID, appointment.ServiceID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			c.JSON(http.StatusConflict, gin.H{"error": "Slot already booked"})
			return
		}
		logger.Error("Insert appointment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	// Open dashboards watching this professional refresh their day view.
	BroadcastAgendaEvent(appointment.ProfessionalID, AgendaEvent{
		Type:           "appointment_created",
		ProfessionalID: appointment.ProfessionalID,
		Date:           appointment.AppointmentStart.In(time.Local).Format("2006-01-02"),
		Time:           appointment.AppointmentStart.In(time.Local).Format("15:04"),
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Appointment booked successfully"})
}

// GetAppointments implements GET /api/v1/appointments, filtered by
// professional or patient.
func GetAppointments(c *gin.Context, pool *pgxpool.Pool) {
	logger := utils.GetLogger()
	professionalID := c.DefaultQuery("professional_id", "")
	patientID := c.DefaultQuery("patient_id", "")

	if professionalID == "" && patientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request: professional_id or patient_id required"})
		return
	}

	query := `
		SELECT
			appointments.appointment_id,
			appointments.appointment_start,
			appointments.appointment_end,
			appointments.status,
			professional_info.first_name,
			professional_info.last_name,
			professional_info.specialty,
			patient_info.first_name AS patient_first_name,
			patient_info.last_name AS patient_last_name,
			patient_info.patient_id,
			professional_info.professional_id
		FROM
			appointments
		JOIN
			professional_info ON appointments.professional_id = professional_info.professional_id
		JOIN
			patient_info ON appointments.patient_id = patient_info.patient_id
	`
	params := []interface{}{}
	if professionalID != "" {
		query += " WHERE appointments.professional_id = $1"
		params = append(params, professionalID)
	} else {
		query += " WHERE appointments.patient_id = $1"
		params = append(params, patientID)
	}
	query += " ORDER BY appointments.appointment_start"

	rows, err := pool.Query(context.Background(), query, params...)
	if err != nil {
		logger.Error("Query error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	appointments := []models.AppointmentDetail{}
	for rows.Next() {
		var a models.AppointmentDetail
		err := rows.Scan(&a.AppointmentID, &a.AppointmentStart, &a.AppointmentEnd, &a.Status,
			&a.ProfessionalFirstName, &a.ProfessionalLastName, &a.Specialty,
			&a.PatientFirstName, &a.PatientLastName, &a.PatientID, &a.ProfessionalID)
		if err != nil {
			logger.Error("Row scan error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		a.AppointmentStart = a.AppointmentStart.In(time.Local)
		a.AppointmentEnd = a.AppointmentEnd.In(time.Local)
		appointments = append(appointments, a)
	}

	c.JSON(http.StatusOK, appointments)
}
