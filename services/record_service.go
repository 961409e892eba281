package services

import (
	"context"
	"net/http"
	"time"

	"consultorio_back_end_go/models"
	"consultorio_back_end_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

func CreateMedicalRecord(c *gin.Context, pool *pgxpool.Pool) {
	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}
	if record.PatientID == "" || record.ProfessionalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PatientId and ProfessionalId are required"})
		return
	}
	if record.RecordDate.IsZero() {
		record.RecordDate = time.Now()
	}

	record.RecordID = uuid.New().String()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO medical_records (record_id, patient_id, professional_id, record_date, notes) VALUES ($1, $2, $3, $4, $5)",
		record.RecordID, record.PatientID, record.ProfessionalID, record.RecordDate, record.Notes)
	if err != nil {
		utils.GetLogger().Error("Insert medical record failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func ListPatientRecords(c *gin.Context, pool *pgxpool.Pool) {
	patientId := c.Param("patientId")

	rows, err := pool.Query(context.Background(), `
		SELECT record_id, patient_id, professional_id, record_date, notes
		FROM medical_records WHERE patient_id = $1 ORDER BY record_date DESC`, patientId)
	if err != nil {
		utils.GetLogger().Error("List medical records failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	records := []models.MedicalRecord{}
	for rows.Next() {
		var r models.MedicalRecord
		if err := rows.Scan(&r.RecordID, &r.PatientID, &r.ProfessionalID, &r.RecordDate, &r.Notes); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		records = append(records, r)
	}

	c.JSON(http.StatusOK, records)
}
