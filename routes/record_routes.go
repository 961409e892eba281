package routes

import (
	"consultorio_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupRecordRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.POST("/api/v1/records", func(c *gin.Context) {
		services.CreateMedicalRecord(c, pool)
	})

	r.GET("/api/v1/patients/:patientId/records", func(c *gin.Context) {
		services.ListPatientRecords(c, pool)
	})
}
