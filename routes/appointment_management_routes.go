package routes

import (
	"consultorio_back_end_go/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4/pgxpool"
)

func SetupAppointmentManagementRoutes(r *gin.Engine, pool *pgxpool.Pool) {
	r.GET("/api/v1/available-slots", func(c *gin.Context) {
		services.GetAvailableSlots(c, pool)
	})

	r.POST("/api/v1/appointments", func(c *gin.Context) {
		services.CreateAppointment(c, pool)
	})

	r.GET("/api/v1/appointments", func(c *gin.Context) {
		services.GetAppointments(c, pool)
	})
}
