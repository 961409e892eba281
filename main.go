package main

import (
	"time"

	"consultorio_back_end_go/db"
	"consultorio_back_end_go/routes"
	"consultorio_back_end_go/services"
	"consultorio_back_end_go/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	r := gin.Default()

	config := cors.Config{
		AllowOrigins:     utils.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(config))

	// Request logging
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	})

	// Initialize database
	conn, err := db.InitDatabase()
	if err != nil {
		logger.Fatal("Failed to connect to the database", zap.Error(err))
	}
	defer conn.Close()

	r.GET("/ws", services.ServeWs)

	// Initialize routes
	routes.SetupProfessionalRoutes(r, conn)
	routes.SetupPatientRoutes(r, conn)
	routes.SetupServiceRoutes(r, conn)
	routes.SetupRecordRoutes(r, conn)
	routes.SetupAppointmentManagementRoutes(r, conn)

	// Start server
	if err := r.Run(":" + utils.AppConfig.AppPort); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
