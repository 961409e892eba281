package services

import (
	"context"
	"net/http"

	"consultorio_back_end_go/models"
	"consultorio_back_end_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

func CreateService(c *gin.Context, pool *pgxpool.Pool) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}
	if service.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	service.ServiceID = uuid.New().String()
	service.Active = true
	_, err := pool.Exec(context.Background(),
		"INSERT INTO service_info (service_id, name, description, price_cents, active) VALUES ($1, $2, $3, $4, $5)",
		service.ServiceID, service.Name, service.Description, service.PriceCents, service.Active)
	if err != nil {
		utils.GetLogger().Error("Insert service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

func ListServices(c *gin.Context, pool *pgxpool.Pool) {
	rows, err := pool.Query(context.Background(),
		"SELECT service_id, name, description, price_cents, active FROM service_info ORDER BY name")
	if err != nil {
		utils.GetLogger().Error("List services failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ServiceID, &s.Name, &s.Description, &s.PriceCents, &s.Active); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		services = append(services, s)
	}

	c.JSON(http.StatusOK, services)
}

func UpdateService(c *gin.Context, pool *pgxpool.Pool) {
	serviceId := c.Param("serviceId")

	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	tag, err := pool.Exec(context.Background(),
		"UPDATE service_info SET name = $1, description = $2, price_cents = $3, active = $4 WHERE service_id = $5",
		service.Name, service.Description, service.PriceCents, service.Active, serviceId)
	if err != nil {
		utils.GetLogger().Error("Update service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service updated successfully"})
}

func DeleteService(c *gin.Context, pool *pgxpool.Pool) {
	serviceId := c.Param("serviceId")

	// Services referenced by appointments are deactivated, not removed.
	tag, err := pool.Exec(context.Background(),
		"UPDATE service_info SET active = FALSE WHERE service_id = $1", serviceId)
	if err != nil {
		utils.GetLogger().Error("Delete service failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Service deactivated"})
}
