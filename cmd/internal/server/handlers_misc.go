package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/integrator-go/cmd/internal/api_models"
)

func (s *Server) HomeHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Welcome to the Equipment Integrator API",
	})
}

func (s *Server) getStatsHandler(c *gin.Context) {
	stats, err := s.store.GetDashboardStats(c.Request.Context())
	if err != nil {
		s.logger.Errorf("Ошибка при получении статистики: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, api_models.StatsResponse{
		ProjectsCount:  stats.ProjectsCount,
		EquipmentCount: stats.EquipmentCount,
		BatchesCount:   stats.BatchesCount,
	})
}
