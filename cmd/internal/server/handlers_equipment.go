package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/integrator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

// listProjectEquipmentHandler возвращает все экземпляры оборудования проекта.
//
// Эндпоинт: GET /api/v1/projects/:project_id/equipment
func (s *Server) listProjectEquipmentHandler(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("некорректный project_id: %w", err)))
		return
	}

	items, err := s.store.ListProjectEquipment(c.Request.Context(), projectID)
	if err != nil {
		s.logger.Errorf("не удалось получить оборудование проекта %d: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response := make([]api_models.EquipmentResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toEquipmentResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

func toEquipmentResponse(item db.ProjectEquipment) api_models.EquipmentResponse {
	response := api_models.EquipmentResponse{
		ID:              item.ID,
		ProjectID:       item.ProjectID,
		Name:            item.Name,
		PartNumber:      item.PartNumber,
		Manufacturer:    item.Manufacturer,
		Model:           item.Model,
		InstallSide:     item.InstallSide,
		EquipmentType:   item.EquipmentType,
		PlannedQuantity: item.PlannedQuantity,
		UnitCost:        item.UnitCost,
		UnitPrice:       item.UnitPrice,
		SupplierName:    item.SupplierName,
		InstanceNumber:  item.InstanceNumber,
		InstanceName:    item.InstanceName,
	}
	if item.RoomID.Valid {
		response.RoomID = &item.RoomID.Int64
	}
	if item.ParentImportGroup.Valid {
		response.ParentImportGroup = item.ParentImportGroup.UUID.String()
	}
	return response
}
