package server

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/integrator-go/cmd/internal/api_models"
	db "github.com/zhukovvlad/integrator-go/cmd/internal/db/sqlc"
)

// listImportBatchesHandler возвращает журнал импортов проекта, свежие сверху.
//
// Эндпоинт: GET /api/v1/projects/:project_id/import-batches
func (s *Server) listImportBatchesHandler(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("некорректный project_id: %w", err)))
		return
	}

	batches, err := s.store.ListImportBatchesForProject(c.Request.Context(), projectID)
	if err != nil {
		s.logger.Errorf("не удалось получить журнал импортов проекта %d: %v", projectID, err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	response := make([]api_models.ImportBatchResponse, 0, len(batches))
	for _, batch := range batches {
		response = append(response, toBatchResponse(batch))
	}
	c.JSON(http.StatusOK, response)
}

// getImportBatchHandler возвращает одну запись журнала импортов.
//
// Эндпоинт: GET /api/v1/import-batches/:id
func (s *Server) getImportBatchHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("некорректный id: %w", err)))
		return
	}

	batch, err := s.store.GetImportBatch(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, errorResponse(fmt.Errorf("пакет импорта %d не найден", id)))
			return
		}
		s.logger.Errorf("не удалось получить пакет импорта %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(batch))
}

func toBatchResponse(batch db.ImportBatch) api_models.ImportBatchResponse {
	response := api_models.ImportBatchResponse{
		ID:            batch.ID,
		ProjectID:     batch.ProjectID,
		FileName:      batch.FileName,
		ImportMode:    batch.ImportMode,
		TotalRows:     batch.TotalRows,
		ProcessedRows: batch.ProcessedRows,
		Status:        batch.Status,
		CreatedAt:     batch.CreatedAt,
	}
	if batch.CompletedAt.Valid {
		response.CompletedAt = &batch.CompletedAt.Time
	}
	return response
}
