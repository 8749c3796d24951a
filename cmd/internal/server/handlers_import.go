package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhukovvlad/integrator-go/cmd/internal/services/apierrors"
	"github.com/zhukovvlad/integrator-go/cmd/internal/services/importer"
	"github.com/zhukovvlad/integrator-go/cmd/internal/tabular"
)

// ImportEquipmentHandler обрабатывает загрузку файла предложения и запускает
// конвейер импорта оборудования.
//
// Эндпоинт: POST /api/v1/projects/:project_id/equipment/import
//
// Запрос: multipart/form-data.
//   - file — файл предложения (.xlsx или .csv);
//   - mode — стратегия сверки: replace | merge | append (по умолчанию merge).
//
// Успешный ответ: 200 OK с api_models.ImportResult, включая итог
// восстановления связей для режима replace.
//
// Ошибки:
//   - 400 Bad Request — невалидный project_id, режим, отсутствующий или
//     нечитаемый файл;
//   - 404 Not Found — проект не существует;
//   - 413 Request Entity Too Large — файл превышает лимит;
//   - 500 Internal Server Error — ошибка конвейера.
func (s *Server) ImportEquipmentHandler(c *gin.Context) {
	handlerLogger := s.logger.WithField("handler", "ImportEquipmentHandler")

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("некорректный project_id: %w", err)))
		return
	}

	mode := importer.ModeMerge
	if raw := c.PostForm("mode"); raw != "" {
		mode, err = importer.ParseMode(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("файл не передан: %w", err)))
		return
	}

	maxBytes := s.config.Import.MaxFileSizeMB * 1024 * 1024
	if fileHeader.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse(
			fmt.Errorf("файл %q превышает лимит %d МБ", fileHeader.Filename, s.config.Import.MaxFileSizeMB)))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handlerLogger.Errorf("не удалось открыть загруженный файл %q: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	defer file.Close()

	table, err := tabular.Parse(fileHeader.Filename, file)
	if err != nil {
		handlerLogger.Warnf("не удалось разобрать файл %q: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("нечитаемый файл: %w", err)))
		return
	}

	handlerLogger.Infof("импорт файла %q в проект %d, режим %s", fileHeader.Filename, projectID, mode)

	result, err := s.importService.ImportEquipmentFile(c.Request.Context(), importer.ImportParams{
		ProjectID: projectID,
		FileName:  fileHeader.Filename,
		Mode:      mode,
		UserID:    currentUserID(c),
		Table:     table,
	})
	if err != nil {
		var validationErr *apierrors.ValidationError
		var notFoundErr *apierrors.NotFoundError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.As(err, &notFoundErr):
			c.JSON(http.StatusNotFound, errorResponse(err))
		default:
			handlerLogger.Errorf("импорт файла %q завершился ошибкой: %v", fileHeader.Filename, err)
			c.JSON(http.StatusInternalServerError, errorResponse(err))
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// currentUserID достает идентификатор пользователя, проставленный
// вышестоящим middleware. Для server-to-server запросов возвращает ноль.
func currentUserID(c *gin.Context) int64 {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
