package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"studio/internal/app/ds"
	"studio/internal/app/dto"
)

// ============ ДОМЕН УСЛУГИ (прайс-лист) ============

// toServiceResponse строит DTO услуги. Для загруженного изображения вместо
// имени объекта отдаётся временная ссылка MinIO
func (h *APIHandler) toServiceResponse(s *ds.Service) dto.ServiceResponse {
	resp := dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		MinPrice:    s.MinPrice,
		Description: s.Description,
	}
	if s.ImageURL != nil && *s.ImageURL != "" {
		resp.ImageURL = *s.ImageURL
		if h.MinIOClient != nil {
			if url, err := h.MinIOClient.GetFileURL(*s.ImageURL); err == nil {
				resp.ImageURL = url
			}
		}
	}
	return resp
}

// GetServices получает прайс-лист
// @Summary Получение списка услуг
// @Description Возвращает прайс-лист с возможностью поиска по названию
// @Tags Services
// @Produce json
// @Param query query string false "Поиск по названию услуги"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	searchQuery := c.Query("query")

	var services []ds.Service
	var err error

	if searchQuery == "" {
		services, err = h.Repository.GetAllServices()
	} else {
		services, err = h.Repository.SearchServicesByName(searchQuery)
	}

	if err != nil {
		logrus.Error("Error getting services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения услуг")
		return
	}

	dtoServices := make([]dto.ServiceResponse, len(services))
	for i := range services {
		dtoServices[i] = h.toServiceResponse(&services[i])
	}

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: dtoServices,
		Total:    len(dtoServices),
	})
}

// GetService получает одну услугу
// @Summary Получение услуги по ID
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *APIHandler) GetService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		h.repoErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, h.toServiceResponse(service))
}

// CreateService создает услугу
// @Summary Создание услуги
// @Description Создает услугу прайс-листа. Минимальная цена - ориентир, к сумме позиций не применяется
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Данные услуги"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *APIHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	service, err := h.Repository.CreateService(req.Name, req.Description, req.MinPrice)
	if err != nil {
		logrus.Error("Error creating service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания услуги")
		return
	}

	c.JSON(http.StatusCreated, h.toServiceResponse(service))
}

// UpdateService обновляет услугу
// @Summary Обновление услуги
// @Description Обновляет услугу прайс-листа. Ранее записанные позиции заказов не меняются
// @Tags Services
// @Accept json
// @Produce json
// @Param id path int true "ID услуги"
// @Param request body dto.UpdateServiceRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [put]
func (h *APIHandler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := h.Repository.UpdateService(uint(id), req.Name, req.Description, req.MinPrice); err != nil {
		logrus.Error("Error updating service: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Услуга обновлена", nil)
}

// DeleteService удаляет услугу
// @Summary Удаление услуги
// @Description Удаляет услугу из прайс-листа. Позиции заказов хранят название текстом и остаются как есть
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [delete]
func (h *APIHandler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	// Сначала убираем изображение из MinIO, если оно было
	service, _ := h.Repository.GetServiceByID(uint(id))
	if service != nil && service.ImageURL != nil && *service.ImageURL != "" {
		if h.MinIOClient != nil {
			if err := h.MinIOClient.DeleteFile(*service.ImageURL); err != nil {
				logrus.Warnf("Failed to delete image from MinIO: %v", err)
			}
		}
	}

	if err := h.Repository.DeleteService(uint(id)); err != nil {
		logrus.Error("Error deleting service: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Услуга удалена", nil)
}

// UploadServiceImage загружает изображение услуги
// @Summary Загрузка изображения услуги
// @Description Загружает изображение услуги в MinIO
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID услуги"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/{id}/image [post]
func (h *APIHandler) UploadServiceImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID услуги")
		return
	}

	service, err := h.Repository.GetServiceByID(uint(id))
	if err != nil {
		h.repoErrorResponse(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище изображений не настроено")
		return
	}

	// Удаляем старое изображение, если было
	if service.ImageURL != nil && *service.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*service.ImageURL); err != nil {
			logrus.Warnf("Failed to delete old image %s: %v", *service.ImageURL, err)
		}
	}

	imageURL, err := h.MinIOClient.UploadFile(fileData, file.Filename)
	if err != nil {
		logrus.Error("Error uploading to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки изображения")
		return
	}

	if err := h.Repository.UpdateServiceImage(uint(id), imageURL); err != nil {
		logrus.Error("Error updating service image: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Изображение загружено", gin.H{
		"image_url": imageURL,
	})
}
