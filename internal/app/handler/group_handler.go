package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"studio/internal/app/dto"
)

// ============ ДОМЕН ГРУППЫ ============

// GetGroups получает список групп клиентов
// @Summary Получение списка групп
// @Tags Groups
// @Produce json
// @Success 200 {object} dto.GroupListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/groups [get]
func (h *APIHandler) GetGroups(c *gin.Context) {
	groups, err := h.Repository.GetAllGroups()
	if err != nil {
		logrus.Error("Error getting groups: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения групп")
		return
	}

	dtoGroups := make([]dto.GroupResponse, len(groups))
	for i, g := range groups {
		dtoGroups[i] = dto.GroupResponse{ID: g.ID, Name: g.Name}
	}

	c.JSON(http.StatusOK, dto.GroupListResponse{
		Groups: dtoGroups,
		Total:  len(dtoGroups),
	})
}

// CreateGroup создает группу
// @Summary Создание группы
// @Tags Groups
// @Accept json
// @Produce json
// @Param request body dto.GroupRequest true "Название группы"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/groups [post]
func (h *APIHandler) CreateGroup(c *gin.Context) {
	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	group, err := h.Repository.CreateGroup(req.Name)
	if err != nil {
		logrus.Error("Error creating group: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GroupResponse{ID: group.ID, Name: group.Name})
}

// UpdateGroup переименовывает группу
// @Summary Переименование группы
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path int true "ID группы"
// @Param request body dto.GroupRequest true "Новое название"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/groups/{id} [put]
func (h *APIHandler) UpdateGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID группы")
		return
	}

	var req dto.GroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := h.Repository.UpdateGroup(uint(id), req.Name); err != nil {
		logrus.Error("Error updating group: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Группа переименована", nil)
}

// DeleteGroup удаляет группу
// @Summary Удаление группы
// @Description Удаляет группу. Если в группе есть клиенты, удаление отклоняется
// @Tags Groups
// @Produce json
// @Param id path int true "ID группы"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/groups/{id} [delete]
func (h *APIHandler) DeleteGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID группы")
		return
	}

	if err := h.Repository.DeleteGroup(uint(id)); err != nil {
		logrus.Error("Error deleting group: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Группа удалена", nil)
}
