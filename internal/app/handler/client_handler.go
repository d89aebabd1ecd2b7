package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"studio/internal/app/contact"
	"studio/internal/app/ds"
	"studio/internal/app/dto"
	"studio/internal/app/repository"
)

// ============ ДОМЕН КЛИЕНТЫ ============

// toClientResponse строит DTO клиента: канонические значения из БД плюс
// отображаемые формы (форматированный телефон, ссылки tel:/vk.com/t.me)
func toClientResponse(client *ds.Client) dto.ClientResponse {
	resp := dto.ClientResponse{
		ID:           client.ID,
		Name:         client.Name,
		Sex:          client.Sex,
		Phone:        client.Phone,
		VKID:         client.VKID,
		TGID:         client.TGID,
		PhoneDisplay: contact.FormatPhone(client.Phone),
		PhoneLink:    contact.PhoneLink(client.Phone),
		VKLink:       contact.VKLink(client.VKID),
		TGLink:       contact.TelegramLink(client.TGID),
		GroupID:      client.GroupID,
		GroupName:    "Без группы",
	}
	if client.Group != nil {
		resp.GroupName = client.Group.Name
	}
	if client.FirstOrderDate != nil {
		resp.FirstOrderDate = client.FirstOrderDate.Format(dateLayout)
	}
	return resp
}

// normalizeContacts приводит контактные поля к канонической форме.
// Непроходящее проверку значение - ошибка валидации с указанием поля
func normalizeContacts(phone, vk, tg string) (string, string, string, error) {
	phoneCanon, err := contact.NormalizePhone(phone)
	if err != nil {
		return "", "", "", err
	}
	vkCanon, err := contact.NormalizeVK(vk)
	if err != nil {
		return "", "", "", err
	}
	tgCanon, err := contact.NormalizeTelegram(tg)
	if err != nil {
		return "", "", "", err
	}
	return phoneCanon, vkCanon, tgCanon, nil
}

// GetClients получает список клиентов
// @Summary Получение списка клиентов
// @Description Возвращает список клиентов с поиском по имени/телефону и фильтром по группе
// @Tags Clients
// @Produce json
// @Param query query string false "Поиск по имени или телефону"
// @Param group_id query int false "Фильтр по группе"
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clients [get]
func (h *APIHandler) GetClients(c *gin.Context) {
	filter := repository.ClientFilter{Search: c.Query("query")}
	if groupIDStr := c.Query("group_id"); groupIDStr != "" {
		groupID, err := strconv.ParseUint(groupIDStr, 10, 32)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный ID группы")
			return
		}
		filter.GroupID = uint(groupID)
	}

	clients, err := h.Repository.GetClients(filter)
	if err != nil {
		logrus.Error("Error getting clients: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения клиентов")
		return
	}

	dtoClients := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		dtoClients[i] = toClientResponse(&clients[i])
	}

	c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: dtoClients,
		Total:   len(dtoClients),
	})
}

// GetClient получает одного клиента
// @Summary Получение клиента по ID
// @Tags Clients
// @Produce json
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [get]
func (h *APIHandler) GetClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	client, err := h.Repository.GetClientByID(uint(id))
	if err != nil {
		h.repoErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(client))
}

// CreateClient создает клиента
// @Summary Создание клиента
// @Description Создает клиента. Телефон, VK и Telegram нормализуются перед записью
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Данные клиента"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients [post]
func (h *APIHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	phone, vk, tg, err := normalizeContacts(req.Phone, req.VKID, req.TGID)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	client := ds.Client{
		Name:    req.Name,
		Sex:     req.Sex,
		Phone:   phone,
		VKID:    vk,
		TGID:    tg,
		GroupID: req.GroupID,
	}
	if err := h.Repository.CreateClient(&client); err != nil {
		logrus.Error("Error creating client: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	created, err := h.Repository.GetClientByID(client.ID)
	if err != nil {
		h.repoErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(created))
}

// UpdateClient обновляет клиента
// @Summary Обновление клиента
// @Description Обновляет данные клиента. Дата первой оплаты не редактируется - это вычисляемое поле
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "ID клиента"
// @Param request body dto.UpdateClientRequest true "Данные клиента"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [put]
func (h *APIHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	phone, vk, tg, err := normalizeContacts(req.Phone, req.VKID, req.TGID)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	client := ds.Client{
		ID:      uint(id),
		Name:    req.Name,
		Sex:     req.Sex,
		Phone:   phone,
		VKID:    vk,
		TGID:    tg,
		GroupID: req.GroupID,
	}
	if err := h.Repository.UpdateClient(&client); err != nil {
		logrus.Error("Error updating client: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	updated, err := h.Repository.GetClientByID(uint(id))
	if err != nil {
		h.repoErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, toClientResponse(updated))
}

// DeleteClient удаляет клиента
// @Summary Удаление клиента
// @Description Удаляет клиента. Клиент с заказами не удаляется
// @Tags Clients
// @Produce json
// @Param id path int true "ID клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *APIHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
		return
	}

	if err := h.Repository.DeleteClient(uint(id)); err != nil {
		logrus.Error("Error deleting client: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент удалён", nil)
}
