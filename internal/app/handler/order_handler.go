package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"studio/internal/app/ds"
	"studio/internal/app/dto"
	"studio/internal/app/repository"
)

// ============ ДОМЕН ЗАКАЗЫ ============

func toOrderResponse(order *ds.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            order.ID,
		ClientID:      order.ClientID,
		ClientName:    order.Client.Name,
		ExecutionDate: order.ExecutionDate.Format(dateLayout),
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
	}
}

func toOrderItemResponse(item *ds.OrderItem) dto.OrderItemResponse {
	return dto.OrderItemResponse{
		ID:          item.ID,
		OrderID:     item.OrderID,
		ServiceName: item.ServiceName,
		PaymentDate: item.PaymentDate.Format(dateLayout),
		Amount:      item.Amount,
		Hours:       item.Hours,
	}
}

// GetOrders получает список заказов
// @Summary Получение списка заказов
// @Description Возвращает заказы с фильтрами по клиенту, статусу и диапазону дат исполнения
// @Tags Orders
// @Produce json
// @Param client_id query int false "Фильтр по клиенту"
// @Param status query string false "Фильтр по статусу"
// @Param date_from query string false "Дата исполнения с (ГГГГ-ММ-ДД)"
// @Param date_to query string false "Дата исполнения по (ГГГГ-ММ-ДД)"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	var filter repository.OrderFilter

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := strconv.ParseUint(clientIDStr, 10, 32)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный ID клиента")
			return
		}
		filter.ClientID = uint(clientID)
	}

	if status := c.Query("status"); status != "" {
		if !ds.OrderStatusValid(status) {
			h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус заказа")
			return
		}
		filter.Status = status
	}

	if from := c.Query("date_from"); from != "" {
		date, err := parseDate(from)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверная дата date_from, ожидается ГГГГ-ММ-ДД")
			return
		}
		filter.DateFrom = &date
	}
	if to := c.Query("date_to"); to != "" {
		date, err := parseDate(to)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверная дата date_to, ожидается ГГГГ-ММ-ДД")
			return
		}
		filter.DateTo = &date
	}

	orders, err := h.Repository.GetOrders(filter)
	if err != nil {
		logrus.Error("Error getting orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения заказов")
		return
	}

	dtoOrders := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		dtoOrders[i] = toOrderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders: dtoOrders,
		Total:  len(dtoOrders),
	})
}

// GetOrder получает заказ с позициями
// @Summary Получение заказа по ID
// @Description Возвращает заказ вместе с его позициями
// @Tags Orders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *APIHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заказа")
		return
	}

	order, err := h.Repository.GetOrderByID(uint(id))
	if err != nil {
		h.repoErrorResponse(c, err)
		return
	}

	items, err := h.Repository.GetOrderItems(order.ID)
	if err != nil {
		logrus.Error("Error getting order items: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения позиций заказа")
		return
	}

	resp := toOrderResponse(order)
	resp.Items = make([]dto.OrderItemResponse, len(items))
	for i := range items {
		resp.Items[i] = toOrderItemResponse(&items[i])
	}

	c.JSON(http.StatusOK, resp)
}

// CreateOrder создает заказ
// @Summary Создание заказа
// @Description Создает заказ для существующего клиента. Новый заказ пуст, сумма 0
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Данные заказа"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	executionDate, err := parseDate(req.ExecutionDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверная дата исполнения, ожидается ГГГГ-ММ-ДД")
		return
	}

	status := req.Status
	if status == "" {
		status = ds.OrderStatusInProgress
	}
	if !ds.OrderStatusValid(status) {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус заказа")
		return
	}

	order, err := h.Repository.CreateOrder(req.ClientID, executionDate, status)
	if err != nil {
		logrus.Error("Error creating order: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	created, err := h.Repository.GetOrderByID(order.ID)
	if err != nil {
		h.repoErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(created))
}

// UpdateOrder обновляет заказ
// @Summary Обновление заказа
// @Description Меняет статус и дату исполнения. Сумма заказа не редактируется напрямую
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param request body dto.UpdateOrderRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [put]
func (h *APIHandler) UpdateOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заказа")
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var executionDate *time.Time
	if req.ExecutionDate != nil {
		date, err := parseDate(*req.ExecutionDate)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверная дата исполнения, ожидается ГГГГ-ММ-ДД")
			return
		}
		executionDate = &date
	}

	if req.Status != nil && !ds.OrderStatusValid(*req.Status) {
		h.errorResponse(c, http.StatusBadRequest, "Неизвестный статус заказа")
		return
	}

	if err := h.Repository.UpdateOrder(uint(id), executionDate, req.Status); err != nil {
		logrus.Error("Error updating order: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Заказ обновлён", nil)
}

// DeleteOrder удаляет заказ
// @Summary Удаление заказа
// @Description Удаляет заказ вместе с позициями и пересчитывает дату первой оплаты клиента
// @Tags Orders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [delete]
func (h *APIHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заказа")
		return
	}

	if err := h.Repository.DeleteOrder(uint(id)); err != nil {
		logrus.Error("Error deleting order: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Заказ удалён", nil)
}

// ============ ПОЗИЦИИ ЗАКАЗА ============

// AddOrderItem добавляет позицию в заказ
// @Summary Добавление позиции в заказ
// @Description Добавляет позицию. Сумма заказа и дата первой оплаты клиента пересчитываются в той же транзакции
// @Tags OrderItems
// @Accept json
// @Produce json
// @Param id path int true "ID заказа"
// @Param request body dto.CreateOrderItemRequest true "Данные позиции"
// @Success 201 {object} dto.OrderItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/items [post]
func (h *APIHandler) AddOrderItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заказа")
		return
	}

	var req dto.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверная дата оплаты, ожидается ГГГГ-ММ-ДД")
		return
	}

	item, err := h.Repository.AddOrderItem(uint(id), req.ServiceName, paymentDate, req.Amount, req.Hours)
	if err != nil {
		logrus.Error("Error adding order item: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderItemResponse(item))
}

// UpdateOrderItem обновляет позицию заказа
// @Summary Обновление позиции заказа
// @Description Меняет поля позиции с пересчётом вычисляемых полей
// @Tags OrderItems
// @Accept json
// @Produce json
// @Param id path int true "ID позиции"
// @Param request body dto.UpdateOrderItemRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/order-items/{id} [put]
func (h *APIHandler) UpdateOrderItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID позиции")
		return
	}

	var req dto.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	var paymentDate *time.Time
	if req.PaymentDate != nil {
		date, err := parseDate(*req.PaymentDate)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверная дата оплаты, ожидается ГГГГ-ММ-ДД")
			return
		}
		paymentDate = &date
	}

	if err := h.Repository.UpdateOrderItem(uint(id), req.ServiceName, paymentDate, req.Amount, req.Hours); err != nil {
		logrus.Error("Error updating order item: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Позиция обновлена", nil)
}

// DeleteOrderItem удаляет позицию заказа
// @Summary Удаление позиции заказа
// @Description Удаляет позицию с пересчётом суммы заказа и даты первой оплаты клиента
// @Tags OrderItems
// @Produce json
// @Param id path int true "ID позиции"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/order-items/{id} [delete]
func (h *APIHandler) DeleteOrderItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID позиции")
		return
	}

	if err := h.Repository.DeleteOrderItem(uint(id)); err != nil {
		logrus.Error("Error deleting order item: ", err)
		h.repoErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "Позиция удалена", nil)
}
