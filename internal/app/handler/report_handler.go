package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ОТЧЁТЫ ============

// GetRevenueByMonth отчёт по месяцам
// @Summary Выручка по месяцам
// @Description Выручка, часы и число позиций по месяцам оплаты
// @Tags Reports
// @Produce json
// @Success 200 {array} repository.MonthlyReportRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/revenue-by-month [get]
func (h *APIHandler) GetRevenueByMonth(c *gin.Context) {
	rows, err := h.Repository.RevenueByMonth()
	if err != nil {
		logrus.Error("Error building monthly report: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка построения отчёта")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetTopServices отчёт по услугам
// @Summary Услуги по выручке
// @Description Услуги по убыванию выручки, по свободному тексту названий из позиций
// @Tags Reports
// @Produce json
// @Param limit query int false "Ограничение числа строк"
// @Success 200 {array} repository.ServiceReportRow
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/top-services [get]
func (h *APIHandler) GetTopServices(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 0 {
			h.errorResponse(c, http.StatusBadRequest, "Неверное значение limit")
			return
		}
		limit = val
	}

	rows, err := h.Repository.TopServicesByRevenue(limit)
	if err != nil {
		logrus.Error("Error building services report: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка построения отчёта")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetOrdersByStatus отчёт по статусам
// @Summary Заказы по статусам
// @Tags Reports
// @Produce json
// @Success 200 {array} repository.StatusReportRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/orders-by-status [get]
func (h *APIHandler) GetOrdersByStatus(c *gin.Context) {
	rows, err := h.Repository.OrderCountByStatus()
	if err != nil {
		logrus.Error("Error building status report: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка построения отчёта")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetClientsByGroup отчёт по группам
// @Summary Клиенты по группам
// @Tags Reports
// @Produce json
// @Success 200 {array} repository.GroupReportRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reports/clients-by-group [get]
func (h *APIHandler) GetClientsByGroup(c *gin.Context) {
	rows, err := h.Repository.ClientCountByGroup()
	if err != nil {
		logrus.Error("Error building groups report: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка построения отчёта")
		return
	}
	c.JSON(http.StatusOK, rows)
}
