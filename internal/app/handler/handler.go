package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio/internal/app/dto"
	"studio/internal/app/repository"
	"studio/internal/app/storage"
)

// APIHandler содержит обработчики REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
	}
}

// RegisterRoutes регистрирует все REST API маршруты
func (h *APIHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// ============ Группы клиентов ============
	groups := api.Group("/groups")
	{
		groups.GET("", h.GetGroups)
		groups.POST("", h.CreateGroup)
		groups.PUT("/:id", h.UpdateGroup)
		groups.DELETE("/:id", h.DeleteGroup)
	}

	// ============ Клиенты ============
	clients := api.Group("/clients")
	{
		clients.GET("", h.GetClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}

	// ============ Услуги (прайс-лист) ============
	services := api.Group("/services")
	{
		services.GET("", h.GetServices)
		services.GET("/:id", h.GetService)
		services.POST("", h.CreateService)
		services.PUT("/:id", h.UpdateService)
		services.DELETE("/:id", h.DeleteService)
		services.POST("/:id/image", h.UploadServiceImage)
	}

	// ============ Заказы и позиции ============
	orders := api.Group("/orders")
	{
		orders.GET("", h.GetOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
		orders.POST("/:id/items", h.AddOrderItem)
	}

	items := api.Group("/order-items")
	{
		items.PUT("/:id", h.UpdateOrderItem)
		items.DELETE("/:id", h.DeleteOrderItem)
	}

	// ============ Отчёты ============
	reports := api.Group("/reports")
	{
		reports.GET("/revenue-by-month", h.GetRevenueByMonth)
		reports.GET("/top-services", h.GetTopServices)
		reports.GET("/orders-by-status", h.GetOrdersByStatus)
		reports.GET("/clients-by-group", h.GetClientsByGroup)
	}
}

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// repoErrorResponse переводит бизнес-ошибки репозитория в коды ответа
func (h *APIHandler) repoErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrGroupNotFound),
		errors.Is(err, repository.ErrClientNotFound),
		errors.Is(err, repository.ErrServiceNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrItemNotFound):
		h.errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrGroupExists),
		errors.Is(err, repository.ErrGroupReferenced),
		errors.Is(err, repository.ErrClientHasOrders):
		h.errorResponse(c, http.StatusConflict, err.Error())
	default:
		h.errorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

const dateLayout = "2006-01-02"

// parseDate разбирает дату формата ГГГГ-ММ-ДД
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
