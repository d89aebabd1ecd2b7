package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Группы ============

type GroupResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Total  int             `json:"total"`
}

type GroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ============ Клиенты ============

type ClientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
	// Канонические значения как в БД
	Phone string `json:"phone"`
	VKID  string `json:"vk_id"`
	TGID  string `json:"tg_id"`
	// Отображаемые формы, строятся при выводе
	PhoneDisplay string `json:"phone_display,omitempty"`
	PhoneLink    string `json:"phone_link,omitempty"`
	VKLink       string `json:"vk_link,omitempty"`
	TGLink       string `json:"tg_link,omitempty"`

	GroupID        *uint  `json:"group_id,omitempty"`
	GroupName      string `json:"group_name"`
	FirstOrderDate string `json:"first_order_date,omitempty"` // ГГГГ-ММ-ДД
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Sex     string `json:"sex" binding:"omitempty,oneof=М Ж"`
	Phone   string `json:"phone"`
	VKID    string `json:"vk_id"`
	TGID    string `json:"tg_id"`
	GroupID *uint  `json:"group_id"`
}

type UpdateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Sex     string `json:"sex" binding:"omitempty,oneof=М Ж"`
	Phone   string `json:"phone"`
	VKID    string `json:"vk_id"`
	TGID    string `json:"tg_id"`
	GroupID *uint  `json:"group_id"`
}

// ============ Услуги (прайс-лист) ============

type ServiceResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	MinPrice    float64 `json:"min_price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	MinPrice    float64 `json:"min_price" binding:"gte=0"`
	Description string  `json:"description"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	MinPrice    *float64 `json:"min_price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

// ============ Заказы ============

type OrderResponse struct {
	ID            uint                `json:"id"`
	ClientID      uint                `json:"client_id"`
	ClientName    string              `json:"client_name"`
	ExecutionDate string              `json:"execution_date"` // ГГГГ-ММ-ДД
	Status        string              `json:"status"`
	TotalAmount   float64             `json:"total_amount"`
	Items         []OrderItemResponse `json:"items,omitempty"` // Только для GET одного заказа
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type CreateOrderRequest struct {
	ClientID      uint   `json:"client_id" binding:"required"`
	ExecutionDate string `json:"execution_date" binding:"required"` // ГГГГ-ММ-ДД
	Status        string `json:"status"`
}

type UpdateOrderRequest struct {
	ExecutionDate *string `json:"execution_date"` // ГГГГ-ММ-ДД
	Status        *string `json:"status"`
}

// ============ Позиции заказа ============

type OrderItemResponse struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ServiceName string  `json:"service_name"`
	PaymentDate string  `json:"payment_date"` // ГГГГ-ММ-ДД
	Amount      float64 `json:"amount"`
	Hours       float64 `json:"hours"`
}

type CreateOrderItemRequest struct {
	ServiceName string  `json:"service_name" binding:"required,min=1,max=100"`
	PaymentDate string  `json:"payment_date" binding:"required"` // ГГГГ-ММ-ДД
	Amount      float64 `json:"amount" binding:"gte=0"`
	Hours       float64 `json:"hours" binding:"gte=0"`
}

type UpdateOrderItemRequest struct {
	ServiceName *string  `json:"service_name" binding:"omitempty,min=1,max=100"`
	PaymentDate *string  `json:"payment_date"` // ГГГГ-ММ-ДД
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	Hours       *float64 `json:"hours" binding:"omitempty,gte=0"`
}
