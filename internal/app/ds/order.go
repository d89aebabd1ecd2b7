package ds

import "time"

// Статусы заказа
const (
	OrderStatusInProgress = "в работе"
	OrderStatusAwaiting   = "ждёт оплаты"
	OrderStatusDone       = "выполнен"
	OrderStatusPaid       = "оплачен"
)

// Таблица заказов
type Order struct {
	ID            uint      `gorm:"primaryKey"`
	ClientID      uint      `gorm:"not null"`
	ExecutionDate time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null"` // в работе, ждёт оплаты, выполнен, оплачен
	// Итоговая сумма - вычисляемое поле, всегда равна сумме позиций заказа
	TotalAmount float64 `gorm:"type:decimal(12,2);not null;default:0"`

	Client Client `gorm:"foreignKey:ClientID"`
}

// OrderStatusValid проверяет, что статус входит в допустимый набор
func OrderStatusValid(status string) bool {
	switch status {
	case OrderStatusInProgress, OrderStatusAwaiting, OrderStatusDone, OrderStatusPaid:
		return true
	}
	return false
}
