package ds

import "time"

// Позиция заказа. Название услуги храним свободным текстом, а не внешним ключом:
// переименование или удаление услуги в прайс-листе не должно менять историю заказов.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey"`
	OrderID     uint      `gorm:"not null"`
	ServiceName string    `gorm:"type:varchar(100);not null"`
	PaymentDate time.Time `gorm:"not null"`
	Amount      float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Hours       float64   `gorm:"type:decimal(6,2);not null;default:0"`

	Order Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
