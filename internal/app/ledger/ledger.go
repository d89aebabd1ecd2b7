package ledger

import (
	"errors"

	"gorm.io/gorm"

	"studio/internal/app/ds"
)

// Пакет держит вычисляемые поля в согласованном состоянии: итоговую сумму
// заказа и дату первой оплаты клиента. Вызывается после каждой вставки,
// правки или удаления позиции заказа, в той же транзакции что и сама запись.

var (
	ErrOrderNotFound  = errors.New("заказ не найден")
	ErrClientNotFound = errors.New("клиент не найден")
)

type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// RecomputeOrderTotal пересчитывает итоговую сумму заказа по его позициям.
// Заказ без позиций получает сумму 0. Несуществующий заказ - явная ошибка,
// а не тихий UPDATE на ноль строк.
func (l *Ledger) RecomputeOrderTotal(orderID uint) error {
	var count int64
	if err := l.db.Model(&ds.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrOrderNotFound
	}

	var total float64
	err := l.db.Model(&ds.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}

	return l.db.Model(&ds.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total).Error
}

// RecomputeFirstOrderDate пересчитывает дату первой оплаты клиента:
// минимальная payment_date по всем позициям всех его заказов. Если позиций
// не осталось, поле сбрасывается в NULL.
func (l *Ledger) RecomputeFirstOrderDate(clientID uint) error {
	var count int64
	if err := l.db.Model(&ds.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrClientNotFound
	}

	var earliest ds.OrderItem
	err := l.db.Model(&ds.OrderItem{}).
		Select("order_items.*").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.client_id = ?", clientID).
		Order("order_items.payment_date ASC").
		First(&earliest).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return l.db.Model(&ds.Client{}).
			Where("id = ?", clientID).
			Update("first_order_date", nil).Error
	}
	if err != nil {
		return err
	}

	return l.db.Model(&ds.Client{}).
		Where("id = ?", clientID).
		Update("first_order_date", earliest.PaymentDate).Error
}
