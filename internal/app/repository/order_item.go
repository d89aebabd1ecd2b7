package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"studio/internal/app/ds"
	"studio/internal/app/ledger"
)

// Методы для работы с позициями заказов. Каждая мутация выполняется в одной
// транзакции с пересчётом итоговой суммы заказа и даты первой оплаты клиента,
// чтобы вычисляемые поля не расходились с позициями даже на мгновение.

// Получить позицию по ID
func (r *Repository) GetOrderItemByID(id uint) (*ds.OrderItem, error) {
	var item ds.OrderItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Добавить позицию в заказ
func (r *Repository) AddOrderItem(orderID uint, serviceName string, paymentDate time.Time, amount, hours float64) (*ds.OrderItem, error) {
	order, err := r.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	item := ds.OrderItem{
		OrderID:     orderID,
		ServiceName: serviceName,
		PaymentDate: paymentDate,
		Amount:      amount,
		Hours:       hours,
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		lg := ledger.New(tx)
		if err := lg.RecomputeOrderTotal(orderID); err != nil {
			return err
		}
		return lg.RecomputeFirstOrderDate(order.ClientID)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Обновить позицию заказа
func (r *Repository) UpdateOrderItem(id uint, serviceName *string, paymentDate *time.Time, amount, hours *float64) error {
	item, err := r.GetOrderItemByID(id)
	if err != nil {
		return err
	}
	order, err := r.GetOrderByID(item.OrderID)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if serviceName != nil {
		updates["service_name"] = *serviceName
	}
	if paymentDate != nil {
		updates["payment_date"] = *paymentDate
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if hours != nil {
		updates["hours"] = *hours
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ds.OrderItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		lg := ledger.New(tx)
		if err := lg.RecomputeOrderTotal(item.OrderID); err != nil {
			return err
		}
		return lg.RecomputeFirstOrderDate(order.ClientID)
	})
}

// Удалить позицию заказа
func (r *Repository) DeleteOrderItem(id uint) error {
	item, err := r.GetOrderItemByID(id)
	if err != nil {
		return err
	}
	order, err := r.GetOrderByID(item.OrderID)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ds.OrderItem{}, id).Error; err != nil {
			return err
		}
		lg := ledger.New(tx)
		if err := lg.RecomputeOrderTotal(item.OrderID); err != nil {
			return err
		}
		return lg.RecomputeFirstOrderDate(order.ClientID)
	})
}
