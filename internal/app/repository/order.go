package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"studio/internal/app/ds"
	"studio/internal/app/ledger"
)

// Методы для работы с заказами

// Параметры списка заказов
type OrderFilter struct {
	ClientID uint   // 0 - без фильтра
	Status   string // пусто - без фильтра
	DateFrom *time.Time
	DateTo   *time.Time
}

// Получить список заказов с фильтрами
func (r *Repository) GetOrders(filter OrderFilter) ([]ds.Order, error) {
	query := r.db.Preload("Client").Order("execution_date DESC, id DESC")

	if filter.ClientID != 0 {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != nil {
		query = query.Where("execution_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("execution_date <= ?", *filter.DateTo)
	}

	var orders []ds.Order
	err := query.Find(&orders).Error
	return orders, err
}

// Получить заказ по ID
func (r *Repository) GetOrderByID(id uint) (*ds.Order, error) {
	var order ds.Order
	err := r.db.Preload("Client").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Получить позиции заказа
func (r *Repository) GetOrderItems(orderID uint) ([]ds.OrderItem, error) {
	if _, err := r.GetOrderByID(orderID); err != nil {
		return nil, err
	}

	var items []ds.OrderItem
	err := r.db.Where("order_id = ?", orderID).Order("payment_date ASC, id ASC").Find(&items).Error
	return items, err
}

// Создать заказ для существующего клиента. Новый заказ пуст, итоговая сумма 0
func (r *Repository) CreateOrder(clientID uint, executionDate time.Time, status string) (*ds.Order, error) {
	if _, err := r.GetClientByID(clientID); err != nil {
		return nil, err
	}

	order := ds.Order{
		ClientID:      clientID,
		ExecutionDate: executionDate,
		Status:        status,
		TotalAmount:   0,
	}
	if err := r.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Обновить статус и дату исполнения заказа. Итоговая сумма не редактируется
// напрямую - только пересчётом по позициям
func (r *Repository) UpdateOrder(id uint, executionDate *time.Time, status *string) error {
	updates := map[string]interface{}{}
	if executionDate != nil {
		updates["execution_date"] = *executionDate
	}
	if status != nil {
		updates["status"] = *status
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Order{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Удалить заказ вместе с позициями. После удаления пересчитывается дата
// первой оплаты клиента - позиции заказа могли быть самыми ранними
func (r *Repository) DeleteOrder(id uint) error {
	order, err := r.GetOrderByID(id)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&ds.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ds.Order{}, id).Error; err != nil {
			return err
		}
		return ledger.New(tx).RecomputeFirstOrderDate(order.ClientID)
	})
}
