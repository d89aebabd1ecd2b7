package repository

import (
	"errors"

	"gorm.io/gorm"

	"studio/internal/app/ds"
)

// Методы для работы с клиентами

// Параметры списка клиентов
type ClientFilter struct {
	Search  string // Поиск по имени или телефону
	GroupID uint   // 0 - без фильтра по группе
}

// Получить список клиентов с поиском и фильтром по группе
func (r *Repository) GetClients(filter ClientFilter) ([]ds.Client, error) {
	query := r.db.Preload("Group").Order("id DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone LIKE ?", pattern, pattern)
	}
	if filter.GroupID != 0 {
		query = query.Where("group_id = ?", filter.GroupID)
	}

	var clients []ds.Client
	err := query.Find(&clients).Error
	return clients, err
}

// Получить клиента по ID
func (r *Repository) GetClientByID(id uint) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Preload("Group").First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Создать клиента. Контактные поля приходят уже в канонической форме,
// нормализация выполняется на уровне обработчика до записи
func (r *Repository) CreateClient(client *ds.Client) error {
	if client.GroupID != nil {
		if _, err := r.GetGroupByID(*client.GroupID); err != nil {
			return err
		}
	}
	return r.db.Create(client).Error
}

// Обновить клиента. Дата первой оплаты не трогается - это вычисляемое поле
func (r *Repository) UpdateClient(client *ds.Client) error {
	if client.GroupID != nil {
		if _, err := r.GetGroupByID(*client.GroupID); err != nil {
			return err
		}
	}

	result := r.db.Model(&ds.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":     client.Name,
			"sex":      client.Sex,
			"phone":    client.Phone,
			"vk_id":    client.VKID,
			"tg_id":    client.TGID,
			"group_id": client.GroupID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Удалить клиента. Клиент с заказами не удаляется
func (r *Repository) DeleteClient(id uint) error {
	var orders int64
	if err := r.db.Model(&ds.Order{}).Where("client_id = ?", id).Count(&orders).Error; err != nil {
		return err
	}
	if orders > 0 {
		return ErrClientHasOrders
	}

	result := r.db.Delete(&ds.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
