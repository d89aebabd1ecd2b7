package repository

import (
	"errors"

	"gorm.io/gorm"

	"studio/internal/app/ds"
)

// Методы для работы с прайс-листом услуг.
// Позиции заказов ссылаются на услуги свободным текстом, поэтому правки
// и удаления в прайс-листе не затрагивают историю заказов.

// Получить все услуги
func (r *Repository) GetAllServices() ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.Order("name ASC").Find(&services).Error
	return services, err
}

// Поиск услуг по названию
func (r *Repository) SearchServicesByName(name string) ([]ds.Service, error) {
	var services []ds.Service
	err := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("name ASC").Find(&services).Error
	return services, err
}

// Получить услугу по ID
func (r *Repository) GetServiceByID(id uint) (*ds.Service, error) {
	var service ds.Service
	err := r.db.First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Создать услугу
func (r *Repository) CreateService(name, description string, minPrice float64) (*ds.Service, error) {
	service := ds.Service{
		Name:        name,
		MinPrice:    minPrice,
		Description: description,
	}
	if err := r.db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// Обновить услугу. Передаются только заполненные поля
func (r *Repository) UpdateService(id uint, name, description *string, minPrice *float64) error {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}
	if minPrice != nil {
		updates["min_price"] = *minPrice
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Удалить услугу
func (r *Repository) DeleteService(id uint) error {
	result := r.db.Delete(&ds.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Обновить изображение услуги
func (r *Repository) UpdateServiceImage(id uint, imageURL string) error {
	result := r.db.Model(&ds.Service{}).Where("id = ?", id).Update("image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Сбросить изображение услуги
func (r *Repository) DeleteServiceImage(id uint) error {
	return r.db.Model(&ds.Service{}).Where("id = ?", id).Update("image_url", nil).Error
}
