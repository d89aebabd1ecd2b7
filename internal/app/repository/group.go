package repository

import (
	"errors"

	"gorm.io/gorm"

	"studio/internal/app/ds"
)

// Методы для работы с группами клиентов

// Получить все группы
func (r *Repository) GetAllGroups() ([]ds.Group, error) {
	var groups []ds.Group
	err := r.db.Order("name ASC").Find(&groups).Error
	return groups, err
}

// Получить группу по ID
func (r *Repository) GetGroupByID(id uint) (*ds.Group, error) {
	var group ds.Group
	err := r.db.First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Создать группу. Название уникально
func (r *Repository) CreateGroup(name string) (*ds.Group, error) {
	var count int64
	if err := r.db.Model(&ds.Group{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrGroupExists
	}

	group := ds.Group{Name: name}
	if err := r.db.Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// Переименовать группу
func (r *Repository) UpdateGroup(id uint, name string) error {
	var count int64
	if err := r.db.Model(&ds.Group{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrGroupExists
	}

	result := r.db.Model(&ds.Group{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

// Удалить группу. Пока на группу ссылается хотя бы один клиент, удаление
// отклоняется
func (r *Repository) DeleteGroup(id uint) error {
	var refs int64
	if err := r.db.Model(&ds.Client{}).Where("group_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrGroupReferenced
	}

	result := r.db.Delete(&ds.Group{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}
	return nil
}
