package ds

// Таблица услуг (прайс-лист студии)
type Service struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	MinPrice    float64 `gorm:"type:decimal(12,2);default:0"` // Минимальная цена - ориентир, не ограничение
	Description string  `gorm:"type:text"`
	ImageURL    *string `gorm:"type:varchar(255);default:null"`
}
