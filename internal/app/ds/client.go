package ds

import "time"

// Таблица клиентов студии
type Client struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
	Sex  string `gorm:"type:varchar(1)"` // М, Ж
	// Контакты храним в каноническом виде: телефон - только цифры (79991234567),
	// VK - id123456 или короткое имя, Telegram - ник без @
	Phone   string `gorm:"type:varchar(20)"`
	VKID    string `gorm:"column:vk_id;type:varchar(50)"`
	TGID    string `gorm:"column:tg_id;type:varchar(50)"`
	GroupID *uint  `gorm:"default:null"`
	// Дата первой оплаты - вычисляемое поле (минимальная payment_date по всем
	// позициям заказов клиента), руками не редактируется
	FirstOrderDate *time.Time `gorm:"default:null"`

	Group *Group `gorm:"foreignKey:GroupID"`
}
