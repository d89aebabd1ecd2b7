package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studio/internal/app/ds"
	"studio/internal/app/ledger"
)

// Бизнес-ошибки репозитория, обработчики переводят их в коды ответа
var (
	ErrGroupNotFound   = errors.New("группа не найдена")
	ErrGroupReferenced = errors.New("группу нельзя удалить - в ней есть клиенты")
	ErrGroupExists     = errors.New("группа с таким названием уже существует")
	ErrClientNotFound  = errors.New("клиент не найден")
	ErrClientHasOrders = errors.New("клиента нельзя удалить - у него есть заказы")
	ErrServiceNotFound = errors.New("услуга не найдена")
	ErrOrderNotFound   = errors.New("заказ не найден")
	ErrItemNotFound    = errors.New("позиция заказа не найдена")
)

type Repository struct {
	db     *gorm.DB
	ledger *ledger.Ledger
}

// New открывает базу и выполняет миграцию. DSN вида postgres://... подключает
// Postgres, всё остальное трактуется как путь к локальному файлу SQLite -
// штатный режим работы студии (один оператор, встроенная база).
func New(dsnStr string) (*Repository, error) {
	var dialector gorm.Dialector
	if isPostgresDSN(dsnStr) {
		dialector = postgres.Open(dsnStr)
	} else {
		dialector = sqlite.Open(dsnStr)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.Group{},
		&ds.Client{},
		&ds.Service{},
		&ds.Order{},
		&ds.OrderItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB оборачивает уже открытое подключение (используется в тестах)
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{
		db:     db,
		ledger: ledger.New(db),
	}
}

func isPostgresDSN(dsnStr string) bool {
	return strings.HasPrefix(dsnStr, "postgres://") ||
		strings.HasPrefix(dsnStr, "postgresql://") ||
		strings.HasPrefix(dsnStr, "host=")
}
