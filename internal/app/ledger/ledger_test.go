package ledger

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studio/internal/app/ds"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(&ds.Group{}, &ds.Client{}, &ds.Service{}, &ds.Order{}, &ds.OrderItem{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createClientWithOrder(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()

	client := ds.Client{Name: "Иванов Иван", Sex: "М"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	order := ds.Order{
		ClientID:      client.ID,
		ExecutionDate: date(2024, 1, 10),
		Status:        ds.OrderStatusInProgress,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}
	return client.ID, order.ID
}

func TestRecomputeOrderTotal_EmptyOrderIsZero(t *testing.T) {
	db := openTestDB(t)
	_, orderID := createClientWithOrder(t, db)

	// Искусственно расходим сумму с позициями
	if err := db.Model(&ds.Order{}).Where("id = ?", orderID).Update("total_amount", 999).Error; err != nil {
		t.Fatalf("seed drift: %v", err)
	}

	if err := New(db).RecomputeOrderTotal(orderID); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	var order ds.Order
	if err := db.First(&order, orderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.TotalAmount != 0 {
		t.Fatalf("total = %v, want 0 for empty order", order.TotalAmount)
	}
}

func TestRecomputeOrderTotal_SumsItems(t *testing.T) {
	db := openTestDB(t)
	_, orderID := createClientWithOrder(t, db)

	items := []ds.OrderItem{
		{OrderID: orderID, ServiceName: "Запись вокала", PaymentDate: date(2024, 1, 12), Amount: 5000, Hours: 1.5},
		{OrderID: orderID, ServiceName: "Сведение", PaymentDate: date(2024, 1, 5), Amount: 3000, Hours: 2},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create items: %v", err)
	}

	if err := New(db).RecomputeOrderTotal(orderID); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	var order ds.Order
	if err := db.First(&order, orderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.TotalAmount != 8000 {
		t.Fatalf("total = %v, want 8000", order.TotalAmount)
	}
}

func TestRecomputeOrderTotal_MissingOrder(t *testing.T) {
	db := openTestDB(t)

	err := New(db).RecomputeOrderTotal(12345)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestRecomputeFirstOrderDate_MinAcrossOrders(t *testing.T) {
	db := openTestDB(t)
	clientID, firstOrderID := createClientWithOrder(t, db)

	secondOrder := ds.Order{
		ClientID:      clientID,
		ExecutionDate: date(2024, 2, 1),
		Status:        ds.OrderStatusAwaiting,
	}
	if err := db.Create(&secondOrder).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	items := []ds.OrderItem{
		{OrderID: firstOrderID, ServiceName: "Запись вокала", PaymentDate: date(2024, 1, 12), Amount: 5000, Hours: 1.5},
		{OrderID: secondOrder.ID, ServiceName: "Аренда комнаты", PaymentDate: date(2024, 1, 5), Amount: 1500, Hours: 1},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create items: %v", err)
	}

	if err := New(db).RecomputeFirstOrderDate(clientID); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	var client ds.Client
	if err := db.First(&client, clientID).Error; err != nil {
		t.Fatalf("load client: %v", err)
	}
	if client.FirstOrderDate == nil {
		t.Fatal("first_order_date is nil")
	}
	if !client.FirstOrderDate.Equal(date(2024, 1, 5)) {
		t.Fatalf("first_order_date = %v, want 2024-01-05", client.FirstOrderDate)
	}
}

func TestRecomputeFirstOrderDate_NullWhenNoItems(t *testing.T) {
	db := openTestDB(t)
	clientID, _ := createClientWithOrder(t, db)

	// Поле было заполнено раньше, но позиций больше нет
	old := date(2023, 12, 1)
	if err := db.Model(&ds.Client{}).Where("id = ?", clientID).Update("first_order_date", old).Error; err != nil {
		t.Fatalf("seed stale date: %v", err)
	}

	if err := New(db).RecomputeFirstOrderDate(clientID); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	var client ds.Client
	if err := db.First(&client, clientID).Error; err != nil {
		t.Fatalf("load client: %v", err)
	}
	if client.FirstOrderDate != nil {
		t.Fatalf("first_order_date = %v, want NULL", client.FirstOrderDate)
	}
}

func TestRecomputeFirstOrderDate_MissingClient(t *testing.T) {
	db := openTestDB(t)

	err := New(db).RecomputeFirstOrderDate(12345)
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
