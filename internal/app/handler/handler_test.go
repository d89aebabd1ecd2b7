package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studio/internal/app/ds"
	"studio/internal/app/dto"
	"studio/internal/app/repository"
)

func newTestServer(t *testing.T) (*gin.Engine, *repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(&ds.Group{}, &ds.Client{}, &ds.Service{}, &ds.Order{}, &ds.OrderItem{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := repository.NewWithDB(db)
	router := gin.New()
	NewAPIHandler(repo, nil).RegisterRoutes(router)
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateClient_NormalizesContacts(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/clients", dto.CreateClientRequest{
		Name:  "Иванов Иван",
		Sex:   "М",
		Phone: "8 (999) 123-45-67",
		VKID:  "https://vk.com/123456",
		TGID:  "@studio_user",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.ClientResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Phone != "79991234567" {
		t.Fatalf("phone = %q, want canonical 79991234567", resp.Phone)
	}
	if resp.VKID != "id123456" {
		t.Fatalf("vk_id = %q, want id123456", resp.VKID)
	}
	if resp.TGID != "studio_user" {
		t.Fatalf("tg_id = %q, want studio_user", resp.TGID)
	}
	if resp.PhoneDisplay != "+7 999 123-45-67" {
		t.Fatalf("phone_display = %q", resp.PhoneDisplay)
	}
	if resp.PhoneLink != "tel:+79991234567" {
		t.Fatalf("phone_link = %q", resp.PhoneLink)
	}
	if resp.VKLink != "https://vk.com/id123456" {
		t.Fatalf("vk_link = %q", resp.VKLink)
	}
	if resp.TGLink != "https://t.me/studio_user" {
		t.Fatalf("tg_link = %q", resp.TGLink)
	}
	if resp.GroupName != "Без группы" {
		t.Fatalf("group_name = %q", resp.GroupName)
	}
}

func TestCreateClient_RejectsBadPhone(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/clients", dto.CreateClientRequest{
		Name:  "Иванов",
		Phone: "12345",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestOrderItemEndpoints(t *testing.T) {
	router, repo := newTestServer(t)

	client := ds.Client{Name: "Иванов"}
	if err := repo.CreateClient(&client); err != nil {
		t.Fatalf("create client: %v", err)
	}
	order, err := repo.CreateOrder(client.ID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), ds.OrderStatusInProgress)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	orderPath := fmt.Sprintf("/api/orders/%d", order.ID)

	w := doJSON(t, router, http.MethodPost, orderPath+"/items", dto.CreateOrderItemRequest{
		ServiceName: "Запись вокала",
		PaymentDate: "2024-01-12",
		Amount:      5000,
		Hours:       1.5,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add item status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, orderPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get order status = %d", w.Code)
	}

	var resp dto.OrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.TotalAmount != 5000 {
		t.Fatalf("total = %v, want 5000", resp.TotalAmount)
	}
	if len(resp.Items) != 1 || resp.Items[0].PaymentDate != "2024-01-12" {
		t.Fatalf("items = %+v", resp.Items)
	}

	// Неверная дата отклоняется до записи
	w = doJSON(t, router, http.MethodPost, orderPath+"/items", dto.CreateOrderItemRequest{
		ServiceName: "Сведение",
		PaymentDate: "12.01.2024",
		Amount:      3000,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d, want 400", w.Code)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/orders/777", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteGroup_Referenced(t *testing.T) {
	router, repo := newTestServer(t)

	group, err := repo.CreateGroup("Постоянные")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	client := ds.Client{Name: "Иванов", GroupID: &group.ID}
	if err := repo.CreateClient(&client); err != nil {
		t.Fatalf("create client: %v", err)
	}

	w := doJSON(t, router, http.MethodDelete, "/api/groups/1", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestCreateOrder_UnknownStatus(t *testing.T) {
	router, repo := newTestServer(t)

	client := ds.Client{Name: "Иванов"}
	if err := repo.CreateClient(&client); err != nil {
		t.Fatalf("create client: %v", err)
	}

	w := doJSON(t, router, http.MethodPost, "/api/orders", dto.CreateOrderRequest{
		ClientID:      client.ID,
		ExecutionDate: "2024-01-10",
		Status:        "неизвестный",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
