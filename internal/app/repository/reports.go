package repository

import (
	"sort"

	"studio/internal/app/ds"
)

// Отчёты - табличные агрегации только на чтение

// Строка отчёта по месяцам
type MonthlyReportRow struct {
	Month   string  `json:"month"` // ГГГГ-ММ
	Revenue float64 `json:"revenue"`
	Hours   float64 `json:"hours"`
	Items   int     `json:"items"`
}

// Строка отчёта по услугам
type ServiceReportRow struct {
	ServiceName string  `json:"service_name"`
	Revenue     float64 `json:"revenue"`
	Items       int     `json:"items"`
}

// Строка отчёта по статусам заказов
type StatusReportRow struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Строка отчёта по группам клиентов
type GroupReportRow struct {
	GroupName string `json:"group_name"`
	Clients   int    `json:"clients"`
}

// Выручка, часы и число позиций по месяцам оплаты. Группировка по месяцу
// выполняется в коде: функции работы с датами у SQLite и Postgres разные
func (r *Repository) RevenueByMonth() ([]MonthlyReportRow, error) {
	var items []ds.OrderItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}

	byMonth := make(map[string]*MonthlyReportRow)
	for _, item := range items {
		month := item.PaymentDate.Format("2006-01")
		row, ok := byMonth[month]
		if !ok {
			row = &MonthlyReportRow{Month: month}
			byMonth[month] = row
		}
		row.Revenue += item.Amount
		row.Hours += item.Hours
		row.Items++
	}

	rows := make([]MonthlyReportRow, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows, nil
}

// Услуги по убыванию выручки. Группировка по свободному тексту названия -
// так же, как услуги записаны в позициях
func (r *Repository) TopServicesByRevenue(limit int) ([]ServiceReportRow, error) {
	query := r.db.Model(&ds.OrderItem{}).
		Select("service_name, SUM(amount) AS revenue, COUNT(*) AS items").
		Group("service_name").
		Order("revenue DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []ServiceReportRow
	err := query.Scan(&rows).Error
	return rows, err
}

// Количество заказов по статусам
func (r *Repository) OrderCountByStatus() ([]StatusReportRow, error) {
	var rows []StatusReportRow
	err := r.db.Model(&ds.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// Количество клиентов по группам. Клиенты без группы попадают в отдельную строку
func (r *Repository) ClientCountByGroup() ([]GroupReportRow, error) {
	var rows []GroupReportRow
	err := r.db.Model(&ds.Client{}).
		Select("COALESCE(groups.name, 'Без группы') AS group_name, COUNT(*) AS clients").
		Joins("LEFT JOIN groups ON groups.id = clients.group_id").
		Group("groups.name").
		Order("clients DESC").
		Scan(&rows).Error
	return rows, err
}
