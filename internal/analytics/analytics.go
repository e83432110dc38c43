package analytics

import (
	"sort"
	"time"

	"go-card-ledger/internal/models"
)

// Every function in this package is a pure view over collection snapshots:
// pass in the slices (and a "now" where month bucketing is involved), get a
// freshly built result back. Nothing here touches the database and nothing
// mutates its inputs, so the dashboard, the reports screen and the exports
// can never disagree — they all call the same math.

// DashboardStats - The four numbers on the home screen
type DashboardStats struct {
	TotalCustomers     int         `json:"total_customers"`
	ThisMonthRevenue   float64     `json:"this_month_revenue"`
	PendingCollections float64     `json:"pending_collections"`
	TopCustomer        TopCustomer `json:"top_customer"`
}

// TopCustomer - Biggest buyer of the current month (nil customer when the
// month has no transactions at all)
type TopCustomer struct {
	Customer *models.Customer `json:"customer"`
	Amount   float64          `json:"amount"`
}

// RankedCustomer - One row of the monthly leaderboard
type RankedCustomer struct {
	Customer         models.Customer `json:"customer"`
	Rank             int             `json:"rank"`
	TotalAmount      float64         `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
}

// CustomerStats - Lifetime numbers for one customer's detail screen
type CustomerStats struct {
	TotalPurchased   float64          `json:"total_purchased"`
	AmountPaid       float64          `json:"amount_paid"`
	AmountPending    float64          `json:"amount_pending"`
	TransactionCount int              `json:"transaction_count"`
	TopProducts      []ProductSummary `json:"top_products"`
}

// ProductSummary - One product aggregated across transactions
type ProductSummary struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// ChartData - Label/value pairs for the revenue line chart
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// PaymentStatusData - Collected vs pending split for the pie chart
type PaymentStatusData struct {
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}

// sameMonth reports whether two instants fall in the same calendar month.
// Calendar semantics, not rolling 30 days.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// inRange applies the optional inclusive [start, end] filter
func inRange(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

func findCustomer(customers []models.Customer, id string) *models.Customer {
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i]
		}
	}
	return nil
}

// GetDashboardStats computes the home-screen summary.
// Revenue and the top customer only count the current calendar month;
// pending collections count every transaction ever.
func GetDashboardStats(customers []models.Customer, transactions []models.Transaction, now time.Time) DashboardStats {
	stats := DashboardStats{TotalCustomers: len(customers)}

	// Per-customer month totals, in first-encountered order so ties
	// resolve deterministically
	monthTotals := map[string]float64{}
	order := []string{}

	for _, t := range transactions {
		stats.PendingCollections += t.TotalAmount - t.AmountPaid

		if !sameMonth(t.Date, now) {
			continue
		}
		stats.ThisMonthRevenue += t.TotalAmount

		if _, seen := monthTotals[t.CustomerID]; !seen {
			order = append(order, t.CustomerID)
		}
		monthTotals[t.CustomerID] += t.TotalAmount
	}

	// Top customer: first one to reach the highest total wins ties
	best := TopCustomer{Customer: nil, Amount: 0}
	bestID := ""
	for _, id := range order {
		if monthTotals[id] > best.Amount {
			best.Amount = monthTotals[id]
			bestID = id
		}
	}
	if bestID != "" {
		best.Customer = findCustomer(customers, bestID)
	}
	stats.TopCustomer = best

	return stats
}

// GetMonthlyRankings builds the leaderboard for one calendar month.
// Customers without a transaction in that month simply do not appear.
func GetMonthlyRankings(customers []models.Customer, transactions []models.Transaction, month time.Month, year int) []RankedCustomer {
	type agg struct {
		total float64
		count int
	}
	totals := map[string]*agg{}
	order := []string{}

	for _, t := range transactions {
		if t.Date.Month() != month || t.Date.Year() != year {
			continue
		}
		a, seen := totals[t.CustomerID]
		if !seen {
			a = &agg{}
			totals[t.CustomerID] = a
			order = append(order, t.CustomerID)
		}
		a.total += t.TotalAmount
		a.count++
	}

	rankings := make([]RankedCustomer, 0, len(order))
	for _, id := range order {
		customer := findCustomer(customers, id)
		if customer == nil {
			// Orphaned transaction (should not happen thanks to the
			// delete cascade) — nothing to show on the leaderboard
			continue
		}
		rankings = append(rankings, RankedCustomer{
			Customer:         *customer,
			TotalAmount:      totals[id].total,
			TransactionCount: totals[id].count,
		})
	}

	// Stable sort keeps encounter order for equal totals, then ranks are
	// just 1..n down the list (no shared ranks)
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].TotalAmount > rankings[j].TotalAmount
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return rankings
}

// GetCustomerStats sums one customer's entire history (no date filter)
func GetCustomerStats(customerID string, transactions []models.Transaction) CustomerStats {
	stats := CustomerStats{}

	quantities := map[string]*ProductSummary{}
	order := []string{}

	for _, t := range transactions {
		if t.CustomerID != customerID {
			continue
		}
		stats.TotalPurchased += t.TotalAmount
		stats.AmountPaid += t.AmountPaid
		stats.TransactionCount++

		for _, item := range t.Products {
			p, seen := quantities[item.Name]
			if !seen {
				p = &ProductSummary{Name: item.Name}
				quantities[item.Name] = p
				order = append(order, item.Name)
			}
			p.Quantity += item.Quantity
			p.Revenue += item.Total
		}
	}

	// Deliberately not clamped at zero: a negative pending amount means an
	// upstream invariant broke and hiding it would be worse
	stats.AmountPending = stats.TotalPurchased - stats.AmountPaid

	top := make([]ProductSummary, 0, len(order))
	for _, name := range order {
		top = append(top, *quantities[name])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopProducts = top

	return stats
}

// GetRevenueChartData buckets revenue into the trailing N calendar months
// ending at now's month, oldest first. Months without sales stay in the
// series as zeroes. The optional [start, end] range applies on top of the
// month bucketing, not instead of it.
func GetRevenueChartData(transactions []models.Transaction, months int, start, end *time.Time, now time.Time) ChartData {
	chart := ChartData{
		Labels: make([]string, 0, months),
		Data:   make([]float64, 0, months),
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := months - 1; i >= 0; i-- {
		bucket := first.AddDate(0, -i, 0)
		chart.Labels = append(chart.Labels, bucket.Format("Jan"))

		var sum float64
		for _, t := range transactions {
			if !sameMonth(t.Date, bucket) {
				continue
			}
			if !inRange(t.Date, start, end) {
				continue
			}
			sum += t.TotalAmount
		}
		chart.Data = append(chart.Data, sum)
	}

	return chart
}

// GetPaymentStatusData splits the money into collected vs still-owed,
// optionally restricted to a date range
func GetPaymentStatusData(transactions []models.Transaction, start, end *time.Time) PaymentStatusData {
	data := PaymentStatusData{}
	for _, t := range transactions {
		if !inRange(t.Date, start, end) {
			continue
		}
		data.Collected += t.AmountPaid
		data.Pending += t.TotalAmount - t.AmountPaid
	}
	return data
}

// GetTopProducts aggregates products by name across (date-filtered)
// transactions and returns the best earners, highest revenue first
func GetTopProducts(transactions []models.Transaction, limit int, start, end *time.Time) []ProductSummary {
	totals := map[string]*ProductSummary{}
	order := []string{}

	for _, t := range transactions {
		if !inRange(t.Date, start, end) {
			continue
		}
		for _, item := range t.Products {
			p, seen := totals[item.Name]
			if !seen {
				p = &ProductSummary{Name: item.Name}
				totals[item.Name] = p
				order = append(order, item.Name)
			}
			p.Quantity += item.Quantity
			p.Revenue += item.Total
		}
	}

	products := make([]ProductSummary, 0, len(order))
	for _, name := range order {
		products = append(products, *totals[name])
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products
}
