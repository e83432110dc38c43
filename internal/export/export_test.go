package export

import (
	"strings"
	"testing"
	"time"

	"go-card-ledger/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCustomersCSV(t *testing.T) {
	customers := []models.Customer{
		{ID: "c1", Name: `Acme "Best" Traders`, BusinessName: "Acme, Inc", Mobile: "9876543210"},
	}
	transactions := []models.Transaction{
		{ID: "t1", CustomerID: "c1", Date: day(2026, time.May, 1), TotalAmount: 1000, AmountPaid: 1000, Status: models.StatusPaid},
		{ID: "t2", CustomerID: "c1", Date: day(2026, time.June, 1), TotalAmount: 500, AmountPaid: 200, Status: models.StatusPartial},
	}

	csv := CustomersCSV(customers, transactions)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"Name","Business Name"`) {
		t.Fatalf("header row wrong: %s", lines[0])
	}
	// Embedded quotes doubled, commas safe inside quoted fields
	if !strings.Contains(lines[1], `"Acme ""Best"" Traders"`) {
		t.Fatalf("quote escaping wrong: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"Acme, Inc"`) {
		t.Fatalf("comma field not quoted: %s", lines[1])
	}
	// Computed totals: 1500 purchased, 1200 paid, 300 pending, 2 transactions
	if !strings.HasSuffix(lines[1], "1500,1200,300,2") {
		t.Fatalf("totals wrong (numbers must be unquoted): %s", lines[1])
	}
}

func TestTransactionsCSV(t *testing.T) {
	customers := []models.Customer{{ID: "c1", Name: "Ravi Kumar"}}
	transactions := []models.Transaction{
		{
			ID: "t1", CustomerID: "c1", Date: day(2026, time.August, 3),
			Products: []models.ProductItem{
				{Name: "Saree", Quantity: 2, UnitPrice: 750, Total: 1500},
				{Name: "Shawl", Quantity: 1, UnitPrice: 500, Total: 500},
			},
			TotalAmount: 2000, AmountPaid: 500, Status: models.StatusPartial, Notes: "festival order",
		},
	}

	csv := TransactionsCSV(transactions, customers)
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	row := lines[1]
	for _, want := range []string{`"2026-08-03"`, `"Ravi Kumar"`, `"Saree x2; Shawl x1"`, "2000,500,1500", `"partial"`, `"festival order"`} {
		if !strings.Contains(row, want) {
			t.Fatalf("row missing %s: %s", want, row)
		}
	}
}

func TestCollectionRate(t *testing.T) {
	cases := []struct {
		collected float64
		revenue   float64
		expected  string
	}{
		{500, 1500, "33.3"},
		{1500, 1500, "100.0"},
		{0, 1500, "0.0"},
		{0, 0, "0.0"}, // no revenue yet, not a division by zero
		{1, 3, "33.3"},
	}
	for _, tc := range cases {
		if got := CollectionRate(tc.collected, tc.revenue).StringFixed(1); got != tc.expected {
			t.Fatalf("CollectionRate(%v, %v) expected %s, got %s", tc.collected, tc.revenue, tc.expected, got)
		}
	}
}

func TestSummaryReport(t *testing.T) {
	customers := []models.Customer{{ID: "c1", Name: "Ravi Kumar"}}
	transactions := []models.Transaction{
		{ID: "t1", CustomerID: "c1", Date: day(2026, time.August, 1), TotalAmount: 1000, AmountPaid: 500, Status: models.StatusPartial},
		{ID: "t2", CustomerID: "c1", Date: day(2026, time.August, 2), TotalAmount: 500, AmountPaid: 0, Status: models.StatusPending},
	}
	profile := models.UserProfile{Name: "Asha", BusinessName: "Asha Stores", Currency: "INR"}

	report := SummaryReport(customers, transactions, profile)

	for _, want := range []string{
		"Asha Stores",
		"Total Revenue:    INR 1500",
		"Collected:        INR 500",
		"Pending:          INR 1000",
		"Collection Rate:  33.3%",
		"Partial: 1",
		"Pending: 1",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReportXLSX(t *testing.T) {
	customers := []models.Customer{{ID: "c1", Name: "Ravi Kumar"}}
	transactions := []models.Transaction{
		{ID: "t1", CustomerID: "c1", Date: day(2026, time.August, 3), TotalAmount: 2000, AmountPaid: 500, Status: models.StatusPartial},
	}
	profile := models.UserProfile{BusinessName: "Asha Stores", Currency: "INR"}

	buf, err := ReportXLSX(customers, transactions, profile)
	if err != nil {
		t.Fatalf("ReportXLSX: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook came back empty")
	}
}
