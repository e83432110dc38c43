package export

import (
	"bytes"
	"fmt"
	"strings"

	"go-card-ledger/internal/analytics"
	"go-card-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

// ReportXLSX builds a three-sheet workbook (Customers, Transactions, Summary)
// for people who want the full picture in a spreadsheet instead of raw CSVs
func ReportXLSX(customers []models.Customer, transactions []models.Transaction, profile models.UserProfile) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// --- Sheet 1: Customers ---
	if err := f.SetSheetName("Sheet1", "Customers"); err != nil {
		return nil, err
	}
	headers := []string{"Name", "Business Name", "Mobile", "Email", "Business Type", "Total Purchased", "Amount Paid", "Amount Pending", "Transactions"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue("Customers", cell, h); err != nil {
			return nil, err
		}
	}
	for row, c := range customers {
		stats := analytics.GetCustomerStats(c.ID, transactions)
		values := []any{c.Name, c.BusinessName, c.Mobile, c.Email, c.BusinessType,
			stats.TotalPurchased, stats.AmountPaid, stats.AmountPending, stats.TransactionCount}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue("Customers", cell, v); err != nil {
				return nil, err
			}
		}
	}

	// --- Sheet 2: Transactions ---
	if _, err := f.NewSheet("Transactions"); err != nil {
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	txHeaders := []string{"Date", "Customer", "Products", "Total Amount", "Amount Paid", "Amount Pending", "Status", "Notes"}
	for col, h := range txHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue("Transactions", cell, h); err != nil {
			return nil, err
		}
	}
	for row, t := range transactions {
		products := make([]string, 0, len(t.Products))
		for _, p := range t.Products {
			products = append(products, fmt.Sprintf("%s x%s", p.Name, num(p.Quantity)))
		}
		values := []any{t.Date.Format("2006-01-02"), names[t.CustomerID], strings.Join(products, "; "),
			t.TotalAmount, t.AmountPaid, t.TotalAmount - t.AmountPaid, t.Status, t.Notes}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue("Transactions", cell, v); err != nil {
				return nil, err
			}
		}
	}

	// --- Sheet 3: Summary ---
	if _, err := f.NewSheet("Summary"); err != nil {
		return nil, err
	}
	status := analytics.GetPaymentStatusData(transactions, nil, nil)
	revenue := status.Collected + status.Pending
	summary := [][2]any{
		{"Business", profile.BusinessName},
		{"Currency", profile.Currency},
		{"Customers", len(customers)},
		{"Transactions", len(transactions)},
		{"Total Revenue", revenue},
		{"Collected", status.Collected},
		{"Pending", status.Pending},
		{"Collection Rate (%)", CollectionRate(status.Collected, revenue).StringFixed(1)},
	}
	for row, pair := range summary {
		keyCell, _ := excelize.CoordinatesToCellName(1, row+1)
		valCell, _ := excelize.CoordinatesToCellName(2, row+1)
		if err := f.SetCellValue("Summary", keyCell, pair[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Summary", valCell, pair[1]); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
