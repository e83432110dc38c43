package export

import (
	"fmt"
	"strconv"
	"strings"

	"go-card-ledger/internal/analytics"
	"go-card-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Exports reuse the analytics functions for every computed number, so a CSV
// opened in a spreadsheet always matches what the dashboard showed.

// quote wraps a string field in double quotes, doubling any embedded quotes
// (names and notes regularly contain commas)
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// num renders a currency/quantity value as a raw unlocalized number
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CustomersCSV renders one row per customer with their lifetime totals
func CustomersCSV(customers []models.Customer, transactions []models.Transaction) string {
	var b strings.Builder
	b.WriteString(`"Name","Business Name","Mobile","Email","Address","Business Type",Total Purchased,Amount Paid,Amount Pending,Transactions` + "\n")

	for _, c := range customers {
		stats := analytics.GetCustomerStats(c.ID, transactions)
		b.WriteString(strings.Join([]string{
			quote(c.Name),
			quote(c.BusinessName),
			quote(c.Mobile),
			quote(c.Email),
			quote(c.Address),
			quote(c.BusinessType),
			num(stats.TotalPurchased),
			num(stats.AmountPaid),
			num(stats.AmountPending),
			strconv.Itoa(stats.TransactionCount),
		}, ",") + "\n")
	}

	return b.String()
}

// TransactionsCSV renders one row per transaction
func TransactionsCSV(transactions []models.Transaction, customers []models.Customer) string {
	// id -> name lookup so rows carry a readable customer column
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	var b strings.Builder
	b.WriteString(`"Date","Customer","Products",Total Amount,Amount Paid,Amount Pending,"Status","Notes"` + "\n")

	for _, t := range transactions {
		products := make([]string, 0, len(t.Products))
		for _, p := range t.Products {
			products = append(products, fmt.Sprintf("%s x%s", p.Name, num(p.Quantity)))
		}

		b.WriteString(strings.Join([]string{
			quote(t.Date.Format("2006-01-02")),
			quote(names[t.CustomerID]),
			quote(strings.Join(products, "; ")),
			num(t.TotalAmount),
			num(t.AmountPaid),
			num(t.TotalAmount - t.AmountPaid),
			quote(t.Status),
			quote(t.Notes),
		}, ",") + "\n")
	}

	return b.String()
}

// CollectionRate returns collected/revenue as a percentage rounded to one
// decimal place (0 when there is no revenue yet)
func CollectionRate(collected, revenue float64) decimal.Decimal {
	if revenue <= 0 {
		return decimal.Zero.Round(1)
	}
	return decimal.NewFromFloat(collected).
		Div(decimal.NewFromFloat(revenue)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

// SummaryReport renders the plain-text business summary the share screen sends out
func SummaryReport(customers []models.Customer, transactions []models.Transaction, profile models.UserProfile) string {
	status := analytics.GetPaymentStatusData(transactions, nil, nil)
	revenue := status.Collected + status.Pending

	var paid, partial, pending int
	for _, t := range transactions {
		switch t.Status {
		case models.StatusPaid:
			paid++
		case models.StatusPartial:
			partial++
		default:
			pending++
		}
	}

	var b strings.Builder
	b.WriteString("BUSINESS SUMMARY REPORT\n")
	if profile.BusinessName != "" {
		b.WriteString(profile.BusinessName + "\n")
	}
	b.WriteString("=======================\n\n")
	fmt.Fprintf(&b, "Customers:        %d\n", len(customers))
	fmt.Fprintf(&b, "Transactions:     %d\n", len(transactions))
	fmt.Fprintf(&b, "Total Revenue:    %s %s\n", profile.Currency, num(revenue))
	fmt.Fprintf(&b, "Collected:        %s %s\n", profile.Currency, num(status.Collected))
	fmt.Fprintf(&b, "Pending:          %s %s\n", profile.Currency, num(status.Pending))
	fmt.Fprintf(&b, "Collection Rate:  %s%%\n\n", CollectionRate(status.Collected, revenue).StringFixed(1))
	fmt.Fprintf(&b, "Paid:    %d\n", paid)
	fmt.Fprintf(&b, "Partial: %d\n", partial)
	fmt.Fprintf(&b, "Pending: %d\n", pending)

	return b.String()
}
