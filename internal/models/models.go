package models

import (
	"time"
)

// Transaction status values. Status is always derived from the money,
// never set by hand — see DeriveStatus below.
const (
	StatusPaid    = "paid"
	StatusPartial = "partial"
	StatusPending = "pending"
)

// Payment methods the app understands
const (
	MethodCash  = "cash"
	MethodUPI   = "upi"
	MethodBank  = "bank"
	MethodOther = "other"
)

// Customer - One contact in the book (usually scanned from a business card)
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	Mobile       string    `json:"mobile"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	BusinessType string    `json:"business_type"`
	CardImageURI string    `json:"card_image_uri,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerPatch - Partial update for a customer.
// Only non-nil fields get merged into the stored record.
type CustomerPatch struct {
	Name         *string `json:"name"`
	BusinessName *string `json:"business_name"`
	Mobile       *string `json:"mobile"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	BusinessType *string `json:"business_type"`
	CardImageURI *string `json:"card_image_uri"`
}

// ProductItem - One line inside a transaction.
// Total is computed at creation time (quantity * unit price) and trusted downstream.
type ProductItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Transaction - One sales event for a customer
type Transaction struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	Date        time.Time     `json:"date"`
	Products    []ProductItem `json:"products"`
	TotalAmount float64       `json:"total_amount"`
	AmountPaid  float64       `json:"amount_paid"`
	Status      string        `json:"status"` // 'paid', 'partial', 'pending'
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Payment - One settlement (full or partial) against a transaction.
// CustomerID is a denormalized copy of the transaction's customer so the
// customer detail screen can list payments without joining through transactions.
type Payment struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	CustomerID    string    `json:"customer_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Method        string    `json:"method"` // 'cash', 'upi', 'bank', 'other'
	Notes         string    `json:"notes,omitempty"`
}

// UserProfile - The shop owner. Exactly one per installation.
type UserProfile struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"` // ISO 4217 code, defaults to INR
}

// CardFields - Best-effort contact fields pulled off a photographed card.
// All strings, all optional; the scan never fails harder than empty fields.
type CardFields struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BusinessType string `json:"business_type"`
}

// DeriveStatus is THE status rule. Every code path that touches AmountPaid
// must go through here so the three-way split never drifts between call sites.
func DeriveStatus(totalAmount, amountPaid float64) string {
	if amountPaid >= totalAmount {
		return StatusPaid
	}
	if amountPaid <= 0 {
		return StatusPending
	}
	return StatusPartial
}

// Pending returns how much of the transaction is still owed
func (t Transaction) Pending() float64 {
	return t.TotalAmount - t.AmountPaid
}
