package ledger

import (
	"testing"
	"time"

	"go-card-ledger/internal/database"
	"go-card-ledger/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.Blob{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
}

func mustAddCustomer(t *testing.T, name string) models.Customer {
	t.Helper()
	c, err := AddCustomer(models.Customer{Name: name})
	if err != nil {
		t.Fatalf("AddCustomer(%s): %v", name, err)
	}
	return c
}

func mustAddTransaction(t *testing.T, customerID string, total, paid float64) models.Transaction {
	t.Helper()
	tx, err := AddTransaction(models.Transaction{
		CustomerID:  customerID,
		Date:        time.Now().UTC(),
		Products:    []models.ProductItem{{Name: "Item", Quantity: 1, UnitPrice: total, Total: total}},
		TotalAmount: total,
		AmountPaid:  paid,
	})
	if err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	return tx
}

func TestAddCustomerAssignsIdentity(t *testing.T) {
	setupTestDB(t)

	c := mustAddCustomer(t, "Ravi Kumar")
	if c.ID == "" {
		t.Fatal("expected a generated id")
	}
	if c.CreatedAt.IsZero() || !c.CreatedAt.Equal(c.UpdatedAt) {
		t.Fatalf("expected created == updated on a fresh customer, got %v / %v", c.CreatedAt, c.UpdatedAt)
	}

	// Duplicates are fine — two contacts can share a name
	dup := mustAddCustomer(t, "Ravi Kumar")
	if dup.ID == c.ID {
		t.Fatal("expected distinct ids for duplicate names")
	}
	if got := database.Customers(); len(got) != 2 {
		t.Fatalf("expected 2 stored customers, got %d", len(got))
	}
}

func TestUpdateCustomerMergesPatch(t *testing.T) {
	setupTestDB(t)

	c := mustAddCustomer(t, "Anita Shah")

	mobile := "+91 98765 43210"
	updated, err := UpdateCustomer(c.ID, models.CustomerPatch{Mobile: &mobile})
	if err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}
	if updated == nil {
		t.Fatal("expected the updated customer back")
	}
	if updated.Mobile != mobile {
		t.Fatalf("patch not applied, mobile = %q", updated.Mobile)
	}
	if updated.Name != "Anita Shah" {
		t.Fatalf("untouched field changed: name = %q", updated.Name)
	}
	if updated.UpdatedAt.Before(c.UpdatedAt) {
		t.Fatal("UpdatedAt went backwards")
	}
	if updated.ID != c.ID {
		t.Fatal("id must never change")
	}
}

func TestUpdateCustomerUnknownIDIsNil(t *testing.T) {
	setupTestDB(t)

	updated, err := UpdateCustomer("no-such-id", models.CustomerPatch{})
	if err != nil {
		t.Fatalf("unknown id must not be an error, got %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for unknown id, got %+v", updated)
	}
}

func TestDeleteCustomerCascades(t *testing.T) {
	setupTestDB(t)

	victim := mustAddCustomer(t, "Going Away")
	keeper := mustAddCustomer(t, "Staying Put")

	victimTx := mustAddTransaction(t, victim.ID, 1000, 0)
	keeperTx := mustAddTransaction(t, keeper.ID, 700, 0)

	if _, err := AddPayment(models.Payment{TransactionID: victimTx.ID, CustomerID: victim.ID, Amount: 400, Date: time.Now().UTC(), Method: models.MethodCash}); err != nil {
		t.Fatalf("AddPayment: %v", err)
	}
	if _, err := AddPayment(models.Payment{TransactionID: keeperTx.ID, CustomerID: keeper.ID, Amount: 100, Date: time.Now().UTC(), Method: models.MethodUPI}); err != nil {
		t.Fatalf("AddPayment: %v", err)
	}

	if err := DeleteCustomer(victim.ID); err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}

	if GetCustomer(victim.ID) != nil {
		t.Fatal("customer still present after delete")
	}
	if got := CustomerTransactions(victim.ID); len(got) != 0 {
		t.Fatalf("expected no transactions for deleted customer, got %d", len(got))
	}
	if got := CustomerPayments(victim.ID); len(got) != 0 {
		t.Fatalf("expected no payments for deleted customer, got %d", len(got))
	}

	// The other customer's ledger must be untouched
	if got := CustomerTransactions(keeper.ID); len(got) != 1 {
		t.Fatalf("cascade deleted the wrong transactions: %d left", len(got))
	}
	if got := CustomerPayments(keeper.ID); len(got) != 1 {
		t.Fatalf("cascade deleted the wrong payments: %d left", len(got))
	}

	// Deleting again is a quiet no-op
	if err := DeleteCustomer(victim.ID); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
}

func TestAddTransactionDerivesStatus(t *testing.T) {
	setupTestDB(t)
	c := mustAddCustomer(t, "Status Check")

	cases := []struct {
		total    float64
		paid     float64
		expected string
	}{
		{1000, 0, models.StatusPending},
		{1000, 400, models.StatusPartial},
		{1000, 1000, models.StatusPaid},
	}
	for _, tc := range cases {
		tx := mustAddTransaction(t, c.ID, tc.total, tc.paid)
		if tx.Status != tc.expected {
			t.Fatalf("total=%v paid=%v expected %s, got %s", tc.total, tc.paid, tc.expected, tx.Status)
		}
	}
}

func TestAddPaymentRollsIntoTransaction(t *testing.T) {
	setupTestDB(t)
	c := mustAddCustomer(t, "Payer")

	// 500 sale with 200 already paid
	tx := mustAddTransaction(t, c.ID, 500, 200)
	if tx.Status != models.StatusPartial {
		t.Fatalf("expected partial to start, got %s", tx.Status)
	}

	// Pay the remaining 300: amountPaid hits 500 and 500 >= 500 means paid
	if _, err := AddPayment(models.Payment{TransactionID: tx.ID, CustomerID: c.ID, Amount: 300, Date: time.Now().UTC(), Method: models.MethodBank}); err != nil {
		t.Fatalf("AddPayment: %v", err)
	}

	after := GetTransaction(tx.ID)
	if after == nil {
		t.Fatal("transaction vanished")
	}
	if after.AmountPaid != 500 {
		t.Fatalf("expected amountPaid 500, got %v", after.AmountPaid)
	}
	if after.Status != models.StatusPaid {
		t.Fatalf("expected status paid, got %s", after.Status)
	}
}

func TestAddPaymentSequenceKeepsInvariant(t *testing.T) {
	setupTestDB(t)
	c := mustAddCustomer(t, "Installments")
	tx := mustAddTransaction(t, c.ID, 900, 0)

	expected := []struct {
		amount float64
		paid   float64
		status string
	}{
		{300, 300, models.StatusPartial},
		{300, 600, models.StatusPartial},
		{300, 900, models.StatusPaid},
	}
	for _, step := range expected {
		if _, err := AddPayment(models.Payment{TransactionID: tx.ID, CustomerID: c.ID, Amount: step.amount, Date: time.Now().UTC(), Method: models.MethodCash}); err != nil {
			t.Fatalf("AddPayment: %v", err)
		}
		after := GetTransaction(tx.ID)
		if after.AmountPaid != step.paid || after.Status != step.status {
			t.Fatalf("after paying %v expected paid=%v status=%s, got paid=%v status=%s",
				step.amount, step.paid, step.status, after.AmountPaid, after.Status)
		}
	}
}

func TestAddPaymentMissingTransactionStillRecords(t *testing.T) {
	setupTestDB(t)
	c := mustAddCustomer(t, "Ghost")
	mustAddTransaction(t, c.ID, 100, 0)

	p, err := AddPayment(models.Payment{TransactionID: "missing", CustomerID: c.ID, Amount: 50, Date: time.Now().UTC(), Method: models.MethodOther})
	if err != nil {
		t.Fatalf("AddPayment: %v", err)
	}
	if p.ID == "" {
		t.Fatal("payment should still get an id")
	}

	if got := database.Payments(); len(got) != 1 {
		t.Fatalf("payment not recorded, have %d", len(got))
	}
	// The real transaction must not have been touched
	for _, tx := range database.Transactions() {
		if tx.AmountPaid != 0 {
			t.Fatalf("unrelated transaction was updated: %+v", tx)
		}
	}
}
