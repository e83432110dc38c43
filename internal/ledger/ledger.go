package ledger

import (
	"sort"
	"time"

	"go-card-ledger/internal/config"
	"go-card-ledger/internal/database"
	"go-card-ledger/internal/models"

	"github.com/google/uuid"
)

// This package owns every write to the three collections. The rules are
// deliberately simple: read the whole collection, change it in memory,
// write the whole collection back. Validation (required fields, overpayment
// caps) lives at the HTTP boundary — the ledger trusts its caller.

// --- Customers ---

// AddCustomer stores a new customer with a fresh id and timestamps.
// Duplicate names/emails are allowed on purpose: two contacts can
// genuinely share either.
func AddCustomer(c models.Customer) (models.Customer, error) {
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	customers := append(database.Customers(), c)
	if err := database.SaveCustomers(customers); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// GetCustomer returns the customer or nil when the id is unknown
func GetCustomer(id string) *models.Customer {
	for _, c := range database.Customers() {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// UpdateCustomer merges the patch into the stored record and bumps UpdatedAt.
// Returns nil (not an error) when the id does not exist.
func UpdateCustomer(id string, patch models.CustomerPatch) (*models.Customer, error) {
	customers := database.Customers()

	for i := range customers {
		if customers[i].ID != id {
			continue
		}

		// Field-by-field merge: only what the caller actually sent
		if patch.Name != nil {
			customers[i].Name = *patch.Name
		}
		if patch.BusinessName != nil {
			customers[i].BusinessName = *patch.BusinessName
		}
		if patch.Mobile != nil {
			customers[i].Mobile = *patch.Mobile
		}
		if patch.Email != nil {
			customers[i].Email = *patch.Email
		}
		if patch.Address != nil {
			customers[i].Address = *patch.Address
		}
		if patch.BusinessType != nil {
			customers[i].BusinessType = *patch.BusinessType
		}
		if patch.CardImageURI != nil {
			customers[i].CardImageURI = *patch.CardImageURI
		}
		customers[i].UpdatedAt = time.Now().UTC()

		if err := database.SaveCustomers(customers); err != nil {
			return nil, err
		}
		updated := customers[i]
		return &updated, nil
	}

	return nil, nil
}

// DeleteCustomer removes the customer plus every transaction and payment
// that references them, so nothing is left orphaned. Deleting an unknown
// id is a no-op.
func DeleteCustomer(id string) error {
	customers := database.Customers()
	kept := make([]models.Customer, 0, len(customers))
	found := false
	for _, c := range customers {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil
	}

	if err := database.SaveCustomers(kept); err != nil {
		return err
	}

	// Cascade: transactions
	transactions := database.Transactions()
	keptTx := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.CustomerID != id {
			keptTx = append(keptTx, t)
		}
	}
	if err := database.SaveTransactions(keptTx); err != nil {
		return err
	}

	// Cascade: payments
	payments := database.Payments()
	keptPay := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.CustomerID != id {
			keptPay = append(keptPay, p)
		}
	}
	return database.SavePayments(keptPay)
}

// --- Transactions ---

// AddTransaction stores a new sale. Status is derived here from the initial
// AmountPaid so a caller can never hand us an inconsistent one.
func AddTransaction(t models.Transaction) (models.Transaction, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	t.Status = models.DeriveStatus(t.TotalAmount, t.AmountPaid)

	transactions := append(database.Transactions(), t)
	if err := database.SaveTransactions(transactions); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

// GetTransaction returns the transaction or nil when the id is unknown
func GetTransaction(id string) *models.Transaction {
	for _, t := range database.Transactions() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// CustomerTransactions lists one customer's transactions, newest first
func CustomerTransactions(customerID string) []models.Transaction {
	result := []models.Transaction{}
	for _, t := range database.Transactions() {
		if t.CustomerID == customerID {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

// --- Payments ---

// AddPayment records a settlement and rolls it into the referenced
// transaction: AmountPaid grows by the payment amount and Status is
// re-derived. There is NO overpayment cap here — the HTTP layer checks
// that before calling, same as the app's payment form does.
//
// Known gap: payments and transactions are two separate whole-collection
// writes. A crash between them leaves a payment recorded without the
// balance update. Single-user offline app, accepted risk.
func AddPayment(p models.Payment) (models.Payment, error) {
	p.ID = uuid.NewString()

	payments := append(database.Payments(), p)
	if err := database.SavePayments(payments); err != nil {
		return models.Payment{}, err
	}

	// Roll the amount into the transaction
	transactions := database.Transactions()
	matched := false
	for i := range transactions {
		if transactions[i].ID != p.TransactionID {
			continue
		}
		transactions[i].AmountPaid += p.Amount
		transactions[i].Status = models.DeriveStatus(transactions[i].TotalAmount, transactions[i].AmountPaid)
		matched = true
		break
	}

	if !matched {
		// Payment stays on record even without its transaction; the
		// collection screens will still show it under the customer.
		config.GetLogger().Warnf("payment %s references missing transaction %s", p.ID, p.TransactionID)
		return p, nil
	}

	if err := database.SaveTransactions(transactions); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

// CustomerPayments lists one customer's payments, newest first
func CustomerPayments(customerID string) []models.Payment {
	result := []models.Payment{}
	for _, p := range database.Payments() {
		if p.CustomerID == customerID {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}
