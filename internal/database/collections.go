package database

import (
	"encoding/json"
	"errors"

	"go-card-ledger/internal/config"
	"go-card-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys inside the blobs table
const (
	KeyCustomers    = "customers"
	KeyTransactions = "transactions"
	KeyPayments     = "payments"
	KeyProfile      = "profile"
)

// loadBlob reads one collection into out. Missing rows and corrupt JSON both
// leave out untouched — a broken blob must never take the whole app down,
// the caller just sees an empty collection.
func loadBlob(key string, out any) {
	var blob Blob
	if err := DB.First(&blob, "`key` = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			config.LogError(config.GetLogger(), "database", "loadBlob", "read "+key, nil, err)
		}
		return
	}
	if err := json.Unmarshal(blob.Value, out); err != nil {
		config.LogError(config.GetLogger(), "database", "loadBlob", "parse "+key, nil, err)
	}
}

// saveBlob replaces one collection wholesale (upsert on the key)
func saveBlob(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Blob{Key: key, Value: raw}).Error
}

// --- Customers ---

func Customers() []models.Customer {
	customers := []models.Customer{}
	loadBlob(KeyCustomers, &customers)
	return customers
}

func SaveCustomers(customers []models.Customer) error {
	return saveBlob(KeyCustomers, customers)
}

// --- Transactions ---

func Transactions() []models.Transaction {
	transactions := []models.Transaction{}
	loadBlob(KeyTransactions, &transactions)
	return transactions
}

func SaveTransactions(transactions []models.Transaction) error {
	return saveBlob(KeyTransactions, transactions)
}

// --- Payments ---

func Payments() []models.Payment {
	payments := []models.Payment{}
	loadBlob(KeyPayments, &payments)
	return payments
}

func SavePayments(payments []models.Payment) error {
	return saveBlob(KeyPayments, payments)
}

// --- Profile (singleton) ---

func Profile() models.UserProfile {
	profile := models.UserProfile{Currency: "INR"}
	loadBlob(KeyProfile, &profile)
	if profile.Currency == "" {
		profile.Currency = "INR"
	}
	return profile
}

func SaveProfile(profile models.UserProfile) error {
	return saveBlob(KeyProfile, profile)
}
