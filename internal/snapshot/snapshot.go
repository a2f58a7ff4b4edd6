// Package snapshot reads and writes the flat JSON interchange shape of the
// store: transactions, loans, life events, and assets as plain records with
// ISO YYYY-MM-DD dates and whole-number amounts. It is both the
// import/export format of the CLI and the fixture format of the test suite.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/model"
)

const dateFormat = "2006-01-02"

// Document is the top-level interchange shape.
type Document struct {
	Transactions []TransactionRecord `json:"transactions"`
	Loans        []LoanRecord        `json:"loans"`
	Events       []EventRecord       `json:"events,omitempty"`
	Assets       []AssetRecord       `json:"assets,omitempty"`
}

// TransactionRecord is one serialized transaction.
type TransactionRecord struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Type              string `json:"type"`
	Category          string `json:"category"`
	Date              string `json:"date"`
	Recurrence        string `json:"recurrence"`
	RecurrenceEndDate string `json:"recurrenceEndDate,omitempty"`
	Memo              string `json:"memo,omitempty"`
	CreatedAt         string `json:"createdAt,omitempty"`
	Amount            int64  `json:"amount"`
}

// LoanRecord is one serialized loan.
type LoanRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	RepaymentType string  `json:"repaymentType"`
	StartDate     string  `json:"startDate"`
	Memo          string  `json:"memo,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	Principal     int64   `json:"principal"`
	InterestRate  float64 `json:"interestRate"`
	TermMonths    int     `json:"termMonths"`
	PaymentDay    int     `json:"paymentDay"`
}

// EventRecord is one serialized life event.
type EventRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	CreatedAt   string `json:"createdAt,omitempty"`
	IsImportant bool   `json:"isImportant"`
}

// AssetRecord is one serialized asset.
type AssetRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	PurchaseDate  string `json:"purchaseDate,omitempty"`
	Description   string `json:"description,omitempty"`
	Memo          string `json:"memo,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	PurchaseValue int64  `json:"purchaseValue"`
	CurrentValue  int64  `json:"currentValue"`
}

// Decode reads a snapshot document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedSnapshot, err)
	}
	return &doc, nil
}

// Encode writes a snapshot document to w, indented for human diffing.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// TransactionModels converts the serialized transactions into validated
// models.
func (d *Document) TransactionModels() ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(d.Transactions))
	for _, r := range d.Transactions {
		txn := model.Transaction{
			ID:         r.ID,
			Title:      r.Title,
			Amount:     r.Amount,
			Type:       model.TransactionType(r.Type),
			Category:   model.Category(r.Category),
			Recurrence: model.Recurrence(r.Recurrence),
			Memo:       r.Memo,
		}
		var err error
		if txn.Date, err = parseDate(r.Date); err != nil {
			return nil, err
		}
		if r.RecurrenceEndDate != "" {
			end, err := parseDate(r.RecurrenceEndDate)
			if err != nil {
				return nil, err
			}
			txn.RecurrenceEnd = &end
		}
		if txn.CreatedAt, err = parseCreatedAt(r.CreatedAt); err != nil {
			return nil, err
		}
		if err := txn.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMalformedSnapshot, err)
		}
		out = append(out, txn)
	}
	return out, nil
}
