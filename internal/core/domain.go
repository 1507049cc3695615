package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultCategory is applied when a transaction is created without a category.
const DefaultCategory = "Other"

// Categories is the fixed set offered by the UI. The store accepts any
// string; this list is a suggestion, not a constraint.
var Categories = []string{"Food", "Travel", "Bills", "Shopping", "Salary", "Other"}

type (
	// Date is a calendar date stored as an ISO-8601 string (YYYY-MM-DD).
	Date struct {
		time.Time
	}

	// Transaction is a single recorded monetary event.
	Transaction struct {
		ID          string  `json:"id"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Date        Date    `json:"date"`
		Category    string  `json:"category"`
	}

	// TransactionPatch carries the fields of a partial update. Nil fields
	// are left untouched when applied.
	TransactionPatch struct {
		Amount      *float64 `json:"amount"`
		Description *string  `json:"description"`
		Date        *Date    `json:"date"`
		Category    *string  `json:"category"`
	}
)

var (
	ErrMissingAmount      = errors.New("amount is required")
	ErrMissingDescription = errors.New("description is required")
	ErrMissingDate        = errors.New("date is required")
	ErrNotFound           = errors.New("transaction not found")
)

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date. Timestamps (RFC 3339) are
// accepted and truncated to their date portion, since clients may echo
// back dates with a time component attached.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// String returns the ISO-8601 calendar date.
func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NewTransaction builds a transaction from raw create input. It enforces
// the required fields and applies the category default; the store never
// re-checks these, so the contract stays enforceable without a live
// database. The ID is left empty for the store to assign.
func NewTransaction(amount *float64, description string, date Date, category string) (Transaction, error) {
	if amount == nil {
		return Transaction{}, ErrMissingAmount
	}
	if strings.TrimSpace(description) == "" {
		return Transaction{}, ErrMissingDescription
	}
	if date.IsZero() {
		return Transaction{}, ErrMissingDate
	}
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	return Transaction{
		Amount:      *amount,
		Description: description,
		Date:        date,
		Category:    category,
	}, nil
}

// Apply merges the patch into t and returns the result. The ID is always
// preserved. The update path does not re-validate required fields.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	return t
}
