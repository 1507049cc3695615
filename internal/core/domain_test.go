package core

import (
	"encoding/json"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestNewTransaction(t *testing.T) {
	good, err := NewTransaction(f(12.5), "groceries", NewDate(2024, 1, 5), "Food")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if good.ID != "" {
		t.Fatalf("id must be left empty for the store, got %q", good.ID)
	}
	if good.Amount != 12.5 || good.Description != "groceries" || good.Category != "Food" {
		t.Fatalf("unexpected transaction: %+v", good)
	}

	cases := []struct {
		name     string
		amount   *float64
		desc     string
		date     Date
		category string
		wantErr  error
	}{
		{"missing amount", nil, "x", NewDate(2024, 1, 1), "Food", ErrMissingAmount},
		{"missing description", f(1), "", NewDate(2024, 1, 1), "Food", ErrMissingDescription},
		{"blank description", f(1), "   ", NewDate(2024, 1, 1), "Food", ErrMissingDescription},
		{"missing date", f(1), "x", Date{}, "Food", ErrMissingDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTransaction(tc.amount, tc.desc, tc.date, tc.category); err != tc.wantErr {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewTransactionDefaultsCategory(t *testing.T) {
	for _, category := range []string{"", "  "} {
		txn, err := NewTransaction(f(1), "x", NewDate(2024, 1, 1), category)
		if err != nil {
			t.Fatalf("expected ok, got %v", err)
		}
		if txn.Category != DefaultCategory {
			t.Fatalf("expected %q, got %q", DefaultCategory, txn.Category)
		}
	}

	// Any non-blank string is accepted as-is, even outside the UI set.
	txn, err := NewTransaction(f(1), "x", NewDate(2024, 1, 1), "Pets")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if txn.Category != "Pets" {
		t.Fatalf("expected category preserved, got %q", txn.Category)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-05", "2024-01-05", true},
		{" 2024-01-05 ", "2024-01-05", true},
		{"2024-01-05T00:00:00.000Z", "2024-01-05", true}, // timestamp truncated
		{"2024-1-5", "", false},
		{"05/01/2024", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil || got.String() != tc.want {
				t.Fatalf("%q: expected %q, got %q (err=%v)", tc.in, tc.want, got.String(), err)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 2, 29)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-02-29"` {
		t.Fatalf("unexpected wire form %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v vs %v", back, d)
	}
}

func TestPatchApplyPartialMerge(t *testing.T) {
	base := Transaction{
		ID:          "abc",
		Amount:      100,
		Description: "rent",
		Date:        NewDate(2024, 1, 5),
		Category:    "Bills",
	}

	got := TransactionPatch{Amount: f(250)}.Apply(base)
	if got.Amount != 250 {
		t.Fatalf("amount not patched: %+v", got)
	}
	if got.ID != "abc" || got.Description != "rent" || got.Category != "Bills" || got.Date.String() != "2024-01-05" {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	desc := "deposit"
	cat := "Salary"
	date := NewDate(2024, 3, 1)
	got = TransactionPatch{Description: &desc, Category: &cat, Date: &date}.Apply(base)
	if got.Amount != 100 || got.Description != "deposit" || got.Category != "Salary" || got.Date.String() != "2024-03-01" {
		t.Fatalf("full merge wrong: %+v", got)
	}

	if got := (TransactionPatch{}).Apply(base); got != base {
		t.Fatalf("empty patch must be a no-op: %+v", got)
	}
}
