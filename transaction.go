package sgsolar

import (
	"fmt"
	"strings"
)

// TransactionType classifies a standalone financial entry.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType. The
// operator-facing Portuguese labels are accepted too.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(s) {
	case "income", "receita":
		return Income, nil
	case "expense", "despesa":
		return Expense, nil
	}
	return "", fmt.Errorf("unknown transaction type: %q", s)
}

// Label returns the operator-facing name of the type.
func (t TransactionType) Label() string {
	if t == Income {
		return "Receita"
	}
	return "Despesa"
}

// Transaction is one ad-hoc income/expense entry not tied to a client
// project. Client contract values and costs are aggregated separately and
// never materialized as transactions.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Amount      string          `json:"amount"` // formatted, e.g. "R$ 500,00"
	Date        string          `json:"date"`   // 2006-01-02
	Category    string          `json:"category"`
}

// Validate checks the fields required before a transaction can be saved.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("transaction: description is required")
	}
	if _, err := ParseBRL(t.Amount); err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("transaction: type must be income or expense, got %q", t.Type)
	}
	return nil
}
