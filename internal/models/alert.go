package models

import (
	"encoding/json"
)

// AlertTransaction represents a transaction extracted from a transactional
// alert message (payment notification email). It originates from a different
// parsing collaborator than statement transactions and shares no identifier
// with them; the reconciliation engine links the two sources by fuzzy
// multi-factor matching only.
type AlertTransaction struct {
	Date     string `json:"date" csv:"Date"`                 // Source format varies, normalized during matching
	Amount   string `json:"amount" csv:"Amount"`             // Raw amount text, may carry currency symbols/separators
	Merchant string `json:"merchant" csv:"Merchant"`         // Merchant or counterparty name
	Type     string `json:"transaction_type" csv:"Type"`     // "debit" or "credit"
	Bank     string `json:"bank" csv:"Bank"`                 // Issuing bank, used for group association
	Subject  string `json:"subject,omitempty" csv:"Subject"` // Provenance metadata
}

// UnmarshalJSON accepts the amount as either a JSON string or a bare number;
// upstream alert parsers emit both shapes. Numbers are kept as their literal
// text so all amount parsing stays in currencyutils.
func (a *AlertTransaction) UnmarshalJSON(data []byte) error {
	type alias AlertTransaction
	aux := struct {
		Amount json.RawMessage `json:"amount"`
		*alias
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.Amount) > 0 {
		var s string
		if err := json.Unmarshal(aux.Amount, &s); err == nil {
			a.Amount = s
		} else {
			a.Amount = string(aux.Amount)
		}
	}
	return nil
}

// MatchResult pairs one statement transaction with its best-scoring alert
// transaction. A statement transaction has at most one MatchResult; an alert
// transaction may appear in several (legacy greedy matching).
type MatchResult struct {
	Statement Transaction      `json:"statement_transaction"`
	Alert     AlertTransaction `json:"alert_transaction"`
	Score     float64          `json:"match_score"`
	MatchType string           `json:"match_type"`
}
