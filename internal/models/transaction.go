package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Field paths as they appear in Open Banking transaction payloads.
const (
	FieldAmount       = "Amount"
	FieldNestedAmount = "Amount.Amount"
	FieldIndicator    = "CreditDebitIndicator"
	FieldMerchantName = "MerchantDetails.MerchantName"
	FieldPaymentMode  = "PaymentModes"
	FieldType         = "TransactionType"
	FieldDateTime     = "TransactionDateTime"
)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// RawTransaction is a transaction record exactly as it was posted.
// It never leaves the boundary: services work on Transaction.
type RawTransaction map[string]any

// Transaction is a RawTransaction reduced to the fields the pipeline uses.
// A nil pointer means the value was absent or could not be coerced.
type Transaction struct {
	Amount       *float64   `json:"amount,omitempty"`
	SignedAmount *float64   `json:"signedAmount,omitempty"`
	Indicator    string     `json:"creditDebitIndicator"`
	Merchant     *string    `json:"merchantName,omitempty"`
	PaymentMode  *string    `json:"paymentMode,omitempty"`
	Type         *string    `json:"transactionType,omitempty"`
	Time         *time.Time `json:"transactionDateTime,omitempty"`
}

// Lookup resolves a dotted path. A literal key holding the whole path wins
// over walking nested objects, so both flattened and nested payloads resolve.
func (r RawTransaction) Lookup(path string) (any, bool) {
	if v, ok := r[path]; ok {
		return v, true
	}
	parts := strings.Split(path, ".")
	if len(parts) < 2 {
		return nil, false
	}
	var cur any = map[string]any(r)
	for _, p := range parts {
		m, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// HasAmountField reports whether the record carries any amount key at all,
// parseable or not.
func (r RawTransaction) HasAmountField() bool {
	if _, ok := r[FieldNestedAmount]; ok {
		return true
	}
	_, ok := r[FieldAmount]
	return ok
}

// Amount tries the flattened "Amount.Amount" key, then an "Amount" object's
// own "Amount" member. A scalar top-level Amount is not an amount container.
func (r RawTransaction) Amount() *float64 {
	strategies := []func() (any, bool){
		func() (any, bool) {
			v, ok := r[FieldNestedAmount]
			return v, ok
		},
		func() (any, bool) {
			obj, ok := asObject(r[FieldAmount])
			if !ok {
				return nil, false
			}
			v, ok := obj[FieldAmount]
			return v, ok
		},
	}
	for _, try := range strategies {
		if v, ok := try(); ok {
			return toNumber(v)
		}
	}
	return nil
}

func (r RawTransaction) Indicator() string {
	v, _ := r.Lookup(FieldIndicator)
	if s := toText(v); s != nil {
		return *s
	}
	return ""
}

func (r RawTransaction) MerchantName() *string {
	v, _ := r.Lookup(FieldMerchantName)
	return toText(v)
}

func (r RawTransaction) PaymentMode() *string {
	v, _ := r.Lookup(FieldPaymentMode)
	return toText(v)
}

func (r RawTransaction) TransactionType() *string {
	v, _ := r.Lookup(FieldType)
	return toText(v)
}

func (r RawTransaction) DateTime() *time.Time {
	v, _ := r.Lookup(FieldDateTime)
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RawTransaction:
		return m, true
	default:
		return nil, false
	}
}

// toNumber accepts JSON numbers and numeric strings; everything else,
// including NaN and infinities, becomes nil.
func toNumber(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case int:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// toText stringifies scalars. Objects, arrays and null have no text form.
func toText(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		s = t.String()
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	return &s
}
