package domain

import (
	"encoding/json"
	"fmt"
)

// LegacyBalance is the tagged variant found in the old user data file: a
// balance entry was either a single number or a mapping of currency name to
// amount (the retired multi-currency format). It is resolved to one scalar at
// import time and never carried past the importer.
type LegacyBalance struct {
	Scalar      float64
	PerCurrency map[string]float64 // nil when the entry was a plain number
}

// Total collapses the entry into a single amount. Multi-currency balances are
// summed; relative currency identity of the sub-balances is discarded, but no
// value is ever lost.
func (b LegacyBalance) Total() float64 {
	if b.PerCurrency == nil {
		return b.Scalar
	}
	var sum float64
	for _, amount := range b.PerCurrency {
		sum += amount
	}
	return sum
}

// UnmarshalJSON accepts either shape of the legacy entry.
func (b *LegacyBalance) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*b = LegacyBalance{Scalar: scalar}
		return nil
	}

	var perCurrency map[string]float64
	if err := json.Unmarshal(data, &perCurrency); err == nil {
		*b = LegacyBalance{PerCurrency: perCurrency}
		return nil
	}

	return fmt.Errorf("legacy balance entry is neither a number nor a currency map: %s", data)
}
