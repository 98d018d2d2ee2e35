package models

import "fmt"

// Money is an amount in US cents.
type Money int64

// Dollars converts the amount to a float for display or metrics.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}

// String renders the amount with two decimals, e.g. 59.99.
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
