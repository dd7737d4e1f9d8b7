package catalog

import "github.com/shopspring/decimal"

func mustPrice(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
