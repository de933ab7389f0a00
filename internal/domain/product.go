package domain

import "github.com/shopspring/decimal"

// Product is the catalog view consumed at checkout. The catalog service owns
// the data; only the fields needed for snapshotting travel through here.
type Product struct {
	Code   string
	Name   string
	Price  decimal.Decimal
	Active bool
}
