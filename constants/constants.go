package constants

import "github.com/shopspring/decimal"

const (
	//
	// ComponentKey is the structured logging field that names the component that emitted a log
	// event (e.g. "cli" or "indicator").
	//
	ComponentKey = "component"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

func One() decimal.Decimal {
	return one
}

func Two() decimal.Decimal {
	return two
}
