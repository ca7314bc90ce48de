package catalog

import (
	"fmt"
	"math"
)

// PriceShape is the normalized price representation of a listing. Exactly
// three variants exist upstream: a flat price, a dual-rate object, and a
// package list.
type PriceShape interface {
	priceShape()
}

// FlatPrice is a single numeric price
type FlatPrice struct {
	Value float64
}

// DualRate carries the subset of rates relevant to the service type
type DualRate struct {
	PerDay   *float64
	PerEvent *float64
	PerHour  *float64
	PerPlate *float64
}

// Package is one entry of a package list
type Package struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PackageList is a list of priced packages
type PackageList struct {
	Packages []Package
}

func (FlatPrice) priceShape()   {}
func (DualRate) priceShape()    {}
func (PackageList) priceShape() {}

// MinPrice normalizes a listing's price representation into a single
// comparable value. Package lists resolve to the cheapest package; dual
// rates fall back perDay, perEvent, perHour, perPlate in that order.
func MinPrice(rec ListingRecord) (float64, error) {
	switch shape := rec.Price.(type) {
	case PackageList:
		if len(shape.Packages) == 0 {
			return 0, fmt.Errorf("%w: empty package list", ErrNoPriceAvailable)
		}
		min := shape.Packages[0].Price
		for _, p := range shape.Packages[1:] {
			if p.Price < min {
				min = p.Price
			}
		}
		return validatePrice(min)
	case DualRate:
		for _, rate := range []*float64{shape.PerDay, shape.PerEvent, shape.PerHour, shape.PerPlate} {
			if rate != nil {
				return validatePrice(*rate)
			}
		}
		return 0, fmt.Errorf("%w: no rate present", ErrNoPriceAvailable)
	case FlatPrice:
		return validatePrice(shape.Value)
	default:
		return 0, ErrNoPriceAvailable
	}
}

func validatePrice(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: not finite", ErrInvalidPrice)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative", ErrInvalidPrice)
	}
	return v, nil
}
