package catalog

import (
	"encoding/json"
)

// Location is the common location shape shared by all listing variants
type Location struct {
	City string `json:"city"`
	Area string `json:"area"`
}

// Ratings is the common ratings shape shared by all listing variants
type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ListingRecord is one bookable entity of a service type. Upstream listing
// shapes differ per type; the common fields are decoded, the price
// representation is normalized into a PriceShape variant, remaining numeric
// fields become filterable attributes, and the original JSON is kept so the
// API echoes entities unchanged.
type ListingRecord struct {
	ID       string
	VendorID string
	Type     string
	Name     string
	Location Location
	Ratings  Ratings
	Price    PriceShape

	// Attributes holds type-specific numeric inventory fields
	// (flavorsAvailable, dishesAvailable, ...).
	Attributes map[string]float64

	raw json.RawMessage
}

// Attribute returns a type-specific numeric attribute by name
func (rec ListingRecord) Attribute(name string) (float64, bool) {
	v, ok := rec.Attributes[name]
	return v, ok
}

// commonFields are the keys decoded into typed fields; they never become
// attributes.
var commonFields = map[string]bool{
	"id":       true,
	"vendorId": true,
	"type":     true,
	"name":     true,
	"location": true,
	"ratings":  true,
	"packages": true,
	"price":    true,
	"perDay":   true,
	"perEvent": true,
	"perHour":  true,
	"perPlate": true,
}

// UnmarshalJSON decodes a heterogeneous upstream listing. Price shape
// priority: a packages array wins over dual-rate keys, which win over a
// flat price field.
func (rec *ListingRecord) UnmarshalJSON(data []byte) error {
	var known struct {
		ID       string    `json:"id"`
		VendorID string    `json:"vendorId"`
		Type     string    `json:"type"`
		Name     string    `json:"name"`
		Location Location  `json:"location"`
		Ratings  Ratings   `json:"ratings"`
		Packages []Package `json:"packages"`
		Price    *float64  `json:"price"`
		PerDay   *float64  `json:"perDay"`
		PerEvent *float64  `json:"perEvent"`
		PerHour  *float64  `json:"perHour"`
		PerPlate *float64  `json:"perPlate"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	rec.ID = known.ID
	rec.VendorID = known.VendorID
	rec.Type = known.Type
	rec.Name = known.Name
	rec.Location = known.Location
	rec.Ratings = known.Ratings
	rec.raw = append(json.RawMessage(nil), data...)

	switch {
	case known.Packages != nil:
		rec.Price = PackageList{Packages: known.Packages}
	case known.PerDay != nil || known.PerEvent != nil || known.PerHour != nil || known.PerPlate != nil:
		rec.Price = DualRate{
			PerDay:   known.PerDay,
			PerEvent: known.PerEvent,
			PerHour:  known.PerHour,
			PerPlate: known.PerPlate,
		}
	case known.Price != nil:
		rec.Price = FlatPrice{Value: *known.Price}
	default:
		rec.Price = nil
	}

	// Everything else numeric is a filterable attribute
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	rec.Attributes = make(map[string]float64)
	for key, value := range fields {
		if commonFields[key] {
			continue
		}
		var n float64
		if err := json.Unmarshal(value, &n); err == nil {
			rec.Attributes[key] = n
		}
	}

	return nil
}

// MarshalJSON echoes the upstream entity unchanged
func (rec ListingRecord) MarshalJSON() ([]byte, error) {
	if rec.raw != nil {
		return rec.raw, nil
	}
	return []byte("null"), nil
}
