package catalog

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func mustRecord(t *testing.T, raw string) ListingRecord {
	t.Helper()
	var rec ListingRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	return rec
}

func TestMinPricePackagesWins(t *testing.T) {
	rec := mustRecord(t, `{"id":"1","packages":[{"name":"basic","price":5000},{"name":"lite","price":2000}],"price":99}`)

	got, err := MinPrice(rec)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 2000 {
		t.Fatalf("expected cheapest package 2000, got %v", got)
	}
}

func TestMinPriceEmptyPackages(t *testing.T) {
	rec := mustRecord(t, `{"id":"1","packages":[]}`)

	_, err := MinPrice(rec)
	if !errors.Is(err, ErrNoPriceAvailable) {
		t.Fatalf("expected ErrNoPriceAvailable, got %v", err)
	}
}

func TestMinPriceDualRateFallbackOrder(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"perDay preferred", `{"perDay":40000,"perEvent":55000,"perHour":5000}`, 40000},
		{"perEvent next", `{"perEvent":55000,"perHour":5000,"perPlate":400}`, 55000},
		{"perHour next", `{"perHour":500}`, 500},
		{"perPlate last", `{"perPlate":350}`, 350},
	}

	for _, tc := range cases {
		rec := mustRecord(t, tc.raw)
		got, err := MinPrice(rec)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestMinPriceFlat(t *testing.T) {
	rec := mustRecord(t, `{"id":"1","price":15000}`)

	got, err := MinPrice(rec)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 15000 {
		t.Fatalf("expected 15000, got %v", got)
	}
}

func TestMinPriceNoRecognizedField(t *testing.T) {
	rec := mustRecord(t, `{"id":"1","name":"priceless"}`)

	_, err := MinPrice(rec)
	if !errors.Is(err, ErrNoPriceAvailable) {
		t.Fatalf("expected ErrNoPriceAvailable, got %v", err)
	}
}

func TestMinPriceRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		shape PriceShape
	}{
		{"negative flat", FlatPrice{Value: -1}},
		{"NaN flat", FlatPrice{Value: math.NaN()}},
		{"infinite flat", FlatPrice{Value: math.Inf(1)}},
		{"negative package", PackageList{Packages: []Package{{Price: -500}}}},
	}

	for _, tc := range cases {
		_, err := MinPrice(ListingRecord{Price: tc.shape})
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("%s: expected ErrInvalidPrice, got %v", tc.name, err)
		}
	}
}

func TestMinPriceFiniteAndNonNegative(t *testing.T) {
	// Every well-formed record with a recognized price field resolves to a
	// finite, non-negative number
	records := []string{
		`{"packages":[{"price":2000},{"price":5000}]}`,
		`{"perDay":0}`,
		`{"perHour":500}`,
		`{"price":0}`,
		`{"price":125000}`,
	}

	for _, raw := range records {
		got, err := MinPrice(mustRecord(t, raw))
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", raw, err)
		}
		if got < 0 || math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("%s: expected finite non-negative price, got %v", raw, got)
		}
	}
}
