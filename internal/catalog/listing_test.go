package catalog

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestListingDecodeCapturesAttributes(t *testing.T) {
	rec := mustRecord(t, `{"id":"cat-1","vendorId":"v-9","type":"Catering","name":"Sharma Caterers",
		"location":{"city":"Indore","area":"Vijay Nagar"},"ratings":{"average":4.2,"count":310},
		"perPlate":450,"dishesAvailable":85,"liveCounters":6,"description":"text field"}`)

	if rec.VendorID != "v-9" || rec.Location.City != "Indore" {
		t.Fatalf("common fields not decoded: %+v", rec)
	}
	if v, ok := rec.Attribute("dishesAvailable"); !ok || v != 85 {
		t.Fatalf("expected dishesAvailable=85, got %v %v", v, ok)
	}
	if v, ok := rec.Attribute("liveCounters"); !ok || v != 6 {
		t.Fatalf("expected liveCounters=6, got %v %v", v, ok)
	}
	// Non-numeric extras are not attributes
	if _, ok := rec.Attribute("description"); ok {
		t.Fatal("string field must not become an attribute")
	}
	// Price keys never leak into attributes
	if _, ok := rec.Attribute("perPlate"); ok {
		t.Fatal("price field must not become an attribute")
	}

	dual, ok := rec.Price.(DualRate)
	if !ok {
		t.Fatalf("expected DualRate shape, got %T", rec.Price)
	}
	if dual.PerPlate == nil || *dual.PerPlate != 450 {
		t.Fatalf("expected perPlate 450, got %+v", dual)
	}
}

func TestListingMarshalEchoesUpstreamJSON(t *testing.T) {
	raw := []byte(`{"id":"g-1","vendorId":"v-1","customField":{"nested":true},"price":20000}`)

	var rec ListingRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(out, raw) {
		t.Fatalf("expected entity echoed unchanged, got %s", out)
	}
}
