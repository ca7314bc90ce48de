package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterAndResolve(t *testing.T) {
	r := NewRegistry()

	d := Descriptor{Key: "djServices", Label: "DJ Services", ListEndpoint: "/api/djs", PriceShape: ShapePackageList}
	if err := r.Register(d); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := r.Resolve("djServices")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got.ListEndpoint != "/api/djs" {
		t.Fatalf("expected list endpoint /api/djs, got %s", got.ListEndpoint)
	}
	if got.ItemEndpoint("123") != "/api/djs/123" {
		t.Fatalf("unexpected item endpoint %s", got.ItemEndpoint("123"))
	}
}

func TestResolveUnknownType(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("hovercraftRental")
	if !errors.Is(err, ErrUnknownServiceType) {
		t.Fatalf("expected ErrUnknownServiceType, got %v", err)
	}
}

func TestRegisterDuplicateKey(t *testing.T) {
	r := NewRegistry()

	d := Descriptor{Key: "resort", Label: "Resort", ListEndpoint: "/api/resorts", PriceShape: ShapeDualRate}
	if err := r.Register(d); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := r.Register(d); !errors.Is(err, ErrDuplicateServiceType) {
		t.Fatalf("expected ErrDuplicateServiceType, got %v", err)
	}
}

func TestRegisterRejectsMalformedEndpoint(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Descriptor{Key: "bad", Label: "Bad", ListEndpoint: "api/no-leading-slash"})
	if err == nil {
		t.Fatal("expected error for malformed endpoint")
	}
}

func TestDefaultRegistryCompleteness(t *testing.T) {
	r, err := NewDefaultRegistry()
	if err != nil {
		t.Fatalf("default registry failed to build: %v", err)
	}

	// Every key from the static table resolves, with a well-formed endpoint
	for _, want := range serviceTypes {
		d, err := r.Resolve(want.Key)
		if err != nil {
			t.Fatalf("resolve %s failed: %v", want.Key, err)
		}
		if !strings.HasPrefix(d.ListEndpoint, "/api/") {
			t.Fatalf("%s: unexpected endpoint %s", want.Key, d.ListEndpoint)
		}
	}

	if len(r.Keys()) != len(serviceTypes) {
		t.Fatalf("expected %d keys, got %d", len(serviceTypes), len(r.Keys()))
	}
}

func TestItemEndpointEscapesID(t *testing.T) {
	d := Descriptor{Key: "resort", ListEndpoint: "/api/resorts"}
	if got := d.ItemEndpoint("a b/c"); got != "/api/resorts/a%20b%2Fc" {
		t.Fatalf("expected escaped id in endpoint, got %s", got)
	}
}
