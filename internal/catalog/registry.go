package catalog

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ShapeKind names the price representation a service type's listings carry.
type ShapeKind string

const (
	ShapeFlat        ShapeKind = "flat"
	ShapeDualRate    ShapeKind = "dualRate"
	ShapePackageList ShapeKind = "packageList"
)

// Descriptor describes how to reach one service type's REST resources.
// Descriptors are immutable; the registry hands out copies.
type Descriptor struct {
	Key          string
	Label        string
	ListEndpoint string
	PriceShape   ShapeKind
}

// ItemEndpoint returns the path of a single entity of this service type
func (d Descriptor) ItemEndpoint(id string) string {
	return d.ListEndpoint + "/" + url.PathEscape(id)
}

// Registry maps service-type keys to resource descriptors. It is built once
// at startup and read-only afterwards; lookups are safe for concurrent use.
type Registry struct {
	descriptors map[string]Descriptor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// Register adds a descriptor to the registry
func (r *Registry) Register(d Descriptor) error {
	if d.Key == "" {
		return fmt.Errorf("descriptor key is empty")
	}
	if !strings.HasPrefix(d.ListEndpoint, "/") {
		return fmt.Errorf("descriptor %q: list endpoint %q is not a relative path", d.Key, d.ListEndpoint)
	}
	if _, exists := r.descriptors[d.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateServiceType, d.Key)
	}
	r.descriptors[d.Key] = d
	return nil
}

// Resolve looks up a descriptor by service-type key
func (r *Registry) Resolve(key string) (Descriptor, error) {
	d, ok := r.descriptors[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownServiceType, key)
	}
	return d, nil
}

// Keys returns all registered service-type keys, sorted
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.descriptors))
	for k := range r.descriptors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Descriptors returns all registered descriptors ordered by key
func (r *Registry) Descriptors() []Descriptor {
	keys := r.Keys()
	out := make([]Descriptor, len(keys))
	for i, k := range keys {
		out[i] = r.descriptors[k]
	}
	return out
}
