package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/utsav/utsav-api/internal/pkg/upstream"
)

// Service serves catalog reads: registered types, filtered listings of one
// type, and single entities. Listings come from the per-type upstream
// resource, with the Redis cache in front.
type Service struct {
	registry *Registry
	client   *upstream.Client
	cache    *Cache
}

// NewService creates catalog service
func NewService(registry *Registry, client *upstream.Client, cache *Cache) *Service {
	return &Service{registry: registry, client: client, cache: cache}
}

// Types returns all registered service-type descriptors
func (s *Service) Types() []Descriptor {
	return s.registry.Descriptors()
}

// ListFiltered fetches one service type's listings and applies the filter
// spec. total is the unfiltered listing count.
func (s *Service) ListFiltered(ctx context.Context, serviceType string, spec FilterSpec) ([]ListingRecord, int, error) {
	desc, err := s.registry.Resolve(serviceType)
	if err != nil {
		return nil, 0, err
	}

	table := BucketsFor(serviceType)
	if spec.Bucket != "" {
		if _, ok := table.Lookup(spec.Bucket); !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrUnknownBucket, spec.Bucket)
		}
	}

	records, err := s.fetchListings(ctx, desc)
	if err != nil {
		return nil, 0, err
	}

	engine := NewEngine(table)
	return engine.ApplyFilters(records, spec), len(records), nil
}

// GetItem fetches a single entity of a service type, echoed as-is
func (s *Service) GetItem(ctx context.Context, serviceType, id string) (json.RawMessage, error) {
	desc, err := s.registry.Resolve(serviceType)
	if err != nil {
		return nil, err
	}

	var entity json.RawMessage
	if err := s.client.Get(ctx, desc.ItemEndpoint(id), &entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) fetchListings(ctx context.Context, desc Descriptor) ([]ListingRecord, error) {
	if payload, ok := s.cache.Get(ctx, desc.Key); ok {
		var records []ListingRecord
		if err := json.Unmarshal(payload, &records); err == nil {
			return records, nil
		}
		// Corrupt cache entry: drop it and refetch
		s.cache.Invalidate(ctx, desc.Key)
	}

	var payload json.RawMessage
	if err := s.client.Get(ctx, desc.ListEndpoint, &payload); err != nil {
		return nil, err
	}

	var records []ListingRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode listings for %s: %w", desc.Key, err)
	}

	s.cache.Set(ctx, desc.Key, payload)
	return records, nil
}
