package catalog

// AttributeThreshold filters on a type-specific numeric attribute
type AttributeThreshold struct {
	Name      string
	Threshold float64
}

// FilterSpec is an immutable filter value. Absent fields contribute no
// predicate; populated fields are combined with logical AND.
type FilterSpec struct {
	City         string
	Type         string
	Bucket       string
	MinAttribute *AttributeThreshold
}

// Engine filters listing collections against one catalog's bucket table.
type Engine struct {
	buckets BucketTable
}

// NewEngine creates a filter engine for one catalog
func NewEngine(buckets BucketTable) Engine {
	return Engine{buckets: buckets}
}

// ApplyFilters returns the records matching every populated field of spec,
// preserving input order. It is a pure function: neither records nor spec
// are mutated, and identical inputs yield identical output.
//
// Records that cannot satisfy a predicate because data is missing (absent
// attribute, unresolvable price) are excluded rather than failing the whole
// pass, so filtering stays usable on partially-populated catalogs.
func (e Engine) ApplyFilters(records []ListingRecord, spec FilterSpec) []ListingRecord {
	out := make([]ListingRecord, 0, len(records))
	for _, rec := range records {
		if e.matches(rec, spec) {
			out = append(out, rec)
		}
	}
	return out
}

func (e Engine) matches(rec ListingRecord, spec FilterSpec) bool {
	if spec.City != "" && rec.Location.City != spec.City {
		return false
	}
	if spec.Type != "" && rec.Type != spec.Type {
		return false
	}
	if spec.Bucket != "" {
		bucket, ok := e.buckets.Lookup(spec.Bucket)
		if !ok {
			return false
		}
		price, err := MinPrice(rec)
		if err != nil {
			return false
		}
		if !bucket.Contains(price) {
			return false
		}
	}
	if spec.MinAttribute != nil {
		value, ok := rec.Attribute(spec.MinAttribute.Name)
		if !ok {
			return false
		}
		if value < spec.MinAttribute.Threshold {
			return false
		}
	}
	return true
}
