package catalog

import "math"

// Bucket is a named price range. The convention is uniform across every
// catalog: low bound inclusive, high bound exclusive; the top bucket has an
// infinite high bound.
type Bucket struct {
	ID   string  `json:"id"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether a price falls inside the bucket
func (b Bucket) Contains(price float64) bool {
	return price >= b.Low && price < b.High
}

// BucketTable holds the buckets of one catalog, in ascending order
type BucketTable struct {
	Buckets []Bucket
}

// Lookup returns the bucket with the given id
func (t BucketTable) Lookup(id string) (Bucket, bool) {
	for _, b := range t.Buckets {
		if b.ID == id {
			return b, true
		}
	}
	return Bucket{}, false
}

var inf = math.Inf(1)

// Bucket boundaries are configuration per service type, not engine logic.
var (
	venueBuckets = BucketTable{Buckets: []Bucket{
		{ID: "under25000", Low: 0, High: 25000},
		{ID: "25000to50000", Low: 25000, High: 50000},
		{ID: "50000to100000", Low: 50000, High: 100000},
		{ID: "above100000", Low: 100000, High: inf},
	}}

	performerBuckets = BucketTable{Buckets: []Bucket{
		{ID: "under3000", Low: 0, High: 3000},
		{ID: "3000to10000", Low: 3000, High: 10000},
		{ID: "10000to25000", Low: 10000, High: 25000},
		{ID: "above25000", Low: 25000, High: inf},
	}}

	perPlateBuckets = BucketTable{Buckets: []Bucket{
		{ID: "under300", Low: 0, High: 300},
		{ID: "300to600", Low: 300, High: 600},
		{ID: "600to1000", Low: 600, High: 1000},
		{ID: "above1000", Low: 1000, High: inf},
	}}

	defaultBuckets = BucketTable{Buckets: []Bucket{
		{ID: "under5000", Low: 0, High: 5000},
		{ID: "5000to15000", Low: 5000, High: 15000},
		{ID: "15000to50000", Low: 15000, High: 50000},
		{ID: "above50000", Low: 50000, High: inf},
	}}
)

// bucketTables assigns a bucket table per service type; types not listed
// use defaultBuckets.
var bucketTables = map[string]BucketTable{
	"marriageGarden":      venueBuckets,
	"banquetHall":         venueBuckets,
	"resort":              venueBuckets,
	"hotel":               venueBuckets,
	"farmhouse":           venueBuckets,
	"lawn":                venueBuckets,
	"corporateEventSpace": venueBuckets,
	"eventManagement":     venueBuckets,

	"djServices":    performerBuckets,
	"soundSystem":   performerBuckets,
	"anchor":        performerBuckets,
	"choreographer": performerBuckets,
	"makeupArtist":  performerBuckets,
	"mehendiArtist": performerBuckets,
	"bandBaja":      performerBuckets,

	"catering":        perPlateBuckets,
	"chatCounter":     perPlateBuckets,
	"iceCreamCounter": perPlateBuckets,
	"coffeeCounter":   perPlateBuckets,
	"paanCounter":     perPlateBuckets,
	"popcornCounter":  perPlateBuckets,
}

// BucketsFor returns the bucket table of a service type
func BucketsFor(serviceType string) BucketTable {
	if t, ok := bucketTables[serviceType]; ok {
		return t
	}
	return defaultBuckets
}
