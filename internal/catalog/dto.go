package catalog

// ServiceTypeResponse describes one bookable category to API clients
type ServiceTypeResponse struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Buckets []Bucket `json:"buckets"`
}

// ToTypeResponse maps a descriptor and its bucket table to the API shape
func ToTypeResponse(d Descriptor) ServiceTypeResponse {
	return ServiceTypeResponse{
		Key:     d.Key,
		Label:   d.Label,
		Buckets: BucketsFor(d.Key).Buckets,
	}
}
