package catalog

// serviceTypes is the static configuration of every bookable category and
// the upstream REST resource serving it. Item endpoints are always
// "<list endpoint>/{id}".
var serviceTypes = []Descriptor{
	{Key: "eventManagement", Label: "Event Management", ListEndpoint: "/api/event-management", PriceShape: ShapePackageList},
	{Key: "marriageGarden", Label: "Marriage Garden", ListEndpoint: "/api/marriage-gardens", PriceShape: ShapeDualRate},
	{Key: "banquetHall", Label: "Banquet Hall", ListEndpoint: "/api/banquet-halls", PriceShape: ShapeDualRate},
	{Key: "resort", Label: "Resort", ListEndpoint: "/api/resorts", PriceShape: ShapeDualRate},
	{Key: "hotel", Label: "Hotel", ListEndpoint: "/api/hotels", PriceShape: ShapeDualRate},
	{Key: "farmhouse", Label: "Farmhouse", ListEndpoint: "/api/farmhouses", PriceShape: ShapeDualRate},
	{Key: "lawn", Label: "Lawn", ListEndpoint: "/api/lawns", PriceShape: ShapeDualRate},
	{Key: "corporateEventSpace", Label: "Corporate Event Space", ListEndpoint: "/api/corporate-event-spaces", PriceShape: ShapeDualRate},
	{Key: "catering", Label: "Catering", ListEndpoint: "/api/catering", PriceShape: ShapeDualRate},
	{Key: "djServices", Label: "DJ Services", ListEndpoint: "/api/djs", PriceShape: ShapePackageList},
	{Key: "soundSystem", Label: "Sound System", ListEndpoint: "/api/sound-systems", PriceShape: ShapeDualRate},
	{Key: "lightDecoration", Label: "Light Decoration", ListEndpoint: "/api/light-decorations", PriceShape: ShapePackageList},
	{Key: "flowerDecoration", Label: "Flower Decoration", ListEndpoint: "/api/flower-decorations", PriceShape: ShapePackageList},
	{Key: "tentHouse", Label: "Tent House", ListEndpoint: "/api/tent-houses", PriceShape: ShapePackageList},
	{Key: "photographer", Label: "Photographer", ListEndpoint: "/api/photographers", PriceShape: ShapePackageList},
	{Key: "videographer", Label: "Videographer", ListEndpoint: "/api/videographers", PriceShape: ShapePackageList},
	{Key: "makeupArtist", Label: "Makeup Artist", ListEndpoint: "/api/makeup-artists", PriceShape: ShapeFlat},
	{Key: "mehendiArtist", Label: "Mehendi Artist", ListEndpoint: "/api/mehendi-artists", PriceShape: ShapeFlat},
	{Key: "anchor", Label: "Anchor", ListEndpoint: "/api/anchors", PriceShape: ShapeFlat},
	{Key: "choreographer", Label: "Choreographer", ListEndpoint: "/api/choreographers", PriceShape: ShapeFlat},
	{Key: "bandBaja", Label: "Band Baja", ListEndpoint: "/api/band-bajas", PriceShape: ShapeFlat},
	{Key: "ghodiWala", Label: "Ghodi Wala", ListEndpoint: "/api/ghodi-walas", PriceShape: ShapeFlat},
	{Key: "fireworks", Label: "Fireworks", ListEndpoint: "/api/fireworks", PriceShape: ShapePackageList},
	{Key: "varmalaEntry", Label: "Varmala Entry", ListEndpoint: "/api/varmala-entries", PriceShape: ShapePackageList},
	{Key: "invitationCard", Label: "Invitation Card", ListEndpoint: "/api/invitation-cards", PriceShape: ShapeFlat},
	{Key: "chatCounter", Label: "Chat Counter", ListEndpoint: "/api/chat-counters", PriceShape: ShapeDualRate},
	{Key: "iceCreamCounter", Label: "Ice Cream Counter", ListEndpoint: "/api/ice-cream-counters", PriceShape: ShapeDualRate},
	{Key: "coffeeCounter", Label: "Coffee Counter", ListEndpoint: "/api/coffee-counters", PriceShape: ShapeDualRate},
	{Key: "paanCounter", Label: "Paan Counter", ListEndpoint: "/api/paan-counters", PriceShape: ShapeDualRate},
	{Key: "popcornCounter", Label: "Popcorn Counter", ListEndpoint: "/api/popcorn-counters", PriceShape: ShapeDualRate},
	{Key: "kidsEntertainment", Label: "Kids Entertainment", ListEndpoint: "/api/kids-entertainment", PriceShape: ShapeFlat},
	{Key: "securityService", Label: "Security Service", ListEndpoint: "/api/security-services", PriceShape: ShapeFlat},
	{Key: "valetParking", Label: "Valet Parking", ListEndpoint: "/api/valet-parking", PriceShape: ShapeFlat},
}

// NewDefaultRegistry builds the registry from the static service-type table
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, d := range serviceTypes {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}
