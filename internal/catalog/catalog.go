// Package catalog defines the studio's fixed service offering. The booking
// wizard selects from this list and confirmation screens resolve ids to titles.
package catalog

// Service describes one maintenance offering.
type Service struct {
	ID          string
	Title       string
	Description string
}

// Services is the ordered offering shown in the wizard's requirements step.
var Services = []Service{
	{
		ID:          "weekly-cutting",
		Title:       "Weekly Grass Cutting",
		Description: "Precision mowing and pattern-focused turf maintenance for pristine lawns.",
	},
	{
		ID:          "garden-maintenance",
		Title:       "Garden Maintenance",
		Description: "Specialized care for flower beds, shrubs, and ornamental features.",
	},
	{
		ID:          "lawn-nutrition",
		Title:       "Lawn Care & Fertilizer Program",
		Description: "Science-based fertilization and weed control for a lush, healthy turf.",
	},
	{
		ID:          "seasonal-cleanup",
		Title:       "Spring & Fall Yard Cleanup",
		Description: "Complete removal of leaves, debris, and seasonal preparation.",
	},
	{
		ID:          "soil-mulch",
		Title:       "Soil & Mulch Installations",
		Description: "Premium substrate applications for moisture retention and aesthetic polish.",
	},
	{
		ID:          "planting-services",
		Title:       "Planting Services",
		Description: "Expert installation of annuals, perennials, shrubs, and ornamental trees.",
	},
	{
		ID:          "hedge-trimming",
		Title:       "Hedge Trimming",
		Description: "Straight-edge pruning for structural privacy and aesthetic symmetry.",
	},
	{
		ID:          "sodding-overseeding",
		Title:       "Sodding & Overseeding",
		Description: "Instant lawn replacement or gradual thickening of existing turf.",
	},
	{
		ID:          "snow-plowing",
		Title:       "Snow Plowing",
		Description: "Reliable winter access management for driveways and commercial lots.",
	},
}

// ByID returns the service with the given id, or false if unknown.
func ByID(id string) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// IsKnown reports whether id belongs to the offering.
func IsKnown(id string) bool {
	_, ok := ByID(id)
	return ok
}

// Title resolves a service id to its display title, falling back to the raw
// id for unknown entries so reports never lose information.
func Title(id string) string {
	if s, ok := ByID(id); ok {
		return s.Title
	}
	return id
}
