package models

// BusAmenity is an on-board amenity advertised for a bus.
type BusAmenity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IconImage   string `json:"icon_image"`
	Description string `json:"description"`
}

// BusImage is a gallery image attached to a bus.
type BusImage struct {
	ID      int64  `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

// BusDetail describes the vehicle assigned to a trip.
type BusDetail struct {
	ID            int64        `json:"id"`
	LicensePlate  string       `json:"LICENSE_PLATE"`
	BusType       string       `json:"bus_type"`
	TotalSeats    int          `json:"total_seats"`
	MainImage     string       `json:"main_image"`
	Images        []BusImage   `json:"images"`
	Amenities     []BusAmenity `json:"amenities"`
	Policy        string       `json:"policy"`
	Description   string       `json:"description"`
	AverageRating float64      `json:"average_rating"`
}
