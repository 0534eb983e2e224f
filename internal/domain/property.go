package domain

// Location is the physical address of a property. Coordinates are
// [lat, lon], matching the listing feed format.
type Location struct {
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Host struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar,omitempty"`
	IsSuperhost bool   `json:"isSuperhost"`
}

// Property is a rental listing. Price, Bedrooms, Bathrooms and Rating are
// always present; ImageURL, Images and Featured are optional and their
// absence must not break filtering or encoding.
type Property struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Images        []string `json:"images,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Type          string   `json:"type"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	MaxGuests     int      `json:"maxGuests"`
	Location      Location `json:"location"`
	Amenities     []string `json:"amenities"`
	Host          Host     `json:"host"`
	AvailableFrom string   `json:"availableFrom,omitempty"`
	AvailableTo   string   `json:"availableTo,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}
