package room

// CreateRequest for POST /room/create. Numeric fields arrive as strings and
// are validated with the format validators before parsing; this matches the
// wire behavior clients already depend on.
type CreateRequest struct {
	RoomNumber   string   `json:"roomNumber"`
	Type         string   `json:"type"`
	Price        string   `json:"price"`
	Amenities    []string `json:"amenities"`
	Beds         string   `json:"beds"`
	Availability *bool    `json:"availability"`
}

// UpdateRequest for PUT /room/update/{id}. Partial patch: only supplied
// fields change.
type UpdateRequest struct {
	RoomNumber   string   `json:"roomNumber"`
	Type         string   `json:"type"`
	Price        string   `json:"price"`
	Amenities    []string `json:"amenities"`
	Beds         string   `json:"beds"`
	Availability *bool    `json:"availability"`
}
