package brochure

import (
	"time"

	"github.com/google/uuid"
)

type (
	// BrochureRecord is one generated brochure in a user's history. Records are
	// immutable once saved; id and createdAt are store-assigned.
	BrochureRecord struct {
		ID              uuid.UUID `json:"id"`
		UserID          int64     `json:"userId"`
		HotelName       string    `json:"hotelName"`
		Location        string    `json:"location"`
		FilePath        string    `json:"filePath"`
		ExteriorImage   *string   `json:"exteriorImage"`
		RoomImage       *string   `json:"roomImage"`
		RestaurantImage *string   `json:"restaurantImage"`
		Prompt          *string   `json:"prompt"`
		CreatedAt       time.Time `json:"createdAt"`
	}

	SaveBrochureIn struct {
		HotelName       string  `json:"hotelName"`
		Location        string  `json:"location"`
		FilePath        string  `json:"filePath"`
		ExteriorImage   *string `json:"exteriorImage"`
		RoomImage       *string `json:"roomImage"`
		RestaurantImage *string `json:"restaurantImage"`
		Prompt          *string `json:"prompt"`
	}
)
