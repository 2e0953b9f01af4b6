package demodata

import (
	"fmt"
	"math"
	"time"

	"travel-explorer-service/internal/app/dto"
	"travel-explorer-service/internal/pkg/bookinglink"
)

var hotelNames = [...]string{
	"Grand Hotel",
	"City Plaza",
	"Royal Suites",
	"Oceanview Resort",
	"Downtown Inn",
	"Metropolitan Hotel",
	"Sunset View",
	"Riverside Lodge",
	"Century Plaza",
	"The Paramount",
	"Heritage Hotel",
	"Urban Retreat",
}

// hotelThumbnails cycles independently of hotelNames; the tables have
// different lengths so the name/image pairing drifts past the sixth record.
var hotelThumbnails = [...]string{
	"https://placehold.co/600x400/3498db/FFFFFF.png?text=Grand+Hotel",
	"https://placehold.co/600x400/e74c3c/FFFFFF.png?text=City+Plaza",
	"https://placehold.co/600x400/2ecc71/FFFFFF.png?text=Royal+Suites",
	"https://placehold.co/600x400/f39c12/FFFFFF.png?text=Oceanview+Resort",
	"https://placehold.co/600x400/9b59b6/FFFFFF.png?text=Downtown+Inn",
	"https://placehold.co/600x400/1abc9c/FFFFFF.png?text=Metropolitan+Hotel",
}

var hotelAmenities = [...]string{
	"Free WiFi",
	"Swimming Pool",
	"Fitness Center",
	"Restaurant",
	"Room Service",
	"Spa",
	"Business Center",
	"Airport Shuttle",
	"Parking",
	"Concierge",
	"Laundry Service",
	"Bar/Lounge",
}

const (
	guestSurchargePerGuest = 25
	dateLayout             = "2006-01-02"
)

// Hotels returns count synthetic accommodation records for the city. The
// stay dates must parse as YYYY-MM-DD; nights is at least 1 regardless of
// how close the dates are.
func (g *Generator) Hotels(city string, count int, checkIn, checkOut string, guests int) ([]dto.HotelRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	checkInDate, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return nil, fmt.Errorf("parse check-in date: %w", err)
	}

	checkOutDate, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return nil, fmt.Errorf("parse check-out date: %w", err)
	}

	nights := int(math.Ceil(checkOutDate.Sub(checkInDate).Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	guestSurcharge := (guests - 1) * guestSurchargePerGuest
	if guestSurcharge < 0 {
		guestSurcharge = 0
	}

	hotels := make([]dto.HotelRecord, 0, count)

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("%s %s", hotelNames[i%len(hotelNames)], city)
		rating := float64(30+g.rng.Intn(21)) / 10
		pricePerNight := 80 + g.rng.Intn(321)

		hotels = append(hotels, dto.HotelRecord{
			ID:                 fmt.Sprintf("hotel-%d", i+1),
			Name:               name,
			Address:            fmt.Sprintf("%d Main Street, %s", 1+g.rng.Intn(1000), city),
			Rating:             rating,
			PricePerNight:      pricePerNight,
			TotalPrice:         (pricePerNight + guestSurcharge) * nights,
			Nights:             nights,
			Currency:           "USD",
			Amenities:          g.pickAmenities(),
			Thumbnail:          hotelThumbnails[i%len(hotelThumbnails)],
			Description: fmt.Sprintf("Experience luxury and comfort at %s. "+
				"Located in the heart of %s, our hotel offers easy access to local attractions and business districts.",
				name, city),
			ExpediaBookingLink: bookinglink.HotelExpedia(name, city, checkIn, checkOut, guests),
		})
	}

	return hotels, nil
}

// pickAmenities samples the amenity table until it has collected between 3
// and 8 unique entries.
func (g *Generator) pickAmenities() []string {
	target := 3 + g.rng.Intn(6)
	picked := make([]string, 0, target)
	seen := make(map[string]bool, target)

	for len(picked) < target {
		amenity := hotelAmenities[g.rng.Intn(len(hotelAmenities))]
		if seen[amenity] {
			continue
		}

		seen[amenity] = true
		picked = append(picked, amenity)
	}

	return picked
}
