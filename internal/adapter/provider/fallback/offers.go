// Package fallback holds the deterministic datasets served when the live
// provider cannot answer: a fixed offer list and a small airport directory.
package fallback

import "github.com/flight-search/flight-offer-service/internal/domain"

var standardAmenities = []string{"wifi", "meals", "entertainment"}

// offers is the hand-authored mock list. Order matters: callers rely on
// the first entry being the Emirates offer with id "1".
var offers = []domain.FlightOffer{
	{
		ID:           "1",
		Airline:      "Emirates",
		FlightNumber: "EK202",
		Departure:    domain.FlightPoint{Time: "08:30", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "04:45", Airport: "DXB", City: "Dubai", Date: "2025-07-16"},
		Duration:     "12h 15m",
		Stops:        0,
		Price:        899,
		Currency:     "USD",
		Amenities:    standardAmenities,
		Baggage:      "2 x 23kg",
		CabinClass:   "Economy",
	},
	{
		ID:           "2",
		Airline:      "British Airways",
		FlightNumber: "BA178",
		Departure:    domain.FlightPoint{Time: "19:10", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "07:20", Airport: "LHR", City: "London", Date: "2025-07-16"},
		Duration:     "7h 10m",
		Stops:        0,
		Price:        645.5,
		Currency:     "USD",
		Amenities:    standardAmenities,
		Baggage:      "1 x 23kg",
		CabinClass:   "Economy",
	},
	{
		ID:           "3",
		Airline:      "Qatar Airways",
		FlightNumber: "QR702",
		Departure:    domain.FlightPoint{Time: "22:15", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "23:55", Airport: "BKK", City: "Bangkok", Date: "2025-07-16"},
		Duration:     "25h 40m",
		Stops:        1,
		StopDetails:  "1 stop (DOH)",
		Price:        1120,
		Currency:     "USD",
		Amenities:    standardAmenities,
		Baggage:      "2 x 23kg",
		CabinClass:   "Economy",
	},
	{
		ID:           "4",
		Airline:      "Lufthansa",
		FlightNumber: "LH401",
		Departure:    domain.FlightPoint{Time: "17:45", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "11:40", Airport: "FCO", City: "Rome", Date: "2025-07-16"},
		Duration:     "11h 55m",
		Stops:        1,
		StopDetails:  "1 stop (FRA)",
		Price:        2380,
		Currency:     "USD",
		Amenities:    []string{"wifi", "meals", "entertainment", "lie-flat seat"},
		Baggage:      "2 x 32kg",
		CabinClass:   "Business",
	},
	{
		ID:           "5",
		Airline:      "Delta Air Lines",
		FlightNumber: "DL423",
		Departure:    domain.FlightPoint{Time: "06:00", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "09:25", Airport: "LAX", City: "Los Angeles", Date: "2025-07-15"},
		Duration:     "6h 25m",
		Stops:        0,
		Price:        329,
		Currency:     "USD",
		Amenities:    []string{"wifi", "snacks"},
		Baggage:      "Carry-on only",
		CabinClass:   "Economy",
	},
	{
		ID:           "6",
		Airline:      "American Airlines",
		FlightNumber: "AA1",
		Departure:    domain.FlightPoint{Time: "09:00", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "12:35", Airport: "LAX", City: "Los Angeles", Date: "2025-07-15"},
		Duration:     "6h 35m",
		Stops:        0,
		Price:        4210,
		Currency:     "USD",
		Amenities:    []string{"wifi", "meals", "entertainment", "lounge access"},
		Baggage:      "3 x 32kg",
		CabinClass:   "First",
	},
	{
		ID:           "7",
		Airline:      "United Airlines",
		FlightNumber: "UA2143",
		Departure:    domain.FlightPoint{Time: "13:20", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "19:05", Airport: "LAX", City: "Los Angeles", Date: "2025-07-15"},
		Duration:     "8h 45m",
		Stops:        1,
		StopDetails:  "1 stop (ORD)",
		Price:        287.4,
		Currency:     "USD",
		Amenities:    []string{"wifi"},
		Baggage:      "1 x 23kg",
		CabinClass:   "Economy",
	},
	{
		ID:           "8",
		Airline:      "Air France",
		FlightNumber: "AF007",
		Departure:    domain.FlightPoint{Time: "18:30", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "07:45", Airport: "CDG", City: "Paris", Date: "2025-07-16"},
		Duration:     "7h 15m",
		Stops:        0,
		Price:        1045,
		Currency:     "USD",
		Amenities:    standardAmenities,
		Baggage:      "2 x 23kg",
		CabinClass:   "Premium Economy",
	},
	{
		ID:           "9",
		Airline:      "Turkish Airlines",
		FlightNumber: "TK12",
		Departure:    domain.FlightPoint{Time: "01:25", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "06:50", Airport: "SIN", City: "Singapore", Date: "2025-07-16"},
		Duration:     "29h 25m",
		Stops:        2,
		StopDetails:  "2 stops (IST, DXB)",
		Price:        978,
		Currency:     "USD",
		Amenities:    standardAmenities,
		Baggage:      "2 x 23kg",
		CabinClass:   "Economy",
	},
	{
		ID:           "10",
		Airline:      "Singapore Airlines",
		FlightNumber: "SQ23",
		Departure:    domain.FlightPoint{Time: "10:35", Airport: "JFK", City: "New York", Date: "2025-07-15"},
		Arrival:      domain.FlightPoint{Time: "18:05", Airport: "SIN", City: "Singapore", Date: "2025-07-16"},
		Duration:     "18h 30m",
		Stops:        0,
		Price:        5890,
		Currency:     "USD",
		Amenities:    []string{"wifi", "meals", "entertainment", "suite"},
		Baggage:      "3 x 32kg",
		CabinClass:   "First",
	},
}

// Offers returns a fresh copy of the mock offer list.
// Mutating the result never affects later calls.
func Offers() []domain.FlightOffer {
	out := make([]domain.FlightOffer, len(offers))
	for i, o := range offers {
		o.Amenities = append([]string(nil), o.Amenities...)
		out[i] = o
	}
	return out
}
