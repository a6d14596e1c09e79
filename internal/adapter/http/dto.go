package http

import (
	"time"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/usecase"
)

// UserDTO is the authenticated user in API responses.
type UserDTO struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsGuest   bool      `json:"isGuest,omitempty"`
	LoginTime time.Time `json:"loginTime"`
}

// AuthResponse is the response body for login, signup, and guest entry.
type AuthResponse struct {
	// Token is the session token to send on subsequent requests
	Token string `json:"token"`

	// User is the logged-in identity
	User UserDTO `json:"user"`
}

// FlightDTO is one flight in API responses, carrying the display fields the
// results page renders alongside the raw values.
type FlightDTO struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	FlightNumber  string   `json:"flight_number"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      float64  `json:"duration"`
	Stops         string   `json:"stops"`
	StopsText     string   `json:"stops_text"`
	Price         int      `json:"price"`
	Class         string   `json:"class"`
	SafetyScore   float64  `json:"safety_score"`
	SafetyRating  string   `json:"safety_rating"`
	ValueScore    float64  `json:"value_score"`
	Aircraft      string   `json:"aircraft,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
}

// SearchResultsResponse is the response body for flight search and the
// results page.
type SearchResultsResponse struct {
	Results    []FlightDTO       `json:"results"`
	SearchInfo domain.SearchInfo `json:"search_info"`
}

// SeatDTO is one seat in the booking page seat map.
type SeatDTO struct {
	ID       string `json:"id"`
	Row      int    `json:"row"`
	Tier     string `json:"tier"`
	Fee      int    `json:"fee"`
	Occupied bool   `json:"occupied"`
}

// BookingPageResponse is the response body for the booking page and seat
// toggles.
type BookingPageResponse struct {
	Flight         FlightDTO               `json:"flight"`
	SearchData     domain.SearchRequest    `json:"searchData"`
	SeatMap        []SeatDTO               `json:"seatMap"`
	SelectedSeats  []string                `json:"selectedSeats"`
	SelectionState string                  `json:"selectionState"`
	Pricing        domain.PricingBreakdown `json:"pricing"`
}

// BookingResponse is the response body for a submitted booking.
type BookingResponse struct {
	ID                 string                  `json:"id"`
	ConfirmationNumber string                  `json:"confirmation_number"`
	Flight             FlightDTO               `json:"flight"`
	Passengers         []domain.Passenger      `json:"passengers"`
	Seats              []string                `json:"seats"`
	Pricing            domain.PricingBreakdown `json:"pricing"`
	BookingTime        time.Time               `json:"bookingTime"`
	Status             string                  `json:"status"`
}

// PaymentResponse is the response body for a completed payment.
type PaymentResponse struct {
	ConfirmationNumber string          `json:"confirmation_number"`
	Booking            BookingResponse `json:"booking"`
}

// CitiesResponse is the response body for the cities endpoint.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// toFlightDTO converts a domain flight, deriving the display fields.
func toFlightDTO(f domain.Flight) FlightDTO {
	return FlightDTO{
		ID:            f.ID,
		Airline:       f.Airline,
		FlightNumber:  f.DisplayFlightNumber(),
		From:          f.From,
		To:            f.To,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Duration:      f.DurationHours,
		Stops:         string(f.Stops),
		StopsText:     f.Stops.Text(),
		Price:         f.Price,
		Class:         f.Class,
		SafetyScore:   f.SafetyScore,
		SafetyRating:  domain.SafetyRating(f.SafetyScore),
		ValueScore:    f.ValueScore,
		Aircraft:      f.Aircraft,
		Amenities:     f.Amenities,
	}
}

func toFlightDTOs(flights []domain.Flight) []FlightDTO {
	out := make([]FlightDTO, len(flights))
	for i, f := range flights {
		out[i] = toFlightDTO(f)
	}
	return out
}

func toSearchResultsResponse(resp *domain.SearchResponse) *SearchResultsResponse {
	return &SearchResultsResponse{
		Results:    toFlightDTOs(resp.Results),
		SearchInfo: resp.SearchInfo,
	}
}

func toSeatDTOs(seatMap []domain.SeatMapSeat) []SeatDTO {
	out := make([]SeatDTO, len(seatMap))
	for i, seat := range seatMap {
		out[i] = SeatDTO{
			ID:       string(seat.ID),
			Row:      seat.ID.Row(),
			Tier:     string(seat.ID.Tier()),
			Fee:      seat.ID.Fee(),
			Occupied: seat.Occupied,
		}
	}
	return out
}

func toSeatIDs(seats []domain.SeatID) []string {
	out := make([]string, len(seats))
	for i, seat := range seats {
		out[i] = string(seat)
	}
	return out
}

func toBookingPageResponse(view *usecase.BookingView) *BookingPageResponse {
	return &BookingPageResponse{
		Flight:         toFlightDTO(view.Flight),
		SearchData:     view.SearchData,
		SeatMap:        toSeatDTOs(view.SeatMap),
		SelectedSeats:  toSeatIDs(view.SelectedSeats),
		SelectionState: string(view.SelectionState),
		Pricing:        view.Pricing,
	}
}

func toBookingResponse(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ConfirmationNumber: b.ConfirmationNumber,
		Flight:             toFlightDTO(b.Flight),
		Passengers:         b.Passengers,
		Seats:              toSeatIDs(b.Seats),
		Pricing:            b.Pricing,
		BookingTime:        b.BookingTime,
		Status:             string(b.Status),
	}
}

func toAuthResponse(result *usecase.LoginResult) *AuthResponse {
	return &AuthResponse{
		Token: result.Token,
		User: UserDTO{
			Email:     result.Session.User.Email,
			Name:      result.Session.User.Name,
			IsGuest:   result.Session.User.IsGuest,
			LoginTime: result.Session.User.LoginTime,
		},
	}
}
