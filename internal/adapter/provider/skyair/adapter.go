// Package skyair implements the flight search provider backing the demo.
// It simulates the upstream recommendation service: a fixed route network
// with per-class pricing, demand-driven price variation, and generated
// departure times. Results vary between searches the way the real upstream
// varies, but a seeded random source makes them reproducible in tests.
package skyair

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/skybooker/flight-booking-service/internal/domain"
	"github.com/skybooker/flight-booking-service/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "skyair"

// departureSlots are the schedule departure times flights are drawn from.
var departureSlots = []string{
	"06:15", "08:30", "10:45", "13:20", "15:55", "18:10", "20:25",
}

// aircraftPool are the aircraft types assigned to generated flights.
var aircraftPool = []string{
	"Boeing 737", "Airbus A320", "Boeing 777", "Airbus A380",
}

// amenityPool is the set of amenities flights sample from.
var amenityPool = []string{
	"WiFi", "Meals", "Entertainment", "Extra Legroom", "Priority Boarding",
}

// amenitiesPerFlight is how many amenities each flight advertises.
const amenitiesPerFlight = 3

// classMultipliers adjust the base fare by travel class.
var classMultipliers = map[string]float64{
	"Economy":         1.0,
	"Premium_Economy": 1.5,
	"Business":        2.5,
	"First":           4.0,
}

// airlineProfile describes one airline serving the network.
type airlineProfile struct {
	name        string
	code        string
	basePrice   int
	duration    float64
	stops       domain.Stops
	safetyScore float64
	valueScore  float64
}

// airlines is the demo route network. Every city pair is served by the same
// carriers; fares scale by class and demand.
var airlines = []airlineProfile{
	{name: "IndiGo", code: "6E", basePrice: 4200, duration: 2.2, stops: domain.StopsZero, safetyScore: 8.4, valueScore: 8.9},
	{name: "Air India", code: "AI", basePrice: 5100, duration: 2.5, stops: domain.StopsZero, safetyScore: 7.8, valueScore: 7.2},
	{name: "Vistara", code: "UK", basePrice: 6300, duration: 2.4, stops: domain.StopsZero, safetyScore: 9.1, valueScore: 7.9},
	{name: "SpiceJet", code: "SG", basePrice: 3800, duration: 2.8, stops: domain.StopsOne, safetyScore: 7.1, valueScore: 8.1},
	{name: "Akasa Air", code: "QP", basePrice: 4500, duration: 3.1, stops: domain.StopsOne, safetyScore: 8.7, valueScore: 8.3},
	{name: "Alliance Air", code: "9I", basePrice: 3500, duration: 4.0, stops: domain.StopsTwoPlus, safetyScore: 6.4, valueScore: 6.8},
}

// cities is the set of cities the network serves.
var cities = []string{
	"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
	"Pune", "Ahmedabad", "Jaipur", "Kochi", "Goa", "Chandigarh",
	"Indore", "Nagpur", "Vadodara", "Bhubaneswar", "Coimbatore",
	"Vishakhapatnam", "Thiruvananthapuram", "Srinagar",
}

// Adapter is the simulated upstream search provider.
type Adapter struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAdapter creates a provider seeded from the given source.
func NewAdapter(rng *rand.Rand) *Adapter {
	return &Adapter{rng: rng}
}

// Name implements domain.SearchProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Cities returns the cities served by the network, for the search form.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// Search implements domain.SearchProvider. It generates one result per
// airline serving the route, priced for the requested class.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !serves(req.From) || !serves(req.To) {
		return nil, fmt.Errorf("%w: no flights from %s to %s", domain.ErrNoFlightsFound, req.From, req.To)
	}

	multiplier, ok := classMultipliers[req.Class]
	if !ok {
		multiplier = 1.0
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	flights := make([]domain.Flight, 0, len(airlines))
	for i, airline := range airlines {
		// Demand variation in [0.9, 1.2), matching the upstream's pricing.
		demand := 0.9 + a.rng.Float64()*0.3
		price := int(float64(airline.basePrice) * multiplier * demand)

		departure := departureSlots[a.rng.Intn(len(departureSlots))]
		arrival, err := timeutil.ArrivalTime(departure, airline.duration)
		if err != nil {
			return nil, fmt.Errorf("derive arrival time: %w", err)
		}

		flights = append(flights, domain.Flight{
			ID:            fmt.Sprintf("flight_%d", i+1),
			Airline:       airline.name,
			FlightNumber:  fmt.Sprintf("%s%d", airline.code, 100+a.rng.Intn(900)),
			From:          req.From,
			To:            req.To,
			DepartureTime: departure,
			ArrivalTime:   arrival,
			DurationHours: airline.duration,
			Stops:         airline.stops,
			Price:         price,
			Class:         req.Class,
			SafetyScore:   airline.safetyScore,
			ValueScore:    airline.valueScore,
			Aircraft:      aircraftPool[a.rng.Intn(len(aircraftPool))],
			Amenities:     a.sampleAmenities(),
		})
	}

	return flights, nil
}

// sampleAmenities draws amenitiesPerFlight distinct labels from the pool,
// preserving pool order.
func (a *Adapter) sampleAmenities() []string {
	picked := a.rng.Perm(len(amenityPool))[:amenitiesPerFlight]

	out := make([]string, 0, amenitiesPerFlight)
	for i, label := range amenityPool {
		for _, p := range picked {
			if p == i {
				out = append(out, label)
				break
			}
		}
	}
	return out
}

func serves(city string) bool {
	for _, c := range cities {
		if strings.EqualFold(c, city) {
			return true
		}
	}
	return false
}

var _ domain.SearchProvider = (*Adapter)(nil)
