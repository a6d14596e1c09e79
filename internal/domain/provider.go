package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// SearchProvider is the upstream flight search collaborator. Given a
// validated search request it returns candidate flights for the route, or a
// failure reason. The contract is at-most-once: no retries, no partial
// results.
type SearchProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// Search returns the candidate flights for the request.
	// Returns ErrNoFlightsFound when the route has no flights.
	Search(ctx context.Context, req SearchRequest) ([]Flight, error)
}

// RouteStats summarizes the searched route across all returned flights.
type RouteStats struct {
	// TotalFlights is the number of flights considered for the route
	TotalFlights int `json:"total_flights"`

	// Airlines are the distinct airlines serving the route
	Airlines []string `json:"airlines"`

	// AvgPrice is the mean per-passenger price across the results
	AvgPrice float64 `json:"avg_price"`
}

// SearchInfo echoes the search parameters alongside result statistics.
type SearchInfo struct {
	From          string     `json:"from"`
	To            string     `json:"to"`
	DepartureDate string     `json:"departure_date"`
	Passengers    int        `json:"passengers"`
	Class         string     `json:"class"`
	TripType      TripType   `json:"trip_type"`
	TotalResults  int        `json:"total_results"`
	RouteStats    RouteStats `json:"route_stats"`
}

// SearchResponse is the aggregated outcome of a flight search.
type SearchResponse struct {
	// Results are the candidate flights in provider order
	Results []Flight `json:"results"`

	// SearchInfo echoes the request and route statistics
	SearchInfo SearchInfo `json:"search_info"`
}

// NewSearchResponse builds a SearchResponse from the request and results,
// computing the route statistics.
func NewSearchResponse(req *SearchRequest, flights []Flight) *SearchResponse {
	if flights == nil {
		flights = []Flight{}
	}

	seen := make(map[string]struct{})
	airlines := make([]string, 0)
	priceSum := 0
	for _, f := range flights {
		if _, ok := seen[f.Airline]; !ok {
			seen[f.Airline] = struct{}{}
			airlines = append(airlines, f.Airline)
		}
		priceSum += f.Price
	}

	avgPrice := 0.0
	if len(flights) > 0 {
		avgPrice = float64(priceSum) / float64(len(flights))
	}

	return &SearchResponse{
		Results: flights,
		SearchInfo: SearchInfo{
			From:          req.From,
			To:            req.To,
			DepartureDate: req.DepartureDate,
			Passengers:    req.Passengers,
			Class:         req.Class,
			TripType:      req.TripType,
			TotalResults:  len(flights),
			RouteStats: RouteStats{
				TotalFlights: len(flights),
				Airlines:     airlines,
				AvgPrice:     avgPrice,
			},
		},
	}
}
