package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Routes served by DuffelServer, used with Calls.
const (
	RouteOfferRequests = "offer_requests"
	RouteListOffers    = "list_offers"
	RouteGetOffer      = "get_offer"
	RoutePlaces        = "places"
)

type cannedResponse struct {
	status int
	body   []byte
}

// DuffelServer is an httptest server that imitates the Duffel endpoints the
// service calls. Responses are configurable; calls are counted per route.
type DuffelServer struct {
	*httptest.Server

	mu               sync.Mutex
	responses        map[string]cannedResponse
	emptyListsBefore int
	calls            map[string]int
	lastOfferRequest []byte
	lastHeaders      http.Header
	lastQuery        map[string]string
}

// NewDuffelServer starts a stub that accepts offer requests and lists no offers.
func NewDuffelServer() *DuffelServer {
	s := &DuffelServer{
		responses: map[string]cannedResponse{
			RouteOfferRequests: {http.StatusCreated, []byte(`{"data":{"id":"orq_stub"}}`)},
			RouteListOffers:    {http.StatusOK, []byte(`{"data":[]}`)},
			RouteGetOffer:      {http.StatusOK, []byte(`{"data":{}}`)},
			RoutePlaces:        {http.StatusOK, []byte(`{"data":[]}`)},
		},
		calls:     make(map[string]int),
		lastQuery: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /air/offer_requests", s.handle(RouteOfferRequests))
	mux.HandleFunc("GET /air/offers", s.handle(RouteListOffers))
	mux.HandleFunc("GET /air/offers/{id}", s.handle(RouteGetOffer))
	mux.HandleFunc("GET /places/suggestions", s.handle(RoutePlaces))

	s.Server = httptest.NewServer(mux)
	return s
}

// Respond sets the canned status and body for a route.
func (s *DuffelServer) Respond(route string, status int, body []byte) *DuffelServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[route] = cannedResponse{status: status, body: body}
	return s
}

// OffersReadyAfter makes the first n list-offers calls answer with an empty list.
func (s *DuffelServer) OffersReadyAfter(n int) *DuffelServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emptyListsBefore = n
	return s
}

// Calls returns how many times route was hit.
func (s *DuffelServer) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// TotalCalls returns the number of requests across all routes.
func (s *DuffelServer) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// LastOfferRequest returns the body of the most recent offer request.
func (s *DuffelServer) LastOfferRequest() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOfferRequest
}

// LastHeader returns a header of the most recent request.
func (s *DuffelServer) LastHeader(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastHeaders.Get(name)
}

// LastQuery returns the raw query string last sent to route.
func (s *DuffelServer) LastQuery(route string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery[route]
}

func (s *DuffelServer) handle(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		s.mu.Lock()
		s.calls[route]++
		count := s.calls[route]
		s.lastHeaders = r.Header.Clone()
		s.lastQuery[route] = r.URL.RawQuery
		if route == RouteOfferRequests {
			s.lastOfferRequest = body
		}
		resp := s.responses[route]
		if route == RouteListOffers && count <= s.emptyListsBefore {
			resp = cannedResponse{http.StatusOK, []byte(`{"data":[]}`)}
		}
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write(resp.body)
	}
}
