// README: Hotel lookup over the generated catalog.
package hotel

// Service answers city lookups from the catalog.
type Service struct {
	catalog *Catalog
}

func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// Search returns every hotel in the requested city with the stay details
// echoed onto each offer. An unknown city yields an empty list with an
// explanatory message rather than an error.
func (s *Service) Search(req SearchRequest) SearchResponse {
	hotels, ok := s.catalog.byCity[req.CityName]
	if !ok {
		return SearchResponse{
			Hotels:  []Offer{},
			Message: "No hotels available for the selected city",
		}
	}

	offers := make([]Offer, 0, len(hotels))
	for _, h := range hotels {
		offers = append(offers, Offer{
			Hotel:        h,
			CheckinDate:  req.CheckinDate,
			CheckoutDate: req.CheckoutDate,
			NumOfRooms:   req.NumOfRooms,
		})
	}
	return SearchResponse{Hotels: offers}
}
