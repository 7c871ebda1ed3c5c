package hotel

import (
	"math/rand"
	"strings"
	"testing"
)

func TestSearch_KnownCity(t *testing.T) {
	svc := NewService(NewCatalog(25, rand.New(rand.NewSource(11))))

	resp := svc.Search(SearchRequest{
		CityName:     "Austin",
		NumOfRooms:   2,
		CheckinDate:  "2026-09-01",
		CheckoutDate: "2026-09-05",
	})

	if len(resp.Hotels) != 25 {
		t.Fatalf("expected 25 offers, got %d", len(resp.Hotels))
	}
	if resp.Message != "" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	for _, offer := range resp.Hotels {
		if offer.CheckinDate != "2026-09-01" || offer.CheckoutDate != "2026-09-05" || offer.NumOfRooms != 2 {
			t.Fatalf("stay details not echoed: %+v", offer)
		}
		if offer.Name == "" || !strings.Contains(offer.Address, "Austin") {
			t.Fatalf("malformed offer: %+v", offer)
		}
		if offer.Rating < 3.0 || offer.Rating > 5.0 {
			t.Errorf("rating %v outside [3.0, 5.0]", offer.Rating)
		}
		if !strings.HasPrefix(offer.PriceRange, "$") || !strings.Contains(offer.PriceRange, " - $") {
			t.Errorf("malformed price range %q", offer.PriceRange)
		}
	}
}

func TestSearch_UnknownCity(t *testing.T) {
	svc := NewService(NewCatalog(5, rand.New(rand.NewSource(11))))

	resp := svc.Search(SearchRequest{CityName: "Gotham"})
	if len(resp.Hotels) != 0 {
		t.Errorf("expected empty result, got %d offers", len(resp.Hotels))
	}
	if resp.Message == "" {
		t.Error("expected an explanatory message")
	}
}

func TestNewCatalog_Deterministic(t *testing.T) {
	a := NewCatalog(10, rand.New(rand.NewSource(3)))
	b := NewCatalog(10, rand.New(rand.NewSource(3)))

	for _, city := range []string{"Miami", "Seattle"} {
		ha, hb := a.byCity[city], b.byCity[city]
		if len(ha) != len(hb) {
			t.Fatalf("%s: catalog sizes differ", city)
		}
		for i := range ha {
			if ha[i] != hb[i] {
				t.Fatalf("%s: entry %d differs: %+v vs %+v", city, i, ha[i], hb[i])
			}
		}
	}
}
