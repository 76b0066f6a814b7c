package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajidhasan/resort-booking/internal/model"
)

func svc(id uint64, name, typ, loc string, price int64) model.Service {
	return model.Service{ID: id, Name: name, Type: typ, Location: loc, Price: price, Status: model.StatusAvailable}
}

func TestPriceBucketsLabels(t *testing.T) {
	buckets := PriceBuckets(100, 600)
	require.Len(t, buckets, 6)

	labels := make([]string, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{
		"Under 200",
		"100 - 200",
		"200 - 300",
		"300 - 400",
		"400 - 500",
		"Over 500",
	}, labels)
}

func TestPriceBucketsStepRoundsUp(t *testing.T) {
	// (601-100)/5 = 100.2, step rounds up to 101.
	buckets := PriceBuckets(100, 601)
	require.Len(t, buckets, 6)
	assert.Equal(t, "Under 201", buckets[0].Label)
	assert.Equal(t, "100 - 201", buckets[1].Label)
	assert.Equal(t, "Over 500", buckets[5].Label)
}

func TestPriceBucketsDegenerate(t *testing.T) {
	buckets := PriceBuckets(500, 500)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Under 250", buckets[0].Label)
	assert.Equal(t, "Over 250", buckets[1].Label)

	// Odd single price rounds the midpoint up.
	buckets = PriceBuckets(333, 333)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Under 167", buckets[0].Label)

	assert.Nil(t, PriceBuckets(0, 0))
}

func TestPriceBucketContains(t *testing.T) {
	under := PriceBucket{Max: 200, OpenLow: true}
	assert.True(t, under.Contains(199))
	assert.False(t, under.Contains(200))

	band := PriceBucket{Min: 200, Max: 300}
	assert.True(t, band.Contains(200))
	assert.True(t, band.Contains(300))
	assert.False(t, band.Contains(301))

	over := PriceBucket{Min: 500, OpenHigh: true}
	assert.False(t, over.Contains(500))
	assert.True(t, over.Contains(501))
}

func TestFilterAppliesAllCriteria(t *testing.T) {
	services := []model.Service{
		svc(1, "Sea Pearl Resort", "Resort", "Beach Front", 100),
		svc(2, "Hill View Hotel", "Hotel", "Mountain View", 250),
		svc(3, "Sea Breeze Villa", "Villa", "Beach Front", 400),
		svc(4, "Sea Side Resort", "Resort", "Beach Front", 600),
	}

	got := Filter(services, Criteria{Search: "sea", Type: "Resort", Location: "Beach Front"})
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(4), got[1].ID)
}

func TestFilterSentinelsDisableCriteria(t *testing.T) {
	services := []model.Service{
		svc(1, "A", "Resort", "Beach Front", 100),
		svc(2, "B", "Hotel", "Mountain View", 600),
	}
	got := Filter(services, Criteria{Type: AllTypes, Location: AllLocations, PriceRange: AllPrices})
	assert.Len(t, got, 2)
}

func TestFilterPriceBucket(t *testing.T) {
	services := []model.Service{
		svc(1, "A", "Resort", "X", 100),
		svc(2, "B", "Resort", "X", 250),
		svc(3, "C", "Resort", "X", 600),
	}
	// Buckets derive from min=100 max=600, step 100.
	got := Filter(services, Criteria{PriceRange: "200 - 300"})
	require.Len(t, got, 1)
	assert.Equal(t, uint64(2), got[0].ID)

	got = Filter(services, Criteria{PriceRange: "Under 200"})
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)

	got = Filter(services, Criteria{PriceRange: "Over 500"})
	require.Len(t, got, 1)
	assert.Equal(t, uint64(3), got[0].ID)
}

func TestFilterUnknownBucketLabelIsIgnored(t *testing.T) {
	services := []model.Service{
		svc(1, "A", "Resort", "X", 100),
		svc(2, "B", "Resort", "X", 600),
	}
	got := Filter(services, Criteria{PriceRange: "no such band"})
	assert.Len(t, got, 2)
}

func TestFilterPreservesOrder(t *testing.T) {
	services := []model.Service{
		svc(3, "C", "Resort", "X", 100),
		svc(1, "A", "Resort", "X", 200),
		svc(2, "B", "Resort", "X", 300),
	}
	got := Filter(services, Criteria{})
	require.Len(t, got, 3)
	assert.Equal(t, uint64(3), got[0].ID)
	assert.Equal(t, uint64(1), got[1].ID)
	assert.Equal(t, uint64(2), got[2].ID)
}

func TestOptionsFor(t *testing.T) {
	services := []model.Service{
		svc(1, "A", "Resort", "Beach Front", 100),
		svc(2, "B", "Hotel", "Mountain View", 300),
		svc(3, "C", "Resort", "Beach Front", 600),
	}
	opts := OptionsFor(services)

	assert.Equal(t, []string{AllTypes, "Resort", "Hotel"}, opts.ServiceTypes)
	assert.Equal(t, []string{AllLocations, "Beach Front", "Mountain View"}, opts.Locations)
	require.Len(t, opts.PriceRanges, 7) // sentinel + six buckets
	assert.Equal(t, AllPrices, opts.PriceRanges[0])
	assert.Equal(t, "Under 200", opts.PriceRanges[1])
	assert.Equal(t, "Over 500", opts.PriceRanges[6])
}

func TestOptionsForEmpty(t *testing.T) {
	opts := OptionsFor(nil)
	assert.Equal(t, []string{AllTypes}, opts.ServiceTypes)
	assert.Equal(t, []string{AllLocations}, opts.Locations)
	assert.Equal(t, []string{AllPrices}, opts.PriceRanges)
}
