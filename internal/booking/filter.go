// Package booking contains the business logic of the reservation flow:
// listing filters, price-bucket generation, stay pricing and the
// submission pipeline.  Everything in this package is pure or talks to
// storage only through small interfaces so it can be tested without a
// database.
package booking

import (
	"fmt"
	"math"
	"strings"

	"github.com/sajidhasan/resort-booking/internal/model"
)

// Sentinel filter values meaning "criterion disabled".  They match the
// first entry of every filter dropdown.
const (
	AllTypes     = "All Types"
	AllLocations = "All Locations"
	AllPrices    = "All Prices"
)

// Criteria carries the four independent listing filters.  An empty
// Search and the "All ..." sentinels deactivate their criterion; the
// active ones combine with logical AND.
type Criteria struct {
	Search     string // case-insensitive substring match on the name
	Type       string // exact category match or AllTypes
	Location   string // exact location match or AllLocations
	PriceRange string // label of a generated price bucket or AllPrices
}

// PriceBucket is one band of the dynamically generated price filter.
// Min/Max bound the band; OpenLow marks an "Under X" band (no lower
// bound, price < Max) and OpenHigh an "Over Y" band (no upper bound,
// price > Min).  Closed bands are inclusive on both ends.
type PriceBucket struct {
	Label    string
	Min      int64
	Max      int64
	OpenLow  bool
	OpenHigh bool
}

// Contains reports whether price falls inside the bucket's band.
func (b PriceBucket) Contains(price int64) bool {
	switch {
	case b.OpenLow:
		return price < b.Max
	case b.OpenHigh:
		return price > b.Min
	default:
		return price >= b.Min && price <= b.Max
	}
}

// PriceBuckets derives the price filter bands from the observed min and
// max price of the dataset.  The band width is ceil((max-min)/5); the
// result is an open "Under min+step" band, four closed bands of one
// step each, and an open "Over max-step" band.  When the range is
// degenerate (min == max) two half bands around ceil(max/2) are
// produced, and no bands at all when both bounds are zero.
func PriceBuckets(min, max int64) []PriceBucket {
	if min == 0 && max == 0 {
		return nil
	}
	if max <= min {
		half := int64(math.Ceil(float64(max) / 2))
		return []PriceBucket{
			{Label: fmt.Sprintf("Under %d", half), Max: half, OpenLow: true},
			{Label: fmt.Sprintf("Over %d", half), Min: half, OpenHigh: true},
		}
	}
	step := int64(math.Ceil(float64(max-min) / 5))
	buckets := make([]PriceBucket, 0, 6)
	buckets = append(buckets, PriceBucket{
		Label:   fmt.Sprintf("Under %d", min+step),
		Max:     min + step,
		OpenLow: true,
	})
	for i := int64(0); i < 4; i++ {
		lo := min + step*i
		hi := min + step*(i+1)
		buckets = append(buckets, PriceBucket{
			Label: fmt.Sprintf("%d - %d", lo, hi),
			Min:   lo,
			Max:   hi,
		})
	}
	buckets = append(buckets, PriceBucket{
		Label:    fmt.Sprintf("Over %d", max-step),
		Min:      max - step,
		OpenHigh: true,
	})
	return buckets
}

// BucketsFor computes the price buckets for a set of services from
// their observed minimum and maximum price.  An empty slice yields no
// buckets.
func BucketsFor(services []model.Service) []PriceBucket {
	if len(services) == 0 {
		return nil
	}
	min, max := services[0].Price, services[0].Price
	for _, s := range services[1:] {
		if s.Price < min {
			min = s.Price
		}
		if s.Price > max {
			max = s.Price
		}
	}
	return PriceBuckets(min, max)
}

// Filter returns the subsequence of services satisfying every active
// criterion, preserving the input order.  The price buckets are derived
// once from the full input, not from the already-filtered remainder.
// An unknown price-range label deactivates the price criterion rather
// than matching nothing.
func Filter(services []model.Service, crit Criteria) []model.Service {
	var bucket *PriceBucket
	if crit.PriceRange != "" && crit.PriceRange != AllPrices {
		for _, b := range BucketsFor(services) {
			if b.Label == crit.PriceRange {
				bb := b
				bucket = &bb
				break
			}
		}
	}
	search := strings.ToLower(strings.TrimSpace(crit.Search))

	out := make([]model.Service, 0, len(services))
	for _, s := range services {
		if search != "" && !strings.Contains(strings.ToLower(s.Name), search) {
			continue
		}
		if crit.Type != "" && crit.Type != AllTypes && s.Type != crit.Type {
			continue
		}
		if crit.Location != "" && crit.Location != AllLocations && s.Location != crit.Location {
			continue
		}
		if bucket != nil && !bucket.Contains(s.Price) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterOptions lists the dropdown values offered to visitors: the
// distinct service types and locations plus the generated price-bucket
// labels, each prefixed with its "All ..." sentinel.
type FilterOptions struct {
	ServiceTypes []string `json:"service_types"`
	Locations    []string `json:"locations"`
	PriceRanges  []string `json:"price_ranges"`
}

// OptionsFor assembles FilterOptions from the available services.
// Types and locations keep first-seen order.
func OptionsFor(services []model.Service) FilterOptions {
	opts := FilterOptions{
		ServiceTypes: []string{AllTypes},
		Locations:    []string{AllLocations},
		PriceRanges:  []string{AllPrices},
	}
	seenType := map[string]bool{}
	seenLoc := map[string]bool{}
	for _, s := range services {
		if !seenType[s.Type] {
			seenType[s.Type] = true
			opts.ServiceTypes = append(opts.ServiceTypes, s.Type)
		}
		if !seenLoc[s.Location] {
			seenLoc[s.Location] = true
			opts.Locations = append(opts.Locations, s.Location)
		}
	}
	for _, b := range BucketsFor(services) {
		opts.PriceRanges = append(opts.PriceRanges, b.Label)
	}
	return opts
}
