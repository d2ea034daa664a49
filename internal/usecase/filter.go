package usecase

import (
	"math"
	"strconv"
	"strings"
	"time"

	"scrappix-admin/internal/domain/entity"
)

// ItemFilter narrows a marketplace listing set. All populated fields must
// match (AND semantics); zero-valued fields are ignored. Price bounds are
// kept as raw strings because listing prices are stored as free-form text.
type ItemFilter struct {
	Category   string
	PriceMin   string
	PriceMax   string
	Location   string
	SellerName string
	DateFrom   time.Time
	DateTo     time.Time
}

func (f ItemFilter) IsZero() bool {
	return f.Category == "" && f.PriceMin == "" && f.PriceMax == "" &&
		f.Location == "" && f.SellerName == "" &&
		f.DateFrom.IsZero() && f.DateTo.IsZero()
}

// FilterAndSearchItems applies the structured filter first, then the
// free-text search term across all display fields (OR semantics). With an
// empty term and a zero filter the input set is returned unchanged.
func FilterAndSearchItems(items []*entity.MarketplaceItem, term string, filter ItemFilter) []*entity.MarketplaceItem {
	term = strings.ToLower(strings.TrimSpace(term))

	matched := make([]*entity.MarketplaceItem, 0, len(items))
	for _, item := range items {
		if !matchesFilter(item, filter) {
			continue
		}
		if term != "" && !matchesSearch(item, term) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesFilter(item *entity.MarketplaceItem, f ItemFilter) bool {
	if f.Category != "" && !containsFold(item.Category, f.Category) {
		return false
	}
	if f.Location != "" && !containsFold(item.Location, f.Location) {
		return false
	}
	if f.SellerName != "" && !containsFold(item.SellerName, f.SellerName) {
		return false
	}

	if f.PriceMin != "" || f.PriceMax != "" {
		price := parsePrice(item.Price)
		min := parsePriceOr(f.PriceMin, 0)
		max := parsePriceOr(f.PriceMax, math.Inf(1))
		if price < min || price > max {
			return false
		}
	}

	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		if item.PostedAt.IsZero() {
			return false
		}
		if !f.DateFrom.IsZero() && item.PostedAt.Before(f.DateFrom) {
			return false
		}
		if !f.DateTo.IsZero() && item.PostedAt.After(endOfDay(f.DateTo)) {
			return false
		}
	}

	return true
}

func matchesSearch(item *entity.MarketplaceItem, term string) bool {
	if containsFold(item.ProductName, term) ||
		containsFold(item.SellerName, term) ||
		containsFold(item.Category, term) ||
		containsFold(item.Location, term) ||
		containsFold(item.Description, term) ||
		containsFold(item.Price, term) {
		return true
	}
	for _, tag := range item.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// parsePrice reads a listing price stored as text. Unparseable values count
// as zero so malformed listings still land inside "from 0" ranges.
func parsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return price
}

func parsePriceOr(raw string, fallback float64) float64 {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fallback
	}
	return price
}

// endOfDay widens a date-only upper bound so listings posted any time that
// day are still included.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
