package directory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edudham/edudham-api/internal/models"
)

// Any is the sentinel dropdown value meaning "no constraint".
const Any = "all"

// Filter holds the three listing-screen facets. All constraints are ANDed.
type Filter struct {
	Query    string
	Location string
	Category string
}

// Active reports whether any facet constrains the result set.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.Query) != "" ||
		constrained(f.Location) ||
		constrained(f.Category)
}

// Matches applies the three facet rules to one university:
//   - query: case-insensitive substring over name, location, tags,
//     description and every course's name, description and category;
//   - location: case-insensitive substring of the university's location;
//   - category: exact case-insensitive membership in the category list, or
//     substring of the legacy singular field for pre-migration records.
func (f Filter) Matches(u *models.University) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" && !matchesQuery(u, q) {
		return false
	}

	if constrained(f.Location) {
		if !strings.Contains(strings.ToLower(u.Location), strings.ToLower(f.Location)) {
			return false
		}
	}

	if constrained(f.Category) {
		if !matchesCategory(u, f.Category) {
			return false
		}
	}

	return true
}

// Apply filters a listing slice, preserving order.
func Apply(f Filter, universities []models.University) []models.University {
	result := make([]models.University, 0, len(universities))
	for i := range universities {
		if f.Matches(&universities[i]) {
			result = append(result, universities[i])
		}
	}
	return result
}

func matchesQuery(u *models.University, q string) bool {
	if strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Location), q) ||
		strings.Contains(strings.ToLower(u.Description), q) {
		return true
	}
	for _, tag := range u.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, course := range u.Courses {
		if strings.Contains(strings.ToLower(course.CourseName), q) ||
			strings.Contains(strings.ToLower(course.Description), q) ||
			strings.Contains(strings.ToLower(course.Category), q) {
			return true
		}
	}
	return false
}

func matchesCategory(u *models.University, category string) bool {
	for _, c := range u.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	if u.LegacyCategory != "" {
		return strings.Contains(strings.ToLower(u.LegacyCategory), strings.ToLower(category))
	}
	return false
}

func constrained(value string) bool {
	return value != "" && !strings.EqualFold(value, Any)
}

// MinFeeLabel renders the cheapest strictly-positive course fee in lakhs,
// e.g. "₹0.9L", or "N/A" when no course has a positive fee.
func MinFeeLabel(u *models.University) string {
	min := 0.0
	found := false
	for _, course := range u.Courses {
		if course.Fees <= 0 {
			continue
		}
		if !found || course.Fees < min {
			min = course.Fees
			found = true
		}
	}
	if !found {
		return "N/A"
	}
	return fmt.Sprintf("₹%.1fL", min/100000)
}

// Locations returns the sorted distinct locations across all listings.
func Locations(universities []models.University) []string {
	seen := make(map[string]struct{})
	var locations []string
	for i := range universities {
		loc := strings.TrimSpace(universities[i].Location)
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		locations = append(locations, loc)
	}
	sort.Strings(locations)
	return locations
}
