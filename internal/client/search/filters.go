// Package search holds the location search filter state, its query
// serialization, and the debounced fetch loop.
package search

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Filters is the composite filter state of the location search page.
// Zero values mean the dimension is inactive.
type Filters struct {
	Query string

	// Location type checkboxes, keyed by the wire value (room,
	// building, nonbuilding).
	Types map[string]bool

	// Room facets; only serialized while the room type box is checked.
	RoomSizes  map[string]bool
	RoomTypes  map[string]bool
	RoomNumber string

	BuildingName string
	CampusName   string

	// Rating thresholds, gated on the toggle.
	FilterByRating bool
	MinScore       int
	MaxNoise       int
	MinCleanliness int
	MinEquipment   int
	MinWifi        int

	Equipment     []string
	Accessibility []string
}

// Values serializes the filter state plus the ambient university
// context into query parameters. A dimension is present only when it
// has an affirmative value, so the backend never sees empty keys.
func (f Filters) Values(university, state string) url.Values {
	params := url.Values{}

	if university != "" {
		params.Set("university", university)
	}
	if state != "" {
		params.Set("state", state)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		params.Set("q", q)
	}

	if types := checkedKeys(f.Types); len(types) > 0 {
		params.Set("types", strings.Join(types, ","))
	}

	if f.Types["room"] {
		if sizes := checkedKeys(f.RoomSizes); len(sizes) > 0 {
			params.Set("roomSizes", strings.Join(sizes, ","))
		}
		if roomTypes := checkedKeys(f.RoomTypes); len(roomTypes) > 0 {
			params.Set("roomTypes", strings.Join(roomTypes, ","))
		}
		if number := strings.TrimSpace(f.RoomNumber); number != "" {
			params.Set("roomNumber", number)
		}
	}

	if building := strings.TrimSpace(f.BuildingName); building != "" {
		params.Set("building", building)
	}
	if campus := strings.TrimSpace(f.CampusName); campus != "" {
		params.Set("campus", campus)
	}

	if f.FilterByRating {
		setPositive(params, "minScore", f.MinScore)
		setPositive(params, "maxNoise", f.MaxNoise)
		setPositive(params, "minCleanliness", f.MinCleanliness)
		setPositive(params, "minEquipment", f.MinEquipment)
		setPositive(params, "minWifi", f.MinWifi)
	}

	if len(f.Equipment) > 0 {
		params.Set("equipment", strings.Join(f.Equipment, ","))
	}
	if len(f.Accessibility) > 0 {
		params.Set("accessibility", strings.Join(f.Accessibility, ","))
	}

	return params
}

// checkedKeys returns the enabled checkbox keys in a stable order.
func checkedKeys(boxes map[string]bool) []string {
	if len(boxes) == 0 {
		return nil
	}
	// Wire order matches the form layout rather than map iteration.
	known := []string{
		"room", "building", "nonbuilding",
		"small", "medium", "large",
		"classroom", "lab", "lecture_hall", "study_room", "office",
	}
	var out []string
	seen := map[string]bool{}
	for _, key := range known {
		if boxes[key] {
			out = append(out, key)
			seen[key] = true
		}
	}
	// Anything outside the known set still serializes, sorted for
	// determinism.
	var extra []string
	for key, on := range boxes {
		if on && !seen[key] {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		out = append(out, extra...)
	}
	return out
}

func setPositive(params url.Values, key string, value int) {
	if value > 0 {
		params.Set(key, strconv.Itoa(value))
	}
}
