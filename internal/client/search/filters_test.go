package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters_ValuesIncludesOnlyAffirmativeDimensions(t *testing.T) {
	f := Filters{
		Types:     map[string]bool{"room": true},
		RoomSizes: map[string]bool{"small": true},
	}

	params := f.Values("Test U", "")
	encoded := params.Encode()

	assert.Equal(t, "room", params.Get("types"))
	assert.Equal(t, "small", params.Get("roomSizes"))
	assert.Equal(t, "Test U", params.Get("university"))
	assert.Contains(t, encoded, "university=Test+U")

	// Unset dimensions must not appear at all.
	assert.NotContains(t, encoded, "roomTypes")
	assert.NotContains(t, encoded, "roomNumber")
	assert.NotContains(t, encoded, "minScore")
	assert.NotContains(t, encoded, "state")
}

func TestFilters_RoomFacetsRequireRoomType(t *testing.T) {
	f := Filters{
		Types:      map[string]bool{"building": true},
		RoomSizes:  map[string]bool{"large": true},
		RoomTypes:  map[string]bool{"lab": true},
		RoomNumber: "101",
	}

	params := f.Values("Test U", "")

	assert.Equal(t, "building", params.Get("types"))
	assert.Empty(t, params.Get("roomSizes"))
	assert.Empty(t, params.Get("roomTypes"))
	assert.Empty(t, params.Get("roomNumber"))
}

func TestFilters_RatingThresholdsGatedOnToggle(t *testing.T) {
	f := Filters{
		MinScore: 7,
		MaxNoise: 2,
	}

	assert.Empty(t, f.Values("Test U", "").Get("minScore"), "toggle off omits thresholds")

	f.FilterByRating = true
	params := f.Values("Test U", "")
	assert.Equal(t, "7", params.Get("minScore"))
	assert.Equal(t, "2", params.Get("maxNoise"))
}

func TestFilters_MultipleCheckboxesJoinWithCommas(t *testing.T) {
	f := Filters{
		Types:     map[string]bool{"room": true, "building": true},
		RoomSizes: map[string]bool{"small": true, "medium": true},
	}

	params := f.Values("Test U", "CA")

	assert.Equal(t, "room,building", params.Get("types"))
	assert.Equal(t, "small,medium", params.Get("roomSizes"))
	assert.Equal(t, "CA", params.Get("state"))
}

func TestFilters_TagSetsSerialize(t *testing.T) {
	f := Filters{
		Equipment:     []string{"projector", "whiteboard"},
		Accessibility: []string{"ramp"},
	}

	params := f.Values("Test U", "")

	assert.Equal(t, "projector,whiteboard", params.Get("equipment"))
	assert.Equal(t, "ramp", params.Get("accessibility"))
}

func TestFilters_TextFieldsAreTrimmed(t *testing.T) {
	f := Filters{
		Query:        "  quiet  ",
		BuildingName: "   ",
	}

	params := f.Values("Test U", "")

	assert.Equal(t, "quiet", params.Get("q"))
	assert.Empty(t, params.Get("building"))
}
