package tags

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeVocabulary struct {
	tags []string
	err  error
}

func (f *fakeVocabulary) FetchTags(_ context.Context, _ string) ([]string, error) {
	return f.tags, f.err
}

func TestSelector_SuggestionsFilterPrefixAndSelected(t *testing.T) {
	source := &fakeVocabulary{tags: []string{"study_room", "science_lab"}}
	s := NewSelector(context.Background(), source, "/api/equipmentTags")

	s.Choose("study_room")
	s.SetInput("s")

	assert.Equal(t, []string{"science_lab"}, s.Suggestions())
}

func TestSelector_SuggestionsAreCaseInsensitive(t *testing.T) {
	source := &fakeVocabulary{tags: []string{"Whiteboard", "wifi_6"}}
	s := NewSelector(context.Background(), source, "/api/equipmentTags")

	s.SetInput("WH")
	assert.Equal(t, []string{"Whiteboard"}, s.Suggestions())
}

func TestSelector_EmptyInputYieldsNoSuggestions(t *testing.T) {
	source := &fakeVocabulary{tags: []string{"projector"}}
	s := NewSelector(context.Background(), source, "/api/equipmentTags")

	assert.Empty(t, s.Suggestions())
}

func TestSelector_ChooseClearsInput(t *testing.T) {
	source := &fakeVocabulary{tags: []string{"projector", "podium"}}
	s := NewSelector(context.Background(), source, "/api/equipmentTags")

	s.SetInput("p")
	s.Choose("projector")

	assert.Equal(t, []string{"projector"}, s.Selected())
	assert.Empty(t, s.Suggestions())
}

func TestSelector_RemoveFiltersByExactMatch(t *testing.T) {
	source := &fakeVocabulary{tags: []string{"ramp", "ramp_access"}}
	s := NewSelector(context.Background(), source, "/api/accessibilityTags")

	s.Choose("ramp")
	s.Choose("ramp_access")
	s.Remove("ramp")

	assert.Equal(t, []string{"ramp_access"}, s.Selected())
}

func TestSelector_FetchFailureLeavesEmptyVocabulary(t *testing.T) {
	source := &fakeVocabulary{err: errors.New("boom")}
	s := NewSelector(context.Background(), source, "/api/equipmentTags")

	s.SetInput("a")
	assert.Empty(t, s.Suggestions())

	// Still usable for manual selection bookkeeping.
	s.Choose("custom_tag")
	assert.Equal(t, []string{"custom_tag"}, s.Selected())
}

func TestDisplayName_ReplacesUnderscores(t *testing.T) {
	assert.Equal(t, "study room", DisplayName("study_room"))
	assert.Equal(t, "wifi", DisplayName("wifi"))
}
