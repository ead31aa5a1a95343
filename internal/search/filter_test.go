package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSet_AddPreservesOrderAndUniqueness(t *testing.T) {
	var ts TagSet

	ts.Add("piano")
	ts.Add("drums")
	ts.Add("piano")
	ts.Add("")

	assert.Equal(t, []string{"piano", "drums"}, ts.Values())
	assert.Equal(t, 2, ts.Len())
	assert.True(t, ts.Contains("piano"))
	assert.False(t, ts.Contains("oud"))
}

func TestTagSet_RemoveKeepsRemainingOrder(t *testing.T) {
	var ts TagSet
	ts.Add("vocals")
	ts.Add("piano")
	ts.Add("drums")

	ts.Remove("piano")
	assert.Equal(t, []string{"vocals", "drums"}, ts.Values())

	// Removing something absent is a no-op
	ts.Remove("oud")
	assert.Equal(t, []string{"vocals", "drums"}, ts.Values())
}

func TestTagSet_ValuesReturnsCopy(t *testing.T) {
	var ts TagSet
	ts.Add("piano")

	vals := ts.Values()
	vals[0] = "mutated"

	assert.Equal(t, []string{"piano"}, ts.Values())
}

func TestParseRegion(t *testing.T) {
	assert.Equal(t, RegionNorth, ParseRegion("north"))
	assert.Equal(t, RegionCenter, ParseRegion("center"))
	assert.Equal(t, RegionSouth, ParseRegion("south"))
	assert.Equal(t, RegionNone, ParseRegion(""))
	assert.Equal(t, RegionNone, ParseRegion("atlantis"))
}

func TestFilterState_AddRemoveTag(t *testing.T) {
	state := &FilterState{}

	state.AddTag(FacetInstrument, "piano")
	state.AddTag(FacetInstrument, "piano")
	state.AddTag(FacetGenre, "jazz")
	state.AddTag(Facet("bogus"), "ignored")

	assert.Equal(t, []string{"piano"}, state.Instruments.Values())
	assert.Equal(t, []string{"jazz"}, state.Genres.Values())
	assert.Equal(t, 0, state.EventTypes.Len())

	state.RemoveTag(FacetGenre, "jazz")
	assert.Equal(t, 0, state.Genres.Len())
}

func TestFilterState_SetRegionLeavesLocationText(t *testing.T) {
	state := &FilterState{LocationText: "Haifa"}

	state.SetRegion(RegionSouth)

	assert.Equal(t, RegionSouth, state.Region)
	assert.Equal(t, "Haifa", state.LocationText)
}

func TestFilterState_ZeroValueMatchesEverything(t *testing.T) {
	state := &FilterState{}
	req := Compile(state)
	assert.Empty(t, req.Params)
}
