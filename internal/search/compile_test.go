package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile_RepeatedFacetParams(t *testing.T) {
	state := &FilterState{}
	state.AddTag(FacetInstrument, "piano")
	state.AddTag(FacetInstrument, "drums")
	state.AddTag(FacetGenre, "jazz")
	state.AddTag(FacetEvent, "wedding")

	req := Compile(state)

	assert.Equal(t, []string{"piano", "drums"}, req.Params[ParamInstrument])
	assert.Equal(t, []string{"jazz"}, req.Params[ParamGenre])
	assert.Equal(t, []string{"wedding"}, req.Params[ParamEventType])
}

func TestCompile_RegionWinsOverLocation(t *testing.T) {
	state := &FilterState{Region: RegionNorth, LocationText: "Haifa"}

	req := Compile(state)

	assert.Equal(t, "north", req.Params.Get(ParamRegion))
	assert.Empty(t, req.Params.Get(ParamLocation))
}

func TestCompile_LocationWhenNoRegion(t *testing.T) {
	state := &FilterState{LocationText: "Haifa"}

	req := Compile(state)

	assert.Equal(t, "Haifa", req.Params.Get(ParamLocation))
	assert.Empty(t, req.Params.Get(ParamRegion))
}

func TestCompile_FreeTextQuery(t *testing.T) {
	state := &FilterState{Query: "saxophone trio"}

	req := Compile(state)

	assert.Equal(t, "saxophone trio", req.Params.Get(ParamQuery))
}

func TestCompile_EmptyStateIsEmptyRequest(t *testing.T) {
	req := Compile(&FilterState{})
	assert.Empty(t, req.Params.Encode())
}

func TestFromValues_NormalizesRawInput(t *testing.T) {
	raw := url.Values{}
	raw.Add(ParamInstrument, "piano")
	raw.Add(ParamInstrument, "piano")
	raw.Add(ParamGenre, "jazz")
	raw.Set(ParamRegion, "nowhere")
	raw.Set(ParamLocation, "Haifa")
	raw.Set(ParamQuery, "trio")

	req := FromValues(raw)

	assert.Equal(t, []string{"piano"}, req.Params[ParamInstrument])
	assert.Equal(t, []string{"jazz"}, req.Params[ParamGenre])
	// Unknown region collapses, so location text survives
	assert.Empty(t, req.Params.Get(ParamRegion))
	assert.Equal(t, "Haifa", req.Params.Get(ParamLocation))
	assert.Equal(t, "trio", req.Params.Get(ParamQuery))
}

func TestFromValues_ValidRegionSuppressesLocation(t *testing.T) {
	raw := url.Values{}
	raw.Set(ParamRegion, "south")
	raw.Set(ParamLocation, "Eilat")

	req := FromValues(raw)

	assert.Equal(t, "south", req.Params.Get(ParamRegion))
	assert.Empty(t, req.Params.Get(ParamLocation))
}
