package search

import "net/url"

// Wire parameter names, fixed by the public search API.
const (
	ParamInstrument = "instrument"
	ParamGenre      = "musictype"
	ParamEventType  = "eventTypes"
	ParamRegion     = "region"
	ParamLocation   = "location"
	ParamQuery      = "q"
)

// Request is a compiled, immutable snapshot of a FilterState. Build one with
// Compile; never mutate Params after that.
type Request struct {
	Params url.Values
}

// Compile turns the filter state into a canonical request. Each non-empty tag
// set becomes a repeated parameter; region wins over location text when both
// are set; free text is emitted last. An all-empty state compiles to an empty
// parameter set, which the store answers with the full catalog.
func Compile(state *FilterState) Request {
	params := url.Values{}

	for _, v := range state.Instruments.Values() {
		params.Add(ParamInstrument, v)
	}
	for _, v := range state.Genres.Values() {
		params.Add(ParamGenre, v)
	}
	for _, v := range state.EventTypes.Values() {
		params.Add(ParamEventType, v)
	}

	if state.Region != RegionNone {
		params.Set(ParamRegion, string(state.Region))
	} else if state.LocationText != "" {
		params.Set(ParamLocation, state.LocationText)
	}

	if state.Query != "" {
		params.Set(ParamQuery, state.Query)
	}

	return Request{Params: params}
}

// FromValues normalizes raw query parameters into a Request. The boundary is
// the only place where single-or-repeated shapes are tolerated; past here
// every facet is a canonical repeated key.
func FromValues(raw url.Values) Request {
	state := &FilterState{}
	for _, v := range raw[ParamInstrument] {
		state.AddTag(FacetInstrument, v)
	}
	for _, v := range raw[ParamGenre] {
		state.AddTag(FacetGenre, v)
	}
	for _, v := range raw[ParamEventType] {
		state.AddTag(FacetEvent, v)
	}
	state.Region = ParseRegion(raw.Get(ParamRegion))
	state.LocationText = raw.Get(ParamLocation)
	state.Query = raw.Get(ParamQuery)
	return Compile(state)
}
