package search

// Fixed facet vocabularies for the discovery filters. The lists mirror the
// catalog the product ships with; they are not user-extensible.

// Facet is one independent filter dimension.
type Facet string

const (
	FacetInstrument Facet = "instrument"
	FacetGenre      Facet = "genre"
	FacetEvent      Facet = "event"
)

var instruments = []string{
	"vocals",
	"acoustic guitar",
	"electric guitar",
	"bass guitar",
	"piano",
	"keyboards",
	"violin",
	"drums",
	"darbuka",
	"cajon",
	"tambourine",
	"bongos",
	"congas",
	"frame drums",
	"saxophone",
	"clarinet",
	"trumpet",
	"trombone",
	"flute",
	"ney",
	"oud",
	"bouzouki",
	"qanun",
	"dj",
}

// Ordered by popularity so the UI shows common genres first.
var genres = []string{
	"pop",
	"rock",
	"israeli",
	"mediterranean",
	"electronic",
	"indie",
	"jazz",
	"folk",
	"mizrahi",
	"piyut",
	"hasidic",
	"religious",
}

var eventTypes = []string{
	"wedding",
	"bar mitzvah",
	"shabbat chatan",
	"brit",
	"engagement party",
	"birthday",
	"henna",
	"family event",
	"corporate event",
	"ceremony",
	"community show",
	"reception",
	"hafla",
	"singalong",
	"live show",
}

// Vocabulary returns the fixed candidate list for a facet. Unknown facets get
// an empty list; callers never mutate the returned slice.
func Vocabulary(facet Facet) []string {
	switch facet {
	case FacetInstrument:
		return instruments
	case FacetGenre:
		return genres
	case FacetEvent:
		return eventTypes
	default:
		return nil
	}
}
