package search

// Region narrows a search to one part of the country. RegionNone means the
// whole country.
type Region string

const (
	RegionNone   Region = ""
	RegionNorth  Region = "north"
	RegionCenter Region = "center"
	RegionSouth  Region = "south"
)

// ParseRegion normalizes a wire token into a Region. Anything unrecognized
// collapses to RegionNone rather than erroring.
func ParseRegion(s string) Region {
	switch Region(s) {
	case RegionNorth, RegionCenter, RegionSouth:
		return Region(s)
	default:
		return RegionNone
	}
}

// TagSet is an ordered set of facet values. Insertion order is preserved for
// display; uniqueness is enforced; order carries no search semantics.
type TagSet struct {
	values []string
}

// Add appends value unless it is empty or already present.
func (t *TagSet) Add(value string) {
	if value == "" || t.Contains(value) {
		return
	}
	t.values = append(t.values, value)
}

// Remove drops value if present, leaving the order of the rest unchanged.
func (t *TagSet) Remove(value string) {
	for i, v := range t.values {
		if v == value {
			t.values = append(t.values[:i], t.values[i+1:]...)
			return
		}
	}
}

func (t *TagSet) Contains(value string) bool {
	for _, v := range t.values {
		if v == value {
			return true
		}
	}
	return false
}

func (t *TagSet) Len() int {
	return len(t.values)
}

// Values returns a copy so callers cannot break set uniqueness.
func (t *TagSet) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}

// FilterState holds the in-progress search criteria. Zero value is a valid
// all-empty state that matches the full catalog.
type FilterState struct {
	Query        string
	Instruments  TagSet
	Genres       TagSet
	EventTypes   TagSet
	Region       Region
	LocationText string
}

func (f *FilterState) tagSet(facet Facet) *TagSet {
	switch facet {
	case FacetInstrument:
		return &f.Instruments
	case FacetGenre:
		return &f.Genres
	case FacetEvent:
		return &f.EventTypes
	default:
		return nil
	}
}

// AddTag adds value to the facet's tag set. No-op on empty value, duplicate
// value, or unknown facet.
func (f *FilterState) AddTag(facet Facet, value string) {
	if ts := f.tagSet(facet); ts != nil {
		ts.Add(value)
	}
}

// RemoveTag removes value from the facet's tag set. No-op when absent.
func (f *FilterState) RemoveTag(facet Facet, value string) {
	if ts := f.tagSet(facet); ts != nil {
		ts.Remove(value)
	}
}

// SetRegion replaces the region. It deliberately leaves LocationText alone;
// the compiler resolves the region-vs-location precedence.
func (f *FilterState) SetRegion(r Region) {
	f.Region = r
}
