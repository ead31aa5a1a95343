package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_ScanQuotedElements(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan(`{"acoustic guitar",dj}`))
	assert.Equal(t, StringArray{"acoustic guitar", "dj"}, s)
}

func TestStringArray_ScanMultiWordVocabulary(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan(`{"bar mitzvah",wedding,"corporate event","shabbat chatan"}`))
	assert.Equal(t, StringArray{"bar mitzvah", "wedding", "corporate event", "shabbat chatan"}, s)
}

func TestStringArray_ScanEscapes(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan(`{"say \"hi\"","back\\slash"}`))
	assert.Equal(t, StringArray{`say "hi"`, `back\slash`}, s)
}

func TestStringArray_ScanQuotedComma(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan(`{"pop, rock",jazz}`))
	assert.Equal(t, StringArray{"pop, rock", "jazz"}, s)
}

func TestStringArray_ScanEmptyAndNil(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan("{}"))
	assert.Equal(t, StringArray{}, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, StringArray{}, s)
}

func TestStringArray_ScanBytes(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan([]byte(`{"acoustic guitar",piano}`)))
	assert.Equal(t, StringArray{"acoustic guitar", "piano"}, s)
}

func TestStringArray_ScanRejectsUnknownType(t *testing.T) {
	var s StringArray
	assert.Error(t, s.Scan(42))
}

func TestStringArray_ValueQuotesSpecialElements(t *testing.T) {
	v, err := StringArray{"acoustic guitar", "dj"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"acoustic guitar",dj}`, v)

	v, err = StringArray{`say "hi"`}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"say \"hi\""}`, v)

	v, err = StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestStringArray_RoundTrip(t *testing.T) {
	original := StringArray{"acoustic guitar", "dj", "bar mitzvah", `odd "name"`, `back\slash`}

	v, err := original.Value()
	require.NoError(t, err)

	var decoded StringArray
	require.NoError(t, decoded.Scan(v.(string)))
	assert.Equal(t, original, decoded)
}
