package jsonfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeNil(t *testing.T) {
	assert.Nil(t, Encode(nil))
}

func TestEncodeNilSlice(t *testing.T) {
	var s []string
	assert.Nil(t, Encode(s))
}

func TestEncodeStringPassthrough(t *testing.T) {
	got := Encode(`["es","en"]`)
	assert.NotNil(t, got)
	assert.Equal(t, `["es","en"]`, *got)
}

func TestEncodeList(t *testing.T) {
	got := Encode([]string{"Go", "SQL"})
	assert.NotNil(t, got)
	assert.JSONEq(t, `["Go","SQL"]`, *got)
}

func TestRoundTrip(t *testing.T) {
	original := []string{"es", "en", "qu"}
	stored := Encode(original)

	decoded := List[string](stored)
	assert.Equal(t, original, decoded)
}

func TestRoundTripObject(t *testing.T) {
	original := map[string]interface{}{"bonus": "yes", "vacancies": "3"}
	stored := Encode(original)

	decoded := Object(stored)
	assert.Equal(t, original, decoded)
}

func TestListAbsent(t *testing.T) {
	assert.Equal(t, []string{}, List[string](nil))

	empty := ""
	assert.Equal(t, []string{}, List[string](&empty))
}

func TestListMalformed(t *testing.T) {
	bad := "not json"
	assert.Nil(t, List[string](&bad))
}

func TestObjectAbsent(t *testing.T) {
	assert.Equal(t, map[string]interface{}{}, Object(nil))
}

func TestObjectMalformed(t *testing.T) {
	bad := "{broken"
	assert.Nil(t, Object(&bad))
}

func TestDecodeMalformedLeavesDestination(t *testing.T) {
	bad := "{{{"
	dst := []string{"untouched"}
	ok := Decode(&bad, &dst)

	assert.False(t, ok)
	assert.Equal(t, []string{"untouched"}, dst)
}
