package domain_test

import (
	"encoding/json"
	"testing"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/jsonfield"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewUnmarshalStringRating(t *testing.T) {
	var r domain.Review
	require.NoError(t, json.Unmarshal([]byte(`{"author":"Juan","comment":"Bien","rating":"5","date":"2026-01-10T12:00:00Z"}`), &r))
	assert.Equal(t, "5", r.Rating)
	assert.Equal(t, "Juan", r.Author)
}

func TestReviewUnmarshalNumericRating(t *testing.T) {
	var r domain.Review
	require.NoError(t, json.Unmarshal([]byte(`{"author":"Ana","comment":"Excelente","rating":4,"date":"2026-01-10T12:00:00Z"}`), &r))
	assert.Equal(t, "4", r.Rating)
}

// A numeric entry mixed into a stored list must not collapse the whole
// history to nil when the column is decoded.
func TestReviewListToleratesMixedRatingForms(t *testing.T) {
	stored := `[{"author":"Juan","comment":"Bien","rating":"5","date":"2026-01-10T12:00:00Z"},` +
		`{"author":"Ana","comment":"Normal","rating":3.5,"date":"2026-01-11T09:30:00Z"}]`

	reviews := jsonfield.List[domain.Review](&stored)
	require.Len(t, reviews, 2)
	assert.Equal(t, "5", reviews[0].Rating)
	assert.Equal(t, "3.5", reviews[1].Rating)
}
