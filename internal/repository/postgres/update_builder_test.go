package postgres

import (
	"encoding/json"
	"testing"

	"go-jobmarket-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilderSingleField(t *testing.T) {
	var b updateBuilder
	b.Set("name", "Ana")

	query, args := b.Build("users", []string{"id"}, "u-1")

	assert.Equal(t, "UPDATE users SET name = $1, updated_at = now() WHERE id = $2", query)
	assert.Equal(t, []interface{}{"Ana", "u-1"}, args)
}

func TestUpdateBuilderPreservesSetOrder(t *testing.T) {
	var b updateBuilder
	b.Set("title", "Plomero")
	b.Set("city", "La Paz")
	b.Set("modality", "onsite")

	query, args := b.Build("job_posts", []string{"id"}, "p-1")

	assert.Equal(t,
		"UPDATE job_posts SET title = $1, city = $2, modality = $3, updated_at = now() WHERE id = $4",
		query)
	assert.Equal(t, []interface{}{"Plomero", "La Paz", "onsite", "p-1"}, args)
}

func TestUpdateBuilderOwnerCondition(t *testing.T) {
	var b updateBuilder
	b.Set("description", "nueva")

	query, args := b.Build("job_posts", []string{"id", "employer_id"}, "p-1", "u-9")

	assert.Equal(t,
		"UPDATE job_posts SET description = $1, updated_at = now() WHERE id = $2 AND employer_id = $3",
		query)
	assert.Equal(t, []interface{}{"nueva", "p-1", "u-9"}, args)
}

func TestUpdateBuilderEmpty(t *testing.T) {
	var b updateBuilder
	assert.True(t, b.Empty())
	b.Set("name", "x")
	assert.False(t, b.Empty())
}

func TestOptionalTriState(t *testing.T) {
	var upd domain.UserUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","city":null}`), &upd))

	assert.True(t, upd.Name.Set)
	assert.False(t, upd.Name.Null)
	assert.Equal(t, "Ana", upd.Name.Value)

	assert.True(t, upd.City.Set)
	assert.True(t, upd.City.Null)

	assert.False(t, upd.Summary.Set)
}

func TestOptValueNullClearsColumn(t *testing.T) {
	var upd domain.UserUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"city":null,"name":"Ana"}`), &upd))

	assert.Nil(t, optValue(upd.City))
	assert.Equal(t, "Ana", optValue(upd.Name))
}

func TestOptEncodedList(t *testing.T) {
	var upd domain.UserUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"skills":["go","sql"],"languages":null}`), &upd))

	encoded := optEncoded(upd.Skills)
	require.NotNil(t, encoded)
	assert.Equal(t, `["go","sql"]`, *encoded.(*string))

	assert.Nil(t, optEncoded(upd.Languages))
}
