package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "token").
		From("sessions").
		Where(squirrel.Eq{"id": "abc"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, token FROM sessions WHERE id = $1", query)
	assert.Equal(t, []interface{}{"abc"}, args)
}

func TestDelete_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Delete("sessions").
		Where(squirrel.Lt{"expires_at": 10}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE expires_at < $1", query)
	assert.Equal(t, []interface{}{10}, args)
}
