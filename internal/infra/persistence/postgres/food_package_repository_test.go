package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func newScopeDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db, Clauses: map[string]clause.Clause{}}

	return db
}

func limitClause(t *testing.T, db *gorm.DB) clause.Limit {
	t.Helper()

	c, ok := db.Statement.Clauses["LIMIT"]
	require.True(t, ok, "expected a LIMIT clause")
	limit, ok := c.Expression.(clause.Limit)
	require.True(t, ok)

	return limit
}

func TestPaginate_AppliesOffsetAndLimit(t *testing.T) {
	db := paginate(3, 20)(newScopeDB())

	limit := limitClause(t, db)
	require.NotNil(t, limit.Limit)
	assert.Equal(t, 20, *limit.Limit)
	assert.Equal(t, 40, limit.Offset)
}

func TestPaginate_ZeroValuesUseDefaults(t *testing.T) {
	db := paginate(0, 0)(newScopeDB())

	limit := limitClause(t, db)
	require.NotNil(t, limit.Limit)
	assert.Equal(t, defaultPageSize, *limit.Limit)
	assert.Equal(t, 0, limit.Offset)
}

func TestPaginate_NegativePageSizeFetchesEverything(t *testing.T) {
	// Callers listing a merchant's full package set pass -1; emitting the
	// default LIMIT here would silently truncate the result.
	db := paginate(1, -1)(newScopeDB())

	_, ok := db.Statement.Clauses["LIMIT"]
	assert.False(t, ok, "negative page size must not add a LIMIT clause")
}
