package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FormationImporter/internal/domain"
)

func TestPostgresStoreFindEntity(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectQuery(`SELECT id, attrs FROM import_entities WHERE kind = \$1 AND natural_key = \$2`).
		WithArgs("company", "ACME").
		WillReturnRows(sqlmock.NewRows([]string{"id", "attrs"}).
			AddRow("abc-123", []byte(`{"name":"ACME","city":"Paris"}`)))

	entity, err := store.FindEntity(context.Background(), domain.KindCompany, "ACME")
	require.NoError(t, err)
	require.NotNil(t, entity)
	assert.Equal(t, "abc-123", entity.ID)
	assert.Equal(t, "Paris", entity.Fields["city"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreFindEntityMissing(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectQuery(`SELECT id, attrs FROM import_entities`).
		WithArgs("trainer", "x@y.fr").
		WillReturnRows(sqlmock.NewRows([]string{"id", "attrs"}))

	entity, err := store.FindEntity(context.Background(), domain.KindTrainer, "x@y.fr")
	require.NoError(t, err)
	assert.Nil(t, entity)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreCreateOrUpdatePrimary(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectQuery(`INSERT INTO import_entities .+ ON CONFLICT \(kind, natural_key\) DO UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "?column?"}).AddRow("new-id", true))

	entity, created, err := store.CreateOrUpdatePrimary(context.Background(), domain.KindProject, "PRJ-100",
		map[string]string{"company": "ACME"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new-id", entity.ID)
	assert.Equal(t, "PRJ-100", entity.Key)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryStoreUpsert(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_, created, err := store.CreateOrUpdatePrimary(ctx, domain.KindProject, "PRJ-1", map[string]string{"v": "1"})
	require.NoError(t, err)
	assert.True(t, created)

	entity, created, err := store.CreateOrUpdatePrimary(ctx, domain.KindProject, "PRJ-1", map[string]string{"v": "2"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "2", entity.Fields["v"])

	assert.Equal(t, 1, store.Count(domain.KindProject))
}
