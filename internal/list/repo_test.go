package list

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmfuentes/smartcart-backend/pkg/db"
	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
	"github.com/dmfuentes/smartcart-backend/pkg/enums"
)

func setupListTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	lists := `
CREATE TABLE IF NOT EXISTS shopping_lists (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  owner TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`
	items := `
CREATE TABLE IF NOT EXISTS shopping_list_items (
  id TEXT PRIMARY KEY,
  list_id TEXT NOT NULL,
  canonical_name TEXT NOT NULL,
  raw_name TEXT NOT NULL,
  quantity NUMERIC NOT NULL,
  unit TEXT NOT NULL,
  category TEXT NOT NULL,
  is_completed INTEGER NOT NULL DEFAULT 0,
  suggested_retailer_id TEXT,
  suggested_price_cents INTEGER,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (list_id, canonical_name)
);`

	require.NoError(t, conn.Exec(lists).Error)
	require.NoError(t, conn.Exec(items).Error)
	return conn
}

func newTestItem(listID uuid.UUID, canonical string, createdAt time.Time) models.ShoppingListItem {
	return models.ShoppingListItem{
		ID:            uuid.New(),
		ListID:        listID,
		CanonicalName: canonical,
		RawName:       canonical,
		Quantity:      1,
		Unit:          enums.UnitCount,
		Category:      enums.CategoryPantryCanned,
		CreatedAt:     createdAt,
	}
}

func TestRepositoryListRoundTrip(t *testing.T) {
	repo := NewRepository(setupListTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateList(ctx, models.ShoppingList{ID: uuid.New(), Name: "Weekly"})
	require.NoError(t, err)

	base := time.Now().UTC().Truncate(time.Second)
	_, err = repo.CreateItem(ctx, newTestItem(created.ID, "Rice", base))
	require.NoError(t, err)
	_, err = repo.CreateItem(ctx, newTestItem(created.ID, "Banana", base.Add(time.Second)))
	require.NoError(t, err)

	found, err := repo.FindList(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "Rice", found.Items[0].CanonicalName)
	assert.Equal(t, "Banana", found.Items[1].CanonicalName)
}

func TestRepositoryDuplicateCanonicalName(t *testing.T) {
	repo := NewRepository(setupListTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateList(ctx, models.ShoppingList{ID: uuid.New(), Name: "Dupes"})
	require.NoError(t, err)

	now := time.Now().UTC()
	_, err = repo.CreateItem(ctx, newTestItem(created.ID, "Milk", now))
	require.NoError(t, err)

	_, err = repo.CreateItem(ctx, newTestItem(created.ID, "Milk", now))
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""))
}

func TestRepositoryDeleteListMissing(t *testing.T) {
	repo := NewRepository(setupListTestDB(t))

	err := repo.DeleteList(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDeleteItemScopedToList(t *testing.T) {
	repo := NewRepository(setupListTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateList(ctx, models.ShoppingList{ID: uuid.New(), Name: "Scoped"})
	require.NoError(t, err)
	item, err := repo.CreateItem(ctx, newTestItem(created.ID, "Bread", time.Now().UTC()))
	require.NoError(t, err)

	err = repo.DeleteItem(ctx, uuid.New(), item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteItem(ctx, created.ID, item.ID))
}
