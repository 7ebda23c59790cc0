package order_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pisarev203/tg-shop/internal/order"
)

// Integration tests against a migrated database, see TEST_DATABASE_URL.
func setupRepo(t *testing.T) order.Repository {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err, "Failed to connect to test database")

	truncate := func() {
		_, err := pool.Exec(context.Background(), "TRUNCATE TABLE orders RESTART IDENTITY")
		require.NoError(t, err, "Failed to truncate orders")
	}
	truncate()

	t.Cleanup(func() {
		truncate()
		pool.Close()
	})

	return order.NewRepository(pool)
}

func TestRepository_Create(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	o := &order.Order{
		Customer:     "@someone",
		Metro:        "Arbatskaya",
		DeliveryTime: "19:00",
		Comment:      "ring twice",
		Items: []order.LineItem{
			{Name: "A", Price: 100, Qty: 2},
			{Name: "B", Price: 50, Qty: 1},
		},
		Total:  250,
		Status: order.StatusNew,
	}

	require.NoError(t, repo.Create(ctx, o))
	assert.NotZero(t, o.ID)
	assert.False(t, o.CreatedAt.IsZero(), "created_at must be server-assigned")

	saved, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.Customer, saved.Customer)
	assert.Equal(t, o.Items, saved.Items, "line items must round-trip through JSONB")
	assert.Equal(t, int64(250), saved.Total)
	assert.Equal(t, order.StatusNew, saved.Status)
}

func TestRepository_Create_IDsStrictlyIncrease(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 3; i++ {
		o := &order.Order{Status: order.StatusNew}
		require.NoError(t, repo.Create(ctx, o))
		assert.Greater(t, o.ID, lastID)
		lastID = o.ID
	}
}

func TestRepository_List(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &order.Order{Status: order.StatusNew}))
	}

	orders, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, orders, 3, "limit must cap the listing")
	assert.Greater(t, orders[0].ID, orders[1].ID, "most recent orders come first")
	assert.Greater(t, orders[1].ID, orders[2].ID)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	o := &order.Order{Status: order.StatusNew}
	require.NoError(t, repo.Create(ctx, o))

	require.NoError(t, repo.UpdateStatus(ctx, o.ID, order.StatusProcessing))

	saved, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusProcessing, saved.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 9999, order.StatusDone), order.ErrOrderNotFound)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
