package ratingrepo_test

import (
	"context"
	"testing"

	"baleconnect/internal/adapters/out/pebblestore"
	"baleconnect/internal/adapters/out/pebblestore/ratingrepo"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *ratingrepo.StoreRatingRepository {
	t.Helper()
	store, err := pebblestore.NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return ratingrepo.NewStoreRatingRepository(store)
}

func newTestRating(t *testing.T, orderID, raterID, rateeID kernel.ID, score int, comment string) *rating.Rating {
	t.Helper()
	aggregate, err := rating.NewRating(kernel.NewID(), orderID, raterID, rateeID, score, comment)
	require.NoError(t, err)
	return aggregate
}

func TestStoreRatingRepository_UpsertAndGetByOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	orderID := kernel.NewID()
	raterID := kernel.NewID()
	rateeID := kernel.NewID()

	require.NoError(t, repo.Upsert(ctx, newTestRating(t, orderID, raterID, rateeID, 4, "good work")))

	ratings, err := repo.GetByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Score())
	assert.Equal(t, "good work", ratings[0].Comment())
}

func TestStoreRatingRepository_UpsertReplacesSameOrderAndRater(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	orderID := kernel.NewID()
	raterID := kernel.NewID()
	rateeID := kernel.NewID()

	require.NoError(t, repo.Upsert(ctx, newTestRating(t, orderID, raterID, rateeID, 2, "late")))
	require.NoError(t, repo.Upsert(ctx, newTestRating(t, orderID, raterID, rateeID, 5, "resolved")))

	ratings, err := repo.GetByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, 5, ratings[0].Score())
	assert.Equal(t, "resolved", ratings[0].Comment())
}

func TestStoreRatingRepository_DifferentRatersOnSameOrderCoexist(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	orderID := kernel.NewID()
	rateeID := kernel.NewID()

	require.NoError(t, repo.Upsert(ctx, newTestRating(t, orderID, kernel.NewID(), rateeID, 3, "")))
	require.NoError(t, repo.Upsert(ctx, newTestRating(t, orderID, kernel.NewID(), rateeID, 5, "")))

	ratings, err := repo.GetByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

func TestStoreRatingRepository_GetByRatee(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	rateeID := kernel.NewID()

	require.NoError(t, repo.Upsert(ctx, newTestRating(t, kernel.NewID(), kernel.NewID(), rateeID, 4, "")))
	require.NoError(t, repo.Upsert(ctx, newTestRating(t, kernel.NewID(), kernel.NewID(), rateeID, 5, "")))
	require.NoError(t, repo.Upsert(ctx, newTestRating(t, kernel.NewID(), kernel.NewID(), kernel.NewID(), 1, "")))

	ratings, err := repo.GetByRatee(ctx, rateeID)
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

func TestStoreRatingRepository_EmptyResults(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	byOrder, err := repo.GetByOrder(ctx, kernel.NewID())
	require.NoError(t, err)
	assert.Empty(t, byOrder)

	byRatee, err := repo.GetByRatee(ctx, kernel.NewID())
	require.NoError(t, err)
	assert.Empty(t, byRatee)
}
