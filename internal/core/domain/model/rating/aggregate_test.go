package rating_test

import (
	"testing"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRating(t *testing.T, score int) *rating.Rating {
	t.Helper()
	r, err := rating.NewRating(kernel.NewID(), kernel.NewID(), kernel.NewID(), kernel.NewID(), score, "")
	require.NoError(t, err)
	return r
}

func TestAggregate(t *testing.T) {
	t.Run("empty set yields zero values", func(t *testing.T) {
		average, count := rating.Aggregate(nil)
		assert.Zero(t, average)
		assert.Zero(t, count)
	})

	t.Run("single rating", func(t *testing.T) {
		average, count := rating.Aggregate([]*rating.Rating{mustRating(t, 4)})
		assert.Equal(t, 4.0, average)
		assert.Equal(t, 1, count)
	})

	t.Run("average is rounded to two decimals", func(t *testing.T) {
		ratings := []*rating.Rating{mustRating(t, 5), mustRating(t, 4), mustRating(t, 4)}
		average, count := rating.Aggregate(ratings)
		assert.Equal(t, 4.33, average)
		assert.Equal(t, 3, count)
	})
}
