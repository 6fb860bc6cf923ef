package subscription

import (
	"context"
	"testing"

	"foodgram/domain"
	"foodgram/internal/utils/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubscriptions_OrdersAuthorsByUsername(t *testing.T) {
	db, rec := dbtest.DryRun(t)
	repo := NewSubscriptionRepository(db)

	_, _, err := repo.GetSubscriptions(context.Background(), uuid.NewString(), domain.Pagination{Page: 1, Limit: 6})
	require.NoError(t, err)

	last := rec.Last().SQL
	assert.Contains(t, last, "JOIN subscriptions ON subscriptions.author_id = users.id")
	assert.Contains(t, last, "ORDER BY users.username asc")
}
