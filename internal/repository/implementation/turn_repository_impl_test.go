package implementation

import (
	"context"
	"path/filepath"
	"testing"

	"chat-relay-be/internal/entity"
	"chat-relay-be/internal/model"
	"chat-relay-be/internal/repository/contract"
	"chat-relay-be/internal/repository/specification"
	"chat-relay-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) contract.TurnRepository {
	t.Helper()

	db, err := database.NewSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Turn{}))

	return NewTurnRepository(db)
}

func TestTurnRepositoryCreateAssignsIdAndTimestamp(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &entity.Turn{UserId: "u1", Role: entity.TurnRoleUser, Content: "hi"}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.Turn{UserId: "u1", Role: entity.TurnRoleAssistant, Content: "hello"}
	require.NoError(t, repo.Create(ctx, second))

	assert.Greater(t, first.Id, int64(0))
	assert.Greater(t, second.Id, first.Id)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, second.CreatedAt.IsZero())
}

func TestTurnRepositoryFindAllFiltersAndOrders(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, content := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &entity.Turn{UserId: "u1", Role: entity.TurnRoleUser, Content: content}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Turn{UserId: "u2", Role: entity.TurnRoleUser, Content: "other"}))

	turns, err := repo.FindAll(ctx,
		specification.ByUserID{UserID: "u1"},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Limit{Limit: 2},
	)
	require.NoError(t, err)

	require.Len(t, turns, 2)
	assert.Equal(t, "c", turns[0].Content)
	assert.Equal(t, "b", turns[1].Content)
	for _, turn := range turns {
		assert.Equal(t, "u1", turn.UserId)
	}
}

func TestTurnRepositoryFindAllEmptyForUnknownUser(t *testing.T) {
	repo := newTestRepository(t)

	turns, err := repo.FindAll(context.Background(), specification.ByUserID{UserID: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestTurnRepositoryReadsAreIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, content := range []string{"one", "two"} {
		require.NoError(t, repo.Create(ctx, &entity.Turn{UserId: "u1", Role: entity.TurnRoleUser, Content: content}))
	}

	first, err := repo.FindAll(ctx, specification.ByUserID{UserID: "u1"}, specification.OrderBy{Field: "id", Desc: true})
	require.NoError(t, err)
	second, err := repo.FindAll(ctx, specification.ByUserID{UserID: "u1"}, specification.OrderBy{Field: "id", Desc: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTurnRepositoryCount(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Turn{UserId: "u1", Role: entity.TurnRoleUser, Content: "hi"}))
	require.NoError(t, repo.Create(ctx, &entity.Turn{UserId: "u2", Role: entity.TurnRoleUser, Content: "hi"}))

	count, err := repo.Count(ctx, specification.ByUserID{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
