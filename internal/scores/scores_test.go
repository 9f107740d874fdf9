package scores

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/engine"
	"github.com/tatianab/trail-game/internal/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	s.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	return s
}

func TestTopOrdersByPoints(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	_, err := s.Record(ctx, "a", engine.Result{Win: true, Points: 900, Leader: "Ann", Profession: models.Farmer, Days: 150, Survivors: 2, Location: "Oregon City"})
	require.NoError(t, err)
	_, err = s.Record(ctx, "b", engine.Result{Reason: "the party leader has died", Leader: "Bo", Profession: models.Banker, Days: 20, Location: "Fort Kearney"})
	require.NoError(t, err)
	_, err = s.Record(ctx, "c", engine.Result{Win: true, Points: 2400, Leader: "Cy", Profession: models.Carpenter, Days: 170, Survivors: 4, Location: "Oregon City"})
	require.NoError(t, err)

	top, err := s.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].ID)
	assert.Equal(t, 2400, top[0].Points)
	assert.True(t, top[0].Win)
	assert.Equal(t, models.Carpenter, top[0].Profession)
	assert.Equal(t, "a", top[1].ID)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 1, 0, 0, time.UTC), top[1].RecordedAt)

	all, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.False(t, all[2].Win)
	assert.Equal(t, "the party leader has died", all[2].Reason)
}

func TestRecordReplacesSameGame(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	_, err := s.Record(ctx, "a", engine.Result{Points: 10})
	require.NoError(t, err)
	_, err = s.Record(ctx, "a", engine.Result{Points: 20})
	require.NoError(t, err)

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 20, top[0].Points)
}

func TestRecordAssignsID(t *testing.T) {
	s := openStore(t)

	id, err := s.Record(context.Background(), "", engine.Result{})
	require.NoError(t, err)
	assert.Len(t, id, 36)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
