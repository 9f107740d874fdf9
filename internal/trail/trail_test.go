package trail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/trail-game/internal/models"
)

func testTrail(t *testing.T) *Trail {
	t.Helper()
	tr, err := New("test", []*models.Location{
		{Name: "Start", Category: models.Settlement},
		{Name: "Rock", Category: models.Landmark, Distance: 10},
		{Name: "Split", Category: models.ForkInRoad, Distance: 5, Choices: []*models.Location{
			{Name: "Left", Category: models.Landmark, Distance: 3},
			{Name: "Right", Category: models.RiverCrossing, Distance: 4, River: models.FloatAndFord},
		}},
		{Name: "End", Category: models.Landmark, Distance: 20},
	})
	require.NoError(t, err)
	return tr
}

func TestDefaultTrailLoads(t *testing.T) {
	tr, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "Independence", tr.Current().Name)
	assert.True(t, tr.Locations()[len(tr.Locations())-1].Last)
	assert.Greater(t, tr.Length(), 1000)
}

func TestParseRejectsRiverWithoutOption(t *testing.T) {
	_, err := Parse([]byte("name: bad\nlocations:\n  - name: A\n    category: river\n"))
	assert.Error(t, err)
}

func TestCheckArrival(t *testing.T) {
	tr := testTrail(t)

	assert.Nil(t, tr.CheckArrival(9))
	assert.Equal(t, 1, tr.DistanceToNext(9))

	loc := tr.CheckArrival(10)
	require.NotNil(t, loc)
	assert.Equal(t, "Rock", loc.Name)
	assert.Equal(t, models.Arrived, loc.Status)
	assert.Equal(t, models.Departed, tr.Locations()[0].Status)
	assert.Equal(t, 5, tr.DistanceToNext(10))
}

func TestChooseFork(t *testing.T) {
	tr := testTrail(t)
	require.NotNil(t, tr.CheckArrival(10))
	require.NotNil(t, tr.CheckArrival(15))

	branch, err := tr.ChooseFork(1)
	require.NoError(t, err)
	assert.Equal(t, "Right", branch.Name)
	assert.Equal(t, "Right", tr.Next().Name)
	assert.Equal(t, 4, tr.DistanceToNext(15))

	_, err = tr.ChooseFork(0)
	assert.Error(t, err)
}

func TestEndOfTrail(t *testing.T) {
	tr := testTrail(t)
	for _, d := range []int{10, 15, 35} {
		require.NotNil(t, tr.CheckArrival(d))
	}
	assert.True(t, tr.Current().Last)
	assert.Nil(t, tr.Next())
	assert.Nil(t, tr.CheckArrival(1000))
}
