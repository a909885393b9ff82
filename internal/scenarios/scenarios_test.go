package scenarios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsRegisteredScenarios(t *testing.T) {
	all := All()
	assert.Len(t, all, 5)

	names := make(map[string]bool, len(all))
	for _, s := range all {
		names[s.Name] = true
	}
	assert.True(t, names["single-step"])
	assert.True(t, names["woodcutter"])
	assert.True(t, names["courier"])
	assert.True(t, names["market"])
	assert.True(t, names["bouquet-and-picnic"])
}

func TestFindUnknownScenario(t *testing.T) {
	_, ok := Find("does-not-exist")
	assert.False(t, ok)
}

func TestWoodcutterConstantPolicy(t *testing.T) {
	s, ok := Find("woodcutter")
	require.True(t, ok)

	results, err := s.Run("constant")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "HouseBuilt", results[0].Goal)
	assert.Equal(t, 11, results[0].Cost)
	assert.Equal(t, []string{"GoToAxe", "GrabAxe", "GoToTree", "ChopTree", "GoHome", "BuildHouse"}, results[0].Actions)
}

func TestCourierDynamicPrioritizesHunger(t *testing.T) {
	s, ok := Find("courier")
	require.True(t, ok)

	results, err := s.Run("dynamic")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Eaten", results[0].Goal)
}

func TestMarketPolicyDisagreement(t *testing.T) {
	s, ok := Find("market")
	require.True(t, ok)

	dynamic, err := s.Run("dynamic")
	require.NoError(t, err)
	require.Len(t, dynamic, 1)
	assert.Equal(t, "AppleSold", dynamic[0].Goal)

	profit, err := s.Run("profit")
	require.NoError(t, err)
	require.Len(t, profit, 1)
	assert.Equal(t, "BananaSold", profit[0].Goal)
}

func TestMarketAllPolicyReturnsBothGoals(t *testing.T) {
	s, ok := Find("market")
	require.True(t, ok)

	results, err := s.Run("all")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestUnknownPolicyErrors(t *testing.T) {
	s, ok := Find("woodcutter")
	require.True(t, ok)

	_, err := s.Run("bogus")
	assert.Error(t, err)
}

func TestSingleStepConstantPolicy(t *testing.T) {
	s, ok := Find("single-step")
	require.True(t, ok)

	results, err := s.Run("constant")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "IsCorrect", results[0].Goal)
	assert.Equal(t, 1, results[0].Cost)
	assert.Equal(t, []string{"MakeCorrect"}, results[0].Actions)
}

func TestBouquetAndPicnicDynamicPrefersEatingWhileHungry(t *testing.T) {
	s, ok := Find("bouquet-and-picnic")
	require.True(t, ok)

	results, err := s.Run("dynamic")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "EatenAtPicnic", results[0].Goal)
}

func TestWoodcutterSnapshotRoundTrips(t *testing.T) {
	s, ok := Find("woodcutter")
	require.True(t, ok)

	data, err := s.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, string(data), "state:")

	results, err := s.RunFromSnapshot(data, "constant")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "HouseBuilt", results[0].Goal)
	assert.Equal(t, 11, results[0].Cost)
}

func TestScenarioWithoutSnapshotSupportErrors(t *testing.T) {
	s, ok := Find("courier")
	require.True(t, ok)

	_, err := s.Snapshot()
	assert.Error(t, err)

	_, err = s.RunFromSnapshot([]byte("state: {}"), "constant")
	assert.Error(t, err)
}
