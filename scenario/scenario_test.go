package scenario_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcore/config"
	"github.com/katalvlaran/mcore/logging"
	"github.com/katalvlaran/mcore/scenario"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Hash.BigSize = 1000
	cfg.Stack.BigSize = 1000

	return cfg
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"hash", "stack", "trie", "guid"}, scenario.Names())
}

func TestLookup(t *testing.T) {
	s, err := scenario.Lookup("trie")
	require.NoError(t, err)
	assert.Equal(t, "trie", s.Name)
	assert.NotEmpty(t, s.Cases)

	_, err = scenario.Lookup("queue")
	assert.ErrorIs(t, err, scenario.ErrUnknownSuite)
}

func TestRunAllSuitesPass(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf)

	res, err := scenario.Run(context.Background(), nil, smallConfig(), log)
	require.NoError(t, err)
	require.Len(t, res.Suites, 4)
	for _, s := range res.Suites {
		assert.Zero(t, s.Failed, s.String())
		assert.Positive(t, s.Passed, s.Suite)
	}
	assert.True(t, res.Total.OK())
	assert.Equal(t, "total", res.Total.Suite)
	assert.NotContains(t, buf.String(), "[FAILED]")
	assert.Contains(t, buf.String(), "[PASSED] CatCar: 't' pruned, 'ca' kept")
}

func TestRunSelectedSuites(t *testing.T) {
	res, err := scenario.Run(context.Background(), []string{"guid", "stack"}, smallConfig(), nil)
	require.NoError(t, err)
	require.Len(t, res.Suites, 2)
	assert.Equal(t, "guid", res.Suites[0].Suite)
	assert.Equal(t, "stack", res.Suites[1].Suite)
	assert.Equal(t, res.Suites[0].Passed+res.Suites[1].Passed, res.Total.Passed)
}

func TestRunUnknownSuiteRunsNothing(t *testing.T) {
	var buf bytes.Buffer
	res, err := scenario.Run(context.Background(), []string{"hash", "heap"}, smallConfig(), logging.New(&buf))
	assert.ErrorIs(t, err, scenario.ErrUnknownSuite)
	assert.Empty(t, res.Suites)
	assert.Empty(t, buf.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := scenario.Run(ctx, []string{"trie"}, smallConfig(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, res.Suites, 1)
	assert.Zero(t, res.Total.Total())
}

func TestRunNilConfigUsesDefaults(t *testing.T) {
	res, err := scenario.Run(context.Background(), []string{"trie", "guid"}, nil, nil)
	require.NoError(t, err)
	assert.True(t, res.Total.OK())
}
