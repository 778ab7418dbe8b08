package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcore/logging"
	"github.com/katalvlaran/mcore/report"
)

func TestReporter_PassFailCounts(t *testing.T) {
	var buf bytes.Buffer
	r := report.New("hash", logging.New(&buf))

	require.True(t, r.Check("equal", assert.Equal(r, 32, 32)))
	require.False(t, r.Check("not equal", assert.Equal(r, 32, 31)))
	require.True(t, r.Check("nil", assert.Nil(r, nil)))

	assert.Equal(t, 2, r.Passed())
	assert.Equal(t, 1, r.Failed())

	out := buf.String()
	assert.Contains(t, out, "[INFO] [PASSED] equal")
	assert.Contains(t, out, "[ERROR] [FAILED] not equal")
	assert.Contains(t, out, "detail=", "testify diagnostic attached to the failure")
}

func TestReporter_Close(t *testing.T) {
	var buf bytes.Buffer
	r := report.New("stack", logging.New(&buf))
	r.Check("ok", true)
	r.Fail("setup", errors.New("boom"))

	s := r.Close()
	assert.Equal(t, report.Summary{Suite: "stack", Passed: 1, Failed: 1}, s)
	assert.False(t, s.OK())
	assert.Equal(t, 2, s.Total())
	assert.Contains(t, buf.String(), "stack: 1 passed, 1 failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestReporter_UnattachedDiagnosticFails(t *testing.T) {
	r := report.New("trie", nil)
	assert.True(t, assert.True(r, true))
	assert.False(t, assert.True(r, false)) // never passed to Check

	s := r.Close()
	assert.Equal(t, 1, s.Failed)
}

func TestSummary_Add(t *testing.T) {
	total := report.Summary{Suite: "all"}
	total = total.Add(report.Summary{Suite: "a", Passed: 3, Failed: 1})
	total = total.Add(report.Summary{Suite: "b", Passed: 2})
	assert.Equal(t, report.Summary{Suite: "all", Passed: 5, Failed: 1}, total)
	assert.Equal(t, "all: 5 passed, 1 failed", total.String())
}
