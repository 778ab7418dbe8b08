// Package report tallies pass/fail checks and writes one line per check to a
// logging.Logger handed in by the caller.
//
// A Reporter satisfies testify's assert.TestingT, so the assert package can
// drive it outside of `go test`:
//
//	r := report.New("hash", log)
//	r.Check("32 inserts", assert.Equal(r, 32, inserted))
//	r.Check("search after remove", assert.Nil(r, v))
//	sum := r.Close()
//
// When an assertion fails, testify reports its diagnostic through Errorf;
// the next Check attaches it to the failed line.
package report

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcore/logging"
)

// Summary is the pass/fail tally of one or more reporters.
type Summary struct {
	Suite  string
	Passed int
	Failed int
}

// Total returns Passed + Failed.
func (s Summary) Total() int { return s.Passed + s.Failed }

// OK reports whether no check failed.
func (s Summary) OK() bool { return s.Failed == 0 }

// Add merges o into s, keeping s.Suite.
func (s Summary) Add(o Summary) Summary {
	s.Passed += o.Passed
	s.Failed += o.Failed

	return s
}

// String renders "suite: N passed, M failed".
func (s Summary) String() string {
	return fmt.Sprintf("%s: %d passed, %d failed", s.Suite, s.Passed, s.Failed)
}

// Reporter counts checks for one suite.
type Reporter struct {
	suite   string
	log     logging.Logger
	passed  int
	failed  int
	pending []string // Errorf messages not yet attached to a Check
}

var _ assert.TestingT = (*Reporter)(nil)

// New returns a Reporter for suite writing to log; a nil log discards output.
func New(suite string, log logging.Logger) *Reporter {
	if log == nil {
		log = logging.Nop()
	}

	return &Reporter{suite: suite, log: log}
}

// Errorf records an assertion diagnostic.
func (r *Reporter) Errorf(format string, args ...any) {
	r.pending = append(r.pending, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Check records the outcome of the named check and returns ok.
func (r *Reporter) Check(name string, ok bool) bool {
	detail := strings.Join(r.pending, "; ")
	r.pending = r.pending[:0]
	if ok {
		r.passed++
		r.log.Info("[PASSED] "+name, "suite", r.suite)

		return true
	}
	r.failed++
	if detail == "" {
		r.log.Error("[FAILED] "+name, "suite", r.suite)
	} else {
		r.log.Error("[FAILED] "+name, "suite", r.suite, "detail", detail)
	}

	return false
}

// Fail records a failed check with an explicit reason, e.g. a setup error.
func (r *Reporter) Fail(name string, err error) {
	if err != nil {
		r.Errorf("%v", err)
	}
	r.Check(name, false)
}

// Passed returns the number of passed checks.
func (r *Reporter) Passed() int { return r.passed }

// Failed returns the number of failed checks.
func (r *Reporter) Failed() int { return r.failed }

// Summary returns the current tally.
func (r *Reporter) Summary() Summary {
	return Summary{Suite: r.suite, Passed: r.passed, Failed: r.failed}
}

// Close writes the summary line and returns the tally. Diagnostics that
// were never attached to a Check count as one extra failure.
func (r *Reporter) Close() Summary {
	if len(r.pending) > 0 {
		r.Check("unattached assertion", false)
	}
	s := r.Summary()
	if s.OK() {
		r.log.Messagef(logging.LevelInfo, "%s", s)
	} else {
		r.log.Messagef(logging.LevelError, "%s", s)
	}

	return s
}
