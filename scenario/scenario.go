// Package scenario holds the acceptance scenarios for the containers and the
// GUID generator, runnable outside `go test` against a report.Reporter.
//
// Each Suite is a named list of Cases. A Case builds its own container,
// drives it with sizes from config.Config and records every expectation as a
// Check on the reporter. Run executes suites in the requested order and
// checks for cancellation between cases.
package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mcore/config"
	"github.com/katalvlaran/mcore/logging"
	"github.com/katalvlaran/mcore/report"
)

// ErrUnknownSuite indicates Run was asked for a suite that does not exist.
var ErrUnknownSuite = errors.New("scenario: unknown suite")

// Case is one scenario.
type Case struct {
	Name string
	Run  func(r *report.Reporter, cfg *config.Config)
}

// Suite is a named, ordered list of cases.
type Suite struct {
	Name  string
	Cases []Case
}

// Suites returns every suite in default run order.
func Suites() []Suite {
	return []Suite{
		{Name: "hash", Cases: hashCases()},
		{Name: "stack", Cases: stackCases()},
		{Name: "trie", Cases: trieCases()},
		{Name: "guid", Cases: guidCases()},
	}
}

// Names returns the suite names in default run order.
func Names() []string {
	all := Suites()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = s.Name
	}

	return out
}

// Lookup returns the suite called name.
func Lookup(name string) (Suite, error) {
	for _, s := range Suites() {
		if s.Name == name {
			return s, nil
		}
	}

	return Suite{}, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
}

// Result is the outcome of Run: the total plus one summary per suite.
type Result struct {
	Total  report.Summary
	Suites []report.Summary
}

// Run executes the named suites (all of them when names is empty) and
// returns their summaries. Unknown names fail before anything runs.
// A cancelled ctx stops between cases and returns ctx.Err() with the
// summaries collected so far.
func Run(ctx context.Context, names []string, cfg *config.Config, log logging.Logger) (Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	if len(names) == 0 {
		names = Names()
	}
	suites := make([]Suite, 0, len(names))
	for _, n := range names {
		s, err := Lookup(n)
		if err != nil {
			return Result{}, err
		}
		suites = append(suites, s)
	}

	res := Result{Total: report.Summary{Suite: "total"}}
	for _, s := range suites {
		log.Messagef(logging.LevelInfo, "suite %s: %d cases", s.Name, len(s.Cases))
		r := report.New(s.Name, log)
		for _, c := range s.Cases {
			if err := ctx.Err(); err != nil {
				sum := r.Close()
				res.Suites = append(res.Suites, sum)
				res.Total = res.Total.Add(sum)

				return res, err
			}
			log.Debug("case start", "suite", s.Name, "case", c.Name)
			c.Run(r, cfg)
		}
		sum := r.Close()
		res.Suites = append(res.Suites, sum)
		res.Total = res.Total.Add(sum)
	}

	return res, nil
}
