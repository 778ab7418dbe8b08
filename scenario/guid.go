package scenario

import (
	"regexp"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mcore/config"
	"github.com/katalvlaran/mcore/guid"
	"github.com/katalvlaran/mcore/report"
)

var guidPattern = regexp.MustCompile(`^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`)

func guidCases() []Case {
	return []Case{
		{Name: "GenerateAndFormat", Run: guidGenerateAndFormat},
		{Name: "BufferSize", Run: guidBufferSize},
		{Name: "Unique", Run: guidUnique},
	}
}

func guidGenerateAndFormat(r *report.Reporter, _ *config.Config) {
	g, err := guid.Generate()
	if !r.Check("GenerateAndFormat: generate", assert.NoError(r, err)) {
		return
	}
	buf := make([]byte, guid.FormatSize)
	r.Check("GenerateAndFormat: format", assert.NoError(r, g.Format(buf)))
	r.Check("GenerateAndFormat: 8-4-4-4-12 upper-case", assert.Regexp(r, guidPattern, string(buf[:guid.Length])))
}

func guidBufferSize(r *report.Reporter, _ *config.Config) {
	g := guid.MustGenerate()
	r.Check("BufferSize: short buffer rejected",
		assert.ErrorIs(r, g.Format(make([]byte, guid.Length)), guid.ErrBufferSize))
	r.Check("BufferSize: long buffer rejected",
		assert.ErrorIs(r, g.Format(make([]byte, guid.FormatSize+1)), guid.ErrBufferSize))
}

func guidUnique(r *report.Reporter, cfg *config.Config) {
	n := cfg.Scenario.DynamicCount
	seen := make(map[guid.GUID]struct{}, n)
	for i := 0; i < n; i++ {
		seen[guid.MustGenerate()] = struct{}{}
	}
	r.Check("Unique: no duplicates", assert.Len(r, seen, n))
}
