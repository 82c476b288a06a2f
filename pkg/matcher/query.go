package matcher

import (
	"regexp"
	"strings"

	"github.com/remaplab/remapdb/pkg/config"
)

// NewQuery returns the matcher for identifiers appearing as values of
// named query-string parameters, e.g. entryPoint=download&amp;id=<id>.
// Only the value is replaced; the parameter name and the surrounding
// encoding (including HTML-entity-encoded ampersands) are preserved.
func NewQuery(cfg *config.IdentifierConfig) Matcher {
	params := make([]string, len(cfg.QueryParams))
	for i, p := range cfg.QueryParams {
		params[i] = regexp.QuoteMeta(p)
	}

	// \b keeps "uid=" from matching the "id" parameter.
	pattern := `\b(?:` + strings.Join(params, "|") + `)=(` +
		token(cfg) + `)`

	return &base{
		name:     "query",
		re:       regexp.MustCompile(pattern),
		boundary: regexp.MustCompile(`[` + cfg.Alphabet + `]`),
	}
}
