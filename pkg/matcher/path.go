package matcher

import (
	"regexp"

	"github.com/remaplab/remapdb/pkg/config"
)

// NewPath returns the matcher for identifiers appearing as the
// trailing segment of a path-like fragment, e.g.
// /#Account/view/<id> inside free-text hyperlinks. Only the identifier
// segment is replaced; the rest of the fragment stays unchanged.
func NewPath(cfg *config.IdentifierConfig) Matcher {
	return &base{
		name: "path",
		re: regexp.MustCompile(
			regexp.QuoteMeta(cfg.PathMarker) + `(` + token(cfg) + `)`,
		),
		boundary: regexp.MustCompile(`[` + cfg.Alphabet + `]`),
	}
}
