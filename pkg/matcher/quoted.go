package matcher

import (
	"regexp"

	"github.com/remaplab/remapdb/pkg/config"
)

// NewQuoted returns the matcher for identifiers appearing as quoted
// literal values, e.g. 'a1b2c3d4e5f60718a' inside an INSERT statement.
// The quotes are preserved; only the content between them is replaced.
// The closing quote delimits the token, so no boundary check is
// needed.
func NewQuoted(cfg *config.IdentifierConfig) Matcher {
	return &base{
		name: "quoted",
		re:   regexp.MustCompile(`'(` + token(cfg) + `)'`),
	}
}
