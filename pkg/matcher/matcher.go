// Package matcher locates legacy identifier occurrences inside a line
// of dump text and rewrites the mapped ones.
//
// Three surface syntaxes are covered: quoted literal values,
// path-embedded identifiers in hyperlink fragments, and query-string
// parameter values. Each syntax is one Matcher; the transformer
// applies them to every line in a fixed order, so a span already
// rewritten by an earlier matcher is not re-matched by a later one.
//
// The safety guarantee of the whole pipeline lives here: an occurrence
// whose identifier has no store entry is left byte-identical and only
// counted. The generation phase may not have observed that value yet;
// fabricating a replacement would corrupt data that a later
// reconciliation pass can still fix.
package matcher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/mapping"
)

// Matcher finds identifier occurrences of one surface syntax in a line
// and replaces the mapped ones.
type Matcher interface {
	// Name identifies the matcher in run reports.
	Name() string

	// FindReplace rewrites every mapped occurrence in line and returns
	// the result with counts of replaced and matched-but-unmapped
	// occurrences. All bytes outside matched identifier spans are
	// preserved exactly.
	FindReplace(line string, st mapping.Lookup) (string, int, int)
}

// NewAll returns the matchers in application order:
// quoted → path → query.
func NewAll(cfg *config.IdentifierConfig) []Matcher {
	return []Matcher{
		NewQuoted(cfg),
		NewPath(cfg),
		NewQuery(cfg),
	}
}

// token returns the regex fragment matching exactly one identifier.
func token(cfg *config.IdentifierConfig) string {
	return fmt.Sprintf("[%s]{%d}", cfg.Alphabet, cfg.Width)
}

// base implements FindReplace for a pattern with exactly one capture
// group holding the identifier.
type base struct {
	name string
	re   *regexp.Regexp

	// boundary rejects matches whose identifier is followed by another
	// alphabet character (a longer token is not an identifier). Nil for
	// self-delimiting patterns like the quoted matcher.
	boundary *regexp.Regexp
}

func (b *base) Name() string { return b.name }

func (b *base) FindReplace(
	line string,
	st mapping.Lookup,
) (string, int, int) {
	idxs := b.re.FindAllStringSubmatchIndex(line, -1)
	if len(idxs) == 0 {
		return line, 0, 0
	}

	var res strings.Builder
	var replaced, unmapped int
	prev := 0

	for _, m := range idxs {
		gs, ge := m[2], m[3]
		if b.boundary != nil && ge < len(line) &&
			b.boundary.MatchString(line[ge:ge+1]) {
			// Prefix of a longer token.
			continue
		}

		newID, ok := st.Lookup(line[gs:ge])
		if !ok {
			unmapped++
			continue
		}

		res.WriteString(line[prev:gs])
		res.WriteString(strconv.FormatUint(newID, 10))
		prev = ge
		replaced++
	}

	if replaced == 0 {
		return line, 0, unmapped
	}
	res.WriteString(line[prev:])
	return res.String(), replaced, unmapped
}
