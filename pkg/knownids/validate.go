package knownids

import (
	"fmt"
	"regexp"

	"github.com/remaplab/remapdb/pkg/config"
)

// Validate checks every listed literal against the configured
// identifier shape. A literal of the wrong width or alphabet would sit
// in the store without ever matching, so it is almost certainly a typo
// in known_ids.yaml.
func (k *KnownIDsConfig) Validate(cfg *config.IdentifierConfig) error {
	re, err := regexp.Compile(
		fmt.Sprintf("^[%s]{%d}$", cfg.Alphabet, cfg.Width),
	)
	if err != nil {
		return fmt.Errorf("invalid identifier shape: %w", err)
	}

	for _, id := range k.KnownIDs {
		if !re.MatchString(id) {
			return fmt.Errorf(
				"known id %q does not match shape [%s]{%d}",
				id, cfg.Alphabet, cfg.Width,
			)
		}
	}
	return nil
}
