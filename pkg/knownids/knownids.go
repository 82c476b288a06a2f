// Package knownids defines the supplementary list of externally-known
// identifier literals. These identifiers appear in free-text content
// (for example embedded correspondence-system references) but are not
// drawn from any database column, so schema discovery cannot find
// them. They are added to the mapping store explicitly by
// configuration.
package knownids

// KnownIDsConfig is the parsed content of known_ids.yaml.
type KnownIDsConfig struct {
	// KnownIDs lists identifier literals to insert into the mapping
	// store during generation.
	KnownIDs []string `yaml:"known_ids"`
}
