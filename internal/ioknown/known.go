// Package ioknown loads the supplementary known-identifier list from
// the config directory.
package ioknown

import (
	"os"

	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/knownids"
	"gopkg.in/yaml.v3"
)

type ioknown struct {
	cfg *config.Config
}

// Loader reads the known_ids.yaml configuration.
type Loader interface {
	Load() (*knownids.KnownIDsConfig, error)
}

func New(cfg *config.Config) Loader {
	res := ioknown{cfg: cfg}
	return &res
}

func (k *ioknown) Load() (*knownids.KnownIDsConfig, error) {
	knownPath := config.KnownIDsFilePath(k.cfg.HomeDir)

	data, err := os.ReadFile(knownPath)
	if err != nil {
		return nil, KnownIDsError(knownPath, err)
	}

	var res knownids.KnownIDsConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, KnownIDsError(knownPath, err)
	}

	if err = res.Validate(&k.cfg.Identifier); err != nil {
		return nil, KnownIDsError(knownPath, err)
	}

	return &res, nil
}
