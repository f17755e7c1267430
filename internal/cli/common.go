package cli

import (
	"github.com/odooscan/odooscan/internal/addons"
	"github.com/odooscan/odooscan/internal/config"
)

// analysisOptions translates loaded configuration into analysis options.
func analysisOptions(cfg *config.Config) (addons.Options, error) {
	ignore, err := addons.CompileIgnore(cfg.Ignore)
	if err != nil {
		return addons.Options{}, err
	}
	return addons.Options{
		Languages:     cfg.Languages,
		IncludeModels: cfg.Scan.Models,
		Ignore:        ignore,
	}, nil
}
