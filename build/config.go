package build

import (
	"encoding/json"
	"os"
	"sync"
)

// DefaultConfig returns the built-in persona configuration used when the
// config file is absent or fields are missing.
func DefaultConfig() PersonaConfig {
	return PersonaConfig{
		PersonaID:       "default",
		DisplayName:     "",
		DefaultLanguage: "en",
		DefaultRole:     "general",
		OutputNaming:    "{persona}-{role}-{lang}.pdf",
	}
}

// Store loads and caches the persona configuration. It is constructed
// once at build start and passed to every component that needs it; there
// is no ambient singleton. Load never fails: missing or malformed input
// degrades to built-in defaults, field by field, with a warning per
// substitution.
type Store struct {
	Path   string
	Logger Logger

	once sync.Once
	cfg  PersonaConfig
}

// Load resolves the configuration, memoizing the result for the process
// lifetime. It never reloads.
func (s *Store) Load() PersonaConfig {
	s.once.Do(func() {
		s.cfg = s.resolve()
	})
	return s.cfg
}

func (s *Store) resolve() PersonaConfig {
	logger := s.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	defaults := DefaultConfig()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		logger.Infof("persona config not readable at %s, using defaults: %v", s.Path, err)
		return defaults
	}

	var cfg PersonaConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Infof("persona config at %s is not valid JSON, using defaults: %v", s.Path, err)
		return defaults
	}

	if cfg.PersonaID == "" {
		logger.Infof("persona config missing personaId, using %q", defaults.PersonaID)
		cfg.PersonaID = defaults.PersonaID
	}
	if cfg.OutputNaming == "" {
		logger.Infof("persona config missing outputNaming, using %q", defaults.OutputNaming)
		cfg.OutputNaming = defaults.OutputNaming
	}
	if cfg.DefaultLanguage == "" {
		logger.Infof("persona config missing defaultLanguage, using %q", defaults.DefaultLanguage)
		cfg.DefaultLanguage = defaults.DefaultLanguage
	}
	if cfg.DefaultRole == "" {
		logger.Infof("persona config missing defaultRole, using %q", defaults.DefaultRole)
		cfg.DefaultRole = defaults.DefaultRole
	}
	return cfg
}
