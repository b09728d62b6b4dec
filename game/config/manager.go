package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/wricardo/santorini/game/engine"
	"github.com/wricardo/santorini/game/service"
)

var (
	ErrRulesetNotFound = errors.New("ruleset not found")
	ErrInvalidRuleset  = errors.New("invalid ruleset")
)

// DefaultRulesetName is loaded as the default when the directory has it
const DefaultRulesetName = "standard"

// supportedExtensions lists the ruleset file types in lookup order
var supportedExtensions = []string{".yaml", ".yml", ".json"}

// Manager handles ruleset loading and caching
type Manager struct {
	configDir      string
	defaultRuleset *engine.Ruleset
	rulesets       map[string]*engine.Ruleset
	mu             sync.RWMutex
}

// NewManager creates a new ruleset manager. An empty configDir serves only
// the built-in default.
func NewManager(configDir string) (*Manager, error) {
	if configDir != "" {
		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			return nil, fmt.Errorf("config directory does not exist: %s", configDir)
		}
	}

	m := &Manager{
		configDir: configDir,
		rulesets:  make(map[string]*engine.Ruleset),
	}

	if err := m.loadDefaultRuleset(); err != nil {
		return nil, fmt.Errorf("failed to load default ruleset: %w", err)
	}

	return m, nil
}

// LoadRuleset loads a ruleset by name
func (m *Manager) LoadRuleset(name string) (*engine.Ruleset, error) {
	name = trimExtension(name)

	m.mu.RLock()
	if rules, exists := m.rulesets[name]; exists {
		m.mu.RUnlock()
		return rules, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if rules, exists := m.rulesets[name]; exists {
		return rules, nil
	}

	path, ok := m.findFile(name)
	if !ok {
		if name == DefaultRulesetName {
			rules := engine.DefaultRuleset()
			m.rulesets[name] = rules
			return rules, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrRulesetNotFound, name)
	}

	rules, err := ReadRulesetFile(path)
	if err != nil {
		return nil, err
	}

	m.rulesets[name] = rules
	return rules, nil
}

// ReadRulesetFile decodes and validates a single ruleset file. Keys missing
// from the file keep the values of engine.DefaultRuleset.
func ReadRulesetFile(path string) (*engine.Ruleset, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := engine.DefaultRuleset()
	v.SetDefault("name", trimExtension(filepath.Base(path)))
	v.SetDefault("description", "")
	v.SetDefault("block_supply", defaults.BlockSupply)
	v.SetDefault("cap_supply", defaults.CapSupply)
	v.SetDefault("max_card_draws", defaults.MaxCardDraws)
	v.SetDefault("player_names", defaults.PlayerNames)
	v.SetDefault("cards", defaults.Cards)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read ruleset file: %w", err)
	}

	var rules engine.Ruleset
	if err := v.Unmarshal(&rules); err != nil {
		return nil, fmt.Errorf("failed to parse ruleset: %w", err)
	}

	if err := engine.ValidateRuleset(&rules); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleset, err)
	}

	return &rules, nil
}

// ListRulesets returns information about all valid rulesets in the directory
func (m *Manager) ListRulesets() ([]*service.RulesetInfo, error) {
	var infos []*service.RulesetInfo
	if m.configDir != "" {
		entries, err := os.ReadDir(m.configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read config directory: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !isRulesetFile(entry.Name()) {
				continue
			}

			id := trimExtension(entry.Name())
			rules, err := m.LoadRuleset(id)
			if err != nil {
				// Skip invalid rulesets
				continue
			}
			infos = append(infos, toInfo(entry.Name(), id, rules))
		}
	}

	if len(infos) == 0 {
		infos = append(infos, toInfo("", DefaultRulesetName, engine.DefaultRuleset()))
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].RulesetID < infos[j].RulesetID })
	return infos, nil
}

// GetDefault returns the default ruleset
func (m *Manager) GetDefault() *engine.Ruleset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultRuleset
}

// SetDefault sets the default ruleset by name
func (m *Manager) SetDefault(name string) error {
	rules, err := m.LoadRuleset(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRuleset = rules
	return nil
}

// RefreshCache drops every cached ruleset and reloads the default
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.rulesets = make(map[string]*engine.Ruleset)
	m.mu.Unlock()

	return m.loadDefaultRuleset()
}

// loadDefaultRuleset prefers the standard file, then falls back to the
// built-in rules
func (m *Manager) loadDefaultRuleset() error {
	rules, err := m.LoadRuleset(DefaultRulesetName)
	if err != nil {
		if errors.Is(err, ErrInvalidRuleset) {
			return err
		}
		rules = engine.DefaultRuleset()
	}

	m.mu.Lock()
	m.defaultRuleset = rules
	m.mu.Unlock()
	return nil
}

func (m *Manager) findFile(name string) (string, bool) {
	if m.configDir == "" {
		return "", false
	}
	for _, ext := range supportedExtensions {
		path := filepath.Join(m.configDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func toInfo(filename, id string, rules *engine.Ruleset) *service.RulesetInfo {
	return &service.RulesetInfo{
		Filename:     filename,
		RulesetID:    id,
		Name:         rules.Name,
		Description:  rules.Description,
		BlockSupply:  rules.BlockSupply,
		CapSupply:    rules.CapSupply,
		MaxCardDraws: rules.MaxCardDraws,
		Cards:        len(rules.Cards),
	}
}

func isRulesetFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range supportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func trimExtension(name string) string {
	if isRulesetFile(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}
