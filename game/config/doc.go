// Package config provides ruleset management.
//
// The config package handles:
//   - Loading rulesets from YAML or JSON files through viper
//   - Ruleset validation
//   - Default ruleset management
//   - Ruleset discovery and listing
//
// Ruleset Format:
//
// A ruleset file lives in the configs directory and is named after its ID,
// for example configs/standard.yaml:
//
//	name: standard
//	description: Standard rules with all six power cards
//	block_supply: 54
//	cap_supply: 18
//	max_card_draws: 3
//	player_names: [p1, p2]
//	cards: [Apollo, Artemis, Athena, Atlas, Demeter, Hermes]
//
// Missing keys keep their standard values. When the directory has no
// standard ruleset the built-in one is used.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rules, err := manager.LoadRuleset("quick")
//	defaultRules := manager.GetDefault()
//	infos, err := manager.ListRulesets()
package config
