// Command validate checks ruleset files before they are deployed to a config
// directory. It checks:
//   - YAML/JSON syntax and the ruleset fields
//   - Supply and card draw limits
//   - Card names and player names
//   - Playability: a tower can be completed and every allowed draw can be served
//   - That the ruleset name matches the file name it is loaded by
//
// Usage:
//
//	validate [dir|file ...]
//
// With no arguments the configs directory is validated.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/santorini/game/config"
	"github.com/wricardo/santorini/game/engine"
)

// blocksPerTower is the number of building blocks in a completed tower
const blocksPerTower = 3

// ValidationResult captures the outcome of validating a single file.
// Info lists what was found in a valid file; Errors makes the file invalid
// while Warnings does not.
type ValidationResult struct {
	File     string
	Valid    bool
	Errors   []string
	Warnings []string
	Info     []string
}

// validateRulesetFile loads one ruleset file the way the game does and adds
// playability checks on top of the structural validation.
func validateRulesetFile(path string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(path),
		Valid: true,
	}

	rules, err := config.ReadRulesetFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	result.Warnings = append(result.Warnings, validatePlayability(rules)...)

	id := strings.TrimSuffix(result.File, filepath.Ext(result.File))
	if rules.Name != id {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("name %q differs from the file name, the ruleset is loaded as %q", rules.Name, id))
	}

	result.Info = append(result.Info,
		fmt.Sprintf("✓ Name: %s", rules.Name),
		fmt.Sprintf("✓ Bag: C;%dD;%d", rules.BlockSupply, rules.CapSupply),
		fmt.Sprintf("✓ Players: %s", strings.Join(rules.PlayerNames, ", ")),
		fmt.Sprintf("✓ Cards: %s (%d draws each)", cardList(rules.Cards), rules.MaxCardDraws),
	)
	return result
}

// validatePlayability reports settings that load but make for a broken game
func validatePlayability(rules *engine.Ruleset) []string {
	var warnings []string

	if rules.BlockSupply < blocksPerTower {
		warnings = append(warnings,
			fmt.Sprintf("block_supply %d cannot complete a tower of %d blocks", rules.BlockSupply, blocksPerTower))
	}

	// both players draw from the same pool
	if draws := 2 * rules.MaxCardDraws; draws > len(rules.Cards) {
		warnings = append(warnings,
			fmt.Sprintf("players may draw %d cards but only %d are enabled", draws, len(rules.Cards)))
	}

	return warnings
}

func cardList(cards []string) string {
	if len(cards) == 0 {
		return "none"
	}
	sorted := append([]string(nil), cards...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// collectFiles expands directories into the ruleset files they contain
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		for _, pattern := range []string{"*.yaml", "*.yml", "*.json"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, err
			}
			files = append(files, matches...)
		}
	}
	sort.Strings(files)
	return files, nil
}

// report prints one block per file and returns whether all files are valid
func report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Fprintln(w, "  ❌ "+err)
			}
		}
		for _, warning := range result.Warnings {
			fmt.Fprintln(w, "  ⚠ "+warning)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All rulesets are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some rulesets have errors")
	}
	return allValid
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"configs"}
	}

	files, err := collectFiles(args)
	if err != nil {
		fmt.Printf("Error finding ruleset files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No ruleset files found")
		os.Exit(1)
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateRulesetFile(file))
	}
	if !report(os.Stdout, results) {
		os.Exit(1)
	}
}
