// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the message keys declared in
// Go source. Every `Code = "KEY"` and `Message = "KEY"` constant must have an
// entry in the primary locale, and every other locale must carry every key of
// the primary one.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a declared key.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var declRe = regexp.MustCompile(`^\s*\w+\s+(?:apperrors\.)?(?:Code|Message)\s*=\s*"([A-Z][A-Z0-9_]*)"`)

func main() {
	fmt.Println("🔍 Running i18n linter...")

	declared, err := findDeclaredKeys(projectRoot)
	if err != nil {
		fmt.Printf("❌ Error scanning source: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d message keys declared in source code.\n", len(declared))

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("❌ Error loading primary locale '%s': %v\n", primaryLocale, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Loaded %d keys from primary locale (%s).\n\n", len(primaryKeys), primaryLocale)

	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ Error finding locale files: %v\n", err)
		os.Exit(1)
	}

	failed := false

	fmt.Println("--- Declared keys without a translation ---")
	untranslated := missingFrom(primaryKeys, declared)
	for _, key := range untranslated {
		loc := declared[key]
		fmt.Printf("  - Untranslated: %s (%s:%d)\n", key, loc.Filepath, loc.Line)
	}
	if len(untranslated) == 0 {
		fmt.Println("  ✨ None found.")
	} else {
		failed = true
	}
	fmt.Println()

	fmt.Println("--- Orphaned keys (in primary locale but never declared) ---")
	orphaned := missingFrom(declared, primaryKeys)
	for _, key := range orphaned {
		fmt.Printf("  - Orphaned: %s\n", key)
	}
	if len(orphaned) == 0 {
		fmt.Println("  ✨ None found.")
	}
	fmt.Println()

	fmt.Println("--- Keys missing from secondary locales ---")
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		fmt.Printf("Checking %s:\n", file)
		secondary, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("  - ❌ Error loading %s: %v\n", file, err)
			failed = true
			continue
		}
		missing := missingFrom(secondary, primaryKeys)
		for _, key := range missing {
			fmt.Printf("  - Missing: %s\n", key)
		}
		if len(missing) == 0 {
			fmt.Println("  ✨ All keys present.")
		} else {
			failed = true
		}
	}

	fmt.Println("\n--- Linter Finished ---")
	if failed {
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	}
	if len(orphaned) > 0 {
		fmt.Println("⚠️  Found orphaned keys. Please consider removing them.")
		return
	}
	fmt.Println("✅ All translation files are consistent!")
}

// missingFrom returns the sorted keys of want that have no entry in have.
func missingFrom[A, B any](have map[string]A, want map[string]B) []string {
	var out []string
	for key := range want {
		if _, ok := have[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// findDeclaredKeys scans non-test .go files for message key constants.
func findDeclaredKeys(root string) (map[string]Location, error) {
	keys := make(map[string]Location)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			switch info.Name() {
			case "tools", "_examples", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			if m := declRe.FindStringSubmatch(line); m != nil {
				if _, seen := keys[m[1]]; !seen {
					keys[m[1]] = Location{Filepath: path, Line: i + 1}
				}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []interface{}:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
