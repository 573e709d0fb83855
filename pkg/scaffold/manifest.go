package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
)

// ManifestName is the package manifest mutated by the formatting step.
const ManifestName = "package.json"

const preCommitHook = `#!/usr/bin/env sh
. "$(dirname -- "$0")/_/husky.sh"

npx lint-staged
`

// formattingFragment is the configuration merged into the package manifest
// by the formatting step. Its values win on key conflict.
func formattingFragment() map[string]any {
	return map[string]any{
		"scripts": map[string]any{
			"format":  `prettier --write "src/**/*.{js,jsx,json,css,scss,md}"`,
			"prepare": "husky install",
		},
		"prettier": map[string]any{
			"singleQuote":   true,
			"trailingComma": "es5",
		},
		"lint-staged": map[string]any{
			"src/**/*.{js,jsx}": []any{"prettier --write"},
		},
	}
}

// LoadManifest parses the package manifest in dir. Malformed content is an
// error; the file is never partially rewritten on failure.
func LoadManifest(dir string) (map[string]any, error) {
	path := filepath.Join(dir, ManifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return manifest, nil
}

// SaveManifest writes the manifest back to dir, 2-space indented with a
// trailing newline, matching the installer tools' own formatting.
func SaveManifest(dir string, manifest map[string]any) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ManifestName, err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MergeManifest structurally merges fragment into manifest. Fragment values
// win on key conflict; maps merge recursively.
func MergeManifest(manifest, fragment map[string]any) error {
	return mergo.Merge(&manifest, fragment, mergo.WithOverride)
}

// ConfigureFormatting merges the formatting fragment into the project's
// package manifest and registers the pre-commit hook script.
func ConfigureFormatting(dir string) error {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return err
	}
	if err := MergeManifest(manifest, formattingFragment()); err != nil {
		return fmt.Errorf("merging formatting config: %w", err)
	}
	if err := SaveManifest(dir, manifest); err != nil {
		return err
	}
	return writePreCommitHook(dir)
}

// writePreCommitHook writes an executable .husky/pre-commit script.
func writePreCommitHook(dir string) error {
	hookPath := filepath.Join(dir, ".husky", "pre-commit")
	return OverwriteFile(hookPath, []byte(preCommitHook), 0755)
}
