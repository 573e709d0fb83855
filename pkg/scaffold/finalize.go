package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// CommitMessage is the fixed message of the repository's first commit.
const CommitMessage = "Initial setup of Redux and friends"

// Finalize moves the finished project under the parent directory, then
// initializes a repository there, stages everything and creates the first
// commit. A name collision under the parent directory is an error; no merge
// is attempted.
func Finalize(rc *RunContext) error {
	dest := filepath.Join(rc.Params.ParentDir, rc.Params.Name)

	srcAbs, err := filepath.Abs(rc.Dir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}
	destAbs, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolving destination directory: %w", err)
	}

	if srcAbs != destAbs {
		if _, err := os.Stat(destAbs); err == nil {
			return fmt.Errorf("destination %s already exists", dest)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking destination %s: %w", dest, err)
		}
		if err := MoveDir(srcAbs, destAbs); err != nil {
			return err
		}
	}

	for _, args := range [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", CommitMessage},
	} {
		if err := rc.Executor.Execute(destAbs, "git", args...); err != nil {
			return err
		}
	}
	return nil
}
