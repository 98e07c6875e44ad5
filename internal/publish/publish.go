package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"tasklist-cli/internal/model"
)

type WriteOptions struct {
	SkipCompleted bool
	Overwrite     bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteState renders st as Markdown into the file at toPath.
func WriteState(st model.AppState, toPath string, opt WriteOptions) (WriteResult, error) {
	toPath = strings.TrimSpace(toPath)
	if toPath == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toPath = filepath.Clean(toPath)
	if err := os.MkdirAll(filepath.Dir(toPath), 0o755); err != nil {
		return WriteResult{}, err
	}
	md := RenderStateMarkdown(st, RenderOptions{SkipCompleted: opt.SkipCompleted})
	if err := writeFile(toPath, []byte(md), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: []string{toPath}}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
