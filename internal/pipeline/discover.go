package pipeline

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Discover walks root and returns deck files grouped by extension in the order given,
// each group in lexical walk order. Extensions match case-insensitively.
// An unreadable root is logged and yields no decks.
func Discover(root string, extensions []string, log *zap.Logger) ([]string, error) {
	groups := make(map[string][]string, len(extensions))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				if errors.Is(err, fs.ErrNotExist) {
					log.Warn("input directory not found", zap.String("path", root))
				} else {
					log.Warn("input directory unreadable", zap.String("path", root), zap.Error(err))
				}
				return fs.SkipAll
			}
			log.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		groups[ext] = append(groups[ext], path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, ext := range extensions {
		paths = append(paths, groups[strings.ToLower(ext)]...)
	}
	return paths, nil
}
