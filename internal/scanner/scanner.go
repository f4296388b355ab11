package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kpauljoseph/datealingo/pkg/logger"
)

type DeckFile struct {
	AbsolutePath string
	RelativePath string
	DeckName     string
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

// FindCSVs walks dir and returns every .csv file below it, sorted by
// relative path. The prefix, when set, becomes the top of each deck name.
func (s *DirectoryScanner) FindCSVs(ctx context.Context, dir, prefix string) ([]DeckFile, error) {
	var files []DeckFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Trace("Scanning directory: %s", path)
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		s.logger.Debug("Found deck file: %s", relPath)
		files = append(files, DeckFile{
			AbsolutePath: absPath,
			RelativePath: relPath,
			DeckName:     DeckNameFromPath(prefix, relPath),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s or its subdirectories", dir)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}

// DeckNameFromPath turns "jlpt/n5/verbs.csv" into "jlpt::n5::verbs".
func DeckNameFromPath(rootPrefix string, relativePath string) string {
	dirPath := filepath.Dir(relativePath)
	if dirPath == "." {
		dirPath = ""
	}

	fileName := strings.TrimSuffix(filepath.Base(relativePath), filepath.Ext(relativePath))

	var parts []string
	if rootPrefix != "" {
		parts = append(parts, rootPrefix)
	}
	if dirPath != "" {
		parts = append(parts, strings.Split(dirPath, string(filepath.Separator))...)
	}
	parts = append(parts, fileName)

	return strings.Join(parts, "::")
}
