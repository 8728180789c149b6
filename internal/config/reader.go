package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/log"
)

// ReadLines returns the raw lines of the config file at path. A missing or
// empty file is seeded with the documented defaults first.
func ReadLines(path string) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	info, err := os.Stat(path)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(path, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = defaultLines()
		if err := WriteLines(path, lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// defaultLines is the template written to a fresh config file.
func defaultLines() []string {
	lines := []string{
		"# raven configuration",
		"# Edit values below or use: raven config set <key> <value>",
	}

	section := ""
	for _, key := range domain.VisibleConfigKeys() {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}
		lines = append(lines, key.Name+"="+formatValue(key.Default))
	}

	return lines
}
