package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/devbush/clipcast/internal/domain"
)

// ParseURLFile reads a file containing URLs, one per line. Blank lines
// and lines starting with # are ignored.
func ParseURLFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}

// CollectURLs combines the single --url value, the bracketed --list
// value and an optional URL file, deduplicating while preserving the
// order of first appearance.
func CollectURLs(single, list, filePath string) ([]string, error) {
	seen := make(map[string]bool)
	var urls []string

	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	add(strings.TrimSpace(single))

	if list != "" {
		listed, err := domain.ParseURLList(list)
		if err != nil {
			return nil, err
		}
		for _, u := range listed {
			add(u)
		}
	}

	if filePath != "" {
		fromFile, err := ParseURLFile(filePath)
		if err != nil {
			return nil, err
		}
		for _, u := range fromFile {
			add(u)
		}
	}

	return urls, nil
}
