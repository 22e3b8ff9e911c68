package roster

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadNameList reads a plain-text list of author names, one per line.
// Leading and trailing whitespace is trimmed and blank lines are dropped.
func LoadNameList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name list: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading name list %s: %w", path, err)
	}
	return names, nil
}
