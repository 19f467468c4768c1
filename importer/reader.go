package importer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads a UTF-8 text file and returns its lines with surrounding
// whitespace trimmed. The file is fully consumed and closed before returning,
// also on error.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	defer file.Close()

	lines := make([]string, 0, 256)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file %s: %w", path, err)
	}

	return lines, nil
}
