package restyutil

import (
	"os"
	"strings"
)

func indexOf(s, substr string) int {
	return strings.Index(s, substr)
}

func readDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}
