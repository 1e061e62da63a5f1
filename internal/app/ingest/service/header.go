package ingest_service

import (
	"fmt"
	"strings"
)

const emptyHeader = "__EMPTY"

// normalizeHeader trims names, names blank cells __EMPTY and suffixes
// repeats with _1, _2... so every column name is unique.
func normalizeHeader(cells []string) []string {
	var (
		out  = make([]string, len(cells))
		used = make(map[string]struct{}, len(cells))
		seen = make(map[string]int, len(cells))
	)

	for i, c := range cells {
		name := strings.TrimSpace(strings.TrimPrefix(c, "\ufeff"))
		if name == "" {
			name = emptyHeader
		}

		unique := name
		if _, ok := used[unique]; ok {
			for n := seen[name] + 1; ; n++ {
				unique = fmt.Sprintf("%s_%d", name, n)
				if _, taken := used[unique]; !taken {
					seen[name] = n
					break
				}
			}
		}

		used[unique] = struct{}{}
		out[i] = unique
	}

	return out
}
