package etl

import "strings"

// NormalizeIdentity produces the dedup key for a contact identifier:
// case-folded and whitespace-trimmed. Matching is exact on this key.
func NormalizeIdentity(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Deduplicate drops rows whose normalized identity key was already seen,
// keeping the first occurrence in input order. It returns the surviving rows
// and the number of duplicates dropped.
func Deduplicate(rows []RawRecord, column string) ([]RawRecord, int) {
	seen := make(map[string]bool, len(rows))
	kept := make([]RawRecord, 0, len(rows))

	for _, row := range rows {
		key := NormalizeIdentity(row[column])
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}

	return kept, len(rows) - len(kept)
}
