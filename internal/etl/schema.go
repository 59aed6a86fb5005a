package etl

// RawRecord is one unvalidated input row keyed by column name. An empty string
// means the cell was empty or the column absent.
type RawRecord map[string]string

// CheckSchema verifies that every required column is present in the header.
// All missing columns are collected before reporting, not returned one at a
// time.
func CheckSchema(headers []string, required []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}

	return nil
}
