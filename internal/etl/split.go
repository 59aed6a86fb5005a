package etl

import "strings"

// SplitComposite splits a composite value on the first occurrence of the
// delimiter only; a department name may itself contain the delimiter, the
// region never does. With no delimiter present the whole value becomes the
// department and the region is absent. Never an error.
func SplitComposite(value, delimiter string) (string, *string) {
	parts := strings.SplitN(value, delimiter, 2)

	department := strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return department, nil
	}

	region := strings.TrimSpace(parts[1])
	if region == "" {
		return department, nil
	}

	return department, &region
}
