package api

import "strconv"

// queryInt coerces a query or path parameter into the numeric id space.
// Identifiers arrive as strings over HTTP; a value that cannot be coerced
// falls back to the default rather than erroring.
func queryInt(raw string, defaultValue int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return n
}

// pathID coerces a path parameter into a product/category id, reporting
// whether the coercion succeeded.
func pathID(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
