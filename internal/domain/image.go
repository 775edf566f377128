package domain

import "strings"

// PlaceholderImage is served for products whose feed record carries no usable
// image path.
const PlaceholderImage = "/images/placeholder.png"

// NormalizeImagePath maps a raw image-path string to a canonical displayable
// path. Pure and total: every input, including garbage, maps to some path.
// Idempotent, so already-normalized values pass through unchanged.
func NormalizeImagePath(raw string) string {
	path := strings.TrimSpace(raw)
	if path == "" {
		return PlaceholderImage
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	if strings.HasPrefix(path, "./") {
		// Strip the relative marker and force exactly one leading slash.
		return "/" + strings.TrimLeft(strings.TrimPrefix(path, "./"), "/")
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return path
}
