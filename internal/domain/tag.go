package domain

import "regexp"

// DefaultTagColor is used when a tag is created without a color
const DefaultTagColor = "#FF6347"

var tagColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Tag labels tasks
type Tag struct {
	Color string
	ID    string
	Name  string
}

// ValidTagColor reports whether color is a #RRGGBB hex value
func ValidTagColor(color string) bool {
	return tagColorPattern.MatchString(color)
}
