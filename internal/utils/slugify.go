package utils

import "github.com/gosimple/slug"

// Slugify derives the URL key used for organizations and boards:
// lowercase ASCII words joined by hyphens.
func Slugify(input string) string {
	return slug.Make(input)
}
