// Package episodes derives stable episode identifiers from paper
// metadata. The identifier keys every stored artifact for an episode.
package episodes

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minYear = 1900
	maxYear = 2100

	// titleSlugLength bounds the slug portion of the identifier
	titleSlugLength = 20
)

var (
	etAlRe        = regexp.MustCompile(`\s+et\s+al\.?\s*$`)
	nonAlnumRunRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// DeriveID builds the episode identifier slug for a paper:
// {first-author-lastname}-{year}-{title-slug}.
func DeriveID(title string, year int, authors string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title required")
	}

	if year < minYear || year > maxYear {
		return "", fmt.Errorf("invalid year: %d", year)
	}

	authors = strings.TrimSpace(authors)
	if authors == "" {
		return "", fmt.Errorf("authors required")
	}

	return fmt.Sprintf("%s-%d-%s", firstAuthorLastName(authors), year, titleSlug(title)), nil
}

// firstAuthorLastName extracts the lowercased last name of the first
// author. An "et al." suffix marks a single named author; otherwise the
// field is cut at the first "and" or comma.
func firstAuthorLastName(authors string) string {
	first := authors

	if etAlRe.MatchString(authors) {
		first = etAlRe.ReplaceAllString(authors, "")
	} else {
		andIdx := strings.Index(authors, " and ")
		commaIdx := strings.Index(authors, ",")

		cut := -1
		switch {
		case andIdx >= 0 && commaIdx >= 0:
			cut = min(andIdx, commaIdx)
		case andIdx >= 0:
			cut = andIdx
		case commaIdx >= 0:
			cut = commaIdx
		}
		if cut >= 0 {
			first = authors[:cut]
		}
	}

	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[len(fields)-1])
}

// titleSlug lowercases and truncates the title, then collapses every
// run of non-alphanumerics to a single underscore. Truncation happens
// before slugging so the slug never ends mid-replacement.
func titleSlug(title string) string {
	slug := strings.ToLower(title)

	runes := []rune(slug)
	if len(runes) > titleSlugLength {
		runes = runes[:titleSlugLength]
	}

	slug = nonAlnumRunRe.ReplaceAllString(string(runes), "_")
	return strings.Trim(slug, "_")
}
