package usecase

import (
	"net/url"
	"regexp"
)

const (
	shortCodeMinLength = 3
	shortCodeMaxLength = 10
)

var shortCodePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateOriginalURL проверяет, что строка является абсолютным URL
func validateOriginalURL(originalURL string) []string {
	parsed, err := url.Parse(originalURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return []string{"Please enter a valid URL"}
	}

	return nil
}

// validateShortCode проверяет грамматику кода: длина 3-10, алфавит [a-zA-Z0-9-_]
func validateShortCode(shortCode string) []string {
	var messages []string

	if len(shortCode) < shortCodeMinLength {
		messages = append(messages, "Short code must be at least 3 characters")
	}
	if len(shortCode) > shortCodeMaxLength {
		messages = append(messages, "Short code cannot exceed 10 characters")
	}
	if shortCode != "" && !shortCodePattern.MatchString(shortCode) {
		messages = append(messages, "Short code can only contain letters, numbers, hyphens, and underscores")
	}

	return messages
}
