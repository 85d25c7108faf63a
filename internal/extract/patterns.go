package extract

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	gpaRe   = regexp.MustCompile(`(?i)GPA[:\s]*([0-4]\.\d{1,2})`)
)

// skillKeywords is the fixed list scanned for during heuristic extraction.
var skillKeywords = []string{
	"Python", "Java", "JavaScript", "React", "SQL",
	"Machine Learning", "Leadership", "Communication",
	"Problem Solving", "Teamwork",
}

const maxSkills = 10

// Email returns the first email address found in text, or "".
func Email(text string) string {
	return emailRe.FindString(text)
}

// Phone returns the first phone-number-shaped token found in text, or "".
func Phone(text string) string {
	return strings.TrimSpace(phoneRe.FindString(text))
}

// GPA returns the first "GPA: x.yz" style value found in text, or "".
func GPA(text string) string {
	m := gpaRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// Skills scans text case-insensitively for known skill keywords.
func Skills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range skillKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
			if len(found) == maxSkills {
				break
			}
		}
	}
	return found
}

// NameGuess picks the first plausible candidate name from the opening lines:
// short, and free of the separators that mark headers or contact rows.
func NameGuess(text string) string {
	lines := strings.Split(text, "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= 50 {
			continue
		}
		if strings.ContainsAny(line, "@|•") {
			continue
		}
		return line
	}
	return ""
}
