package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugRunes = 60

var (
	unsafeNameRe = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)
	multiHyphen  = regexp.MustCompile(`-{2,}`)
)

func CleanDirName(input string) string {
	cleaned := unsafeNameRe.ReplaceAllString(input, "_")

	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// Slugify lowercases s, strips accents and collapses every run of
// characters that are neither letters nor digits into a single hyphen.
// Non-latin letters are kept.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	result = strings.ToLower(result)
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)
	result = multiHyphen.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// ChapterFilename returns the file stem shared by a chapter's markdown,
// text and audio files, e.g. "03-the-long-road".
func ChapterFilename(number, total int, title string) string {
	width := len(strconv.Itoa(total))
	if width < 2 {
		width = 2
	}
	name := Slugify(title)
	if runes := []rune(name); len(runes) > maxSlugRunes {
		name = strings.TrimRight(string(runes[:maxSlugRunes]), "-")
	}
	if name == "" {
		name = "chapter"
	}
	return fmt.Sprintf("%0*d-%s", width, number, name)
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
