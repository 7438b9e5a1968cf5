package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	headingRe  = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	quoteRe    = regexp.MustCompile(`(?m)^>\s?`)
	bulletRe   = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]+`)
	fenceRe    = regexp.MustCompile("(?m)^```.*$")
	ruleRe     = regexp.MustCompile(`(?m)^-{3,}[ \t]*$`)
	emphasisRe = regexp.MustCompile(`\*{1,2}([^*\n]+)\*{1,2}`)
	codeRe     = regexp.MustCompile("`([^`\n]+)`")
	linkRe     = regexp.MustCompile(`!?\[([^\]\n]*)\]\([^)\n]*\)`)
	escapeRe   = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!>|~])`)
	trailingRe = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRe    = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes the Markdown syntax produced by Document.Markdown,
// leaving text suitable for speech. Escaped characters are kept as text.
func StripMarkdown(md string) string {
	s := fenceRe.ReplaceAllString(md, "")
	s = ruleRe.ReplaceAllString(s, "")
	s = headingRe.ReplaceAllString(s, "")
	s = quoteRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "$1")
	s = codeRe.ReplaceAllString(s, "$1")
	s = linkRe.ReplaceAllString(s, "$1")
	s = escapeRe.ReplaceAllString(s, "$1")
	s = trailingRe.ReplaceAllString(s, "")
	s = blankRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Segments splits s into pieces of at most max runes, breaking on
// paragraphs first, then sentences, then words.
func Segments(s string, max int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return []string{s}
	}

	var pieces []string
	for _, para := range strings.Split(s, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) <= max {
			pieces = append(pieces, para)
			continue
		}
		for _, sentence := range sentences(para) {
			if utf8.RuneCountInString(sentence) <= max {
				pieces = append(pieces, sentence)
				continue
			}
			pieces = append(pieces, splitWords(sentence, max)...)
		}
	}
	return pack(pieces, max)
}

// pack greedily joins consecutive pieces while they fit in max.
func pack(pieces []string, max int) []string {
	var out []string
	var cur strings.Builder
	curLen := 0
	for _, p := range pieces {
		n := utf8.RuneCountInString(p)
		if curLen > 0 && curLen+2+n > max {
			out = append(out, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteString("\n\n")
			curLen += 2
		}
		cur.WriteString(p)
		curLen += n
	}
	if curLen > 0 {
		out = append(out, cur.String())
	}
	return out
}

func sentences(para string) []string {
	var out []string
	runes := []rune(para)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(".!?。！？", runes[i]) {
			continue
		}
		end := i + 1
		for end < len(runes) && strings.ContainsRune(`"'”’)`, runes[end]) {
			end++
		}
		if end < len(runes) && runes[end] != ' ' && runes[end] != '\n' {
			continue
		}
		if s := strings.TrimSpace(string(runes[start:end])); s != "" {
			out = append(out, s)
		}
		start = end
		i = end - 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}

func splitWords(sentence string, max int) []string {
	var out []string
	var cur []string
	curLen := 0
	for _, word := range strings.Fields(sentence) {
		for utf8.RuneCountInString(word) > max {
			if curLen > 0 {
				out = append(out, strings.Join(cur, " "))
				cur, curLen = nil, 0
			}
			r := []rune(word)
			out = append(out, string(r[:max]))
			word = string(r[max:])
		}
		if word == "" {
			continue
		}
		n := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+n > max {
			out = append(out, strings.Join(cur, " "))
			cur, curLen = nil, 0
		}
		if curLen > 0 {
			curLen++
		}
		cur = append(cur, word)
		curLen += n
	}
	if curLen > 0 {
		out = append(out, strings.Join(cur, " "))
	}
	return out
}
