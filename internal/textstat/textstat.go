// Package textstat derives plain-text statistics from rendered posts:
// word counts for reading time and the generated abstract.
//
// Every function is pure and total.
package textstat

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultWordsPerMinute is the reading speed used for time estimates.
	DefaultWordsPerMinute = 200

	// DefaultAbstractLength is the number of code points an abstract holds
	// before it may be cut at the next punctuation mark.
	DefaultAbstractLength = 140
)

// CJK Unified Ideographs counted one word each.
const (
	cjkFirst = 0x4E00
	cjkLast  = 0x9FBB
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes every <...> sequence. Entities are left as they are.
func StripTags(html string) string {
	return tagPattern.ReplaceAllString(html, "")
}

// CountWords counts ideographs individually and runs of Latin letters once.
func CountWords(text string) int {
	words := 0
	inLatin := false

	for _, r := range text {
		switch {
		case r >= cjkFirst && r <= cjkLast:
			if inLatin {
				words++
			}
			inLatin = false
			words++
		case unicode.IsUpper(r) || unicode.IsLower(r):
			if !inLatin {
				words++
			}
			inLatin = true
		default:
			inLatin = false
		}
	}

	return words
}

// ReadingTime returns the minutes needed to read words at
// DefaultWordsPerMinute, rounded up.
func ReadingTime(words int) int {
	return ReadingTimeAt(words, DefaultWordsPerMinute)
}

// ReadingTimeAt is ReadingTime with an explicit reading speed.
// A non-positive speed falls back to DefaultWordsPerMinute.
func ReadingTimeAt(words, wordsPerMinute int) int {
	if words <= 0 {
		return 0
	}
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// FormatReadingTime renders minutes for display, e.g. "3 min".
func FormatReadingTime(minutes int) string {
	return fmt.Sprintf("%d min", minutes)
}

// Abstract returns the leading text of a post cut at the first punctuation
// mark once DefaultAbstractLength code points have been collected.
func Abstract(text string) string {
	return AbstractAt(text, DefaultAbstractLength)
}

// AbstractAt is Abstract with an explicit threshold. Each whitespace code
// point becomes a single space. When no punctuation follows the threshold the
// whole text is returned.
func AbstractAt(text string, threshold int) string {
	var sb strings.Builder
	sb.Grow(len(text))
	n := 0

	for _, r := range text {
		if n >= threshold && unicode.IsPunct(r) {
			break
		}
		if unicode.IsSpace(r) {
			r = ' '
		}
		sb.WriteRune(r)
		n++
	}

	return sb.String()
}
