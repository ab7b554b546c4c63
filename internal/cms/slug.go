package cms

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/daniilsolovey/clinic-cms/internal/db"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters without a canonical decomposition into an ascii base letter.
var transliterations = map[rune]string{
	'ı': "i", 'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o", 'ł': "l", 'đ': "d", 'ð': "d", 'þ': "th",
}

// stripMarks decomposes accented letters and drops the combining marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// removeAccents maps accented letters to their ascii base, e.g. "Göz Sağlığı" -> "goz sagligi".
func removeAccents(s string) string {
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	for _, r := range s {
		if t, ok := transliterations[r]; ok {
			b.WriteString(t)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Slugify lower-cases s, removes accents and joins runs of ascii letters and digits with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range removeAccents(strings.ToLower(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}

	return b.String()
}

// slugFor normalizes an explicit slug or derives one from the title.
func slugFor(slug, title string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		slug = title
	}

	s := Slugify(slug)
	if s == "" {
		return "", invalid("cannot build slug from %q", slug)
	}

	return s, nil
}

// freeSlug returns slug or the first free slug-N variant.
func freeSlug[M any](ctx context.Context, d *db.Delegate[M], slug string) (string, error) {
	candidate := slug
	for i := 2; ; i++ {
		row, err := d.FindUnique(ctx, db.BySlug(candidate), db.WithColumns("id"))
		if err != nil {
			return "", fmt.Errorf("db check slug: %w", err)
		} else if row == nil {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}
