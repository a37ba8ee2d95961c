package tenant

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugAttempts = 50

// Slugify turns a barbershop name into a URL path segment:
// "Barbearia São João!" -> "barbearia-sao-joao".
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > 90 {
		slug = strings.TrimRight(slug[:90], "-")
	}
	if slug == "" {
		slug = "barbearia"
	}
	return slug
}

// UniqueSlug appends -2, -3, ... to the slugified name until exists reports
// the candidate free.
func UniqueSlug(
	ctx context.Context,
	name string,
	exists func(ctx context.Context, slug string) (bool, error),
) (string, error) {
	base := Slugify(name)
	candidate := base

	for i := 2; i < maxSlugAttempts+2; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", fmt.Errorf("no free slug for %q after %d attempts", base, maxSlugAttempts)
}
