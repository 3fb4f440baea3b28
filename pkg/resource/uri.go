// Package resource defines the identifiers used to address provider resources.
package resource

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// SchemeContent is the scheme of provider-addressed resources
const SchemeContent = "content"

// URI identifies a resource served by a content provider, for example
// "content://contacts/people/1". Two URIs match only when they are
// byte-for-byte equal.
type URI string

// Parse validates raw as an absolute URI with a scheme and authority.
func Parse(raw string) (URI, error) {
	if raw == "" {
		return "", fmt.Errorf("empty uri")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("failed to parse uri %q: %w", raw, err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("uri %q has no scheme", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("uri %q has no authority", raw)
	}
	return URI(raw), nil
}

// MustParse is like Parse but panics on error. Intended for test setup.
func MustParse(raw string) URI {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

// Content builds a content:// URI from an authority and path segments.
func Content(authority string, segments ...string) URI {
	var b strings.Builder
	b.WriteString(SchemeContent)
	b.WriteString("://")
	b.WriteString(authority)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return URI(b.String())
}

// String implements fmt.Stringer
func (u URI) String() string {
	return string(u)
}

// IsZero reports whether the URI is unset
func (u URI) IsZero() bool {
	return u == ""
}

// Authority returns the authority component, or "" if the URI does not parse.
func (u URI) Authority() string {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return ""
	}
	return parsed.Host
}

// LastSegment returns the final path segment, typically an item ID.
func (u URI) LastSegment() string {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return ""
	}
	path := strings.TrimSuffix(parsed.Path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// WithAppendedID returns a URI addressing the item id below u.
func (u URI) WithAppendedID(id string) URI {
	base := strings.TrimSuffix(string(u), "/")
	return URI(base + "/" + url.PathEscape(id))
}

// NewUnique returns a URI below base ending in a freshly generated item ID.
func NewUnique(base URI) URI {
	return base.WithAppendedID(uuid.NewString())
}
