package annotation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDirectives builds metadata from comment lines. Only lines of the form
// "//<prefix>:<name> args..." for one of the prefixes are considered; other
// comment text is ignored. The annotation name keeps the prefix
// ("inject:named"). A bare argument is stored under ValueMember, "k=v"
// arguments under k. Values may be Go-quoted.
func ParseDirectives(prefixes []string, lines []string) (Metadata, error) {
	b := NewBuilder()

	for _, line := range lines {
		text, ok := strings.CutPrefix(line, "//")
		if !ok || !hasDirectivePrefix(text, prefixes) {
			continue
		}

		if err := parseDirective(b, strings.TrimRight(text, " \t\r")); err != nil {
			return Empty, fmt.Errorf("directive %q: %w", line, err)
		}
	}

	return b.Build(), nil
}

func hasDirectivePrefix(text string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p+":") {
			return true
		}
	}

	return false
}

func parseDirective(b *Builder, text string) error {
	name, rest, _ := strings.Cut(text, " ")
	colon := strings.IndexByte(name, ':')
	if colon == len(name)-1 {
		return fmt.Errorf("missing annotation name")
	}

	b.Add(name)

	for {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			return nil
		}

		member := ValueMember
		if key, after, ok := cutKey(rest); ok {
			member, rest = key, after
		}

		value, after, err := nextValue(rest)
		if err != nil {
			return err
		}

		b.Set(name, member, value)
		rest = after
	}
}

// cutKey splits "key=..." when the token starts with an identifier followed
// by '='.
func cutKey(s string) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '=' && i > 0:
			return s[:i], s[i+1:], true
		case c == '_' || c == '-' || c == '.' ||
			'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9':
			continue
		default:
			return "", s, false
		}
	}

	return "", s, false
}

func nextValue(s string) (string, string, error) {
	if s != "" && (s[0] == '"' || s[0] == '`') {
		quoted, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", fmt.Errorf("unterminated quoted value")
		}

		value, err := strconv.Unquote(quoted)
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted value %s: %w", quoted, err)
		}

		return value, s[len(quoted):], nil
	}

	end := strings.IndexAny(s, " \t")
	if end < 0 {
		return s, "", nil
	}

	return s[:end], s[end:], nil
}

// ParseStructTag builds metadata from a struct tag: each key becomes an
// annotation whose ValueMember holds the raw tag value.
func ParseStructTag(tag string) (Metadata, error) {
	b := NewBuilder()

	for tag != "" {
		tag = strings.TrimLeft(tag, " ")
		if tag == "" {
			break
		}

		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return Empty, fmt.Errorf("malformed struct tag %q", tag)
		}

		key := tag[:i]
		quoted, err := strconv.QuotedPrefix(tag[i+1:])
		if err != nil {
			return Empty, fmt.Errorf("malformed struct tag value for %q", key)
		}

		value, err := strconv.Unquote(quoted)
		if err != nil {
			return Empty, fmt.Errorf("malformed struct tag value for %q: %w", key, err)
		}

		b.Set(key, ValueMember, value)
		tag = tag[i+1+len(quoted):]
	}

	return b.Build(), nil
}

// Merge combines metadata; members of annotations present in several inputs
// are concatenated in argument order.
func Merge(all ...Metadata) Metadata {
	b := NewBuilder()
	for _, m := range all {
		for name, v := range m.entries {
			b.Add(name)
			for member, vals := range v {
				b.Set(name, member, vals...)
			}
		}
	}

	return b.Build()
}
