package gotypes

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"inject-visitor/internal/annotation"
	"inject-visitor/internal/host"
)

// AnnotationMetadata implements host.AnnotationResolver. Types and functions
// carry the directives of their doc comment. Fields carry their directives
// merged with their struct tag keys; a malformed tag is logged and skipped.
// Parameters and packages carry nothing.
func (u *Universe) AnnotationMetadata(d host.Declaration) (annotation.Metadata, error) {
	switch d := d.(type) {
	case *typeDecl:
		return u.directivesOf(d.obj)
	case *funcDecl:
		return u.directivesOf(d.fn)
	case *varDecl:
		if d.kind != host.DeclarationKindField {
			return annotation.Empty, nil
		}

		md, err := u.directivesOf(d.v)
		if err != nil {
			return annotation.Empty, err
		}

		tags, err := u.tagsOf(d.tag)
		if err != nil {
			u.log.Warningf("ignoring struct tag of %s: %v", d.QualifiedName(), err)
			return md, nil
		}

		return annotation.Merge(md, tags), nil
	default:
		return annotation.Empty, nil
	}
}

func (u *Universe) directivesOf(obj types.Object) (annotation.Metadata, error) {
	doc, ok := u.docs[obj]
	if !ok {
		return annotation.Empty, nil
	}

	lines := make([]string, 0, len(doc.List))
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, "//") {
			lines = append(lines, c.Text)
		}
	}

	md, err := annotation.ParseDirectives(u.directives, lines)
	if err != nil {
		return annotation.Empty, fmt.Errorf("%s: %w", obj.Name(), err)
	}

	return md, nil
}

func (u *Universe) tagsOf(tag string) (annotation.Metadata, error) {
	if tag == "" {
		return annotation.Empty, nil
	}

	md, err := annotation.ParseStructTag(tag)
	if err != nil || len(u.tagKeys) == 0 {
		return md, err
	}

	b := annotation.NewBuilder()
	for _, name := range md.Names() {
		if !slices.Contains(u.tagKeys, name) {
			continue
		}

		b.Add(name)
		values, _ := md.Values(name)
		for member, vals := range values {
			b.Set(name, member, vals...)
		}
	}

	return b.Build(), nil
}
