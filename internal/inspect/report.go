package inspect

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"inject-visitor/internal/annotation"
	"inject-visitor/internal/diagnostic"
)

// Output formats.
const (
	FormatLine = "line"
	FormatYAML = "yaml"
	FormatSpew = "spew"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatLine, FormatYAML, FormatSpew}
}

// Report is the result of one inspection.
type Report struct {
	Classes     []ClassReport          `yaml:"classes"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty"`
}

// ClassReport describes one class element.
type ClassReport struct {
	Name        string                       `yaml:"name"`
	SimpleName  string                       `yaml:"simpleName"`
	Kind        string                       `yaml:"kind"`
	Inner       bool                         `yaml:"inner,omitempty"`
	Interface   bool                         `yaml:"interface,omitempty"`
	Annotations map[string]annotation.Values `yaml:"annotations,omitempty"`
	Generics    []string                     `yaml:"generics,omitempty"`
	Fields      []VariableReport             `yaml:"fields,omitempty"`
	Methods     []MethodReport               `yaml:"methods,omitempty"`
}

// VariableReport describes a field or a parameter.
type VariableReport struct {
	Name        string                       `yaml:"name"`
	Type        string                       `yaml:"type"`
	Absent      bool                         `yaml:"absent,omitempty"` // Type is the raw host type
	Annotations map[string]annotation.Values `yaml:"annotations,omitempty"`
}

// MethodReport describes a method or constructor.
type MethodReport struct {
	Name        string                       `yaml:"name"`
	Constructor bool                         `yaml:"constructor,omitempty"`
	Returns     string                       `yaml:"returns"`
	Absent      bool                         `yaml:"absent,omitempty"`
	Parameters  []VariableReport             `yaml:"parameters,omitempty"`
	Annotations map[string]annotation.Values `yaml:"annotations,omitempty"`
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatLine, "":
		return r.writeLines(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}

		return enc.Close()
	case FormatSpew:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, r)

		return nil
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}

func (r *Report) writeLines(w io.Writer) error {
	var b strings.Builder

	for _, c := range r.Classes {
		fmt.Fprintf(&b, "%s %s%s\n", c.Kind, c.Name, annotationSuffix(c.Annotations))
		if c.Inner {
			b.WriteString("  inner\n")
		}
		if len(c.Generics) > 0 {
			fmt.Fprintf(&b, "  generics <%s>\n", strings.Join(c.Generics, ", "))
		}

		for _, f := range c.Fields {
			fmt.Fprintf(&b, "  field %s %s%s\n", f.Name, typeText(f.Type, f.Absent), annotationSuffix(f.Annotations))
		}

		for _, m := range c.Methods {
			params := make([]string, 0, len(m.Parameters))
			for _, p := range m.Parameters {
				params = append(params, p.Name+" "+typeText(p.Type, p.Absent)+annotationSuffix(p.Annotations))
			}

			kind := "method"
			if m.Constructor {
				kind = "constructor"
			}

			fmt.Fprintf(&b, "  %s %s(%s) %s%s\n", kind, m.Name, strings.Join(params, ", "),
				typeText(m.Returns, m.Absent), annotationSuffix(m.Annotations))
		}
	}

	for _, d := range r.Diagnostics.All() {
		fmt.Fprintf(&b, "%s: %s\n", d.Severity, d)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func typeText(t string, absent bool) string {
	if absent {
		return "~" + t
	}

	return t
}

func annotationSuffix(annotations map[string]annotation.Values) string {
	if len(annotations) == 0 {
		return ""
	}

	names := make([]string, 0, len(annotations))
	for name := range annotations {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(" @" + name)

		values := annotations[name]
		if len(values) == 0 {
			continue
		}

		members := make([]string, 0, len(values))
		for member := range values {
			members = append(members, member)
		}
		sort.Strings(members)

		args := make([]string, 0, len(members))
		for _, member := range members {
			args = append(args, member+"="+strings.Join(values[member], "|"))
		}
		b.WriteString("(" + strings.Join(args, ", ") + ")")
	}

	return b.String()
}

func annotationsOf(md annotation.Metadata) map[string]annotation.Values {
	if md.IsEmpty() {
		return nil
	}

	out := make(map[string]annotation.Values, md.Len())
	for _, name := range md.Names() {
		values, _ := md.Values(name)
		out[name] = values
	}

	return out
}
