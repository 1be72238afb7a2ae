package classpath

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a set of class declarations.
type Manifest struct {
	Classes []ClassSpec `yaml:"classes"`
}

// ClassSpec declares one class-like type.
type ClassSpec struct {
	Name           string           `yaml:"name"`
	Kind           string           `yaml:"kind,omitempty"` // class (default), interface, enum, annotation, record
	Superclass     string           `yaml:"superclass,omitempty"`
	Interfaces     []string         `yaml:"interfaces,omitempty"`
	TypeParameters []TypeParamSpec  `yaml:"typeParameters,omitempty"`
	Annotations    []AnnotationSpec `yaml:"annotations,omitempty"`
	Fields         []FieldSpec      `yaml:"fields,omitempty"`
	Methods        []MethodSpec     `yaml:"methods,omitempty"`
	Classes        []ClassSpec      `yaml:"classes,omitempty"` // nested, Name is the simple name
}

// TypeParamSpec declares a type parameter and its bounds.
type TypeParamSpec struct {
	Name   string   `yaml:"name"`
	Bounds []string `yaml:"bounds,omitempty"`
}

// AnnotationSpec declares an annotation and its member values.
type AnnotationSpec struct {
	Name   string                `yaml:"name"`
	Values map[string]StringList `yaml:"values,omitempty"`
}

// FieldSpec declares a field.
type FieldSpec struct {
	Name        string           `yaml:"name"`
	Type        string           `yaml:"type"`
	Annotations []AnnotationSpec `yaml:"annotations,omitempty"`
}

// MethodSpec declares a method or constructor.
type MethodSpec struct {
	Name        string           `yaml:"name"`
	Returns     string           `yaml:"returns,omitempty"` // void when empty
	Constructor bool             `yaml:"constructor,omitempty"`
	Parameters  []FieldSpec      `yaml:"parameters,omitempty"`
	Annotations []AnnotationSpec `yaml:"annotations,omitempty"`
}

// StringList accepts either a scalar or a sequence of scalars.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: expected scalar or sequence", node.Line)
	}
}

// ParseManifest parses YAML data into a Manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse classpath manifest: %w", err)
	}

	return &m, nil
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classpath manifest %s: %w", path, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse parses a single manifest and builds a Classpath from it.
func Parse(data []byte) (*Classpath, error) {
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	return New(m)
}

// LoadFiles reads manifests from paths and builds one Classpath from all of
// them.
func LoadFiles(paths ...string) (*Classpath, error) {
	manifests := make([]*Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := LoadManifest(p)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}

	return New(manifests...)
}
