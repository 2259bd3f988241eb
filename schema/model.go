// Package schema holds the intermediate model of an API-NG interface document and its XML parser.
package schema

import (
	"fmt"
	"strings"
)

// Kind is the structural kind of a TypeDefinition.
type Kind string

const (
	KindSimple    Kind = "simple"
	KindEnum      Kind = "enum"
	KindRequest   Kind = "request"
	KindResponse  Kind = "response"
	KindException Kind = "exception"
)

// IsRecord reports whether values of this kind are structs with fields.
func (k Kind) IsRecord() bool {
	return k == KindRequest || k == KindResponse || k == KindException
}

// Field is a named, typed member of a record or an operation parameter list.
type Field struct {
	Name        string
	Type        TypeRef
	Optional    bool
	Description string
}

// IsList reports whether the field holds an ordered sequence.
func (f Field) IsList() bool { return f.Type.IsList() }

// EnumValue is one member of an enumeration.
type EnumValue struct {
	Name string
	// WireLiteral is the exact string exchanged on the wire.
	WireLiteral string
	// ID is the vendor error number; set only on values lifted from exception parameters.
	ID          *int
	Description string
}

// TypeDefinition is one declared data, simple or exception type.
type TypeDefinition struct {
	Name        string
	Kind        Kind
	Description string
	Fields      []Field
	// Underlying is the aliased type of Simple and Enum kinds.
	Underlying *TypeRef
	Values     []EnumValue
	// Prefix is the vendor error-code prefix of exception types and of enums lifted from them.
	Prefix string
	// Index is the declaration position in the source document.
	Index int
}

// Operation is one remote method with its parameters, result and declared exceptions.
type Operation struct {
	Name               string
	Since              string
	Description        string
	Parameters         []Field
	ReturnType         TypeRef
	ReturnDescription  string
	DeclaredExceptions []string
	Index              int
}

// Model is the closed set of types and operations produced by one parse.
type Model struct {
	Interface   string
	Version     string
	Namespace   string
	Description string
	Types       []*TypeDefinition
	Operations  []*Operation

	byName map[string]*TypeDefinition
}

// Type returns the declared type called name.
func (m *Model) Type(name string) (*TypeDefinition, bool) {
	if m == nil {
		return nil, false
	}
	if m.byName == nil {
		m.index()
	}
	td, ok := m.byName[name]
	return td, ok
}

func (m *Model) index() {
	m.byName = make(map[string]*TypeDefinition, len(m.Types))
	for _, td := range m.Types {
		m.byName[td.Name] = td
	}
}

// MethodPrefix returns the namespace prepended to operation names on the wire,
// for example "SportsAPING/v1.0/".
func (m *Model) MethodPrefix() string {
	parts := strings.Split(strings.TrimSpace(m.Version), ".")
	v := "v" + parts[0]
	if len(parts) > 1 {
		v += "." + parts[1]
	} else {
		v += ".0"
	}
	return fmt.Sprintf("%s/%s/", m.Interface, v)
}
