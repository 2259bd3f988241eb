package schema

import (
	"fmt"
	"strings"
)

// RefKind distinguishes named references from collection constructors.
type RefKind string

const (
	RefNamed RefKind = "named"
	RefList  RefKind = "list"
	RefSet   RefKind = "set"
	RefMap   RefKind = "map"
)

// Primitive type names understood without declaration.
const (
	PrimString   = "string"
	PrimDouble   = "double"
	PrimFloat    = "float"
	PrimInt32    = "i32"
	PrimInt64    = "i64"
	PrimBool     = "bool"
	PrimDateTime = "dateTime"
)

var primitives = map[string]struct{}{
	PrimString:   {},
	PrimDouble:   {},
	PrimFloat:    {},
	PrimInt32:    {},
	PrimInt64:    {},
	PrimBool:     {},
	PrimDateTime: {},
}

// IsPrimitive reports whether name is a built-in scalar type.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}

// TypeRef is a parsed type expression such as "list(MarketCatalogue)" or "map(string,Matches)".
type TypeRef struct {
	Kind RefKind
	// Name is set for RefNamed.
	Name string
	// Key is set for RefMap.
	Key *TypeRef
	// Elem is set for RefList, RefSet and RefMap.
	Elem *TypeRef
}

// Named returns a reference to a primitive or declared type.
func Named(name string) TypeRef { return TypeRef{Kind: RefNamed, Name: name} }

// IsList reports whether r is an ordered sequence (list or set).
func (r TypeRef) IsList() bool { return r.Kind == RefList || r.Kind == RefSet }

// IsCollection reports whether r is a list, set or map.
func (r TypeRef) IsCollection() bool { return r.Kind != RefNamed }

// Leaves returns every named type the expression mentions, in order.
func (r TypeRef) Leaves() []string {
	switch r.Kind {
	case RefNamed:
		return []string{r.Name}
	case RefMap:
		return append(r.Key.Leaves(), r.Elem.Leaves()...)
	default:
		return r.Elem.Leaves()
	}
}

func (r TypeRef) String() string {
	switch r.Kind {
	case RefNamed:
		return r.Name
	case RefMap:
		return fmt.Sprintf("map(%s,%s)", r.Key, r.Elem)
	default:
		return fmt.Sprintf("%s(%s)", r.Kind, r.Elem)
	}
}

// ParseTypeRef parses the IDL type grammar. Whitespace is ignored.
func ParseTypeRef(s string) (TypeRef, error) {
	p := &refParser{src: strings.Join(strings.Fields(s), "")}
	r, err := p.parse()
	if err != nil {
		return TypeRef{}, err
	}
	if p.pos != len(p.src) {
		return TypeRef{}, fmt.Errorf("invalid type %q: trailing %q", s, p.src[p.pos:])
	}
	return r, nil
}

type refParser struct {
	src string
	pos int
}

func (p *refParser) parse() (TypeRef, error) {
	ident := p.ident()
	if ident == "" {
		return TypeRef{}, fmt.Errorf("invalid type %q: expected identifier at %d", p.src, p.pos)
	}
	if !p.accept('(') {
		return Named(ident), nil
	}
	switch RefKind(ident) {
	case RefList, RefSet:
		elem, err := p.parse()
		if err != nil {
			return TypeRef{}, err
		}
		if !p.accept(')') {
			return TypeRef{}, fmt.Errorf("invalid type %q: expected ')' at %d", p.src, p.pos)
		}
		return TypeRef{Kind: RefKind(ident), Elem: &elem}, nil
	case RefMap:
		key, err := p.parse()
		if err != nil {
			return TypeRef{}, err
		}
		if !p.accept(',') {
			return TypeRef{}, fmt.Errorf("invalid type %q: expected ',' at %d", p.src, p.pos)
		}
		elem, err := p.parse()
		if err != nil {
			return TypeRef{}, err
		}
		if !p.accept(')') {
			return TypeRef{}, fmt.Errorf("invalid type %q: expected ')' at %d", p.src, p.pos)
		}
		return TypeRef{Kind: RefMap, Key: &key, Elem: &elem}, nil
	default:
		return TypeRef{}, fmt.Errorf("invalid type %q: unknown constructor %q", p.src, ident)
	}
}

func (p *refParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9' && p.pos > start) {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *refParser) accept(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}
