package schema

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/floegence/bfapi/bferrors"
)

// element is a generic XML node; the parser walks it strictly so unknown shapes are rejected.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

// ParseBytes parses an interface document held in memory.
func ParseBytes(doc []byte) (*Model, error) {
	return Parse(bytes.NewReader(doc))
}

// Parse reads an interface document into a Model.
//
// The document must already be patched for vendor quirks; every unknown element or attribute
// is a schema error.
func Parse(r io.Reader) (*Model, error) {
	var root element
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, schemaErr(bferrors.CodeInvalidDocument, "", "decode: %v", err)
	}
	if root.XMLName.Local != "interface" {
		return nil, schemaErr(bferrors.CodeInvalidDocument, root.XMLName.Local, "root element must be <interface>")
	}
	p := &parser{
		model: &Model{},
		types: make(map[string]struct{}),
		ops:   make(map[string]struct{}),
	}
	if err := p.parseInterface(&root); err != nil {
		return nil, err
	}
	p.model.index()
	return p.model, nil
}

type parser struct {
	model *Model
	types map[string]struct{}
	ops   map[string]struct{}
	next  int
}

func schemaErr(code bferrors.Code, subject string, format string, args ...any) error {
	return bferrors.New(bferrors.KindSchema, bferrors.StageParse, code, subject, format, args...)
}

func (p *parser) parseInterface(el *element) error {
	for _, a := range el.Attrs {
		if a.Name.Space != "" {
			continue
		}
		switch a.Name.Local {
		case "name":
			p.model.Interface = strings.TrimSpace(a.Value)
		case "version":
			p.model.Version = strings.TrimSpace(a.Value)
		case "namespace":
			p.model.Namespace = strings.TrimSpace(a.Value)
		}
	}
	if p.model.Interface == "" {
		return schemaErr(bferrors.CodeMissingAttribute, "interface", "missing attribute %q", "name")
	}
	if !isIdent(p.model.Interface) {
		return schemaErr(bferrors.CodeInvalidAttribute, "interface", "invalid name %q", p.model.Interface)
	}
	if p.model.Version == "" {
		return schemaErr(bferrors.CodeMissingAttribute, "interface", "missing attribute %q", "version")
	}
	if err := noText(el, "interface"); err != nil {
		return err
	}
	seenDescription := false
	for i := range el.Children {
		child := &el.Children[i]
		var err error
		switch child.XMLName.Local {
		case "description":
			if seenDescription {
				return schemaErr(bferrors.CodeInvalidDocument, "interface", "more than one <description>")
			}
			seenDescription = true
			p.model.Description, err = parseDescription(child, "interface")
		case "operation":
			err = p.parseOperation(child)
		case "dataType":
			err = p.parseDataType(child)
		case "exceptionType":
			err = p.parseExceptionType(child)
		case "simpleType":
			err = p.parseSimpleType(child)
		default:
			err = schemaErr(bferrors.CodeUnknownElement, "interface", "unknown element <%s>", child.XMLName.Local)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) declare(td *TypeDefinition) error {
	if IsPrimitive(td.Name) {
		return schemaErr(bferrors.CodeInvalidAttribute, td.Name, "type name shadows a primitive")
	}
	if _, ok := p.types[td.Name]; ok {
		return schemaErr(bferrors.CodeDuplicateType, td.Name, "type declared more than once")
	}
	p.types[td.Name] = struct{}{}
	td.Index = p.next
	p.next++
	p.model.Types = append(p.model.Types, td)
	return nil
}

func (p *parser) parseOperation(el *element) error {
	a := takeAttrs(el, "operation")
	name, err := a.required("name")
	if err != nil {
		return err
	}
	op := &Operation{Name: name, Since: a.optional("since")}
	if err := a.done(); err != nil {
		return err
	}
	if !isIdent(name) {
		return schemaErr(bferrors.CodeInvalidAttribute, name, "invalid operation name")
	}
	if _, ok := p.ops[name]; ok {
		return schemaErr(bferrors.CodeDuplicateOperation, name, "operation declared more than once")
	}
	p.ops[name] = struct{}{}
	if err := noText(el, name); err != nil {
		return err
	}

	var params *element
	for i := range el.Children {
		child := &el.Children[i]
		switch child.XMLName.Local {
		case "description":
			if op.Description, err = parseDescription(child, name); err != nil {
				return err
			}
		case "parameters":
			if params != nil {
				return schemaErr(bferrors.CodeInvalidDocument, name, "more than one <parameters>")
			}
			params = child
		default:
			return schemaErr(bferrors.CodeUnknownElement, name, "unknown element <%s>", child.XMLName.Local)
		}
	}
	if params == nil {
		return schemaErr(bferrors.CodeInvalidDocument, name, "missing <parameters>")
	}
	if err := p.parseParameters(params, op); err != nil {
		return err
	}
	op.Index = len(p.model.Operations)
	p.model.Operations = append(p.model.Operations, op)
	return nil
}

func (p *parser) parseParameters(el *element, op *Operation) error {
	if err := noAttrs(el, op.Name); err != nil {
		return err
	}
	if err := noText(el, op.Name); err != nil {
		return err
	}
	seenRequest, seenResponse, seenExceptions := false, false, false
	for i := range el.Children {
		child := &el.Children[i]
		switch child.XMLName.Local {
		case "request":
			if seenRequest {
				return schemaErr(bferrors.CodeInvalidDocument, op.Name, "more than one <request>")
			}
			seenRequest = true
			if err := noAttrs(child, op.Name); err != nil {
				return err
			}
			if err := noText(child, op.Name); err != nil {
				return err
			}
			fields, err := p.parseFieldList(child.Children, op.Name, "")
			if err != nil {
				return err
			}
			op.Parameters = fields
		case "simpleResponse":
			if seenResponse {
				return schemaErr(bferrors.CodeInvalidDocument, op.Name, "more than one <simpleResponse>")
			}
			seenResponse = true
			ref, desc, err := parseTypedWithDescription(child, op.Name)
			if err != nil {
				return err
			}
			op.ReturnType = ref
			op.ReturnDescription = desc
		case "exceptions":
			if seenExceptions {
				return schemaErr(bferrors.CodeInvalidDocument, op.Name, "more than one <exceptions>")
			}
			seenExceptions = true
			names, err := parseExceptions(child, op.Name)
			if err != nil {
				return err
			}
			op.DeclaredExceptions = names
		default:
			return schemaErr(bferrors.CodeUnknownElement, op.Name, "unknown element <%s>", child.XMLName.Local)
		}
	}
	if !seenResponse {
		return schemaErr(bferrors.CodeInvalidDocument, op.Name, "missing <simpleResponse>")
	}
	return nil
}

func parseExceptions(el *element, subject string) ([]string, error) {
	if err := noAttrs(el, subject); err != nil {
		return nil, err
	}
	if err := noText(el, subject); err != nil {
		return nil, err
	}
	var out []string
	seen := make(map[string]struct{})
	for i := range el.Children {
		child := &el.Children[i]
		if child.XMLName.Local != "exception" {
			return nil, schemaErr(bferrors.CodeUnknownElement, subject, "unknown element <%s>", child.XMLName.Local)
		}
		ref, _, err := parseTypedWithDescription(child, subject)
		if err != nil {
			return nil, err
		}
		if ref.Kind != RefNamed {
			return nil, schemaErr(bferrors.CodeInvalidType, subject, "exception type %q must be a name", ref)
		}
		if _, ok := seen[ref.Name]; ok {
			continue
		}
		seen[ref.Name] = struct{}{}
		out = append(out, ref.Name)
	}
	return out, nil
}

// parseTypedWithDescription handles <simpleResponse type> and <exception type>.
func parseTypedWithDescription(el *element, subject string) (TypeRef, string, error) {
	a := takeAttrs(el, subject)
	raw, err := a.required("type")
	if err != nil {
		return TypeRef{}, "", err
	}
	if err := a.done(); err != nil {
		return TypeRef{}, "", err
	}
	ref, err := ParseTypeRef(raw)
	if err != nil {
		return TypeRef{}, "", schemaErr(bferrors.CodeInvalidType, subject, "%v", err)
	}
	if err := noText(el, subject); err != nil {
		return TypeRef{}, "", err
	}
	desc := ""
	for i := range el.Children {
		child := &el.Children[i]
		if child.XMLName.Local != "description" {
			return TypeRef{}, "", schemaErr(bferrors.CodeUnknownElement, subject, "unknown element <%s>", child.XMLName.Local)
		}
		if desc, err = parseDescription(child, subject); err != nil {
			return TypeRef{}, "", err
		}
	}
	return ref, desc, nil
}

func (p *parser) parseDataType(el *element) error {
	a := takeAttrs(el, "dataType")
	name, err := a.required("name")
	if err != nil {
		return err
	}
	if err := a.done(); err != nil {
		return err
	}
	if !isIdent(name) {
		return schemaErr(bferrors.CodeInvalidAttribute, name, "invalid type name")
	}
	if err := noText(el, name); err != nil {
		return err
	}
	// Request vs Response is settled by the resolver once return types are known.
	td := &TypeDefinition{Name: name, Kind: KindRequest}
	var params []element
	for i := range el.Children {
		child := el.Children[i]
		switch child.XMLName.Local {
		case "description":
			if td.Description, err = parseDescription(&child, name); err != nil {
				return err
			}
		case "parameter":
			params = append(params, child)
		default:
			return schemaErr(bferrors.CodeUnknownElement, name, "unknown element <%s>", child.XMLName.Local)
		}
	}
	if td.Fields, err = p.parseFieldList(params, name, ""); err != nil {
		return err
	}
	return p.declare(td)
}

func (p *parser) parseExceptionType(el *element) error {
	a := takeAttrs(el, "exceptionType")
	name, err := a.required("name")
	if err != nil {
		return err
	}
	prefix, err := a.required("prefix")
	if err != nil {
		return err
	}
	if err := a.done(); err != nil {
		return err
	}
	if !isIdent(name) {
		return schemaErr(bferrors.CodeInvalidAttribute, name, "invalid type name")
	}
	if err := noText(el, name); err != nil {
		return err
	}
	td := &TypeDefinition{Name: name, Kind: KindException, Prefix: prefix}
	var params []element
	for i := range el.Children {
		child := el.Children[i]
		switch child.XMLName.Local {
		case "description":
			if td.Description, err = parseDescription(&child, name); err != nil {
				return err
			}
		case "parameter":
			params = append(params, child)
		default:
			return schemaErr(bferrors.CodeUnknownElement, name, "unknown element <%s>", child.XMLName.Local)
		}
	}
	// Lifted enums are declared ahead of the exception that owns them.
	if td.Fields, err = p.parseFieldList(params, name, prefix); err != nil {
		return err
	}
	return p.declare(td)
}

func (p *parser) parseSimpleType(el *element) error {
	a := takeAttrs(el, "simpleType")
	name, err := a.required("name")
	if err != nil {
		return err
	}
	raw, err := a.required("type")
	if err != nil {
		return err
	}
	if err := a.done(); err != nil {
		return err
	}
	if !isIdent(name) {
		return schemaErr(bferrors.CodeInvalidAttribute, name, "invalid type name")
	}
	ref, err := ParseTypeRef(raw)
	if err != nil {
		return schemaErr(bferrors.CodeInvalidType, name, "%v", err)
	}
	if err := noText(el, name); err != nil {
		return err
	}
	td := &TypeDefinition{Name: name, Kind: KindSimple, Underlying: &ref}
	seenValues := false
	for i := range el.Children {
		child := &el.Children[i]
		switch child.XMLName.Local {
		case "description":
			if td.Description, err = parseDescription(child, name); err != nil {
				return err
			}
		case "validValues":
			if seenValues {
				return schemaErr(bferrors.CodeInvalidDocument, name, "more than one <validValues>")
			}
			seenValues = true
			if td.Values, err = parseValidValues(child, name, false); err != nil {
				return err
			}
			td.Kind = KindEnum
		default:
			return schemaErr(bferrors.CodeUnknownElement, name, "unknown element <%s>", child.XMLName.Local)
		}
	}
	return p.declare(td)
}

// parseFieldList parses ordered <parameter> elements. A non-empty exceptionPrefix means the
// parameters belong to an exception type called owner and may carry inline <validValues>.
func (p *parser) parseFieldList(children []element, owner string, exceptionPrefix string) ([]Field, error) {
	fields := make([]Field, 0, len(children))
	seen := make(map[string]struct{}, len(children))
	for i := range children {
		child := &children[i]
		if child.XMLName.Local != "parameter" {
			return nil, schemaErr(bferrors.CodeUnknownElement, owner, "unknown element <%s>", child.XMLName.Local)
		}
		f, err := p.parseParameter(child, owner, exceptionPrefix)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[f.Name]; ok {
			return nil, schemaErr(bferrors.CodeDuplicateField, owner+"."+f.Name, "field declared more than once")
		}
		seen[f.Name] = struct{}{}
		fields = append(fields, f)
	}
	return fields, nil
}

func (p *parser) parseParameter(el *element, owner string, exceptionPrefix string) (Field, error) {
	a := takeAttrs(el, owner)
	name, err := a.required("name")
	if err != nil {
		return Field{}, err
	}
	subject := owner + "." + name
	raw, err := a.required("type")
	if err != nil {
		return Field{}, err
	}
	mandatory := a.optional("mandatory")
	if err := a.done(); err != nil {
		return Field{}, err
	}
	if !isIdent(name) {
		return Field{}, schemaErr(bferrors.CodeInvalidAttribute, subject, "invalid field name")
	}
	f := Field{Name: name, Optional: true}
	switch mandatory {
	case "", "false":
	case "true":
		f.Optional = false
	default:
		return Field{}, schemaErr(bferrors.CodeInvalidAttribute, subject, "mandatory must be true or false, got %q", mandatory)
	}
	if f.Type, err = ParseTypeRef(raw); err != nil {
		return Field{}, schemaErr(bferrors.CodeInvalidType, subject, "%v", err)
	}
	if err := noText(el, subject); err != nil {
		return Field{}, err
	}
	for i := range el.Children {
		child := &el.Children[i]
		switch {
		case child.XMLName.Local == "description":
			if f.Description, err = parseDescription(child, subject); err != nil {
				return Field{}, err
			}
		case child.XMLName.Local == "validValues" && exceptionPrefix != "":
			values, err := parseValidValues(child, subject, true)
			if err != nil {
				return Field{}, err
			}
			underlying := f.Type
			lifted := &TypeDefinition{
				Name:        owner + upperFirst(name),
				Kind:        KindEnum,
				Description: f.Description,
				Underlying:  &underlying,
				Values:      values,
				Prefix:      exceptionPrefix,
			}
			if err := p.declare(lifted); err != nil {
				return Field{}, err
			}
			f.Type = Named(lifted.Name)
		default:
			return Field{}, schemaErr(bferrors.CodeUnknownElement, subject, "unknown element <%s>", child.XMLName.Local)
		}
	}
	return f, nil
}

func parseValidValues(el *element, subject string, withID bool) ([]EnumValue, error) {
	if err := noAttrs(el, subject); err != nil {
		return nil, err
	}
	if err := noText(el, subject); err != nil {
		return nil, err
	}
	values := make([]EnumValue, 0, len(el.Children))
	seen := make(map[string]struct{}, len(el.Children))
	for i := range el.Children {
		child := &el.Children[i]
		if child.XMLName.Local != "value" {
			return nil, schemaErr(bferrors.CodeUnknownElement, subject, "unknown element <%s>", child.XMLName.Local)
		}
		a := takeAttrs(child, subject)
		name, err := a.required("name")
		if err != nil {
			return nil, err
		}
		v := EnumValue{Name: name, WireLiteral: name}
		if withID {
			raw, err := a.required("id")
			if err != nil {
				return nil, err
			}
			id, err := strconv.Atoi(raw)
			if err != nil || id < 0 {
				return nil, schemaErr(bferrors.CodeInvalidAttribute, subject+"."+name, "id must be a non-negative integer, got %q", raw)
			}
			v.ID = &id
		}
		if err := a.done(); err != nil {
			return nil, err
		}
		if _, ok := seen[name]; ok {
			return nil, schemaErr(bferrors.CodeDuplicateValue, subject+"."+name, "value declared more than once")
		}
		seen[name] = struct{}{}
		if err := noText(child, subject+"."+name); err != nil {
			return nil, err
		}
		for j := range child.Children {
			d := &child.Children[j]
			if d.XMLName.Local != "description" {
				return nil, schemaErr(bferrors.CodeUnknownElement, subject+"."+name, "unknown element <%s>", d.XMLName.Local)
			}
			if v.Description, err = parseDescription(d, subject+"."+name); err != nil {
				return nil, err
			}
		}
		values = append(values, v)
	}
	return values, nil
}

func parseDescription(el *element, subject string) (string, error) {
	if err := noAttrs(el, subject); err != nil {
		return "", err
	}
	if len(el.Children) != 0 {
		return "", schemaErr(bferrors.CodeUnknownElement, subject, "unexpected <%s> inside <description>", el.Children[0].XMLName.Local)
	}
	lines := strings.Split(el.Text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), nil
}

type attrs struct {
	subject string
	m       map[string]string
}

func takeAttrs(el *element, subject string) *attrs {
	a := &attrs{subject: subject, m: make(map[string]string, len(el.Attrs))}
	for _, x := range el.Attrs {
		key := x.Name.Local
		if x.Name.Space != "" {
			key = x.Name.Space + ":" + key
		}
		a.m[key] = x.Value
	}
	return a
}

func (a *attrs) required(name string) (string, error) {
	v, ok := a.m[name]
	delete(a.m, name)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", schemaErr(bferrors.CodeMissingAttribute, a.subject, "missing attribute %q", name)
	}
	return v, nil
}

func (a *attrs) optional(name string) string {
	v := a.m[name]
	delete(a.m, name)
	return strings.TrimSpace(v)
}

func (a *attrs) done() error {
	if len(a.m) == 0 {
		return nil
	}
	left := make([]string, 0, len(a.m))
	for k := range a.m {
		left = append(left, k)
	}
	sort.Strings(left)
	return schemaErr(bferrors.CodeUnknownAttribute, a.subject, "unknown attribute %q", left[0])
}

func noAttrs(el *element, subject string) error {
	return takeAttrs(el, subject).done()
}

func noText(el *element, subject string) error {
	if strings.TrimSpace(el.Text) != "" {
		return schemaErr(bferrors.CodeUnexpectedText, subject, "unexpected text in <%s>", el.XMLName.Local)
	}
	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// String renders a short summary, used by diagnostics.
func (td *TypeDefinition) String() string {
	return fmt.Sprintf("%s %s", td.Kind, td.Name)
}
