package codegen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/resolve"
	"github.com/floegence/bfapi/schema"
)

const (
	// DefaultRuntime is the import path of the package generated code calls into.
	DefaultRuntime = "github.com/floegence/bfapi/jsonrpc"
	// DefaultPackage is the package clause of generated files.
	DefaultPackage = "v1"

	header = "Code generated by bfapi. DO NOT EDIT."

	TypesFile      = "types.gen.go"
	OperationsFile = "operations.gen.go"
)

// Options controls rendering.
type Options struct {
	// Package is the generated package name; DefaultPackage when empty.
	Package string
	// Runtime is the import path of the jsonrpc runtime; DefaultRuntime when empty.
	Runtime string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.Runtime == "" {
		o.Runtime = DefaultRuntime
	}
	return o
}

// File is one rendered source file.
type File struct {
	Name    string
	Content []byte
}

// Emit renders the resolved model into Go source. Either every file renders or none is returned.
func Emit(res *resolve.Result, opts Options) ([]File, error) {
	e := &emitter{
		res:   res,
		opts:  opts.withDefaults(),
		scope: make(map[string]string),
	}
	if err := e.reserveNames(); err != nil {
		return nil, err
	}
	types, err := e.render(TypesFile, e.types)
	if err != nil {
		return nil, err
	}
	ops, err := e.render(OperationsFile, e.operations)
	if err != nil {
		return nil, err
	}
	return []File{types, ops}, nil
}

type emitter struct {
	res  *resolve.Result
	opts Options
	// scope maps package-level identifiers to what declared them.
	scope map[string]string
}

func emitErr(code bferrors.Code, subject string, format string, args ...any) error {
	return bferrors.New(bferrors.KindResolution, bferrors.StageEmit, code, subject, format, args...)
}

func (e *emitter) claim(ident string, owner string) error {
	if prev, ok := e.scope[ident]; ok {
		return emitErr(bferrors.CodeIdentifierCollision, owner, "identifier %s already declared by %s", ident, prev)
	}
	e.scope[ident] = owner
	return nil
}

func (e *emitter) reserveNames() error {
	for _, ident := range []string{"Client", "NewClient", "ExceptionTypes"} {
		if err := e.claim(ident, "runtime"); err != nil {
			return err
		}
	}
	for _, td := range e.res.Order {
		if err := e.claim(exportName(td.Name), td.Name); err != nil {
			return err
		}
		if td.Kind == schema.KindEnum {
			for _, v := range td.Values {
				ident := enumIdent(v.Name)
				if ident == "" {
					return emitErr(bferrors.CodeIdentifierCollision, td.Name+"."+v.Name, "value has no identifier characters")
				}
				if err := e.claim(exportName(td.Name)+ident, td.Name+"."+v.Name); err != nil {
					return err
				}
			}
		}
		if td.Kind.IsRecord() {
			fields := td.Fields
			if td.Kind == schema.KindException {
				// The generated Error and ExceptionName methods share the field namespace.
				fields = append([]schema.Field{{Name: "Error"}, {Name: "ExceptionName"}}, fields...)
			}
			if err := checkFieldNames(td.Name, fields); err != nil {
				return err
			}
		}
	}
	for _, op := range e.res.Model.Operations {
		for _, ident := range []string{exportName(op.Name) + "Request", "Method" + exportName(op.Name), lowerFirst(op.Name) + "Exceptions"} {
			if err := e.claim(ident, op.Name); err != nil {
				return err
			}
		}
		if err := checkFieldNames(op.Name, op.Parameters); err != nil {
			return err
		}
	}
	return nil
}

func checkFieldNames(owner string, fields []schema.Field) error {
	seen := make(map[string]string, len(fields))
	for _, f := range fields {
		ident := exportName(f.Name)
		if prev, ok := seen[ident]; ok {
			return emitErr(bferrors.CodeIdentifierCollision, owner+"."+f.Name, "field identifier %s already used by %s", ident, prev)
		}
		seen[ident] = f.Name
	}
	return nil
}

func (e *emitter) render(name string, body func(f *jen.File)) (File, error) {
	f := jen.NewFile(e.opts.Package)
	f.HeaderComment(header)
	f.ImportName(e.opts.Runtime, "jsonrpc")
	body(f)
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return File{}, emitErr(bferrors.CodeRenderFailed, name, "%v", err)
	}
	return File{Name: name, Content: buf.Bytes()}, nil
}

func comment(lines []string) []jen.Code {
	out := make([]jen.Code, 0, len(lines))
	for _, line := range lines {
		out = append(out, jen.Comment(line))
	}
	return out
}

func addComment(f *jen.File, text string) {
	for _, line := range splitLines(text) {
		f.Comment(line)
	}
}

func (e *emitter) types(f *jen.File) {
	for _, td := range e.res.Order {
		f.Line()
		addComment(f, td.Description)
		name := exportName(td.Name)
		switch td.Kind {
		case schema.KindSimple:
			f.Type().Id(name).Add(e.goType(*td.Underlying))
		case schema.KindEnum:
			e.enum(f, td)
		default:
			f.Type().Id(name).Struct(e.fields(td.Fields)...)
			if td.Kind == schema.KindException {
				e.exceptionMethods(f, td)
			}
		}
	}
}

func (e *emitter) enum(f *jen.File, td *schema.TypeDefinition) {
	name := exportName(td.Name)
	f.Type().Id(name).String()

	if len(td.Values) == 0 {
		return
	}
	defs := make([]jen.Code, 0, len(td.Values)*2)
	idents := make([]jen.Code, 0, len(td.Values))
	for _, v := range td.Values {
		ident := name + enumIdent(v.Name)
		defs = append(defs, comment(splitLines(v.Description))...)
		defs = append(defs, jen.Id(ident).Id(name).Op("=").Lit(v.WireLiteral))
		idents = append(idents, jen.Id(ident))
	}
	f.Line()
	f.Const().Defs(defs...)

	f.Line()
	f.Commentf("Valid reports whether v is a declared %s value.", name)
	f.Func().Params(jen.Id("v").Id(name)).Id("Valid").Params().Bool().Block(
		jen.Switch(jen.Id("v")).Block(
			jen.Case(idents...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)

	if td.Prefix == "" {
		return
	}
	var example string
	cases := make([]jen.Code, 0, len(td.Values))
	for _, v := range td.Values {
		if v.ID == nil {
			continue
		}
		code := fmt.Sprintf("%s-%04d", td.Prefix, *v.ID)
		if example == "" {
			example = code
		}
		cases = append(cases, jen.Case(jen.Id(name+enumIdent(v.Name))).Block(jen.Return(jen.Lit(code))))
	}
	if len(cases) == 0 {
		return
	}
	f.Line()
	f.Commentf("Code returns the vendor error code of v, for example %q.", example)
	f.Func().Params(jen.Id("v").Id(name)).Id("Code").Params().String().Block(
		jen.Switch(jen.Id("v")).Block(cases...),
		jen.Return(jen.Lit("")),
	)
}

func (e *emitter) exceptionMethods(f *jen.File, td *schema.TypeDefinition) {
	name := exportName(td.Name)
	f.Line()
	f.Func().Params(jen.Id("e").Op("*").Id(name)).Id("Error").Params().String().Block(
		jen.Return(jen.Qual(e.opts.Runtime, "FormatException").Call(jen.Id("e"))),
	)
	f.Line()
	f.Comment("ExceptionName returns the name the service uses for this exception on the wire.")
	f.Func().Params(jen.Op("*").Id(name)).Id("ExceptionName").Params().String().Block(
		jen.Return(jen.Lit(td.Name)),
	)
}

func (e *emitter) fields(fields []schema.Field) []jen.Code {
	out := make([]jen.Code, 0, len(fields)*2)
	for _, fd := range fields {
		out = append(out, comment(splitLines(fd.Description))...)
		typ := e.goType(fd.Type)
		tag := fd.Name
		if fd.Optional {
			if !fd.Type.IsCollection() {
				typ = jen.Op("*").Add(typ)
			}
			tag += ",omitzero"
		}
		out = append(out, jen.Id(exportName(fd.Name)).Add(typ).Tag(map[string]string{"json": tag}))
	}
	return out
}

func (e *emitter) goType(ref schema.TypeRef) *jen.Statement {
	switch ref.Kind {
	case schema.RefList, schema.RefSet:
		return jen.Index().Add(e.goType(*ref.Elem))
	case schema.RefMap:
		return jen.Map(e.goType(*ref.Key)).Add(e.goType(*ref.Elem))
	}
	switch ref.Name {
	case schema.PrimString:
		return jen.String()
	case schema.PrimDouble:
		return jen.Float64()
	case schema.PrimFloat:
		return jen.Float32()
	case schema.PrimInt32:
		return jen.Int32()
	case schema.PrimInt64:
		return jen.Int64()
	case schema.PrimBool:
		return jen.Bool()
	case schema.PrimDateTime:
		return jen.Qual("time", "Time")
	default:
		return jen.Id(exportName(ref.Name))
	}
}

// returnType renders an operation result; records come back as pointers.
func (e *emitter) returnType(ref schema.TypeRef) *jen.Statement {
	if ref.Kind == schema.RefNamed {
		if td, ok := e.res.Model.Type(ref.Name); ok && td.Kind.IsRecord() {
			return jen.Op("*").Id(exportName(td.Name))
		}
	}
	return e.goType(ref)
}

func (e *emitter) operations(f *jen.File) {
	m := e.res.Model
	rt := e.opts.Runtime

	if len(m.Operations) > 0 {
		defs := make([]jen.Code, 0, len(m.Operations))
		for _, op := range m.Operations {
			defs = append(defs, jen.Id("Method"+exportName(op.Name)).Op("=").Lit(m.MethodPrefix()+op.Name))
		}
		f.Line()
		f.Comment("Wire method names.")
		f.Const().Defs(defs...)
	}

	f.Line()
	f.Commentf("Client exposes every %s operation over a jsonrpc.Caller.", m.Interface)
	f.Type().Id("Client").Struct(jen.Id("c").Qual(rt, "Caller"))
	f.Line()
	f.Func().Id("NewClient").Params(jen.Id("c").Qual(rt, "Caller")).Op("*").Id("Client").Block(
		jen.Return(jen.Op("&").Id("Client").Values(jen.Dict{jen.Id("c"): jen.Id("c")})),
	)

	f.Line()
	f.Comment("ExceptionTypes lists every exception declared by the interface.")
	f.Func().Id("ExceptionTypes").Params().Index().Qual(rt, "ExceptionType").Block(
		jen.Return(jen.Index().Qual(rt, "ExceptionType").ValuesFunc(func(g *jen.Group) {
			for _, td := range e.res.Order {
				if td.Kind == schema.KindException {
					g.Qual(rt, "Declare").Types(jen.Id(exportName(td.Name))).Call()
				}
			}
		})),
	)

	for _, op := range m.Operations {
		e.operation(f, op)
	}
}

func (e *emitter) operation(f *jen.File, op *schema.Operation) {
	rt := e.opts.Runtime
	name := exportName(op.Name)
	reqType := name + "Request"
	excVar := lowerFirst(op.Name) + "Exceptions"

	f.Line()
	f.Commentf("%s holds the parameters of %s.", reqType, op.Name)
	f.Type().Id(reqType).Struct(e.fields(op.Parameters)...)

	f.Line()
	f.Var().Id(excVar).Op("=").Index().Qual(rt, "ExceptionType").ValuesFunc(func(g *jen.Group) {
		for _, ex := range op.DeclaredExceptions {
			g.Qual(rt, "Declare").Types(jen.Id(exportName(ex))).Call()
		}
	})

	f.Line()
	lines := splitLines(op.Description)
	if op.Since != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Since "+op.Since+".")
	}
	for _, line := range lines {
		f.Comment(line)
	}
	ret := e.returnType(op.ReturnType)
	f.Func().Params(jen.Id("c").Op("*").Id("Client")).Id(name).Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("req").Op("*").Id(reqType),
	).Params(ret, jen.Error()).Block(
		jen.If(jen.Id("req").Op("==").Nil()).Block(
			jen.Id("req").Op("=").Op("&").Id(reqType).Values(),
		),
		jen.Return(jen.Qual(rt, "Call").Types(e.returnType(op.ReturnType)).Call(
			jen.Id("ctx"), jen.Id("c").Dot("c"), jen.Id("Method"+name), jen.Id("req"), jen.Id(excVar),
		)),
	)
}
