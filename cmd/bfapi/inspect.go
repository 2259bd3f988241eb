package main

import (
	"github.com/urfave/cli/v2"

	"github.com/floegence/bfapi/internal/cmdutil"
	"github.com/floegence/bfapi/resolve"
	"github.com/floegence/bfapi/schema"
)

type inspected struct {
	Interface    string          `json:"interface"`
	Version      string          `json:"version"`
	MethodPrefix string          `json:"method_prefix"`
	Types        []inspectedType `json:"types"`
	Operations   []inspectedOp   `json:"operations"`
}

type inspectedType struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Underlying string   `json:"underlying,omitempty"`
	Fields     []string `json:"fields,omitempty"`
	Values     []string `json:"values,omitempty"`
}

type inspectedOp struct {
	Method     string   `json:"method"`
	Params     []string `json:"params"`
	Returns    string   `json:"returns"`
	Exceptions []string `json:"exceptions,omitempty"`
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "print the resolved model of an interface document as JSON",
		UsageText: "bfapi inspect [--in FILE] [--pretty=false]",
		Flags: []cli.Flag{
			inFlag(),
			&cli.BoolFlag{Name: "pretty", Usage: "indent the output", Value: true},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			doc, err := readDocument(c.String("in"))
			if err != nil {
				return err
			}
			m, err := schema.ParseBytes(doc)
			if err != nil {
				return err
			}
			res, err := resolve.Resolve(m)
			if err != nil {
				return err
			}
			return cmdutil.WriteJSON(c.App.Writer, describe(res), c.Bool("pretty"))
		},
	}
}

// describe lists types in emission order and operations in declaration order.
func describe(res *resolve.Result) inspected {
	m := res.Model
	out := inspected{
		Interface:    m.Interface,
		Version:      m.Version,
		MethodPrefix: m.MethodPrefix(),
		Types:        make([]inspectedType, 0, len(res.Order)),
		Operations:   make([]inspectedOp, 0, len(m.Operations)),
	}
	for _, td := range res.Order {
		t := inspectedType{Name: td.Name, Kind: string(td.Kind)}
		if td.Underlying != nil {
			t.Underlying = td.Underlying.String()
		}
		for _, f := range td.Fields {
			t.Fields = append(t.Fields, fieldSig(f))
		}
		for _, v := range td.Values {
			t.Values = append(t.Values, v.WireLiteral)
		}
		out.Types = append(out.Types, t)
	}
	for _, op := range m.Operations {
		o := inspectedOp{
			Method:     m.MethodPrefix() + op.Name,
			Params:     make([]string, 0, len(op.Parameters)),
			Returns:    op.ReturnType.String(),
			Exceptions: op.DeclaredExceptions,
		}
		for _, p := range op.Parameters {
			o.Params = append(o.Params, fieldSig(p))
		}
		out.Operations = append(out.Operations, o)
	}
	return out
}

func fieldSig(f schema.Field) string {
	if f.Optional {
		return f.Name + "?: " + f.Type.String()
	}
	return f.Name + ": " + f.Type.String()
}
