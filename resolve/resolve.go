// Package resolve checks cross-references in a parsed model, finalises type kinds and
// computes a deterministic emission order.
package resolve

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/schema"
)

// Result is a resolved model plus the order in which its types must be emitted.
type Result struct {
	Model *schema.Model
	// Order lists every type after all the types it embeds by value.
	Order []*schema.TypeDefinition
}

// Resolve verifies every reference in m, classifies record types as Request or Response and
// orders types so each follows the types it embeds by value. Reference cycles are allowed;
// a value-embedding cycle is a resolution error.
//
// Resolve finalises m in place; the model must not be mutated afterwards.
func Resolve(m *schema.Model) (*Result, error) {
	r := &resolver{m: m}
	if err := r.checkReferences(); err != nil {
		return nil, err
	}
	r.classify()
	order, err := r.order()
	if err != nil {
		return nil, err
	}
	return &Result{Model: m, Order: order}, nil
}

type resolver struct {
	m *schema.Model
}

func resolutionErr(code bferrors.Code, subject string, format string, args ...any) error {
	return bferrors.New(bferrors.KindResolution, bferrors.StageResolve, code, subject, format, args...)
}

func (r *resolver) checkRef(ref schema.TypeRef, subject string) error {
	for _, name := range ref.Leaves() {
		if schema.IsPrimitive(name) {
			continue
		}
		if _, ok := r.m.Type(name); !ok {
			return resolutionErr(bferrors.CodeUnknownType, subject, "unknown type %q", name)
		}
	}
	if ref.Kind == schema.RefMap {
		ok, err := r.scalar(*ref.Key, nil)
		if err != nil {
			return err
		}
		if !ok {
			return resolutionErr(bferrors.CodeInvalidMapKey, subject, "map key %s is not a scalar", ref.Key)
		}
	}
	if ref.Elem != nil {
		return r.checkRef(*ref.Elem, subject)
	}
	return nil
}

// scalar reports whether ref is usable as a JSON object key. path holds the aliases already
// followed; meeting one again is an embedding cycle.
func (r *resolver) scalar(ref schema.TypeRef, path []string) (bool, error) {
	if ref.Kind != schema.RefNamed {
		return false, nil
	}
	if schema.IsPrimitive(ref.Name) {
		return ref.Name != schema.PrimBool && ref.Name != schema.PrimDateTime &&
			ref.Name != schema.PrimDouble && ref.Name != schema.PrimFloat, nil
	}
	for i, name := range path {
		if name == ref.Name {
			cycle := append(path[i:len(path):len(path)], ref.Name)
			return false, resolutionErr(bferrors.CodeEmbeddingCycle, ref.Name, "types embed each other by value: %s", strings.Join(cycle, " -> "))
		}
	}
	td, ok := r.m.Type(ref.Name)
	if !ok || td.Underlying == nil {
		return false, nil
	}
	return r.scalar(*td.Underlying, append(path, ref.Name))
}

func (r *resolver) checkFields(owner string, fields []schema.Field) error {
	for _, f := range fields {
		if err := r.checkRef(f.Type, owner+"."+f.Name); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) checkReferences() error {
	for _, td := range r.m.Types {
		switch td.Kind {
		case schema.KindSimple:
			if err := r.checkRef(*td.Underlying, td.Name); err != nil {
				return err
			}
		case schema.KindEnum:
			if td.Underlying.Kind != schema.RefNamed || td.Underlying.Name != schema.PrimString {
				return resolutionErr(bferrors.CodeInvalidEnum, td.Name, "enum must alias string, got %s", td.Underlying)
			}
		default:
			if err := r.checkFields(td.Name, td.Fields); err != nil {
				return err
			}
		}
	}
	for _, op := range r.m.Operations {
		if err := r.checkFields(op.Name, op.Parameters); err != nil {
			return err
		}
		if err := r.checkRef(op.ReturnType, op.Name); err != nil {
			return err
		}
		for _, name := range op.DeclaredExceptions {
			td, ok := r.m.Type(name)
			if !ok {
				return resolutionErr(bferrors.CodeUnknownType, op.Name, "unknown exception %q", name)
			}
			if td.Kind != schema.KindException {
				return resolutionErr(bferrors.CodeNotException, op.Name, "%s is a %s, not an exception", name, td.Kind)
			}
		}
	}
	return nil
}

// classify marks every data type reachable from an operation result as a Response.
func (r *resolver) classify() {
	seen := make(map[string]bool)
	var visit func(name string)
	visit = func(name string) {
		td, ok := r.m.Type(name)
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		if td.Kind == schema.KindRequest {
			td.Kind = schema.KindResponse
		}
		if !td.Kind.IsRecord() {
			return
		}
		for _, f := range td.Fields {
			for _, leaf := range f.Type.Leaves() {
				visit(leaf)
			}
		}
	}
	for _, op := range r.m.Operations {
		for _, leaf := range op.ReturnType.Leaves() {
			visit(leaf)
		}
	}
}

// valueDeps returns the declared types td embeds by value, deduplicated.
func (r *resolver) valueDeps(td *schema.TypeDefinition) []*schema.TypeDefinition {
	var out []*schema.TypeDefinition
	seen := make(map[string]struct{})
	add := func(ref schema.TypeRef) {
		if ref.Kind != schema.RefNamed || schema.IsPrimitive(ref.Name) {
			return
		}
		dep, ok := r.m.Type(ref.Name)
		if !ok || dep.Kind == schema.KindEnum {
			return
		}
		if _, dup := seen[dep.Name]; dup {
			return
		}
		seen[dep.Name] = struct{}{}
		out = append(out, dep)
	}
	switch {
	case td.Kind == schema.KindSimple:
		add(*td.Underlying)
	case td.Kind.IsRecord():
		for _, f := range td.Fields {
			// Optional fields are pointers and collections hold references; neither embeds.
			if f.Optional {
				continue
			}
			add(f.Type)
		}
	}
	return out
}

func (r *resolver) order() ([]*schema.TypeDefinition, error) {
	indegree := make(map[string]int, len(r.m.Types))
	dependents := make(map[string][]*schema.TypeDefinition, len(r.m.Types))
	for _, td := range r.m.Types {
		deps := r.valueDeps(td)
		indegree[td.Name] = len(deps)
		for _, dep := range deps {
			dependents[dep.Name] = append(dependents[dep.Name], td)
		}
	}

	ready := &readyQueue{}
	for _, td := range r.m.Types {
		if indegree[td.Name] == 0 {
			heap.Push(ready, td)
		}
	}
	out := make([]*schema.TypeDefinition, 0, len(r.m.Types))
	for ready.Len() > 0 {
		td := heap.Pop(ready).(*schema.TypeDefinition)
		out = append(out, td)
		for _, next := range dependents[td.Name] {
			indegree[next.Name]--
			if indegree[next.Name] == 0 {
				heap.Push(ready, next)
			}
		}
	}
	if len(out) == len(r.m.Types) {
		return out, nil
	}

	stuck := make(map[string]bool)
	for _, td := range r.m.Types {
		if indegree[td.Name] > 0 {
			stuck[td.Name] = true
		}
	}
	path := r.cyclePath(stuck)
	return nil, resolutionErr(bferrors.CodeEmbeddingCycle, path[0], "types embed each other by value: %s", strings.Join(path, " -> "))
}

// cyclePath walks value edges among stuck types from the earliest declared one until a name repeats.
func (r *resolver) cyclePath(stuck map[string]bool) []string {
	names := make([]string, 0, len(stuck))
	for name := range stuck {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return less(r.mustType(names[i]), r.mustType(names[j])) })

	pos := make(map[string]int)
	var path []string
	cur := names[0]
	for {
		if at, ok := pos[cur]; ok {
			return append(path[at:], cur)
		}
		pos[cur] = len(path)
		path = append(path, cur)
		for _, dep := range r.valueDeps(r.mustType(cur)) {
			if stuck[dep.Name] {
				cur = dep.Name
				break
			}
		}
	}
}

func (r *resolver) mustType(name string) *schema.TypeDefinition {
	td, _ := r.m.Type(name)
	return td
}

func less(a, b *schema.TypeDefinition) bool {
	if a.Index != b.Index {
		return a.Index < b.Index
	}
	return a.Name < b.Name
}

// readyQueue orders emittable types by declaration position, then name.
type readyQueue []*schema.TypeDefinition

func (q readyQueue) Len() int           { return len(q) }
func (q readyQueue) Less(i, j int) bool { return less(q[i], q[j]) }
func (q readyQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *readyQueue) Push(x any)        { *q = append(*q, x.(*schema.TypeDefinition)) }
func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
