package resolve

import (
	"strings"
	"testing"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/idl"
	"github.com/floegence/bfapi/schema"
)

func mustParse(t *testing.T, doc string) *schema.Model {
	t.Helper()
	m, err := schema.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func orderNames(res *Result) []string {
	out := make([]string, 0, len(res.Order))
	for _, td := range res.Order {
		out = append(out, td.Name)
	}
	return out
}

func TestResolveSportsAPING(t *testing.T) {
	t.Parallel()

	m, err := schema.ParseBytes(idl.SportsAPING)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := Resolve(m)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(res.Order) != len(m.Types) {
		t.Fatalf("order has %d types, model has %d", len(res.Order), len(m.Types))
	}
	kinds := map[string]schema.Kind{
		"MarketFilter":            schema.KindRequest,
		"PriceProjection":         schema.KindRequest,
		"MarketGroup":             schema.KindRequest,
		"TimeRange":               schema.KindResponse,
		"PlaceInstruction":        schema.KindResponse,
		"MarketCatalogue":         schema.KindResponse,
		"RunnerCatalog":           schema.KindResponse,
		"EventType":               schema.KindResponse,
		"MarketTypeResult":        schema.KindResponse,
		"APINGException":          schema.KindException,
		"APINGExceptionErrorCode": schema.KindEnum,
		"MarketProjection":        schema.KindEnum,
		"Handicap":                schema.KindSimple,
	}
	for name, want := range kinds {
		td, _ := m.Type(name)
		if td.Kind != want {
			t.Fatalf("%s: kind %s, want %s", name, td.Kind, want)
		}
	}
	pos := make(map[string]int)
	for i, name := range orderNames(res) {
		pos[name] = i
	}
	// RunnerCatalog embeds SelectionId and Handicap by value.
	if pos["SelectionId"] > pos["RunnerCatalog"] || pos["Handicap"] > pos["RunnerCatalog"] {
		t.Fatalf("RunnerCatalog emitted before its value dependencies: %v", orderNames(res))
	}
	if pos["MarketId"] > pos["MarketCatalogue"] {
		t.Fatalf("MarketCatalogue emitted before MarketId: %v", orderNames(res))
	}
	// PlaceInstructionReport holds its PlaceInstruction by value.
	if pos["PlaceInstruction"] > pos["PlaceInstructionReport"] {
		t.Fatalf("PlaceInstructionReport emitted before PlaceInstruction: %v", orderNames(res))
	}
}

func TestResolveOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	doc := `<interface name="X" version="1">
  <dataType name="Outer"><parameter name="inner" type="Inner" mandatory="true"/><parameter name="z" type="Zed" mandatory="true"/></dataType>
  <dataType name="Alone"/>
  <dataType name="Inner"><parameter name="v" type="i32" mandatory="true"/></dataType>
  <dataType name="Zed"/>
</interface>`
	first, err := Resolve(mustParse(t, doc))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := "Alone,Inner,Zed,Outer"
	if got := strings.Join(orderNames(first), ","); got != want {
		t.Fatalf("order %s, want %s", got, want)
	}
	for i := 0; i < 5; i++ {
		again, err := Resolve(mustParse(t, doc))
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got := strings.Join(orderNames(again), ","); got != want {
			t.Fatalf("run %d: order %s, want %s", i, got, want)
		}
	}
}

func TestResolveReferenceCyclesAreAllowed(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"optional_pair": `<interface name="X" version="1">
  <dataType name="A"><parameter name="b" type="B"/></dataType>
  <dataType name="B"><parameter name="a" type="A"/></dataType>
</interface>`,
		"required_list_self": `<interface name="X" version="1">
  <dataType name="Node"><parameter name="children" type="list(Node)" mandatory="true"/></dataType>
</interface>`,
		"required_map_pair": `<interface name="X" version="1">
  <dataType name="A"><parameter name="bs" type="map(string,B)" mandatory="true"/></dataType>
  <dataType name="B"><parameter name="a" type="A" mandatory="true"/></dataType>
</interface>`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Resolve(mustParse(t, doc)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveEmbeddingCycle(t *testing.T) {
	t.Parallel()

	doc := `<interface name="X" version="1">
  <dataType name="Free"/>
  <dataType name="A"><parameter name="b" type="B" mandatory="true"/></dataType>
  <dataType name="B"><parameter name="c" type="C" mandatory="true"/></dataType>
  <dataType name="C"><parameter name="a" type="A" mandatory="true"/></dataType>
</interface>`
	_, err := Resolve(mustParse(t, doc))
	if !bferrors.IsResolution(err) || bferrors.CodeOf(err) != bferrors.CodeEmbeddingCycle {
		t.Fatalf("expected embedding cycle, got %v", err)
	}
	if !strings.Contains(err.Error(), "A -> B -> C -> A") {
		t.Fatalf("expected cycle path in %q", err.Error())
	}

	self := `<interface name="X" version="1"><dataType name="S"><parameter name="s" type="S" mandatory="true"/></dataType></interface>`
	_, err = Resolve(mustParse(t, self))
	if bferrors.CodeOf(err) != bferrors.CodeEmbeddingCycle || !strings.Contains(err.Error(), "S -> S") {
		t.Fatalf("expected self cycle, got %v", err)
	}

	simple := `<interface name="X" version="1"><simpleType name="P" type="Q"/><simpleType name="Q" type="P"/></interface>`
	_, err = Resolve(mustParse(t, simple))
	if bferrors.CodeOf(err) != bferrors.CodeEmbeddingCycle {
		t.Fatalf("expected simple alias cycle, got %v", err)
	}
}

func TestResolveAliasCycleAsMapKey(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		doc  string
		path string
	}{
		"pair": {`<interface name="X" version="1">
  <simpleType name="A" type="B"/>
  <simpleType name="B" type="A"/>
  <dataType name="R"><parameter name="m" type="map(A,string)"/></dataType>
</interface>`, "A -> B -> A"},
		"self": {`<interface name="X" version="1">
  <simpleType name="A" type="A"/>
  <dataType name="R"><parameter name="m" type="map(A,string)"/></dataType>
</interface>`, "A -> A"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(mustParse(t, tc.doc))
			if !bferrors.IsResolution(err) || bferrors.CodeOf(err) != bferrors.CodeEmbeddingCycle {
				t.Fatalf("expected embedding cycle, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.path) {
				t.Fatalf("expected %q in %q", tc.path, err.Error())
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		code bferrors.Code
	}{
		{"unknown_field_type", `<interface name="X" version="1"><dataType name="A"><parameter name="b" type="list(Missing)"/></dataType></interface>`, bferrors.CodeUnknownType},
		{"unknown_return_type", `<interface name="X" version="1"><operation name="op"><parameters><simpleResponse type="Missing"/></parameters></operation></interface>`, bferrors.CodeUnknownType},
		{"unknown_exception", `<interface name="X" version="1"><operation name="op"><parameters><simpleResponse type="string"/><exceptions><exception type="Nope"/></exceptions></parameters></operation></interface>`, bferrors.CodeUnknownType},
		{"not_exception", `<interface name="X" version="1"><dataType name="A"/><operation name="op"><parameters><simpleResponse type="string"/><exceptions><exception type="A"/></exceptions></parameters></operation></interface>`, bferrors.CodeNotException},
		{"record_map_key", `<interface name="X" version="1"><dataType name="K"/><dataType name="A"><parameter name="m" type="map(K,string)"/></dataType></interface>`, bferrors.CodeInvalidMapKey},
		{"enum_over_int", `<interface name="X" version="1"><simpleType name="E" type="i32"><validValues><value name="A"/></validValues></simpleType></interface>`, bferrors.CodeInvalidEnum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(mustParse(t, tc.doc))
			if !bferrors.IsResolution(err) {
				t.Fatalf("expected resolution error, got %v", err)
			}
			if got := bferrors.CodeOf(err); got != tc.code {
				t.Fatalf("expected code %q, got %q (%v)", tc.code, got, err)
			}
		})
	}
}

func TestResolveAllowsScalarAliasMapKeys(t *testing.T) {
	t.Parallel()

	doc := `<interface name="X" version="1">
  <simpleType name="MarketId" type="string"/>
  <dataType name="A"><parameter name="m" type="map(MarketId,i64)"/><parameter name="n" type="map(i64,string)"/></dataType>
</interface>`
	if _, err := Resolve(mustParse(t, doc)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
