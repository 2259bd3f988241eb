package schema

import (
	"strings"
	"testing"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/idl"
)

func TestParseSportsAPING(t *testing.T) {
	t.Parallel()

	m, err := ParseBytes(idl.SportsAPING)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Interface != "SportsAPING" || m.Version != "1.0.0" {
		t.Fatalf("unexpected interface: %q %q", m.Interface, m.Version)
	}
	if got := m.MethodPrefix(); got != "SportsAPING/v1.0/" {
		t.Fatalf("MethodPrefix()=%q", got)
	}
	if len(m.Operations) != 26 {
		t.Fatalf("expected 26 operations, got %d", len(m.Operations))
	}

	filter, ok := m.Type("MarketFilter")
	if !ok {
		t.Fatalf("missing MarketFilter")
	}
	for _, f := range filter.Fields {
		if !f.Optional {
			t.Fatalf("MarketFilter.%s should be optional", f.Name)
		}
	}

	var lmc, reuse *Operation
	for _, op := range m.Operations {
		switch op.Name {
		case "listMarketCatalogue":
			lmc = op
		case "getExposureReuseEnabledEvents":
			reuse = op
		}
	}
	if lmc == nil {
		t.Fatalf("missing listMarketCatalogue")
	}
	if lmc.ReturnType.String() != "list(MarketCatalogue)" {
		t.Fatalf("unexpected return type %s", lmc.ReturnType)
	}
	if len(lmc.Parameters) != 5 || lmc.Parameters[3].Name != "maxResults" || lmc.Parameters[3].Optional {
		t.Fatalf("unexpected parameters: %+v", lmc.Parameters)
	}
	if !lmc.Parameters[1].IsList() {
		t.Fatalf("marketProjection should be a list")
	}
	if len(lmc.DeclaredExceptions) != 1 || lmc.DeclaredExceptions[0] != "APINGException" {
		t.Fatalf("unexpected exceptions: %v", lmc.DeclaredExceptions)
	}
	if reuse == nil || len(reuse.Parameters) != 0 || reuse.ReturnType.String() != "list(i64)" {
		t.Fatalf("unexpected getExposureReuseEnabledEvents: %+v", reuse)
	}

	code, ok := m.Type("APINGExceptionErrorCode")
	if !ok {
		t.Fatalf("missing lifted enum")
	}
	if code.Kind != KindEnum || code.Prefix != "ANGX" {
		t.Fatalf("unexpected lifted enum: %+v", code)
	}
	if code.Values[2].WireLiteral != "INVALID_SESSION_INFORMATION" || code.Values[2].ID == nil || *code.Values[2].ID != 3 {
		t.Fatalf("unexpected value: %+v", code.Values[2])
	}
	exc, _ := m.Type("APINGException")
	if exc.Kind != KindException || code.Index >= exc.Index {
		t.Fatalf("lifted enum must be declared before its exception")
	}
	if exc.Fields[0].Type.Name != "APINGExceptionErrorCode" {
		t.Fatalf("errorCode should reference the lifted enum, got %s", exc.Fields[0].Type)
	}
	if !exc.Fields[0].Optional {
		t.Fatalf("exception parameters without mandatory are optional")
	}
	proj, _ := m.Type("MarketProjection")
	if proj.Kind != KindEnum || len(proj.Values) != 7 {
		t.Fatalf("unexpected MarketProjection: %+v", proj)
	}
	venue, _ := m.Type("Venue")
	if venue.Kind != KindSimple || venue.Underlying.Name != PrimString {
		t.Fatalf("unexpected Venue: %+v", venue)
	}
}

func TestParseDegenerateShapes(t *testing.T) {
	t.Parallel()

	doc := `<interface name="X" version="2.1">
  <operation name="ping">
    <parameters>
      <simpleResponse type="Marker"/>
    </parameters>
  </operation>
  <dataType name="Marker"/>
</interface>`
	m, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(m.Operations[0].Parameters) != 0 {
		t.Fatalf("expected zero parameters")
	}
	marker, _ := m.Type("Marker")
	if len(marker.Fields) != 0 {
		t.Fatalf("expected marker type")
	}
	if m.MethodPrefix() != "X/v2.1/" {
		t.Fatalf("unexpected prefix %q", m.MethodPrefix())
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		code bferrors.Code
	}{
		{"not_xml", `{"namespace":"x"}`, bferrors.CodeInvalidDocument},
		{"wrong_root", `<service name="X" version="1"/>`, bferrors.CodeInvalidDocument},
		{"missing_version", `<interface name="X"/>`, bferrors.CodeMissingAttribute},
		{"unknown_element", `<interface name="X" version="1"><typedef name="A"/></interface>`, bferrors.CodeUnknownElement},
		{"unknown_attribute", `<interface name="X" version="1"><dataType name="A" final="true"/></interface>`, bferrors.CodeUnknownAttribute},
		{"missing_type", `<interface name="X" version="1"><dataType name="A"><parameter name="a"/></dataType></interface>`, bferrors.CodeMissingAttribute},
		{"bad_mandatory", `<interface name="X" version="1"><dataType name="A"><parameter name="a" type="i32" mandatory="yes"/></dataType></interface>`, bferrors.CodeInvalidAttribute},
		{"bad_type", `<interface name="X" version="1"><dataType name="A"><parameter name="a" type="list(i32"/></dataType></interface>`, bferrors.CodeInvalidType},
		{"unknown_constructor", `<interface name="X" version="1"><dataType name="A"><parameter name="a" type="vector(i32)"/></dataType></interface>`, bferrors.CodeInvalidType},
		{"duplicate_field", `<interface name="X" version="1"><dataType name="A"><parameter name="a" type="i32"/><parameter name="a" type="string"/></dataType></interface>`, bferrors.CodeDuplicateField},
		{"duplicate_type", `<interface name="X" version="1"><dataType name="A"/><simpleType name="A" type="string"/></interface>`, bferrors.CodeDuplicateType},
		{"lifted_collides", `<interface name="X" version="1"><simpleType name="EErrorCode" type="string"/><exceptionType name="E" prefix="EX"><parameter name="errorCode" type="string"><validValues><value id="1" name="A"/></validValues></parameter></exceptionType></interface>`, bferrors.CodeDuplicateType},
		{"duplicate_value", `<interface name="X" version="1"><simpleType name="S" type="string"><validValues><value name="A"/><value name="A"/></validValues></simpleType></interface>`, bferrors.CodeDuplicateValue},
		{"duplicate_operation", `<interface name="X" version="1"><operation name="a"><parameters><simpleResponse type="string"/></parameters></operation><operation name="a"><parameters><simpleResponse type="string"/></parameters></operation></interface>`, bferrors.CodeDuplicateOperation},
		{"missing_response", `<interface name="X" version="1"><operation name="a"><parameters/></operation></interface>`, bferrors.CodeInvalidDocument},
		{"value_id_outside_exception", `<interface name="X" version="1"><simpleType name="S" type="string"><validValues><value id="1" name="A"/></validValues></simpleType></interface>`, bferrors.CodeUnknownAttribute},
		{"valid_values_on_data_type", `<interface name="X" version="1"><dataType name="A"><parameter name="a" type="string"><validValues/></parameter></dataType></interface>`, bferrors.CodeUnknownElement},
		{"stray_text", `<interface name="X" version="1"><dataType name="A">oops</dataType></interface>`, bferrors.CodeUnexpectedText},
		{"shadows_primitive", `<interface name="X" version="1"><simpleType name="string" type="string"/></interface>`, bferrors.CodeInvalidAttribute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !bferrors.IsSchema(err) {
				t.Fatalf("expected schema error, got %v", err)
			}
			if got := bferrors.CodeOf(err); got != tc.code {
				t.Fatalf("expected code %q, got %q (%v)", tc.code, got, err)
			}
		})
	}
}

func TestParseTypeRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   string
		leaves []string
		list   bool
	}{
		{"string", "string", []string{"string"}, false},
		{"list(MarketCatalogue)", "list(MarketCatalogue)", []string{"MarketCatalogue"}, true},
		{"set( MarketId )", "set(MarketId)", []string{"MarketId"}, true},
		{"map(string, Matches)", "map(string,Matches)", []string{"string", "Matches"}, false},
		{"list(map(string,list(i64)))", "list(map(string,list(i64)))", []string{"string", "i64"}, true},
	}
	for _, tc := range cases {
		r, err := ParseTypeRef(tc.in)
		if err != nil {
			t.Fatalf("ParseTypeRef(%q): %v", tc.in, err)
		}
		if r.String() != tc.want {
			t.Fatalf("ParseTypeRef(%q)=%s, want %s", tc.in, r, tc.want)
		}
		if strings.Join(r.Leaves(), ",") != strings.Join(tc.leaves, ",") {
			t.Fatalf("Leaves(%q)=%v", tc.in, r.Leaves())
		}
		if r.IsList() != tc.list {
			t.Fatalf("IsList(%q)=%v", tc.in, r.IsList())
		}
	}
	for _, bad := range []string{"", "list()", "map(string)", "list(a)b", "1abc", "set(a,b)"} {
		if _, err := ParseTypeRef(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
