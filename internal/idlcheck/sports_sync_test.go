package idlcheck

import (
	"testing"

	sportsv1 "github.com/floegence/bfapi/gen/sports/v1"
	"github.com/floegence/bfapi/idl"
	"github.com/floegence/bfapi/schema"
)

func TestSportsMethods_AlignWithIDL(t *testing.T) {
	m, err := schema.ParseBytes(idl.SportsAPING)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	generated := map[string]string{
		"listEventTypes":                            sportsv1.MethodListEventTypes,
		"listCompetitions":                          sportsv1.MethodListCompetitions,
		"listTimeRanges":                            sportsv1.MethodListTimeRanges,
		"listEvents":                                sportsv1.MethodListEvents,
		"listMarketTypes":                           sportsv1.MethodListMarketTypes,
		"listCountries":                             sportsv1.MethodListCountries,
		"listVenues":                                sportsv1.MethodListVenues,
		"listMarketCatalogue":                       sportsv1.MethodListMarketCatalogue,
		"listMarketBook":                            sportsv1.MethodListMarketBook,
		"listRunnerBook":                            sportsv1.MethodListRunnerBook,
		"listCurrentOrders":                         sportsv1.MethodListCurrentOrders,
		"listClearedOrders":                         sportsv1.MethodListClearedOrders,
		"placeOrders":                               sportsv1.MethodPlaceOrders,
		"cancelOrders":                              sportsv1.MethodCancelOrders,
		"replaceOrders":                             sportsv1.MethodReplaceOrders,
		"updateOrders":                              sportsv1.MethodUpdateOrders,
		"listMarketProfitAndLoss":                   sportsv1.MethodListMarketProfitAndLoss,
		"setDefaultExposureLimitForMarketGroups":    sportsv1.MethodSetDefaultExposureLimitForMarketGroups,
		"setExposureLimitForMarketGroup":            sportsv1.MethodSetExposureLimitForMarketGroup,
		"removeDefaultExposureLimitForMarketGroups": sportsv1.MethodRemoveDefaultExposureLimitForMarketGroups,
		"removeExposureLimitForMarketGroup":         sportsv1.MethodRemoveExposureLimitForMarketGroup,
		"listExposureLimitsForMarketGroups":         sportsv1.MethodListExposureLimitsForMarketGroups,
		"unblockMarketGroup":                        sportsv1.MethodUnblockMarketGroup,
		"getExposureReuseEnabledEvents":             sportsv1.MethodGetExposureReuseEnabledEvents,
		"addExposureReuseEnabledEvents":             sportsv1.MethodAddExposureReuseEnabledEvents,
		"removeExposureReuseEnabledEvents":          sportsv1.MethodRemoveExposureReuseEnabledEvents,
	}
	if len(m.Operations) != len(generated) {
		t.Fatalf("idl declares %d operations, bindings have %d", len(m.Operations), len(generated))
	}
	for _, op := range m.Operations {
		got, ok := generated[op.Name]
		if !ok {
			t.Fatalf("operation %s has no binding", op.Name)
		}
		if want := m.MethodPrefix() + op.Name; got != want {
			t.Fatalf("method mismatch: idl=%q bindings=%q", want, got)
		}
	}
}

func TestSportsExceptions_AlignWithIDL(t *testing.T) {
	m, err := schema.ParseBytes(idl.SportsAPING)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var names []string
	for _, td := range m.Types {
		if td.Kind == schema.KindException {
			names = append(names, td.Name)
		}
	}
	declared := sportsv1.ExceptionTypes()
	if len(declared) != len(names) {
		t.Fatalf("idl declares %v, bindings declare %d exceptions", names, len(declared))
	}
	for i, et := range declared {
		if et.Name != names[i] {
			t.Fatalf("exception %d mismatch: idl=%q bindings=%q", i, names[i], et.Name)
		}
	}

	code, ok := m.Type("APINGExceptionErrorCode")
	if !ok {
		t.Fatalf("missing APINGExceptionErrorCode")
	}
	for _, v := range code.Values {
		if !sportsv1.APINGExceptionErrorCode(v.WireLiteral).Valid() {
			t.Fatalf("error code %s missing from bindings", v.WireLiteral)
		}
	}
	if got := sportsv1.APINGExceptionErrorCodeInvalidSessionInformation.Code(); got != "ANGX-0003" {
		t.Fatalf("unexpected vendor code %q", got)
	}
}
