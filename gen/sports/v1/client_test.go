package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/jsonrpc"
)

type tokens struct{}

func (tokens) CurrentToken() (string, error) { return "tok", nil }
func (tokens) AppKey() string                 { return "app" }

type captured struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	ID     uint64          `json:"id"`
}

func serve(t *testing.T, result func(req captured) string) (*Client, func() []captured) {
	t.Helper()
	var mu sync.Mutex
	var seen []captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req captured
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mu.Lock()
		seen = append(seen, req)
		mu.Unlock()
		_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0",%s,"id":%d}`, result(req), req.ID)
	}))
	t.Cleanup(srv.Close)
	iv, err := jsonrpc.NewInvoker(tokens{}, jsonrpc.WithEndpoint(srv.URL))
	require.NoError(t, err)
	return NewClient(iv), func() []captured {
		mu.Lock()
		defer mu.Unlock()
		return append([]captured(nil), seen...)
	}
}

func TestListMarketCatalogueOmitsUnsetOptionals(t *testing.T) {
	c, seen := serve(t, func(captured) string {
		return `"result":[{"marketId":"1.23","marketName":"Match Odds","totalMatched":12.5,"runners":[{"selectionId":47972,"runnerName":"Home","handicap":0,"sortPriority":1}]}]`
	})

	got, err := c.ListMarketCatalogue(context.Background(), &ListMarketCatalogueRequest{MaxResults: 10})
	require.NoError(t, err)

	require.Len(t, seen(), 1)
	require.Equal(t, MethodListMarketCatalogue, seen()[0].Method)
	require.JSONEq(t, `{"filter":{},"maxResults":10}`, string(seen()[0].Params))

	require.Len(t, got, 1)
	require.Equal(t, MarketId("1.23"), got[0].MarketId)
	require.NotNil(t, got[0].TotalMatched)
	require.Equal(t, 12.5, *got[0].TotalMatched)
	require.Nil(t, got[0].MarketStartTime)
	require.Equal(t, SelectionId(47972), got[0].Runners[0].SelectionId)
}

func TestListMarketCatalogueSerializesSetFields(t *testing.T) {
	c, seen := serve(t, func(captured) string { return `"result":[]` })

	sort := MarketSortFirstToStart
	from := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	req := &ListMarketCatalogueRequest{
		Filter: MarketFilter{
			EventTypeIds:    []EventTypeId{"1", "7"},
			MarketStartTime: &TimeRange{From: &from},
		},
		MarketProjection: []MarketProjection{MarketProjectionRunnerDescription, MarketProjectionEvent},
		Sort:             &sort,
		MaxResults:       100,
	}
	got, err := c.ListMarketCatalogue(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, got)
	require.JSONEq(t, `{
		"filter":{"eventTypeIds":["1","7"],"marketStartTime":{"from":"2026-03-01T12:00:00Z"}},
		"marketProjection":["RUNNER_DESCRIPTION","EVENT"],
		"sort":"FIRST_TO_START",
		"maxResults":100
	}`, string(seen()[0].Params))
}

func TestNilRequestSendsRequiredDefaults(t *testing.T) {
	c, seen := serve(t, func(captured) string { return `"result":[{"eventType":{"id":"1","name":"Soccer"},"marketCount":12}]` })

	got, err := c.ListEventTypes(context.Background(), nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"filter":{}}`, string(seen()[0].Params))
	require.Equal(t, "Soccer", *got[0].EventType.Name)
	require.Equal(t, int32(12), *got[0].MarketCount)
}

func TestPlaceOrdersDecodesExecutionReport(t *testing.T) {
	c, seen := serve(t, func(captured) string {
		return `"result":{"status":"SUCCESS","marketId":"1.23","instructionReports":[{"status":"SUCCESS","orderStatus":"EXECUTION_COMPLETE","betId":"31","sizeMatched":2,"instruction":{"orderType":"LIMIT","selectionId":47972,"side":"BACK","limitOrder":{"size":2,"price":3.5,"persistenceType":"LAPSE"}}}]}`
	})

	size, lapse := Size(2), PersistenceTypeLapse
	req := &PlaceOrdersRequest{
		MarketId: "1.23",
		Instructions: []PlaceInstruction{{
			OrderType:   OrderTypeLimit,
			SelectionId: 47972,
			Side:        SideBack,
			LimitOrder:  &LimitOrder{Size: &size, Price: 3.5, PersistenceType: &lapse},
		}},
	}
	got, err := c.PlaceOrders(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, MethodPlaceOrders, seen()[0].Method)
	require.JSONEq(t, `{
		"marketId":"1.23",
		"instructions":[{"orderType":"LIMIT","selectionId":47972,"side":"BACK","limitOrder":{"size":2,"price":3.5,"persistenceType":"LAPSE"}}]
	}`, string(seen()[0].Params))

	require.Equal(t, ExecutionReportStatusSuccess, got.Status)
	require.Nil(t, got.ErrorCode)
	require.Len(t, got.InstructionReports, 1)
	rep := got.InstructionReports[0]
	require.Equal(t, InstructionReportStatusSuccess, rep.Status)
	require.Equal(t, OrderStatusExecutionComplete, *rep.OrderStatus)
	require.Equal(t, BetId("31"), *rep.BetId)
	require.Equal(t, Price(3.5), rep.Instruction.LimitOrder.Price)
}

func TestOperationWithoutParametersSendsEmptyObject(t *testing.T) {
	c, seen := serve(t, func(captured) string { return `"result":[27014345,27014346]` })

	got, err := c.GetExposureReuseEnabledEvents(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, MethodGetExposureReuseEnabledEvents, seen()[0].Method)
	require.JSONEq(t, `{}`, string(seen()[0].Params))
	require.Equal(t, []int64{27014345, 27014346}, got)
}

func TestDeclaredExceptionIsTyped(t *testing.T) {
	c, _ := serve(t, func(captured) string {
		return `"error":{"code":-32099,"message":"ANGX-0007","data":{"APINGException":{"errorCode":"NO_SESSION","requestUUID":"abc"},"exceptionname":"APINGException"}}`
	})

	_, err := c.ListCompetitions(context.Background(), &ListCompetitionsRequest{})
	var ex *APINGException
	require.True(t, errors.As(err, &ex), "err=%v", err)
	require.Equal(t, APINGExceptionErrorCodeNoSession, *ex.ErrorCode)
	require.Equal(t, "ANGX-0007", ex.ErrorCode.Code())
	require.Equal(t, "abc", *ex.RequestUUID)
	require.True(t, bferrors.IsException(err))
	require.Contains(t, ex.Error(), `"errorCode":"NO_SESSION"`)
}

func TestEnumHelpers(t *testing.T) {
	require.True(t, MarketProjectionMarketStartTime.Valid())
	require.False(t, MarketProjection("NOPE").Valid())
	require.Equal(t, "ANGX-0003", APINGExceptionErrorCodeInvalidSessionInformation.Code())
	require.Equal(t, "", APINGExceptionErrorCode("NOPE").Code())
	require.Len(t, ExceptionTypes(), 1)
	require.Equal(t, "APINGException", ExceptionTypes()[0].Name)
}
