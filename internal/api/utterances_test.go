package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conversekit/wit-client/internal/types"
)

func TestListUtterances_QueryParams(t *testing.T) {
	t.Parallel()
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"text":"wake me at seven","intent":{"id":"i1","name":"set_alarm"},"entities":[],"traits":[]}]`))
	}))
	defer srv.Close()

	got, err := ListUtterances(context.Background(), srv.Client(), srv.URL, "20240215", types.ListUtterancesRequest{
		Limit:   50,
		Offset:  10,
		Intents: []string{"set_alarm", "cancel_alarm"},
	})
	if err != nil {
		t.Fatalf("ListUtterances: %v", err)
	}
	if gotQuery["limit"][0] != "50" || gotQuery["offset"][0] != "10" || gotQuery["intents"][0] != "set_alarm,cancel_alarm" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if len(got) != 1 || got[0].Intent.Name != "set_alarm" {
		t.Fatalf("unexpected utterances: %+v", got)
	}
}

func TestListUtterances_LimitBounds(t *testing.T) {
	t.Parallel()
	for _, limit := range []int{0, -1, 10001} {
		_, err := ListUtterances(context.Background(), http.DefaultClient, "http://example.invalid", "20240215", types.ListUtterancesRequest{Limit: limit})
		var argErr *types.InvalidArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("limit %d: expected *types.InvalidArgumentError, got %T: %v", limit, err, err)
		}
	}
}

func TestCreateUtterances_Success(t *testing.T) {
	t.Parallel()
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"sent":true,"n":1}`))
	}))
	defer srv.Close()

	got, err := CreateUtterances(context.Background(), srv.Client(), srv.URL, "20240215", []types.NewUtterance{{
		Text:   "wake me at seven",
		Intent: "set_alarm",
		Entities: []types.NewUtteranceSpan{{
			Entity: "wit$datetime:datetime",
			Start:  11,
			End:    16,
			Body:   "seven",
		}},
		Traits: []types.NewUtteranceTrait{{Trait: "sentiment", Value: "neutral"}},
	}})
	if err != nil {
		t.Fatalf("CreateUtterances: %v", err)
	}
	want := `[{"text":"wake me at seven","intent":"set_alarm","entities":[{"entity":"wit$datetime:datetime","start":11,"end":16,"body":"seven","entities":null}],"traits":[{"trait":"sentiment","value":"neutral"}]}]`
	if gotBody != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", gotBody, want)
	}
	if !got.Sent || got.N != 1 {
		t.Fatalf("unexpected ack: %+v", got)
	}
}

func TestCreateUtterances_Empty(t *testing.T) {
	t.Parallel()
	_, err := CreateUtterances(context.Background(), http.DefaultClient, "http://example.invalid", "20240215", nil)
	var argErr *types.InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *types.InvalidArgumentError, got %T: %v", err, err)
	}
}

func TestDeleteUtterances_BatchBody(t *testing.T) {
	t.Parallel()
	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"sent":true,"n":2}`))
	}))
	defer srv.Close()

	got, err := DeleteUtterances(context.Background(), srv.Client(), srv.URL, "20240215", []string{"first utterance", "second utterance"})
	if err != nil {
		t.Fatalf("DeleteUtterances: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("method = %s, want DELETE", gotMethod)
	}
	if gotBody != `[{"text":"first utterance"},{"text":"second utterance"}]` {
		t.Fatalf("unexpected body: %s", gotBody)
	}
	if got.N != 2 {
		t.Fatalf("unexpected ack: %+v", got)
	}
}

func TestDeleteUtterances_ServiceError(t *testing.T) {
	t.Parallel()
	// A batch containing a nonexistent text surfaces the service's error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"utterance not found","code":"not-found"}`))
	}))
	defer srv.Close()

	_, err := DeleteUtterances(context.Background(), srv.Client(), srv.URL, "20240215", []string{"real", "ghost"})
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *types.APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "utterance not found" {
		t.Fatalf("unexpected message: %s", apiErr.Message)
	}
}
