package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conversekit/wit-client/internal/types"
)

func TestCreateIntent_Success(t *testing.T) {
	t.Parallel()
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"id":"i1","name":"set_alarm"}`))
	}))
	defer srv.Close()

	got, err := CreateIntent(context.Background(), srv.Client(), srv.URL, "20240215", "set_alarm")
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if gotBody != `{"name":"set_alarm"}` {
		t.Fatalf("unexpected body: %s", gotBody)
	}
	if got.ID != "i1" || got.Name != "set_alarm" {
		t.Fatalf("unexpected intent: %+v", got)
	}
}

func TestCreateIntent_EmptyName(t *testing.T) {
	t.Parallel()
	_, err := CreateIntent(context.Background(), http.DefaultClient, "http://example.invalid", "20240215", "")
	var argErr *types.InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *types.InvalidArgumentError, got %T: %v", err, err)
	}
}

func TestListIntents_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]types.IntentRef{{ID: "i1", Name: "set_alarm"}})
	}))
	defer srv.Close()

	got, err := ListIntents(context.Background(), srv.Client(), srv.URL, "20240215")
	if err != nil || len(got) != 1 || got[0].Name != "set_alarm" {
		t.Fatalf("ListIntents unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetIntent_WithEntities(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/intents/set_alarm" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"i1","name":"set_alarm","entities":[{"id":"e1","name":"wit$datetime"}]}`))
	}))
	defer srv.Close()

	got, err := GetIntent(context.Background(), srv.Client(), srv.URL, "20240215", "set_alarm")
	if err != nil {
		t.Fatalf("GetIntent: %v", err)
	}
	if len(got.Entities) != 1 || got.Entities[0].Name != "wit$datetime" {
		t.Fatalf("unexpected intent: %+v", got)
	}
}

func TestDeleteIntent_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"deleted":"set_alarm"}`))
	}))
	defer srv.Close()

	got, err := DeleteIntent(context.Background(), srv.Client(), srv.URL, "20240215", "set_alarm")
	if err != nil || got.Deleted != "set_alarm" {
		t.Fatalf("DeleteIntent unexpected: got=%+v err=%v", got, err)
	}
}
