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

func TestCreateTrait_Success(t *testing.T) {
	t.Parallel()
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"id":"t1","name":"sentiment","values":["positive","negative"]}`))
	}))
	defer srv.Close()

	got, err := CreateTrait(context.Background(), srv.Client(), srv.URL, "20240215", types.NewTrait{
		Name:   "sentiment",
		Values: []string{"positive", "negative"},
	})
	if err != nil {
		t.Fatalf("CreateTrait: %v", err)
	}
	if gotBody != `{"name":"sentiment","values":["positive","negative"]}` {
		t.Fatalf("unexpected body: %s", gotBody)
	}
	if got.Name != "sentiment" || len(got.Values) != 2 {
		t.Fatalf("unexpected trait: %+v", got)
	}
}

func TestCreateTrait_EmptyName(t *testing.T) {
	t.Parallel()
	_, err := CreateTrait(context.Background(), http.DefaultClient, "http://example.invalid", "20240215", types.NewTrait{})
	var argErr *types.InvalidArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *types.InvalidArgumentError, got %T: %v", err, err)
	}
}

func TestListTraits_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]types.TraitRef{{ID: "t1", Name: "sentiment"}})
	}))
	defer srv.Close()

	got, err := ListTraits(context.Background(), srv.Client(), srv.URL, "20240215")
	if err != nil || len(got) != 1 || got[0].Name != "sentiment" {
		t.Fatalf("ListTraits unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetTrait_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/traits/sentiment" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"t1","name":"sentiment","values":["positive"]}`))
	}))
	defer srv.Close()

	got, err := GetTrait(context.Background(), srv.Client(), srv.URL, "20240215", "sentiment")
	if err != nil || got.Values[0] != "positive" {
		t.Fatalf("GetTrait unexpected: got=%+v err=%v", got, err)
	}
}

func TestDeleteTrait_NonOK(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := DeleteTrait(context.Background(), srv.Client(), srv.URL, "20240215", "sentiment"); err == nil {
		t.Fatal("expected error for DeleteTrait non-200")
	}
}
