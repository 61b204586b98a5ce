//go:build integration
// +build integration

package wit_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	wit "github.com/conversekit/wit-client"
)

// liveClient builds a client against the real service, skipping the test
// when no token is configured.
func liveClient(t *testing.T) *wit.Client {
	t.Helper()
	token := os.Getenv("WIT_TOKEN")
	if token == "" {
		t.Skip("WIT_TOKEN not set; skipping live test")
	}
	version := os.Getenv("WIT_VERSION")
	if version == "" {
		version = "20240215"
	}
	return wit.New(token, version)
}

// TestLiveEntityCRUD exercises the entity lifecycle against the real
// service using a throwaway entity name.
func TestLiveEntityCRUD(t *testing.T) {
	c := liveClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	name := fmt.Sprintf("it_entity_%s", uuid.NewString()[:8])

	created, err := c.CreateEntity(ctx, wit.NewEntity{
		Name:  name,
		Roles: []string{"primary"},
	})
	if err != nil {
		t.Fatalf("CreateEntity: %v", err)
	}
	defer func() {
		if _, err := c.DeleteEntity(ctx, name); err != nil {
			t.Logf("cleanup DeleteEntity: %v", err)
		}
	}()
	if created.ID == "" {
		t.Fatal("CreateEntity: empty entity ID")
	}

	got, err := c.GetEntity(ctx, name)
	if err != nil {
		t.Fatalf("GetEntity: %v", err)
	}
	if got.Name != name {
		t.Fatalf("GetEntity: name mismatch: %s != %s", got.Name, name)
	}

	updated, err := c.UpdateEntity(ctx, name, wit.UpdateEntity{
		Name:  name,
		Roles: []string{"primary", "secondary"},
	})
	if err != nil {
		t.Fatalf("UpdateEntity: %v", err)
	}
	if len(updated.Roles) != 2 {
		t.Fatalf("UpdateEntity: expected 2 roles, got %v", updated.Roles)
	}

	refs, err := c.ListEntities(ctx)
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	found := false
	for _, ref := range refs {
		if ref.Name == name {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("ListEntities: %s not listed", name)
	}
}

// TestLiveIntentAndTraitCRUD covers intent and trait creation and deletion.
func TestLiveIntentAndTraitCRUD(t *testing.T) {
	c := liveClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	intentName := fmt.Sprintf("it_intent_%s", uuid.NewString()[:8])
	intent, err := c.CreateIntent(ctx, intentName)
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if intent.ID == "" {
		t.Fatal("CreateIntent: empty intent ID")
	}
	if _, err := c.DeleteIntent(ctx, intentName); err != nil {
		t.Fatalf("DeleteIntent: %v", err)
	}

	traitName := fmt.Sprintf("it_trait_%s", uuid.NewString()[:8])
	trait, err := c.CreateTrait(ctx, wit.NewTrait{
		Name:   traitName,
		Values: []string{"yes", "no"},
	})
	if err != nil {
		t.Fatalf("CreateTrait: %v", err)
	}
	if len(trait.Values) != 2 {
		t.Fatalf("CreateTrait: expected 2 values, got %v", trait.Values)
	}
	if _, err := c.DeleteTrait(ctx, traitName); err != nil {
		t.Fatalf("DeleteTrait: %v", err)
	}
}
