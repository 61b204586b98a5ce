//go:build integration
// +build integration

package wit_test

import (
	"context"
	"testing"
	"time"

	wit "github.com/conversekit/wit-client"
)

// TestLiveMessage sends a short text to the real service and checks that
// the analysis comes back well formed.
func TestLiveMessage(t *testing.T) {
	c := liveClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.Message(ctx, "hello there", wit.MessageOptions{})
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if resp.Text != "hello there" {
		t.Fatalf("Message: echoed text mismatch: %q", resp.Text)
	}
}

// TestLiveDetectLanguage checks language detection on an unambiguous
// phrase.
func TestLiveDetectLanguage(t *testing.T) {
	c := liveClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.DetectLanguage(ctx, "bonjour tout le monde", 2)
	if err != nil {
		t.Fatalf("DetectLanguage: %v", err)
	}
	if len(resp.DetectedLocales) == 0 {
		t.Fatal("DetectLanguage: no locales detected")
	}
	for i := 1; i < len(resp.DetectedLocales); i++ {
		if resp.DetectedLocales[i].Confidence > resp.DetectedLocales[i-1].Confidence {
			t.Fatalf("DetectLanguage: locales not ranked by confidence: %+v", resp.DetectedLocales)
		}
	}
}
