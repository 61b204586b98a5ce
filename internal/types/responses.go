package types

import (
	"encoding/json"
	"errors"
)

// ------------------------------
// Response Types
// ------------------------------

// Validator is implemented by response types that can detect a body which
// decoded without error but is missing required fields. The request
// executor turns a Validate failure into a DecodeError.
type Validator interface {
	Validate() error
}

// DeleteResponse confirms a delete operation.
type DeleteResponse struct {
	// Deleted names what was deleted.
	Deleted string `json:"deleted"`
}

// Validate implements Validator.
func (r *DeleteResponse) Validate() error {
	if r.Deleted == "" {
		return errors.New("delete response missing deleted field")
	}
	return nil
}

// Validate implements Validator.
func (e *Entity) Validate() error {
	if e.Name == "" {
		return errors.New("entity missing name")
	}
	return nil
}

// Validate implements Validator.
func (i *Intent) Validate() error {
	if i.Name == "" {
		return errors.New("intent missing name")
	}
	return nil
}

// Validate implements Validator.
func (t *Trait) Validate() error {
	if t.Name == "" {
		return errors.New("trait missing name")
	}
	return nil
}

// Validate implements Validator.
func (r *IntentRef) Validate() error {
	if r.Name == "" {
		return errors.New("intent missing name")
	}
	return nil
}

// UtteranceAck acknowledges a batch create or delete of utterances.
// N is the number of utterances affected.
type UtteranceAck struct {
	Sent bool `json:"sent"`
	N    int  `json:"n"`
}

// DetectedIntent is one ranked intent guess from text or audio analysis.
type DetectedIntent struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// DetectedEntity is one entity occurrence resolved from analyzed text.
// Value is absent when the resolved value is an interval; From and To are
// absent otherwise.
type DetectedEntity struct {
	ID         string                      `json:"id"`
	Name       string                      `json:"name"`
	Role       string                      `json:"role"`
	Start      int                         `json:"start"`
	End        int                         `json:"end"`
	Body       string                      `json:"body"`
	Confidence float64                     `json:"confidence"`
	Entities   map[string][]DetectedEntity `json:"entities,omitempty"`
	Value      json.RawMessage             `json:"value,omitempty"`
	From       *IntervalEndpoint           `json:"from,omitempty"`
	To         *IntervalEndpoint           `json:"to,omitempty"`
}

// IntervalEndpoint bounds one end of an interval-typed entity value.
type IntervalEndpoint struct {
	Unit  string          `json:"unit,omitempty"`
	Grain string          `json:"grain,omitempty"`
	Value json.RawMessage `json:"value"`
}

// DetectedTrait is one trait value resolved from analyzed text.
type DetectedTrait struct {
	ID         string          `json:"id"`
	Value      json.RawMessage `json:"value"`
	Confidence float64         `json:"confidence"`
}

// MessageResponse is the result of analyzing a text message. Intents are
// sorted by decreasing confidence; entity and trait maps carry a slice per
// name even when a single value was found.
type MessageResponse struct {
	Text     string                      `json:"text"`
	Intents  []DetectedIntent            `json:"intents"`
	Entities map[string][]DetectedEntity `json:"entities"`
	Traits   map[string][]DetectedTrait  `json:"traits"`
}

// Validate implements Validator.
func (r *MessageResponse) Validate() error {
	if r.Intents == nil && r.Entities == nil && r.Traits == nil {
		return errors.New("message response missing intents, entities and traits")
	}
	return nil
}

// Locale is one ranked language guess.
type Locale struct {
	Locale     string  `json:"locale"`
	Confidence float64 `json:"confidence"`
}

// LanguageResponse carries the locales detected in a query, ranked by
// decreasing confidence.
type LanguageResponse struct {
	DetectedLocales []Locale `json:"detected_locales"`
}

// Validate implements Validator.
func (r *LanguageResponse) Validate() error {
	if r.DetectedLocales == nil {
		return errors.New("language response missing detected_locales")
	}
	return nil
}

// DictationToken is a recognized token, typically one word, with its
// position in the audio in milliseconds.
type DictationToken struct {
	Confidence float64 `json:"confidence"`
	Start      int64   `json:"start"`
	End        int64   `json:"end"`
	Token      string  `json:"token"`
}

// DictationSpeech carries token-level detail for a transcription chunk.
type DictationSpeech struct {
	Confidence float64          `json:"confidence"`
	Tokens     []DictationToken `json:"tokens"`
}

// DictationResult is one partial transcription chunk from the dictation
// endpoint. IsFinal marks the end of a recognized segment; the service may
// continue sending further chunks after a final one.
type DictationResult struct {
	Speech  DictationSpeech `json:"speech"`
	Text    string          `json:"text"`
	IsFinal bool            `json:"is_final"`
}

// SpeechResult is one chunk from the speech endpoint: either a bare
// partial transcription or a full understanding of a recognized segment
// with intents, entities and traits.
type SpeechResult struct {
	Text     string                      `json:"text"`
	Intents  []DetectedIntent            `json:"intents"`
	Entities map[string][]DetectedEntity `json:"entities"`
	Traits   map[string][]DetectedTrait  `json:"traits"`
}

// Understanding reports whether the chunk carries extracted meaning rather
// than a transcription alone.
func (r *SpeechResult) Understanding() bool {
	return r.Intents != nil || r.Entities != nil || r.Traits != nil
}
