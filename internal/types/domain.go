package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// EntityRef is the basic information the list endpoint returns per entity.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IntentRef is the basic information the list endpoint returns per intent.
type IntentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TraitRef is the basic information the list endpoint returns per trait.
type TraitRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Keyword is a canonical entity value together with its aliases.
type Keyword struct {
	Keyword  string   `json:"keyword"`
	Synonyms []string `json:"synonyms"`
}

// Entity represents a named slot type, built-in or custom. Built-in
// entities carry the wit$ name prefix. Lookups and keywords are absent
// for built-in entities.
type Entity struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Roles    []string  `json:"roles"`
	Lookups  []string  `json:"lookups,omitempty"`
	Keywords []Keyword `json:"keywords,omitempty"`
}

// Intent represents a classification label. Entities lists the entities
// associated with the intent; only the get endpoint populates it.
type Intent struct {
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Entities []EntityRef `json:"entities,omitempty"`
}

// Trait represents a categorical attribute with a fixed set of values.
type Trait struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Utterance is a labeled training example as returned by the list endpoint.
type Utterance struct {
	Text     string               `json:"text"`
	Intent   IntentRef            `json:"intent"`
	Entities []UtteranceSpan      `json:"entities"`
	Traits   []UtteranceTraitInfo `json:"traits"`
}

// UtteranceSpan is an entity annotation on a stored utterance. Start is
// inclusive and End exclusive, both offsets into the utterance text.
type UtteranceSpan struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Role     string          `json:"role"`
	Start    int             `json:"start"`
	End      int             `json:"end"`
	Body     string          `json:"body"`
	Entities []UtteranceSpan `json:"entities"`
}

// UtteranceTraitInfo is a trait annotation on a stored utterance.
type UtteranceTraitInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AudioEncoding declares the content type of an audio byte stream sent to
// the speech and dictation endpoints.
type AudioEncoding string

// Audio encodings the service accepts.
const (
	AudioWAV AudioEncoding = "audio/wav"
	AudioMP3 AudioEncoding = "audio/mpeg3"
	AudioOGG AudioEncoding = "audio/ogg"
)
