package types

import "encoding/json"

// ------------------------------
// Request Types
// ------------------------------

// NewEntity holds parameters for creating an entity. Name is required and
// must be unique among the app's entities. Leaving Lookups empty creates
// both lookup strategies (free-text and keywords).
type NewEntity struct {
	Name     string    `json:"name"`
	Roles    []string  `json:"roles"`
	Lookups  []string  `json:"lookups,omitempty"`
	Keywords []Keyword `json:"keywords,omitempty"`
}

// UpdateEntity holds the fields to change on an existing entity. Omitted
// lookups and keywords are left unchanged by the service.
type UpdateEntity struct {
	Name     string    `json:"name"`
	Roles    []string  `json:"roles"`
	Lookups  []string  `json:"lookups,omitempty"`
	Keywords []Keyword `json:"keywords,omitempty"`
}

// NewIntent holds parameters for creating an intent.
type NewIntent struct {
	Name string `json:"name"`
}

// NewTrait holds parameters for creating a trait.
type NewTrait struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// NewUtterance holds parameters for creating a training utterance.
// Entities and traits must reference preexisting resources by name.
// Intent is empty when the utterance is out of scope.
type NewUtterance struct {
	Text     string              `json:"text"`
	Intent   string              `json:"intent,omitempty"`
	Entities []NewUtteranceSpan  `json:"entities"`
	Traits   []NewUtteranceTrait `json:"traits"`
}

// NewUtteranceSpan annotates an entity occurrence inside an utterance.
// Entity is the name:role pair (wit$number:number for built-ins), Start is
// inclusive and End exclusive, and Body is the value as it appears in the
// text.
type NewUtteranceSpan struct {
	Entity   string             `json:"entity"`
	Start    int                `json:"start"`
	End      int                `json:"end"`
	Body     string             `json:"body"`
	Entities []NewUtteranceSpan `json:"entities"`
}

// NewUtteranceTrait annotates a trait value on an utterance.
type NewUtteranceTrait struct {
	Trait string `json:"trait"`
	Value string `json:"value"`
}

// ListUtterancesRequest filters the utterance list endpoint. Limit is
// required (1 to 10000); Offset defaults to 0; Intents restricts results
// to utterances labeled with one of the named intents.
type ListUtterancesRequest struct {
	Limit   int
	Offset  int
	Intents []string
}

// MessageContext carries user-side context sent with a message request.
// It is JSON-serialized into the context query parameter.
type MessageContext struct {
	// Local date and time of the user in RFC3339 format, not UTC.
	ReferenceTime string `json:"reference_time,omitempty"`
	// IANA timezone, used only when ReferenceTime is absent.
	Timezone string `json:"timezone,omitempty"`
	// ISO639-1 language code, underscore, ISO3166 alpha2 country code.
	Locale string       `json:"locale,omitempty"`
	Coords *Coordinates `json:"coords,omitempty"`
}

// Coordinates improves ranking of resolved location values.
type Coordinates struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// DynamicEntities maps entity names to per-request keyword extensions,
// JSON-serialized into the entities query parameter of a message request.
type DynamicEntities map[string][]Keyword

// MessageOptions tunes a message analysis request. The zero value sends
// the query alone.
type MessageOptions struct {
	// Tag selects a versioned snapshot of the app.
	Tag string
	// Limit is the maximum number of n-best intents and traits to return,
	// between 1 and 8. Zero means the service default of 1.
	Limit           int
	Context         *MessageContext
	DynamicEntities DynamicEntities
}

// deleteUtterance is the per-text element of the batch delete body.
type deleteUtterance struct {
	Text string `json:"text"`
}

// DeleteUtterancesBody builds the batch delete payload from utterance texts.
func DeleteUtterancesBody(texts []string) json.RawMessage {
	body := make([]deleteUtterance, 0, len(texts))
	for _, t := range texts {
		body = append(body, deleteUtterance{Text: t})
	}
	raw, err := json.Marshal(body)
	if err != nil {
		// A slice of plain string structs cannot fail to marshal.
		panic(err)
	}
	return raw
}
