// Package wit is a typed client for the Wit.ai HTTP API: entities,
// intents, traits, utterances, message analysis, language detection and
// speech/dictation transcription.
package wit

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/conversekit/wit-client/internal/api"
)

// DefaultAPIHost is the production endpoint of the service.
const DefaultAPIHost = "https://api.wit.ai"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client issues requests against the service on behalf of one app. The
// token and version are fixed at construction and attached identically to
// every call; a Client is immutable after New returns and safe for
// concurrent use.
type Client struct {
	apiHost string
	version string
	token   string
	http    *http.Client
}

// New constructs a Client with the given bearer token and API version
// (a date-stamped string such as "20240215"). Construction performs no
// I/O and does not validate the token against the service; a bad token
// fails at call time with an authentication error.
// Additional options can be provided via functional arguments.
func New(token, version string, opts ...Option) *Client {
	if token == "" {
		panic("token cannot be empty")
	}
	if version == "" {
		panic("version cannot be empty")
	}

	c := &Client{
		apiHost: DefaultAPIHost,
		version: version,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap HTTP transport to automatically add the Authorization header.
	c.wrapTransportWithToken()

	return c
}

// Version returns the API version the client was constructed with.
func (c *Client) Version() string { return c.version }

// wrapTransportWithToken wraps the HTTP client's transport to add the
// Authorization header to all requests using the configured token.
func (c *Client) wrapTransportWithToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:  baseTransport,
		token: c.token,
	}
}

// bearerTransport wraps an http.RoundTripper to add the Authorization
// header.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Entity operations - delegated to internal/api
// --------------------------------------------------------------------

// ListEntities returns basic information about all entities of the app.
func (c *Client) ListEntities(ctx context.Context) ([]EntityRef, error) {
	return api.ListEntities(ctx, c.http, c.apiHost, c.version)
}

// CreateEntity creates a new entity. The name must be unique among the
// app's entities.
func (c *Client) CreateEntity(ctx context.Context, req NewEntity) (*Entity, error) {
	return api.CreateEntity(ctx, c.http, c.apiHost, c.version, req)
}

// GetEntity retrieves the entity with the given name.
func (c *Client) GetEntity(ctx context.Context, name string) (*Entity, error) {
	return api.GetEntity(ctx, c.http, c.apiHost, c.version, name)
}

// UpdateEntity overwrites the entity currently named name. Omitted
// lookups and keywords are left unchanged.
func (c *Client) UpdateEntity(ctx context.Context, name string, req UpdateEntity) (*Entity, error) {
	return api.UpdateEntity(ctx, c.http, c.apiHost, c.version, name, req)
}

// DeleteEntity deletes the entity with the given name.
func (c *Client) DeleteEntity(ctx context.Context, name string) (*DeleteResponse, error) {
	return api.DeleteEntity(ctx, c.http, c.apiHost, c.version, name)
}

// --------------------------------------------------------------------
// Intent operations - delegated to internal/api
// --------------------------------------------------------------------

// ListIntents returns basic information about all intents of the app.
func (c *Client) ListIntents(ctx context.Context) ([]IntentRef, error) {
	return api.ListIntents(ctx, c.http, c.apiHost, c.version)
}

// CreateIntent creates a new intent. Intents cannot be updated once
// created, only deleted and recreated.
func (c *Client) CreateIntent(ctx context.Context, name string) (*IntentRef, error) {
	return api.CreateIntent(ctx, c.http, c.apiHost, c.version, name)
}

// GetIntent retrieves the intent with the given name, including its
// associated entities.
func (c *Client) GetIntent(ctx context.Context, name string) (*Intent, error) {
	return api.GetIntent(ctx, c.http, c.apiHost, c.version, name)
}

// DeleteIntent deletes the intent with the given name.
func (c *Client) DeleteIntent(ctx context.Context, name string) (*DeleteResponse, error) {
	return api.DeleteIntent(ctx, c.http, c.apiHost, c.version, name)
}

// --------------------------------------------------------------------
// Trait operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTraits returns basic information about all traits of the app.
func (c *Client) ListTraits(ctx context.Context) ([]TraitRef, error) {
	return api.ListTraits(ctx, c.http, c.apiHost, c.version)
}

// CreateTrait creates a new trait with the given allowed values.
func (c *Client) CreateTrait(ctx context.Context, req NewTrait) (*Trait, error) {
	return api.CreateTrait(ctx, c.http, c.apiHost, c.version, req)
}

// GetTrait retrieves the trait with the given name.
func (c *Client) GetTrait(ctx context.Context, name string) (*Trait, error) {
	return api.GetTrait(ctx, c.http, c.apiHost, c.version, name)
}

// DeleteTrait deletes the trait with the given name.
func (c *Client) DeleteTrait(ctx context.Context, name string) (*DeleteResponse, error) {
	return api.DeleteTrait(ctx, c.http, c.apiHost, c.version, name)
}

// --------------------------------------------------------------------
// Utterance operations - delegated to internal/api
// --------------------------------------------------------------------

// ListUtterances returns stored training utterances, paginated and
// optionally filtered by intent.
func (c *Client) ListUtterances(ctx context.Context, req ListUtterancesRequest) ([]Utterance, error) {
	return api.ListUtterances(ctx, c.http, c.apiHost, c.version, req)
}

// CreateUtterances adds training utterances in one call.
func (c *Client) CreateUtterances(ctx context.Context, utterances []NewUtterance) (*UtteranceAck, error) {
	return api.CreateUtterances(ctx, c.http, c.apiHost, c.version, utterances)
}

// DeleteUtterances deletes the utterances with the given text values in a
// single batch call.
func (c *Client) DeleteUtterances(ctx context.Context, texts []string) (*UtteranceAck, error) {
	return api.DeleteUtterances(ctx, c.http, c.apiHost, c.version, texts)
}

// --------------------------------------------------------------------
// Analysis operations - delegated to internal/api
// --------------------------------------------------------------------

// Message analyzes a text query and returns the detected intents,
// entities and traits.
func (c *Client) Message(ctx context.Context, text string, opts MessageOptions) (*MessageResponse, error) {
	return api.Message(ctx, c.http, c.apiHost, c.version, text, opts)
}

// DetectLanguage returns ranked language guesses for the given text.
// Limit bounds the number of guesses (1 to 8); zero keeps the service
// default of 1.
func (c *Client) DetectLanguage(ctx context.Context, text string, limit int) (*LanguageResponse, error) {
	return api.DetectLanguage(ctx, c.http, c.apiHost, c.version, text, limit)
}

// --------------------------------------------------------------------
// Audio operations - delegated to internal/api (streaming responses)
// --------------------------------------------------------------------

// Dictation transcribes an already-encoded audio byte stream. The result
// is a stream of partial transcriptions; consume it with Iter or Collect.
// Breaking out of the iteration closes the underlying connection.
func (c *Client) Dictation(ctx context.Context, audio io.Reader, encoding AudioEncoding) (*DictationStream, error) {
	return api.Dictation(ctx, c.http, c.apiHost, c.version, audio, encoding)
}

// Speech transcribes and analyzes an already-encoded audio byte stream.
// Chunks arrive as each speech segment is recognized, mixing partial
// transcriptions with full understanding results; consume the stream with
// Iter or Collect. Breaking out of the iteration closes the underlying
// connection.
func (c *Client) Speech(ctx context.Context, audio io.Reader, encoding AudioEncoding) (*SpeechStream, error) {
	return api.Speech(ctx, c.http, c.apiHost, c.version, audio, encoding)
}
