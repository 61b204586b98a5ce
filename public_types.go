package wit

import "github.com/conversekit/wit-client/internal/types"

// Public type aliases so SDK consumers can import only this package.
// Requests
type (
	NewEntity             = types.NewEntity
	UpdateEntity          = types.UpdateEntity
	NewTrait              = types.NewTrait
	NewUtterance          = types.NewUtterance
	NewUtteranceSpan      = types.NewUtteranceSpan
	NewUtteranceTrait     = types.NewUtteranceTrait
	ListUtterancesRequest = types.ListUtterancesRequest
	MessageOptions        = types.MessageOptions
	MessageContext        = types.MessageContext
	Coordinates           = types.Coordinates
	DynamicEntities       = types.DynamicEntities

	// Domain entities
	Entity             = types.Entity
	EntityRef          = types.EntityRef
	Intent             = types.Intent
	IntentRef          = types.IntentRef
	Trait              = types.Trait
	TraitRef           = types.TraitRef
	Keyword            = types.Keyword
	Utterance          = types.Utterance
	UtteranceSpan      = types.UtteranceSpan
	UtteranceTraitInfo = types.UtteranceTraitInfo
	AudioEncoding      = types.AudioEncoding

	// Responses
	DeleteResponse   = types.DeleteResponse
	UtteranceAck     = types.UtteranceAck
	MessageResponse  = types.MessageResponse
	DetectedIntent   = types.DetectedIntent
	DetectedEntity   = types.DetectedEntity
	DetectedTrait    = types.DetectedTrait
	IntervalEndpoint = types.IntervalEndpoint
	LanguageResponse = types.LanguageResponse
	Locale           = types.Locale
	DictationResult  = types.DictationResult
	DictationSpeech  = types.DictationSpeech
	DictationToken   = types.DictationToken
	SpeechResult     = types.SpeechResult

	// Streams
	DictationStream = types.Stream[types.DictationResult]
	SpeechStream    = types.Stream[types.SpeechResult]
)

// Audio encodings accepted by the speech and dictation endpoints.
const (
	AudioWAV = types.AudioWAV
	AudioMP3 = types.AudioMP3
	AudioOGG = types.AudioOGG
)

// Errors re-exported in errors.go
