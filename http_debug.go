package wit

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting API communication problems: malformed requests,
// unexpected responses, authentication failures.
//
// Enable it with the WithDebugLogging option or by setting WIT_DEBUG=true
// or DEBUG=true in the environment. Dumps include full bodies and the
// bearer token, so keep it out of production logs.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		// Response dumps buffer the body, which would consume a dictation
		// or speech stream before the caller sees it; log headers only.
		if respDump, err := httputil.DumpResponse(resp, false); err == nil {
			log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// WIT_DEBUG=true targets this client; DEBUG=true is the broader
// development flag. Both are case-sensitive.
func debugLoggingRequested() bool {
	return os.Getenv("WIT_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
