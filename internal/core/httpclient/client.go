package httpclient

import (
	"net/http"
	"time"

	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/core/proxy"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries a per-call identifier so backend logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// LoggingRoundTripper tags outgoing requests with a request id and logs them.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		req = req.Clone(req.Context())
		requestID = uuid.NewString()
		req.Header.Set(RequestIDHeader, requestID)
	}

	log := logger.For("http").With(
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.String("request_id", requestID),
	)

	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Options configures NewClient.
type Options struct {
	// Timeout bounds a whole round trip. Zero means no timeout.
	Timeout time.Duration
	// Proxy routes backend calls through an upstream proxy when configured.
	Proxy proxy.Settings
}

// NewClient returns an http.Client with logging and request id middleware.
func NewClient(opts Options) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: baseTransport(opts.Proxy),
		},
		Timeout: opts.Timeout,
	}
}

func baseTransport(p proxy.Settings) http.RoundTripper {
	proxyURL := p.URL()
	if proxyURL == nil {
		return http.DefaultTransport
	}

	var tr *http.Transport
	if def, ok := http.DefaultTransport.(*http.Transport); ok {
		tr = def.Clone()
	} else {
		tr = &http.Transport{}
	}
	tr.Proxy = http.ProxyURL(proxyURL)

	logger.For("http").Debug("Backend calls routed through proxy", zap.String("proxy", p.HostPort()))
	return tr
}
