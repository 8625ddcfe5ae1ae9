package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; wardrobe-manager/1.0)"

// AcceptEncoding lists the content codings Client can decode.
const AcceptEncoding = "gzip, deflate, br, zstd"

// Config holds outbound HTTP settings.
type Config struct {
	// TimeoutSeconds bounds a whole request including the body read.
	TimeoutSeconds int
	// UserAgent overrides the default agent string.
	UserAgent string
}

// Client issues single GET requests without retries.
type Client struct {
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

// NewClient creates a Client with connection and header timeouts.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	return &Client{
		http:      &http.Client{Transport: transport, Timeout: timeoutDuration},
		userAgent: ua,
		logger:    logger,
	}
}

// Get fetches url and returns the decoded body.
// Any transport failure or non-2xx status is returned as *Error.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Encoding", AcceptEncoding)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("Fetched remote document",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, &Error{URL: url, Err: err}
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &Error{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	return data, nil
}

func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		return reader, nil
	case "deflate":
		reader, err := zlib.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("create deflate reader: %w", err)
		}
		return reader, nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "zstd":
		decoder, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		return decoder.IOReadCloser(), nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}
