package gamedata

import (
	"context"
	"regexp"

	"go.uber.org/zap"
)

// FallbackBuildID is the last known good asset build.
const FallbackBuildID = "PRODUCTION-202601121522-867048149"

var (
	buildPattern    = regexp.MustCompile(`PRODUCTION-\d{8,14}-\d{6,12}`)
	flashURLPattern = regexp.MustCompile(`(?m)^flash\.client\.url=(.*)$`)
)

// Getter performs one HTTP GET. *fetch.Client implements it.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// VersionResolver discovers the current build id from external variables.
type VersionResolver struct {
	getter    Getter
	endpoints []string
	fallback  string
	logger    *zap.Logger
}

// NewVersionResolver tries endpoints in order and falls back to fallback.
func NewVersionResolver(getter Getter, endpoints []string, fallback string, logger *zap.Logger) *VersionResolver {
	if fallback == "" {
		fallback = FallbackBuildID
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VersionResolver{getter: getter, endpoints: endpoints, fallback: fallback, logger: logger}
}

// Fallback returns the build id used when no endpoint answers.
func (r *VersionResolver) Fallback() string {
	return r.fallback
}

// Resolve returns the first build id found. It never fails.
func (r *VersionResolver) Resolve(ctx context.Context) string {
	for _, endpoint := range r.endpoints {
		if endpoint == "" {
			continue
		}
		body, err := r.getter.Get(ctx, endpoint)
		if err != nil {
			r.logger.Warn("Version endpoint failed", zap.String("url", endpoint), zap.Error(err))
			continue
		}
		if build, ok := ExtractBuildID(body); ok {
			r.logger.Debug("Resolved build id", zap.String("url", endpoint), zap.String("build", build))
			return build
		}
		r.logger.Warn("No build id in version response", zap.String("url", endpoint))
	}
	r.logger.Warn("Using fallback build id", zap.String("build", r.fallback))
	return r.fallback
}

// ExtractBuildID finds the build token in an external variables body.
// The flash.client.url line is preferred over any other occurrence.
func ExtractBuildID(body []byte) (string, bool) {
	for _, line := range flashURLPattern.FindAllSubmatch(body, -1) {
		if m := buildPattern.Find(line[1]); m != nil {
			return string(m), true
		}
	}
	if m := buildPattern.Find(body); m != nil {
		return string(m), true
	}
	return "", false
}
