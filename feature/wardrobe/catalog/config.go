package catalog

import "time"

// Config holds the wardrobe engine settings.
type Config struct {
	// VersionURL is the primary external_variables endpoint.
	VersionURL string `mapstructure:"version_url" default:"https://www.habbo.com.br/gamedata/external_variables/1"`
	// VersionMirrorURL is tried when the primary fails.
	VersionMirrorURL string `mapstructure:"version_mirror_url" default:"https://sandbox.habbo.com/gamedata/external_variables/1"`
	// FigureDataURL is the figure document template; {build} is replaced by the build id.
	FigureDataURL string `mapstructure:"figuredata_url" default:"https://images.habbo.com/gordon/flash-assets-{build}/figuredata.xml"`
	// FurniDataURL is the metadata document endpoint.
	FurniDataURL string `mapstructure:"furnidata_url" default:"https://www.habbo.com.br/gamedata/furnidata_json/1"`
	ImagingURL   string `mapstructure:"imaging_url" default:"https://www.habbo.com/habbo-imaging/avatarimage"`
	// FallbackBuild is used when no version endpoint answers.
	FallbackBuild  string        `mapstructure:"fallback_build" default:"PRODUCTION-202601121522-867048149"`
	TimeoutSeconds int           `mapstructure:"timeout_seconds" default:"10"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl" default:"24h"`
	// FallbackTTL bounds how long a fallback result is served before retrying.
	FallbackTTL time.Duration `mapstructure:"fallback_ttl" default:"5m"`
	// CacheBackend selects memory, database or storage.
	CacheBackend string `mapstructure:"cache_backend" default:"memory"`
	// PublishPrefix is the bucket folder for published catalogs and cached objects.
	PublishPrefix string `mapstructure:"publish_prefix" default:"wardrobe"`
}

// VersionEndpoints returns the version endpoints in the order they are tried.
func (c Config) VersionEndpoints() []string {
	var out []string
	for _, u := range []string{c.VersionURL, c.VersionMirrorURL} {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
