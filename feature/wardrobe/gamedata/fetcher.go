package gamedata

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"wardrobe-manager/feature/wardrobe/models"
)

// BuildPlaceholder is replaced by the build id in the figure document URL.
const BuildPlaceholder = "{build}"

// DocumentFetcher retrieves the figure and metadata documents.
// It issues exactly one request per call and never retries.
type DocumentFetcher struct {
	getter      Getter
	figureURL   string
	metadataURL string
}

// NewDocumentFetcher creates a fetcher. figureURL may contain BuildPlaceholder.
func NewDocumentFetcher(getter Getter, figureURL, metadataURL string) *DocumentFetcher {
	return &DocumentFetcher{getter: getter, figureURL: figureURL, metadataURL: metadataURL}
}

// FigureURL returns the figure document URL for build.
func (f *DocumentFetcher) FigureURL(build string) string {
	if strings.Contains(f.figureURL, BuildPlaceholder) {
		return strings.ReplaceAll(f.figureURL, BuildPlaceholder, build)
	}
	return strings.TrimRight(f.figureURL, "/") + "/" + build
}

// FetchFigureDocument returns the raw XML text of the figure document.
func (f *DocumentFetcher) FetchFigureDocument(ctx context.Context, build string) (string, error) {
	body, err := f.getter.Get(ctx, f.FigureURL(build))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchMetadataDocument returns the metadata JSON document.
// A body that is not JSON yields a *models.ParseError.
func (f *DocumentFetcher) FetchMetadataDocument(ctx context.Context) (json.RawMessage, error) {
	body, err := f.getter.Get(ctx, f.metadataURL)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, &models.ParseError{Document: "furnidata", Err: errors.New("response is not valid JSON")}
	}
	return json.RawMessage(body), nil
}
