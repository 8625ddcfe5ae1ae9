// Package gamedata talks to the remote game data endpoints.
//
// VersionResolver reads external_variables from a primary endpoint and a
// mirror and extracts the PRODUCTION-<date>-<serial> build token, falling
// back to a known build id. DocumentFetcher downloads the figure document
// for a build and the metadata document. Neither retries; the catalog
// aggregator decides what a failure means.
package gamedata
