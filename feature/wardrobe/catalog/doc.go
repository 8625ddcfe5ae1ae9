// Package catalog assembles the wardrobe catalog.
//
// The Aggregator resolves the build id, fetches the figure and metadata
// documents, then runs them through correction, classification and grouping.
// Every step is cached through core/cache. When any step fails the embedded
// data set is run through the same Builder, so callers always receive a
// populated catalog of the same shape.
//
// The Publisher uploads a resolved catalog and its manifest to object storage.
package catalog
