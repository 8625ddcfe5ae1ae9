// Package wardrobe exposes the resolved wardrobe catalog over HTTP.
//
// The heavy lifting lives in the sub-packages: gamedata fetches the remote
// documents, figuredata and furnidata parse them, correction repairs
// category assignments, classify assigns acquisition tiers, imaging builds
// preview URLs and catalog ties the pipeline together behind a cache.
//
// This package adds the query surface on top of the catalog: gender
// filtering, palettes, item names, statistics, fuzzy search, cache control
// and publishing to object storage.
package wardrobe
