// Package models defines the wardrobe data model shared by the engine stages:
// palettes and colors, raw and classified items, categories and the cached
// catalog, together with the fixed table of known body-region categories.
package models
