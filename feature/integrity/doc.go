// Package integrity provides deployment health checks for the wardrobe service.
//
// # Checks Provided
//
//   - Structure: Checks that the publish prefix and its cache folder exist in the storage bucket.
//   - Catalog: Verifies that the published categories and manifest objects are present.
//   - Server: Validates that the cache table schema matches the GORM model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/catalog : Runs published catalog check.
//   - GET /integrity/server : Runs server schema check.
package integrity
