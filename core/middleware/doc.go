// Package middleware groups the Fiber middleware mounted in front of the
// wardrobe and integrity routes.
//
//   - auth: API key check, skipped for the swagger UI and disabled when no key is configured.
//   - rayid: per-request id stored in locals and echoed in the X-Ray-ID header.
package middleware
