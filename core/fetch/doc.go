// Package fetch performs the outbound GET requests of the wardrobe engine.
//
// Requests advertise gzip, deflate, br and zstd and the body is decoded with
// klauspost/compress or andybalholm/brotli according to Content-Encoding.
// Failures are reported as *Error, which carries the URL and either the HTTP
// status or the transport cause. The client never retries.
package fetch
