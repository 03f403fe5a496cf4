// Package upstream contains the clients for the two external collaborators:
// the transcription API (audio in, text out) and the processing API (JSON or
// file in, product bundles out).
//
// Both clients are plain pass-throughs. No retries, no backoff: a failed
// call surfaces immediately as *upstream.Error carrying the upstream status
// and body, which the HTTP layer echoes to the caller.
//
// Handlers depend on the Transcriber and Processor interfaces so tests can
// substitute mocks (see the mocks subpackage).
package upstream
