// Package ingest contains the pass-through integrations with the external
// transcription and processing APIs.
//
// Every endpoint is a direct relay: the request payload goes upstream, the
// upstream answer comes back. When the processing API returns product
// bundles they are reconciled into the catalog on the way through, each
// bundle independently so one malformed record does not discard the rest of
// a batch.
//
// # HTTP Endpoints
//
//   - POST /api/voice-to-text      : multipart audio -> transcription
//   - POST /api/send-to-fastapi    : JSON or multipart file -> processing API
//   - POST /api/send-to-fastapi-ocr: multipart document -> OCR extraction
//   - GET  /api/fetch-and-store    : pull the upstream product feed
//
// Uploads are optionally archived to object storage before the relay, best
// effort only.
package ingest
