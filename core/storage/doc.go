// Package storage provides the optional upload archive.
//
// Audio files and documents submitted to the ingest endpoints are relayed to
// upstream services and would otherwise leave no trace. When the archive is
// enabled, each upload is written to an S3-compatible bucket before the
// relay so submissions can be replayed or audited later.
//
// Archiving is best effort: a storage failure is logged and never fails the
// request that carried the upload.
package storage
