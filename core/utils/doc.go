// Package utils contains small conversion helpers for loosely typed values.
//
// Product bundles arrive as schema-less JSON where numbers may be encoded as
// strings and booleans as 0/1. These helpers normalize such values without
// panicking on unexpected types.
package utils
