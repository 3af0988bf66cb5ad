// Package types defines the record model, the RecordStore interface, backend
// configuration, and the standard errors shared by the dashboard packages.
//
// Records are schemaless maps decoded from JSON. Helpers in this package read
// identifiers, strings, and amounts out of them with the coercion rules the
// table views and statistics rely on.
package types
