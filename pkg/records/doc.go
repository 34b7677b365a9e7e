// Package records exposes the contracts for fetching SRD records from files,
// an fs.FS or the remote API. The loader implementation lives under
// internal/records so the HTTP plumbing stays out of the public surface.
package records
