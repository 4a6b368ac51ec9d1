// Package ecmcapabilities defines the closed set of capability tags, service
// profiles, and canonical adapter identifiers used across Firefly ECM.
//
// The package is pure metadata: it carries no runtime behavior beyond lookups.
// Microservices, the adapter catalog, and tooling all consume the same Known
// registry so that an adapter technology is described exactly once.
//
// Lookups accept canonical IDs, product names, and aliases:
//
//	id, ok := ecmcapabilities.ParseID("aws-s3") // -> ecmcapabilities.S3, true
//	info := ecmcapabilities.MustGet(id)
//
// Capability tags are additive only; removing or renaming a tag is a breaking
// change for every registered adapter.
package ecmcapabilities
