// Package manifest declares which files a complete DDK-RN install must
// contain and checks a package root against that list.
//
// The list lives in the embedded files.yaml and is validated against
// schema/files.schema.json when loaded. Shipped sources are required;
// platform artifacts are reported but never fail verification, since a
// platform build may have been skipped on purpose.
package manifest
