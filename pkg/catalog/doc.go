// Package catalog moves enumeration members across process boundaries. It
// defines the flat record schema shared by every catalog file and endpoint
// (text, value, index, oid, isVisible), JSON and YAML codecs over it, file
// and directory loaders, field validation, and a drift comparison between
// deployed catalogs and the live registry.
//
// Catalogs are snapshots. Nothing in this package mutates a Set; registries
// are populated in code and only ever exported here.
package catalog
