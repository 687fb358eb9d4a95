// Package enum implements rich enumerations: singleton member values that
// carry display text, a stable numeric value, a presentation sort index, a
// 128-bit object identifier, and a visibility flag.
//
// Each member type embeds Entry and registers its members in a Set, which
// preserves registration order, enforces value and index uniqueness,
// auto-assigns omitted numbers, and serves index-sorted and visible-only
// snapshots. Sets publish themselves in a process-wide directory so generic
// tooling (catalog exporters, HTTP surfaces, CLIs) can enumerate them by name
// without knowing their member types.
package enum
