// Package textutil provides small text helpers shared by normalization and
// page rendering.
//
// The primary use cases are:
//   - Title-casing free-form names (cities, month headings) with Unicode-aware
//     rules from golang.org/x/text, so "são paulo" becomes "São Paulo"
//   - Deriving Markdown heading anchors that match the ones GitHub generates
package textutil
