// Package writers turns annotated records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (GenBank flatfile, JSON/JSONL).
//   - Annotation packages stay format-agnostic; the app only picks a format name.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
