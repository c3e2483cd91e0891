// Package editor is the idempotent text-editing engine.
//
// An Editor is built from one types.EditSpec. Construction normalizes and
// compiles every pattern up front, so a spec with a bad match fails before
// the file is touched. After that the Editor answers three questions, each
// of which reads the file afresh:
//
//   - Exists: does the file already reflect the desired state? Read-only.
//   - Create: replace every match of the match pattern with the ensure-text,
//     or append the ensure-text when nothing matches.
//   - Destroy: delete every match of the match pattern.
//
// Hosts are expected to call Create or Destroy only when Exists disagrees
// with the desired ensure state. Create checks this and fails with
// CONTRACT_VIOLATION otherwise.
//
// There is no locking. Another process writing the same file between the
// read and the write of one call loses its changes.
package editor
