// Package brezel is the composition root of the Brezel notes core.
//
// It connects the note operations (pkg/core) with the filesystem adapter
// (pkg/adapters/fs) that keeps a folder of markdown files in step with a
// sidecar metadata store.
//
// Layout:
//
//	<home>/BrezelNotes/
//	  <title>.md          note body, stored verbatim
//	  .metadata/
//	    <title>.md.json   {"id": "<uuid>"}
//
// Notes are addressed by title. Each note also carries a stable identifier
// that is minted once, the first time the note is listed or when it is
// created, and never reassigned while its sidecar exists.
//
// Usage:
//
//	svc, err := brezel.New(
//		brezel.WithDialogs(host),
//		brezel.WithLogger(logger),
//	)
//
//	notes, err := svc.GetNotes(ctx)
//	err = svc.WriteNote(ctx, "groceries", "- milk\n")
//	title, ok, err := svc.CreateNote(ctx) // asks host for a path
package brezel
