// Package buffer provides read-only cursors and exclusive mutable views over a
// byte buffer, and interprets model types at positions within them.
//
// A Buffer owns its bytes for the whole session and is never resized.
//
// Cursors are read-only positions; any number may share one buffer. Next
// interprets a type at the cursor and advances past it only when the parse
// succeeded structurally. At interprets at an absolute position without moving
// the cursor and reports errs.ErrOutOfRange instead of reading past the end.
//
// Views are exclusive sub-ranges. A view is produced by Buffer.View or by
// splitting another view; splitting consumes the parent, so the live views of
// one tree are always disjoint. Using a consumed view fails with
// errs.ErrViewConsumed. Each view records its absolute offset in the buffer,
// and a child's offset is its parent's offset plus its relative start.
//
// Relative and Absolute carve a type-sized body out of a view and constitute
// it in place, handing back the still-exclusive head and tail alongside it.
package buffer
