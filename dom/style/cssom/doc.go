/*
Package cssom provides stylesheet objects for adoption into documents and shadow roots.

Status

Early draft—API may change frequently. Please stay patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Within this
module we are concerned with a small part of it only: constructable
stylesheets. A constructable stylesheet is created programmatically from CSS
text (not parsed from a <style> element) and may be shared between any
number of style scopes.

Stylesheet handling is de-coupled from any concrete CSS engine by introducing
interfaces StyleSheet and Platform. Clients have to provide a concrete
implementation of Platform (e.g., see package douceuradapter), which is
responsible for creating empty stylesheets, loading CSS text into them, and
enumerating the stylesheets attached to a document.

A Factory builds on a Platform. It creates stylesheets from CSS text
(FromString) and provides a snapshot of the document's stylesheets
(FromDocument).

Snapshot Lifecycle

The document snapshot is computed on first request to FromDocument and
cached in the factory. Every later call returns the identical *Snapshot,
even if the document's stylesheets have changed since. The snapshot is never
invalidated or reset; it lives as long as the factory. Applications which
want process-wide semantics hold a single factory for the lifetime of the
process. First access is guarded, so concurrent first calls compute the
snapshot exactly once.

Stylesheets of the document which deny access to their rules (e.g., cross-origin
links) are skipped; the snapshot continues with the next stylesheet. The errors
of skipped stylesheets are available from Snapshot.Skipped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'shadowcss.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("shadowcss.cssom")
}
