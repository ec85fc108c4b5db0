// Package wire implements the document encoding used on the wire.
//
// IEEE 2030.5 resources travel as XML documents. Each resource type in
// pkg/model declares its document contract statically through xml struct
// tags (element name per field, omitempty for optional elements), and the
// generic routines here turn validated resources into canonical documents
// and parse server documents back into resources.
//
// Documents are XML fragments: no XML declaration is emitted, matching
// the bodies the utility server expects on POST and PUT. Element order is
// fixed by the resource struct definitions, so encoding a given resource
// is byte-for-byte reproducible.
package wire
