package dexdecode

// DexEvent is the closed union of every event this decoder can emit. It is
// implemented only by the event structs declared in this module; the marker
// method keeps the set closed without resorting to a runtime type switch
// over an empty interface.
type DexEvent interface {
	isDexEvent()
	// Metadata returns the event's attached EventMetadata, common to every
	// variant.
	Metadata() EventMetadata
}

// baseEvent is embedded first in every variant, satisfying the "metadata is
// the first field" data-model invariant and giving every variant its
// Metadata() accessor for free.
type baseEvent struct {
	Meta EventMetadata
}

func (b baseEvent) Metadata() EventMetadata { return b.Meta }
func (b baseEvent) isDexEvent()             {}
