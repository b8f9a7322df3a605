package reconcile

import "github.com/emrgen/dispatch/internal/model"

// EffectiveDocument is the document a work event accounts for, whichever of
// the two reference shapes the row uses. Legacy is true when the reference
// came from the direct incoming/outgoing pair.
type EffectiveDocument struct {
	DocumentID uint
	Direction  Direction
	Legacy     bool
}

// EffectiveDocumentRef resolves a work event's document reference: the legacy
// incoming/outgoing pair wins, the unified DocumentID + DocumentDirection
// pair is the fallback. Returns false when the event references no document.
//
// Every consumer of work-event document references goes through here; the
// fallback order is not duplicated anywhere else.
func EffectiveDocumentRef(ev *model.WorkEvent) (EffectiveDocument, bool) {
	if ev.IncomingDocumentID != nil {
		return EffectiveDocument{DocumentID: *ev.IncomingDocumentID, Direction: DirectionIncoming, Legacy: true}, true
	}
	if ev.OutgoingDocumentID != nil {
		return EffectiveDocument{DocumentID: *ev.OutgoingDocumentID, Direction: DirectionOutgoing, Legacy: true}, true
	}
	if ev.DocumentID != nil {
		// rows missing the direction are counted as incoming, the common case
		// for agency correspondence
		dir := DirectionIncoming
		if ev.DocumentDirection != nil {
			dir = Direction(*ev.DocumentDirection)
		}
		return EffectiveDocument{DocumentID: *ev.DocumentID, Direction: dir}, true
	}
	return EffectiveDocument{}, false
}
