// Package card defines the Card record managed by the workspace engine, the
// closed set of card types with their default and minimum sizes, and the
// payload union that card content collaborators attach to a card.
//
// The engine reads only a card's identity, type and geometry. The [Payload]
// is carried along untouched; collaborators switch on its concrete type:
//
//	switch p := c.Data.(type) {
//	case *card.TerminalPayload:
//	    attach(p.SessionID)
//	case *card.ChatPayload:
//	    openTranscript(p.SessionID)
//	}
package card
