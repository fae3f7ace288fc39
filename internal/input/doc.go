// Package input turns key events into editor actions.
//
// A Handler feeds key events through the vim parser and keeps the
// pending state (count, register, operator, partial key sequence) in a
// Context. When a command is complete it is returned as an Action for
// the dispatcher:
//
//	h := input.NewHandler()
//	if action, ok := h.HandleKeyEvent(ev); ok {
//	    d.Dispatch(action)
//	}
package input
