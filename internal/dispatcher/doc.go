// Package dispatcher routes input actions to handlers and coordinates execution.
//
// The Router resolves an action name in order: a handler bound to the exact
// name, then the namespace handler ("sneak.forward" goes to "sneak"), then
// the fallback.
//
// When an action is dispatched:
//
//  1. An ExecutionContext is built from the document, cursor, jump list,
//     sneak session and a fresh settings snapshot
//  2. Pre-dispatch hooks run and may cancel the action
//  3. The handler runs, with panics turned into ErrPanic results
//  4. A motion that returns an operator range while an operator is pending
//     is followed by the matching "operator.*" action
//  5. Post-dispatch hooks run and metrics are recorded
//
// Dispatch is synchronous. Only one action executes at a time, which is
// what keeps the sneak session free of locking.
package dispatcher
