package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/sneak/internal/dispatcher/handler"
)

// Router routes actions to handlers. An exact action name wins over its
// namespace, and the namespace over the fallback.
type Router struct {
	mu sync.RWMutex

	// actions holds handlers bound to one full action name.
	actions map[string]handler.Handler

	// namespaces maps "sneak" to the handler for "sneak.*".
	namespaces map[string]handler.NamespaceHandler

	// fallback handles actions no namespace claims.
	fallback handler.Handler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		actions:    make(map[string]handler.Handler),
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// Handle binds h to a single action name, replacing any earlier binding.
func (r *Router) Handle(actionName string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h == nil {
		delete(r.actions, actionName)
		return
	}
	r.actions[actionName] = h
}

// RegisterNamespace registers a handler for all actions in a namespace.
func (r *Router) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// UnregisterNamespace removes a namespace handler.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// SetFallback sets the fallback handler for unmatched actions.
func (r *Router) SetFallback(h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Route finds the handler for an action, or returns nil.
func (r *Router) Route(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.actions[actionName]; ok {
		return h
	}
	if ns := extractNamespace(actionName); ns != "" {
		if h, ok := r.namespaces[ns]; ok && h.CanHandle(actionName) {
			return handler.NewNamespaceAdapter(h)
		}
	}
	return r.fallback
}

// HasNamespace returns true if a handler is registered for the namespace.
func (r *Router) HasNamespace(namespace string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.namespaces[namespace]
	return ok
}

// Namespaces returns all registered namespace names, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extractNamespace returns "sneak" for "sneak.forward", or "" without a dot.
func extractNamespace(actionName string) string {
	idx := strings.IndexByte(actionName, '.')
	if idx < 0 {
		return ""
	}
	return actionName[:idx]
}

// BuildActionName joins a namespace and an action: "operator" and
// "delete" give "operator.delete".
func BuildActionName(namespace, action string) string {
	if namespace == "" {
		return action
	}
	return namespace + "." + action
}
