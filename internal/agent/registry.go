package agent

// Registry holds agents in registration order. Keyword routing scans the
// ordered list, so registration order is the routing precedence.
type Registry struct {
	routes []string
	agents map[string]Agent
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		agents: make(map[string]Agent),
	}
}

// Register adds an agent under a route key. Re-registering a route
// replaces the agent but keeps its original position.
func (r *Registry) Register(route string, a Agent) {
	if _, ok := r.agents[route]; !ok {
		r.routes = append(r.routes, route)
	}
	r.agents[route] = a
}

// Get returns the agent registered under the route key.
func (r *Registry) Get(route string) (Agent, bool) {
	a, ok := r.agents[route]
	return a, ok
}

// Routes returns the route keys in registration order.
func (r *Registry) Routes() []string {
	out := make([]string, len(r.routes))
	copy(out, r.routes)
	return out
}

// All returns the agents in registration order.
func (r *Registry) All() []Agent {
	out := make([]Agent, 0, len(r.routes))
	for _, route := range r.routes {
		out = append(out, r.agents[route])
	}
	return out
}
