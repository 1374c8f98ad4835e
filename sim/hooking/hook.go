// Package hooking lets observers attach to the units and the network of a
// simulation without the simulated models knowing about them.
package hooking

// HookPos names a point in the simulation where hooks are invoked, such as a
// clamped input or a finished batch. Positions are compared by pointer.
type HookPos struct {
	Name string
}

// String returns the name of the position.
func (p *HookPos) String() string {
	return p.Name
}

// HookCtx describes one invocation. Domain is the unit or network that fired
// the hook. Item is the value the position is about, and Detail carries
// anything else the position documents.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable is implemented by everything that fires hooks.
type Hookable interface {
	// AcceptHook attaches a hook. Hooks run in the order they were attached.
	AcceptHook(hook Hook)

	// NumHooks returns the number of attached hooks.
	NumHooks() int

	// Hooks returns the attached hooks.
	Hooks() []Hook
}

// Hook observes a Hookable. Func runs on the goroutine that steps the
// network, so it must not block.
type Hook interface {
	Func(ctx HookCtx)
}

// HookFunc turns a function into a Hook.
type HookFunc func(ctx HookCtx)

// Func calls f.
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}

// HookableBase keeps the hooks of a unit or a network. Embed it to implement
// Hookable.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of attached hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// Hooks returns a copy of the attached hooks.
func (h *HookableBase) Hooks() []Hook {
	return append([]Hook(nil), h.hookList...)
}

// AcceptHook attaches a hook. Attaching the same hook value twice panics,
// except for HookFuncs, which cannot be compared.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.mustNotHaveDuplicatedHook(hook)
	h.hookList = append(h.hookList, hook)
}

func (h *HookableBase) mustNotHaveDuplicatedHook(hook Hook) {
	if _, isFunc := hook.(HookFunc); isFunc {
		return
	}

	for _, attached := range h.hookList {
		if attached == hook {
			panic("hook attached twice")
		}
	}
}

// InvokeHook runs every attached hook with ctx.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}
