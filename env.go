package mila

// Env is one frame in the lexical scope chain: a set of named bindings
// plus a parent pointer. A frame is created on block entry or function
// entry and its bindings are released on exit; a Function value's Closure
// may extend a frame's effective lifetime past its syntactic scope — Go's
// garbage collector resolves the resulting Env/Function reference cycles,
// so no weak-pointer or arena scheme is needed to avoid the leak the C
// original's manual frame lists are vulnerable to.
type Env struct {
	vars   map[string]*Value
	parent *Env
	interp *Interpreter
}

// NewEnv creates a child frame of parent, inheriting its owning
// Interpreter (host I/O, search path, registered plugins).
func NewEnv(parent *Env) *Env {
	e := &Env{vars: make(map[string]*Value), parent: parent}
	if parent != nil {
		e.interp = parent.interp
	}
	return e
}

// newRootEnv creates the outermost frame of a fresh Interpreter.
func newRootEnv(interp *Interpreter) *Env {
	return &Env{vars: make(map[string]*Value), interp: interp}
}

// Interp returns the Interpreter this frame (transitively) belongs to.
func (e *Env) Interp() *Interpreter { return e.interp }

// Get searches the current frame upward and returns the first match
// without copying or retaining, or nil if name is unbound.
func (e *Env) Get(name string) *Value {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v
		}
	}
	return nil
}

// nameFunction tags an as-yet-unnamed function value with name, making
// stack traces and the plain/repr function rendering debuggable.
func nameFunction(name string, v *Value) {
	if v.kind == KindFunction && v.fn.Name == "" {
		v.fn.Name = name
	}
}

// SetLocal replaces or inserts name in the current frame only, retaining
// the new value and releasing any value it displaces.
func (e *Env) SetLocal(name string, v *Value) {
	nameFunction(name, v)
	if old, ok := e.vars[name]; ok {
		old.Release()
	}
	e.vars[name] = v.Retain()
}

// Set searches upward for an existing binding and overwrites it in its
// owning frame; if none exists, it inserts into the current frame.
func (e *Env) Set(name string, v *Value) {
	nameFunction(name, v)
	for cur := e; cur != nil; cur = cur.parent {
		if old, ok := cur.vars[name]; ok {
			old.Release()
			cur.vars[name] = v.Retain()
			return
		}
	}
	e.SetLocal(name, v)
}

// define binds a freshly constructed value (refcount 1, owned solely by
// the caller) into the current frame, then releases the caller's
// reference — SetLocal's own retain is what keeps it alive. Builtin
// registration uses this throughout so the constructor call and the
// binding read as a single expression.
func (e *Env) define(name string, v *Value) {
	e.SetLocal(name, v)
	v.Release()
}

// Free releases every binding owned by this frame. Called on block/call
// exit; it does not touch the parent chain, which may still be reachable
// from a retained closure.
func (e *Env) Free() {
	for _, v := range e.vars {
		v.Release()
	}
}
