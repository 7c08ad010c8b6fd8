package mila

import (
	"plugin"

	"golang.org/x/sync/singleflight"
)

// loadedPlugin records one dynamically loaded library and the native
// function it exported, keyed by resolved path so a second load() of the
// same library is a cache hit rather than a second dlopen-equivalent.
type loadedPlugin struct {
	path string
	p    *plugin.Plugin
}

var pluginLoadGroup singleflight.Group

// loadPlugin resolves name on the search path and opens it as a Go
// plugin, looking up a symbol named Register with the signature
// func(*Env). Concurrent loads of the same resolved path are
// deduplicated via singleflight so the underlying dlopen-equivalent runs
// at most once. Go's plugin package only supports Linux, FreeBSD and
// macOS with cgo enabled — there is no Windows target, a hard platform
// limitation this loader inherits rather than works around.
func (it *Interpreter) loadPlugin(name string) *Value {
	path, err := it.resolvePath(name)
	if err != nil {
		return NewErrorf("%s", err.Error())
	}

	if lp, ok := it.plugins[path]; ok {
		return it.bindPlugin(lp)
	}

	v, err, _ := pluginLoadGroup.Do(path, func() (any, error) {
		p, err := plugin.Open(path)
		if err != nil {
			return nil, err
		}
		return &loadedPlugin{path: path, p: p}, nil
	})
	if err != nil {
		return NewErrorf("failed to load %q: %s", name, err.Error())
	}
	lp := v.(*loadedPlugin)
	it.plugins[path] = lp
	return it.bindPlugin(lp)
}

func (it *Interpreter) bindPlugin(lp *loadedPlugin) *Value {
	sym, err := lp.p.Lookup("Register")
	if err != nil {
		return NewErrorf("plugin %q exports no Register symbol", lp.path)
	}
	register, ok := sym.(func(*Env))
	if !ok {
		return NewErrorf("plugin %q's Register has the wrong signature", lp.path)
	}
	register(it.Global)
	return NewBool(true)
}
