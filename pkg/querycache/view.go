package querycache

import "context"

// View is a prefix-scoped window onto a Cache. A single-user process
// uses the unscoped view; the gateway gives each browser session its
// own prefix so one user's entries never serve another. All views
// share the one cache, its janitor and its metrics.
type View struct {
	c      *Cache
	prefix Key
}

func (c *Cache) View(prefix ...string) View {
	return View{c: c, prefix: NewKey(prefix...)}
}

func (v View) scoped(k Key) Key {
	if len(v.prefix) == 0 {
		return k
	}
	return v.prefix.Child(k...)
}

func (v View) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	return v.c.Get(ctx, v.scoped(key), fetch)
}

func (v View) Peek(key Key) (any, bool) {
	return v.c.Peek(v.scoped(key))
}

func (v View) Invalidate(prefix Key) {
	v.c.Invalidate(v.scoped(prefix))
}

func (v View) Remove(key Key) {
	v.c.Remove(v.scoped(key))
}

func (v View) Watch(key Key) (<-chan any, func()) {
	return v.c.Watch(v.scoped(key))
}
