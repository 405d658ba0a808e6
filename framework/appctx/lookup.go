package appctx

import "reflect"

// ── Name and type lookups ────────────────────────────────────────────────────

// GetBean returns the bean registered under the given name.
func (c *Context) GetBean(name string) (any, error) {
	idx, ok := c.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return c.order[idx].value, nil
}

// GetBeanByType returns the first committed bean of the given type. Unlike
// dependency resolution, a direct type lookup never treats multiple matches
// as an error — the earliest one wins.
func (c *Context) GetBeanByType(t reflect.Type) (any, error) {
	matches := c.indicesOf(t)
	if len(matches) == 0 {
		return nil, &NotFoundError{Type: t}
	}
	return c.order[matches[0]].value, nil
}

// GetBeans returns every committed bean of the given type, in the order
// their factories succeeded. The result is empty, never an error, when no
// bean matches.
func (c *Context) GetBeans(t reflect.Type) []any {
	matches := c.indicesOf(t)
	out := make([]any, 0, len(matches))
	for _, idx := range matches {
		out = append(out, c.order[idx].value)
	}
	return out
}

// ── Generic helpers ──────────────────────────────────────────────────────────

// TypeOf returns the reflect.Type for T, usable with the reflect-typed
// lookups. It works for interface types as well as concrete ones.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// BeanOf resolves the first bean assignable to T.
//
//	repo, err := appctx.BeanOf[*Repository](ctx)
func BeanOf[T any](c *Context) (T, error) {
	v, err := c.GetBeanByType(TypeOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// MustBeanOf is like BeanOf but panics on lookup failure. Intended for
// bootstrap code where a missing bean is a programming error.
func MustBeanOf[T any](c *Context) T {
	v, err := BeanOf[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// BeansOf returns every bean assignable to T, in commit order.
func BeansOf[T any](c *Context) []T {
	raw := c.GetBeans(TypeOf[T]())
	out := make([]T, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.(T))
	}
	return out
}
