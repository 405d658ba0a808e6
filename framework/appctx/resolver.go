package appctx

import (
	"fmt"
	"reflect"
)

// verdict is the three-way outcome of a resolution attempt: the definition
// either resolved, must wait for beans that do not exist yet, or can never
// resolve at all.
type verdict int

const (
	verdictDeferred verdict = iota
	verdictResolved
	verdictInvalid
)

// resolve attempts to bind a complete argument list for def against the
// current registry state.
//
// Binding order is fixed: typed positional parameters first (exactly one
// bean of the declared type must exist), then named parameters in
// declaration order (a default always wins over a same-named bean), then
// the catch-all sink with every name not consumed above.
func (c *Context) resolve(def *definition) ([]reflect.Value, verdict, error) {
	desc := def.desc
	args := make([]reflect.Value, 0, len(desc.positional)+len(desc.named)+1)
	consumed := make(map[string]bool, len(desc.positional)+len(desc.named))

	for i, pt := range desc.positional {
		if pt == anyType {
			// Untyped parameters would otherwise defer forever and drown in
			// the final unresolvable report; surface them on first attempt.
			return nil, verdictInvalid, &InvalidDefinitionError{
				Bean:   def.name,
				Reason: fmt.Sprintf("positional parameter %d carries no usable type", i),
			}
		}
		matches := c.indicesOf(pt)
		if len(matches) == 0 {
			return nil, verdictDeferred, nil
		}
		if len(matches) > 1 {
			return nil, verdictInvalid, &AmbiguousTypeError{Type: pt, Count: len(matches)}
		}
		entry := c.order[matches[0]]
		consumed[entry.name] = true
		args = append(args, argValue(entry.value, pt))
	}

	for _, np := range desc.named {
		var bound any
		if np.hasDefault {
			bound = np.value
		} else {
			idx, ok := c.byName[np.name]
			if !ok {
				return nil, verdictDeferred, nil
			}
			bound = c.order[idx].value
		}
		consumed[np.name] = true

		rv := argValue(bound, np.typ)
		if !rv.Type().AssignableTo(np.typ) {
			return nil, verdictInvalid, &InvalidDefinitionError{
				Bean:   def.name,
				Reason: fmt.Sprintf("value bound to parameter %q is %T, not assignable to %v", np.name, bound, np.typ),
			}
		}
		args = append(args, rv)
	}

	if desc.catchAll {
		extras := make(map[string]any, len(c.order))
		for _, e := range c.order {
			if !consumed[e.name] {
				extras[e.name] = e.value
			}
		}
		args = append(args, reflect.ValueOf(extras))
	}

	return args, verdictResolved, nil
}

// indicesOf returns the registry positions of every bean matching t, in
// commit order. Concrete types match exactly; an interface type matches
// every bean whose runtime type implements it.
func (c *Context) indicesOf(t reflect.Type) []int {
	if t.Kind() == reflect.Interface {
		var out []int
		for i, e := range c.order {
			if e.value != nil && reflect.TypeOf(e.value).Implements(t) {
				out = append(out, i)
			}
		}
		return out
	}
	return c.byType[t]
}

// argValue converts a stored bean into a reflect.Value usable as a call
// argument of the wanted type. A nil bean becomes the type's zero value.
func argValue(v any, want reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(want)
	}
	return reflect.ValueOf(v)
}
