package appctx

import (
	"fmt"
	"reflect"
)

// runHooks invokes the definition's post-construct methods on a freshly
// built instance, in the order they were declared. A hook takes no
// arguments and returns nothing or a single error; a non-nil error is
// propagated verbatim and aborts the refresh before the bean is committed.
func (c *Context) runHooks(def *definition, instance any) error {
	for _, name := range def.desc.hooks {
		m := reflect.ValueOf(instance).MethodByName(name)
		if !m.IsValid() {
			return &InvalidDefinitionError{
				Bean:   def.name,
				Reason: fmt.Sprintf("post-construct hook %q not found on %T", name, instance),
			}
		}
		mt := m.Type()
		if mt.NumIn() != 0 || mt.NumOut() > 1 || (mt.NumOut() == 1 && !mt.Out(0).Implements(errorType)) {
			return &InvalidDefinitionError{
				Bean:   def.name,
				Reason: fmt.Sprintf("post-construct hook %q must be func() or func() error", name),
			}
		}

		out := m.Call(nil)
		if len(out) == 1 && !out[0].IsNil() {
			return out[0].Interface().(error)
		}
	}
	return nil
}
