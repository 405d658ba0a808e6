package appctx

import (
	"fmt"
	"reflect"
	"strings"
)

// NotFoundError is returned when a name or type lookup matches no bean.
type NotFoundError struct {
	Name string       // set for name lookups
	Type reflect.Type // set for type lookups
}

func (e *NotFoundError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("appctx: no bean of type %v found", e.Type)
	}
	return fmt.Sprintf("appctx: no bean named %q found", e.Name)
}

// AmbiguousTypeError is returned when dependency resolution required exactly
// one bean of a type but found more than one. It is not retryable and aborts
// the refresh immediately.
type AmbiguousTypeError struct {
	Type  reflect.Type
	Count int
}

func (e *AmbiguousTypeError) Error() string {
	return fmt.Sprintf("appctx: found %d beans of type %v, expected exactly one", e.Count, e.Type)
}

// DuplicateNameError is returned when two distinct instances end up
// registered under the same name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("appctx: a different bean is already registered under name %q", e.Name)
}

// UnresolvableError is returned by Refresh when a full pass over the pending
// definitions made no progress while some remain. It reports every remaining
// definition together — circular dependencies and missing providers surface
// the same way.
type UnresolvableError struct {
	Beans []string
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("appctx: could not instantiate bean definitions %s", strings.Join(e.Beans, ", "))
}

// InvalidDefinitionError marks a definition that can never resolve no matter
// how the registry evolves: a malformed factory signature, an untyped
// positional parameter, a bound value that does not fit its parameter, or a
// broken post-construct hook.
type InvalidDefinitionError struct {
	Bean   string
	Reason string
}

func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("appctx: bean definition %q is invalid: %s", e.Bean, e.Reason)
}
