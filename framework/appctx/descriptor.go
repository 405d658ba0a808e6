package appctx

import (
	"fmt"
	"reflect"
)

var (
	anyType          = reflect.TypeOf((*any)(nil)).Elem()
	errorType        = reflect.TypeOf((*error)(nil)).Elem()
	mapStringAnyType = reflect.TypeOf(map[string]any(nil))
)

// ── Definitions ──────────────────────────────────────────────────────────────

// definition is an unresolved factory: the registered function plus the
// descriptor derived from its signature. Definitions keep their registration
// order and leave the pending set exactly once, when instantiated.
type definition struct {
	name    string
	factory any
	opts    []BeanOption

	extracted bool
	desc      *descriptor
	err       error
}

// descriptor is the per-definition dependency summary: the ordered typed
// positional dependencies, the ordered named parameters, the catch-all flag
// and the post-construct hook list.
type descriptor struct {
	fn         reflect.Value
	positional []reflect.Type
	named      []namedParam
	catchAll   bool
	hooks      []string
	returnsErr bool
}

// namedParam is one name-directed parameter, optionally carrying a default
// value that takes priority over a same-named bean.
type namedParam struct {
	name       string
	typ        reflect.Type
	hasDefault bool
	value      any
}

// ── Options ──────────────────────────────────────────────────────────────────

// BeanOption customizes how a definition's factory parameters are bound.
// Parameter-binding options (Named, NamedDefault, CollectRemaining) apply to
// the factory's trailing parameters in the order the options are given; all
// parameters before them are typed positional dependencies.
type BeanOption func(*descriptor)

// Named binds the next trailing parameter to the bean registered under the
// given name. Resolution waits until a bean with that exact name exists.
func Named(beanName string) BeanOption {
	return func(d *descriptor) {
		d.named = append(d.named, namedParam{name: beanName})
	}
}

// NamedDefault is like Named but supplies a default value. The default is
// always used, even when a bean with the same name is registered.
func NamedDefault(beanName string, value any) BeanOption {
	return func(d *descriptor) {
		d.named = append(d.named, namedParam{name: beanName, hasDefault: true, value: value})
	}
}

// CollectRemaining marks the factory's last parameter, which must be of type
// map[string]any, as a catch-all sink: it receives every registered bean
// whose name was not consumed by a positional or named binding.
func CollectRemaining() BeanOption {
	return func(d *descriptor) {
		d.catchAll = true
	}
}

// PostConstruct declares lifecycle hook methods on the produced instance,
// invoked with no arguments in exactly this order, after the factory returns
// and before the bean is committed to the registry.
func PostConstruct(methods ...string) BeanOption {
	return func(d *descriptor) {
		d.hooks = append(d.hooks, methods...)
	}
}

// ── Extraction ───────────────────────────────────────────────────────────────

// extract derives the descriptor from the factory signature. It runs once
// per definition, before the first resolution attempt; the outcome is cached
// either way.
func (d *definition) extract() error {
	if d.extracted {
		return d.err
	}
	d.extracted = true
	d.desc, d.err = d.describe()
	return d.err
}

func (d *definition) describe() (*descriptor, error) {
	fv := reflect.ValueOf(d.factory)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, &InvalidDefinitionError{Bean: d.name, Reason: fmt.Sprintf("factory must be a function, got %T", d.factory)}
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return nil, &InvalidDefinitionError{Bean: d.name, Reason: "variadic factories are not supported"}
	}

	switch ft.NumOut() {
	case 1:
	case 2:
		if !ft.Out(1).Implements(errorType) {
			return nil, &InvalidDefinitionError{Bean: d.name, Reason: fmt.Sprintf("second return value must be error, got %v", ft.Out(1))}
		}
	default:
		return nil, &InvalidDefinitionError{Bean: d.name, Reason: fmt.Sprintf("factory must return a value or (value, error), got %d return values", ft.NumOut())}
	}

	desc := &descriptor{fn: fv, returnsErr: ft.NumOut() == 2}
	for _, opt := range d.opts {
		opt(desc)
	}

	trailing := len(desc.named)
	if desc.catchAll {
		trailing++
	}
	if trailing > ft.NumIn() {
		return nil, &InvalidDefinitionError{
			Bean:   d.name,
			Reason: fmt.Sprintf("options bind %d parameters but the factory accepts only %d", trailing, ft.NumIn()),
		}
	}
	if desc.catchAll && ft.In(ft.NumIn()-1) != mapStringAnyType {
		return nil, &InvalidDefinitionError{
			Bean:   d.name,
			Reason: fmt.Sprintf("catch-all parameter must be map[string]any, got %v", ft.In(ft.NumIn()-1)),
		}
	}

	base := ft.NumIn() - trailing
	for i := 0; i < base; i++ {
		desc.positional = append(desc.positional, ft.In(i))
	}
	for i := range desc.named {
		desc.named[i].typ = ft.In(base + i)
	}
	return desc, nil
}
