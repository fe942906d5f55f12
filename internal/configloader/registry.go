// Package configloader provides a generic runtime registry for configuration
// instances in sdkgeist. Packages register their typed config once it is
// loaded and other packages (e.g. logging, the CLI commands) retrieve it
// without importing the loader.
//
// Typical usage:
//
//	configloader.RegisterConfig(&cfg.Logger)
//	logCfg := configloader.MustGetConfig[*logging.Config]()
package configloader

import (
	"fmt"
	"reflect"
	"sync"
)

var registry sync.Map // key = reflect.Type of T, value = registered instance

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterConfig registers cfg as the instance of type T. A later
// registration of the same type replaces the earlier one, so built-in
// defaults can be superseded by a loaded file.
func RegisterConfig[T any](cfg T) {
	registry.Store(typeOf[T](), cfg)
}

// MustGetConfig retrieves the registered config instance of type T.
//
// It panics if no config of type T has been registered.
func MustGetConfig[T any]() T {
	if cfg, ok := TryGetConfig[T](); ok {
		return cfg
	}
	panic(fmt.Sprintf("no config registered for type %v", typeOf[T]()))
}

// TryGetConfig retrieves the registered config instance of type T.
// It returns (zero-value, false) if the config was not found.
func TryGetConfig[T any]() (T, bool) {
	if val, ok := registry.Load(typeOf[T]()); ok {
		return val.(T), true
	}
	var zero T
	return zero, false
}

// UnregisterConfig drops the instance of type T, if any.
func UnregisterConfig[T any]() {
	registry.Delete(typeOf[T]())
}
