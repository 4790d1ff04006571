// File: enum.go
// Title: Typed Enum Metadata Cache
// Description: Implements Type[E], the per-type memoized view over a Table.
//              Metadata is introspected once per Go type through the
//              Describer interface or an explicit Register call, and every
//              construction error is cached and returned on each use.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package enumx

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/msto63/toolkit/core/log"
	"github.com/msto63/toolkit/utils/reflectx"
)

// Integer is the set of types usable as enums
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Member is a named enum value
type Member[E Integer] struct {
	Name  string
	Value E
}

// Describer is implemented by enum types that list their own members. The
// method is called once on the zero value.
type Describer[E Integer] interface {
	EnumMembers() []Member[E]
}

// FlagsDescriber marks an enum whose values combine bitwise
type FlagsDescriber interface {
	EnumFlags() bool
}

// Type is the metadata of enum type E
type Type[E Integer] struct {
	table  *Table
	rtype  reflect.Type
	bits   int
	signed bool
}

type definition[E Integer] struct {
	flags   bool
	members []Member[E]
}

type cacheEntry struct {
	once sync.Once

	mu    sync.Mutex
	def   interface{} // *definition[E] from Register
	built bool

	typ interface{} // *Type[E]
	err error
}

var (
	cache         sync.Map // reflect.Type -> *cacheEntry
	packageLogger atomic.Pointer[log.Logger]
)

// SetLogger sets the logger receiving metadata construction failures
func SetLogger(l *log.Logger) {
	packageLogger.Store(l)
}

func logger() *log.Logger {
	if l := packageLogger.Load(); l != nil {
		return l
	}
	return log.NewNop()
}

func entryFor(rt reflect.Type) *cacheEntry {
	if e, ok := cache.Load(rt); ok {
		return e.(*cacheEntry)
	}
	e, _ := cache.LoadOrStore(rt, &cacheEntry{})
	return e.(*cacheEntry)
}

// Register installs the members of E explicitly. It takes precedence over
// EnumMembers and must run before the first For[E] call.
func Register[E Integer](flags bool, members ...Member[E]) error {
	rt := reflectx.TypeOf[E]()
	e := entryFor(rt)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.built {
		return errAlreadyBuilt(rt.String())
	}
	e.def = &definition[E]{flags: flags, members: append([]Member[E](nil), members...)}
	return nil
}

// MustRegister is like Register but panics on error
func MustRegister[E Integer](flags bool, members ...Member[E]) {
	if err := Register(flags, members...); err != nil {
		panic(err)
	}
}

// For returns the metadata of E, building it on first use. A failed build
// returns the same error on every call.
func For[E Integer]() (*Type[E], error) {
	rt := reflectx.TypeOf[E]()
	e := entryFor(rt)

	e.once.Do(func() {
		e.mu.Lock()
		e.built = true
		def, _ := e.def.(*definition[E])
		e.mu.Unlock()

		e.typ, e.err = safeBuild(rt, def)
		if e.err != nil {
			logger().WarnWithErr("enum metadata construction failed", e.err, log.Fields{"enum": rt.String()})
		}
	})

	if e.err != nil {
		return nil, e.err
	}
	return e.typ.(*Type[E]), nil
}

// MustFor is like For but panics on error
func MustFor[E Integer]() *Type[E] {
	t, err := For[E]()
	if err != nil {
		panic(err)
	}
	return t
}

// safeBuild turns a panic in user supplied member lists into a cached error
func safeBuild[E Integer](rt reflect.Type, def *definition[E]) (typ *Type[E], err error) {
	defer func() {
		if r := recover(); r != nil {
			typ, err = nil, errMembersPanicked(rt.String(), r)
		}
	}()
	return build(rt, def)
}

func build[E Integer](rt reflect.Type, def *definition[E]) (*Type[E], error) {
	name := rt.String()

	var (
		flags   bool
		members []Member[E]
		zero    E
	)
	if def != nil {
		flags, members = def.flags, def.members
	} else {
		d, ok := any(zero).(Describer[E])
		if !ok {
			return nil, errNotDescribed(name)
		}
		members = d.EnumMembers()
		if f, ok := any(zero).(FlagsDescriber); ok {
			flags = f.EnumFlags()
		}
	}

	entries := make([]Entry, len(members))
	for i, m := range members {
		if m.Value < 0 {
			return nil, errNegativeValue(name, m.Name, int64(m.Value))
		}
		entries[i] = Entry{Name: m.Name, Value: uint64(m.Value)}
	}

	table, err := NewTable(name, flags, entries)
	if err != nil {
		return nil, err
	}

	return &Type[E]{
		table:  table,
		rtype:  rt,
		bits:   reflectx.BitSize(rt),
		signed: reflectx.IsSigned(rt),
	}, nil
}
