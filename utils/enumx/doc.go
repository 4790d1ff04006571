// File: doc.go
// Title: Enum Metadata Package Documentation
// Description: Package enumx provides enum metadata, flag composition and
//              decomposition, and name based formatting and parsing for Go
//              integer types.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

/*
Package enumx provides enum metadata and flag composition for Go integer
types.

Go has no enum declaration, so a type describes its members either by
implementing Describer on the value receiver or through Register:

	type Perm uint8

	const (
		PermNone  Perm = 0
		PermRead  Perm = 1
		PermWrite Perm = 2
		PermExec  Perm = 4
	)

	func (Perm) EnumMembers() []enumx.Member[Perm] {
		return []enumx.Member[Perm]{
			{"None", PermNone}, {"Read", PermRead}, {"Write", PermWrite}, {"Exec", PermExec},
		}
	}

	func (Perm) EnumFlags() bool { return true }

The metadata is built once per type on the first For call and cached for the
lifetime of the process:

	perms := enumx.MustFor[Perm]()
	perms.Format(PermRead | PermExec)       // "Read, Exec"
	perms.Decompose(PermRead | PermExec)    // [PermRead PermExec]
	v, err := perms.Parse("Read, Write")    // PermRead|PermWrite

# Decomposition

Members are kept in ascending value order. A composite value is decomposed
by visiting members from the largest down and consuming every non-zero
member whose bits are all still present in the remainder. The consumed
members are reported in ascending order; bits that no member covers are
appended as one trailing synthetic value. A composite member such as
ReadWrite = Read|Write is therefore preferred over its parts.

# Restrictions

Negative member values and two members sharing a value are not supported.
Both are detected when the metadata is first built; the error has code
ENUM_NEGATIVE_VALUE or ENUM_DUPLICATE_VALUE and is returned by every later
For call for the same type. Member names must be non-empty, unique, must
not contain a comma and must not start like a number so that formatted
values parse back unambiguously.

# Untyped Tables

Table is the untyped form over uint64. It can be built directly with
NewTable, decoded from YAML with LoadTables, or read from a configuration
section with TableFromConfig. The toolkit CLI uses this form for enums that
are only known at runtime.

# Encoding

Named[E] wraps a value so that it encodes by name wherever
encoding.TextMarshaler is honoured (JSON, YAML, TOML).
*/
package enumx
