// File: example_test.go
// Title: Enum Package Examples
// Description: Executable examples for the enumx package.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package enumx_test

import (
	"fmt"

	"github.com/msto63/toolkit/utils/enumx"
)

type Access uint16

const (
	AccessNone  Access = 0
	AccessRead  Access = 1
	AccessWrite Access = 2
	AccessAdmin Access = 0x100
)

func (Access) EnumMembers() []enumx.Member[Access] {
	return []enumx.Member[Access]{
		{Name: "None", Value: AccessNone},
		{Name: "Read", Value: AccessRead},
		{Name: "Write", Value: AccessWrite},
		{Name: "Admin", Value: AccessAdmin},
	}
}

func (Access) EnumFlags() bool { return true }

func ExampleType_Decompose() {
	access := enumx.MustFor[Access]()

	v := AccessRead | AccessAdmin | 0x40
	for _, part := range access.Decompose(v) {
		fmt.Println(access.Format(part))
	}
	// Output:
	// Read
	// Admin
	// 64
}

func ExampleType_Format() {
	access := enumx.MustFor[Access]()
	fmt.Println(access.Format(AccessRead | AccessWrite))
	fmt.Println(access.Format(0))
	// Output:
	// Read, Write
	// None
}

func ExampleType_Parse() {
	access := enumx.MustFor[Access]()

	v, err := access.ParseIgnoreCase("read, admin")
	fmt.Println(uint16(v), err)

	_, err = access.Parse("Delete")
	fmt.Println(err != nil)
	// Output:
	// 257 <nil>
	// true
}

func ExampleNewTable() {
	table, err := enumx.NewTable("weekday", false, []enumx.Entry{
		{Name: "Tuesday", Value: 2},
		{Name: "Monday", Value: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(table.Names(), table.Format(3))
	// Output:
	// [Monday Tuesday] 3
}
