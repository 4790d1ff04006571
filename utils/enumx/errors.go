// File: errors.go
// Title: Enum Error Constructors
// Description: Standardized errors raised while building enum metadata and
//              while parsing enum text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package enumx

import (
	"fmt"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

func buildError(operation string, code tkerror.Code, message string) *tkerrors.ErrorBuilder {
	return tkerrors.NewErrorBuilder(tkerrors.ModuleEnumx).
		Operation(operation).
		Code(string(code)).
		Message(message)
}

func errNegativeValue(enum, member string, value int64) *tkerror.Error {
	return buildError("build", tkerror.CodeEnumNegativeValue,
		fmt.Sprintf("enum %s: negative value %d of member %s is not currently supported", enum, value, member)).
		Detail("enum", enum).
		Detail("member", member).
		Detail("value", value).
		Build()
}

func errDuplicateValue(enum, first, second string, value uint64) *tkerror.Error {
	return buildError("build", tkerror.CodeEnumDuplicateValue,
		fmt.Sprintf("enum %s: members %s and %s share value %d, duplicate values are not currently supported", enum, first, second, value)).
		Detail("enum", enum).
		Detail("members", []string{first, second}).
		Detail("value", value).
		Build()
}

func errDuplicateName(enum, name string) *tkerror.Error {
	return buildError("build", tkerror.CodeDuplicateEntry,
		fmt.Sprintf("enum %s: member name %q defined twice", enum, name)).
		Detail("enum", enum).
		Detail("member", name).
		Build()
}

func errInvalidName(enum, name, reason string) *tkerror.Error {
	return buildError("build", tkerror.CodeInvalidInput,
		fmt.Sprintf("enum %s: invalid member name %q: %s", enum, name, reason)).
		Detail("enum", enum).
		Detail("member", name).
		Build()
}

func errNoMembers(enum string) *tkerror.Error {
	return buildError("build", tkerror.CodeInvalidInput,
		fmt.Sprintf("enum %s has no members", enum)).
		Detail("enum", enum).
		Build()
}

func errNotDescribed(enum string) *tkerror.Error {
	return tkerrors.NotSupported(tkerrors.ModuleEnumx, "describe",
		fmt.Sprintf("enum %s without EnumMembers or Register", enum)).
		WithDetail("enum", enum)
}

func errAlreadyBuilt(enum string) *tkerror.Error {
	return buildError("register", tkerror.CodeInvalidOperation,
		fmt.Sprintf("enum %s: metadata already built, Register must run before first use", enum)).
		Detail("enum", enum).
		Build()
}

func errParse(enum, input, reason string) *tkerror.Error {
	return buildError("parse", tkerror.CodeEnumParse,
		fmt.Sprintf("enum %s: cannot parse %q: %s", enum, input, reason)).
		Detail("enum", enum).
		Detail("input", input).
		Build()
}

func errNotFlags(enum, input string) *tkerror.Error {
	return buildError("parse_flags", tkerror.CodeEnumNotFlags,
		fmt.Sprintf("enum %s is not a flags enum, cannot parse list %q", enum, input)).
		Detail("enum", enum).
		Detail("input", input).
		Build()
}

func errMembersPanicked(enum string, recovered any) *tkerror.Error {
	return buildError("build", tkerror.CodeInternal,
		fmt.Sprintf("enum %s: EnumMembers panicked: %v", enum, recovered)).
		Detail("enum", enum).
		Detail("panic", fmt.Sprint(recovered)).
		Build()
}
