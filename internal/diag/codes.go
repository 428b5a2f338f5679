package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode marks diagnostics without an assigned code.
	UnknownCode Code = 0

	// Structural graph errors.
	StructInfo        Code = 1000
	StructBadGraph    Code = 1001
	StructBadKind     Code = 1002
	StructBadTypeKind Code = 1003

	// Ownership compatibility errors.
	OwnInfo           Code = 3000
	OwnNoAcceptedKind Code = 3001
	OwnKindMismatch   Code = 3002
)

func (c Code) String() string {
	return fmt.Sprintf("KEL%04d", uint16(c))
}
