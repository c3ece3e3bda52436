package memdag

import (
	"errors"
	"fmt"

	"github.com/lunfardo314/txdag/ledger"
)

var (
	ErrDuplicatedID       = errors.New("duplicated id")
	ErrParentNotFound     = errors.New("unknown parent")
	ErrParentNotSpecified = errors.New("not specified parent")
)

// DuplicatedIDError is returned when transaction with the same ID is already in the graph
type DuplicatedIDError struct {
	ID ledger.TransactionID
}

func (e *DuplicatedIDError) Error() string {
	return fmt.Sprintf("duplicated id=`%d`", e.ID)
}

func (e *DuplicatedIDError) Is(target error) bool {
	return target == ErrDuplicatedID
}
