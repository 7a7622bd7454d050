package prefs

import (
	"errors"
	"fmt"
)

var (
	ErrBlankName             = errors.New("the search term cannot be blank")
	ErrSearchTermCollision   = errors.New("that name is already used for a column or grouped search term")
	ErrUserCategoryCollision = errors.New("that name is already used for a user category")
	ErrBlankValue            = errors.New("the value box cannot be empty")
	ErrDeleteBlank           = errors.New("the empty grouped search term cannot be deleted")
	ErrDeleteDisabled        = errors.New("save or reselect the edited grouped search term before deleting")
	ErrSaveDisabled          = errors.New("nothing to save, edit the name or value first")
	ErrPendingEdit           = errors.New("the grouped search term has unsaved edits")
	ErrUnknownSetting        = errors.New("unknown setting")
	ErrNoSuchGroup           = errors.New("no grouped search term with that name")
)

// ValidationError is a user-facing rejection of a save or delete. The
// editor state is unchanged when one is returned.
type ValidationError struct {
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("grouped search terms: %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("grouped search terms: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CommitError reports a failure while writing the pane's state out.
type CommitError struct {
	Op  string
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit: %s: %v", e.Op, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
