// Where: internal/namespace/namespace.go
// What: Collision checks against the handler module namespace and filesystem.
// Why: Refuse to scaffold over names or directories that are already taken.
package namespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alice-bot/alice-new/internal/fileops"
)

var (
	ErrModuleTaken = errors.New("module name already taken")
	ErrAborted     = errors.New("aborted by user")
)

// Lookup reports whether a fully qualified module name is already
// defined in the namespace. Injected so tests never need a real
// registry file.
type Lookup func(name string) bool

// ConfirmFunc asks the user a yes/no question and reports the answer.
type ConfirmFunc func(message string) (bool, error)

// CheckModuleAvailable walks the dotted prefixes of name from shortest
// to longest and fails at the first one the namespace already defines.
// For A.B.C it checks A, then A.B, then A.B.C, so the reported conflict
// is the shadowing name, not a deeper segment of it.
func CheckModuleAvailable(name string, defined Lookup) error {
	if defined == nil {
		return nil
	}
	segments := strings.Split(name, ".")
	for i := range segments {
		prefix := strings.Join(segments[:i+1], ".")
		if defined(prefix) {
			return fmt.Errorf("%w: %s is already defined", ErrModuleTaken, prefix)
		}
	}
	return nil
}

// CheckDirectoryAvailable confirms overwriting when path already
// exists. A declined confirmation is a clean abort, not an error in the
// exceptional sense. No filesystem mutation happens here.
func CheckDirectoryAvailable(path string, confirm ConfirmFunc) error {
	if !fileops.Exists(path) {
		return nil
	}
	if confirm == nil {
		return fmt.Errorf("%w: directory %s already exists", ErrAborted, path)
	}
	ok, err := confirm(fmt.Sprintf("The directory %s already exists. Proceed and write into it?", path))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: directory %s already exists", ErrAborted, path)
	}
	return nil
}
