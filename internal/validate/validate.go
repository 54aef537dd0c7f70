// Where: internal/validate/validate.go
// What: Name validation rules for handler and module identifiers.
// Why: Keep every naming rule and its error wording in one place.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alice-bot/alice-new/internal/meta"
)

var (
	ErrInvalidHandlerName = errors.New("invalid handler name")
	ErrReservedName       = errors.New("reserved handler name")
	ErrInvalidModuleName  = errors.New("invalid module name")
)

var (
	handlerNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	moduleNamePattern  = regexp.MustCompile(`^[A-Z]\w*(\.[A-Z]\w*)*$`)
)

// HandlerName checks that name is a valid handler name: lowercase
// letters, digits, and underscores, starting with a letter, and not the
// name of the bot itself. The inferred flag selects the hint wording
// for names derived from the target path rather than given via --name.
func HandlerName(name string, inferred bool) error {
	if strings.EqualFold(strings.TrimSpace(name), meta.ReservedName) {
		return fmt.Errorf("%w: %q is the name of the bot itself", ErrReservedName, name)
	}
	if !handlerNamePattern.MatchString(name) {
		if inferred {
			return fmt.Errorf(
				"%w: %q (inferred from the path) must start with a lowercase letter and contain only lowercase letters, numbers, and underscores; use --name to set the handler name explicitly",
				ErrInvalidHandlerName, name)
		}
		return fmt.Errorf(
			"%w: %q must start with a lowercase letter and contain only lowercase letters, numbers, and underscores",
			ErrInvalidHandlerName, name)
	}
	return nil
}

// ModuleName checks that name is a dotted chain of capitalized
// identifiers, e.g. MyHandler or Foo.Bar.
func ModuleName(name string) error {
	if !moduleNamePattern.MatchString(name) {
		return fmt.Errorf(
			"%w: %q must be a dotted chain of capitalized identifiers, like MyHandler or Foo.Bar",
			ErrInvalidModuleName, name)
	}
	return nil
}

// Camelize converts a snake_case handler name into its CapitalCamel
// module form, e.g. my_handler -> MyHandler.
func Camelize(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
