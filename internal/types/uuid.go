package types

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Prefixes for generated identifiers so an id is recognizable on sight.
const (
	UUID_PREFIX_INVOICE = "inv"
	UUID_PREFIX_SETTING = "setting"
	UUID_PREFIX_RUN     = "run"
)

// GenerateUUID returns a k-sortable unique identifier.
func GenerateUUID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a given prefix ex inv_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
