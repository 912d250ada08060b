package usecase

import (
	"strings"

	"github.com/google/uuid"
)

// newID mints entity ids of the form <prefix>_<12 hex chars>.
func newID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "_" + hex[:12]
}
