package repository

import "github.com/google/uuid"

// NewID returns "<prefix>_<uuid>", e.g. prod_3f2c…; ids loaded from older
// records (prod_1) keep working since ids are opaque strings.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
