package tool

import "github.com/google/uuid"

// GenerateUUIDV7 returns a time-ordered UUID, so primary keys sort by creation.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// IsUUID reports whether s parses as a UUID. Postgres rejects malformed values for
// uuid columns, so lookups check this first and treat a bad id as not found.
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
