package calls

import "github.com/google/uuid"

// NewCommandID returns a random command_id. The API ignores a repeated
// command with the same id on the same call, so retries reuse the value.
func NewCommandID() string {
	return uuid.NewString()
}
