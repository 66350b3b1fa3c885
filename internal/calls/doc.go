// Package calls declares the call-control request and response records.
//
// Ownership boundary:
// - record schemas and typed wrappers for dial, answer, hangup, transfer, and DTMF
// - command_id generation for idempotent call-control commands
// - no transport: records are handed to a caller-provided HTTP client
package calls
