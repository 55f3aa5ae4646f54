// Package passkey implements the scoped passkey protocol: challenge option
// payloads, client-data validation, and assertion signature verification.
package passkey
