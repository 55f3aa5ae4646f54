// Package storage defines persistence contracts for the auth service.
package storage
