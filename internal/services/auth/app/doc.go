// Package server assembles the flux gRPC server: SQLite storage, the auth
// and users services, and health reporting.
package server
