// Package sqlite implements auth persistence over SQLite.
package sqlite
