// Package history evaluates calculator expressions and keeps the log of
// completed calculations in a domain.HistoryStore.
package history
