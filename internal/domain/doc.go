// Package domain defines the records and contracts shared across the app:
// calculation history, saved measurements and the store, service and remote
// client interfaces. It holds plain types, interfaces and small constructors.
package domain
