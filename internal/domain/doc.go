// Package domain holds the core entities of the checklist service: user
// accounts, tasks and password recovery tokens, together with their
// validation rules. It has no knowledge of storage or transport concerns.
package domain
