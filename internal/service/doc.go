// Package service contains the application's use-case layer: account
// registration and self-service, owner-guarded task management, and the
// password recovery flow. Services receive their stores and collaborators
// explicitly and carry no ambient state.
package service
