// Package service runs the lifecycle of the previewer's long-lived subsystems
package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services own resources that outlive a frame: the terminal screen, the speaker
//
// Lifecycle:
//  1. Construction
//  2. Init() - acquire resources
//  3. Start() - begin operation
//  4. [frame loop]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Init acquires the service's resources
	Init() error

	// Start begins service operation
	// Called after all services have initialized
	Start() error

	// Stop releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Dependent is implemented by services that must Init after others
// Optional interface - services not implementing it have no dependencies
type Dependent interface {
	Dependencies() []string
}
