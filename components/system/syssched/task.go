package syssched

// Task represents a single unit of periodic work.
type Task interface {
	// Run executes a single operational loop.
	Run() error
}
