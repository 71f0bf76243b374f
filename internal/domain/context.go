package domain

import "context"

// Action is a deferred write against the merchant API, such as saving the
// reward configuration. A RequestContext runs staged actions in order on
// commit and undoes the completed ones in reverse when a later one fails.
type Action interface {
	Execute(ctx context.Context) error

	// Rollback restores what Execute changed. It is only called after a
	// successful Execute, possibly with a different context.
	Rollback(ctx context.Context) error

	// Description names the action in logs, e.g. "save reward configuration".
	Description() string
}

// WriteStager is how services queue writes without importing the
// application layer.
type WriteStager interface {
	// Stage records entity under key so reads later in the same request see
	// it, and queues action for commit.
	Stage(key string, entity any, action Action) error

	// Execute runs action now. It is not queued and never rolled back.
	Execute(action Action) error
}
