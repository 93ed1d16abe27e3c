package usecase

import (
	"context"

	"github.com/glentner/1trc/internal/builder/models"
)

// UseCase interface implementation should accept build requests and drive
// dataset generation to the configured output.
type UseCase interface {
	// Setup function should configure some use case parameters.
	Setup() error
	// CreateTask function should start a build task and return its ID.
	CreateTask(ctx context.Context, config TaskConfig) (string, error)
	// GetProgress should return row progress of the build.
	GetProgress(taskID string) (Progress, error)
	// GetResult should return task status (completed or not) and its result.
	GetResult(taskID string) (bool, *models.BuildResult, error)
	// WaitResult should wait for the build to finish and return its result.
	WaitResult(taskID string) (*models.BuildResult, error)
	// Teardown function should wait for running builds to finish.
	Teardown() error
}
