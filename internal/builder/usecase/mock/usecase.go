package mock

import (
	"context"

	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/usecase"
)

// Verify interface compliance in compile time.
var _ usecase.UseCase = (*UseCase)(nil)

// UseCase type is a configurable implementation of usecase for tests.
type UseCase struct {
	CreateTaskFunc  func(ctx context.Context, config usecase.TaskConfig) (string, error)
	GetProgressFunc func(taskID string) (usecase.Progress, error)
	GetResultFunc   func(taskID string) (bool, *models.BuildResult, error)
	WaitResultFunc  func(taskID string) (*models.BuildResult, error)
}

// Setup function do nothing.
func (u *UseCase) Setup() error {
	return nil
}

func (u *UseCase) CreateTask(ctx context.Context, config usecase.TaskConfig) (string, error) {
	return u.CreateTaskFunc(ctx, config)
}

func (u *UseCase) GetProgress(taskID string) (usecase.Progress, error) {
	return u.GetProgressFunc(taskID)
}

func (u *UseCase) GetResult(taskID string) (bool, *models.BuildResult, error) {
	return u.GetResultFunc(taskID)
}

func (u *UseCase) WaitResult(taskID string) (*models.BuildResult, error) {
	return u.WaitResultFunc(taskID)
}

// Teardown function do nothing.
func (u *UseCase) Teardown() error {
	return nil
}
