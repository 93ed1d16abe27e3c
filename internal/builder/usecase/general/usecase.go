package general

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/usecase"
)

// Verify interface compliance in compile time.
var _ usecase.UseCase = (*UseCase)(nil)

// UseCase type is implementation of the build use case.
type UseCase struct {
	tasks map[string]*Task
	mutex *sync.RWMutex
}

// UseCaseConfig type is used to describe config for the build usecase.
type UseCaseConfig struct{}

// NewUseCase function creates UseCase object.
func NewUseCase(_ UseCaseConfig) *UseCase {
	return &UseCase{
		tasks: make(map[string]*Task),
		mutex: &sync.RWMutex{},
	}
}

// Setup function do nothing.
func (uc *UseCase) Setup() error {
	return nil
}

// CreateTask function receives a build request, plans partitions and starts
// writing them. It works asynchronously and returns string task ID to get
// results later.
func (uc *UseCase) CreateTask(ctx context.Context, config usecase.TaskConfig) (string, error) {
	task, err := NewTask(config)
	if err != nil {
		return "", err
	}

	uc.mutex.Lock()
	uc.tasks[task.ID] = task
	uc.mutex.Unlock()

	task.RunTask(ctx, func() { uc.removeTask(task.ID) })

	return task.ID, nil
}

// GetProgress function returns current row progress of task by ID.
func (uc *UseCase) GetProgress(taskID string) (usecase.Progress, error) {
	uc.mutex.RLock()
	task, ok := uc.tasks[taskID]
	uc.mutex.RUnlock()

	if !ok {
		return usecase.Progress{}, errors.Errorf("no task with id %s", taskID)
	}

	return task.GetProgress(), nil
}

// GetResult function returns status and result of task by ID.
func (uc *UseCase) GetResult(taskID string) (bool, *models.BuildResult, error) {
	uc.mutex.RLock()
	task, ok := uc.tasks[taskID]
	uc.mutex.RUnlock()

	if !ok {
		return false, nil, errors.Errorf("no task with task id %s", taskID)
	}

	finished, result := task.GetResult()

	return finished, result, nil
}

// WaitResult function waits task by ID end and returns its result.
func (uc *UseCase) WaitResult(taskID string) (*models.BuildResult, error) {
	uc.mutex.RLock()
	task, ok := uc.tasks[taskID]
	uc.mutex.RUnlock()

	if !ok {
		return nil, errors.Errorf("no task with task id %s", taskID)
	}

	return task.WaitResult(), nil
}

// removeTask function removes task from local storage.
func (uc *UseCase) removeTask(taskID string) {
	uc.mutex.Lock()
	delete(uc.tasks, taskID)
	uc.mutex.Unlock()
}

// Teardown function waits all running builds.
func (uc *UseCase) Teardown() error {
	uc.mutex.RLock()
	for _, task := range uc.tasks {
		_ = task.WaitResult()
	}
	uc.mutex.RUnlock()

	return nil
}
