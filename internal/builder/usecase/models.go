package usecase

import (
	"github.com/glentner/1trc/internal/builder/models"
)

// TaskConfig type is used to describe config for task.
type TaskConfig struct {
	BuildConfig *models.BuildConfig
	// HTTPDelivery scopes output paths of API started builds to the task ID,
	// so concurrent requests do not overwrite each other.
	HTTPDelivery bool
}

// Progress type is used to represent row progress of a build.
type Progress struct {
	Done  uint64 `json:"done"`
	Total uint64 `json:"total"`
}
