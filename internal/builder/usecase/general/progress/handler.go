package progress

import (
	"sync"

	"github.com/glentner/1trc/internal/builder/usecase"
)

// Handler type is concurrency safe storage for build progress.
type Handler struct {
	progress usecase.Progress
	mutex    *sync.RWMutex
}

func NewHandler(total uint64) *Handler {
	return &Handler{
		progress: usecase.Progress{Done: 0, Total: total},
		mutex:    &sync.RWMutex{},
	}
}

// Add function adds done rows to the progress.
func (p *Handler) Add(done uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.progress.Done += done
}

// Get returns a snapshot of the progress.
func (p *Handler) Get() usecase.Progress {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.progress
}
