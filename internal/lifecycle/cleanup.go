// Package lifecycle releases session resources on shutdown.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds Execute when no timeout is given.
const DefaultTimeout = 5 * time.Second

// ErrTimeout is reported when resources are still closing after the timeout.
var ErrTimeout = errors.New("cleanup timeout exceeded")

// Resource is something that must be released before exit.
type Resource interface {
	Cleanup() error
	Name() string
}

type funcResource struct {
	name string
	fn   func() error
}

func (f *funcResource) Cleanup() error { return f.fn() }
func (f *funcResource) Name() string   { return f.name }

// CleanupManager releases registered resources once, in reverse registration order.
type CleanupManager struct {
	mu        sync.Mutex
	resources []Resource
	timeout   time.Duration
	once      sync.Once
	log       *zap.Logger
}

// NewCleanupManager returns a manager that gives up after timeout.
func NewCleanupManager(timeout time.Duration, log *zap.Logger) *CleanupManager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CleanupManager{timeout: timeout, log: log}
}

// Register adds a resource.
func (cm *CleanupManager) Register(r Resource) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.resources = append(cm.resources, r)
}

// RegisterFunc adds a cleanup function under name.
func (cm *CleanupManager) RegisterFunc(name string, fn func() error) {
	cm.Register(&funcResource{name: name, fn: fn})
}

// Execute releases every resource and joins their errors. Later calls return nil.
func (cm *CleanupManager) Execute() error {
	var err error
	cm.once.Do(func() {
		err = cm.execute()
	})
	return err
}

func (cm *CleanupManager) execute() error {
	cm.mu.Lock()
	resources := make([]Resource, len(cm.resources))
	copy(resources, cm.resources)
	cm.mu.Unlock()

	if len(resources) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
	)
	collect := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := len(resources) - 1; i >= 0; i-- {
			r := resources[i]
			func() {
				defer func() {
					if p := recover(); p != nil {
						collect(fmt.Errorf("%s: panic during cleanup: %v", r.Name(), p))
						cm.log.Error("panic during cleanup", zap.String("resource", r.Name()), zap.Any("panic", p))
					}
				}()

				if err := r.Cleanup(); err != nil {
					collect(fmt.Errorf("%s: %w", r.Name(), err))
					cm.log.Warn("cleanup failed", zap.String("resource", r.Name()), zap.Error(err))
					return
				}
				cm.log.Debug("cleaned up", zap.String("resource", r.Name()))
			}()
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		cm.log.Warn("cleanup timed out; some resources may not have been released", zap.Duration("timeout", cm.timeout))
		collect(ErrTimeout)
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
