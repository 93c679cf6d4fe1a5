package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"thread-conductor/internal/logger"
)

var ErrTimeout = errors.New("shutdown timed out")

// Component is something that must be stopped before the process exits.
type Component interface {
	Name() string
	Shutdown(ctx context.Context) error
}

type funcComponent struct {
	name string
	fn   func(ctx context.Context) error
}

func (f funcComponent) Name() string                       { return f.name }
func (f funcComponent) Shutdown(ctx context.Context) error { return f.fn(ctx) }

// Func wraps fn as a named Component.
func Func(name string, fn func(ctx context.Context) error) Component {
	return funcComponent{name: name, fn: fn}
}

// Manager stops registered components in reverse registration order.
type Manager struct {
	components []Component
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	once       sync.Once
	done       chan struct{}
	err        error
}

func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Manager{
		components: make([]Component, 0),
		logger:     log,
		timeout:    timeout,
		done:       make(chan struct{}),
	}
}

func (m *Manager) Register(component Component) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen calls onSignal on the first SIGINT or SIGTERM. The returned func
// stops listening.
func (m *Manager) Listen(onSignal func()) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	quit := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal()
		case <-quit:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(quit)
		})
	}
}

// Shutdown runs once; later calls wait for the first and return its result.
// Each component gets the configured timeout. Errors are joined.
func (m *Manager) Shutdown() error {
	m.once.Do(func() {
		defer close(m.done)

		m.mu.Lock()
		components := make([]Component, len(m.components))
		copy(components, m.components)
		m.mu.Unlock()

		m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
			"components": len(components),
		})

		var errs []error
		for i := len(components) - 1; i >= 0; i-- {
			if err := m.stop(components[i]); err != nil {
				m.logger.Error("ShutdownManager", err, map[string]interface{}{
					"component": components[i].Name(),
				})
				errs = append(errs, err)
			}
		}
		m.err = errors.Join(errs...)

		m.logger.Info("ShutdownManager", "shutdown sequence completed", map[string]interface{}{
			"failed": len(errs),
		})
	})

	<-m.done
	return m.err
}

func (m *Manager) stop(component Component) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		result <- component.Shutdown(ctx)
	}()

	select {
	case err := <-result:
		if err != nil {
			return fmt.Errorf("%s: %w", component.Name(), err)
		}
		m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
			"component": component.Name(),
		})
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", component.Name(), ErrTimeout)
	}
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
