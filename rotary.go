package rotary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/rotary/internal/config"
	"github.com/aretw0/rotary/internal/runtime"
	"github.com/aretw0/rotary/pkg/adapters/file"
	"github.com/aretw0/rotary/pkg/adapters/memory"
	"github.com/aretw0/rotary/pkg/domain"
	"github.com/aretw0/rotary/pkg/ports"
)

// Version is the library version reported by the CLI.
const Version = "0.1.0"

// Engine is the high-level entry point for the Rotary library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	loader   ports.CatalogLoader
	catalog  *domain.Catalog
	session  *runtime.Session
	logger   *slog.Logger
	textbook bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom CatalogLoader, bypassing the default
// standard catalog.
func WithLoader(l ports.CatalogLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithCatalogFile sources the rotor catalog from a YAML file.
func WithCatalogFile(path string) Option {
	return func(e *Engine) {
		e.loader = file.New(path)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTextbookStepping switches stepping from the reference rule to the
// textbook double-stepping rule. The default is the reference behavior.
func WithTextbookStepping() Option {
	return func(e *Engine) {
		e.textbook = true
	}
}

// New creates an Engine. Without options it loads the standard historical
// catalog: five slots, three pawls, rotors I-VIII, Beta, Gamma, reflectors
// B and C.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		loader: memory.NewStandard(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	cat, err := e.loader.LoadCatalog(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	e.catalog = cat

	sessOpts := []runtime.Option{runtime.WithLogger(e.logger)}
	if e.textbook {
		sessOpts = append(sessOpts, runtime.WithTextbookStepping())
	}
	sess, err := runtime.New(cat, sessOpts...)
	if err != nil {
		return nil, err
	}
	e.session = sess

	return e, nil
}

// Catalog returns the loaded rotor catalog.
func (e *Engine) Catalog() *domain.Catalog {
	return e.catalog
}

// Configure applies a settings line, e.g.
// "* B Beta III IV I AXLE (HQ) (EX)".
func (e *Engine) Configure(line string) error {
	set, err := config.Parse(line, e.catalog.Slots)
	if err != nil {
		return err
	}
	return e.session.Configure(set)
}

// Convert encrypts or decrypts a message with the current configuration,
// advancing machine state. Symbols outside the alphabet fail the call.
func (e *Engine) Convert(msg string) (string, error) {
	if !e.session.Configured() {
		return "", runtime.ErrNotConfigured
	}
	return e.session.Machine().Convert(msg)
}

// ConvertLine converts one message line: whitespace is stripped before
// conversion and the output is grouped five symbols per word.
func (e *Engine) ConvertLine(line string) (string, error) {
	return e.session.ConvertLine(line)
}

// Process handles one input line, dispatching between settings lines and
// message lines. The emit flag reports whether out should be printed.
func (e *Engine) Process(line string) (out string, emit bool, err error) {
	return e.session.Process(line)
}
