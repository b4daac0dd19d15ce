package adavalidate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/config"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/field"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/form"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/logger"
	"github.com/mikebc23/WCAG-Compliance-Demos/pkg/validator"
)

// Engine owns the validator registry and the logger shared by the fields and
// forms it attaches.
type Engine struct {
	registry *validator.Registry
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	output     io.Writer
	predicates map[string]validator.Predicate
}

// WithLogger uses l instead of building a logger from Config.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLogOutput sets where the configured logger writes. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithPredicates makes named predicates available to extension definitions.
func WithPredicates(predicates map[string]validator.Predicate) Option {
	return func(o *options) { o.predicates = predicates }
}

// New builds an engine from cfg.
func New(cfg Config, opts ...Option) (*Engine, error) {
	o := &options{output: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger
	if log == nil {
		l, err := newLogger(cfg, o.output)
		if err != nil {
			return nil, err
		}
		log = l
	}

	regOpts := []validator.Option{
		validator.WithLogger(log),
		validator.WithPredicates(o.predicates),
	}
	if cfg.Builtins {
		regOpts = append(regOpts, validator.WithBuiltins())
	}
	reg := validator.NewRegistry(regOpts...)

	if cfg.ExtensionsFile != "" {
		if err := loadExtensions(reg, cfg.ExtensionsFile); err != nil {
			return nil, err
		}
	}

	log.Info("validation engine ready",
		logger.Count("validators", len(reg.Names())),
		slog.Bool("builtins", cfg.Builtins),
	)
	return &Engine{registry: reg, logger: log}, nil
}

// NewFromEnv loads Config from the environment and builds an engine.
func NewFromEnv(opts ...Option) (*Engine, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return New(cfg, opts...)
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}

func loadExtensions(reg *validator.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrLoadExtensions, err)
	}
	defer f.Close()

	if err := reg.LoadYAML(f); err != nil {
		return errors.Join(ErrLoadExtensions, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

// Registry returns the engine's validator registry.
func (e *Engine) Registry() *validator.Registry { return e.registry }

// Logger returns the engine's logger.
func (e *Engine) Logger() *slog.Logger { return e.logger }

// AttachField attaches a field using the engine's registry. The engine's
// logger is used unless cfg carries one.
func (e *Engine) AttachField(el field.Element, cfg field.Config) (*field.Field, error) {
	if cfg.Logger == nil {
		cfg.Logger = e.logger
	}
	return field.Attach(e.registry, el, cfg)
}

// AttachForm binds a form. The engine's logger is used unless cfg carries one.
func (e *Engine) AttachForm(c form.Container, cfg form.Config) (*form.Form, error) {
	if cfg.Logger == nil {
		cfg.Logger = e.logger
	}
	return form.Attach(c, cfg)
}
