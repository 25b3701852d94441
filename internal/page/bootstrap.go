// Package page runs the page pipeline: load the content document, render
// every section, write the fragments into their mount points, then bind the
// interaction handlers.
package page

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/dom"
	"github.com/ziadkadry99/landing/internal/interact"
	"github.com/ziadkadry99/landing/internal/render"
)

// Stage names one step of the pipeline.
type Stage string

const (
	StageLoad   Stage = "load"
	StageRender Stage = "render"
	StageCommit Stage = "commit"
	StageBind   Stage = "bind"
)

// StageError reports which stage stopped the pipeline.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Result is what a successful run produced.
type Result struct {
	Document  *content.Document
	Fragments []render.Fragment
	Binding   *interact.Binding
}

// Bootstrapper wires the loader, the section registry and the binder.
type Bootstrapper struct {
	loader   content.Loader
	sections *render.Registry
	binder   *interact.Binder
	logger   *zap.Logger
}

// New returns a bootstrapper. A nil logger discards diagnostics.
func New(loader content.Loader, sections *render.Registry, binder *interact.Binder, logger *zap.Logger) *Bootstrapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	if binder == nil {
		binder = interact.NewBinder()
	}
	return &Bootstrapper{
		loader:   loader,
		sections: sections,
		binder:   binder,
		logger:   logger.Named("page"),
	}
}

// Run executes the pipeline against doc. A load, render or commit failure
// leaves doc exactly as it was: fragments are only written once every
// section has rendered and every mount point has been found and parsed. Running again on the same doc replaces the content of every
// mount point and rebinds without duplicating listeners.
func (b *Bootstrapper) Run(ctx context.Context, doc *dom.Document) (*Result, error) {
	source := b.loader.Source()

	data, err := b.loader.Load(ctx)
	if err != nil {
		return nil, b.fail(StageLoad, source, err)
	}

	frags, err := b.sections.RenderAll(data)
	if err != nil {
		return nil, b.fail(StageRender, source, err)
	}

	// Resolve and parse every mount before writing any of them.
	targets := make([]*dom.Element, len(frags))
	parsed := make([]*dom.Children, len(frags))
	for i, f := range frags {
		el, err := doc.MustElementByID(f.Mount)
		if err != nil {
			return nil, b.fail(StageCommit, source, err)
		}
		c, err := el.ParseInner(f.HTML)
		if err != nil {
			return nil, b.fail(StageCommit, source, err)
		}
		targets[i], parsed[i] = el, c
	}
	for i := range frags {
		targets[i].ReplaceChildren(parsed[i])
	}

	binding, err := b.binder.Bind(doc)
	if err != nil {
		return nil, b.fail(StageBind, source, err)
	}

	b.logger.Debug("page rendered",
		zap.String("source", source),
		zap.Int("fragments", len(frags)),
		zap.Int("listeners", binding.Listeners()),
	)

	return &Result{Document: data, Fragments: frags, Binding: binding}, nil
}

func (b *Bootstrapper) fail(stage Stage, source string, err error) error {
	b.logger.Error("page bootstrap failed",
		zap.String("stage", string(stage)),
		zap.String("source", source),
		zap.Error(err),
	)
	return &StageError{Stage: stage, Err: err}
}

// RenderPage parses shell, runs the pipeline on it and returns the
// serialized page. Listeners only live for the duration of the call.
func (b *Bootstrapper) RenderPage(ctx context.Context, shell io.Reader) ([]byte, *Result, error) {
	doc, err := dom.Parse(shell)
	if err != nil {
		return nil, nil, err
	}
	res, err := b.Run(ctx, doc)
	if err != nil {
		return nil, nil, err
	}
	defer b.binder.Release(doc)

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, nil, fmt.Errorf("serializing page: %w", err)
	}
	return buf.Bytes(), res, nil
}
