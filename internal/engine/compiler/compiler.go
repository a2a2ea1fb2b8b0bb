// Package compiler runs the archive build pipeline: a fixed sequence of stages, each
// depending on the files written by the previous ones.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names in execution order.
const (
	StageWorkspace = "workspace"
	StageFetch     = "fetch"
	StageManifest  = "manifest"
	StageInstall   = "install"
	StagePrefix    = "prefix"
	StagePrune     = "prune"
	StageAutoload  = "autoload"
	StagePackage   = "package"
	StageRecord    = "record"
)

// Deps are the collaborators of a Compiler.
type Deps struct {
	VCS       ports.VersionControl
	Packages  ports.PackageManager
	Manifests ports.ManifestStore
	Lockfiles ports.LockfileReader
	Workspace ports.Workspace
	Prefixer  ports.Prefixer
	Packager  ports.Packager
	Hasher    ports.Hasher
	Store     ports.BuildRecordStore
	Telemetry ports.Telemetry
	Logger    ports.Logger
}

// Compiler drives one build at a time.
type Compiler struct {
	deps Deps
	now  func() time.Time

	mu     sync.RWMutex
	status map[string]domain.StageStatus
}

// NewCompiler creates a new Compiler.
func NewCompiler(deps Deps) *Compiler {
	return &Compiler{
		deps:   deps,
		now:    time.Now,
		status: make(map[string]domain.StageStatus),
	}
}

// Result is the outcome of a successful build.
type Result struct {
	Revision     domain.Revision
	Archive      string
	Dependencies domain.DependencySet
	Record       domain.BuildRecord
}

// build is the state threaded through the stages of one run.
type build struct {
	req      domain.BuildRequest
	settings *domain.Settings

	revision domain.Revision
	resolved domain.DependencySet
	lock     *domain.Lockfile
	archive  string
	record   domain.BuildRecord
}

type stage struct {
	name string
	run  func(ctx context.Context, b *build) error
}

func (c *Compiler) stages() []stage {
	return []stage{
		{StageWorkspace, c.prepareWorkspace},
		{StageFetch, c.fetchSource},
		{StageManifest, c.editManifest},
		{StageInstall, c.installDependencies},
		{StagePrefix, c.prefixSymbols},
		{StagePrune, c.pruneDependencies},
		{StageAutoload, c.rebuildAutoload},
		{StagePackage, c.packageArchive},
		{StageRecord, c.recordProvenance},
	}
}

// Compile runs every stage in order. The first failure aborts the run; the returned error
// wraps domain.ErrStageFailed and names the stage.
func (c *Compiler) Compile(ctx context.Context, req domain.BuildRequest, settings *domain.Settings) (*Result, error) {
	stages := c.stages()
	c.initStatuses(stages)

	b := &build{req: req, settings: settings}
	for i, st := range stages {
		if err := ctx.Err(); err != nil {
			c.skip(stages[i:])
			return nil, zerr.Wrap(err, "build interrupted")
		}
		if err := c.runStage(ctx, st, b); err != nil {
			c.skip(stages[i+1:])
			return nil, err
		}
	}

	return &Result{
		Revision:     b.revision,
		Archive:      b.archive,
		Dependencies: b.resolved,
		Record:       b.record,
	}, nil
}

func (c *Compiler) runStage(ctx context.Context, st stage, b *build) error {
	ctx, vertex := c.deps.Telemetry.Record(ctx, st.name)
	c.setStatus(st.name, domain.StageStatusRunning)

	start := c.now()
	err := st.run(ctx, b)
	elapsed := c.now().Sub(start).Round(time.Millisecond)
	vertex.Complete(err)

	if err != nil {
		c.setStatus(st.name, domain.StageStatusFailed)
		vertex.Log(domain.LogLevelError, err.Error())
		stageErr := zerr.With(zerr.Wrap(err, "stage "+st.name+" failed"), "stage", st.name)
		return errors.Join(domain.ErrStageFailed, stageErr)
	}

	c.setStatus(st.name, domain.StageStatusCompleted)
	c.deps.Logger.Info(fmt.Sprintf("%s finished in %s", st.name, elapsed))
	return nil
}

func (c *Compiler) initStatuses(stages []stage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.status)
	for _, st := range stages {
		c.status[st.name] = domain.StageStatusPending
	}
}

func (c *Compiler) skip(stages []stage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, st := range stages {
		if !c.status[st.name].IsTerminal() {
			c.status[st.name] = domain.StageStatusSkipped
		}
	}
}

func (c *Compiler) setStatus(name string, status domain.StageStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status[name] = status
}

// Status returns the state of a stage in the current or last run.
func (c *Compiler) Status(name string) domain.StageStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.status[name]; ok {
		return s
	}
	return domain.StageStatusPending
}
