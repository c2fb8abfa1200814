// Package installer carries out a scaffy config: it installs and uninstalls
// dependencies with the project's package manager and copies, downloads or
// removes the tools' configuration files in the project root.
//
// External programs are run through a CommandRunner. Configuration files of
// different tools are retrieved concurrently on a bounded pool; package
// manager invocations run one at a time since package managers lock the
// project.
package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/OlaoluwaM/scaffy/pkg/config"
	"github.com/OlaoluwaM/scaffy/pkg/console"
	"github.com/OlaoluwaM/scaffy/pkg/constants"
	"github.com/OlaoluwaM/scaffy/pkg/envutil"
	"github.com/OlaoluwaM/scaffy/pkg/fileutil"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/sliceutil"
	"github.com/OlaoluwaM/scaffy/pkg/stringutil"
)

var installerLog = logger.New("installer:installer")

// Options configures an Installer. Zero values fall back to defaults.
type Options struct {
	// ProjectDir receives configuration files and is where package managers run.
	ProjectDir     string
	PackageManager constants.PackageManager
	// Jobs bounds concurrent retrievals. Zero reads SCAFFY_MAX_JOBS.
	Jobs     int
	FailFast bool
	DryRun   bool
	Runner   CommandRunner
	Out      io.Writer
}

// Installer applies a resolved config.Schema to a project.
type Installer struct {
	opts Options
	mu   sync.Mutex
}

// New returns an Installer with defaults filled in.
func New(opts Options) *Installer {
	if opts.ProjectDir == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.ProjectDir = wd
		} else {
			opts.ProjectDir = "."
		}
	}
	if opts.PackageManager == "" {
		opts.PackageManager = constants.DefaultPackageManager
	}
	opts.Jobs = resolveJobs(opts.Jobs)
	if opts.Runner == nil {
		opts.Runner = NewExecRunner(false)
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}

	installerLog.Printf("Created installer: dir=%s, pm=%s, jobs=%d, fail_fast=%v, dry_run=%v",
		opts.ProjectDir, opts.PackageManager, opts.Jobs, opts.FailFast, opts.DryRun)
	return &Installer{opts: opts}
}

func resolveJobs(requested int) int {
	if requested <= 0 {
		return envutil.GetIntFromEnv(constants.MaxJobsEnvVar, constants.DefaultMaxJobs,
			constants.MinMaxJobs, constants.MaxMaxJobs, installerLog)
	}
	return min(max(requested, constants.MinMaxJobs), constants.MaxMaxJobs)
}

// Jobs returns the retrieval pool size in use.
func (i *Installer) Jobs() int {
	return i.opts.Jobs
}

// Install installs the dependencies of tools and retrieves their
// configuration files. Failures are collected and returned together unless
// FailFast is set.
func (i *Installer) Install(ctx context.Context, schema config.Schema, tools []string) error {
	collector := NewErrorCollector(i.opts.FailFast)

	i.info("Installing dependencies for " + stringutil.GrammaticalList(tools, "and"))
	deps := CollectDependencies(schema, tools)
	if deps.IsEmpty() {
		i.info("No dependencies to install")
	}

	if len(deps.Deps) > 0 {
		if err := i.run(ctx, i.opts.PackageManager.String(), installArgs(false, deps.Deps)...); err != nil {
			if stop := collector.Add(fmt.Errorf("failed to install dependencies: %w", err)); stop != nil {
				return stop
			}
		}
	}
	if len(deps.DevDeps) > 0 {
		if err := i.run(ctx, i.opts.PackageManager.String(), installArgs(true, deps.DevDeps)...); err != nil {
			if stop := collector.Add(fmt.Errorf("failed to install dev dependencies: %w", err)); stop != nil {
				return stop
			}
		}
	}

	if err := i.retrieveAll(ctx, schema, tools, collector); err != nil {
		return err
	}

	return collector.FormattedError("install")
}

// retrieveAll copies and downloads the configuration files of every tool on
// a bounded pool.
func (i *Installer) retrieveAll(ctx context.Context, schema config.Schema, tools []string, collector *ErrorCollector) error {
	p := pool.New().WithMaxGoroutines(i.opts.Jobs).WithErrors().WithContext(ctx)
	if i.opts.FailFast {
		p = p.WithCancelOnError().WithFirstError()
	}

	for _, tool := range tools {
		entry := schema[tool]
		p.Go(func(ctx context.Context) error {
			return i.retrieveTool(ctx, tool, entry, collector)
		})
	}

	return p.Wait()
}

func (i *Installer) retrieveTool(ctx context.Context, tool string, entry config.Entry, collector *ErrorCollector) error {
	if len(entry.LocalConfigurationPaths) == 0 && len(entry.RemoteConfigurationUrls) == 0 {
		installerLog.Printf("No configuration files for %s", tool)
		return nil
	}
	i.info("Retrieving configuration for " + tool)

	if i.opts.DryRun {
		for _, p := range entry.LocalConfigurationPaths {
			i.planned(fmt.Sprintf("copy %s into %s", p, i.opts.ProjectDir))
		}
		if len(entry.RemoteConfigurationUrls) > 0 {
			i.planned("download " + strings.Join(entry.RemoteConfigurationUrls, " ") + " into " + i.opts.ProjectDir)
		}
		return nil
	}

	if err := copyLocal(tool, i.opts.ProjectDir, entry.LocalConfigurationPaths, collector); err != nil {
		return err
	}

	if err := download(ctx, i.opts.Runner, i.opts.ProjectDir, entry.RemoteConfigurationUrls); err != nil {
		wrapped := fmt.Errorf("%s: failed to download remote configuration: %w", tool, err)
		if stop := collector.Add(wrapped); stop != nil {
			return stop
		}
	}
	return nil
}

// Uninstall removes the dependencies of tools and deletes their
// configuration files from the project root by base name.
func (i *Installer) Uninstall(ctx context.Context, schema config.Schema, tools []string) error {
	collector := NewErrorCollector(i.opts.FailFast)

	i.info("Uninstalling dependencies for " + stringutil.GrammaticalList(tools, "and"))
	all := CollectDependencies(schema, tools).All()
	names := make([]string, len(all))
	for idx, dep := range all {
		names[idx] = StripVersion(dep)
	}
	names = sliceutil.Unique(names)

	if len(names) == 0 {
		i.info("No dependencies to remove")
	} else if err := i.run(ctx, i.opts.PackageManager.String(), uninstallArgs(names)...); err != nil {
		if stop := collector.Add(fmt.Errorf("failed to uninstall dependencies: %w", err)); stop != nil {
			return stop
		}
	}

	for _, tool := range tools {
		i.info("Removing configuration for " + tool)
		if stop := i.removeToolFiles(tool, schema[tool], collector); stop != nil {
			return stop
		}
	}

	return collector.FormattedError("uninstall")
}

func (i *Installer) removeToolFiles(tool string, entry config.Entry, collector *ErrorCollector) error {
	sources := append(slices.Clone(entry.LocalConfigurationPaths), entry.RemoteConfigurationUrls...)
	for _, source := range sources {
		name := stringutil.BaseName(source)
		if name == "" {
			installerLog.Printf("Skipping %s: no file name", source)
			continue
		}

		target := filepath.Join(i.opts.ProjectDir, name)
		if i.opts.DryRun {
			i.planned("remove " + target)
			continue
		}

		removed, err := fileutil.RemoveFile(target)
		if err != nil {
			if stop := collector.Add(fmt.Errorf("%s: failed to remove %s: %w", tool, target, err)); stop != nil {
				return stop
			}
			continue
		}
		if removed {
			i.verbose("Removed " + target)
		}
	}
	return nil
}

// run executes a package manager command, or only prints it in dry-run mode.
func (i *Installer) run(ctx context.Context, name string, args ...string) error {
	line := name + " " + strings.Join(args, " ")
	if i.opts.DryRun {
		i.planned(line)
		return nil
	}
	i.print(console.FormatCommandMessage(line))
	return i.opts.Runner.Run(ctx, i.opts.ProjectDir, name, args...)
}

func (i *Installer) info(msg string) {
	i.print(console.FormatInfoMessage(msg))
}

func (i *Installer) verbose(msg string) {
	i.print(console.FormatVerboseMessage(msg))
}

func (i *Installer) planned(action string) {
	i.print(console.FormatInfoMessage("[dry-run] " + action))
}

// print serializes writes from concurrent retrievals.
func (i *Installer) print(line string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	fmt.Fprintln(i.opts.Out, line)
}
