package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/glentner/1trc/internal/builder/cli/commands"
	"github.com/glentner/1trc/internal/builder/cli/confirm"
	"github.com/glentner/1trc/internal/builder/cli/options"
	"github.com/glentner/1trc/internal/builder/cli/progress"
	"github.com/glentner/1trc/internal/builder/cli/progress/bar"
	"github.com/glentner/1trc/internal/builder/cli/progress/log"
	"github.com/glentner/1trc/internal/builder/cli/render"
	"github.com/glentner/1trc/internal/builder/cli/streams"
	"github.com/glentner/1trc/internal/builder/cli/utils"
	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/output"
	"github.com/glentner/1trc/internal/builder/usecase"
)

// buildOptions type is used to describe 'build' command options.
type buildOptions struct {
	useCase     usecase.UseCase
	renderer    render.Renderer
	in          *streams.In
	out         *streams.Out
	useTTY      bool
	forceBuild  bool
	requestPath string

	rows        uint64
	rowsPerFile uint64
	files       int
	stations    int
	format      string
	outputPath  string
	seed        uint64
	spread      float64
	workers     int
}

// NewBuildCommand creates 'build' command for CLI.
func NewBuildCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:                   "build [FLAGS] [PATH]",
		Short:                 "Builds a measurements dataset and writes it to the configured output",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.renderer = cliOpts.Renderer()
			opts.in = cliOpts.In()
			opts.out = cliOpts.Out()
			opts.useTTY = cliOpts.UseTTY()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) > 0 {
				opts.requestPath = args[0]
			}

			// Invoked from the interactive menu there is nothing to build
			// from, so ask for a request file.
			if opts.requestPath == "" && opts.useTTY && cmd.Flags().NFlag() == 0 {
				filePath, err := opts.renderer.InputMenu(
					ctx,
					"Enter path to build request file",
					utils.ValidateFileFormat(".yml", ".yaml", ".json"),
				)
				if err != nil {
					return errors.WithMessage(err, "failed to get build request file path")
				}

				opts.requestPath = filePath
			}

			buildCfg, err := buildConfig(opts, cmd.Flags().Changed(commands.SeedFlag))
			if err != nil {
				return errors.WithMessage(err, "failed to assemble build request")
			}

			slog.Info("builder started", slog.String("version", cliOpts.Version()))

			err = runBuild(ctx, opts, buildCfg)
			if err != nil {
				return errors.WithMessage(err, "failed to build dataset")
			}

			slog.Info("builder finished")

			return nil
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

func setupFlags(flags *pflag.FlagSet, opts *buildOptions) {
	flags.StringVarP(
		&opts.requestPath,
		commands.RequestFileFlag,
		commands.RequestFileShortFlag,
		commands.RequestFileDefaultValue,
		commands.RequestFileUsage,
	)

	flags.Uint64VarP(
		&opts.rows,
		commands.RowsFlag,
		commands.RowsShortFlag,
		commands.RowsDefaultValue,
		commands.RowsUsage,
	)

	flags.Uint64VarP(
		&opts.rowsPerFile,
		commands.RowsPerFileFlag,
		commands.RowsPerFileShortFlag,
		commands.RowsPerFileDefaultValue,
		commands.RowsPerFileUsage,
	)

	flags.IntVarP(
		&opts.files,
		commands.FilesFlag,
		commands.FilesShortFlag,
		commands.FilesDefaultValue,
		commands.FilesUsage,
	)

	flags.IntVarP(
		&opts.stations,
		commands.StationsFlag,
		commands.StationsShortFlag,
		commands.StationsDefaultValue,
		commands.StationsUsage,
	)

	flags.StringVarP(
		&opts.format,
		commands.FormatFlag,
		commands.FormatShortFlag,
		commands.FormatDefaultValue,
		commands.FormatUsage,
	)

	flags.StringVarP(
		&opts.outputPath,
		commands.OutputPathFlag,
		commands.OutputPathShortFlag,
		commands.OutputPathDefaultValue,
		commands.OutputPathUsage,
	)

	flags.Uint64Var(
		&opts.seed,
		commands.SeedFlag,
		commands.SeedDefaultValue,
		commands.SeedUsage,
	)

	flags.Float64Var(
		&opts.spread,
		commands.SpreadFlag,
		commands.SpreadDefaultValue,
		commands.SpreadUsage,
	)

	flags.IntVarP(
		&opts.workers,
		commands.WorkersFlag,
		commands.WorkersShortFlag,
		commands.WorkersDefaultValue,
		commands.WorkersUsage,
	)

	flags.BoolVar(
		&opts.forceBuild,
		commands.ForceBuildFlag,
		commands.ForceBuildDefaultValue,
		commands.ForceBuildUsage,
	)
}

// buildConfig assembles a build request from the request file, if one is
// given, or from command line flags. seedGiven marks a seed flag passed
// explicitly, so that --seed 0 still counts as a seeded run.
func buildConfig(opts *buildOptions, seedGiven bool) (*models.BuildConfig, error) {
	buildCfg := &models.BuildConfig{}

	if opts.requestPath != "" {
		err := buildCfg.ParseFromFile(opts.requestPath)
		if err != nil {
			return nil, err
		}

		return buildCfg, nil
	}

	buildCfg.TotalRows = opts.rows
	buildCfg.RowsPerFile = opts.rowsPerFile
	buildCfg.FileCount = opts.files
	buildCfg.StationCount = opts.stations
	buildCfg.RandomSeed = opts.seed
	buildCfg.SeededRun = seedGiven
	buildCfg.Spread = opts.spread
	buildCfg.WorkersCount = opts.workers
	buildCfg.Output = &models.OutputConfig{
		Type: opts.format,
		Path: opts.outputPath,
	}

	err := buildCfg.PostProcess()
	if err != nil {
		return nil, err
	}

	return buildCfg, nil
}

// runBuild executes a `build` command.
func runBuild(ctx context.Context, opts *buildOptions, buildCfg *models.BuildConfig) error {
	var isUpdatePaused atomic.Bool

	proceed, err := confirmOverwrite(ctx, opts, buildCfg, &isUpdatePaused)
	if err != nil {
		return err
	}

	if !proceed {
		slog.Info("build canceled by user")

		return nil
	}

	taskID, err := opts.useCase.CreateTask(ctx, usecase.TaskConfig{BuildConfig: buildCfg})
	if err != nil {
		return err
	}

	var (
		finished atomic.Bool
		wg       sync.WaitGroup
	)

	// A measurement stream and an interactive progress bar cannot share
	// the terminal, streamed builds report through the log tracker.
	useTTY := opts.useTTY && buildCfg.Output.Type != "stdout"

	startProgressTracking(
		ctx,
		opts.useCase,
		taskID,
		&finished,
		&wg,
		useTTY,
		&isUpdatePaused,
	)

	result, err := opts.useCase.WaitResult(taskID)

	finished.Store(true)

	if err == nil {
		wg.Wait()
	}

	if err != nil {
		return err
	}

	if resultErr := result.Err(); resultErr != nil {
		slog.Info("build seed", slog.Uint64("seed", buildCfg.RandomSeed))
		slog.Info("saved rows", slog.Uint64("count", result.RowsWritten()))

		return resultErr
	}

	slog.Info("build summary",
		slog.Uint64("rows", result.RowsWritten()),
		slog.Int("files", result.FilesWritten()),
		slog.Duration("elapsed", result.Elapsed),
	)

	return nil
}

// confirmOverwrite asks the user before clobbering existing output files.
// Destinations that do not write files never prompt.
func confirmOverwrite(
	ctx context.Context,
	opts *buildOptions,
	buildCfg *models.BuildConfig,
	isUpdatePaused *atomic.Bool,
) (bool, error) {
	if opts.forceBuild || !slices.Contains(models.DiskFilesOutputTypes, buildCfg.Output.Type) {
		return true, nil
	}

	var existing int

	for i := range buildCfg.FileCount {
		path := output.PartitionPath(buildCfg.Output, buildCfg.FileCount, i)
		if _, err := os.Stat(path); err == nil {
			existing++
		}
	}

	if existing == 0 {
		return true, nil
	}

	var ask confirm.Confirm
	if opts.useTTY {
		ask = confirm.BuildConfirmTTY(opts.in, opts.out)
	} else {
		ask = confirm.BuildConfirmNoTTY(opts.renderer, opts.out, isUpdatePaused)
	}

	question := fmt.Sprintf("%d output file(s) already exist, overwrite", existing)

	return ask(ctx, question)
}

// startProgressTracking runs function to track progress of task
// by getting progress from usecase object and displaying it.
func startProgressTracking(
	ctx context.Context,
	uc usecase.UseCase,
	taskID string,
	finished *atomic.Bool,
	wg *sync.WaitGroup,
	useTTY bool,
	isUpdatePaused *atomic.Bool,
) {
	const delay = 500 * time.Millisecond

	var progressTrackerManager progress.Tracker

	if useTTY {
		progressTrackerManager = bar.NewProgressBarManager(ctx)
	} else {
		progressTrackerManager = log.NewProgressLogManager(ctx, isUpdatePaused)
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		lastUpdate := false

		for {
			p, err := uc.GetProgress(taskID)
			if err != nil {
				slog.Error("error getting progress", slog.Any("taskID", taskID))
			} else {
				progressTrackerManager.AddTask(taskID, "writing measurements", p.Total)
				progressTrackerManager.UpdateProgress(taskID, p)
			}

			if lastUpdate {
				break
			}

			if finished.Load() {
				lastUpdate = true
			} else {
				time.Sleep(delay)
			}
		}

		progressTrackerManager.Wait()
	}()
}
