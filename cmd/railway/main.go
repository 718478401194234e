package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/systemstart/railway/pkg/api"
	"github.com/systemstart/railway/pkg/logging"
	"github.com/systemstart/railway/pkg/observers"
	"github.com/systemstart/railway/pkg/ops"
	"github.com/systemstart/railway/pkg/processing"
	"github.com/systemstart/railway/pkg/step"
)

var version = "dev"

const (
	_ = iota
	exitNoRunFile
	exitDotenvError
	exitLoggingFailed
	exitLoadRunFileFailed
	exitBuildStepsFailed
	exitLoadInputsFailed
	exitWriteTraceFailed
	exitStepErrors
)

const (
	envLoggingType = "RAILWAY_LOGGING_TYPE"
	envLogLevel    = "RAILWAY_LOG_LEVEL"
)

var (
	runFile     string
	inputsFile  string
	traceFile   string
	loggingType string
	logLevel    string
	showVersion bool
)

func init() {
	flag.StringVar(
		&runFile,
		"run",
		"",
		"run file declaring the steps")
	flag.StringVar(
		&inputsFile,
		"inputs",
		"",
		"YAML inputs file (overrides the run file)")
	flag.StringVar(
		&traceFile,
		"trace",
		"",
		"write the step event trace to this YAML file (overrides the run file)")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"",
		"logging type: json, text or tint (default tint, env "+envLoggingType+")")
	flag.StringVar(
		&logLevel,
		"log-level",
		"",
		"logging level: debug, info, warn, error (default info, env "+envLogLevel+")")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	dotenvErr := godotenv.Load()
	initLogging()
	reportDotenv(dotenvErr)

	if runFile == "" {
		slog.Error("-run not set")
		os.Exit(exitNoRunFile)
	}

	rf := loadRunFile()
	steps := buildSteps(rf)
	inputs := loadInputs(rf)

	recorder := observers.NewRecorder()
	subscribe(steps, rf.Only, recorder)

	_, runErr := processing.RunAll(steps, inputs)

	writeTrace(rf, recorder)

	if runErr != nil {
		slog.Error("run failed", "error", runErr)
		os.Exit(exitStepErrors)
	}

	slog.Info("done")
}

func initLogging() {
	typ := firstNonEmpty(loggingType, os.Getenv(envLoggingType), logging.Tint)
	level := firstNonEmpty(logLevel, os.Getenv(envLogLevel), "info")

	if _, err := logging.Initialize(os.Stderr, typ, level); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(exitLoggingFailed)
	}
}

func reportDotenv(err error) {
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}

func loadRunFile() *api.RunFile {
	rf, err := api.LoadRunFile(runFile)
	if err != nil {
		slog.Error("failed to load run file", "filename", runFile, "error", err)
		os.Exit(exitLoadRunFileFailed)
	}
	return rf
}

func buildSteps(rf *api.RunFile) []*step.Step {
	steps := make([]*step.Step, 0, len(rf.Steps))
	for _, cfg := range rf.Steps {
		s, err := ops.NewStep(cfg)
		if err != nil {
			slog.Error("failed to build step", "step", cfg.Name, "error", err)
			os.Exit(exitBuildStepsFailed)
		}
		steps = append(steps, s)
	}
	return steps
}

func loadInputs(rf *api.RunFile) []any {
	filename := firstNonEmpty(inputsFile, rf.Inputs)
	if filename == "" {
		slog.Warn("no inputs file given, running every step once with an empty input")
		return processing.ApplyDefaults(rf.Defaults, []any{map[string]any{}})
	}

	inputs, err := processing.LoadInputs(filename)
	if err != nil {
		slog.Error("failed to load inputs", "filename", filename, "error", err)
		os.Exit(exitLoadInputsFailed)
	}
	slog.Info("loaded inputs", "filename", filename, "count", len(inputs))
	return processing.ApplyDefaults(rf.Defaults, inputs)
}

func subscribe(steps []*step.Step, only string, recorder *observers.Recorder) {
	logObserver := observers.Log(nil)
	if only != "" {
		// The pattern was validated with the run file.
		logObserver, _ = observers.Filter(only, logObserver)
	}

	for _, s := range steps {
		s.Subscribe(logObserver)
		s.Subscribe(recorder)
	}
}

func writeTrace(rf *api.RunFile, recorder *observers.Recorder) {
	filename := firstNonEmpty(traceFile, rf.Trace)
	if filename == "" {
		return
	}

	f, err := os.Create(filename)
	if err != nil {
		slog.Error("failed to create trace file", "filename", filename, "error", err)
		os.Exit(exitWriteTraceFailed)
	}

	writeErr := recorder.WriteYAML(f)
	if closeErr := f.Close(); closeErr != nil && writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		slog.Error("failed to write trace file", "filename", filename, "error", writeErr)
		os.Exit(exitWriteTraceFailed)
	}

	slog.Info("wrote trace", "filename", filename, "events", len(recorder.Events()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
