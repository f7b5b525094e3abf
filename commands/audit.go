package commands

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/kardianos/osext"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/leakhound/leakhound/audit"
	"github.com/leakhound/leakhound/config"
	"github.com/leakhound/leakhound/gitclient"
	"github.com/leakhound/leakhound/metrics"
	"github.com/leakhound/leakhound/report"
	"github.com/leakhound/leakhound/repos"
	"github.com/leakhound/leakhound/results"
	"github.com/leakhound/leakhound/runner"
	"github.com/leakhound/leakhound/scanners"
	"github.com/leakhound/leakhound/sniff"
)

type AuditCommand struct {
	ConfigFile string `short:"c" long:"config-file" description:"path to a yaml config file" value-name:"PATH"`

	config.Config
}

func (command *AuditCommand) Execute(args []string) error {
	warnIfOldExecutable()

	cfg, err := command.loadConfig()
	if err != nil {
		return err
	}

	if errs := cfg.Validate(); errs != nil {
		for _, err := range errs {
			fmt.Println(err.Error())
		}
		os.Exit(1)
	}

	repositories, err := repos.LoadList(cfg.RepositoriesFile)
	if err == repos.ErrNoRepositories {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "nothing to audit; add repositories to", cfg.RepositoriesFile, "and run again")
		os.Exit(1)
	}
	if err != nil {
		return err
	}

	for _, dir := range []string{cfg.ReposDir, cfg.ResultsDir, cfg.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	runID := uuid.NewString()

	logger, logFile, err := buildLogger(cfg, runID)
	if err != nil {
		return err
	}
	defer logFile.Close()

	commandRunner := runner.NewExecRunner()
	gitClient := gitclient.New(commandRunner)

	var dockerClient scanners.DockerClient
	if cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation()); err == nil {
		dockerClient = cli
	} else {
		logger.Info("container-runtime-not-configured", lager.Data{"error": err.Error()})
	}

	scannerList := []scanners.Scanner{
		scanners.Cached(scanners.NewTruffleHog(dockerClient, cfg.TruffleHog.Image, cfg.ScanTimeout)),
		scanners.Cached(scanners.NewGitleaks(commandRunner, cfg.Gitleaks.Binary, cfg.ScanTimeout)),
		scanners.Cached(scanners.NewPatterns(sniff.NewBattery(gitClient), cfg.ScanTimeout)),
	}

	store := results.NewStore(cfg.ResultsDir)
	source := repos.NewGitSource(gitClient, cfg.ReposDir, cfg.GitTimeout)
	emitter := metrics.BuildEmitter(cfg.Metrics.DatadogAPIKey, cfg.Metrics.Environment)
	clk := clock.NewClock()

	auditor := audit.NewAuditor(source, scannerList, store, clk, emitter, cfg.EffectiveWorkers())
	auditRunner := audit.NewRunner(logger.WithData(lager.Data{"run-id": runID}), auditor, repositories)

	runErr := <-ifrit.Invoke(sigmon.New(auditRunner)).Wait()

	verdict := auditRunner.Verdict()

	fmt.Println()
	if err := report.NewConsole(os.Stdout).Render(store.GetAll(), verdict); err != nil {
		return err
	}

	summaryPath, summaryErr := report.NewSummarizer(clk).Write(logger, cfg.ResultsDir, runID, verdict, store.Artifacts())
	if summaryErr != nil {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "summary incomplete:", summaryErr)
	}
	if summaryPath != "" {
		fmt.Println()
		fmt.Println("A summary of this run can be found in:", summaryPath)
	}

	if runErr != nil {
		return runErr
	}

	if !verdict.Pass {
		os.Exit(1)
	}

	return nil
}

// loadConfig merges flag values over file values, so anything given on the
// command line wins.
func (command *AuditCommand) loadConfig() (*config.Config, error) {
	flagConfig := command.Config

	cfg := &config.Config{}

	if command.ConfigFile != "" {
		bs, err := ioutil.ReadFile(command.ConfigFile)
		if err != nil {
			return nil, err
		}

		fileConfig, err := config.LoadConfig(bs)
		if err != nil {
			return nil, err
		}

		cfg = fileConfig
	}

	if err := cfg.Merge(&flagConfig); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

func buildLogger(cfg *config.Config, runID string) (lager.Logger, *os.File, error) {
	logger := lager.NewLogger("leakhound")

	stdoutLevel := lager.INFO
	if cfg.Debug {
		stdoutLevel = lager.DEBUG
	}
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, stdoutLevel))

	logFile, err := os.Create(filepath.Join(cfg.LogsDir, fmt.Sprintf("leakhound_%s.log", runID)))
	if err != nil {
		return nil, nil, err
	}
	logger.RegisterSink(lager.NewWriterSink(logFile, lager.DEBUG))

	return logger, logFile, nil
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider installing a newer leakhound.")
	}
}
