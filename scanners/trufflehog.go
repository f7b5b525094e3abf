package scanners

import (
	"bytes"
	"context"
	"io"
	"io/ioutil"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const TruffleHogID = "trufflehog"

const DefaultTruffleHogImage = "trufflesecurity/trufflehog:latest"

// trufflehog reserves exit code 183 for "findings present" when run with
// --fail, distinct from ordinary invocation failures.
const truffleHogFindingsExit = 183

const containerScanPath = "/scan"

//go:generate counterfeiter . DockerClient

// DockerClient is the slice of the engine API the container scanner uses.
// *client.Client satisfies it.
type DockerClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerWait(ctx context.Context, containerID string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error)
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
}

type truffleHogScanner struct {
	docker  DockerClient
	image   string
	timeout time.Duration
}

// NewTruffleHog scans working copies with trufflehog inside a container. A
// nil docker client means the runtime could not be reached at startup; the
// scanner then reports itself unavailable.
func NewTruffleHog(docker DockerClient, image string, timeout time.Duration) Scanner {
	return &truffleHogScanner{
		docker:  docker,
		image:   image,
		timeout: timeout,
	}
}

func (s *truffleHogScanner) Descriptor() Descriptor {
	return Descriptor{ID: TruffleHogID, Kind: KindContainer}
}

func (s *truffleHogScanner) Available(ctx context.Context, logger lager.Logger) bool {
	if s.docker == nil {
		return false
	}

	if _, err := s.docker.Ping(ctx); err != nil {
		logger.Info("container-runtime-unavailable", lager.Data{"error": err.Error()})
		return false
	}

	return true
}

func (s *truffleHogScanner) Scan(ctx context.Context, logger lager.Logger, workdir string) Outcome {
	logger = logger.Session("trufflehog", lager.Data{
		"directory": workdir,
		"image":     s.image,
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.pullImage(ctx, logger)

	created, err := s.docker.ContainerCreate(
		ctx,
		&container.Config{
			Image: s.image,
			Cmd:   []string{"filesystem", containerScanPath, "--fail", "--no-update"},
		},
		&container.HostConfig{
			Binds:       []string{workdir + ":" + containerScanPath + ":ro"},
			NetworkMode: "bridge",
		},
		nil,
		nil,
		"",
	)
	if err != nil {
		logger.Error("failed-to-create-container", err)
		return Outcome{Status: StatusFailed, Output: markTimeout(ctx, []byte(err.Error()))}
	}

	defer s.removeContainer(logger, created.ID)

	if err := s.docker.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		logger.Error("failed-to-start-container", err)
		return Outcome{Status: StatusFailed, Output: markTimeout(ctx, []byte(err.Error()))}
	}

	statusCh, errCh := s.docker.ContainerWait(ctx, created.ID, container.WaitConditionNotRunning)

	var exitCode int64
	select {
	case err := <-errCh:
		logger.Error("failed-to-wait-for-container", err)
		return Outcome{Status: StatusFailed, Output: markTimeout(ctx, s.containerOutput(logger, created.ID))}
	case status := <-statusCh:
		exitCode = status.StatusCode
	}

	output := s.containerOutput(logger, created.ID)

	if exitCode != 0 && exitCode != truffleHogFindingsExit {
		logger.Info("container-exited-abnormally", lager.Data{"exit-code": exitCode})
		return Outcome{Status: StatusFailed, Output: output}
	}

	logger.Debug("done", lager.Data{"exit-code": exitCode})
	return Outcome{Status: StatusCompleted, Output: output}
}

// pullImage is best-effort: a pull failure still leaves any locally cached
// image usable for container creation.
func (s *truffleHogScanner) pullImage(ctx context.Context, logger lager.Logger) {
	reader, err := s.docker.ImagePull(ctx, s.image, image.PullOptions{})
	if err != nil {
		logger.Info("failed-to-pull-image", lager.Data{"error": err.Error()})
		return
	}
	defer reader.Close()

	io.Copy(ioutil.Discard, reader)
}

func (s *truffleHogScanner) containerOutput(logger lager.Logger, containerID string) []byte {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	reader, err := s.docker.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		logger.Error("failed-to-read-container-logs", err)
		return nil
	}
	defer reader.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, reader); err != nil {
		logger.Error("failed-to-demux-container-logs", err)
	}

	stdout.Write(stderr.Bytes())
	return stdout.Bytes()
}

// removeContainer runs on its own context so cleanup still happens after the
// scan deadline expires.
func (s *truffleHogScanner) removeContainer(logger lager.Logger, containerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := s.docker.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: true})
	if err != nil {
		logger.Error("failed-to-remove-container", err)
	}
}
