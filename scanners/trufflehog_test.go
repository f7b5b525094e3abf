package scanners_test

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/leakhound/leakhound/scanners"
	"github.com/leakhound/leakhound/scanners/scannersfakes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TruffleHog", func() {
	var (
		docker  *scannersfakes.FakeDockerClient
		scanner scanners.Scanner
		logger  *lagertest.TestLogger
	)

	waitChannels := func(exitCode int64) (<-chan container.WaitResponse, <-chan error) {
		statusCh := make(chan container.WaitResponse, 1)
		statusCh <- container.WaitResponse{StatusCode: exitCode}
		return statusCh, make(chan error, 1)
	}

	containerLogs := func(stdout, stderr string) *bytes.Buffer {
		var framed bytes.Buffer
		stdcopy.NewStdWriter(&framed, stdcopy.Stdout).Write([]byte(stdout))
		stdcopy.NewStdWriter(&framed, stdcopy.Stderr).Write([]byte(stderr))
		return &framed
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("trufflehog")

		docker = &scannersfakes.FakeDockerClient{}
		docker.ImagePullReturns(ioutil.NopCloser(bytes.NewReader(nil)), nil)
		docker.ContainerCreateReturns(container.CreateResponse{ID: "deadbeef"}, nil)
		docker.ContainerWaitReturns(waitChannels(0))
		docker.ContainerLogsReturns(ioutil.NopCloser(containerLogs("all clear\n", "")), nil)

		scanner = scanners.NewTruffleHog(docker, "trufflesecurity/trufflehog:latest", time.Minute)
	})

	Describe("Descriptor", func() {
		It("identifies the container variant", func() {
			Expect(scanner.Descriptor()).To(Equal(scanners.Descriptor{
				ID:   scanners.TruffleHogID,
				Kind: scanners.KindContainer,
			}))
		})
	})

	Describe("Available", func() {
		It("is available when the daemon responds", func() {
			Expect(scanner.Available(context.Background(), logger)).To(BeTrue())
			Expect(docker.PingCallCount()).To(Equal(1))
		})

		It("is unavailable when the daemon does not respond", func() {
			docker.PingReturns(types.Ping{}, errors.New("cannot connect"))

			Expect(scanner.Available(context.Background(), logger)).To(BeFalse())
		})

		It("is unavailable without a client", func() {
			scanner = scanners.NewTruffleHog(nil, "trufflesecurity/trufflehog:latest", time.Minute)

			Expect(scanner.Available(context.Background(), logger)).To(BeFalse())
		})
	})

	Describe("Scan", func() {
		It("mounts the working copy read-only and runs a filesystem scan", func() {
			outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")
			Expect(outcome.Status).To(Equal(scanners.StatusCompleted))

			_, config, hostConfig, _, _, _ := docker.ContainerCreateArgsForCall(0)
			Expect(config.Image).To(Equal("trufflesecurity/trufflehog:latest"))
			Expect(config.Cmd).To(Equal([]string{"filesystem", "/scan", "--fail", "--no-update"}))
			Expect(hostConfig.Binds).To(ConsistOf("/tmp/work/repo:/scan:ro"))
		})

		It("captures demuxed container output", func() {
			docker.ContainerLogsReturns(ioutil.NopCloser(containerLogs("found nothing\n", "warning: shallow\n")), nil)

			outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

			Expect(string(outcome.Output)).To(Equal("found nothing\nwarning: shallow\n"))
		})

		It("treats the findings exit code as a completed scan", func() {
			docker.ContainerWaitReturns(waitChannels(183))
			docker.ContainerLogsReturns(ioutil.NopCloser(containerLogs("Found verified result 🐷🔑\n", "")), nil)

			outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

			Expect(outcome.Status).To(Equal(scanners.StatusCompleted))
			Expect(string(outcome.Output)).To(ContainSubstring("Found verified result"))
		})

		It("fails the cell on any other exit code", func() {
			docker.ContainerWaitReturns(waitChannels(125))

			outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

			Expect(outcome.Status).To(Equal(scanners.StatusFailed))
		})

		It("force-removes the container afterwards", func() {
			scanner.Scan(context.Background(), logger, "/tmp/work/repo")

			Expect(docker.ContainerRemoveCallCount()).To(Equal(1))
			_, id, options := docker.ContainerRemoveArgsForCall(0)
			Expect(id).To(Equal("deadbeef"))
			Expect(options.Force).To(BeTrue())
		})

		It("pulls the image but tolerates pull failure", func() {
			docker.ImagePullReturns(nil, errors.New("registry unreachable"))

			outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

			Expect(docker.ImagePullCallCount()).To(Equal(1))
			Expect(outcome.Status).To(Equal(scanners.StatusCompleted))
		})

		Context("when the container cannot be created", func() {
			BeforeEach(func() {
				docker.ContainerCreateReturns(container.CreateResponse{}, errors.New("no such image"))
			})

			It("fails the cell and preserves the error text", func() {
				outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

				Expect(outcome.Status).To(Equal(scanners.StatusFailed))
				Expect(string(outcome.Output)).To(ContainSubstring("no such image"))
				Expect(docker.ContainerRemoveCallCount()).To(Equal(0))
			})
		})

		Context("when the container cannot be started", func() {
			BeforeEach(func() {
				docker.ContainerStartReturns(errors.New("oci runtime error"))
			})

			It("fails the cell and still removes the container", func() {
				outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

				Expect(outcome.Status).To(Equal(scanners.StatusFailed))
				Expect(docker.ContainerRemoveCallCount()).To(Equal(1))
			})
		})

		Context("when waiting errors", func() {
			BeforeEach(func() {
				errCh := make(chan error, 1)
				errCh <- errors.New("daemon went away")
				docker.ContainerWaitReturns(make(chan container.WaitResponse), errCh)
			})

			It("fails the cell with whatever output exists", func() {
				outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

				Expect(outcome.Status).To(Equal(scanners.StatusFailed))
				Expect(string(outcome.Output)).To(ContainSubstring("all clear"))
			})
		})

		Context("when the scan deadline expires", func() {
			BeforeEach(func() {
				scanner = scanners.NewTruffleHog(docker, "trufflesecurity/trufflehog:latest", time.Nanosecond)

				docker.ContainerWaitStub = func(ctx context.Context, _ string, _ container.WaitCondition) (<-chan container.WaitResponse, <-chan error) {
					errCh := make(chan error, 1)
					<-ctx.Done()
					errCh <- ctx.Err()
					return make(chan container.WaitResponse), errCh
				}
			})

			It("fails the cell with a timeout marker", func() {
				outcome := scanner.Scan(context.Background(), logger, "/tmp/work/repo")

				Expect(outcome.Status).To(Equal(scanners.StatusFailed))
				Expect(string(outcome.Output)).To(ContainSubstring(scanners.TimeoutMarker))
			})
		})
	})
})
