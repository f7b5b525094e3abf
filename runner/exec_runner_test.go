package runner_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/leakhound/leakhound/runner"
)

var _ = Describe("ExecRunner", func() {
	var (
		execRunner runner.Runner
		logger     lager.Logger
		ctx        context.Context
	)

	BeforeEach(func() {
		execRunner = runner.NewExecRunner()
		logger = lagertest.NewTestLogger("exec-runner")
		ctx = context.Background()
	})

	It("captures stdout and reports a zero exit code", func() {
		result, err := execRunner.Run(ctx, logger, runner.Command{
			Path: "echo",
			Args: []string{"hello"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ExitCode).To(Equal(0))
		Expect(string(result.Stdout)).To(Equal("hello\n"))
	})

	It("reports a non-zero exit code without returning an error", func() {
		result, err := execRunner.Run(ctx, logger, runner.Command{
			Path: "sh",
			Args: []string{"-c", "exit 3"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ExitCode).To(Equal(3))
	})

	It("captures stderr separately from stdout", func() {
		result, err := execRunner.Run(ctx, logger, runner.Command{
			Path: "sh",
			Args: []string{"-c", "echo out; echo oops 1>&2"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(result.Stdout)).To(Equal("out\n"))
		Expect(string(result.Stderr)).To(Equal("oops\n"))
		Expect(string(result.Combined())).To(Equal("out\noops\n"))
	})

	It("runs the command in the given directory", func() {
		result, err := execRunner.Run(ctx, logger, runner.Command{
			Path: "pwd",
			Dir:  "/",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(result.Stdout)).To(Equal("/\n"))
	})

	It("returns an error when the binary does not exist", func() {
		_, err := execRunner.Run(ctx, logger, runner.Command{
			Path: "leakhound-no-such-binary-ever",
		})
		Expect(err).To(HaveOccurred())
	})

	Context("when the context deadline passes", func() {
		It("returns the context error and any collected output", func() {
			shortCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
			defer cancel()

			result, err := execRunner.Run(shortCtx, logger, runner.Command{
				Path: "sh",
				Args: []string{"-c", "echo started; sleep 5"},
			})
			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(string(result.Stdout)).To(Equal("started\n"))
		})
	})

	Describe("LookPath", func() {
		It("finds binaries on the PATH", func() {
			path, err := execRunner.LookPath("sh")
			Expect(err).NotTo(HaveOccurred())
			Expect(path).NotTo(BeEmpty())
		})

		It("errors for binaries that are not installed", func() {
			_, err := execRunner.LookPath("leakhound-no-such-binary-ever")
			Expect(err).To(HaveOccurred())
		})
	})
})
