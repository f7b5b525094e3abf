package gitclient_test

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/leakhound/leakhound/gitclient"
	"github.com/leakhound/leakhound/runner"
	"github.com/leakhound/leakhound/runner/runnerfakes"
)

var _ = Describe("Client", func() {
	var (
		fakeRunner *runnerfakes.FakeRunner
		client     gitclient.Client
		logger     lager.Logger
		ctx        context.Context
	)

	BeforeEach(func() {
		fakeRunner = &runnerfakes.FakeRunner{}
		client = gitclient.New(fakeRunner)
		logger = lagertest.NewTestLogger("gitclient")
		ctx = context.Background()
	})

	Describe("Clone", func() {
		It("invokes git clone with the url and destination", func() {
			err := client.Clone(ctx, logger, "https://example.com/org/repo.git", "/tmp/dest")
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRunner.RunCallCount()).To(Equal(1))
			_, _, command := fakeRunner.RunArgsForCall(0)
			Expect(command.Path).To(Equal("git"))
			Expect(command.Args).To(Equal([]string{"clone", "--quiet", "https://example.com/org/repo.git", "/tmp/dest"}))
		})

		It("returns an error including stderr when git exits non-zero", func() {
			fakeRunner.RunReturns(runner.Result{
				ExitCode: 128,
				Stderr:   []byte("fatal: repository not found\nsome more context"),
			}, nil)

			err := client.Clone(ctx, logger, "https://example.com/org/gone.git", "/tmp/dest")
			Expect(err).To(MatchError(ContainSubstring("exit status 128")))
			Expect(err).To(MatchError(ContainSubstring("fatal: repository not found")))
		})

		It("wraps runner errors", func() {
			fakeRunner.RunReturns(runner.Result{}, errors.New("no git installed"))

			err := client.Clone(ctx, logger, "https://example.com/org/repo.git", "/tmp/dest")
			Expect(err).To(MatchError(ContainSubstring("no git installed")))
		})
	})

	Describe("Pull", func() {
		It("fast-forwards the existing working copy", func() {
			err := client.Pull(ctx, logger, "/tmp/dest")
			Expect(err).NotTo(HaveOccurred())

			_, _, command := fakeRunner.RunArgsForCall(0)
			Expect(command.Args).To(Equal([]string{"-C", "/tmp/dest", "pull", "--ff-only", "--quiet"}))
		})
	})

	Describe("IsRepository", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = ioutil.TempDir("", "gitclient-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		It("is false for a directory without a .git dir", func() {
			Expect(client.IsRepository(dir)).To(BeFalse())
		})

		It("is true once a .git directory exists", func() {
			Expect(os.Mkdir(filepath.Join(dir, ".git"), 0755)).To(Succeed())
			Expect(client.IsRepository(dir)).To(BeTrue())
		})
	})

	Describe("DeletedFiles", func() {
		It("deduplicates paths and skips blank lines", func() {
			fakeRunner.RunReturns(runner.Result{
				Stdout: []byte("\nconfig/old.pem\n\nsecrets.env\nconfig/old.pem\n"),
			}, nil)

			files, err := client.DeletedFiles(ctx, logger, "/tmp/dest")
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(Equal([]string{"config/old.pem", "secrets.env"}))

			_, _, command := fakeRunner.RunArgsForCall(0)
			Expect(command.Args).To(Equal([]string{"-C", "/tmp/dest", "log", "--all", "--diff-filter=D", "--name-only", "--pretty=format:"}))
		})

		It("returns an error when git log fails", func() {
			fakeRunner.RunReturns(runner.Result{
				ExitCode: 128,
				Stderr:   []byte("fatal: not a git repository"),
			}, nil)

			_, err := client.DeletedFiles(ctx, logger, "/tmp/dest")
			Expect(err).To(MatchError(ContainSubstring("not a git repository")))
		})
	})
})
