package audit_test

import (
	"context"
	"errors"
	"os"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"

	"github.com/leakhound/leakhound/audit"
	"github.com/leakhound/leakhound/audit/auditfakes"
	"github.com/leakhound/leakhound/gate"
	"github.com/leakhound/leakhound/repos"
)

var _ = Describe("Runner", func() {
	var (
		logger       *lagertest.TestLogger
		auditor      *auditfakes.FakeAuditor
		repositories []repos.Repository

		process ifrit.Process
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("runner")
		auditor = &auditfakes.FakeAuditor{}
		repositories = []repos.Repository{
			{URL: "https://github.com/example-org/gadgets.git", Name: "gadgets"},
		}
	})

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive())
	})

	It("becomes ready, audits, and stashes the verdict", func() {
		auditor.AuditReturns(gate.Verdict{
			TotalRepositories:   1,
			FlaggedRepositories: []string{"gadgets"},
		}, nil)

		runner := audit.NewRunner(logger, auditor, repositories)
		process = ifrit.Background(runner)

		Eventually(process.Ready()).Should(BeClosed())
		Eventually(process.Wait()).Should(Receive(BeNil()))

		Expect(auditor.AuditCallCount()).To(Equal(1))
		_, _, audited := auditor.AuditArgsForCall(0)
		Expect(audited).To(Equal(repositories))

		verdict := runner.Verdict()
		Expect(verdict.TotalRepositories).To(Equal(1))
		Expect(verdict.FlaggedRepositories).To(ConsistOf("gadgets"))
	})

	It("propagates audit errors", func() {
		auditor.AuditReturns(gate.Verdict{}, errors.New("disaster"))

		runner := audit.NewRunner(logger, auditor, repositories)
		process = ifrit.Background(runner)

		Eventually(process.Wait()).Should(Receive(MatchError("disaster")))
	})

	Context("when signalled mid-run", func() {
		BeforeEach(func() {
			auditor.AuditStub = func(ctx context.Context, _ lager.Logger, _ []repos.Repository) (gate.Verdict, error) {
				<-ctx.Done()
				return gate.Verdict{}, ctx.Err()
			}
		})

		It("cancels the in-flight audit and exits", func() {
			runner := audit.NewRunner(logger, auditor, repositories)
			process = ifrit.Background(runner)

			Eventually(process.Ready()).Should(BeClosed())
			Eventually(auditor.AuditCallCount).Should(Equal(1))

			process.Signal(os.Interrupt)

			Eventually(process.Wait()).Should(Receive(MatchError(context.Canceled)))
		})
	})
})
