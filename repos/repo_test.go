package repos_test

import (
	"github.com/leakhound/leakhound/repos"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("NameFromURL", func() {
	It("uses the final path segment of an https URL", func() {
		Expect(repos.NameFromURL("https://github.com/example-org/widget.git")).To(Equal("widget"))
	})

	It("does not require a .git suffix", func() {
		Expect(repos.NameFromURL("https://github.com/example-org/widget")).To(Equal("widget"))
	})

	It("ignores trailing slashes", func() {
		Expect(repos.NameFromURL("https://github.com/example-org/widget.git/")).To(Equal("widget"))
	})

	It("understands scp-style URLs", func() {
		Expect(repos.NameFromURL("git@github.com:example-org/widget.git")).To(Equal("widget"))
	})

	It("understands scp-style URLs without an org", func() {
		Expect(repos.NameFromURL("git@example.com:widget.git")).To(Equal("widget"))
	})

	It("passes through a bare name", func() {
		Expect(repos.NameFromURL("widget")).To(Equal("widget"))
	})

	It("trims surrounding whitespace", func() {
		Expect(repos.NameFromURL("  https://github.com/example-org/widget.git\t")).To(Equal("widget"))
	})

	It("returns an empty name when the URL has no final segment", func() {
		Expect(repos.NameFromURL("https://")).To(Equal(""))
	})
})
