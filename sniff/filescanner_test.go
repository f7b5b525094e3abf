package sniff_test

import (
	"errors"
	"io"
	"strings"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"

	"github.com/leakhound/leakhound/sniff"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileScanner", func() {
	var (
		fileScanner sniff.Scanner
		reader      io.Reader
		logger      lager.Logger
	)

	fileContent := `line1
line2
line3`

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("file-scanner")
		reader = strings.NewReader(fileContent)
	})

	JustBeforeEach(func() {
		fileScanner = sniff.NewFileScanner(reader, "app/config.yml")
	})

	It("returns true while lines remain", func() {
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		Expect(fileScanner.Scan(logger)).To(BeFalse())
	})

	It("returns the current line", func() {
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		line := fileScanner.Line(logger)

		Expect(line.Path).To(Equal("app/config.yml"))
		Expect(string(line.Content)).To(Equal("line1"))
		Expect(line.LineNumber).To(Equal(1))
	})

	It("keeps track of line numbers", func() {
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		line := fileScanner.Line(logger)
		Expect(line.LineNumber).To(Equal(3))
	})

	It("returns lines that survive later scans", func() {
		Expect(fileScanner.Scan(logger)).To(BeTrue())
		first := fileScanner.Line(logger)
		Expect(fileScanner.Scan(logger)).To(BeTrue())

		Expect(string(first.Content)).To(Equal("line1"))
	})

	Context("when a line is longer than bufio's default buffer", func() {
		BeforeEach(func() {
			reader = strings.NewReader(strings.Repeat("x", 256*1024) + "\nshort")
		})

		It("still scans it", func() {
			Expect(fileScanner.Scan(logger)).To(BeTrue())
			Expect(fileScanner.Line(logger).Content).To(HaveLen(256 * 1024))

			Expect(fileScanner.Scan(logger)).To(BeTrue())
			Expect(string(fileScanner.Line(logger).Content)).To(Equal("short"))

			Expect(fileScanner.Scan(logger)).To(BeFalse())
			Expect(fileScanner.Err()).NotTo(HaveOccurred())
		})
	})

	Context("when the reader errors", func() {
		BeforeEach(func() {
			reader = &errReader{err: errors.New("my awesome error")}
		})

		It("returns any error encountered while scanning", func() {
			Expect(fileScanner.Scan(logger)).To(BeFalse())
			Expect(fileScanner.Err()).To(MatchError("my awesome error"))
		})
	})
})

type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) {
	return 0, r.err
}
