package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Zeroes E2E Tests", func() {
	var (
		dir        string
		outputPath string
	)

	BeforeEach(func() {
		dir = createTempDir()
		outputPath = filepath.Join(dir, "data")
	})

	runZeroes := func(args ...string) *gexec.Session {
		cmd := exec.Command(zeroesBinary, args...)
		session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, 30*time.Second).Should(gexec.Exit())
		return session
	}

	Describe("Vector generation", func() {
		It("should generate five zeroes", func() {
			session := runZeroes("--output", outputPath, "5", "vector")
			Expect(session.ExitCode()).To(Equal(0))

			data, err := os.ReadFile(outputPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("0 0 0 0 0"))
		})

		It("should generate an empty file for zero", func() {
			session := runZeroes("--output", outputPath, "0", "vector")
			Expect(session.ExitCode()).To(Equal(0))

			info, err := os.Stat(outputPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeZero())
		})

		It("should produce identical output when run twice", func() {
			Expect(runZeroes("--output", outputPath, "100", "vector").ExitCode()).To(Equal(0))
			first, err := os.ReadFile(outputPath)
			Expect(err).NotTo(HaveOccurred())

			Expect(runZeroes("--output", outputPath, "100", "vector").ExitCode()).To(Equal(0))
			second, err := os.ReadFile(outputPath)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
			Expect(strings.Split(string(second), " ")).To(HaveLen(100))
		})
	})

	Describe("Argument validation", func() {
		It("should reject a negative number", func() {
			session := runZeroes("--output", outputPath, "-3", "vector")
			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("NUMBER has to be a non-negative integer, not -3"))

			_, err := os.Stat(outputPath)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should print the diagnostic even when logging is restricted to fatal", func() {
			session := runZeroes("--log-level", "fatal", "--output", outputPath, "-3", "vector")
			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("NUMBER has to be a non-negative integer, not -3"))
		})

		It("should reject an unknown kind", func() {
			session := runZeroes("--output", outputPath, "5", "matrix")
			Expect(session.ExitCode()).To(Equal(2))
			Expect(session.Err).To(gbytes.Say("invalid choice"))

			_, err := os.Stat(outputPath)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should reject a non-integer number", func() {
			session := runZeroes("--output", outputPath, "1.5", "vector")
			Expect(session.ExitCode()).To(Equal(2))
		})
	})

	Describe("I/O failures", func() {
		It("should exit non-zero when the output directory is missing", func() {
			session := runZeroes("--output", filepath.Join(dir, "missing", "data"), "5", "vector")
			Expect(session.ExitCode()).NotTo(Equal(0))
			Expect(session.Err).To(gbytes.Say("failed to write to output file"))

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})
})
