package main

import (
	"bytes"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/five82/tutor/internal/tutortest"
)

var _ = Describe("tutor command", func() {

	var (
		dir    string
		server *tutortest.Server
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		server = tutortest.New(GinkgoT(), nil)
	})

	execute := func(args ...string) (string, error) {
		cmd := newRootCmd()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(append([]string{
			"--config", filepath.Join(dir, "config.toml"),
			"--prefs", filepath.Join(dir, "prefs.toml"),
			"--log-file", filepath.Join(dir, "tutor.log"),
		}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	It("probes past an unreachable candidate", func() {
		deadURL := tutortest.DeadURL(GinkgoT())

		out, err := execute("--server", deadURL, "--server", server.URL, "probe")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("✗ " + deadURL))
		Expect(out).To(ContainSubstring("✓ " + server.URL))
		Expect(out).To(ContainSubstring("using " + server.URL))
	})

	It("fails when no candidate answers", func() {
		deadURL := tutortest.DeadURL(GinkgoT())

		out, err := execute("--server", deadURL, "probe")
		Expect(err).To(MatchError(errUnreachable))
		Expect(out).To(ContainSubstring("all servers unreachable"))
	})

	It("asks a question and prints the answer", func() {
		out, err := execute("--server", server.URL, "ask", "What", "is", "2+2?")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("4\n"))
		Expect(server.Questions()).To(ConsistOf("What is 2+2?"))
	})

	It("rejects a blank question", func() {
		_, err := execute("--server", server.URL, "ask", " ")
		Expect(err).To(MatchError("Please enter a question"))
	})

})
