package greetcmder_test

import (
	"bytes"
	"net/http/httptest"

	"github.com/spf13/cobra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/oasis/api"
	greetcmder "github.com/papercomputeco/oasis/cmd/oasis/greet"
	"github.com/papercomputeco/oasis/pkg/greeter"
	"github.com/papercomputeco/oasis/pkg/logger"
	testutils "github.com/papercomputeco/oasis/pkg/utils/test"
)

var _ = Describe("NewGreetCmd", func() {
	var (
		ts  *httptest.Server
		out *bytes.Buffer
	)

	newCmd := func(args ...string) *cobra.Command {
		cmd := greetcmder.NewGreetCmd()
		cmd.PersistentFlags().String("config-dir", "", "")
		cmd.SetArgs(append([]string{"--config-dir", GinkgoT().TempDir()}, args...))
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		return cmd
	}

	BeforeEach(func() {
		g, err := greeter.New(greeter.WithSource(testutils.NewSequenceSource(1)))
		Expect(err).NotTo(HaveOccurred())

		server, err := api.NewServer(api.Config{}, g, logger.Nop())
		Expect(err).NotTo(HaveOccurred())

		ts = httptest.NewServer(server.Handler())
		DeferCleanup(ts.Close)

		out = &bytes.Buffer{}
	})

	It("creates a command with the correct use string", func() {
		Expect(greetcmder.NewGreetCmd().Use).To(Equal("greet [name]"))
	})

	It("greets a stranger without a name", func() {
		Expect(newCmd("--api-target", ts.URL).Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Hello, Stranger!"))
	})

	It("greets by name", func() {
		Expect(newCmd("Ada", "--api-target", ts.URL).Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Hello, Ada!"))
	})

	It("prints numbered greetings with --many", func() {
		Expect(newCmd("Ada", "--many", "--api-target", ts.URL).Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Hello, Ada! Greeting 1"))
		Expect(out.String()).To(ContainSubstring("Hello, Ada! Greeting 3"))
		Expect(out.String()).NotTo(ContainSubstring("Greeting 4"))
	})

	It("rejects more than one name", func() {
		Expect(newCmd("Ada", "Grace", "--api-target", ts.URL).Execute()).To(HaveOccurred())
	})

	It("reports an unreachable server", func() {
		ts.Close()
		err := newCmd("--api-target", ts.URL).Execute()
		Expect(err).To(MatchError(ContainSubstring("failed to connect to oasis API")))
	})

	It("reads the API target from the environment", func() {
		GinkgoT().Setenv("OASIS_CLIENT_API_TARGET", ts.URL)
		Expect(newCmd("Ada").Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Hello, Ada!"))
	})
})
