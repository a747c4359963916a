package dbn_test

import (
	"io"
	"os"
	"path/filepath"

	"github.com/openmdp/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CompressedIO", func() {
	Context("MakeCompressedWriter/MakeCompressedReader", func() {
		It("round-trips plain bytes through a file with no compression", func() {
			path := filepath.Join(GinkgoT().TempDir(), "plain.dbn")

			w, closeW, err := dbn.MakeCompressedWriter(path, false)
			Expect(err).ToNot(HaveOccurred())
			_, err = w.Write([]byte("hello dbn"))
			Expect(err).ToNot(HaveOccurred())
			closeW()

			r, closeR, err := dbn.MakeCompressedReader(path, false)
			Expect(err).ToNot(HaveOccurred())
			defer closeR.Close()
			got, err := io.ReadAll(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(got)).To(Equal("hello dbn"))
		})

		It("round-trips bytes through zstd compression when useZstd is set", func() {
			path := filepath.Join(GinkgoT().TempDir(), "compressed.dat")

			w, closeW, err := dbn.MakeCompressedWriter(path, true)
			Expect(err).ToNot(HaveOccurred())
			payload := []byte("a payload that should come back identical after zstd round trip")
			_, err = w.Write(payload)
			Expect(err).ToNot(HaveOccurred())
			closeW()

			raw, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(raw).ToNot(Equal(payload)) // actually compressed, not just copied

			r, closeR, err := dbn.MakeCompressedReader(path, true)
			Expect(err).ToNot(HaveOccurred())
			defer closeR.Close()
			got, err := io.ReadAll(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(payload))
		})

		It("infers zstd from a .zst filename even when useZstd is false", func() {
			path := filepath.Join(GinkgoT().TempDir(), "inferred.zst")

			w, closeW, err := dbn.MakeCompressedWriter(path, false)
			Expect(err).ToNot(HaveOccurred())
			_, err = w.Write([]byte("inferred compression"))
			Expect(err).ToNot(HaveOccurred())
			closeW()

			r, closeR, err := dbn.MakeCompressedReader(path, false)
			Expect(err).ToNot(HaveOccurred())
			defer closeR.Close()
			got, err := io.ReadAll(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(got)).To(Equal("inferred compression"))
		})

		It("errors opening a reader on a nonexistent file", func() {
			_, _, err := dbn.MakeCompressedReader(filepath.Join(GinkgoT().TempDir(), "missing.dbn"), false)
			Expect(err).To(HaveOccurred())
		})
	})
})
