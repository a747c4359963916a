package dbn_test

import (
	"github.com/openmdp/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FrameReader", func() {
	Context("framing", func() {
		It("reports need-more-data on an empty buffer", func() {
			fr := dbn.NewFrameReader()
			_, state := fr.TryFrame()
			Expect(state).To(Equal(dbn.FrameNeedMoreData))
			Expect(fr.Buffered()).To(Equal(0))
		})

		It("waits for the rest of a record whose length prefix exceeds the buffer", func() {
			fr := dbn.NewFrameReader()
			// length byte of 5 declares a 20-byte record; supply only the header.
			fr.Feed([]byte{5, byte(dbn.RType_Ohlcv1S), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
			_, state := fr.TryFrame()
			Expect(state).To(Equal(dbn.FrameNeedMoreData))
			Expect(fr.Buffered()).To(Equal(16))
		})

		It("extracts a complete record once enough bytes are buffered", func() {
			fr := dbn.NewFrameReader()
			header := []byte{5, byte(dbn.RType_Ohlcv1S), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
			rest := make([]byte, 4) // length byte 5 means a 20-byte record
			fr.Feed(header)
			fr.Feed(rest)

			record, state := fr.TryFrame()
			Expect(state).To(Equal(dbn.FrameReady))
			Expect(len(record)).To(Equal(20))
			Expect(fr.Buffered()).To(Equal(0))
		})

		It("frames consecutive records back to back", func() {
			fr := dbn.NewFrameReader()
			rec := []byte{4, byte(dbn.RType_Ohlcv1S), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
			fr.Feed(rec)
			fr.Feed(rec)

			_, state1 := fr.TryFrame()
			Expect(state1).To(Equal(dbn.FrameReady))
			_, state2 := fr.TryFrame()
			Expect(state2).To(Equal(dbn.FrameReady))
			_, state3 := fr.TryFrame()
			Expect(state3).To(Equal(dbn.FrameNeedMoreData))
		})

		It("reports malformed when the declared length is below the header size", func() {
			fr := dbn.NewFrameReader()
			fr.Feed([]byte{1, byte(dbn.RType_Ohlcv1S), 0, 0})
			_, state := fr.TryFrame()
			Expect(state).To(Equal(dbn.FrameMalformed))
		})
	})
})
