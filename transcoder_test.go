package dbn_test

import (
	"bytes"
	"errors"

	"github.com/openmdp/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func pollToDrain(tr *dbn.Transcoder) error {
	for {
		state, err := tr.Poll()
		if err != nil {
			return err
		}
		if state == dbn.AsyncNeedMoreData {
			return nil
		}
	}
}

var _ = Describe("Transcoder", func() {
	Context("binary to binary", func() {
		It("re-encodes a DBN stream through an encoder sink", func() {
			var src bytes.Buffer
			srcEnc := dbn.NewEncoder(&src, dbn.EncodeFullStream)
			Expect(srcEnc.WriteMetadata(ohlcvTestMetadata(dbn.HeaderVersion2))).To(Succeed())
			for _, r := range ohlcvTestRecords() {
				r := r
				Expect(dbn.WriteRecord[dbn.OhlcvMsg](srcEnc, &r)).To(Succeed())
			}

			var dst bytes.Buffer
			tr := dbn.NewTranscoder(func(m *dbn.Metadata) (dbn.Visitor, error) {
				dstEnc := dbn.NewEncoder(&dst, dbn.EncodeFullStream)
				if err := dstEnc.WriteMetadata(m); err != nil {
					return nil, err
				}
				return dbn.NewEncoderVisitor(dstEnc, int(m.SymbolCstrLen), m.VersionNum == 3), nil
			})

			tr.Feed(src.Bytes())
			Expect(pollToDrain(tr)).To(Succeed())
			Expect(tr.Flush()).To(Succeed())

			records, metadata, err := dbn.ReadDBNToSlice[dbn.OhlcvMsg](&dst)
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))
			Expect(records[0].Header.InstrumentID).To(Equal(uint32(5482)))
			Expect(records[0].Open).To(Equal(int64(372025000000000)))
			Expect(records[1].Close).To(Equal(int64(372050000000000)))
		})

		It("re-encodes the input incrementally, one byte at a time", func() {
			var src bytes.Buffer
			srcEnc := dbn.NewEncoder(&src, dbn.EncodeFullStream)
			Expect(srcEnc.WriteMetadata(ohlcvTestMetadata(dbn.HeaderVersion2))).To(Succeed())
			for _, r := range ohlcvTestRecords() {
				r := r
				Expect(dbn.WriteRecord[dbn.OhlcvMsg](srcEnc, &r)).To(Succeed())
			}

			var dst bytes.Buffer
			tr := dbn.NewTranscoder(func(m *dbn.Metadata) (dbn.Visitor, error) {
				dstEnc := dbn.NewEncoder(&dst, dbn.EncodeFullStream)
				if err := dstEnc.WriteMetadata(m); err != nil {
					return nil, err
				}
				return dbn.NewEncoderVisitor(dstEnc, int(m.SymbolCstrLen), m.VersionNum == 3), nil
			})

			srcBytes := src.Bytes()
			for i := 0; i < len(srcBytes); i++ {
				tr.Feed(srcBytes[i : i+1])
				Expect(pollToDrain(tr)).To(Succeed())
			}
			Expect(tr.Flush()).To(Succeed())

			records, _, err := dbn.ReadDBNToSlice[dbn.OhlcvMsg](&dst)
			Expect(err).To(BeNil())
			Expect(len(records)).To(Equal(2))
		})
	})

	Context("error propagation", func() {
		It("surfaces a sink build error through Flush", func() {
			var src bytes.Buffer
			srcEnc := dbn.NewEncoder(&src, dbn.EncodeFullStream)
			Expect(srcEnc.WriteMetadata(ohlcvTestMetadata(dbn.HeaderVersion2))).To(Succeed())

			buildErr := errors.New("sink build failed")
			tr := dbn.NewTranscoder(func(m *dbn.Metadata) (dbn.Visitor, error) {
				return nil, buildErr
			})

			tr.Feed(src.Bytes())
			Expect(pollToDrain(tr)).To(Succeed())
			Expect(tr.Flush()).To(Equal(buildErr))
		})
	})
})
