package dbn_test

import (
	"time"

	"github.com/openmdp/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func symbolMapTestMetadata() *dbn.Metadata {
	return &dbn.Metadata{
		VersionNum: dbn.HeaderVersion2,
		Dataset:    "GLBX.MDP3",
		Schema:     dbn.Schema_Ohlcv1S,
		Start:      1609160400000000000,
		End:        1609200000000000000,
		StypeIn:    dbn.SType_RawSymbol,
		StypeOut:   dbn.SType_InstrumentId,
		Mappings: []dbn.SymbolMapping{
			{
				RawSymbol: "ESH1",
				Intervals: []dbn.MappingInterval{
					{StartDate: 20201228, EndDate: 20201229, Symbol: "5482"},
				},
			},
		},
	}
}

var _ = Describe("SymbolMap", func() {
	Context("TsSymbolMap", func() {
		It("starts empty", func() {
			tsm := dbn.NewTsSymbolMap()
			Expect(tsm.IsEmpty()).To(BeTrue())
			Expect(tsm.Len()).To(Equal(0))
		})

		It("fills mappings from metadata and resolves by date", func() {
			tsm := dbn.NewTsSymbolMap()
			Expect(tsm.FillFromMetadata(symbolMapTestMetadata())).To(Succeed())
			Expect(tsm.IsEmpty()).To(BeFalse())
			Expect(tsm.Len()).To(Equal(1))

			day := time.Date(2020, 12, 28, 0, 0, 0, 0, time.UTC)
			Expect(tsm.Get(day, 5482)).To(Equal("ESH1"))

			nextDay := time.Date(2020, 12, 29, 0, 0, 0, 0, time.UTC)
			Expect(tsm.Get(nextDay, 5482)).To(Equal(""))

			Expect(tsm.Get(day, 999)).To(Equal(""))
		})

		It("resolves GetForRecord from an index timestamp", func() {
			tsm := dbn.NewTsSymbolMap()
			Expect(tsm.FillFromMetadata(symbolMapTestMetadata())).To(Succeed())

			symbol, ok := tsm.GetForRecord(1609160400000000000, 5482)
			Expect(ok).To(BeTrue())
			Expect(symbol).To(Equal("ESH1"))

			_, ok = tsm.GetForRecord(1609160400000000000, 1)
			Expect(ok).To(BeFalse())
		})

		It("rejects an inverted date range on Insert", func() {
			tsm := dbn.NewTsSymbolMap()
			Expect(tsm.Insert(5482, 20201229, 20201228, "ESH1")).ToNot(Succeed())
		})
	})

	Context("PitSymbolMap", func() {
		It("starts empty", func() {
			p := dbn.NewPitSymbolMap()
			Expect(p.IsEmpty()).To(BeTrue())
			Expect(p.Len()).To(Equal(0))
		})

		It("fills mappings from metadata at a point in time", func() {
			p := dbn.NewPitSymbolMap()
			Expect(p.FillFromMetadata(symbolMapTestMetadata(), 1609160400000000000)).To(Succeed())
			Expect(p.IsEmpty()).To(BeFalse())
			Expect(p.Get(5482)).To(Equal("ESH1"))

			symbol, ok := p.GetForRecord(0, 5482)
			Expect(ok).To(BeTrue())
			Expect(symbol).To(Equal("ESH1"))
		})

		It("rejects a timestamp outside the metadata's query range", func() {
			p := dbn.NewPitSymbolMap()
			err := p.FillFromMetadata(symbolMapTestMetadata(), 1609200000000000000)
			Expect(err).To(Equal(dbn.ErrDateOutsideQueryRange))
		})

		It("rejects metadata whose stypes don't involve instrument ID", func() {
			meta := symbolMapTestMetadata()
			meta.StypeIn = dbn.SType_RawSymbol
			meta.StypeOut = dbn.SType_RawSymbol
			p := dbn.NewPitSymbolMap()
			err := p.FillFromMetadata(meta, 1609160400000000000)
			Expect(err).To(Equal(dbn.ErrWrongStypesForMapping))
		})

		It("updates its mapping from a SymbolMappingMsg", func() {
			p := dbn.NewPitSymbolMap()
			msg := &dbn.SymbolMappingMsg{
				Header:         dbn.RHeader{RType: dbn.RType_SymbolMapping, InstrumentID: 5482},
				StypeOutSymbol: "ESH1",
			}
			Expect(p.OnSymbolMappingMsg(msg)).To(Succeed())
			Expect(p.Get(5482)).To(Equal("ESH1"))
		})
	})
})
