// Copyright (c) 2024 Neomantra Corp

package dbn_test

import (
	"bytes"
	"unsafe"

	dbn "github.com/openmdp/dbn-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func structTestMetadata(versionNum uint8, schema dbn.Schema) *dbn.Metadata {
	return &dbn.Metadata{
		VersionNum: versionNum,
		Dataset:    "XNAS.ITCH",
		Schema:     schema,
		Start:      1609160400000000000,
		End:        1609160402000000000,
		StypeIn:    dbn.SType_RawSymbol,
		StypeOut:   dbn.SType_InstrumentId,
	}
}

func encodeRecords[T any](versionNum uint8, schema dbn.Schema, recs []T, writeOne func(*dbn.Encoder, *T) error) ([]T, *dbn.Metadata, error) {
	var buf bytes.Buffer
	enc := dbn.NewEncoder(&buf, dbn.EncodeFullStream)
	if err := enc.WriteMetadata(structTestMetadata(versionNum, schema)); err != nil {
		return nil, nil, err
	}
	for i := range recs {
		r := recs[i]
		if err := writeOne(enc, &r); err != nil {
			return nil, nil, err
		}
	}
	return dbn.ReadDBNToSlice[T](&buf)
}

var _ = Describe("Struct", func() {
	Context("correctness", func() {
		It("struct consts should be correct", func() {
			Expect(unsafe.Sizeof(dbn.RHeader{})).To(Equal(uintptr(dbn.RHeader_Size)))
			Expect(unsafe.Sizeof(dbn.BidAskPair{})).To(Equal(uintptr(dbn.BidAskPair_Size)))
			Expect(unsafe.Sizeof(dbn.Mbp0Msg{})).To(Equal(uintptr(dbn.Mbp0Msg_Size)))
			Expect(unsafe.Sizeof(dbn.Mbp1Msg{})).To(Equal(uintptr(dbn.Mbp1Msg_Size)))
			Expect(unsafe.Sizeof(dbn.Mbp10Msg{})).To(Equal(uintptr(dbn.Mbp10Msg_Size)))
			Expect(unsafe.Sizeof(dbn.Cmbp1Msg{})).To(Equal(uintptr(dbn.Cmbp1Msg_Size)))
			Expect(unsafe.Sizeof(dbn.OhlcvMsg{})).To(Equal(uintptr(dbn.OhlcvMsg_Size)))
			Expect(unsafe.Sizeof(dbn.ImbalanceMsg{})).To(Equal(uintptr(dbn.ImbalanceMsg_Size)))
			// ErrorMsg and SystemMsg hold string fields; their wire size is checked
			// against RSize()/WriteRaw below, not unsafe.Sizeof.
			Expect(unsafe.Sizeof(dbn.StatMsg{})).To(Equal(uintptr(dbn.StatMsg_Size)))
			Expect(unsafe.Sizeof(dbn.StatusMsg{})).To(Equal(uintptr(dbn.StatusMsg_Size)))
			Expect(unsafe.Sizeof(dbn.BboMsg{})).To(Equal(uintptr(dbn.BboMsg_Size)))
			// InstrumentDefMsg is also string-bearing and fully variable length on
			// the wire; no fixed-size constant applies.
			Expect(int((&dbn.RHeader{}).RSize())).To(Equal(dbn.RHeader_Size))
			Expect(int((&dbn.Mbp0Msg{}).RSize())).To(Equal(dbn.Mbp0Msg_Size))
			Expect(int((&dbn.Mbp1Msg{}).RSize())).To(Equal(dbn.Mbp1Msg_Size))
			Expect(int((&dbn.Mbp10Msg{}).RSize())).To(Equal(dbn.Mbp10Msg_Size))
			Expect(int((&dbn.Cmbp1Msg{}).RSize())).To(Equal(dbn.Cmbp1Msg_Size))
			Expect(int((&dbn.OhlcvMsg{}).RSize())).To(Equal(dbn.OhlcvMsg_Size))
			Expect(int((&dbn.ImbalanceMsg{}).RSize())).To(Equal(dbn.ImbalanceMsg_Size))
			Expect(int((&dbn.ErrorMsg{}).RSize())).To(Equal(dbn.ErrorMsgV2_Size))
			Expect(int((&dbn.StatMsg{}).RSize())).To(Equal(dbn.StatMsg_Size))
			Expect(int((&dbn.StatusMsg{}).RSize())).To(Equal(dbn.StatusMsg_Size))
			Expect(int((&dbn.BboMsg{}).RSize())).To(Equal(dbn.BboMsg_Size))
			Expect(int((&dbn.SystemMsg{}).RSize())).To(Equal(dbn.SystemMsgV2_Size))
			Expect(int((&dbn.InstrumentDefMsg{}).RSize())).To(Equal(0))
		})
	})

	Context("Ohlcv messages", func() {
		ohlcvRecords := func() []dbn.OhlcvMsg {
			return []dbn.OhlcvMsg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Ohlcv1S, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400000000000},
					Open:   372025000000000, High: 372050000000000, Low: 372025000000000, Close: 372050000000000, Volume: 57,
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Ohlcv1S, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160401000000000},
					Open:   372050000000000, High: 372050000000000, Low: 372050000000000, Close: 372050000000000, Volume: 13,
				},
			}
		}

		assertOhlcv := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Ohlcv1S, ohlcvRecords(), func(e *dbn.Encoder, r *dbn.OhlcvMsg) error { return dbn.WriteRecord[dbn.OhlcvMsg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609160400000000000)))
			Expect(r0h.RType).To(Equal(dbn.RType(32)))
			Expect(r0h.PublisherID).To(Equal(uint16(1)))
			Expect(r0h.InstrumentID).To(Equal(uint32(5482)))
			Expect(r0.Open).To(Equal(int64(372025000000000)))
			Expect(r0.High).To(Equal(int64(372050000000000)))
			Expect(r0.Low).To(Equal(int64(372025000000000)))
			Expect(r0.Close).To(Equal(int64(372050000000000)))
			Expect(r0.Volume).To(Equal(uint64(57)))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1609160401000000000)))
			Expect(r1h.RType).To(Equal(dbn.RType(32)))
			Expect(r1h.PublisherID).To(Equal(uint16(1)))
			Expect(r1h.InstrumentID).To(Equal(uint32(5482)))
			Expect(r1.Open).To(Equal(int64(372050000000000)))
			Expect(r1.High).To(Equal(int64(372050000000000)))
			Expect(r1.Low).To(Equal(int64(372050000000000)))
			Expect(r1.Close).To(Equal(int64(372050000000000)))
			Expect(r1.Volume).To(Equal(uint64(13)))
		}

		It("should read v1 ohlcv-1s correctly", func() { assertOhlcv(dbn.HeaderVersion1) })
		It("should read a v2 ohlcv-1s correctly", func() { assertOhlcv(dbn.HeaderVersion2) })
	})

	Context("Trade messages", func() {
		tradeRecords := func() []dbn.Mbp0Msg {
			return []dbn.Mbp0Msg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp0, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400098821953},
					TsRecv: 1609160400099150057, Action: 'T', Side: 'A', Depth: 0,
					Price: 3720250000000, Size: 5, Flags: 129, TsInDelta: 19251, Sequence: 1170380,
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp0, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400107665963},
					TsRecv: 1609160400108142648, Action: 'T', Side: 'A', Depth: 0,
					Price: 3720250000000, Size: 21, Flags: 129, TsInDelta: 20728, Sequence: 1170414,
				},
			}
		}

		assertTrades := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Trades, tradeRecords(), func(e *dbn.Encoder, r *dbn.Mbp0Msg) error { return dbn.WriteRecord[dbn.Mbp0Msg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609160400098821953)))
			Expect(r0h.RType).To(Equal(dbn.RType(0)))
			Expect(r0h.PublisherID).To(Equal(uint16(1)))
			Expect(r0h.InstrumentID).To(Equal(uint32(5482)))
			Expect(string(r0.Action)).To(Equal("T"))
			Expect(string(r0.Side)).To(Equal("A"))
			Expect(r0.Depth).To(Equal(uint8(0)))
			Expect(r0.Price).To(Equal(int64(3720250000000)))
			Expect(r0.Size).To(Equal(uint32(5)))
			Expect(r0.Flags).To(Equal(uint8(129)))
			Expect(r0.TsRecv).To(Equal(uint64(1609160400099150057)))
			Expect(r0.TsInDelta).To(Equal(int32(19251)))
			Expect(r0.Sequence).To(Equal(uint32(1170380)))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1609160400107665963)))
			Expect(r1h.RType).To(Equal(dbn.RType(0)))
			Expect(r1h.PublisherID).To(Equal(uint16(1)))
			Expect(r1h.InstrumentID).To(Equal(uint32(5482)))
			Expect(string(r1.Action)).To(Equal("T"))
			Expect(string(r1.Side)).To(Equal("A"))
			Expect(r1.Depth).To(Equal(uint8(0)))
			Expect(r1.Price).To(Equal(int64(3720250000000)))
			Expect(r1.Size).To(Equal(uint32(21)))
			Expect(r1.Flags).To(Equal(uint8(129)))
			Expect(r1.TsRecv).To(Equal(uint64(1609160400108142648)))
			Expect(r1.TsInDelta).To(Equal(int32(20728)))
			Expect(r1.Sequence).To(Equal(uint32(1170414)))
		}

		It("should read a v1 trades/mbp0 correctly", func() { assertTrades(dbn.HeaderVersion1) })
		It("should read a v2 trades/mbp0 correctly", func() { assertTrades(dbn.HeaderVersion2) })
	})

	Context("Mbp1 messages", func() {
		mbp1Records := func() []dbn.Mbp1Msg {
			return []dbn.Mbp1Msg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp1, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400006001487},
					TsRecv: 1609160400006136329, Action: 'A', Side: 'A', Depth: 0,
					Price: 3720500000000, Size: 1, Flags: 128, TsInDelta: 17214, Sequence: 1170362,
					Level: dbn.BidAskPair{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 24, AskSz: 11, BidCt: 15, AskCt: 9},
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp1, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400006146661},
					TsRecv: 1609160400006246513, Action: 'A', Side: 'A', Depth: 0,
					Price: 3720500000000, Size: 1, Flags: 128, TsInDelta: 18858, Sequence: 1170364,
					Level: dbn.BidAskPair{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 24, AskSz: 12, BidCt: 15, AskCt: 10},
				},
			}
		}

		assertMbp1 := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Mbp1, mbp1Records(), func(e *dbn.Encoder, r *dbn.Mbp1Msg) error { return dbn.WriteRecord[dbn.Mbp1Msg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609160400006001487)))
			Expect(r0h.RType).To(Equal(dbn.RType(1)))
			Expect(r0h.PublisherID).To(Equal(uint16(1)))
			Expect(r0h.InstrumentID).To(Equal(uint32(5482)))
			Expect(string(r0.Action)).To(Equal("A"))
			Expect(string(r0.Side)).To(Equal("A"))
			Expect(r0.Depth).To(Equal(uint8(0)))
			Expect(r0.Price).To(Equal(int64(3720500000000)))
			Expect(r0.Size).To(Equal(uint32(1)))
			Expect(r0.Flags).To(Equal(uint8(128)))
			Expect(r0.TsRecv).To(Equal(uint64(1609160400006136329)))
			Expect(r0.TsInDelta).To(Equal(int32(17214)))
			Expect(r0.Sequence).To(Equal(uint32(1170362)))
			Expect(r0.Level.BidPx).To(Equal(int64(3720250000000)))
			Expect(r0.Level.AskPx).To(Equal(int64(3720500000000)))
			Expect(r0.Level.BidSz).To(Equal(uint32(24)))
			Expect(r0.Level.AskSz).To(Equal(uint32(11)))
			Expect(r0.Level.BidCt).To(Equal(uint32(15)))
			Expect(r0.Level.AskCt).To(Equal(uint32(9)))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1609160400006146661)))
			Expect(r1h.RType).To(Equal(dbn.RType(1)))
			Expect(r1h.PublisherID).To(Equal(uint16(1)))
			Expect(r1h.InstrumentID).To(Equal(uint32(5482)))
			Expect(string(r1.Action)).To(Equal("A"))
			Expect(string(r1.Side)).To(Equal("A"))
			Expect(r1.Depth).To(Equal(uint8(0)))
			Expect(r1.Price).To(Equal(int64(3720500000000)))
			Expect(r1.Size).To(Equal(uint32(1)))
			Expect(r1.Flags).To(Equal(uint8(128)))
			Expect(r1.TsRecv).To(Equal(uint64(1609160400006246513)))
			Expect(r1.TsInDelta).To(Equal(int32(18858)))
			Expect(r1.Sequence).To(Equal(uint32(1170364)))
			Expect(r1.Level.BidPx).To(Equal(int64(3720250000000)))
			Expect(r1.Level.AskPx).To(Equal(int64(3720500000000)))
			Expect(r1.Level.BidSz).To(Equal(uint32(24)))
			Expect(r1.Level.AskSz).To(Equal(uint32(12)))
			Expect(r1.Level.BidCt).To(Equal(uint32(15)))
			Expect(r1.Level.AskCt).To(Equal(uint32(10)))
		}

		It("should read a v1 mbp1 correctly", func() { assertMbp1(dbn.HeaderVersion1) })
		It("should read a v2 mbp1 correctly", func() { assertMbp1(dbn.HeaderVersion2) })

		It("should read a v2 cmbp1 correctly", func() {
			recs := []dbn.Cmbp1Msg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Cmbp1, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400006001487},
					TsRecv: 1609160400006136329, Price: 3720500000000, Size: 1,
					Action: 'A', Side: 'A', Flags: 128, TsInDelta: 17214,
					Level: dbn.ConsolidatedBidAskPair{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 24, AskSz: 11, BidPb: 1, AskPb: 1},
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Cmbp1, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400006146661},
					TsRecv: 1609160400006246513, Price: 3720500000000, Size: 1,
					Action: 'A', Side: 'A', Flags: 128, TsInDelta: 18858,
					Level: dbn.ConsolidatedBidAskPair{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 24, AskSz: 12, BidPb: 1, AskPb: 1},
				},
			}

			records, metadata, err := encodeRecords(dbn.HeaderVersion2, dbn.Schema_Mbp1, recs, func(e *dbn.Encoder, r *dbn.Cmbp1Msg) error { return dbn.WriteRecord[dbn.Cmbp1Msg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609160400006001487)))
			Expect(r0h.RType).To(Equal(dbn.RType(177)))
			Expect(r0h.PublisherID).To(Equal(uint16(1)))
			Expect(r0h.InstrumentID).To(Equal(uint32(5482)))
			Expect(r0.Price).To(Equal(int64(3720500000000)))
			Expect(r0.Size).To(Equal(uint32(1)))
			Expect(r0.Action).To(Equal(byte('A')))
			Expect(r0.Side).To(Equal(byte('A')))
			Expect(r0.Flags).To(Equal(uint8(128)))
			Expect(r0.TsRecv).To(Equal(uint64(1609160400006136329)))
			Expect(r0.TsInDelta).To(Equal(int32(17214)))
			Expect(r0.Level).To(Equal(dbn.ConsolidatedBidAskPair{
				BidPx: int64(3720250000000),
				AskPx: int64(3720500000000),
				BidSz: uint32(24),
				AskSz: uint32(11),
				BidPb: uint16(1),
				AskPb: uint16(1),
			}))
		})

		mbp10Records := func() []dbn.Mbp10Msg {
			lvls0 := [10]dbn.BidAskPair{
				{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 24, AskSz: 10, BidCt: 15, AskCt: 8},
				{BidPx: 3720000000000, AskPx: 3720750000000, BidSz: 31, AskSz: 34, BidCt: 18, AskCt: 24},
				{BidPx: 3719750000000, AskPx: 3721000000000, BidSz: 32, AskSz: 39, BidCt: 23, AskCt: 25},
				{BidPx: 3719500000000, AskPx: 3721250000000, BidSz: 39, AskSz: 28, BidCt: 26, AskCt: 17},
				{BidPx: 3719250000000, AskPx: 3721500000000, BidSz: 50, AskSz: 33, BidCt: 35, AskCt: 19},
				{BidPx: 3719000000000, AskPx: 3721750000000, BidSz: 42, AskSz: 45, BidCt: 28, AskCt: 33},
				{BidPx: 3718750000000, AskPx: 3722000000000, BidSz: 44, AskSz: 55, BidCt: 35, AskCt: 40},
				{BidPx: 3718500000000, AskPx: 3722250000000, BidSz: 64, AskSz: 59, BidCt: 39, AskCt: 38},
				{BidPx: 3718250000000, AskPx: 3722500000000, BidSz: 53, AskSz: 49, BidCt: 32, AskCt: 35},
				{BidPx: 3718000000000, AskPx: 3722750000000, BidSz: 67, AskSz: 44, BidCt: 39, AskCt: 26},
			}
			lvls1 := [10]dbn.BidAskPair{
				{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 24, AskSz: 10, BidCt: 15, AskCt: 8},
				{BidPx: 3720000000000, AskPx: 3720750000000, BidSz: 30, AskSz: 34, BidCt: 17, AskCt: 24},
				{BidPx: 3719750000000, AskPx: 3721000000000, BidSz: 32, AskSz: 39, BidCt: 23, AskCt: 25},
				{BidPx: 3719500000000, AskPx: 3721250000000, BidSz: 39, AskSz: 28, BidCt: 26, AskCt: 17},
				{BidPx: 3719250000000, AskPx: 3721500000000, BidSz: 50, AskSz: 33, BidCt: 35, AskCt: 19},
				{BidPx: 3719000000000, AskPx: 3721750000000, BidSz: 42, AskSz: 45, BidCt: 28, AskCt: 33},
				{BidPx: 3718750000000, AskPx: 3722000000000, BidSz: 44, AskSz: 55, BidCt: 35, AskCt: 40},
				{BidPx: 3718500000000, AskPx: 3722250000000, BidSz: 64, AskSz: 59, BidCt: 39, AskCt: 38},
				{BidPx: 3718250000000, AskPx: 3722500000000, BidSz: 53, AskSz: 49, BidCt: 32, AskCt: 35},
				{BidPx: 3718000000000, AskPx: 3722750000000, BidSz: 67, AskSz: 44, BidCt: 39, AskCt: 26},
			}
			return []dbn.Mbp10Msg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp10, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400000429831},
					TsRecv: 1609160400000704060, Price: 3722750000000, Size: 1,
					Action: 'C', Side: 'A', Flags: 128, Depth: 9, TsInDelta: 22993, Sequence: 1170352,
					Levels: lvls0,
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp10, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400000435673},
					TsRecv: 1609160400000750544, Price: 3720000000000, Size: 1,
					Action: 'C', Side: 'B', Flags: 128, Depth: 1, TsInDelta: 20625, Sequence: 1170356,
					Levels: lvls1,
				},
			}
		}

		assertMbp10 := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Mbp10, mbp10Records(), func(e *dbn.Encoder, r *dbn.Mbp10Msg) error { return dbn.WriteRecord[dbn.Mbp10Msg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609160400000429831)))
			Expect(r0h.RType).To(Equal(dbn.RType(10)))
			Expect(r0h.PublisherID).To(Equal(uint16(1)))
			Expect(r0h.InstrumentID).To(Equal(uint32(5482)))
			Expect(r0.Price).To(Equal(int64(3722750000000)))
			Expect(r0.Size).To(Equal(uint32(1)))
			Expect(r0.Action).To(Equal(byte('C')))
			Expect(r0.Side).To(Equal(byte('A')))
			Expect(r0.Flags).To(Equal(uint8(128)))
			Expect(r0.Depth).To(Equal(uint8(9)))
			Expect(r0.TsRecv).To(Equal(uint64(1609160400000704060)))
			Expect(r0.TsInDelta).To(Equal(int32(22993)))
			Expect(r0.Sequence).To(Equal(uint32(1170352)))
			Expect(len(r0.Levels)).To(Equal(10))
			Expect(r0.Levels[0]).To(Equal(dbn.BidAskPair{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 24, AskSz: 10, BidCt: 15, AskCt: 8}))
			Expect(r0.Levels[9]).To(Equal(dbn.BidAskPair{BidPx: 3718000000000, AskPx: 3722750000000, BidSz: 67, AskSz: 44, BidCt: 39, AskCt: 26}))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1609160400000435673)))
			Expect(r1h.RType).To(Equal(dbn.RType(10)))
			Expect(r1h.PublisherID).To(Equal(uint16(1)))
			Expect(r1h.InstrumentID).To(Equal(uint32(5482)))
			Expect(r1.Price).To(Equal(int64(3720000000000)))
			Expect(r1.Size).To(Equal(uint32(1)))
			Expect(r1.Action).To(Equal(byte('C')))
			Expect(r1.Side).To(Equal(byte('B')))
			Expect(r1.Flags).To(Equal(uint8(128)))
			Expect(r1.Depth).To(Equal(uint8(1)))
			Expect(r1.TsRecv).To(Equal(uint64(1609160400000750544)))
			Expect(r1.TsInDelta).To(Equal(int32(20625)))
			Expect(r1.Sequence).To(Equal(uint32(1170356)))
			Expect(len(r1.Levels)).To(Equal(10))
			Expect(r1.Levels[1]).To(Equal(dbn.BidAskPair{BidPx: 3720000000000, AskPx: 3720750000000, BidSz: 30, AskSz: 34, BidCt: 17, AskCt: 24}))
			Expect(r1.Levels[9]).To(Equal(dbn.BidAskPair{BidPx: 3718000000000, AskPx: 3722750000000, BidSz: 67, AskSz: 44, BidCt: 39, AskCt: 26}))
		}

		It("should read a v1 mbp10 correctly", func() { assertMbp10(dbn.HeaderVersion1) })
		It("should read a v2 mbp10 correctly", func() { assertMbp10(dbn.HeaderVersion2) })
	})

	Context("Imbalance messages", func() {
		imbalanceRecords := func() []dbn.ImbalanceMsg {
			return []dbn.ImbalanceMsg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Imbalance, PublisherID: 2, InstrumentID: 9439, TsEvent: 1633353900633854579},
					TsRecv: 1633353900633864350, RefPrice: 229430000000,
					TotalImbalanceQty: 2000,
					AuctionType:       'O', Side: 'B', UnpairedSide: 'N', SignificantImbalance: '~',
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Imbalance, PublisherID: 2, InstrumentID: 9439, TsEvent: 1633353910208114778},
					TsRecv: 1633353910208124734, RefPrice: 229990000000,
					PairedQty: 1719, TotalImbalanceQty: 281,
					AuctionType: 'O', Side: 'B', UnpairedSide: 'N', SignificantImbalance: '~',
				},
			}
		}

		assertImbalance := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Imbalance, imbalanceRecords(), func(e *dbn.Encoder, r *dbn.ImbalanceMsg) error { return dbn.WriteRecord[dbn.ImbalanceMsg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1633353900633854579)))
			Expect(r0h.RType).To(Equal(dbn.RType(20)))
			Expect(r0h.PublisherID).To(Equal(uint16(2)))
			Expect(r0h.InstrumentID).To(Equal(uint32(9439)))
			Expect(r0.TsRecv).To(Equal(uint64(1633353900633864350)))
			Expect(r0.RefPrice).To(Equal(int64(229430000000)))
			Expect(r0.AuctionTime).To(Equal(uint64(0)))
			Expect(r0.ContBookClrPrice).To(Equal(int64(0)))
			Expect(r0.AuctInterestClrPrice).To(Equal(int64(0)))
			Expect(r0.SsrFillingPrice).To(Equal(int64(0)))
			Expect(r0.IndMatchPrice).To(Equal(int64(0)))
			Expect(r0.UpperCollar).To(Equal(int64(0)))
			Expect(r0.LowerCollar).To(Equal(int64(0)))
			Expect(r0.PairedQty).To(Equal(uint32(0)))
			Expect(r0.TotalImbalanceQty).To(Equal(uint32(2000)))
			Expect(r0.MarketImbalanceQty).To(Equal(uint32(0)))
			Expect(r0.UnpairedQty).To(Equal(uint32(0)))
			Expect(string(r0.AuctionType)).To(Equal("O"))
			Expect(string(r0.Side)).To(Equal("B"))
			Expect(r0.AuctionStatus).To(Equal(uint8(0)))
			Expect(r0.FreezeStatus).To(Equal(uint8(0)))
			Expect(r0.NumExtensions).To(Equal(uint8(0)))
			Expect(string(r0.UnpairedSide)).To(Equal("N"))
			Expect(string(r0.SignificantImbalance)).To(Equal("~"))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1633353910208114778)))
			Expect(r1h.RType).To(Equal(dbn.RType(20)))
			Expect(r1h.PublisherID).To(Equal(uint16(2)))
			Expect(r1h.InstrumentID).To(Equal(uint32(9439)))
			Expect(r1.TsRecv).To(Equal(uint64(1633353910208124734)))
			Expect(r1.RefPrice).To(Equal(int64(229990000000)))
			Expect(r1.PairedQty).To(Equal(uint32(1719)))
			Expect(r1.TotalImbalanceQty).To(Equal(uint32(281)))
			Expect(r1.MarketImbalanceQty).To(Equal(uint32(0)))
			Expect(r1.UnpairedQty).To(Equal(uint32(0)))
			Expect(string(r1.AuctionType)).To(Equal("O"))
			Expect(string(r1.Side)).To(Equal("B"))
			Expect(string(r1.UnpairedSide)).To(Equal("N"))
			Expect(string(r1.SignificantImbalance)).To(Equal("~"))
		}

		It("should read a v1 imbalance correctly", func() { assertImbalance(dbn.HeaderVersion1) })
		It("should read a v2 imbalance correctly", func() { assertImbalance(dbn.HeaderVersion2) })
	})

	Context("Definition messages", func() {
		It("should read a v2 definition correctly", func() {
			rec := dbn.InstrumentDefMsg{
				Header: dbn.RHeader{RType: dbn.RType_InstrumentDef, PublisherID: 2, InstrumentID: 6819, TsEvent: 1633331241618018154},
				TsRecv: 1633331241618029519,
				MinPriceIncrement:      9223372036854775807,
				DisplayFactor:          100000000000000,
				Expiration:             18446744073709551615,
				Activation:             18446744073709551615,
				HighLimitPrice:         9223372036854775807,
				LowLimitPrice:          9223372036854775807,
				MaxPriceVariation:      9223372036854775807,
				TradingReferencePrice:  9223372036854775807,
				UnitOfMeasureQty:       9223372036854775807,
				MinPriceIncrementAmount: 9223372036854775807,
				PriceRatio:             9223372036854775807,
				StrikePrice:            9223372036854775807,
				InstAttribValue:        2147483647,
				UnderlyingID:           0,
				RawInstrumentID:        2147483647,
				MarketDepthImplied:     2147483647,
				MarketDepth:            2147483647,
				MarketSegmentID:        4294967295,
				MaxTradeVol:            4294967295,
				MinLotSize:             2147483647,
				MinLotSizeBlock:        2147483647,
				MinLotSizeRoundLot:     100,
				MinTradeVol:            4294967295,
				ContractMultiplier:     2147483647,
				DecayQuantity:          2147483647,
				OriginalContractSize:   2147483647,
				TradingReferenceDate:   65535,
				ApplID:                 32767,
				MaturityYear:           65535,
				DecayStartDate:         65535,
				ChannelID:              0,
				Currency:               "",
				SettlCurrency:          "",
				SecSubType:             "Z ",
				RawSymbol:              "MSFT",
				Group:                  "pxnas-1",
				Exchange:               "XNAS",
				Asset:                  "",
				Cfi:                    "",
				SecurityType:           "",
				UnitOfMeasure:          "",
				Underlying:             "",
				StrikePriceCurrency:    "",
				InstrumentClass:        'K',
				MatchAlgorithm:         'F',
				MdSecurityTradingStatus: 78,
				MainFraction:           255,
				PriceDisplayFormat:     255,
				SettlPriceType:         255,
				SubFraction:            255,
				UnderlyingProduct:      255,
				SecurityUpdateAction:   'A',
				MaturityMonth:          255,
				MaturityDay:            255,
				MaturityWeek:           255,
				UserDefinedInstrument:  uint8(dbn.UserDefinedInstrument_No),
				ContractMultiplierUnit: 127,
				FlowScheduleType:       127,
				TickRule:               255,
			}

			var buf bytes.Buffer
			enc := dbn.NewEncoder(&buf, dbn.EncodeFullStream)
			md := structTestMetadata(dbn.HeaderVersion2, dbn.Schema_Definition)
			Expect(enc.WriteMetadata(md)).To(Succeed())
			r0Rec, r1Rec := rec, rec
			r1Rec.Header.InstrumentID = 6830
			r1Rec.Header.TsEvent = 1633417621703109854
			r1Rec.TsRecv = 1633417621703120931
			Expect(dbn.WriteInstrumentDefRecord(enc, &r0Rec, int(dbn.MetadataV2_SymbolCstrLen), false)).To(Succeed())
			Expect(dbn.WriteInstrumentDefRecord(enc, &r1Rec, int(dbn.MetadataV2_SymbolCstrLen), false)).To(Succeed())

			records, metadata, err := dbn.ReadDBNToSlice[dbn.InstrumentDefMsg](&buf)
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1633331241618018154)))
			Expect(r0h.RType).To(Equal(dbn.RType(19)))
			Expect(r0h.PublisherID).To(Equal(uint16(2)))
			Expect(r0h.InstrumentID).To(Equal(uint32(6819)))
			Expect(r0.TsRecv).To(Equal(uint64(1633331241618029519)))
			Expect(r0.MinPriceIncrement).To(Equal(int64(9223372036854775807)))
			Expect(r0.DisplayFactor).To(Equal(int64(100000000000000)))
			Expect(r0.Expiration).To(Equal(uint64(18446744073709551615)))
			Expect(r0.HighLimitPrice).To(Equal(int64(9223372036854775807)))
			Expect(r0.MinLotSizeRoundLot).To(Equal(int32(100)))
			Expect(r0.Currency).To(Equal(""))
			Expect(r0.SecSubType).To(Equal("Z "))
			Expect(r0.RawSymbol).To(Equal("MSFT"))
			Expect(r0.Group).To(Equal("pxnas-1"))
			Expect(r0.Exchange).To(Equal("XNAS"))
			Expect(r0.InstrumentClass).To(Equal(uint8('K')))
			Expect(r0.MatchAlgorithm).To(Equal(uint8('F')))
			Expect(r0.MdSecurityTradingStatus).To(Equal(uint8(78)))
			Expect(r0.SecurityUpdateAction).To(Equal(uint8('A')))
			Expect(r0.UserDefinedInstrument).To(Equal(uint8(dbn.UserDefinedInstrument_No)))
			Expect(r0.ContractMultiplierUnit).To(Equal(int8(127)))
			Expect(r0.FlowScheduleType).To(Equal(int8(127)))
			Expect(r0.TickRule).To(Equal(uint8(255)))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1633417621703109854)))
			Expect(r1h.InstrumentID).To(Equal(uint32(6830)))
			Expect(r1.TsRecv).To(Equal(uint64(1633417621703120931)))
			Expect(r1.RawSymbol).To(Equal("MSFT"))
			Expect(r1.Group).To(Equal("pxnas-1"))
		})
	})

	Context("Statistics messages", func() {
		statRecords := func() []dbn.StatMsg {
			return []dbn.StatMsg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Statistics, PublisherID: 1, InstrumentID: 146945, TsEvent: 1682269536030443135},
					TsRecv: 1682269536040124325, TsRef: 18446744073709551615, Price: 100000000000, Quantity: 2147483647,
					Sequence: 2, TsInDelta: 26961, StatType: 7, ChannelID: 13, UpdateAction: 1, StatFlags: 255,
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Statistics, PublisherID: 1, InstrumentID: 146945, TsEvent: 1682269536071497081},
					TsRecv: 1682269536121890092, TsRef: 18446744073709551615, Price: 100000000000, Quantity: 2147483647,
					Sequence: 7, TsInDelta: 28456, StatType: 5, ChannelID: 13, UpdateAction: 1, StatFlags: 255,
				},
			}
		}

		assertStats := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Statistics, statRecords(), func(e *dbn.Encoder, r *dbn.StatMsg) error { return dbn.WriteRecord[dbn.StatMsg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1682269536030443135)))
			Expect(r0h.RType).To(Equal(dbn.RType(24)))
			Expect(r0h.PublisherID).To(Equal(uint16(1)))
			Expect(r0h.InstrumentID).To(Equal(uint32(146945)))
			Expect(r0.TsRecv).To(Equal(uint64(1682269536040124325)))
			Expect(r0.TsRef).To(Equal(uint64(18446744073709551615)))
			Expect(r0.Price).To(Equal(int64(100000000000)))
			Expect(r0.Quantity).To(Equal(int32(2147483647)))
			Expect(r0.Sequence).To(Equal(uint32(2)))
			Expect(r0.TsInDelta).To(Equal(int32(26961)))
			Expect(r0.StatType).To(Equal(uint16(7)))
			Expect(r0.ChannelID).To(Equal(uint16(13)))
			Expect(r0.UpdateAction).To(Equal(uint8(1)))
			Expect(r0.StatFlags).To(Equal(uint8(255)))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1682269536071497081)))
			Expect(r1h.InstrumentID).To(Equal(uint32(146945)))
			Expect(r1.TsRecv).To(Equal(uint64(1682269536121890092)))
			Expect(r1.Sequence).To(Equal(uint32(7)))
			Expect(r1.TsInDelta).To(Equal(int32(28456)))
			Expect(r1.StatType).To(Equal(uint16(5)))
		}

		It("should read a v1 statistics correctly", func() { assertStats(dbn.HeaderVersion1) })
		It("should read a v2 statistics correctly", func() { assertStats(dbn.HeaderVersion2) })
	})

	Context("MBO and TBBO messages", func() {
		mboRecords := func() []dbn.MboMsg {
			return []dbn.MboMsg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbo, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400000429831},
					OrderID: 647784973705, Price: 3722750000000, Size: 1, Flags: 128, ChannelID: 0,
					Action: 'C', Side: 'A', TsRecv: 1609160400000704060, TsInDelta: 22993, Sequence: 1170352,
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbo, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400000431665},
					OrderID: 647784973631, Price: 3723000000000, Size: 1, Flags: 128, ChannelID: 0,
					Action: 'C', Side: 'A', TsRecv: 1609160400000711344, TsInDelta: 19621, Sequence: 1170353,
				},
			}
		}

		assertMbo := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Mbo, mboRecords(), func(e *dbn.Encoder, r *dbn.MboMsg) error { return dbn.WriteRecord[dbn.MboMsg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609160400000429831)))
			Expect(r0h.RType).To(Equal(dbn.RType(160)))
			Expect(r0h.PublisherID).To(Equal(uint16(1)))
			Expect(r0h.InstrumentID).To(Equal(uint32(5482)))
			Expect(r0.OrderID).To(Equal(uint64(647784973705)))
			Expect(r0.Price).To(Equal(int64(3722750000000)))
			Expect(r0.Size).To(Equal(uint32(1)))
			Expect(r0.Flags).To(Equal(uint8(128)))
			Expect(r0.ChannelID).To(Equal(uint8(0)))
			Expect(r0.Action).To(Equal(byte('C')))
			Expect(r0.Side).To(Equal(byte('A')))
			Expect(r0.TsRecv).To(Equal(uint64(1609160400000704060)))
			Expect(r0.TsInDelta).To(Equal(int32(22993)))
			Expect(r0.Sequence).To(Equal(uint32(1170352)))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1609160400000431665)))
			Expect(r1h.InstrumentID).To(Equal(uint32(5482)))
			Expect(r1.OrderID).To(Equal(uint64(647784973631)))
			Expect(r1.Price).To(Equal(int64(3723000000000)))
			Expect(r1.TsRecv).To(Equal(uint64(1609160400000711344)))
			Expect(r1.TsInDelta).To(Equal(int32(19621)))
			Expect(r1.Sequence).To(Equal(uint32(1170353)))
		}

		It("should read a v1 mbo correctly", func() { assertMbo(dbn.HeaderVersion1) })
		It("should read a v2 mbo correctly", func() { assertMbo(dbn.HeaderVersion2) })

		tbboRecords := func() []dbn.Mbp1Msg {
			return []dbn.Mbp1Msg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp1, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400098821953},
					TsRecv: 1609160400099150057, Action: 'T', Side: 'A', Depth: 0,
					Price: 3720250000000, Size: 5, Flags: 129, TsInDelta: 19251, Sequence: 1170380,
					Level: dbn.BidAskPair{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 26, AskSz: 7, BidCt: 16, AskCt: 6},
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Mbp1, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609160400107665963},
					TsRecv: 1609160400108142648, Action: 'T', Side: 'A', Depth: 0,
					Price: 3720250000000, Size: 21, Flags: 129, TsInDelta: 20728, Sequence: 1170414,
					Level: dbn.BidAskPair{BidPx: 3720250000000, AskPx: 3720500000000, BidSz: 21, AskSz: 22, BidCt: 13, AskCt: 15},
				},
			}
		}

		assertTbbo := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Tbbo, tbboRecords(), func(e *dbn.Encoder, r *dbn.Mbp1Msg) error { return dbn.WriteRecord[dbn.Mbp1Msg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609160400098821953)))
			Expect(r0h.RType).To(Equal(dbn.RType(1)))
			Expect(r0.Price).To(Equal(int64(3720250000000)))
			Expect(r0.Action).To(Equal(byte('T')))
			Expect(r0.Level).To(Equal(dbn.BidAskPair{
				BidPx: int64(3720250000000), AskPx: int64(3720500000000),
				BidSz: uint32(26), AskSz: uint32(7), BidCt: uint32(16), AskCt: uint32(6),
			}))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1609160400107665963)))
			Expect(r1.Price).To(Equal(int64(3720250000000)))
			Expect(r1.Size).To(Equal(uint32(21)))
			Expect(r1.Level).To(Equal(dbn.BidAskPair{
				BidPx: int64(3720250000000), AskPx: int64(3720500000000),
				BidSz: uint32(21), AskSz: uint32(22), BidCt: uint32(13), AskCt: uint32(15),
			}))
		}

		It("should read a v1 tbbo correctly", func() { assertTbbo(dbn.HeaderVersion1) })
		It("should read a v2 tbbo correctly", func() { assertTbbo(dbn.HeaderVersion2) })
	})

	Context("Misc messages", func() {
		It("should read a v2 status correctly", func() {
			recs := []dbn.StatusMsg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Status, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609110000000000000},
					TsRecv: 1609113600000000000, Action: 7, Reason: 1, TradingEvent: 0,
					IsTrading: 'Y', IsQuoting: 'Y', IsShortSellRestricted: '~',
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Status, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609190100000000000},
					TsRecv: 1609190100007055917, Action: 1, Reason: 1, TradingEvent: 0,
					IsTrading: 'N', IsQuoting: 'Y', IsShortSellRestricted: '~',
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Status, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609190970000000000},
					TsRecv: 1609190970068184258, Action: 1, Reason: 1, TradingEvent: 1,
					IsTrading: 'N', IsQuoting: 'Y', IsShortSellRestricted: '~',
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Status, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609191000000000000},
					TsRecv: 1609191000007282029, Action: 6, Reason: 1, TradingEvent: 0,
					IsTrading: 'Y', IsQuoting: 'Y', IsShortSellRestricted: '~',
				},
			}

			records, metadata, err := encodeRecords(dbn.HeaderVersion2, dbn.Schema_Status, recs, func(e *dbn.Encoder, r *dbn.StatusMsg) error { return dbn.WriteRecord[dbn.StatusMsg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(4))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609110000000000000)))
			Expect(r0h.RType).To(Equal(dbn.RType(18)))
			Expect(r0.TsRecv).To(Equal(uint64(1609113600000000000)))
			Expect(r0.Action).To(Equal(uint16(7)))
			Expect(r0.IsTrading).To(Equal(dbn.TriState('Y')))

			r1 := records[1]
			Expect(r1.Action).To(Equal(uint16(1)))
			Expect(r1.IsTrading).To(Equal(dbn.TriState('N')))

			r2 := records[2]
			Expect(r2.TradingEvent).To(Equal(uint16(1)))
			Expect(r2.IsTrading).To(Equal(dbn.TriState('N')))

			r3, r3h := records[3], records[3].Header
			Expect(r3h.TsEvent).To(Equal(uint64(1609191000000000000)))
			Expect(r3.TsRecv).To(Equal(uint64(1609191000007282029)))
			Expect(r3.Action).To(Equal(uint16(6)))
			Expect(r3.IsTrading).To(Equal(dbn.TriState('Y')))
		})
	})

	Context("BBO interval messages", func() {
		bbo1sRecords := func() []dbn.BboMsg {
			return []dbn.BboMsg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Bbo1S, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609113599045849637},
					TsRecv: 1609113600000000000, Side: 'A', Price: 3702500000000, Size: 2, Flags: 168, Sequence: 145799,
					Level: dbn.BidAskPair{BidPx: 3702250000000, AskPx: 3702750000000, BidSz: 18, AskSz: 13, BidCt: 10, AskCt: 13},
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Bbo1S, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609113600986911551},
					TsRecv: 1609113601000000000, Side: 'B', Price: 3702500000000, Size: 2, Flags: 130, Sequence: 145998,
					Level: dbn.BidAskPair{BidPx: 3702500000000, AskPx: 3702750000000, BidSz: 2, AskSz: 10, BidCt: 1, AskCt: 10},
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Bbo1S, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609113601149205775},
					TsRecv: 1609113602000000000, Side: 'A', Price: 3702500000000, Size: 1, Flags: 130, Sequence: 146034,
					Level: dbn.BidAskPair{BidPx: 3702250000000, AskPx: 3702750000000, BidSz: 20, AskSz: 11, BidCt: 12, AskCt: 11},
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Bbo1S, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609113602738022089},
					TsRecv: 1609113603000000000, Side: 'B', Price: 3702500000000, Size: 1, Flags: 130, Sequence: 146167,
					Level: dbn.BidAskPair{BidPx: 3702500000000, AskPx: 3702750000000, BidSz: 2, AskSz: 11, BidCt: 2, AskCt: 11},
				},
			}
		}

		assertBbo1s := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Mbp1, bbo1sRecords(), func(e *dbn.Encoder, r *dbn.BboMsg) error { return dbn.WriteRecord[dbn.BboMsg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(4))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609113599045849637)))
			Expect(r0h.RType).To(Equal(dbn.RType(195)))
			Expect(r0.TsRecv).To(Equal(uint64(1609113600000000000)))
			Expect(r0.Side).To(Equal(byte('A')))
			Expect(r0.Price).To(Equal(int64(3702500000000)))
			Expect(r0.Level.BidSz).To(Equal(uint32(18)))

			r3, r3h := records[3], records[3].Header
			Expect(r3h.TsEvent).To(Equal(uint64(1609113602738022089)))
			Expect(r3.TsRecv).To(Equal(uint64(1609113603000000000)))
			Expect(r3.Side).To(Equal(byte('B')))
			Expect(r3.Sequence).To(Equal(uint32(146167)))
			Expect(r3.Level.AskCt).To(Equal(uint32(11)))
		}

		It("should read v1 bbo-1s correctly", func() { assertBbo1s(dbn.HeaderVersion1) })
		It("should read v2 bbo-1s correctly", func() { assertBbo1s(dbn.HeaderVersion2) })

		// Only two bbo-1m records carry fully recoverable field values.
		bbo1mRecords := func() []dbn.BboMsg {
			return []dbn.BboMsg{
				{
					Header: dbn.RHeader{RType: dbn.RType_Bbo1M, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609113599045849637},
					TsRecv: 1609113600000000000, Side: 'A', Price: 3702500000000, Size: 2, Flags: 168, Sequence: 145799,
					Level: dbn.BidAskPair{BidPx: 3702250000000, AskPx: 3702750000000, BidSz: 18, AskSz: 13, BidCt: 10, AskCt: 13},
				},
				{
					Header: dbn.RHeader{RType: dbn.RType_Bbo1M, PublisherID: 1, InstrumentID: 5482, TsEvent: 1609113659578979253},
					TsRecv: 1609113660000000000, Side: 'B', Price: 3704750000000, Size: 1, Flags: 130, Sequence: 149903,
					Level: dbn.BidAskPair{BidPx: 3704500000000, AskPx: 3705000000000, BidSz: 15, AskSz: 22, BidCt: 10, AskCt: 22},
				},
			}
		}

		assertBbo1m := func(versionNum uint8) {
			records, metadata, err := encodeRecords(versionNum, dbn.Schema_Mbp1, bbo1mRecords(), func(e *dbn.Encoder, r *dbn.BboMsg) error { return dbn.WriteRecord[dbn.BboMsg](e, r) })
			Expect(err).To(BeNil())
			Expect(metadata).ToNot(BeNil())
			Expect(len(records)).To(Equal(2))

			r0, r0h := records[0], records[0].Header
			Expect(r0h.TsEvent).To(Equal(uint64(1609113599045849637)))
			Expect(r0h.RType).To(Equal(dbn.RType(196)))
			Expect(r0.TsRecv).To(Equal(uint64(1609113600000000000)))
			Expect(r0.Side).To(Equal(byte('A')))
			Expect(r0.Level.BidSz).To(Equal(uint32(18)))

			r1, r1h := records[1], records[1].Header
			Expect(r1h.TsEvent).To(Equal(uint64(1609113659578979253)))
			Expect(r1.TsRecv).To(Equal(uint64(1609113660000000000)))
			Expect(r1.Side).To(Equal(byte('B')))
			Expect(r1.Price).To(Equal(int64(3704750000000)))
			Expect(r1.Level.BidPx).To(Equal(int64(3704500000000)))
			Expect(r1.Level.AskCt).To(Equal(uint32(22)))
		}

		It("should read v1 bbo-1m correctly", func() { assertBbo1m(dbn.HeaderVersion1) })
		It("should read v2 bbo-1m correctly", func() { assertBbo1m(dbn.HeaderVersion2) })
	})
})
