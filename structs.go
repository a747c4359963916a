// Copyright (c) 2024 Neomantra Corp
//
// DBN File Layout:
//   https://databento.com/docs/knowledge-base/new-users/dbn-encoding/layout
//
// Schemas:
//   https://databento.com/docs/knowledge-base/new-users/fields-by-schema/
//
// DBN encoding is little-endian.
//
// NOTE: The field metadata do not round-trip between DBN <> JSON
// This is because DBN encodes uint64 as strings, while the field annotations
// know them as uint64.
//

package dbn

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
	"github.com/valyala/fastjson/fastfloat"
)

///////////////////////////////////////////////////////////////////////////////

// Record is the marker interface implemented by every DBN record body type.
type Record interface {
}

// RecordPtr constrains a pointer-to-T to the operations the generic
// scanner/decoder functions need: type identity, wire size, and the two
// fill paths (raw bytes, parsed JSON).
type RecordPtr[T any] interface {
	*T     // constrain to T or its pointer
	Record // T must implement record

	RType() RType
	RSize() uint16
	IndexTs() uint64
	Fill_Raw([]byte) error
	Fill_Json(val *fastjson.Value, header *RHeader) error
}

// Decodes a fastjson.Value string as an int64
func fastjson_GetInt64FromString(val *fastjson.Value, key string) int64 {
	return fastfloat.ParseInt64BestEffort(string(val.GetStringBytes(key)))
}

// Decodes a fastjson.Value string as an uint64
func fastjson_GetUint64FromString(val *fastjson.Value, key string) uint64 {
	return fastfloat.ParseUint64BestEffort(string(val.GetStringBytes(key)))
}

func (rtype RType) IsCompatibleWith(rtype2 RType) bool {
	if rtype == rtype2 {
		return true
	}
	return rtype.IsCandle() && rtype2.IsCandle()
}

func (rtype RType) IsCandle() bool {
	switch rtype {
	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		return true
	default:
		return false
	}
}

// IsCbboFamily reports whether rtype is one of the consolidated-BBO schemas.
func (rtype RType) IsCbboFamily() bool {
	switch rtype {
	case RType_Cbbo1S, RType_Cbbo1M, RType_Tcbbo:
		return true
	default:
		return false
	}
}

// IsBboFamily reports whether rtype is one of the single-venue BBO schemas.
func (rtype RType) IsBboFamily() bool {
	switch rtype {
	case RType_Bbo1S, RType_Bbo1M:
		return true
	default:
		return false
	}
}

///////////////////////////////////////////////////////////////////////////////

// RHeader is the 16-byte header prefixing every DBN record.
type RHeader struct {
	Length       uint8  `json:"len,omitempty"`                     // The length of the record in 32-bit words.
	RType        RType  `json:"rtype" csv:"rtype"`                 // Sentinel values for different DBN record types.
	PublisherID  uint16 `json:"publisher_id" csv:"publisher_id"`   // The publisher ID assigned by Databento, which denotes the dataset and venue.
	InstrumentID uint32 `json:"instrument_id" csv:"instrument_id"` // The numeric instrument ID.
	TsEvent      uint64 `json:"ts_event" csv:"ts_event"`           // The matching-engine-received timestamp expressed as the number of nanoseconds since the UNIX epoch.
}

const RHeader_Size = 16

func (h *RHeader) RSize() uint16 {
	return RHeader_Size
}

func (h *RHeader) Fill_Raw(b []byte) error {
	return FillRHeader_Raw(b, h)
}

func (h *RHeader) Fill_Json(val *fastjson.Value) error {
	return FillRHeader_Json(val, h)
}

func FillRHeader_Raw(b []byte, h *RHeader) error {
	if len(b) < RHeader_Size {
		return unexpectedBytesError(len(b), RHeader_Size)
	}
	h.Length = uint8(b[0])
	h.RType = RType(b[1])
	h.PublisherID = binary.LittleEndian.Uint16(b[2:4])
	h.InstrumentID = binary.LittleEndian.Uint32(b[4:8])
	h.TsEvent = binary.LittleEndian.Uint64(b[8:16])
	return nil
}

func FillRHeader_Json(val *fastjson.Value, h *RHeader) error {
	h.TsEvent = fastjson_GetUint64FromString(val, "ts_event")
	h.PublisherID = uint16(val.GetUint("publisher_id"))
	h.InstrumentID = uint32(val.GetUint("instrument_id"))
	h.RType = RType(val.GetUint("rtype"))
	return nil
}

func writeRHeaderRaw(b []byte, h *RHeader, length uint8) {
	b[0] = length
	b[1] = uint8(h.RType)
	binary.LittleEndian.PutUint16(b[2:4], h.PublisherID)
	binary.LittleEndian.PutUint32(b[4:8], h.InstrumentID)
	binary.LittleEndian.PutUint64(b[8:16], h.TsEvent)
}

///////////////////////////////////////////////////////////////////////////////

// BidAskPair is a single inline book level: one venue's bid and ask.
type BidAskPair struct {
	BidPx int64  `json:"bid_px" csv:"bid_px"`
	AskPx int64  `json:"ask_px" csv:"ask_px"`
	BidSz uint32 `json:"bid_sz" csv:"bid_sz"`
	AskSz uint32 `json:"ask_sz" csv:"ask_sz"`
	BidCt uint32 `json:"bid_ct" csv:"bid_ct"`
	AskCt uint32 `json:"ask_ct" csv:"ask_ct"`
}

const BidAskPair_Size = 32

func fillBidAskPairRaw(b []byte, p *BidAskPair) {
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidCt = binary.LittleEndian.Uint32(b[24:28])
	p.AskCt = binary.LittleEndian.Uint32(b[28:32])
}

func writeBidAskPairRaw(b []byte, p *BidAskPair) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(p.BidPx))
	binary.LittleEndian.PutUint64(b[8:16], uint64(p.AskPx))
	binary.LittleEndian.PutUint32(b[16:20], p.BidSz)
	binary.LittleEndian.PutUint32(b[20:24], p.AskSz)
	binary.LittleEndian.PutUint32(b[24:28], p.BidCt)
	binary.LittleEndian.PutUint32(b[28:32], p.AskCt)
}

// ConsolidatedBidAskPair is a single inline book level for a consolidated
// (cross-venue) quote, carrying a publisher ID per side instead of a count.
type ConsolidatedBidAskPair struct {
	BidPx int64  `json:"bid_px" csv:"bid_px"`
	AskPx int64  `json:"ask_px" csv:"ask_px"`
	BidSz uint32 `json:"bid_sz" csv:"bid_sz"`
	AskSz uint32 `json:"ask_sz" csv:"ask_sz"`
	BidPb uint16 `json:"bid_pb" csv:"bid_pb"`
	AskPb uint16 `json:"ask_pb" csv:"ask_pb"`
}

const ConsolidatedBidAskPair_Size = 32

func fillConsolidatedBidAskPairRaw(b []byte, p *ConsolidatedBidAskPair) {
	p.BidPx = int64(binary.LittleEndian.Uint64(b[0:8]))
	p.AskPx = int64(binary.LittleEndian.Uint64(b[8:16]))
	p.BidSz = binary.LittleEndian.Uint32(b[16:20])
	p.AskSz = binary.LittleEndian.Uint32(b[20:24])
	p.BidPb = binary.LittleEndian.Uint16(b[24:26])
	p.AskPb = binary.LittleEndian.Uint16(b[28:30])
}

func writeConsolidatedBidAskPairRaw(b []byte, p *ConsolidatedBidAskPair) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(p.BidPx))
	binary.LittleEndian.PutUint64(b[8:16], uint64(p.AskPx))
	binary.LittleEndian.PutUint32(b[16:20], p.BidSz)
	binary.LittleEndian.PutUint32(b[20:24], p.AskSz)
	binary.LittleEndian.PutUint16(b[24:26], p.BidPb)
	binary.LittleEndian.PutUint16(b[28:30], p.AskPb)
}

///////////////////////////////////////////////////////////////////////////////

// Mbp0Msg is a market-by-price record with book depth 0: a trade (the Trades schema).
type Mbp0Msg struct {
	Header    RHeader `json:"hd" csv:"hd"`
	TsRecv    uint64  `json:"ts_recv" csv:"ts_recv"`
	Price     int64   `json:"price" csv:"price"`
	Size      uint32  `json:"size" csv:"size"`
	Action    uint8   `json:"action" csv:"action"`
	Side      uint8   `json:"side" csv:"side"`
	Flags     uint8   `json:"flags" csv:"flags"`
	Depth     uint8   `json:"depth" csv:"depth"`
	TsInDelta int32   `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32  `json:"sequence" csv:"sequence"`
}

const Mbp0Msg_Size = RHeader_Size + 32

func (*Mbp0Msg) RType() RType { return RType_Mbp0 }
func (*Mbp0Msg) RSize() uint16 { return Mbp0Msg_Size }
func (r *Mbp0Msg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *Mbp0Msg) Fill_Raw(b []byte) error {
	if len(b) < Mbp0Msg_Size {
		return unexpectedBytesError(len(b), Mbp0Msg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Action = body[20]
	r.Side = body[21]
	r.Flags = body[22]
	r.Depth = body[23]
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	return nil
}

func (r *Mbp0Msg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Action = uint8(val.GetUint("action"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	r.Depth = uint8(val.GetUint("depth"))
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	r.Sequence = uint32(val.GetUint("sequence"))
	return nil
}

func (r *Mbp0Msg) WriteRaw(b []byte) error {
	if len(b) < Mbp0Msg_Size {
		return unexpectedBytesError(len(b), Mbp0Msg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, Mbp0Msg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Action
	body[21] = r.Side
	body[22] = r.Flags
	body[23] = r.Depth
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// Mbp1Msg is a market-by-price record with book depth 1 (also used for Tbbo).
type Mbp1Msg struct {
	Header    RHeader    `json:"hd" csv:"hd"`
	TsRecv    uint64     `json:"ts_recv" csv:"ts_recv"`
	Price     int64      `json:"price" csv:"price"`
	Size      uint32     `json:"size" csv:"size"`
	Action    uint8      `json:"action" csv:"action"`
	Side      uint8      `json:"side" csv:"side"`
	Flags     uint8      `json:"flags" csv:"flags"`
	Depth     uint8      `json:"depth" csv:"depth"`
	TsInDelta int32      `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32     `json:"sequence" csv:"sequence"`
	Level     BidAskPair `json:"levels" csv:"levels"`
}

const Mbp1Msg_Size = RHeader_Size + 32 + BidAskPair_Size

func (*Mbp1Msg) RType() RType { return RType_Mbp1 }
func (*Mbp1Msg) RSize() uint16 { return Mbp1Msg_Size }
func (r *Mbp1Msg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *Mbp1Msg) Fill_Raw(b []byte) error {
	if len(b) < Mbp1Msg_Size {
		return unexpectedBytesError(len(b), Mbp1Msg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Action = body[20]
	r.Side = body[21]
	r.Flags = body[22]
	r.Depth = body[23]
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	fillBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

func (r *Mbp1Msg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Action = uint8(val.GetUint("action"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	r.Depth = uint8(val.GetUint("depth"))
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	r.Sequence = uint32(val.GetUint("sequence"))
	if levels := val.GetArray("levels"); len(levels) > 0 {
		fillBidAskPairJson(levels[0], &r.Level)
	}
	return nil
}

func (r *Mbp1Msg) WriteRaw(b []byte) error {
	if len(b) < Mbp1Msg_Size {
		return unexpectedBytesError(len(b), Mbp1Msg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, Mbp1Msg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Action
	body[21] = r.Side
	body[22] = r.Flags
	body[23] = r.Depth
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	writeBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

func fillBidAskPairJson(val *fastjson.Value, p *BidAskPair) {
	p.BidPx = fastjson_GetInt64FromString(val, "bid_px")
	p.AskPx = fastjson_GetInt64FromString(val, "ask_px")
	p.BidSz = uint32(val.GetUint("bid_sz"))
	p.AskSz = uint32(val.GetUint("ask_sz"))
	p.BidCt = uint32(val.GetUint("bid_ct"))
	p.AskCt = uint32(val.GetUint("ask_ct"))
}

///////////////////////////////////////////////////////////////////////////////

// Mbp10Msg is a market-by-price record with book depth 10.
type Mbp10Msg struct {
	Header    RHeader       `json:"hd" csv:"hd"`
	TsRecv    uint64        `json:"ts_recv" csv:"ts_recv"`
	Price     int64         `json:"price" csv:"price"`
	Size      uint32        `json:"size" csv:"size"`
	Action    uint8         `json:"action" csv:"action"`
	Side      uint8         `json:"side" csv:"side"`
	Flags     uint8         `json:"flags" csv:"flags"`
	Depth     uint8         `json:"depth" csv:"depth"`
	TsInDelta int32         `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32        `json:"sequence" csv:"sequence"`
	Levels    [10]BidAskPair `json:"levels" csv:"levels"`
}

const Mbp10Msg_Size = RHeader_Size + 32 + 10*BidAskPair_Size

func (*Mbp10Msg) RType() RType { return RType_Mbp10 }
func (*Mbp10Msg) RSize() uint16 { return Mbp10Msg_Size }
func (r *Mbp10Msg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *Mbp10Msg) Fill_Raw(b []byte) error {
	if len(b) < Mbp10Msg_Size {
		return unexpectedBytesError(len(b), Mbp10Msg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Action = body[20]
	r.Side = body[21]
	r.Flags = body[22]
	r.Depth = body[23]
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	for i := 0; i < 10; i++ {
		off := 32 + i*BidAskPair_Size
		fillBidAskPairRaw(body[off:off+BidAskPair_Size], &r.Levels[i])
	}
	return nil
}

func (r *Mbp10Msg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Action = uint8(val.GetUint("action"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	r.Depth = uint8(val.GetUint("depth"))
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	r.Sequence = uint32(val.GetUint("sequence"))
	levels := val.GetArray("levels")
	for i := 0; i < len(levels) && i < 10; i++ {
		fillBidAskPairJson(levels[i], &r.Levels[i])
	}
	return nil
}

func (r *Mbp10Msg) WriteRaw(b []byte) error {
	if len(b) < Mbp10Msg_Size {
		return unexpectedBytesError(len(b), Mbp10Msg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, Mbp10Msg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Action
	body[21] = r.Side
	body[22] = r.Flags
	body[23] = r.Depth
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	for i := 0; i < 10; i++ {
		off := 32 + i*BidAskPair_Size
		writeBidAskPairRaw(body[off:off+BidAskPair_Size], &r.Levels[i])
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// Cmbp1Msg is a consolidated (cross-venue) market-by-price record with book depth 1.
// Unlike Mbp1Msg it carries no per-venue depth or sequence number.
type Cmbp1Msg struct {
	Header    RHeader                `json:"hd" csv:"hd"`
	TsRecv    uint64                 `json:"ts_recv" csv:"ts_recv"`
	Price     int64                  `json:"price" csv:"price"`
	Size      uint32                 `json:"size" csv:"size"`
	Action    uint8                  `json:"action" csv:"action"`
	Side      uint8                  `json:"side" csv:"side"`
	Flags     uint8                  `json:"flags" csv:"flags"`
	TsInDelta int32                  `json:"ts_in_delta" csv:"ts_in_delta"`
	Level     ConsolidatedBidAskPair `json:"levels" csv:"levels"`
}

const Cmbp1Msg_Size = RHeader_Size + 32 + ConsolidatedBidAskPair_Size

func (*Cmbp1Msg) RType() RType { return RType_Cmbp1 }
func (*Cmbp1Msg) RSize() uint16 { return Cmbp1Msg_Size }
func (r *Cmbp1Msg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *Cmbp1Msg) Fill_Raw(b []byte) error {
	if len(b) < Cmbp1Msg_Size {
		return unexpectedBytesError(len(b), Cmbp1Msg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Action = body[20]
	r.Side = body[21]
	r.Flags = body[22]
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[24:28]))
	fillConsolidatedBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

func (r *Cmbp1Msg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Action = uint8(val.GetUint("action"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	if levels := val.GetArray("levels"); len(levels) > 0 {
		fillConsolidatedBidAskPairJson(levels[0], &r.Level)
	}
	return nil
}

func (r *Cmbp1Msg) WriteRaw(b []byte) error {
	if len(b) < Cmbp1Msg_Size {
		return unexpectedBytesError(len(b), Cmbp1Msg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, Cmbp1Msg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Action
	body[21] = r.Side
	body[22] = r.Flags
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.TsInDelta))
	writeConsolidatedBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

func fillConsolidatedBidAskPairJson(val *fastjson.Value, p *ConsolidatedBidAskPair) {
	p.BidPx = fastjson_GetInt64FromString(val, "bid_px")
	p.AskPx = fastjson_GetInt64FromString(val, "ask_px")
	p.BidSz = uint32(val.GetUint("bid_sz"))
	p.AskSz = uint32(val.GetUint("ask_sz"))
	p.BidPb = uint16(val.GetUint("bid_pb"))
	p.AskPb = uint16(val.GetUint("ask_pb"))
}

///////////////////////////////////////////////////////////////////////////////

// BboMsg is a single-venue best-bid-offer record, subsampled on an interval.
type BboMsg struct {
	Header   RHeader    `json:"hd" csv:"hd"`
	TsRecv   uint64     `json:"ts_recv" csv:"ts_recv"`
	Price    int64      `json:"price" csv:"price"`
	Size     uint32     `json:"size" csv:"size"`
	Side     uint8      `json:"side" csv:"side"`
	Flags    uint8      `json:"flags" csv:"flags"`
	Sequence uint32     `json:"sequence" csv:"sequence"`
	Level    BidAskPair `json:"levels" csv:"levels"`
}

const BboMsg_Size = RHeader_Size + 32 + BidAskPair_Size

func (*BboMsg) RType() RType { return RType_Bbo1S }
func (*BboMsg) RSize() uint16 { return BboMsg_Size }
func (r *BboMsg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *BboMsg) Fill_Raw(b []byte) error {
	if len(b) < BboMsg_Size {
		return unexpectedBytesError(len(b), BboMsg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Side = body[20]
	r.Flags = body[21]
	r.Sequence = binary.LittleEndian.Uint32(body[24:28])
	fillBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

func (r *BboMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	r.Sequence = uint32(val.GetUint("sequence"))
	if levels := val.GetArray("levels"); len(levels) > 0 {
		fillBidAskPairJson(levels[0], &r.Level)
	}
	return nil
}

func (r *BboMsg) WriteRaw(b []byte) error {
	if len(b) < BboMsg_Size {
		return unexpectedBytesError(len(b), BboMsg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, BboMsg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Side
	body[21] = r.Flags
	binary.LittleEndian.PutUint32(body[24:28], r.Sequence)
	writeBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// CbboMsg is a consolidated (cross-venue) best-bid-offer record, subsampled
// on an interval, or the BBO accompanying a consolidated trade (TCBBO).
type CbboMsg struct {
	Header RHeader                `json:"hd" csv:"hd"`
	TsRecv uint64                 `json:"ts_recv" csv:"ts_recv"`
	Price  int64                  `json:"price" csv:"price"`
	Size   uint32                 `json:"size" csv:"size"`
	Side   uint8                  `json:"side" csv:"side"`
	Flags  uint8                  `json:"flags" csv:"flags"`
	Level  ConsolidatedBidAskPair `json:"levels" csv:"levels"`
}

const CbboMsg_Size = RHeader_Size + 32 + ConsolidatedBidAskPair_Size

func (*CbboMsg) RType() RType { return RType_Cbbo1S }
func (*CbboMsg) RSize() uint16 { return CbboMsg_Size }
func (r *CbboMsg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *CbboMsg) Fill_Raw(b []byte) error {
	if len(b) < CbboMsg_Size {
		return unexpectedBytesError(len(b), CbboMsg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Side = body[20]
	r.Flags = body[21]
	fillConsolidatedBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

func (r *CbboMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Side = uint8(val.GetUint("side"))
	r.Flags = uint8(val.GetUint("flags"))
	if levels := val.GetArray("levels"); len(levels) > 0 {
		fillConsolidatedBidAskPairJson(levels[0], &r.Level)
	}
	return nil
}

func (r *CbboMsg) WriteRaw(b []byte) error {
	if len(b) < CbboMsg_Size {
		return unexpectedBytesError(len(b), CbboMsg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, CbboMsg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Side
	body[21] = r.Flags
	writeConsolidatedBidAskPairRaw(body[32:64], &r.Level)
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// MboMsg is a single order-book event (market-by-order).
type MboMsg struct {
	Header    RHeader `json:"hd" csv:"hd"`
	OrderID   uint64  `json:"order_id" csv:"order_id"`
	Price     int64   `json:"price" csv:"price"`
	Size      uint32  `json:"size" csv:"size"`
	Flags     uint8   `json:"flags" csv:"flags"`
	ChannelID uint8   `json:"channel_id" csv:"channel_id"`
	Action    uint8   `json:"action" csv:"action"`
	Side      uint8   `json:"side" csv:"side"`
	TsRecv    uint64  `json:"ts_recv" csv:"ts_recv"`
	TsInDelta int32   `json:"ts_in_delta" csv:"ts_in_delta"`
	Sequence  uint32  `json:"sequence" csv:"sequence"`
}

const MboMsg_Size = RHeader_Size + 40

func (*MboMsg) RType() RType { return RType_Mbo }
func (*MboMsg) RSize() uint16 { return MboMsg_Size }
func (r *MboMsg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *MboMsg) Fill_Raw(b []byte) error {
	if len(b) < MboMsg_Size {
		return unexpectedBytesError(len(b), MboMsg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.OrderID = binary.LittleEndian.Uint64(body[0:8])
	r.Price = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Size = binary.LittleEndian.Uint32(body[16:20])
	r.Flags = body[20]
	r.ChannelID = body[21]
	r.Action = body[22]
	r.Side = body[23]
	r.TsRecv = binary.LittleEndian.Uint64(body[24:32])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[32:36]))
	r.Sequence = binary.LittleEndian.Uint32(body[36:40])
	return nil
}

func (r *MboMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.OrderID = fastjson_GetUint64FromString(val, "order_id")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Size = uint32(val.GetUint("size"))
	r.Flags = uint8(val.GetUint("flags"))
	r.ChannelID = uint8(val.GetUint("channel_id"))
	r.Action = uint8(val.GetUint("action"))
	r.Side = uint8(val.GetUint("side"))
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	r.Sequence = uint32(val.GetUint("sequence"))
	return nil
}

func (r *MboMsg) WriteRaw(b []byte) error {
	if len(b) < MboMsg_Size {
		return unexpectedBytesError(len(b), MboMsg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, MboMsg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.OrderID)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[16:20], r.Size)
	body[20] = r.Flags
	body[21] = r.ChannelID
	body[22] = r.Action
	body[23] = r.Side
	binary.LittleEndian.PutUint64(body[24:32], r.TsRecv)
	binary.LittleEndian.PutUint32(body[32:36], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint32(body[36:40], r.Sequence)
	return nil
}
