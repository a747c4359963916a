package dbn

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// StatMsg is a statistics record (the Statistics schema): open interest,
// settlement price, trading session high/low, and similar exchange-published
// values, each tagged with a StatType discriminator.
type StatMsg struct {
	Header       RHeader `json:"hd" csv:"hd"`
	TsRecv       uint64  `json:"ts_recv" csv:"ts_recv"`
	TsRef        uint64  `json:"ts_ref" csv:"ts_ref"`
	Price        int64   `json:"price" csv:"price"`
	Quantity     int32   `json:"quantity" csv:"quantity"`
	Sequence     uint32  `json:"sequence" csv:"sequence"`
	TsInDelta    int32   `json:"ts_in_delta" csv:"ts_in_delta"`
	StatType     uint16  `json:"stat_type" csv:"stat_type"`
	ChannelID    uint16  `json:"channel_id" csv:"channel_id"`
	UpdateAction uint8   `json:"update_action" csv:"update_action"`
	StatFlags    uint8   `json:"stat_flags" csv:"stat_flags"`
}

const StatMsg_Size = RHeader_Size + 48

func (*StatMsg) RType() RType { return RType_Statistics }
func (*StatMsg) RSize() uint16 { return StatMsg_Size }
func (r *StatMsg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *StatMsg) Fill_Raw(b []byte) error {
	if len(b) < StatMsg_Size {
		return unexpectedBytesError(len(b), StatMsg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.TsRef = binary.LittleEndian.Uint64(body[8:16])
	r.Price = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Quantity = int32(binary.LittleEndian.Uint32(body[24:28]))
	r.Sequence = binary.LittleEndian.Uint32(body[28:32])
	r.TsInDelta = int32(binary.LittleEndian.Uint32(body[32:36]))
	r.StatType = binary.LittleEndian.Uint16(body[36:38])
	r.ChannelID = binary.LittleEndian.Uint16(body[38:40])
	r.UpdateAction = body[40]
	r.StatFlags = body[41]
	return nil
}

func (r *StatMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.TsRef = fastjson_GetUint64FromString(val, "ts_ref")
	r.Price = fastjson_GetInt64FromString(val, "price")
	r.Quantity = int32(val.GetInt("quantity"))
	r.Sequence = uint32(val.GetUint("sequence"))
	r.TsInDelta = int32(val.GetInt("ts_in_delta"))
	r.StatType = uint16(val.GetUint("stat_type"))
	r.ChannelID = uint16(val.GetUint("channel_id"))
	r.UpdateAction = uint8(val.GetUint("update_action"))
	r.StatFlags = uint8(val.GetUint("stat_flags"))
	return nil
}

func (r *StatMsg) WriteRaw(b []byte) error {
	if len(b) < StatMsg_Size {
		return unexpectedBytesError(len(b), StatMsg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, StatMsg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], r.TsRef)
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.Price))
	binary.LittleEndian.PutUint32(body[24:28], uint32(r.Quantity))
	binary.LittleEndian.PutUint32(body[28:32], r.Sequence)
	binary.LittleEndian.PutUint32(body[32:36], uint32(r.TsInDelta))
	binary.LittleEndian.PutUint16(body[36:38], r.StatType)
	binary.LittleEndian.PutUint16(body[38:40], r.ChannelID)
	body[40] = r.UpdateAction
	body[41] = r.StatFlags
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// StatusMsg is a trading-status record (the Status schema): venue-published
// trading/quoting/short-sell-restriction state changes.
type StatusMsg struct {
	Header                RHeader  `json:"hd" csv:"hd"`
	TsRecv                 uint64   `json:"ts_recv" csv:"ts_recv"`
	Action                 uint16   `json:"action" csv:"action"`
	Reason                 uint16   `json:"reason" csv:"reason"`
	TradingEvent           uint16   `json:"trading_event" csv:"trading_event"`
	IsTrading              TriState `json:"is_trading" csv:"is_trading"`
	IsQuoting              TriState `json:"is_quoting" csv:"is_quoting"`
	IsShortSellRestricted  TriState `json:"is_short_sell_restricted" csv:"is_short_sell_restricted"`
}

const StatusMsg_Size = RHeader_Size + 24

func (*StatusMsg) RType() RType { return RType_Status }
func (*StatusMsg) RSize() uint16 { return StatusMsg_Size }
func (r *StatusMsg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *StatusMsg) Fill_Raw(b []byte) error {
	if len(b) < StatusMsg_Size {
		return unexpectedBytesError(len(b), StatusMsg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.Action = binary.LittleEndian.Uint16(body[8:10])
	r.Reason = binary.LittleEndian.Uint16(body[10:12])
	r.TradingEvent = binary.LittleEndian.Uint16(body[12:14])
	r.IsTrading = TriState(body[14])
	r.IsQuoting = TriState(body[15])
	r.IsShortSellRestricted = TriState(body[16])
	return nil
}

func (r *StatusMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.Action = uint16(val.GetUint("action"))
	r.Reason = uint16(val.GetUint("reason"))
	r.TradingEvent = uint16(val.GetUint("trading_event"))
	r.IsTrading = TriState(val.GetUint("is_trading"))
	r.IsQuoting = TriState(val.GetUint("is_quoting"))
	r.IsShortSellRestricted = TriState(val.GetUint("is_short_sell_restricted"))
	return nil
}

func (r *StatusMsg) WriteRaw(b []byte) error {
	if len(b) < StatusMsg_Size {
		return unexpectedBytesError(len(b), StatusMsg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, StatusMsg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint16(body[8:10], r.Action)
	binary.LittleEndian.PutUint16(body[10:12], r.Reason)
	binary.LittleEndian.PutUint16(body[12:14], r.TradingEvent)
	body[14] = uint8(r.IsTrading)
	body[15] = uint8(r.IsQuoting)
	body[16] = uint8(r.IsShortSellRestricted)
	return nil
}
