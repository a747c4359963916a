package dbn

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// OhlcvMsg is an aggregated open/high/low/close/volume bar. The same struct
// represents every OHLCV cadence (RType_Ohlcv1S, _1M, _1H, _1D, _OhlcvEod,
// _OhlcvDeprecated); the cadence lives entirely in the record header's RType.
type OhlcvMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	Open   int64   `json:"open" csv:"open"`
	High   int64   `json:"high" csv:"high"`
	Low    int64   `json:"low" csv:"low"`
	Close  int64   `json:"close" csv:"close"`
	Volume uint64  `json:"volume" csv:"volume"`
}

const OhlcvMsg_Size = RHeader_Size + 40

func (*OhlcvMsg) RType() RType { return RType_Ohlcv1S }
func (*OhlcvMsg) RSize() uint16 { return OhlcvMsg_Size }
func (r *OhlcvMsg) IndexTs() uint64 {
	return r.Header.TsEvent
}

func (r *OhlcvMsg) Fill_Raw(b []byte) error {
	if len(b) < OhlcvMsg_Size {
		return unexpectedBytesError(len(b), OhlcvMsg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.Open = int64(binary.LittleEndian.Uint64(body[0:8]))
	r.High = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.Low = int64(binary.LittleEndian.Uint64(body[16:24]))
	r.Close = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.Volume = binary.LittleEndian.Uint64(body[32:40])
	return nil
}

func (r *OhlcvMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Open = fastjson_GetInt64FromString(val, "open")
	r.High = fastjson_GetInt64FromString(val, "high")
	r.Low = fastjson_GetInt64FromString(val, "low")
	r.Close = fastjson_GetInt64FromString(val, "close")
	r.Volume = fastjson_GetUint64FromString(val, "volume")
	return nil
}

func (r *OhlcvMsg) WriteRaw(b []byte) error {
	if len(b) < OhlcvMsg_Size {
		return unexpectedBytesError(len(b), OhlcvMsg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, OhlcvMsg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], uint64(r.Open))
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.High))
	binary.LittleEndian.PutUint64(body[16:24], uint64(r.Low))
	binary.LittleEndian.PutUint64(body[24:32], uint64(r.Close))
	binary.LittleEndian.PutUint64(body[32:40], r.Volume)
	return nil
}
