package dbn

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// ErrorMsg is a fatal-or-informational error sent by the upstream gateway
// in place of a data record (the Error rtype). The wire-level cstr length
// of the `Err` field differs between wire version 1 (64 bytes, no trailing
// Code/IsLast) and version 2+ (302 bytes, plus trailing Code/IsLast bytes).
// Fill_Raw matches the framed record's length against the two known wire
// sizes rather than guessing field presence from a loose length threshold;
// Code/IsLast are left at their zero value on a v1 record, and UpgradeError
// fills in the v2 sentinel (0xFF/1) once a caller asks for v2+ semantics.
type ErrorMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	Err    string  `json:"err" csv:"err"`
	Code   uint8   `json:"code" csv:"code"`
	IsLast uint8   `json:"is_last" csv:"is_last"`
}

const ErrorMsgV1_Size = RHeader_Size + 64
const ErrorMsgV2_Size = RHeader_Size + 302 + 2 // +2: code, is_last

func (*ErrorMsg) RType() RType { return RType_Error }

// RSize returns ErrorMsgV2_Size: WriteRaw always encodes the v2+ cstr width,
// so that's the buffer WriteRecord must allocate. Decode (Fill_Raw) still
// accepts either width, inferred from the framed record's actual length.
func (*ErrorMsg) RSize() uint16 { return ErrorMsgV2_Size }
func (r *ErrorMsg) IndexTs() uint64 {
	return r.Header.TsEvent
}

func (r *ErrorMsg) Fill_Raw(b []byte) error {
	if len(b) < RHeader_Size+1 {
		return unexpectedBytesError(len(b), RHeader_Size+1)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	switch len(body) {
	case ErrorMsgV2_Size - RHeader_Size:
		// version 2+: trailing code and is_last bytes follow the err cstr.
		errLen := len(body) - 2
		r.Err = TrimNullBytes(body[:errLen])
		r.Code = body[errLen]
		r.IsLast = body[errLen+1]
	case ErrorMsgV1_Size - RHeader_Size:
		// version 1: no code/is_last field on the wire.
		r.Err = TrimNullBytes(body)
		r.Code = 0
		r.IsLast = 0
	default:
		return unexpectedBytesError(len(b), ErrorMsgV2_Size)
	}
	return nil
}

func (r *ErrorMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Err = string(val.GetStringBytes("err"))
	r.Code = uint8(val.GetUint("code"))
	r.IsLast = uint8(val.GetUint("is_last"))
	return nil
}

func (r *ErrorMsg) WriteRaw(b []byte) error {
	if len(b) < ErrorMsgV2_Size {
		return unexpectedBytesError(len(b), ErrorMsgV2_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, ErrorMsgV2_Size/4)
	body := b[RHeader_Size:]
	copy(body, []byte(r.Err))
	body[len(body)-2] = r.Code
	body[len(body)-1] = r.IsLast
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// SystemMsg is an informational message from the upstream gateway, not
// tied to any particular instrument (the System rtype). Heartbeats are
// identified by Code == 0 and Msg == "Heartbeat". As with ErrorMsg, the
// v1 wire layout (64-byte msg cstr) carries no Code byte at all; Fill_Raw
// matches against the two known wire sizes rather than a loose length
// threshold, and UpgradeSystem fills in the v2 sentinel (0xFF) once a
// caller asks for v2+ semantics.
type SystemMsg struct {
	Header RHeader `json:"hd" csv:"hd"`
	Msg    string  `json:"msg" csv:"msg"`
	Code   uint8   `json:"code" csv:"code"`
}

const SystemMsgV1_Size = RHeader_Size + 64
const SystemMsgV2_Size = RHeader_Size + 303 + 1 // +1: code

func (*SystemMsg) RType() RType { return RType_System }

// RSize returns SystemMsgV2_Size: WriteRaw always encodes the v2+ cstr width,
// so that's the buffer WriteRecord must allocate. Decode (Fill_Raw) still
// accepts either width, inferred from the framed record's actual length.
func (*SystemMsg) RSize() uint16 { return SystemMsgV2_Size }
func (r *SystemMsg) IndexTs() uint64 {
	return r.Header.TsEvent
}

func (r *SystemMsg) IsHeartbeat() bool {
	return r.Code == 0 && r.Msg == "Heartbeat"
}

func (r *SystemMsg) Fill_Raw(b []byte) error {
	if len(b) < RHeader_Size+1 {
		return unexpectedBytesError(len(b), RHeader_Size+1)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	switch len(body) {
	case SystemMsgV2_Size - RHeader_Size:
		msgLen := len(body) - 1
		r.Msg = TrimNullBytes(body[:msgLen])
		r.Code = body[msgLen]
	case SystemMsgV1_Size - RHeader_Size:
		// version 1: no code field on the wire.
		r.Msg = TrimNullBytes(body)
		r.Code = 0
	default:
		return unexpectedBytesError(len(b), SystemMsgV2_Size)
	}
	return nil
}

func (r *SystemMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.Msg = string(val.GetStringBytes("msg"))
	r.Code = uint8(val.GetUint("code"))
	return nil
}

func (r *SystemMsg) WriteRaw(b []byte) error {
	if len(b) < SystemMsgV2_Size {
		return unexpectedBytesError(len(b), SystemMsgV2_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, SystemMsgV2_Size/4)
	body := b[RHeader_Size:]
	copy(body, []byte(r.Msg))
	body[len(body)-1] = r.Code
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// SymbolMappingMsg maps an instrument_id to a textual symbol over a time
// interval. Wire version 1 has no stype_in/stype_out bytes at all and uses
// 22-byte symbol cstrs; version 2+ prefixes each symbol cstr with its SType
// byte and widens the cstrs to 71 bytes. Fill_Raw matches the framed
// record's actual length against the two known wire sizes; on a v1 record
// StypeIn/StypeOut are left at their Go zero value, and UpgradeSymbolMapping
// fills in the v2 sentinel (SType_Unknown) once a caller asks for v2+
// semantics.
type SymbolMappingMsg struct {
	Header         RHeader `json:"hd" csv:"hd"`
	StypeIn        SType   `json:"stype_in" csv:"stype_in"`
	StypeInSymbol  string  `json:"stype_in_symbol" csv:"stype_in_symbol"`
	StypeOut       SType   `json:"stype_out" csv:"stype_out"`
	StypeOutSymbol string  `json:"stype_out_symbol" csv:"stype_out_symbol"`
	StartTs        uint64  `json:"start_ts" csv:"start_ts"`
	EndTs          uint64  `json:"end_ts" csv:"end_ts"`
}

const SymbolMappingMsgV1_Size = RHeader_Size + 2*MetadataV1_SymbolCstrLen + 16
const SymbolMappingMsgV2_Size = RHeader_Size + 2*(1+MetadataV2_SymbolCstrLen) + 16

func (*SymbolMappingMsg) RType() RType { return RType_SymbolMapping }
func (*SymbolMappingMsg) RSize() uint16 { return 0 } // variable length; see SymbolMappingMsgV1_Size/V2_Size
func (r *SymbolMappingMsg) IndexTs() uint64 {
	return r.Header.TsEvent
}

func (r *SymbolMappingMsg) Fill_Raw(b []byte) error {
	if len(b) < RHeader_Size+16 {
		return unexpectedBytesError(len(b), RHeader_Size+16)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	switch len(body) {
	case SymbolMappingMsgV2_Size - RHeader_Size:
		cstrLen := MetadataV2_SymbolCstrLen
		r.StypeIn = SType(body[0])
		r.StypeInSymbol = TrimNullBytes(body[1 : 1+cstrLen])
		pos := 1 + cstrLen
		r.StypeOut = SType(body[pos])
		r.StypeOutSymbol = TrimNullBytes(body[pos+1 : pos+1+cstrLen])
		pos = pos + 1 + cstrLen
		r.StartTs = binary.LittleEndian.Uint64(body[pos : pos+8])
		r.EndTs = binary.LittleEndian.Uint64(body[pos+8 : pos+16])
	case SymbolMappingMsgV1_Size - RHeader_Size:
		// version 1: no stype_in/stype_out bytes on the wire.
		cstrLen := MetadataV1_SymbolCstrLen
		r.StypeIn = 0
		r.StypeInSymbol = TrimNullBytes(body[0:cstrLen])
		r.StypeOut = 0
		r.StypeOutSymbol = TrimNullBytes(body[cstrLen : 2*cstrLen])
		pos := 2 * cstrLen
		r.StartTs = binary.LittleEndian.Uint64(body[pos : pos+8])
		r.EndTs = binary.LittleEndian.Uint64(body[pos+8 : pos+16])
	default:
		return unexpectedBytesError(len(b), SymbolMappingMsgV2_Size)
	}
	return nil
}

func (r *SymbolMappingMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.StypeIn = SType(val.GetUint("stype_in"))
	r.StypeInSymbol = string(val.GetStringBytes("stype_in_symbol"))
	r.StypeOut = SType(val.GetUint("stype_out"))
	r.StypeOutSymbol = string(val.GetStringBytes("stype_out_symbol"))
	r.StartTs = fastjson_GetUint64FromString(val, "start_ts")
	r.EndTs = fastjson_GetUint64FromString(val, "end_ts")
	return nil
}

// WriteRaw always encodes the v2+ wire layout (stype byte + cstr, for both
// in and out), matching WriteSymbolMappingRecord's allocation. cstrLen is the
// symbol cstr width, not counting the stype byte.
func (r *SymbolMappingMsg) WriteRaw(b []byte, cstrLen int) error {
	size := RHeader_Size + 2*(1+cstrLen) + 16
	if len(b) < size {
		return unexpectedBytesError(len(b), size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, uint8(size/4))
	body := b[RHeader_Size:]
	body[0] = uint8(r.StypeIn)
	copy(body[1:1+cstrLen], []byte(r.StypeInSymbol))
	pos := 1 + cstrLen
	body[pos] = uint8(r.StypeOut)
	copy(body[pos+1:pos+1+cstrLen], []byte(r.StypeOutSymbol))
	pos = pos + 1 + cstrLen
	binary.LittleEndian.PutUint64(body[pos:pos+8], r.StartTs)
	binary.LittleEndian.PutUint64(body[pos+8:pos+16], r.EndTs)
	return nil
}
