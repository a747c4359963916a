package dbn

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// InstrumentDefMsg describes the static reference data for an instrument
// (the Definition schema): tick sizes, trading limits, contract terms, and
// identifying strings. Wire version 3 drops four fields that version 1/2
// carried (TradingReferencePrice, TradingReferenceDate, SettlPriceType,
// MdSecurityTradingStatus); Fill_Raw leaves them untouched when decoding a v3 record
// and the VersionUpgradePolicy engine drops them when upgrading v1/v2 to v3.
type InstrumentDefMsg struct {
	Header RHeader `json:"hd" csv:"hd"`

	TsRecv                  uint64 `json:"ts_recv" csv:"ts_recv"`
	MinPriceIncrement       int64  `json:"min_price_increment" csv:"min_price_increment"`
	DisplayFactor           int64  `json:"display_factor" csv:"display_factor"`
	Expiration              uint64 `json:"expiration" csv:"expiration"`
	Activation              uint64 `json:"activation" csv:"activation"`
	HighLimitPrice          int64  `json:"high_limit_price" csv:"high_limit_price"`
	LowLimitPrice           int64  `json:"low_limit_price" csv:"low_limit_price"`
	MaxPriceVariation       int64  `json:"max_price_variation" csv:"max_price_variation"`
	TradingReferencePrice   int64  `json:"trading_reference_price,omitempty" csv:"trading_reference_price"` // dropped in v3
	UnitOfMeasureQty        int64  `json:"unit_of_measure_qty" csv:"unit_of_measure_qty"`
	MinPriceIncrementAmount int64  `json:"min_price_increment_amount" csv:"min_price_increment_amount"`
	PriceRatio              int64  `json:"price_ratio" csv:"price_ratio"`
	StrikePrice             int64  `json:"strike_price" csv:"strike_price"`

	InstAttribValue    int32  `json:"inst_attrib_value" csv:"inst_attrib_value"`
	UnderlyingID       uint32 `json:"underlying_id" csv:"underlying_id"`
	RawInstrumentID    uint64 `json:"raw_instrument_id" csv:"raw_instrument_id"`
	MarketDepthImplied int32  `json:"market_depth_implied" csv:"market_depth_implied"`
	MarketDepth        int32  `json:"market_depth" csv:"market_depth"`
	MarketSegmentID    uint32 `json:"market_segment_id" csv:"market_segment_id"`
	MaxTradeVol        uint32 `json:"max_trade_vol" csv:"max_trade_vol"`
	MinLotSize         int32  `json:"min_lot_size" csv:"min_lot_size"`
	MinLotSizeBlock    int32  `json:"min_lot_size_block" csv:"min_lot_size_block"`
	MinLotSizeRoundLot int32  `json:"min_lot_size_round_lot" csv:"min_lot_size_round_lot"`
	MinTradeVol        uint32 `json:"min_trade_vol" csv:"min_trade_vol"`
	ContractMultiplier int32  `json:"contract_multiplier" csv:"contract_multiplier"`
	DecayQuantity      int32  `json:"decay_quantity" csv:"decay_quantity"`
	OriginalContractSize int32 `json:"original_contract_size" csv:"original_contract_size"`

	TradingReferenceDate uint16 `json:"trading_reference_date,omitempty" csv:"trading_reference_date"` // dropped in v3
	ApplID               int16  `json:"appl_id" csv:"appl_id"`
	MaturityYear         uint16 `json:"maturity_year" csv:"maturity_year"`
	DecayStartDate       uint16 `json:"decay_start_date" csv:"decay_start_date"`
	ChannelID            uint16 `json:"channel_id" csv:"channel_id"`

	Currency             string `json:"currency" csv:"currency"`
	SettlCurrency        string `json:"settl_currency" csv:"settl_currency"`
	SecSubType           string `json:"secsubtype" csv:"secsubtype"`
	RawSymbol            string `json:"raw_symbol" csv:"raw_symbol"`
	Group                string `json:"group" csv:"group"`
	Exchange             string `json:"exchange" csv:"exchange"`
	Asset                string `json:"asset" csv:"asset"`
	Cfi                  string `json:"cfi" csv:"cfi"`
	SecurityType         string `json:"security_type" csv:"security_type"`
	UnitOfMeasure        string `json:"unit_of_measure" csv:"unit_of_measure"`
	Underlying           string `json:"underlying" csv:"underlying"`
	StrikePriceCurrency  string `json:"strike_price_currency" csv:"strike_price_currency"`

	InstrumentClass        uint8 `json:"instrument_class" csv:"instrument_class"`
	MatchAlgorithm         uint8 `json:"match_algorithm" csv:"match_algorithm"`
	MainFraction           uint8 `json:"main_fraction" csv:"main_fraction"`
	PriceDisplayFormat     uint8 `json:"price_display_format" csv:"price_display_format"`
	SettlPriceType         uint8 `json:"settl_price_type,omitempty" csv:"settl_price_type"` // dropped in v3
	SubFraction            uint8 `json:"sub_fraction" csv:"sub_fraction"`
	UnderlyingProduct      uint8 `json:"underlying_product" csv:"underlying_product"`
	SecurityUpdateAction   uint8 `json:"security_update_action" csv:"security_update_action"`
	MaturityMonth          uint8 `json:"maturity_month" csv:"maturity_month"`
	MaturityDay            uint8 `json:"maturity_day" csv:"maturity_day"`
	MaturityWeek           uint8 `json:"maturity_week" csv:"maturity_week"`
	UserDefinedInstrument  uint8 `json:"user_defined_instrument" csv:"user_defined_instrument"`
	ContractMultiplierUnit int8  `json:"contract_multiplier_unit" csv:"contract_multiplier_unit"`
	FlowScheduleType       int8  `json:"flow_schedule_type" csv:"flow_schedule_type"`
	TickRule               uint8 `json:"tick_rule" csv:"tick_rule"`
	MdSecurityTradingStatus uint8 `json:"md_security_trading_status,omitempty" csv:"md_security_trading_status"` // dropped in v3
}

// Fixed cstr field widths, shared across wire versions.
const (
	instrumentDef_CurrencyLen      = 4
	instrumentDef_SecSubTypeLen    = 6
	instrumentDef_GroupLen         = 21
	instrumentDef_ExchangeLen      = 5
	instrumentDef_AssetLen         = 11
	instrumentDef_CfiLen           = 7
	instrumentDef_SecurityTypeLen  = 7
	instrumentDef_UnitOfMeasureLen = 31
	instrumentDef_UnderlyingLen    = 21
)

func (*InstrumentDefMsg) RType() RType { return RType_InstrumentDef }
func (*InstrumentDefMsg) RSize() uint16 { return 0 } // variable length across wire versions
func (r *InstrumentDefMsg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

// instrumentDefCursor is a small sequential byte reader/writer used only by
// InstrumentDefMsg, whose body is long enough that hand-indexed slice bounds
// on every field would be error-prone to keep aligned across wire versions.
type instrumentDefCursor struct {
	buf []byte
	off int
}

func (c *instrumentDefCursor) u16() uint16 {
	v := binary.LittleEndian.Uint16(c.buf[c.off : c.off+2])
	c.off += 2
	return v
}
func (c *instrumentDefCursor) i16() int16 { return int16(c.u16()) }
func (c *instrumentDefCursor) u32() uint32 {
	v := binary.LittleEndian.Uint32(c.buf[c.off : c.off+4])
	c.off += 4
	return v
}
func (c *instrumentDefCursor) i32() int32 { return int32(c.u32()) }
func (c *instrumentDefCursor) u64() uint64 {
	v := binary.LittleEndian.Uint64(c.buf[c.off : c.off+8])
	c.off += 8
	return v
}
func (c *instrumentDefCursor) i64() int64 { return int64(c.u64()) }
func (c *instrumentDefCursor) u8() uint8 {
	v := c.buf[c.off]
	c.off++
	return v
}
func (c *instrumentDefCursor) i8() int8 { return int8(c.u8()) }
func (c *instrumentDefCursor) cstr(n int) string {
	s := TrimNullBytes(c.buf[c.off : c.off+n])
	c.off += n
	return s
}

func (c *instrumentDefCursor) putU16(v uint16) {
	binary.LittleEndian.PutUint16(c.buf[c.off:c.off+2], v)
	c.off += 2
}
func (c *instrumentDefCursor) putI16(v int16) { c.putU16(uint16(v)) }
func (c *instrumentDefCursor) putU32(v uint32) {
	binary.LittleEndian.PutUint32(c.buf[c.off:c.off+4], v)
	c.off += 4
}
func (c *instrumentDefCursor) putI32(v int32) { c.putU32(uint32(v)) }
func (c *instrumentDefCursor) putU64(v uint64) {
	binary.LittleEndian.PutUint64(c.buf[c.off:c.off+8], v)
	c.off += 8
}
func (c *instrumentDefCursor) putI64(v int64) { c.putU64(uint64(v)) }
func (c *instrumentDefCursor) putU8(v uint8) {
	c.buf[c.off] = v
	c.off++
}
func (c *instrumentDefCursor) putI8(v int8) { c.putU8(uint8(v)) }
func (c *instrumentDefCursor) putCstr(s string, n int) {
	copy(c.buf[c.off:c.off+n], []byte(s))
	c.off += n
}

func (r *InstrumentDefMsg) Fill_Raw(b []byte) error {
	if len(b) < RHeader_Size+8 {
		return unexpectedBytesError(len(b), RHeader_Size+8)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	// v3 records are shorter than v1/v2 by the four dropped fields (8+2+1+1=12 bytes).
	isV3 := len(b) < instrumentDefV2Size(instrumentDef_RawSymbolLenV2) && len(b) != instrumentDefV1Size()

	c := &instrumentDefCursor{buf: b[RHeader_Size:]}
	r.TsRecv = c.u64()
	r.MinPriceIncrement = c.i64()
	r.DisplayFactor = c.i64()
	r.Expiration = c.u64()
	r.Activation = c.u64()
	r.HighLimitPrice = c.i64()
	r.LowLimitPrice = c.i64()
	r.MaxPriceVariation = c.i64()
	if !isV3 {
		r.TradingReferencePrice = c.i64()
	}
	r.UnitOfMeasureQty = c.i64()
	r.MinPriceIncrementAmount = c.i64()
	r.PriceRatio = c.i64()
	r.InstAttribValue = c.i32()
	r.UnderlyingID = c.u32()
	r.RawInstrumentID = c.u64()
	r.MarketDepthImplied = c.i32()
	r.MarketDepth = c.i32()
	r.MarketSegmentID = c.u32()
	r.MaxTradeVol = c.u32()
	r.MinLotSize = c.i32()
	r.MinLotSizeBlock = c.i32()
	r.MinLotSizeRoundLot = c.i32()
	r.MinTradeVol = c.u32()
	r.ContractMultiplier = c.i32()
	r.DecayQuantity = c.i32()
	r.OriginalContractSize = c.i32()
	if !isV3 {
		r.TradingReferenceDate = c.u16()
	}
	r.ApplID = c.i16()
	r.MaturityYear = c.u16()
	r.DecayStartDate = c.u16()
	r.ChannelID = c.u16()
	r.Currency = c.cstr(instrumentDef_CurrencyLen)
	r.SettlCurrency = c.cstr(instrumentDef_CurrencyLen)
	r.SecSubType = c.cstr(instrumentDef_SecSubTypeLen)
	rawSymbolLen := instrumentDef_RawSymbolLenV2
	if r.Header.Length != 0 && int(r.Header.Length)*4 <= instrumentDefV1Size() {
		rawSymbolLen = MetadataV1_SymbolCstrLen
	}
	r.RawSymbol = c.cstr(rawSymbolLen)
	r.Group = c.cstr(instrumentDef_GroupLen)
	r.Exchange = c.cstr(instrumentDef_ExchangeLen)
	r.Asset = c.cstr(instrumentDef_AssetLen)
	r.Cfi = c.cstr(instrumentDef_CfiLen)
	r.SecurityType = c.cstr(instrumentDef_SecurityTypeLen)
	r.UnitOfMeasure = c.cstr(instrumentDef_UnitOfMeasureLen)
	r.Underlying = c.cstr(instrumentDef_UnderlyingLen)
	r.StrikePriceCurrency = c.cstr(instrumentDef_CurrencyLen)
	r.StrikePrice = c.i64()
	r.InstrumentClass = c.u8()
	r.MatchAlgorithm = c.u8()
	r.MainFraction = c.u8()
	r.PriceDisplayFormat = c.u8()
	if !isV3 {
		r.SettlPriceType = c.u8()
	}
	r.SubFraction = c.u8()
	r.UnderlyingProduct = c.u8()
	r.SecurityUpdateAction = c.u8()
	r.MaturityMonth = c.u8()
	r.MaturityDay = c.u8()
	r.MaturityWeek = c.u8()
	r.UserDefinedInstrument = c.u8()
	r.ContractMultiplierUnit = c.i8()
	r.FlowScheduleType = c.i8()
	r.TickRule = c.u8()
	if !isV3 {
		if c.off < len(c.buf) {
			r.MdSecurityTradingStatus = c.u8()
		}
	}
	return nil
}

const instrumentDef_RawSymbolLenV2 = MetadataV2_SymbolCstrLen

func instrumentDefV1Size() int {
	return instrumentDefV2Size(MetadataV1_SymbolCstrLen)
}

// instrumentDefV2Size is the v1/v2 body (311 bytes plus the raw symbol cstr)
// after the header, padded up to a multiple of 4 as RHeader.Length requires.
func instrumentDefV2Size(rawSymbolLen int) int {
	return (RHeader_Size + 311 + rawSymbolLen + 3) &^ 3
}

func (r *InstrumentDefMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.MinPriceIncrement = fastjson_GetInt64FromString(val, "min_price_increment")
	r.DisplayFactor = fastjson_GetInt64FromString(val, "display_factor")
	r.Expiration = fastjson_GetUint64FromString(val, "expiration")
	r.Activation = fastjson_GetUint64FromString(val, "activation")
	r.HighLimitPrice = fastjson_GetInt64FromString(val, "high_limit_price")
	r.LowLimitPrice = fastjson_GetInt64FromString(val, "low_limit_price")
	r.MaxPriceVariation = fastjson_GetInt64FromString(val, "max_price_variation")
	r.TradingReferencePrice = fastjson_GetInt64FromString(val, "trading_reference_price")
	r.UnitOfMeasureQty = fastjson_GetInt64FromString(val, "unit_of_measure_qty")
	r.MinPriceIncrementAmount = fastjson_GetInt64FromString(val, "min_price_increment_amount")
	r.PriceRatio = fastjson_GetInt64FromString(val, "price_ratio")
	r.StrikePrice = fastjson_GetInt64FromString(val, "strike_price")
	r.InstAttribValue = int32(val.GetInt("inst_attrib_value"))
	r.UnderlyingID = uint32(val.GetUint("underlying_id"))
	r.RawInstrumentID = fastjson_GetUint64FromString(val, "raw_instrument_id")
	r.MarketDepthImplied = int32(val.GetInt("market_depth_implied"))
	r.MarketDepth = int32(val.GetInt("market_depth"))
	r.MarketSegmentID = uint32(val.GetUint("market_segment_id"))
	r.MaxTradeVol = uint32(val.GetUint("max_trade_vol"))
	r.MinLotSize = int32(val.GetInt("min_lot_size"))
	r.MinLotSizeBlock = int32(val.GetInt("min_lot_size_block"))
	r.MinLotSizeRoundLot = int32(val.GetInt("min_lot_size_round_lot"))
	r.MinTradeVol = uint32(val.GetUint("min_trade_vol"))
	r.ContractMultiplier = int32(val.GetInt("contract_multiplier"))
	r.DecayQuantity = int32(val.GetInt("decay_quantity"))
	r.OriginalContractSize = int32(val.GetInt("original_contract_size"))
	r.ApplID = int16(val.GetInt("appl_id"))
	r.MaturityYear = uint16(val.GetUint("maturity_year"))
	r.DecayStartDate = uint16(val.GetUint("decay_start_date"))
	r.ChannelID = uint16(val.GetUint("channel_id"))
	r.Currency = string(val.GetStringBytes("currency"))
	r.SettlCurrency = string(val.GetStringBytes("settl_currency"))
	r.SecSubType = string(val.GetStringBytes("secsubtype"))
	r.RawSymbol = string(val.GetStringBytes("raw_symbol"))
	r.Group = string(val.GetStringBytes("group"))
	r.Exchange = string(val.GetStringBytes("exchange"))
	r.Asset = string(val.GetStringBytes("asset"))
	r.Cfi = string(val.GetStringBytes("cfi"))
	r.SecurityType = string(val.GetStringBytes("security_type"))
	r.UnitOfMeasure = string(val.GetStringBytes("unit_of_measure"))
	r.Underlying = string(val.GetStringBytes("underlying"))
	r.StrikePriceCurrency = string(val.GetStringBytes("strike_price_currency"))
	r.InstrumentClass = uint8(val.GetUint("instrument_class"))
	r.MatchAlgorithm = uint8(val.GetUint("match_algorithm"))
	r.MainFraction = uint8(val.GetUint("main_fraction"))
	r.PriceDisplayFormat = uint8(val.GetUint("price_display_format"))
	r.SettlPriceType = uint8(val.GetUint("settl_price_type"))
	r.SubFraction = uint8(val.GetUint("sub_fraction"))
	r.UnderlyingProduct = uint8(val.GetUint("underlying_product"))
	r.SecurityUpdateAction = uint8(val.GetUint("security_update_action"))
	r.MaturityMonth = uint8(val.GetUint("maturity_month"))
	r.MaturityDay = uint8(val.GetUint("maturity_day"))
	r.MaturityWeek = uint8(val.GetUint("maturity_week"))
	r.UserDefinedInstrument = uint8(val.GetUint("user_defined_instrument"))
	r.ContractMultiplierUnit = int8(val.GetInt("contract_multiplier_unit"))
	r.FlowScheduleType = int8(val.GetInt("flow_schedule_type"))
	r.TickRule = uint8(val.GetUint("tick_rule"))
	r.MdSecurityTradingStatus = uint8(val.GetUint("md_security_trading_status"))
	return nil
}

// InstrumentDefMsgSize returns the wire size for an InstrumentDefMsg encoded
// with the given raw-symbol cstr length and version. isV3 drops the four
// fields UpgradeInstrumentDef also zeroes.
func InstrumentDefMsgSize(rawSymbolLen int, isV3 bool) int {
	size := instrumentDefV2Size(rawSymbolLen)
	if isV3 {
		size -= 12 // TradingReferencePrice(8) + TradingReferenceDate(2) + SettlPriceType(1) + MdSecurityTradingStatus(1)
	}
	return size
}

// WriteRaw encodes r using rawSymbolLen for RawSymbol's cstr width (typically
// MetadataV1_SymbolCstrLen or MetadataV2_SymbolCstrLen, matching the stream's
// Metadata.SymbolCstrLen) and isV3 to select the narrower v3 field set.
func (r *InstrumentDefMsg) WriteRaw(b []byte, rawSymbolLen int, isV3 bool) error {
	size := InstrumentDefMsgSize(rawSymbolLen, isV3)
	if len(b) < size {
		return unexpectedBytesError(len(b), size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, uint8(size/4))
	c := &instrumentDefCursor{buf: b[RHeader_Size:]}
	c.putU64(r.TsRecv)
	c.putI64(r.MinPriceIncrement)
	c.putI64(r.DisplayFactor)
	c.putU64(r.Expiration)
	c.putU64(r.Activation)
	c.putI64(r.HighLimitPrice)
	c.putI64(r.LowLimitPrice)
	c.putI64(r.MaxPriceVariation)
	if !isV3 {
		c.putI64(r.TradingReferencePrice)
	}
	c.putI64(r.UnitOfMeasureQty)
	c.putI64(r.MinPriceIncrementAmount)
	c.putI64(r.PriceRatio)
	c.putI32(r.InstAttribValue)
	c.putU32(r.UnderlyingID)
	c.putU64(r.RawInstrumentID)
	c.putI32(r.MarketDepthImplied)
	c.putI32(r.MarketDepth)
	c.putU32(r.MarketSegmentID)
	c.putU32(r.MaxTradeVol)
	c.putI32(r.MinLotSize)
	c.putI32(r.MinLotSizeBlock)
	c.putI32(r.MinLotSizeRoundLot)
	c.putU32(r.MinTradeVol)
	c.putI32(r.ContractMultiplier)
	c.putI32(r.DecayQuantity)
	c.putI32(r.OriginalContractSize)
	if !isV3 {
		c.putU16(r.TradingReferenceDate)
	}
	c.putI16(r.ApplID)
	c.putU16(r.MaturityYear)
	c.putU16(r.DecayStartDate)
	c.putU16(r.ChannelID)
	c.putCstr(r.Currency, instrumentDef_CurrencyLen)
	c.putCstr(r.SettlCurrency, instrumentDef_CurrencyLen)
	c.putCstr(r.SecSubType, instrumentDef_SecSubTypeLen)
	c.putCstr(r.RawSymbol, rawSymbolLen)
	c.putCstr(r.Group, instrumentDef_GroupLen)
	c.putCstr(r.Exchange, instrumentDef_ExchangeLen)
	c.putCstr(r.Asset, instrumentDef_AssetLen)
	c.putCstr(r.Cfi, instrumentDef_CfiLen)
	c.putCstr(r.SecurityType, instrumentDef_SecurityTypeLen)
	c.putCstr(r.UnitOfMeasure, instrumentDef_UnitOfMeasureLen)
	c.putCstr(r.Underlying, instrumentDef_UnderlyingLen)
	c.putCstr(r.StrikePriceCurrency, instrumentDef_CurrencyLen)
	c.putI64(r.StrikePrice)
	c.putU8(r.InstrumentClass)
	c.putU8(r.MatchAlgorithm)
	c.putU8(r.MainFraction)
	c.putU8(r.PriceDisplayFormat)
	if !isV3 {
		c.putU8(r.SettlPriceType)
	}
	c.putU8(r.SubFraction)
	c.putU8(r.UnderlyingProduct)
	c.putU8(r.SecurityUpdateAction)
	c.putU8(r.MaturityMonth)
	c.putU8(r.MaturityDay)
	c.putU8(r.MaturityWeek)
	c.putU8(r.UserDefinedInstrument)
	c.putI8(r.ContractMultiplierUnit)
	c.putI8(r.FlowScheduleType)
	c.putU8(r.TickRule)
	if !isV3 {
		c.putU8(r.MdSecurityTradingStatus)
	}
	return nil
}
