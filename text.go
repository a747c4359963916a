package dbn

import (
	"fmt"
	"reflect"
)

// rowKind tells the text encoders how to render a flattened field's value,
// per spec §4.8's pretty_px/pretty_ts options and the 64-bit-as-string rule.
type rowKind int

const (
	kindString rowKind = iota
	kindInt64String
	kindUint64String
	kindUint32
	kindUint16
	kindUint8
	kindInt32
	kindPrice
	kindTimestamp
)

// rowField is one flattened scalar value of a record, in emission order.
type rowField struct {
	key  string
	kind rowKind
	raw  any
}

// Fields named below get pretty_px/pretty_ts treatment regardless of which
// record type they appear on; every other int64/uint64 field renders as a
// plain (string-wrapped, for JSON) decimal.
var pxFieldNames = map[string]bool{
	"Price": true, "Open": true, "High": true, "Low": true, "Close": true,
	"RefPrice": true, "ContBookClrPrice": true, "AuctInterestClrPrice": true,
	"SsrFillingPrice": true, "IndMatchPrice": true, "UpperCollar": true, "LowerCollar": true,
	"MinPriceIncrement": true, "DisplayFactor": true, "HighLimitPrice": true, "LowLimitPrice": true,
	"MaxPriceVariation": true, "TradingReferencePrice": true, "UnitOfMeasureQty": true,
	"MinPriceIncrementAmount": true, "PriceRatio": true, "StrikePrice": true,
	"BidPx": true, "AskPx": true,
}

var tsFieldNames = map[string]bool{
	"TsRecv": true, "TsEvent": true, "AuctionTime": true, "Expiration": true,
	"Activation": true, "StartTs": true, "EndTs": true, "TsRef": true,
}

// Fields emitted as the ordering rule's "Discriminators" group, ahead of the
// remaining payload fields.
var discriminatorFieldNames = map[string]bool{
	"Action": true, "Side": true, "Depth": true, "StatType": true,
}

var bidAskPairType = reflect.TypeOf(BidAskPair{})
var consolidatedBidAskPairType = reflect.TypeOf(ConsolidatedBidAskPair{})

// recordRowFields flattens rec (a pointer to a record struct) into the
// field order spec §4.8 requires: ts_recv (if present), ts_event, rtype,
// publisher_id, instrument_id; discriminators; payload in struct order;
// flattened book levels.
func recordRowFields(rec any, header *RHeader) []rowField {
	v := reflect.ValueOf(rec).Elem()
	t := v.Type()

	var tsRecvField *rowField
	var discriminators []rowField
	var payload []rowField
	var bookLevels []rowField

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Name == "Header" {
			continue
		}
		name := csvTagOrName(f)
		switch {
		case f.Name == "TsRecv":
			rf := rowField{key: name, kind: kindTimestamp, raw: fv.Uint()}
			tsRecvField = &rf
		case fv.Type() == bidAskPairType:
			bookLevels = append(bookLevels, flattenBidAskPair(fv.Interface().(BidAskPair), 0)...)
		case fv.Type() == consolidatedBidAskPairType:
			bookLevels = append(bookLevels, flattenConsolidatedBidAskPair(fv.Interface().(ConsolidatedBidAskPair), 0)...)
		case fv.Kind() == reflect.Array && fv.Type().Elem() == bidAskPairType:
			for j := 0; j < fv.Len(); j++ {
				bookLevels = append(bookLevels, flattenBidAskPair(fv.Index(j).Interface().(BidAskPair), j)...)
			}
		case discriminatorFieldNames[f.Name]:
			discriminators = append(discriminators, scalarRowField(name, f.Name, fv))
		default:
			payload = append(payload, scalarRowField(name, f.Name, fv))
		}
	}

	out := make([]rowField, 0, 5+len(discriminators)+len(payload)+len(bookLevels))
	if tsRecvField != nil {
		out = append(out, *tsRecvField)
	}
	out = append(out,
		rowField{key: "ts_event", kind: kindTimestamp, raw: header.TsEvent},
		rowField{key: "rtype", kind: kindString, raw: header.RType.String()},
		rowField{key: "publisher_id", kind: kindUint32, raw: uint64(header.PublisherID)},
		rowField{key: "instrument_id", kind: kindUint32, raw: uint64(header.InstrumentID)},
	)
	out = append(out, discriminators...)
	out = append(out, payload...)
	out = append(out, bookLevels...)
	return out
}

func csvTagOrName(f reflect.StructField) string {
	if tag := f.Tag.Get("csv"); tag != "" {
		return tag
	}
	return f.Name
}

func scalarRowField(name, fieldName string, fv reflect.Value) rowField {
	switch fv.Kind() {
	case reflect.Int64:
		if pxFieldNames[fieldName] {
			return rowField{key: name, kind: kindPrice, raw: fv.Int()}
		}
		return rowField{key: name, kind: kindInt64String, raw: fv.Int()}
	case reflect.Uint64:
		if tsFieldNames[fieldName] {
			return rowField{key: name, kind: kindTimestamp, raw: fv.Uint()}
		}
		return rowField{key: name, kind: kindUint64String, raw: fv.Uint()}
	case reflect.Uint32:
		return rowField{key: name, kind: kindUint32, raw: uint64(fv.Uint())}
	case reflect.Int32, reflect.Int16, reflect.Int8:
		return rowField{key: name, kind: kindInt32, raw: fv.Int()}
	case reflect.Uint16:
		return rowField{key: name, kind: kindUint16, raw: uint64(fv.Uint())}
	case reflect.Uint8:
		return rowField{key: name, kind: kindUint8, raw: uint64(fv.Uint())}
	case reflect.String:
		return rowField{key: name, kind: kindString, raw: fv.String()}
	default:
		return rowField{key: name, kind: kindString, raw: fmt.Sprintf("%v", fv.Interface())}
	}
}

func flattenBidAskPair(p BidAskPair, idx int) []rowField {
	suffix := fmt.Sprintf("%02d", idx)
	return []rowField{
		{key: "bid_px_" + suffix, kind: kindPrice, raw: p.BidPx},
		{key: "ask_px_" + suffix, kind: kindPrice, raw: p.AskPx},
		{key: "bid_sz_" + suffix, kind: kindUint32, raw: uint64(p.BidSz)},
		{key: "ask_sz_" + suffix, kind: kindUint32, raw: uint64(p.AskSz)},
		{key: "bid_ct_" + suffix, kind: kindUint32, raw: uint64(p.BidCt)},
		{key: "ask_ct_" + suffix, kind: kindUint32, raw: uint64(p.AskCt)},
	}
}

func flattenConsolidatedBidAskPair(p ConsolidatedBidAskPair, idx int) []rowField {
	suffix := fmt.Sprintf("%02d", idx)
	return []rowField{
		{key: "bid_px_" + suffix, kind: kindPrice, raw: p.BidPx},
		{key: "ask_px_" + suffix, kind: kindPrice, raw: p.AskPx},
		{key: "bid_sz_" + suffix, kind: kindUint32, raw: uint64(p.BidSz)},
		{key: "ask_sz_" + suffix, kind: kindUint32, raw: uint64(p.AskSz)},
		{key: "bid_pb_" + suffix, kind: kindUint16, raw: uint64(p.BidPb)},
		{key: "ask_pb_" + suffix, kind: kindUint16, raw: uint64(p.AskPb)},
	}
}

// recordIndexTs extracts a record's IndexTs(), falling back to the header's
// ts_event for types that (unusually) don't implement it.
func recordIndexTs(rec any, header *RHeader) uint64 {
	if r, ok := rec.(interface{ IndexTs() uint64 }); ok {
		return r.IndexTs()
	}
	return header.TsEvent
}
