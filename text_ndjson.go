package dbn

import (
	"bytes"
	"io"
	"strconv"

	sjson "github.com/segmentio/encoding/json"
)

// NdjsonOptions configures NdjsonEncoder's rendering per spec §4.8.
type NdjsonOptions struct {
	PrettyPx   bool
	PrettyTs   bool
	MapSymbols bool
	SymbolMap  SymbolMapper
}

// NdjsonEncoder writes one decoded record per line as a JSON object, flattening
// the record header into top-level fields and rendering 64-bit integers as
// JSON strings to avoid float64 precision loss in downstream consumers.
type NdjsonEncoder struct {
	w    io.Writer
	opts NdjsonOptions
}

func NewNdjsonEncoder(w io.Writer, opts NdjsonOptions) *NdjsonEncoder {
	return &NdjsonEncoder{w: w, opts: opts}
}

func (e *NdjsonEncoder) emit(rec any, header *RHeader) error {
	fields := recordRowFields(rec, header)
	if e.opts.MapSymbols && e.opts.SymbolMap != nil {
		if symbol, ok := e.opts.SymbolMap.GetForRecord(recordIndexTs(rec, header), header.InstrumentID); ok {
			fields = append(fields, rowField{key: "symbol", kind: kindString, raw: symbol})
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := sjson.Marshal(f.key)
		if err != nil {
			return err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := sjson.Marshal(e.jsonValue(f))
		if err != nil {
			return err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	buf.WriteByte('\n')
	_, err := e.w.Write(buf.Bytes())
	return err
}

// jsonValue renders a rowField per the encoder's pretty_px/pretty_ts options.
// 64-bit fields always marshal as strings, per spec §4.8, whether or not
// pretty-printed.
func (e *NdjsonEncoder) jsonValue(f rowField) any {
	switch f.kind {
	case kindPrice:
		px := f.raw.(int64)
		if e.opts.PrettyPx {
			return FormatPrice(px)
		}
		return formatInt64(px)
	case kindTimestamp:
		ts := f.raw.(uint64)
		if e.opts.PrettyTs {
			return FormatTimestamp(ts)
		}
		return formatUint64(ts)
	case kindInt64String:
		return formatInt64(f.raw.(int64))
	case kindUint64String:
		return formatUint64(f.raw.(uint64))
	case kindUint32, kindUint16, kindUint8:
		return f.raw.(uint64)
	case kindInt32:
		return f.raw.(int64)
	default:
		return f.raw
	}
}

func (e *NdjsonEncoder) OnMbp0(record *Mbp0Msg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnMbp1(record *Mbp1Msg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnMbp10(record *Mbp10Msg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnCmbp1(record *Cmbp1Msg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnBbo(record *BboMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnCbbo(record *CbboMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnMbo(record *MboMsg) error { return e.emit(record, &record.Header) }

func (e *NdjsonEncoder) OnOhlcv(record *OhlcvMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnImbalance(record *ImbalanceMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnStatMsg(record *StatMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnStatusMsg(record *StatusMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnInstrumentDefMsg(record *InstrumentDefMsg) error {
	return e.emit(record, &record.Header)
}

func (e *NdjsonEncoder) OnErrorMsg(record *ErrorMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnSystemMsg(record *SystemMsg) error { return e.emit(record, &record.Header) }
func (e *NdjsonEncoder) OnSymbolMappingMsg(record *SymbolMappingMsg) error {
	return e.emit(record, &record.Header)
}

func (e *NdjsonEncoder) OnStreamEnd() error { return nil }

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
