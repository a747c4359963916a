package dbn

import "io"

// SinkBuilder constructs the Visitor that will receive a Transcoder's
// decoded records, given the stream's Metadata. It's deferred rather than
// supplied up front because some sinks need fields only Metadata carries -
// an Encoder needs SymbolCstrLen/version to size variable-length records,
// and a text encoder's map_symbols option needs a TsSymbolMap built from
// Metadata.Mappings.
type SinkBuilder func(m *Metadata) (Visitor, error)

// Transcoder is a push-buffer pipeline per spec §4.11: the caller feeds raw
// bytes of arbitrary granularity via Feed, and Poll makes incremental
// progress - parsing Metadata, then framing and re-encoding each record
// through the sink built by build - without ever blocking on I/O itself.
// This reuses AsyncDecoder's cooperative-suspension framing/dispatch rather
// than re-implementing incremental parsing a second time.
type Transcoder struct {
	decoder *AsyncDecoder
	lazy    *lazySinkVisitor
}

// NewTranscoder creates a Transcoder whose sink is constructed by build once
// the input stream's Metadata has been parsed.
func NewTranscoder(build SinkBuilder) *Transcoder {
	decoder := NewAsyncDecoder(nil)
	lazy := &lazySinkVisitor{build: build, decoder: decoder}
	decoder.visitor = lazy
	return &Transcoder{decoder: decoder, lazy: lazy}
}

// Feed appends newly-arrived input bytes. Bytes belonging to a not-yet-
// complete record or metadata prologue are held until a later Feed supplies
// the rest, per spec §4.11's incremental-input requirement.
func (t *Transcoder) Feed(b []byte) {
	t.decoder.Feed(b)
}

// Poll drives the transcode state machine by one step. Callers should loop
// calling Poll until it returns AsyncNeedMoreData or AsyncNeedMetadata, Feed
// more bytes, and resume - mirroring AsyncDecoder's own contract.
func (t *Transcoder) Poll() (AsyncState, error) {
	state := t.decoder.Poll()
	if state == AsyncError {
		return state, t.decoder.Err()
	}
	return state, nil
}

// Flush finalizes the sink: it signals end-of-stream and closes any
// underlying zstd frame the sink opened. Call once the source is exhausted
// and Poll has drained every buffered byte.
func (t *Transcoder) Flush() error {
	if err := t.lazy.ensure(); err != nil {
		return err
	}
	if err := t.lazy.inner.OnStreamEnd(); err != nil {
		return err
	}
	if closer, ok := t.lazy.inner.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// lazySinkVisitor defers building the real sink Visitor until Metadata is
// available, forwarding every call to it afterward. It reads Metadata
// straight off decoder rather than waiting for Transcoder.Poll to cache it,
// since AsyncDecoder sets its own Metadata before dispatching the first
// record of the same Poll call that just parsed it.
type lazySinkVisitor struct {
	build   SinkBuilder
	decoder *AsyncDecoder
	inner   Visitor
	err     error
}

func (l *lazySinkVisitor) ensure() error {
	if l.inner != nil || l.err != nil {
		return l.err
	}
	v, err := l.build(l.decoder.Metadata())
	if err != nil {
		l.err = err
		return err
	}
	l.inner = v
	return nil
}

func (l *lazySinkVisitor) OnMbp0(r *Mbp0Msg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnMbp0(r)
}
func (l *lazySinkVisitor) OnMbp1(r *Mbp1Msg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnMbp1(r)
}
func (l *lazySinkVisitor) OnMbp10(r *Mbp10Msg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnMbp10(r)
}
func (l *lazySinkVisitor) OnCmbp1(r *Cmbp1Msg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnCmbp1(r)
}
func (l *lazySinkVisitor) OnBbo(r *BboMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnBbo(r)
}
func (l *lazySinkVisitor) OnCbbo(r *CbboMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnCbbo(r)
}
func (l *lazySinkVisitor) OnMbo(r *MboMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnMbo(r)
}
func (l *lazySinkVisitor) OnOhlcv(r *OhlcvMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnOhlcv(r)
}
func (l *lazySinkVisitor) OnImbalance(r *ImbalanceMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnImbalance(r)
}
func (l *lazySinkVisitor) OnStatMsg(r *StatMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnStatMsg(r)
}
func (l *lazySinkVisitor) OnStatusMsg(r *StatusMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnStatusMsg(r)
}
func (l *lazySinkVisitor) OnInstrumentDefMsg(r *InstrumentDefMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnInstrumentDefMsg(r)
}
func (l *lazySinkVisitor) OnErrorMsg(r *ErrorMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnErrorMsg(r)
}
func (l *lazySinkVisitor) OnSystemMsg(r *SystemMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnSystemMsg(r)
}
func (l *lazySinkVisitor) OnSymbolMappingMsg(r *SymbolMappingMsg) error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnSymbolMappingMsg(r)
}
func (l *lazySinkVisitor) OnStreamEnd() error {
	if err := l.ensure(); err != nil {
		return err
	}
	return l.inner.OnStreamEnd()
}

///////////////////////////////////////////////////////////////////////////////

// encoderVisitor adapts Encoder to the Visitor interface so a binary-output
// Transcoder can drive it as a sink, re-encoding decoded records back to DBN
// wire bytes.
type encoderVisitor struct {
	enc     *Encoder
	cstrLen int
	isV3    bool
}

// NewEncoderVisitor wraps enc as a Visitor. cstrLen and isV3 come from the
// source stream's Metadata (SymbolCstrLen and VersionNum == 3) and size the
// variable-length SymbolMappingMsg/InstrumentDefMsg records.
func NewEncoderVisitor(enc *Encoder, cstrLen int, isV3 bool) Visitor {
	return &encoderVisitor{enc: enc, cstrLen: cstrLen, isV3: isV3}
}

func (v *encoderVisitor) OnMbp0(r *Mbp0Msg) error       { return WriteRecord[Mbp0Msg](v.enc, r) }
func (v *encoderVisitor) OnMbp1(r *Mbp1Msg) error       { return WriteRecord[Mbp1Msg](v.enc, r) }
func (v *encoderVisitor) OnMbp10(r *Mbp10Msg) error     { return WriteRecord[Mbp10Msg](v.enc, r) }
func (v *encoderVisitor) OnCmbp1(r *Cmbp1Msg) error     { return WriteRecord[Cmbp1Msg](v.enc, r) }
func (v *encoderVisitor) OnBbo(r *BboMsg) error         { return WriteRecord[BboMsg](v.enc, r) }
func (v *encoderVisitor) OnCbbo(r *CbboMsg) error       { return WriteRecord[CbboMsg](v.enc, r) }
func (v *encoderVisitor) OnMbo(r *MboMsg) error         { return WriteRecord[MboMsg](v.enc, r) }
func (v *encoderVisitor) OnOhlcv(r *OhlcvMsg) error     { return WriteRecord[OhlcvMsg](v.enc, r) }
func (v *encoderVisitor) OnImbalance(r *ImbalanceMsg) error {
	return WriteRecord[ImbalanceMsg](v.enc, r)
}
func (v *encoderVisitor) OnStatMsg(r *StatMsg) error     { return WriteRecord[StatMsg](v.enc, r) }
func (v *encoderVisitor) OnStatusMsg(r *StatusMsg) error { return WriteRecord[StatusMsg](v.enc, r) }
func (v *encoderVisitor) OnInstrumentDefMsg(r *InstrumentDefMsg) error {
	return WriteInstrumentDefRecord(v.enc, r, v.cstrLen, v.isV3)
}
func (v *encoderVisitor) OnErrorMsg(r *ErrorMsg) error   { return WriteRecord[ErrorMsg](v.enc, r) }
func (v *encoderVisitor) OnSystemMsg(r *SystemMsg) error { return WriteRecord[SystemMsg](v.enc, r) }
func (v *encoderVisitor) OnSymbolMappingMsg(r *SymbolMappingMsg) error {
	return WriteSymbolMappingRecord(v.enc, r, v.cstrLen)
}
func (v *encoderVisitor) OnStreamEnd() error { return nil }

// Close finalizes the underlying Encoder's zstd frame, if any.
func (v *encoderVisitor) Close() error { return v.enc.Close() }

var _ io.Closer = (*encoderVisitor)(nil)
