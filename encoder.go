package dbn

import (
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"
)

// EncoderMode selects whether an Encoder writes a self-describing DBN stream
// (Metadata followed by records) or a bare fragment (records only, no
// Metadata) per spec §4.7. Fragment consumers must be told the wire version
// and ts_out flag out of band, since nothing in the fragment itself carries
// them.
type EncoderMode int

const (
	EncodeFullStream EncoderMode = iota
	EncodeFragment
)

// Encoder serializes decoded records back to DBN wire bytes, the inverse of
// DbnScanner/AsyncDecoder. A single Encoder instance is single-use: in
// EncodeFullStream mode WriteMetadata must be called exactly once before any
// record is written.
type Encoder struct {
	w               io.Writer
	mode            EncoderMode
	metadataWritten bool
	zstdWriter      *zstd.Encoder
}

// NewEncoder wraps w for uncompressed output.
func NewEncoder(w io.Writer, mode EncoderMode) *Encoder {
	return &Encoder{w: w, mode: mode}
}

// NewZstdEncoder wraps w in a single zstd frame with the frame checksum
// enabled, per spec §4.7. Close must be called to finalize the frame.
func NewZstdEncoder(w io.Writer, mode EncoderMode) (*Encoder, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderCRC(true))
	if err != nil {
		return nil, err
	}
	return &Encoder{w: zw, mode: mode, zstdWriter: zw}, nil
}

// Close finalizes the underlying zstd frame, if any, flushing all buffered
// output. Encoders constructed with NewEncoder need not be closed.
func (e *Encoder) Close() error {
	if e.zstdWriter != nil {
		return e.zstdWriter.Close()
	}
	return nil
}

// WriteMetadata writes m as the stream's Metadata prologue. Only valid in
// EncodeFullStream mode, and only once.
func (e *Encoder) WriteMetadata(m *Metadata) error {
	if e.mode != EncodeFullStream {
		return ErrEncode
	}
	if e.metadataWritten {
		return ErrEncode
	}
	e.metadataWritten = true
	return m.Write(e.w)
}

// fixedRecord constrains a record pointer type to the subset of RecordPtr
// whose WriteRaw takes only a destination buffer — every record type except
// SymbolMappingMsg and InstrumentDefMsg, whose wire size depends on a
// caller-supplied cstr width and aren't expressible with a single buffer
// size derived from RSize() alone.
type fixedRecord[T any] interface {
	*T
	RSize() uint16
	WriteRaw([]byte) error
}

// WriteRecord encodes rec and writes it to e. This is a plain function (not
// a method) because methods cannot be generic, mirroring
// JsonScannerDecode's shape on the decode side.
func WriteRecord[T any, RP fixedRecord[T]](e *Encoder, rec RP) error {
	size := int(rec.RSize())
	buf := make([]byte, size)
	if err := rec.WriteRaw(buf); err != nil {
		return err
	}
	_, err := e.w.Write(buf)
	return err
}

// WriteSymbolMappingRecord encodes a SymbolMappingMsg using cstrLen for its
// StypeInSymbol/StypeOutSymbol width, matching the stream's
// Metadata.SymbolCstrLen. The stype_in/stype_out bytes are always written
// (v2+ wire layout); WriteRaw is the authority on the buffer's exact size.
func WriteSymbolMappingRecord(e *Encoder, rec *SymbolMappingMsg, cstrLen int) error {
	size := RHeader_Size + 2*(1+cstrLen) + 16
	buf := make([]byte, size)
	if err := rec.WriteRaw(buf, cstrLen); err != nil {
		return err
	}
	_, err := e.w.Write(buf)
	return err
}

// WriteInstrumentDefRecord encodes an InstrumentDefMsg using rawSymbolLen
// for RawSymbol's width and isV3 to select the narrower wire-version-3
// field set.
func WriteInstrumentDefRecord(e *Encoder, rec *InstrumentDefMsg, rawSymbolLen int, isV3 bool) error {
	size := InstrumentDefMsgSize(rawSymbolLen, isV3)
	buf := make([]byte, size)
	if err := rec.WriteRaw(buf, rawSymbolLen, isV3); err != nil {
		return err
	}
	_, err := e.w.Write(buf)
	return err
}

///////////////////////////////////////////////////////////////////////////////

// Byte offsets of Metadata's start/end/limit fields, counted from the
// beginning of the metadata block (MetadataPrefix + the fixed header's
// DatasetRaw + Schema). Identical across wire versions 1-3: all three share
// the same leading layout up through these three fields.
const (
	metadataStartOffset = Metadata_PrefixSize + Metadata_DatasetCstrLen + 2 // +2: Schema
	metadataEndOffset   = metadataStartOffset + 8
	metadataLimitOffset = metadataEndOffset + 8
)

// PatchMetadata rewrites the start/end/limit fields of an already-encoded
// DBN stream in place, per spec §4.7: "all other metadata fields are
// immutable." A nil pointer leaves that field unchanged. w must be seekable
// and must not be the zstd-compressed form of the stream (compressed frames
// cannot be patched in place).
func PatchMetadata(w io.WriteSeeker, start, end, limit *uint64) error {
	if start != nil {
		if err := patchUint64At(w, metadataStartOffset, *start); err != nil {
			return err
		}
	}
	if end != nil {
		if err := patchUint64At(w, metadataEndOffset, *end); err != nil {
			return err
		}
	}
	if limit != nil {
		if err := patchUint64At(w, metadataLimitOffset, *limit); err != nil {
			return err
		}
	}
	return nil
}

func patchUint64At(w io.WriteSeeker, offset int64, v uint64) error {
	if _, err := w.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}
