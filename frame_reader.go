package dbn

// MAX_RECORD_LEN is the largest possible record size in bytes: the length
// byte is a count of 4-byte words, so 255*4.
const MAX_RECORD_LEN = 255 * 4

// FrameState reports what FrameReader.Feed/TryFrame accomplished on the last
// call, so callers with no goroutines to block in can poll cooperatively.
type FrameState int

const (
	// FrameNeedMoreData means the buffered bytes don't yet contain a full
	// record; call Feed again with more input before retrying TryFrame.
	FrameNeedMoreData FrameState = iota
	// FrameReady means TryFrame returned a complete record's raw bytes.
	FrameReady
	// FrameMalformed means the declared record length was out of bounds.
	FrameMalformed
)

// FrameReader incrementally reassembles length-prefixed DBN records from an
// arbitrarily fragmented byte stream without blocking: callers push bytes in
// via Feed and pull framed records out via TryFrame, suspending and resuming
// across calls instead of yielding control to a blocking read. This is the
// byte-framing logic DbnScanner.Next uses against a blocking io.Reader,
// generalized so AsyncDecoder can drive the same logic against a
// caller-fed buffer.
type FrameReader struct {
	buf []byte
}

// NewFrameReader creates an empty FrameReader.
func NewFrameReader() *FrameReader {
	return &FrameReader{buf: make([]byte, 0, DEFAULT_DECODE_BUFFER_SIZE)}
}

// Feed appends newly-arrived bytes to the reader's internal buffer.
func (f *FrameReader) Feed(b []byte) {
	f.buf = append(f.buf, b...)
}

// Buffered returns the number of bytes currently held, unframed.
func (f *FrameReader) Buffered() int {
	return len(f.buf)
}

// TryFrame attempts to extract one complete record from the buffered bytes.
// On FrameReady, the returned slice aliases the reader's internal buffer and
// is only valid until the next Feed/TryFrame call; callers that need to keep
// it must copy. On FrameNeedMoreData, no bytes are consumed. On
// FrameMalformed, the stream cannot be recovered without reframing.
func (f *FrameReader) TryFrame() ([]byte, FrameState) {
	if len(f.buf) < 1 {
		return nil, FrameNeedMoreData
	}
	recordLen := 4 * int(f.buf[0])
	if recordLen < RHeader_Size || recordLen > MAX_RECORD_LEN {
		return nil, FrameMalformed
	}
	if len(f.buf) < recordLen {
		return nil, FrameNeedMoreData
	}
	record := f.buf[:recordLen]
	f.buf = f.buf[recordLen:]
	return record, FrameReady
}
