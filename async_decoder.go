package dbn

import "bytes"

// AsyncState reports what Poll accomplished.
type AsyncState int

const (
	// AsyncNeedMoreData means Feed must be called again before Poll can
	// produce another record.
	AsyncNeedMoreData AsyncState = iota
	// AsyncDispatched means a record was decoded and handed to the Visitor.
	AsyncDispatched
	// AsyncNeedMetadata means the stream's Metadata hasn't been parsed yet
	// and Feed needs to deliver enough bytes for it.
	AsyncNeedMetadata
	// AsyncError means decoding failed; see AsyncDecoder.Err.
	AsyncError
)

// AsyncDecoder is a cooperative-suspension DBN decoder: it never blocks and
// never spawns a goroutine. A caller owning its own I/O loop (an event loop,
// a network read callback) pushes bytes in via Feed and repeatedly calls
// Poll until it returns AsyncNeedMoreData, exactly mirroring how DbnScanner
// works against a blocking io.Reader but without ever calling Read itself.
// Safe to abandon mid-stream: dropping an AsyncDecoder after a partial Feed
// leaves no goroutine or background resource to clean up.
type AsyncDecoder struct {
	frames        *FrameReader
	metadata      *Metadata
	metadataBuf   []byte
	visitor       Visitor
	err           error
	upgradePolicy VersionUpgradePolicy
}

// NewAsyncDecoder creates an AsyncDecoder that dispatches decoded records to
// visitor. The default VersionUpgradePolicy is Upgrade.
func NewAsyncDecoder(visitor Visitor) *AsyncDecoder {
	return &AsyncDecoder{
		frames:        NewFrameReader(),
		visitor:       visitor,
		upgradePolicy: Upgrade,
	}
}

// SetUpgradePolicy overrides the default Upgrade policy.
func (d *AsyncDecoder) SetUpgradePolicy(policy VersionUpgradePolicy) {
	d.upgradePolicy = policy
}

// Err returns the error that put the decoder into AsyncError state, if any.
func (d *AsyncDecoder) Err() error {
	return d.err
}

// Metadata returns the stream's Metadata once parsed, or nil.
func (d *AsyncDecoder) Metadata() *Metadata {
	return d.metadata
}

// Feed appends newly-arrived bytes for the decoder to work with on the next
// Poll call. It never blocks and never reads from any I/O source itself.
func (d *AsyncDecoder) Feed(b []byte) {
	if d.metadata == nil {
		d.metadataBuf = append(d.metadataBuf, b...)
		return
	}
	d.frames.Feed(b)
}

// Poll attempts to make one unit of progress: parsing the Metadata prologue,
// or framing and dispatching one record. It returns immediately with
// AsyncNeedMoreData/AsyncNeedMetadata if there isn't enough buffered data,
// rather than blocking for more.
func (d *AsyncDecoder) Poll() AsyncState {
	if d.err != nil {
		return AsyncError
	}
	if d.metadata == nil {
		return d.pollMetadata()
	}

	record, state := d.frames.TryFrame()
	switch state {
	case FrameNeedMoreData:
		return AsyncNeedMoreData
	case FrameMalformed:
		d.err = ErrMalformedRecord
		return AsyncError
	}

	targetVersion := ApplyUpgradePolicy(d.upgradePolicy, d.metadata.VersionNum, MaxSupportedVersion)
	if err := dispatchRawVisitor(record, d.metadata.VersionNum, targetVersion, d.visitor); err != nil {
		d.err = err
		return AsyncError
	}
	return AsyncDispatched
}

// pollMetadata attempts to parse the buffered prologue as a Metadata header.
// Metadata is variable-length but self-describing (an 8-byte prefix names
// its own remaining length), so this peeks at the prefix before committing
// to a read of the full header.
func (d *AsyncDecoder) pollMetadata() AsyncState {
	if len(d.metadataBuf) < Metadata_PrefixSize {
		return AsyncNeedMetadata
	}
	prefixLen := int(uint32(d.metadataBuf[4]) | uint32(d.metadataBuf[5])<<8 | uint32(d.metadataBuf[6])<<16 | uint32(d.metadataBuf[7])<<24)
	total := Metadata_PrefixSize + prefixLen
	if len(d.metadataBuf) < total {
		return AsyncNeedMetadata
	}

	m, err := ReadMetadata(bytes.NewReader(d.metadataBuf[:total]))
	if err != nil {
		d.err = err
		return AsyncError
	}
	d.metadata = m
	d.frames.Feed(d.metadataBuf[total:])
	d.metadataBuf = nil
	return d.Poll()
}

// dispatchRawVisitor decodes one framed raw record and dispatches it to v,
// for AsyncDecoder.Poll (DbnScanner.Visit has its own dispatch switch). originVersion is
// the stream's declared wire version (DBN records carry no per-record
// version tag); targetVersion is the version ApplyUpgradePolicy resolved
// the record should be treated as, and drives which Upgrade* transform (if
// any) runs between Fill_Raw and the Visitor call.
func dispatchRawVisitor(raw []byte, originVersion uint8, targetVersion uint8, v Visitor) error {
	if len(raw) <= RHeader_Size {
		return ErrNoRecord
	}
	switch rtype := RType(raw[1]); rtype {
	case RType_Mbp0:
		r := Mbp0Msg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnMbp0(&r)
	case RType_Mbp1:
		r := Mbp1Msg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnMbp1(&r)
	case RType_Mbp10:
		r := Mbp10Msg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnMbp10(&r)
	case RType_Cmbp1:
		r := Cmbp1Msg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnCmbp1(&r)
	case RType_Bbo1S, RType_Bbo1M:
		r := BboMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnBbo(&r)
	case RType_Cbbo1S, RType_Cbbo1M, RType_Tcbbo:
		r := CbboMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnCbbo(&r)
	case RType_Mbo:
		r := MboMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnMbo(&r)
	case RType_Ohlcv1S, RType_Ohlcv1M, RType_Ohlcv1H, RType_Ohlcv1D, RType_OhlcvEod, RType_OhlcvDeprecated:
		r := OhlcvMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnOhlcv(&r)
	case RType_Imbalance:
		r := ImbalanceMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnImbalance(&r)
	case RType_Statistics:
		r := StatMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnStatMsg(&r)
	case RType_Status:
		r := StatusMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		return v.OnStatusMsg(&r)
	case RType_InstrumentDef:
		r := InstrumentDefMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		UpgradeInstrumentDef(&r, targetVersion)
		return v.OnInstrumentDefMsg(&r)
	case RType_Error:
		r := ErrorMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		UpgradeError(&r, originVersion, targetVersion)
		return v.OnErrorMsg(&r)
	case RType_SymbolMapping:
		r := SymbolMappingMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		UpgradeSymbolMapping(&r, originVersion, targetVersion)
		return v.OnSymbolMappingMsg(&r)
	case RType_System:
		r := SystemMsg{}
		if err := r.Fill_Raw(raw); err != nil {
			return err
		}
		UpgradeSystem(&r, originVersion, targetVersion)
		return v.OnSystemMsg(&r)
	default:
		return ErrUnknownRType
	}
}
