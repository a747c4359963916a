// Copyright (c) 2024 Neomantra Corp

package dbn

// Visitor receives decoded records from a DbnScanner or JsonScanner as they
// are read, one callback per record type. OnStreamEnd is called once by
// Transcoder.Flush after the final record; DbnScanner, JsonScanner and
// AsyncDecoder never call it themselves.
type Visitor interface {
	OnMbp0(record *Mbp0Msg) error
	OnMbp1(record *Mbp1Msg) error
	OnMbp10(record *Mbp10Msg) error
	OnCmbp1(record *Cmbp1Msg) error
	OnBbo(record *BboMsg) error
	OnCbbo(record *CbboMsg) error
	OnMbo(record *MboMsg) error

	OnOhlcv(record *OhlcvMsg) error
	OnImbalance(record *ImbalanceMsg) error
	OnStatMsg(record *StatMsg) error
	OnStatusMsg(record *StatusMsg) error
	OnInstrumentDefMsg(record *InstrumentDefMsg) error

	OnErrorMsg(record *ErrorMsg) error
	OnSystemMsg(record *SystemMsg) error
	OnSymbolMappingMsg(record *SymbolMappingMsg) error

	OnStreamEnd() error
}
