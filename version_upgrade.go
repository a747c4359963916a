package dbn

// This file holds the per-type transforms dispatchRawVisitor/DbnScanner.Visit
// apply after Fill_Raw and before handing a record to its Visitor, once the
// target version has been resolved via ApplyUpgradePolicy. Upgrades only
// ever go from an older wire version to a newer one; downgrading is not
// supported, matching the closed set of transformations named for
// VersionUpgradePolicy.
//
// Most record types carry identical semantics across wire versions and need
// no transformation. The exceptions are InstrumentDefMsg (four fields
// dropped going to v3) and the control records SymbolMappingMsg/ErrorMsg/
// SystemMsg, whose fixed-width wire fields (stype_in/stype_out, code,
// is_last) simply didn't exist on v1 - each type's Fill_Raw leaves them at
// their Go zero value when decoding a v1 record, and the corresponding
// Upgrade* function here fills in the v2+ sentinel once a caller asks for
// v2+ semantics explicitly.
func UpgradeInstrumentDef(r *InstrumentDefMsg, targetVersion uint8) {
	if targetVersion < HeaderVersion3 {
		return
	}
	r.TradingReferencePrice = 0
	r.TradingReferenceDate = 0
	r.SettlPriceType = 0
	r.MdSecurityTradingStatus = 0
}

// UpgradeSymbolMapping fills in the stype_in/stype_out fields v1 lacked when
// upgrading to v2+, per the v1->v2 rule: both are set to SType_Unknown
// (0xFF) since the wire concept didn't exist in v1. Since SymbolMappingMsg
// already stores its strings as Go strings (not fixed-width byte arrays)
// after decode, there is nothing to truncate or pad for the cstr fields;
// upgrading only affects the width used when the record is re-encoded (see
// SymbolMappingMsg.WriteRaw's cstrLen parameter).
func UpgradeSymbolMapping(r *SymbolMappingMsg, fromVersion uint8, toVersion uint8) {
	if fromVersion >= HeaderVersion2 || toVersion < HeaderVersion2 {
		return
	}
	r.StypeIn = SType_Unknown
	r.StypeOut = SType_Unknown
}

// UpgradeError fills in the code/is_last values that wire version 1 lacked
// when upgrading to version 2+, per the v1->v2 rule: `is_last=1`, `code=0xFF`
// for records that originated on a version that didn't carry those fields.
func UpgradeError(r *ErrorMsg, fromVersion uint8, toVersion uint8) {
	if fromVersion >= HeaderVersion2 || toVersion < HeaderVersion2 {
		return
	}
	r.Code = 0xFF
	r.IsLast = 1
}

// UpgradeSystem fills in the code value that wire version 1 lacked when
// upgrading to version 2+, mirroring UpgradeError: `code=0xFF` for records
// that originated on a version that didn't carry the field.
func UpgradeSystem(r *SystemMsg, fromVersion uint8, toVersion uint8) {
	if fromVersion >= HeaderVersion2 || toVersion < HeaderVersion2 {
		return
	}
	r.Code = 0xFF
}

// ApplyUpgradePolicy resolves a VersionUpgradePolicy against a record's
// actual origin version and the stream's target version, returning the
// version a record should be treated/re-encoded as.
func ApplyUpgradePolicy(policy VersionUpgradePolicy, originVersion uint8, streamVersion uint8) uint8 {
	switch policy {
	case AsIs:
		return originVersion
	case Upgrade:
		if streamVersion > originVersion {
			return streamVersion
		}
		return originVersion
	default:
		return originVersion
	}
}
