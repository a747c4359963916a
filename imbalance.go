package dbn

import (
	"encoding/binary"

	"github.com/valyala/fastjson"
)

// ImbalanceMsg is an auction-imbalance record (the Imbalance schema).
type ImbalanceMsg struct {
	Header               RHeader `json:"hd" csv:"hd"`
	TsRecv               uint64  `json:"ts_recv" csv:"ts_recv"`
	RefPrice              int64   `json:"ref_price" csv:"ref_price"`
	AuctionTime           uint64  `json:"auction_time" csv:"auction_time"`
	ContBookClrPrice      int64   `json:"cont_book_clr_price" csv:"cont_book_clr_price"`
	AuctInterestClrPrice  int64   `json:"auct_interest_clr_price" csv:"auct_interest_clr_price"`
	SsrFillingPrice       int64   `json:"ssr_filling_price" csv:"ssr_filling_price"`
	IndMatchPrice         int64   `json:"ind_match_price" csv:"ind_match_price"`
	UpperCollar           int64   `json:"upper_collar" csv:"upper_collar"`
	LowerCollar           int64   `json:"lower_collar" csv:"lower_collar"`
	PairedQty             uint32  `json:"paired_qty" csv:"paired_qty"`
	TotalImbalanceQty     uint32  `json:"total_imbalance_qty" csv:"total_imbalance_qty"`
	MarketImbalanceQty    uint32  `json:"market_imbalance_qty" csv:"market_imbalance_qty"`
	UnpairedQty           uint32  `json:"unpaired_qty" csv:"unpaired_qty"`
	AuctionType           uint8   `json:"auction_type" csv:"auction_type"`
	Side                  uint8   `json:"side" csv:"side"`
	AuctionStatus         uint8   `json:"auction_status" csv:"auction_status"`
	FreezeStatus          uint8   `json:"freeze_status" csv:"freeze_status"`
	NumExtensions         uint8   `json:"num_extensions" csv:"num_extensions"`
	UnpairedSide          uint8   `json:"unpaired_side" csv:"unpaired_side"`
	SignificantImbalance  uint8   `json:"significant_imbalance" csv:"significant_imbalance"`
}

const ImbalanceMsg_Size = RHeader_Size + 96

func (*ImbalanceMsg) RType() RType { return RType_Imbalance }
func (*ImbalanceMsg) RSize() uint16 { return ImbalanceMsg_Size }
func (r *ImbalanceMsg) IndexTs() uint64 {
	if r.TsRecv != 0 {
		return r.TsRecv
	}
	return r.Header.TsEvent
}

func (r *ImbalanceMsg) Fill_Raw(b []byte) error {
	if len(b) < ImbalanceMsg_Size {
		return unexpectedBytesError(len(b), ImbalanceMsg_Size)
	}
	if err := FillRHeader_Raw(b[0:RHeader_Size], &r.Header); err != nil {
		return err
	}
	body := b[RHeader_Size:]
	r.TsRecv = binary.LittleEndian.Uint64(body[0:8])
	r.RefPrice = int64(binary.LittleEndian.Uint64(body[8:16]))
	r.AuctionTime = binary.LittleEndian.Uint64(body[16:24])
	r.ContBookClrPrice = int64(binary.LittleEndian.Uint64(body[24:32]))
	r.AuctInterestClrPrice = int64(binary.LittleEndian.Uint64(body[32:40]))
	r.SsrFillingPrice = int64(binary.LittleEndian.Uint64(body[40:48]))
	r.IndMatchPrice = int64(binary.LittleEndian.Uint64(body[48:56]))
	r.UpperCollar = int64(binary.LittleEndian.Uint64(body[56:64]))
	r.LowerCollar = int64(binary.LittleEndian.Uint64(body[64:72]))
	r.PairedQty = binary.LittleEndian.Uint32(body[72:76])
	r.TotalImbalanceQty = binary.LittleEndian.Uint32(body[76:80])
	r.MarketImbalanceQty = binary.LittleEndian.Uint32(body[80:84])
	r.UnpairedQty = binary.LittleEndian.Uint32(body[84:88])
	r.AuctionType = body[88]
	r.Side = body[89]
	r.AuctionStatus = body[90]
	r.FreezeStatus = body[91]
	r.NumExtensions = body[92]
	r.UnpairedSide = body[93]
	r.SignificantImbalance = body[94]
	return nil
}

func (r *ImbalanceMsg) Fill_Json(val *fastjson.Value, header *RHeader) error {
	r.Header = *header
	r.TsRecv = fastjson_GetUint64FromString(val, "ts_recv")
	r.RefPrice = fastjson_GetInt64FromString(val, "ref_price")
	r.AuctionTime = fastjson_GetUint64FromString(val, "auction_time")
	r.ContBookClrPrice = fastjson_GetInt64FromString(val, "cont_book_clr_price")
	r.AuctInterestClrPrice = fastjson_GetInt64FromString(val, "auct_interest_clr_price")
	r.SsrFillingPrice = fastjson_GetInt64FromString(val, "ssr_filling_price")
	r.IndMatchPrice = fastjson_GetInt64FromString(val, "ind_match_price")
	r.UpperCollar = fastjson_GetInt64FromString(val, "upper_collar")
	r.LowerCollar = fastjson_GetInt64FromString(val, "lower_collar")
	r.PairedQty = uint32(val.GetUint("paired_qty"))
	r.TotalImbalanceQty = uint32(val.GetUint("total_imbalance_qty"))
	r.MarketImbalanceQty = uint32(val.GetUint("market_imbalance_qty"))
	r.UnpairedQty = uint32(val.GetUint("unpaired_qty"))
	r.AuctionType = uint8(val.GetUint("auction_type"))
	r.Side = uint8(val.GetUint("side"))
	r.AuctionStatus = uint8(val.GetUint("auction_status"))
	r.FreezeStatus = uint8(val.GetUint("freeze_status"))
	r.NumExtensions = uint8(val.GetUint("num_extensions"))
	r.UnpairedSide = uint8(val.GetUint("unpaired_side"))
	r.SignificantImbalance = uint8(val.GetUint("significant_imbalance"))
	return nil
}

func (r *ImbalanceMsg) WriteRaw(b []byte) error {
	if len(b) < ImbalanceMsg_Size {
		return unexpectedBytesError(len(b), ImbalanceMsg_Size)
	}
	writeRHeaderRaw(b[0:RHeader_Size], &r.Header, ImbalanceMsg_Size/4)
	body := b[RHeader_Size:]
	binary.LittleEndian.PutUint64(body[0:8], r.TsRecv)
	binary.LittleEndian.PutUint64(body[8:16], uint64(r.RefPrice))
	binary.LittleEndian.PutUint64(body[16:24], r.AuctionTime)
	binary.LittleEndian.PutUint64(body[24:32], uint64(r.ContBookClrPrice))
	binary.LittleEndian.PutUint64(body[32:40], uint64(r.AuctInterestClrPrice))
	binary.LittleEndian.PutUint64(body[40:48], uint64(r.SsrFillingPrice))
	binary.LittleEndian.PutUint64(body[48:56], uint64(r.IndMatchPrice))
	binary.LittleEndian.PutUint64(body[56:64], uint64(r.UpperCollar))
	binary.LittleEndian.PutUint64(body[64:72], uint64(r.LowerCollar))
	binary.LittleEndian.PutUint32(body[72:76], r.PairedQty)
	binary.LittleEndian.PutUint32(body[76:80], r.TotalImbalanceQty)
	binary.LittleEndian.PutUint32(body[80:84], r.MarketImbalanceQty)
	binary.LittleEndian.PutUint32(body[84:88], r.UnpairedQty)
	body[88] = r.AuctionType
	body[89] = r.Side
	body[90] = r.AuctionStatus
	body[91] = r.FreezeStatus
	body[92] = r.NumExtensions
	body[93] = r.UnpairedSide
	body[94] = r.SignificantImbalance
	return nil
}
