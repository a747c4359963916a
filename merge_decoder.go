package dbn

import (
	"container/heap"
	"context"
	"errors"
	"io"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ErrIncompatibleMerge is returned by NewMergeDecoder when inputs don't
// share a dataset or wire version, per spec §4.10.
var ErrIncompatibleMerge = errors.New("dbn: merge inputs have incompatible dataset or version")

// indexTsVisitor captures the IndexTs() of whichever record DbnScanner.Visit
// dispatches to. Reusing Visit instead of re-switching on RType avoids a
// third copy of the per-record-type dispatch (DbnScanner.Visit and
// AsyncDecoder's dispatchRawVisitor already each have one).
type indexTsVisitor struct {
	ts uint64
}

func (v *indexTsVisitor) OnMbp0(r *Mbp0Msg) error               { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnMbp1(r *Mbp1Msg) error               { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnMbp10(r *Mbp10Msg) error             { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnCmbp1(r *Cmbp1Msg) error             { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnBbo(r *BboMsg) error                 { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnCbbo(r *CbboMsg) error               { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnMbo(r *MboMsg) error                 { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnOhlcv(r *OhlcvMsg) error             { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnImbalance(r *ImbalanceMsg) error     { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnStatMsg(r *StatMsg) error            { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnStatusMsg(r *StatusMsg) error        { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnInstrumentDefMsg(r *InstrumentDefMsg) error {
	v.ts = r.IndexTs()
	return nil
}
func (v *indexTsVisitor) OnErrorMsg(r *ErrorMsg) error                 { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnSystemMsg(r *SystemMsg) error               { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnSymbolMappingMsg(r *SymbolMappingMsg) error { v.ts = r.IndexTs(); return nil }
func (v *indexTsVisitor) OnStreamEnd() error                           { return nil }

type mergeHeapItem struct {
	index int
	ts    uint64
}

// mergeHeap orders inputs by (index_ts, input_index), the priority spec
// §4.10 specifies for deterministic tie-breaking.
type mergeHeap []mergeHeapItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].ts != h[j].ts {
		return h[i].ts < h[j].ts
	}
	return h[i].index < h[j].index
}
func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x any)   { *h = append(*h, x.(mergeHeapItem)) }
func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// MergeDecoder performs a k-way merge of multiple DBN inputs that share a
// dataset, yielding records in nondecreasing index-timestamp order, per
// spec §4.10.
type MergeDecoder struct {
	Metadata *Metadata
	scanners []*DbnScanner
	heap     mergeHeap
}

// NewMergeDecoder opens every reader, reading their metadata concurrently
// (there's no ordering dependency between inputs' metadata reads), validates
// they share a dataset and wire version, and merges their metadata per
// spec §4.10's union rules.
func NewMergeDecoder(ctx context.Context, readers []io.Reader) (*MergeDecoder, error) {
	if len(readers) == 0 {
		return nil, ErrIncompatibleMerge
	}

	scanners := make([]*DbnScanner, len(readers))
	metas := make([]*Metadata, len(readers))
	g, _ := errgroup.WithContext(ctx)
	for i, r := range readers {
		i, r := i, r
		g.Go(func() error {
			scanners[i] = NewDbnScanner(r)
			m, err := scanners[i].Metadata()
			metas[i] = m
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i := 1; i < len(metas); i++ {
		if metas[i].Dataset != metas[0].Dataset || metas[i].VersionNum != metas[0].VersionNum {
			return nil, ErrIncompatibleMerge
		}
	}

	md := &MergeDecoder{
		Metadata: mergeMetadata(metas),
		scanners: scanners,
	}
	for i := range scanners {
		if err := md.advance(i); err != nil {
			return nil, err
		}
	}
	heap.Init(&md.heap)
	return md, nil
}

// advance reads input i's next record (if any) and pushes its index
// timestamp onto the merge heap.
func (md *MergeDecoder) advance(i int) error {
	if !md.scanners[i].Next() {
		if err := md.scanners[i].Error(); err != nil && err != io.EOF {
			return err
		}
		return nil
	}
	var iv indexTsVisitor
	if err := md.scanners[i].Visit(&iv); err != nil {
		return err
	}
	heap.Push(&md.heap, mergeHeapItem{index: i, ts: iv.ts})
	return nil
}

// Next dispatches the next record in merged order to visitor and advances
// that record's input. Returns false once every input is exhausted.
func (md *MergeDecoder) Next(visitor Visitor) (bool, error) {
	if md.heap.Len() == 0 {
		return false, nil
	}
	item := heap.Pop(&md.heap).(mergeHeapItem)
	if err := md.scanners[item.index].Visit(visitor); err != nil {
		return false, err
	}
	if err := md.advance(item.index); err != nil {
		return false, err
	}
	return true, nil
}

///////////////////////////////////////////////////////////////////////////////

func mergeMetadata(metas []*Metadata) *Metadata {
	base := *metas[0]
	for _, m := range metas[1:] {
		if m.Start < base.Start {
			base.Start = m.Start
		}
		if m.End > base.End {
			base.End = m.End
		}
		if m.Limit > base.Limit {
			base.Limit = m.Limit
		}
		base.Symbols = unionStrings(base.Symbols, m.Symbols)
		base.Partial = unionStrings(base.Partial, m.Partial)
		base.NotFound = unionStrings(base.NotFound, m.NotFound)
		base.Mappings = mergeSymbolMappings(base.Mappings, m.Mappings)
	}
	return &base
}

// unionStrings concatenates a and b, deduplicating while preserving the
// first-seen order, per spec §4.10.
func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, lists := range [][]string{a, b} {
		for _, s := range lists {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// mergeSymbolMappings merges two mapping tables keyed by RawSymbol,
// concatenating each shared symbol's intervals and then normalizing
// (sorting by start date) per spec §4.10.
func mergeSymbolMappings(a, b []SymbolMapping) []SymbolMapping {
	indexOf := make(map[string]int, len(a))
	out := make([]SymbolMapping, 0, len(a)+len(b))
	for _, m := range a {
		indexOf[m.RawSymbol] = len(out)
		out = append(out, m)
	}
	for _, m := range b {
		if idx, ok := indexOf[m.RawSymbol]; ok {
			out[idx].Intervals = append(out[idx].Intervals, m.Intervals...)
		} else {
			indexOf[m.RawSymbol] = len(out)
			out = append(out, m)
		}
	}
	for i := range out {
		sort.Slice(out[i].Intervals, func(x, y int) bool {
			return out[i].Intervals[x].StartDate < out[i].Intervals[y].StartDate
		})
	}
	return out
}
