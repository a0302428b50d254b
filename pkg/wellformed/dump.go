package wellformed

import (
	"github.com/yesoreyeram/dcgo/pkg/store"
	"github.com/yesoreyeram/dcgo/pkg/symbol"
)

// DumpSucc is a JSON-serializable rendering of a store.Succ.
type DumpSucc struct {
	Target      string `json:"target"`
	Effect      string `json:"effect"`
	Dirty       bool   `json:"dirty"`
	WitnessKind string `json:"witness_kind"`
}

// DumpEntry is a JSON-serializable rendering of one (location, node) pair.
type DumpEntry struct {
	Location  string     `json:"location"`
	Kind      string     `json:"kind"`
	HasResult bool       `json:"has_result,omitempty"`
	Succs     []DumpSucc `json:"succs,omitempty"`
	PredCount int        `json:"pred_count,omitempty"`
}

// Dump renders every (location, node) pair in st to a value safe to pass
// to encoding/json.Marshal, for the WriteDCG diagnostic sink and the /dcg
// HTTP handler.
func Dump(st *store.Store) []DumpEntry {
	entries := make([]DumpEntry, 0, st.Len())

	st.Range(func(loc symbol.Location, node *store.Node) bool {
		entry := DumpEntry{
			Location:  loc.String(),
			Kind:      node.Kind.String(),
			PredCount: len(node.Preds),
		}
		if node.Kind == store.KindComp {
			entry.HasResult = node.HasResult
			entry.Succs = make([]DumpSucc, 0, len(node.Succs))
			for _, s := range node.Succs {
				entry.Succs = append(entry.Succs, DumpSucc{
					Target:      s.Target.String(),
					Effect:      s.Effect.String(),
					Dirty:       s.Dirty,
					WitnessKind: witnessKindString(s.Witness.Kind),
				})
			}
		}
		entries = append(entries, entry)
		return true
	})

	return entries
}

func witnessKindString(k store.WitnessKind) string {
	switch k {
	case store.NoDependency:
		return "no_dependency"
	case store.AllocDependency:
		return "alloc_dependency"
	case store.ProducerDependency:
		return "producer_dependency"
	default:
		return "unknown"
	}
}
