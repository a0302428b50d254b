package wellformed

import (
	"encoding/json"
	"os"

	"github.com/yesoreyeram/dcgo/pkg/store"
)

// WriteFile serializes Dump(st) as indented JSON to path, overwriting
// whatever was there. Used as the diagnostic sink backing a client's
// WriteDCG configuration flag.
func WriteFile(path string, st *store.Store) error {
	data, err := json.MarshalIndent(Dump(st), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
