// Package symbol manages identifier symbols. Symbols are deduped strings
// represented as small integers, so that AST and LIR nodes can compare
// identifiers with an integer equality check instead of a string compare.
package symbol

import (
	"sync"

	"github.com/grailbio/base/log"
)

// ID represents an interned symbol.
type ID int32

// Invalid is the sentinel returned for the empty symbol.
const Invalid = ID(0)

var table struct {
	mu   sync.RWMutex
	ids  []string       // ID -> name, index 0 is unused
	syms map[string]ID  // name -> ID
}

func init() {
	table.ids = []string{"(invalid)"}
	table.syms = map[string]ID{"(invalid)": Invalid}
}

// Intern finds or creates an ID for the given string. Interning the same
// string twice always yields the same ID.
func Intern(v string) ID {
	if v == "" {
		log.Panicf("symbol: empty name")
	}
	table.mu.RLock()
	id, ok := table.syms[v]
	table.mu.RUnlock()
	if ok {
		return id
	}

	table.mu.Lock()
	defer table.mu.Unlock()
	if id, ok := table.syms[v]; ok {
		return id
	}
	id = ID(len(table.ids))
	table.ids = append(table.ids, v)
	table.syms[v] = id
	return id
}

// Str returns the human-readable name of the symbol.
//
// Note: we don't call it String() since it makes the code deadlock prone
// when used inside fmt.Sprintf under table.mu.
func (id ID) Str() string {
	table.mu.RLock()
	defer table.mu.RUnlock()
	if int(id) >= len(table.ids) {
		log.Panicf("symbol: id %d not found", id)
	}
	return table.ids[id]
}

// IsValid reports whether id was produced by Intern.
func (id ID) IsValid() bool { return id != Invalid }
