package kernel

import (
	"strconv"
	"sync"
	"time"
)

// Entity ids are derived from the creation timestamp so they sort in
// creation order. The guard bumps the value when two entities are created
// within the same millisecond; ids are never reused.
var idMu sync.Mutex
var lastID int64

// NextEntityID returns a monotonic millisecond-derived id string.
func NextEntityID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}
