package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ParseIDs collects the numeric URL parameters named id0, id1, ... in order.
// Routes declare them as {id0}, {id1} so nested resources line up with the
// slice indexes handlers receive.
func ParseIDs(r *http.Request) ([]uint, bool) {
	var ids []uint
	for i := 0; ; i++ {
		raw := chi.URLParam(r, fmt.Sprintf("id%d", i))
		if raw == "" {
			return ids, true
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, uint(id))
	}
}
