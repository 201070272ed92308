package web

import (
	"encoding/json"

	"github.com/aymanmw1/streetlight/internal/status"
)

func formatJSON(snap status.Snapshot) []byte {
	data, _ := json.MarshalIndent(status.ToJSON(snap, "", ""), "", "  ")
	return data
}
