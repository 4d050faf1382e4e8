package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Log lines are self-contained JSON objects carrying their own ts field, so
// the standard logger's prefix is disabled once rather than per call.
var disableLogPrefix = sync.OnceFunc(func() { log.SetFlags(0) })

// logJSON emits one structured log line on stdout. Pipeline events are never
// silently swallowed; non-fatal failures surface here.
func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal service log: %v", err)
		return
	}
	disableLogPrefix()
	log.Println(string(b))
}
