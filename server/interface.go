/*
Package server exposes a Trie to another process over a msgpack request/response stream.

Requests and responses are msgpack maps written back to back on the stream, typically
stdin and stdout. The server first writes a response with status "ready", then answers
each request in order:

	{"id": "q1", "op": "add", "ws": ["orca", "orco", "oro"]}
	{"id": "q2", "op": "complete", "w": "or"}
	{"id": "q3", "op": "approx", "w": "orcas", "r": 0.5}

	{"id": "q2", "status": "ok", "words": ["orca", "orco", "oro"], "c": 3, "t": 12}
	{"id": "q3", "status": "ok", "found": true, "match": {"s": "accepted", "w": "orca", ...}, "t": 9}

Supported ops are add, exact, complete, approx, len and health. "t" is the handling time
in microseconds.
*/
package server

// Request is a single operation on the trie.
type Request struct {
	ID    string   `msgpack:"id"`
	Op    string   `msgpack:"op"`
	Word  string   `msgpack:"w,omitempty"`
	Words []string `msgpack:"ws,omitempty"`
	// Ratio and MinMatched override the server defaults for approx.
	Ratio      *float64 `msgpack:"r,omitempty"`
	MinMatched *int     `msgpack:"m,omitempty"`
}

// Approximation is the wire form of an approximate lookup result.
type Approximation struct {
	Status   string  `msgpack:"s"`
	Query    string  `msgpack:"q"`
	Word     string  `msgpack:"w,omitempty"`
	Original string  `msgpack:"o,omitempty"`
	Matched  int     `msgpack:"n"`
	Coverage float64 `msgpack:"cov"`
}

// Response answers one Request.
type Response struct {
	ID        string         `msgpack:"id"`
	Status    string         `msgpack:"status"`
	Found     bool           `msgpack:"found,omitempty"`
	Words     []string       `msgpack:"words,omitempty"`
	Count     int            `msgpack:"c,omitempty"`
	Match     *Approximation `msgpack:"match,omitempty"`
	Error     string         `msgpack:"e,omitempty"`
	TimeTaken int64          `msgpack:"t"`
}

const (
	statusReady = "ready"
	statusOK    = "ok"
	statusError = "error"
)
