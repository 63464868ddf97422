// Package lcgviz holds helpers shared by the lcgviz front ends.
package lcgviz

import (
	"encoding/json"
	"io"
	"sync"
)

// SyncWriter serializes writes so that every Write reaches w whole.
type SyncWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func (w *SyncWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// NewSyncWriter create a new SyncWriter
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

// MessageWriter writes one JSON document per Write call, for message based
// transports where each Write is a frame.
type MessageWriter struct {
	w io.Writer
}

// NewMessageWriter wraps w, usually a SyncWriter.
func NewMessageWriter(w io.Writer) *MessageWriter {
	return &MessageWriter{w: w}
}

// WriteMessage marshals v and writes it with a single Write.
func (m *MessageWriter) WriteMessage(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = m.w.Write(b)
	return err
}
