package writer

// MemWriter captures container bytes in memory. Used by tests and by
// callers that post-process the encoded buffer before it reaches disk.
type MemWriter struct {
	Buf []byte
}

// WriteFile copies the provided buffer into the writer.
func (w *MemWriter) WriteFile(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
