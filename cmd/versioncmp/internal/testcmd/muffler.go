package testcmd

import "bytes"

// muffledWriter eats certain log messages to reduce noise in the test output
type muffledWriter struct {
	*bytes.Buffer
}

func (m muffledWriter) Write(p []byte) (int, error) {
	for _, prefix := range []string{
		"Loaded filter from: ",
	} {
		if bytes.HasPrefix(p, []byte(prefix)) {
			return len(p), nil
		}
	}

	return m.Buffer.Write(p)
}

func newMuffledWriter() muffledWriter {
	return muffledWriter{Buffer: &bytes.Buffer{}}
}
