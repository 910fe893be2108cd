package logger

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// queueDepth absorbs detection bursts; a full queue drops entries
	// rather than blocking a request path on disk.
	queueDepth    = 4096
	flushInterval = time.Second
)

// FileWriter appends log entries to a file from a dedicated goroutine.
// Write never blocks and never returns an error; entries that do not fit
// the queue are counted as dropped.
type FileWriter struct {
	buf     *bufio.Writer
	file    *os.File
	queue   chan []byte
	quit    chan struct{}
	closing sync.Once
	wg      sync.WaitGroup
	dropped atomic.Int64
}

func NewFileWriter(path string, bufferSize int) (*FileWriter, error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	w := &FileWriter{
		buf:   bufio.NewWriterSize(file, bufferSize),
		file:  file,
		queue: make(chan []byte, queueDepth),
		quit:  make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	entry := make([]byte, len(p))
	copy(entry, p)

	select {
	case w.queue <- entry:
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped reports how many entries were discarded because the queue was
// full.
func (w *FileWriter) Dropped() int64 {
	return w.dropped.Load()
}

func (w *FileWriter) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case entry := <-w.queue:
			_, _ = w.buf.Write(entry)
		case <-ticker.C:
			_ = w.buf.Flush()
		case <-w.quit:
			w.drain()
			return
		}
	}
}

func (w *FileWriter) drain() {
	for {
		select {
		case entry := <-w.queue:
			_, _ = w.buf.Write(entry)
		default:
			_ = w.buf.Flush()
			return
		}
	}
}

// Close drains queued entries, flushes the buffer and closes the file.
func (w *FileWriter) Close() error {
	w.closing.Do(func() {
		close(w.quit)
	})
	w.wg.Wait()
	return w.file.Close()
}
