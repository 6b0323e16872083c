// Package debuglog is an opt-in file logger. Standard output belongs to the
// animation, so diagnostics only go to a file named on the command line.
package debuglog

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger *log.Logger
)

// Open starts appending to the file at path. The returned closer stops
// logging and closes the file.
func Open(path string) (io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	SetOutput(file)
	return closerFunc(func() error {
		SetOutput(nil)
		return file.Close()
	}), nil
}

// SetOutput directs log lines to w; nil disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		logger = nil
		return
	}
	logger = log.New(w, "", log.LstdFlags|log.Lmicroseconds)
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logger != nil
}

func Printf(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		logger.Printf(format, v...)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
