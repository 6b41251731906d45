package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	WarningLog = log.New(io.Discard, "", 0)
	InfoLog    = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
	DebugLog   = log.New(io.Discard, "", 0)
)

var debugEnabled = os.Getenv("DEBUG") == "true" || os.Getenv("DEBUG") == "1"

var logFileName = filepath.Join(os.TempDir(), "worldheight.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up logging.
// defer Close() after calling this function. Output goes to a file in the os temp
// directory; stderr is used when the file cannot be opened.
func Initialize(daemon bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		SetOutput(os.Stderr, daemon)
		fmt.Fprintf(os.Stderr, "Warning: using stderr for logging: %v\n", err)
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	SetOutput(f, daemon)
	globalLogFile = f
}

// SetOutput points every logger at w. The host process tags its lines with [HOST].
func SetOutput(w io.Writer, daemon bool) {
	fmtS := "%s"
	if daemon {
		fmtS = "[HOST] %s"
	}
	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(w, fmt.Sprintf(fmtS, "INFO:"), flags)
	WarningLog = log.New(w, fmt.Sprintf(fmtS, "WARNING:"), flags)
	ErrorLog = log.New(w, fmt.Sprintf(fmtS, "ERROR:"), flags)
	if debugEnabled {
		DebugLog = log.New(w, fmt.Sprintf(fmtS, "DEBUG:"), flags)
	} else {
		DebugLog = log.New(io.Discard, "", 0)
	}
}

func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	if debugEnabled {
		fmt.Fprintln(os.Stderr, "wrote logs to "+logFileName)
	}
}

// Every is used to log at most once every timeout duration. It is safe for
// concurrent use.
type Every struct {
	mu      sync.Mutex
	timeout time.Duration
	last    time.Time
	now     func() time.Time
}

func NewEvery(timeout time.Duration) *Every {
	return &Every{timeout: timeout, now: time.Now}
}

// ShouldLog returns true if the timeout has passed since the last log.
func (e *Every) ShouldLog() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	if !e.last.IsZero() && now.Sub(e.last) < e.timeout {
		return false
	}
	e.last = now
	return true
}

// IsDebugEnabled returns true if debug logging is enabled.
func IsDebugEnabled() bool {
	return debugEnabled
}
