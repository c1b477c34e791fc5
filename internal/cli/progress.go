package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Spinner provides an animated spinner for indeterminate operations
// (database writes, watch mode). In non-TTY mode it prints the message
// once and stays silent.
type Spinner struct {
	message string
	writer  io.Writer
	active  bool
	done    chan struct{}
	mu      sync.Mutex
	frames  []string
	current int
}

// SpinnerFrames are the animation frames for the spinner.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		writer:  os.Stderr,
		frames:  SpinnerFrames,
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if !EnableColors() {
		fmt.Fprintf(s.writer, "%s...\n", s.message)
		return
	}

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.spin()
}

func (s *Spinner) spin() {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			frame := s.frames[s.current%len(s.frames)]
			s.current++
			fmt.Fprintf(s.writer, "\r%s %s", Info(frame), s.message)
			s.mu.Unlock()
		}
	}
}

// Stop ends the animation and prints the final status line.
func (s *Spinner) Stop(ok bool, result string) {
	if !EnableColors() {
		if result != "" {
			fmt.Fprintln(s.writer, result)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		close(s.done)
		s.active = false
	}

	fmt.Fprint(s.writer, "\r\033[K")
	if result == "" {
		return
	}
	if ok {
		fmt.Fprintln(s.writer, Success("✓")+" "+result)
	} else {
		fmt.Fprintln(s.writer, Error("✗")+" "+result)
	}
}
