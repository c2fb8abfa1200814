package console

import (
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OlaoluwaM/scaffy/pkg/logger"
	"github.com/OlaoluwaM/scaffy/pkg/tty"
)

var spinnerLog = logger.New("console:spinner")

type spinnerMessageMsg string

type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerMessageMsg:
		m.message = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.message
}

// SpinnerWrapper shows an animated spinner on stderr while a long running
// step (package manager, downloads) is in progress. It is a no-op when
// stderr is not a terminal or accessible mode is on.
type SpinnerWrapper struct {
	enabled bool
	message string

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewSpinner creates a spinner showing message. Call Start and Stop.
func NewSpinner(message string) *SpinnerWrapper {
	enabled := tty.IsStderrTerminal() && !IsAccessibleMode()
	spinnerLog.Printf("Creating spinner: enabled=%v, message=%q", enabled, message)
	return &SpinnerWrapper{enabled: enabled, message: message}
}

// IsEnabled reports whether the spinner animates.
func (s *SpinnerWrapper) IsEnabled() bool {
	return s.enabled
}

// Start begins the animation. Calling Start twice is harmless.
func (s *SpinnerWrapper) Start() {
	if !s.enabled {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != nil {
		return
	}

	model := spinnerModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(infoStyle)),
		message: s.message,
	}
	s.program = tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	s.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		if _, err := p.Run(); err != nil {
			spinnerLog.Printf("Spinner program exited with error: %v", err)
		}
	}(s.program, s.done)
}

// UpdateMessage replaces the text shown next to the spinner.
func (s *SpinnerWrapper) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	if s.program != nil {
		s.program.Send(spinnerMessageMsg(message))
	}
}

// Stop ends the animation and clears the spinner line.
func (s *SpinnerWrapper) Stop() {
	s.mu.Lock()
	program, done := s.program, s.done
	s.program, s.done = nil, nil
	s.mu.Unlock()

	if program == nil {
		return
	}
	program.Send(spinnerStopMsg{})
	<-done
}
