// Package runtime drives a configured machine over a stream of lines,
// bridging the parsed settings format and the domain core.
package runtime

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/rotary/internal/config"
	"github.com/aretw0/rotary/pkg/domain"
)

// ErrNotConfigured is returned when a message line arrives before any
// settings line has configured the machine.
var ErrNotConfigured = errors.New("no settings line has been applied")

// GroupSize is the conventional output word length.
const GroupSize = 5

// Session owns one machine and applies settings and message lines to it.
type Session struct {
	catalog *domain.Catalog
	machine *domain.Machine
	logger  *slog.Logger
	ready   bool
}

// Option configures a Session.
type Option func(*Session) error

// WithLogger sets a structured logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithTextbookStepping rebuilds the session machine with the textbook
// double-stepping rule instead of the reference one.
func WithTextbookStepping() Option {
	return func(s *Session) error {
		m, err := domain.NewMachineFromCatalog(s.catalog, domain.WithTextbookStepping())
		if err != nil {
			return err
		}
		s.machine = m
		return nil
	}
}

// New creates a session over the given catalog.
func New(catalog *domain.Catalog, opts ...Option) (*Session, error) {
	machine, err := domain.NewMachineFromCatalog(catalog)
	if err != nil {
		return nil, err
	}
	s := &Session{
		catalog: catalog,
		machine: machine,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Machine exposes the underlying machine, mainly for tests and inspection.
func (s *Session) Machine() *domain.Machine { return s.machine }

// Configured reports whether a settings line has been applied.
func (s *Session) Configured() bool { return s.ready }

// Configure applies parsed settings: rotor assignment, wheel positions,
// optional rings, optional plugboard. Rings across the whole catalog are
// reset first, matching the reference machine's global reset.
func (s *Session) Configure(set *config.Settings) error {
	s.machine.ResetRings()
	if err := s.machine.InsertRotors(set.Rotors); err != nil {
		return err
	}
	if err := s.machine.SetRotors(set.Wheels); err != nil {
		return err
	}
	if set.Rings != "" {
		if err := s.machine.SetRings(set.Rings); err != nil {
			return err
		}
	}
	if set.Plugboard != "" {
		perm, err := domain.NewPermutation(set.Plugboard, s.catalog.Alphabet)
		if err != nil {
			return err
		}
		if err := s.machine.SetPlugboard(perm); err != nil {
			return err
		}
	} else if err := s.machine.SetPlugboard(identity(s.catalog.Alphabet)); err != nil {
		return err
	}

	s.ready = true
	s.logger.Debug("Machine configured",
		"rotors", strings.Join(set.Rotors, " "),
		"wheels", set.Wheels,
		"rings", set.Rings,
		"plugboard", set.Plugboard != "")
	return nil
}

func identity(a *domain.Alphabet) *domain.Permutation {
	p, _ := domain.NewPermutation("", a)
	return p
}

// ConvertLine strips whitespace from a message line, converts it, and
// regroups the output five symbols per word.
func (s *Session) ConvertLine(line string) (string, error) {
	if !s.ready {
		return "", ErrNotConfigured
	}
	msg := strings.Join(strings.Fields(line), "")
	out, err := s.machine.Convert(msg)
	if err != nil {
		return "", err
	}
	return Group(out, GroupSize), nil
}

// Process handles one input line. Settings lines reconfigure the machine
// and yield no output; message lines convert. The emit flag reports
// whether the returned string is output.
func (s *Session) Process(line string) (out string, emit bool, err error) {
	if config.IsSettingsLine(line) {
		set, err := config.Parse(line, s.machine.NumRotors())
		if err != nil {
			return "", false, err
		}
		return "", false, s.Configure(set)
	}
	if strings.TrimSpace(line) == "" {
		// Blank message lines pass through untouched.
		if !s.ready {
			return "", false, ErrNotConfigured
		}
		return "", true, nil
	}
	out, err = s.ConvertLine(line)
	if err != nil {
		return "", false, err
	}
	return out, true, nil
}

// Group splits s into space-separated words of n symbols.
func Group(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && i%n == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Describe returns a one-line human summary of the session's catalog, used
// by CLI listings.
func (s *Session) Describe() string {
	return fmt.Sprintf("%d slots, %d pawls, %d rotors, alphabet %s",
		s.catalog.Slots, s.catalog.Pawls, len(s.catalog.Rotors), s.catalog.Alphabet)
}
