package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/engcalc/internal/calc"
	"github.com/san-kum/engcalc/internal/config"
	"github.com/san-kum/engcalc/internal/console"
	"github.com/san-kum/engcalc/internal/prompt"
)

const menuTitle = "Engineering Calculation Tool Menu"

type Session struct {
	in       *prompt.Reader
	out      *console.Printer
	cfg      *config.Config
	log      *log.Logger
	registry *Registry
}

func New(r io.Reader, w io.Writer, cfg *config.Config, logger *log.Logger) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New()
		logger.SetOutput(io.Discard)
	}
	return &Session{
		in:       prompt.New(r, w),
		out:      console.New(w),
		cfg:      cfg,
		log:      logger,
		registry: NewRegistry(),
	}
}

func (s *Session) Registry() *Registry {
	return s.registry
}

// RunMenu offers the calculators until the user exits, the input ends or
// ctx is canceled.
func (s *Session) RunMenu(ctx context.Context) error {
	choices := s.registry.Choices()
	list := joinChoices(choices)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.out.Banner(menuTitle)
		for _, c := range s.registry.List() {
			s.out.Printf("%s. %s\n", c.Key, c.Title)
		}
		s.out.Printf("%s. Exit\n", s.registry.ExitKey())

		line, ok := s.in.ReadLine(fmt.Sprintf("Enter your choice (%s): ", list))
		if !ok {
			s.log.Debug("input closed at menu")
			return nil
		}

		choice := strings.TrimSpace(line)
		if choice == s.registry.ExitKey() {
			s.out.Println("Exiting tool. Goodbye!")
			return nil
		}

		c, ok := s.registry.Get(choice)
		if !ok {
			s.out.Printf("Invalid choice. Please select %s.\n", list)
			continue
		}
		s.Run(c)
	}
}

// Run executes one invocation of c. A panic inside c is reported as an
// unexpected error.
func (s *Session) Run(c Calculator) {
	defer func() {
		if r := recover(); r != nil {
			s.reportFault(c.Name, &calc.FaultError{Op: c.Name, Cause: r})
		}
	}()
	s.log.WithField("calculator", c.Name).Debug("dispatch")
	c.Run(s)
}

// RunByName executes a single invocation of the named calculator.
func (s *Session) RunByName(name string) error {
	c, err := s.registry.GetByName(name)
	if err != nil {
		return err
	}
	s.Run(c)
	return nil
}

// reportCalc prints a solve-step error. Division by zero gets divMsg, every
// other error is reported as unexpected.
func (s *Session) reportCalc(name string, err error, divMsg string) {
	if errors.Is(err, calc.ErrDivisionByZero) {
		s.log.WithField("calculator", name).WithError(err).Debug("division by zero")
		s.out.Errorf("%s", divMsg)
		return
	}
	s.reportFault(name, err)
}

func (s *Session) reportFault(name string, err error) {
	s.log.WithField("calculator", name).WithError(err).Error("unexpected fault")
	s.out.Errorf("%s", FaultMessage(err))
}

// CalcErrorMessage returns the text reported for a solve-step error.
func CalcErrorMessage(err error, divMsg string) string {
	if errors.Is(err, calc.ErrDivisionByZero) {
		return divMsg
	}
	return FaultMessage(err)
}

func FaultMessage(err error) string {
	return "An unexpected error occurred: " + faultCause(err)
}

func faultCause(err error) string {
	var fe *calc.FaultError
	if errors.As(err, &fe) {
		return fmt.Sprint(fe.Cause)
	}
	return err.Error()
}

// joinChoices renders ["1","2","3"] as "1, 2, or 3".
func joinChoices(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	case 2:
		return keys[0] + " or " + keys[1]
	}
	return strings.Join(keys[:len(keys)-1], ", ") + ", or " + keys[len(keys)-1]
}
