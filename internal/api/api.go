package api

import (
	"errors"
	"log/slog"
)

// API runs the subsystems that expose the calculator, an error from
// any of them is surfaced on Errors.
type API struct {
	subsystems []Subsystem
	errors     chan error
}

func New() *API {
	return &API{
		errors: make(chan error, 1),
	}
}

func (a *API) String() string {
	return "api"
}

func (a *API) AddSubsystem(subsystem Subsystem) {
	a.subsystems = append(a.subsystems, subsystem)
}

func (a *API) Subsystems() []Subsystem {
	return a.subsystems
}

func (a *API) Start() error {
	for _, subsystem := range a.subsystems {
		slog.Info("starting api subsystem", "subsystem", subsystem, "addr", subsystem.Addr())
		go subsystem.Start(a.errors)
	}

	return nil
}

// Stop stops every subsystem, failures do not prevent the remaining
// subsystems from being stopped.
func (a *API) Stop() error {
	var errs []error
	for _, subsystem := range a.subsystems {
		if err := subsystem.Stop(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (a *API) Errors() <-chan error {
	return a.errors
}

// Addr returns the address of the first subsystem, or the empty
// string when there is none.
func (a *API) Addr() string {
	if len(a.subsystems) == 0 {
		return ""
	}
	return a.subsystems[0].Addr()
}
