package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/canndrew/unwrap/pkg/unwrap"
)

// Scenario kinds. Everything except "ok" dies with a banner.
const (
	kindOk         = "ok"
	kindResultErr  = "result-err"
	kindResultOk   = "result-ok"
	kindOptionNone = "option-none"
)

// Scenario describes one demo run: which value shape to build and how to
// unwrap it.
type Scenario struct {
	ID      string `toml:"id"`
	Name    string `toml:"name"`
	Kind    string `toml:"kind"`
	Message string `toml:"message"` // optional; printed verbatim under the call site
	Payload string `toml:"payload"` // the value carried by the shape
}

type scenarioFile struct {
	Scenarios []Scenario `toml:"scenario"`
}

func builtinScenarios() []Scenario {
	return []Scenario{
		{ID: uuid.NewString(), Name: "ok", Kind: kindOk, Payload: "all fine"},
		{ID: uuid.NewString(), Name: "missing-value", Kind: kindOptionNone, Message: "Oh no! 123"},
		{ID: uuid.NewString(), Name: "failed-result", Kind: kindResultErr, Payload: "disk on fire"},
		{ID: uuid.NewString(), Name: "unexpected-success", Kind: kindResultOk, Payload: "should have failed"},
	}
}

// loadScenarios reads extra scenarios from a TOML file, validates them and
// fills in missing identifiers.
func loadScenarios(path string) ([]Scenario, error) {
	var f scenarioFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i)
		}
		if err := validKind(s.Kind); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		} else if _, err := uuid.Parse(s.ID); err != nil {
			return nil, fmt.Errorf("scenario %q: bad id: %w", s.Name, err)
		}
	}
	return f.Scenarios, nil
}

func validKind(kind string) error {
	switch kind {
	case kindOk, kindResultErr, kindResultOk, kindOptionNone:
		return nil
	}
	return fmt.Errorf("unknown kind %q", kind)
}

// run executes the scenario through the library's real entry points.
func (s Scenario) run() {
	switch s.Kind {
	case kindResultErr:
		r := unwrap.Err[string, string](s.Payload)
		if s.Message != "" {
			r.Unwrapf("%s", s.Message)
		} else {
			r.Unwrap()
		}
	case kindResultOk:
		r := unwrap.Ok[string, string](s.Payload)
		if s.Message != "" {
			r.UnwrapErrf("%s", s.Message)
		} else {
			r.UnwrapErr()
		}
	case kindOptionNone:
		o := unwrap.None[string]()
		if s.Message != "" {
			o.Unwrapf("%s", s.Message)
		} else {
			o.Unwrap()
		}
	default:
		fmt.Println(unwrap.Ok[string, string](s.Payload).Unwrap())
	}
}
