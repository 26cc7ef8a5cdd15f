package game

import (
	"fmt"

	"gridcast/internal/config"
)

// Env is the value handed to back end factories.
type Env struct {
	Session *Session
	Options *config.Options
}

// EnvFrom accepts either an Env or a bare *Session. Options default to
// config.NewOptions when absent.
func EnvFrom(v any) (Env, error) {
	var env Env
	switch v := v.(type) {
	case Env:
		env = v
	case *Env:
		if v != nil {
			env = *v
		}
	case *Session:
		env.Session = v
	}
	if env.Session == nil {
		return Env{}, fmt.Errorf("back end needs a game session, got %T", v)
	}
	if env.Options == nil {
		env.Options = config.NewOptions()
	}
	return env, nil
}
