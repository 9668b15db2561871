// Package envtest provides a fake environment for tests
// of code that reads environment variables through injected functions.
package envtest

import "fmt"

// Empty is an environment with no variables.
var Empty Env

// Env is a fake environment.
// A nil Env is empty.
type Env map[string]string

// Pairs builds an environment from alternating keys and values.
// There must be an even number of items.
func Pairs(pairs ...string) (Env, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%d items in environment are not even", len(pairs))
	}

	env := make(Env, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		env[pairs[i]] = pairs[i+1]
	}
	return env, nil
}

// MustPairs is like Pairs but panics on error.
func MustPairs(pairs ...string) Env {
	env, err := Pairs(pairs...)
	if err != nil {
		panic(err)
	}
	return env
}

// Getenv is an analog for os.Getenv.
func (e Env) Getenv(k string) string {
	return e[k]
}

// LookupEnv is an analog for os.LookupEnv.
func (e Env) LookupEnv(k string) (string, bool) {
	v, ok := e[k]
	return v, ok
}
