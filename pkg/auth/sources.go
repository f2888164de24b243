package auth

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// EnvAccessToken is the environment variable holding the access token
const EnvAccessToken = "FOLLOWAUDIT_ACCESS_TOKEN"

// StaticSource returns a token known up front, such as a flag value
type StaticSource struct {
	name  string
	token string
}

// NewStaticSource creates a source returning token
func NewStaticSource(name, token string) *StaticSource {
	return &StaticSource{name: name, token: token}
}

func (s *StaticSource) Name() string { return s.name }

// Token returns the configured token
func (s *StaticSource) Token() (string, error) {
	if s.token == "" {
		return "", ErrCredentialsNotFound
	}
	return s.token, nil
}

// EnvironmentSource reads the token from an environment variable
type EnvironmentSource struct {
	variable string
}

// NewEnvironmentSource creates a source reading variable, or
// FOLLOWAUDIT_ACCESS_TOKEN when variable is empty
func NewEnvironmentSource(variable string) *EnvironmentSource {
	if variable == "" {
		variable = EnvAccessToken
	}
	return &EnvironmentSource{variable: variable}
}

func (e *EnvironmentSource) Name() string { return "env:" + e.variable }

// Token reads the environment variable
func (e *EnvironmentSource) Token() (string, error) {
	token := os.Getenv(e.variable)
	if token == "" {
		return "", ErrCredentialsNotFound
	}
	return token, nil
}

// PromptSource asks for the token on the terminal without echoing it
type PromptSource struct {
	in     *os.File
	out    io.Writer
	prompt string

	// overridable in tests
	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// NewPromptSource creates a source prompting on in and writing the prompt
// to out
func NewPromptSource(in *os.File, out io.Writer) *PromptSource {
	return &PromptSource{
		in:           in,
		out:          out,
		prompt:       "Threads access token: ",
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

func (p *PromptSource) Name() string { return "prompt" }

// Token reads one hidden line. It returns ErrNotInteractive when in is not
// a terminal so scripted runs never block.
func (p *PromptSource) Token() (string, error) {
	fd := int(p.in.Fd())
	if !p.isTerminal(fd) {
		return "", ErrNotInteractive
	}

	fmt.Fprint(p.out, p.prompt)
	token, err := p.readPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read access token: %w", err)
	}
	if len(token) == 0 {
		return "", ErrCredentialsNotFound
	}
	return string(token), nil
}
