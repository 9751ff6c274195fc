package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREPL_Session(t *testing.T) {
	var out bytes.Buffer
	repl := &REPL{
		Interpreter: NewInterpreter(seededStore(t)),
		In:          strings.NewReader("help\nlist\n\nstats\nsearch cardio\nsearch xyz\nfoo\nclear\nexit\nlist\n"),
		Out:         &out,
	}

	require.NoError(t, repl.Run())

	g := goldie.New(t)
	g.Assert(t, "session", out.Bytes())
}

func TestREPL_EndsOnEOF(t *testing.T) {
	var out bytes.Buffer
	repl := &REPL{
		Interpreter: NewInterpreter(newTestStore(t)),
		In:          strings.NewReader("list"),
		Out:         &out,
		Prompt:      true,
	}

	require.NoError(t, repl.Run())
	assert.Equal(t, WelcomeMessage+"\n> No appointments scheduled.\n> ", out.String())
}
