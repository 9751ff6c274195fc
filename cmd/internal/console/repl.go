package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const prompt = "> "

// REPL feeds lines from In to an Interpreter and prints the responses to
// Out until "exit", "quit" or end of input.
type REPL struct {
	Interpreter *Interpreter
	In          io.Reader
	Out         io.Writer
	// Prompt controls whether "> " is printed before each read.
	Prompt bool
}

func (r *REPL) Run() error {
	if err := r.writeLine(Line{Text: WelcomeMessage, Kind: Normal}); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r.In)
	for {
		if r.Prompt {
			if _, err := io.WriteString(r.Out, prompt); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "exit", "quit":
			return nil
		}

		resp := r.Interpreter.Execute(input)
		for _, line := range resp.Lines {
			// the terminal already shows what was typed
			if line.Kind == Command {
				continue
			}
			if err := r.writeLine(line); err != nil {
				return err
			}
		}
	}
}

func (r *REPL) writeLine(line Line) error {
	var err error
	if line.Kind == Error {
		_, err = fmt.Fprintf(r.Out, "[error] %s\n", line.Text)
	} else {
		_, err = fmt.Fprintln(r.Out, line.Text)
	}
	return err
}
