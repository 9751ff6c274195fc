// Package console implements the text command console: a stateless
// interpreter over the appointment store and a line-oriented REPL that
// drives it from a terminal.
package console

import (
	"consultas/cmd/internal/domain/entity"
	"consultas/cmd/internal/service"
	"consultas/cmd/internal/utils"
	"fmt"
	"strings"
)

const (
	WelcomeMessage = `Medical scheduling system started. Type "help" for commands.`
	ClearedMessage = `Terminal cleared. Type "help" to see the commands.`
)

type LineKind string

const (
	Normal  LineKind = "normal"
	Command LineKind = "command"
	Error   LineKind = "error"
)

type Line struct {
	Text string   `json:"text"`
	Kind LineKind `json:"kind"`
}

// Response is what a single command produces. When Reset is set the
// caller drops its transcript and shows Lines instead.
type Response struct {
	Lines []Line `json:"lines"`
	Reset bool   `json:"reset"`
}

func (r *Response) add(kind LineKind, format string, args ...any) {
	r.Lines = append(r.Lines, Line{Text: fmt.Sprintf(format, args...), Kind: kind})
}

// AppointmentReader is the read side of service.AppointmentStore.
type AppointmentReader interface {
	All() []entity.Appointment
	Filter(term string) []entity.Appointment
	CountBySpecialty() []service.SpecialtyCount
}

type command struct {
	name        string
	usage       string
	description string
	takesArg    bool
	run         func(i *Interpreter, arg string, resp *Response)
}

// commands is filled in init because help lists the table itself.
var commands []command

func init() {
	commands = []command{
		{name: "help", usage: "help", description: "Show this help", run: (*Interpreter).help},
		{name: "clear", usage: "clear", description: "Clear the terminal", run: (*Interpreter).clear},
		{name: "list", usage: "list", description: "List scheduled appointments", run: (*Interpreter).list},
		{name: "stats", usage: "stats", description: "Show statistics", run: (*Interpreter).stats},
		{name: "search", usage: "search [term]", description: "Search appointments by name or specialty", takesArg: true, run: (*Interpreter).search},
	}
}

type Interpreter struct {
	reader AppointmentReader
}

func NewInterpreter(reader AppointmentReader) *Interpreter {
	return &Interpreter{reader: reader}
}

// Execute runs one command line. It never fails: unknown input produces
// error lines, not an error value.
func (i *Interpreter) Execute(input string) Response {
	input = strings.TrimSpace(input)
	if input == "" {
		return Response{}
	}

	resp := Response{}
	resp.add(Command, "> %s", input)

	verb, arg, _ := strings.Cut(input, " ")
	verb = strings.ToLower(verb)
	arg = strings.TrimSpace(arg)

	for _, cmd := range commands {
		if cmd.name != verb || (arg != "" && !cmd.takesArg) {
			continue
		}
		cmd.run(i, arg, &resp)
		return resp
	}

	resp.add(Error, `Unrecognized command: "%s"`, input)
	resp.add(Normal, `Type "help" to see the available commands`)
	return resp
}

func (i *Interpreter) help(_ string, resp *Response) {
	resp.add(Normal, "Available commands:")
	for _, cmd := range commands {
		resp.add(Normal, "%s - %s", cmd.usage, cmd.description)
	}
}

func (i *Interpreter) clear(_ string, resp *Response) {
	*resp = Response{Reset: true}
	resp.add(Normal, ClearedMessage)
}

func (i *Interpreter) list(_ string, resp *Response) {
	appts := i.reader.All()
	if len(appts) == 0 {
		resp.add(Normal, "No appointments scheduled.")
		return
	}

	resp.add(Normal, "Scheduled appointments (%d):", len(appts))
	addAppointmentLines(resp, appts)
}

func (i *Interpreter) stats(_ string, resp *Response) {
	counts := i.reader.CountBySpecialty()
	resp.add(Normal, "System statistics:")
	resp.add(Normal, "Total appointments: %d", service.TotalCount(counts))
	resp.add(Normal, "Appointments by specialty:")
	for _, sc := range counts {
		resp.add(Normal, "- %s: %d", sc.Specialty, sc.Count)
	}
}

func (i *Interpreter) search(term string, resp *Response) {
	if term == "" {
		resp.add(Error, "Usage: search <term>")
		return
	}

	found := i.reader.Filter(term)
	if len(found) == 0 {
		resp.add(Error, `No appointments found for "%s"`, term)
		return
	}

	resp.add(Normal, "Search results (%d):", len(found))
	addAppointmentLines(resp, found)
}

func addAppointmentLines(resp *Response, appts []entity.Appointment) {
	for n, appt := range appts {
		resp.add(Normal, "%d. %s", n+1, FormatAppointment(appt))
	}
}

// FormatAppointment renders "name - specialty - dd/mm/yyyy time".
func FormatAppointment(appt entity.Appointment) string {
	return fmt.Sprintf("%s - %s - %s %s", appt.Name, appt.Specialty, utils.FormatDate(appt.Date), appt.Time)
}
