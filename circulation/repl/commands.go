package repl

import (
	"fmt"

	"github.com/anders-schneider/LibrarySimulator/circulation/core"
	"github.com/anders-schneider/LibrarySimulator/circulation/desk"
)

const quitCommand = "quit"

type argumentKind int

const (
	noArguments argumentKind = iota
	oneString
	selections
)

type command struct {
	arguments argumentKind
	noArgs    func(l *desk.Library) desk.Response
	text      func(l *desk.Library, text string) desk.Response
	picks     func(l *desk.Library, picks ...core.Selection) desk.Response
}

var commands = map[string]command{
	"open":               {arguments: noArguments, noArgs: (*desk.Library).Open},
	"close":              {arguments: noArguments, noArgs: (*desk.Library).Close},
	"list_overdue_books": {arguments: noArguments, noArgs: (*desk.Library).ListOverdueBooks},
	"help":               {arguments: noArguments, noArgs: (*desk.Library).Help},
	quitCommand:          {arguments: noArguments, noArgs: (*desk.Library).Quit},
	"issue_card":         {arguments: oneString, text: (*desk.Library).IssueCard},
	"serve":              {arguments: oneString, text: (*desk.Library).Serve},
	"search":             {arguments: oneString, text: (*desk.Library).Search},
	"check_out":          {arguments: selections, picks: (*desk.Library).CheckOut},
	"check_in":           {arguments: selections, picks: (*desk.Library).CheckIn},
}

// Dispatch runs the invocation against the library.
func Dispatch(library *desk.Library, inv Invocation) (desk.Response, error) {
	cmd, ok := commands[inv.Name]
	if !ok {
		return desk.Response{}, fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Name)
	}

	switch cmd.arguments {
	case oneString:
		if len(inv.Arguments) != 1 {
			return desk.Response{}, fmt.Errorf(
				"%w: %s() takes exactly 1 argument (%d given)",
				ErrInvalidArguments, inv.Name, len(inv.Arguments),
			)
		}

		text, isString := inv.Arguments[0].asString()
		if !isString {
			return desk.Response{}, fmt.Errorf(
				"%w: %s() expects a string, got %s",
				ErrInvalidArguments, inv.Name, inv.Arguments[0].Raw,
			)
		}

		return cmd.text(library, text), nil

	case selections:
		picks := make([]core.Selection, 0, len(inv.Arguments))
		for _, arg := range inv.Arguments {
			if n, isWhole := arg.asWholeNumber(); isWhole {
				picks = append(picks, core.Pick(n))
				continue
			}

			picks = append(picks, core.NonIntegerPick(arg.Raw))
		}

		return cmd.picks(library, picks...), nil

	default:
		if len(inv.Arguments) != 0 {
			return desk.Response{}, fmt.Errorf(
				"%w: %s() takes no arguments (%d given)",
				ErrInvalidArguments, inv.Name, len(inv.Arguments),
			)
		}

		return cmd.noArgs(library), nil
	}
}
