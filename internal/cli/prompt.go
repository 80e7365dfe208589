package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/preston-bernstein/friday-night-bytes/internal/domain/leagues"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
)

// lineReader feeds stdin lines to the prompt so a read can be abandoned when ctx ends.
type lineReader struct {
	lines chan string
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lr.lines <- scanner.Text()
		}
		lr.err = scanner.Err()
		close(lr.lines)
	}()
	return lr
}

func (lr *lineReader) read(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// prompt asks for a sport and then teams until every abbreviation is valid.
// ok is false when the sport is unsupported; the reason has been printed.
func prompt(ctx context.Context, in io.Reader, out io.Writer, reg *leagues.Registry) (preferences.Preferences, bool, error) {
	lr := newLineReader(in)

	printSports(out, reg)
	fmt.Fprint(out, "Please enter the number corresponding to your favorite sport: ")
	sport, err := lr.read(ctx)
	if err != nil {
		return preferences.Preferences{}, false, err
	}
	league, found := leagues.FromSportNumber(sport)
	if !found {
		fmt.Fprintf(out, "%s is not supported...\n", sport)
		return preferences.Preferences{}, false, nil
	}

	printTeams(out, reg, league)
	fmt.Fprintln(out, "\nYou can pick multiple teams by separating abbreviations with commas (e.g., lal, bos, mia).")
	for {
		fmt.Fprintf(out, "Please type the abbreviation(s) of your favorite %s team(s): ", reg.Name(league))
		line, err := lr.read(ctx)
		if err != nil {
			return preferences.Preferences{}, false, err
		}
		prefs, err := preferences.New(reg, league, preferences.SplitTeams(line))
		if err == nil {
			return prefs, true, nil
		}
		fmt.Fprintf(out, "%s Please try again.\n", err)
	}
}
