package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dasa.cc/ngram/internal/config"
	"dasa.cc/ngram/ngram"
)

// minCompletion is the least similarity a previous input needs to be offered
// as a completion.
const minCompletion = 0.33

var (
	errNoSeparator = errors.New(`expected "x | y"`)

	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// history completes the segment under the cursor from previously compared strings.
type history struct{ *ngram.Index }

func (a history) Do(line []rune, pos int) (newLine [][]rune, length int) {
	seg := string(line[:pos])
	if i := strings.LastIndex(seg, "|"); i >= 0 {
		seg = seg[i+1:]
	}
	seg = strings.TrimLeft(seg, " ")
	ms, err := a.Match(seg, minCompletion)
	if err != nil {
		return nil, 0
	}
	for _, m := range ms {
		if t := strings.TrimPrefix(m.Term, seg); len(t) < len(m.Term) && t != "" {
			newLine = append(newLine, []rune(t))
		}
	}
	return newLine, len([]rune(seg))
}

// compare parses a line of the form "x | y" and returns the similarity of x and y.
// Both sides are added to idx.
func compare(idx *ngram.Index, line string) (float64, error) {
	x, y, ok := strings.Cut(line, "|")
	if !ok {
		return 0, errNoSeparator
	}
	x, y = strings.TrimSpace(x), strings.TrimSpace(y)
	idx.Add(x, y)
	return ngram.Similarity(x, y, idx.N)
}

func score(u float64) string {
	s := fmt.Sprint(u)
	if u < 0.5 {
		return yellow(s)
	}
	return green(s)
}

func newReplCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: `Interactively compare lines of the form "x | y"`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := &ngram.Index{N: cfg.N}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:            fmt.Sprintf("ngram(%d): ", cfg.N),
				AutoComplete:      history{idx},
				InterruptPrompt:   "^C",
				EOFPrompt:         "exit",
				HistorySearchFold: true,
			})
			if err != nil {
				return err
			}
			defer rl.Close()
			return repl(rl, rl.Stdout(), idx)
		},
	}
}

type lineReader interface {
	Readline() (string, error)
}

func repl(rl lineReader, out io.Writer, idx *ngram.Index) error {
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		u, err := compare(idx, line)
		if err != nil {
			log.Debug().Err(err).Str("line", line).Msg("compare failed")
			fmt.Fprintln(out, red(err))
			continue
		}
		fmt.Fprintln(out, score(u))
	}
}
