package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParamSource supplies the three validated sweep ranges. The engine never
// talks to a terminal directly; the interactive prompter below is one
// implementation, flag parsing in main is the other.
type ParamSource interface {
	Ranges() (times, aRange, bRange ParamRange, err error)
}

// Prompter reads ranges interactively, re-asking until the input parses.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

func NewPrompter() *Prompter {
	return &Prompter{In: bufio.NewReader(os.Stdin), Out: os.Stdout}
}

func (p *Prompter) Ranges() (times, aRange, bRange ParamRange, err error) {
	fmt.Fprintln(p.Out, "Enter the parameter ranges to brute-force")
	if times, err = p.promptRange("  - iterations (e.g. '8' or '0-10'): ", false); err != nil {
		return
	}
	if aRange, err = p.promptRange("  - parameter a (e.g. '8' or '0-10'): ", true); err != nil {
		return
	}
	bRange, err = p.promptRange("  - parameter b (e.g. '8' or '0-10'): ", true)
	return
}

// promptRange loops until a well-formed single value or inclusive range is
// read. Malformed input is recovered by re-prompting, never propagated.
func (p *Prompter) promptRange(prompt string, allowNegative bool) (ParamRange, error) {
	for {
		fmt.Fprint(p.Out, prompt)
		line, err := p.In.ReadString('\n')
		if err != nil && line == "" {
			return ParamRange{}, fmt.Errorf("read input: %w", err)
		}

		r, perr := ParseRange(line)
		if perr == nil {
			if !allowNegative && r.Lo < 0 {
				fmt.Fprintln(p.Out, "iteration count must be non-negative")
				continue
			}
			return r, nil
		}
		fmt.Fprintln(p.Out, "bad format, enter a single number (e.g. '8') or a range (e.g. '0-10')")
	}
}

// PromptPath asks for an image path until an existing file is named. Quotes
// from shell drag-and-drop and Windows-style backslashes are stripped.
func (p *Prompter) PromptPath() (string, error) {
	for {
		fmt.Fprint(p.Out, "Path to the scrambled image: ")
		line, err := p.In.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read input: %w", err)
		}

		path := CleanPathInput(line)
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		fmt.Fprintf(p.Out, "file does not exist: %s\n", path)
	}
}

// CleanPathInput normalizes pasted path text: surrounding whitespace and
// quotes go, backslashes become forward slashes.
func CleanPathInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.ReplaceAll(s, `\`, "/")
}
