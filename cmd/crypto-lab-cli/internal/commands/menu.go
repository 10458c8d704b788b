package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

// initialLineBuffer is the starting size of the prompt buffer; longer lines grow it without limit
const initialLineBuffer = 64 * 1024

// Prompter reads trimmed answers line by line
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter reading from in and printing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	return &Prompter{
		scanner: scanner,
		out:     out,
	}
}

// Ask prints prompt and returns the next line with surrounding whitespace removed.
// It returns io.EOF once input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	line, err := p.AskRaw(prompt)
	return strings.TrimSpace(line), err
}

// AskRaw is Ask without trimming
func (p *Prompter) AskRaw(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

type menuOption struct {
	key    string
	label  string
	action func() error
}

// Menu is a numbered, looping console menu. An option without an action exits.
type Menu struct {
	title        string
	choicePrompt string
	options      []menuOption
	prompter     *Prompter
	out          io.Writer
}

// NewMenu creates an empty menu
func NewMenu(title, choicePrompt string, prompter *Prompter, out io.Writer) *Menu {
	return &Menu{
		title:        title,
		choicePrompt: choicePrompt,
		prompter:     prompter,
		out:          out,
	}
}

// Option appends an entry numbered after the existing ones
func (m *Menu) Option(label string, action func() error) *Menu {
	m.options = append(m.options, menuOption{
		key:    fmt.Sprint(len(m.options) + 1),
		label:  label,
		action: action,
	})
	return m
}

// Exit appends the entry that leaves the menu
func (m *Menu) Exit(label string) *Menu {
	return m.Option(label, nil)
}

func (m *Menu) print() {
	fmt.Fprintf(m.out, "\n=== %s ===\n", m.title)
	for _, option := range m.options {
		fmt.Fprintf(m.out, "%s) %s\n", option.key, option.label)
	}
}

func (m *Menu) lookup(choice string) (menuOption, bool) {
	for _, option := range m.options {
		if option.key == choice {
			return option, true
		}
	}
	return menuOption{}, false
}

// Run loops until the exit entry is chosen or input ends. The first failing
// action stops the loop and its error is returned.
func (m *Menu) Run() error {
	for {
		m.print()

		choice, err := m.prompter.Ask(m.choicePrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		option, ok := m.lookup(choice)
		if !ok {
			fmt.Fprintln(m.out, "Invalid choice, try again.")
			continue
		}

		if option.action == nil {
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		}

		if err := option.action(); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out)
				return nil
			}
			return err
		}
	}
}
