package command

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Command names understood by the Runner
const (
	Board   = "board"
	Players = "players"
	Dice    = "dice"
	Snake   = "snake"
	Ladder  = "ladder"
	Powerup = "powerup"
	Move    = "move"
)

// Known reports whether name is a recognised command
func Known(name string) bool {
	switch name {
	case Board, Players, Dice, Snake, Ladder, Powerup, Move:
		return true
	}
	return false
}

// Command is one tokenized line of input
type Command struct {
	Line int      `json:"line"`
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// String renders the command back into its textual form
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ParseLine tokenizes a single line. Blank lines and lines starting with '#'
// yield ok == false.
func ParseLine(lineNo int, line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Command{}, false
	}
	return Command{
		Line: lineNo,
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}, true
}

// Parse reads commands line by line until EOF
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if cmd, ok := ParseLine(lineNo, scanner.Text()); ok {
			cmds = append(cmds, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return cmds, fmt.Errorf("failed to read commands: %w", err)
	}
	return cmds, nil
}

// ParseString is Parse over an in-memory script
func ParseString(script string) ([]Command, error) {
	return Parse(strings.NewReader(script))
}

// Script is a named, described command sequence
type Script struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Commands    []Command `json:"commands"`
}

// ParseScript reads a script. Leading "# name:" and "# description:" comment
// headers fill in Name and Description; fallbackName is used when the header
// is missing.
func ParseScript(fallbackName string, r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	script := &Script{Name: fallbackName}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		key, value, found := strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, "#")), ":")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "name":
			script.Name = strings.TrimSpace(value)
		case "description":
			script.Description = strings.TrimSpace(value)
		}
	}

	script.Commands, err = ParseString(string(data))
	if err != nil {
		return nil, err
	}
	return script, nil
}
