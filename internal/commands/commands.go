// ABOUTME: Intent handler registry and dispatch for the interactive terminal
// ABOUTME: Every intent type must have exactly one handler; the registry refuses to build otherwise

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/internal/tools"
)

// ErrMissingHandler is returned by NewRegistry when an intent type has no command.
var ErrMissingHandler = errors.New("missing handler")

// Handler performs the action for one recognized intent. Expected failures
// (missing file, absent parameter, declined confirmation) are printed and
// return nil; a returned error is unexpected and reported by the caller.
type Handler func(ctx *CommandContext, in intent.Intent) error

// Command binds an intent type to its handler and help text.
type Command struct {
	Type        intent.Type
	Usage       string
	Description string
	Examples    []string
	Execute     Handler
}

// Name returns the command word shown in help.
func (c *Command) Name() string { return c.Type.String() }

// Styles decorate user-facing output. Nil fields leave text unchanged.
type Styles struct {
	Heading func(string) string
	Info    func(string) string
	Success func(string) string
	Warn    func(string) string
	Error   func(string) string
	Dim     func(string) string
}

// CommandContext provides handlers with output, workspace access and the
// interactive callbacks of the terminal.
type CommandContext struct {
	Out       io.Writer
	Workspace *tools.Workspace
	Runner    *tools.Runner
	Styles    Styles

	// MaxPerFile caps search matches per file; 0 is unlimited.
	MaxPerFile int
	// Strategy names the active recognizer, for chat answers.
	Strategy string

	// Interactive callbacks. All nilable: a nil Confirm declines, a nil
	// Prompt or Pick yields no answer, a nil Render prints markdown raw.
	Confirm func(question string) bool
	Prompt  func(question string) (string, bool)
	Pick    func(title string, items []string) (string, bool)
	Render  func(markdown string) string

	// Exit callback. Nilable.
	ExitFn func()
}

// Registry maps intent types to commands.
type Registry struct {
	commands map[intent.Type]*Command
}

// NewRegistry creates a registry with a command for every intent type.
func NewRegistry() (*Registry, error) {
	r := &Registry{}
	if err := r.register(r.coreCommands()); err != nil {
		return nil, err
	}
	return r, nil
}

// register installs cmds and checks that the table is exhaustive.
func (r *Registry) register(cmds []*Command) error {
	r.commands = make(map[intent.Type]*Command, len(cmds))
	for _, cmd := range cmds {
		if cmd.Execute == nil {
			return fmt.Errorf("command %s has no handler", cmd.Type)
		}
		if _, dup := r.commands[cmd.Type]; dup {
			return fmt.Errorf("command %s registered twice", cmd.Type)
		}
		r.commands[cmd.Type] = cmd
	}
	var missing []string
	for _, t := range intent.Types() {
		if _, ok := r.commands[t]; !ok {
			missing = append(missing, t.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrMissingHandler)
	}
	return nil
}

// Get returns the command for an intent type.
// The second return value indicates whether the type was found.
func (r *Registry) Get(t intent.Type) (*Command, bool) {
	cmd, ok := r.commands[t]
	return cmd, ok
}

// List returns all commands in intent declaration order for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, t := range intent.Types() {
		if cmd, ok := r.commands[t]; ok {
			result = append(result, cmd)
		}
	}
	return result
}

// Dispatch runs the handler for in, falling back to the unknown handler
// when the type has none.
func (r *Registry) Dispatch(ctx *CommandContext, in intent.Intent) error {
	cmd, ok := r.commands[in.Type()]
	if !ok {
		cmd = r.commands[intent.Unknown]
	}
	return cmd.Execute(ctx, in)
}

// coreCommands returns the built-in command table.
func (r *Registry) coreCommands() []*Command {
	return []*Command{
		{
			Type:        intent.List,
			Usage:       "list [category]",
			Description: "List files in the category directories",
			Examples:    []string{"list", "list python_scripts", "show me all markdown files"},
			Execute:     listFiles,
		},
		{
			Type:        intent.Run,
			Usage:       "run <script> [args]",
			Description: "Execute a Python or shell script",
			Examples:    []string{"run script.py", "run security_scan.py --verbose", "run the backup script"},
			Execute:     runScript,
		},
		{
			Type:        intent.Search,
			Usage:       "search <text>",
			Description: "Search file contents, case-insensitively",
			Examples:    []string{"search password", `find "api key" in python files`, "look for encryption"},
			Execute:     searchFiles,
		},
		{
			Type:        intent.Help,
			Usage:       "help [topic]",
			Description: "Show this help, or help for one command",
			Examples:    []string{"help", "help run", "help search"},
			Execute:     r.help,
		},
		{
			Type:        intent.Organize,
			Usage:       "organize",
			Description: "Move top-level files into their category directories",
			Examples:    []string{"organize", "sort my scripts", "clean up this repository"},
			Execute:     organizeFiles,
		},
		{
			Type:        intent.Show,
			Usage:       "show <file>",
			Description: "Print a file's contents",
			Examples:    []string{"show README.md", "display the contents of notes.txt", "cat deploy.sh"},
			Execute:     showFile,
		},
		{
			Type:        intent.Create,
			Usage:       "create <file>",
			Description: "Create a file from a category template",
			Examples:    []string{"create new_script.py", "make a new python script called data_processor", "create a shell script named backup"},
			Execute:     createFile,
		},
		{
			Type:        intent.Delete,
			Usage:       "delete <file>",
			Description: "Delete a file after confirmation",
			Examples:    []string{"delete old_script.py", "remove the notes.txt file"},
			Execute:     deleteFile,
		},
		{
			Type:        intent.Rename,
			Usage:       "rename <file> to <name>",
			Description: "Rename a file after confirmation",
			Examples:    []string{"rename old.py to new.py", "rename notes.md as journal"},
			Execute:     renameFile,
		},
		{
			Type:        intent.Move,
			Usage:       "move <file> to <directory>",
			Description: "Move a file after confirmation",
			Examples:    []string{"move helper.py to shell_scripts", "move notes.txt into docs"},
			Execute:     moveFile,
		},
		{
			Type:        intent.Summarize,
			Usage:       "summarize <file>",
			Description: "Summarize a script or document",
			Examples:    []string{"summarize deploy.sh", "summarize the latest README", "give me an overview of notes.md"},
			Execute:     summarizeFile,
		},
		{
			Type:        intent.AIChat,
			Usage:       "<question>",
			Description: "Ask about the terminal itself",
			Examples:    []string{"what can you do?", "is this private?", "how do I organize my scripts?"},
			Execute:     chat,
		},
		{
			Type:        intent.Exit,
			Usage:       "exit",
			Description: "Leave the terminal (also: quit)",
			Execute:     exit,
		},
		{
			Type:        intent.Unknown,
			Usage:       "",
			Description: "Unrecognized input",
			Execute:     unknown,
		},
	}
}
