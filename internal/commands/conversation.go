// ABOUTME: Conversational handlers: help listing, topic help, canned chat answers, exit, unknown input
// ABOUTME: Help and chat text is markdown, rendered when the terminal supports it

package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mauromedda/scriptterm/internal/intent"
	"github.com/mauromedda/scriptterm/pkg/tui/width"
)

func (r *Registry) help(ctx *CommandContext, in intent.Intent) error {
	if topic, ok := in.Param(intent.ParamTopic); ok {
		if t, known := intent.ParseType(topic); known {
			if cmd, found := r.Get(t); found && cmd.Usage != "" {
				ctx.markdown(topicHelp(cmd))
				return nil
			}
		}
	}
	if words := strings.Fields(strings.ToLower(in.Input())); len(words) == 2 && words[0] == "help" {
		ctx.warn("No help available for %q. Try one of: %s", words[1], strings.Join(r.topics(), ", "))
		return nil
	}
	ctx.markdown(r.generalHelp())
	return nil
}

func (r *Registry) topics() []string {
	var out []string
	for _, cmd := range r.List() {
		if cmd.Type != intent.Unknown && cmd.Type != intent.AIChat {
			out = append(out, cmd.Name())
		}
	}
	return out
}

func (r *Registry) generalHelp() string {
	var b strings.Builder
	b.WriteString("# scriptterm help\n\n")
	b.WriteString("Type a command or describe what you want in plain English.\n\n")
	b.WriteString("## Commands\n\n")

	usageW := 0
	for _, cmd := range r.List() {
		usageW = max(usageW, width.VisibleWidth(cmd.Usage))
	}
	for _, cmd := range r.List() {
		if cmd.Usage == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s  %s\n", width.PadRight(cmd.Usage, usageW), cmd.Description)
	}

	b.WriteString("\n## Natural language examples\n\n")
	for _, ex := range []string{
		"Run the security scan script",
		"Show me all Python scripts",
		"Search for password utilities",
		"Summarize the latest README",
		"Move notes.txt into docs",
	} {
		fmt.Fprintf(&b, "- \"%s\"\n", ex)
	}
	b.WriteString("\n## Ask me questions\n\n")
	for _, ex := range []string{
		"What can this terminal do?",
		"How do I organize my scripts?",
		"What's the difference between Python and shell scripts?",
	} {
		fmt.Fprintf(&b, "- \"%s\"\n", ex)
	}
	b.WriteString("\nFor help on one command: `help <topic>` (e.g. `help run`, `help search`).\n")
	return b.String()
}

func topicHelp(cmd *Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s.\n\nUsage: `%s`\n", strings.ToUpper(cmd.Name()[:1])+cmd.Name()[1:], cmd.Description, cmd.Usage)
	if len(cmd.Examples) > 0 {
		b.WriteString("\nExamples:\n\n")
		for _, ex := range cmd.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
	}
	return b.String()
}

type cannedAnswer struct {
	key    string
	answer string
}

// cannedAnswers are checked in order: exact match, then substring.
var cannedAnswers = []cannedAnswer{
	{"what can you do", "I can help you manage your scripts and files using natural language commands. Try asking me to run scripts, list files, search for content, or organize your repository. You can also ask for help on specific features."},
	{"how do you work", "I process natural language commands locally on your machine. I score your words against a table of command patterns, optionally with a small built-in linguistic analyzer, then perform the matching action such as running a script or listing files."},
	{"what are you", "I am scriptterm, a local-only, privacy-focused interface for managing scripts and files using natural language. All processing happens on your machine with no data sent to external services."},
	{"how do i run a script", "To run a script, say \"run\" followed by the script name, like \"run security_scan.py\" or \"run backup.sh\". You can also include arguments."},
	{"how do i list files", "To list files, say \"list\" or \"show\" followed by an optional category, for example \"list python_scripts\" or \"show me all Python files\"."},
	{"how do i search", "To search, say \"search\" or \"find\" followed by your query, for example \"search password\" or \"find encryption in shell scripts\"."},
	{"how do i create", "To create a file, say \"create\" followed by the file name. I place it in the right directory based on its extension and fill in a starter template."},
	{"how do i delete", "To delete a file, say \"delete\" or \"remove\" followed by the file name. I ask for confirmation before deleting anything."},
	{"what is the directory structure", "Files are organized by type: python_scripts/ for Python files, shell_scripts/ for shell scripts, docs/ for documentation, and text_files/ for configuration and text files."},
	{"how do i organize", "To organize files, say \"organize\" or \"sort my files\". I move top-level files into the directory that matches their extension, after asking once."},
	{"is this private", "Yes. Everything runs locally on your machine; nothing is sent to external servers. Your scripts and commands never leave your computer."},
	{"do you send data", "No. I don't send any data outside your computer."},
	{"help", "Try asking specific questions like \"How do I run a script?\" or \"What is the directory structure?\". Type \"help\" for the command list or \"help run\" for one command."},
	{"what is the difference between python and shell", "Python scripts (.py) suit complex tasks, data processing and integrations. Shell scripts (.sh) suit system operations, file management and chaining command-line tools together."},
}

var cannedPatterns = []struct {
	re  *regexp.Regexp
	key string
}{
	{regexp.MustCompile(`how (do|to|can) .*(run|execute)`), "how do i run a script"},
	{regexp.MustCompile(`how (do|to|can) .*(list|show|display)`), "how do i list files"},
	{regexp.MustCompile(`how (do|to|can) .*(search|find|locate)`), "how do i search"},
	{regexp.MustCompile(`how (do|to|can) .*(create|make|new)`), "how do i create"},
	{regexp.MustCompile(`how (do|to|can) .*(delete|remove)`), "how do i delete"},
	{regexp.MustCompile(`(what|tell).*(directory|structure|organization)`), "what is the directory structure"},
	{regexp.MustCompile(`(is|about).*(privacy|private|secure)`), "is this private"},
}

const fallbackAnswer = "I'm an assistant that helps you manage scripts and files. I can run scripts, list files, search for content, and organize your repository. Try a more specific question or type 'help' for guidance."

var apostrophes = strings.NewReplacer("what's", "what is", "'", "")

// chatAnswer picks the canned answer for a question.
func chatAnswer(question string) string {
	q := strings.Trim(strings.ToLower(strings.TrimSpace(question)), "?!.,")
	q = apostrophes.Replace(q)
	for _, c := range cannedAnswers {
		if q == c.key {
			return c.answer
		}
	}
	for _, c := range cannedAnswers {
		if strings.Contains(q, c.key) {
			return c.answer
		}
	}
	for _, p := range cannedPatterns {
		if p.re.MatchString(q) {
			for _, c := range cannedAnswers {
				if c.key == p.key {
					return c.answer
				}
			}
		}
	}
	return fallbackAnswer
}

func chat(ctx *CommandContext, in intent.Intent) error {
	ctx.heading("Assistant:")
	answer := chatAnswer(in.Input())
	if ctx.Strategy != "" && strings.Contains(strings.ToLower(in.Input()), "how do you work") {
		answer += fmt.Sprintf(" Active recognizer: %s.", ctx.Strategy)
	}
	ctx.markdown(answer)
	return nil
}

func exit(ctx *CommandContext, _ intent.Intent) error {
	ctx.info("Exiting scriptterm...")
	if ctx.ExitFn != nil {
		ctx.ExitFn()
	}
	return nil
}

var unknownHints = []struct {
	words      []string
	suggestion string
}{
	{[]string{"run", "execute", "start"}, "run <script>"},
	{[]string{"list", "show", "display"}, "list [category]"},
	{[]string{"search", "find", "locate"}, "search <text>"},
	{[]string{"help", "guide", "manual"}, "help [topic]"},
	{[]string{"create", "make", "new"}, "create <file>"},
	{[]string{"delete", "remove", "erase"}, "delete <file>"},
	{[]string{"organize", "sort", "clean"}, "organize"},
}

func unknown(ctx *CommandContext, in intent.Intent) error {
	ctx.warn("I'm not sure what you want to do. Try 'help' or rephrase your request.")
	text := strings.ToLower(in.Input())
	var suggestions []string
	for _, h := range unknownHints {
		for _, w := range h.words {
			if strings.Contains(text, w) {
				suggestions = append(suggestions, h.suggestion)
				break
			}
		}
	}
	if len(suggestions) > 0 {
		ctx.info("Did you mean one of these commands?")
		for _, s := range suggestions {
			fmt.Fprintf(ctx.Out, "  - %s\n", s)
		}
	}
	return nil
}
