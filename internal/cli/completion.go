package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for completion script generation.
// Every generator reads flagRegistry, so a new flag only needs an entry here.
type FlagCompletion struct {
	Long        string   // long name without "--"
	Short       string   // short name without "-"
	Help        string   // description text
	Values      []string // static value suggestions
	ValueName   string   // value label; empty for boolean flags
	IsFile      bool     // value is a file path
	IsReference bool     // values are the reference set names
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Short: "n", Help: "Candidate number to check", ValueName: "number"},
	{Long: "repeat", Short: "r", Help: "Timed runs per variant", Values: []string{"100", "1000", "10000", "100000"}, ValueName: "count"},
	{Long: "reference", Help: "Reference table", IsReference: true, ValueName: "set"},
	{Long: "no-reference", Help: "Skip the reference batch"},
	{Long: "verify", Help: "Cross-check against the exact oracle"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "details", Short: "d", Help: "Show environment and memory details"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "output", Short: "o", Help: "Session export file", IsFile: true, ValueName: "file"},
	{Long: "tui", Help: "Start the interactive dashboard"},
	{Long: "interactive", Help: "Start the REPL"},
	{Long: "server", Help: "Start the HTTP API"},
	{Long: "port", Help: "Server port", Values: []string{"8080", "9090"}, ValueName: "port"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "auto-repeat", Help: "Calibrate the repeat count"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish" or "powershell"). referenceSets feeds the --reference values.
func GenerateCompletion(out io.Writer, shell string, referenceSets []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(referenceSets)
	case "zsh":
		script = zshCompletion(referenceSets)
	case "fish":
		script = fishCompletion(referenceSets)
	case "powershell", "ps":
		script = powerShellCompletion(referenceSets)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagNames returns the dashed spellings of f, long form first.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func flagValues(f FlagCompletion, referenceSets []string) []string {
	if f.IsReference {
		return referenceSets
	}
	return f.Values
}

func bashCompletion(referenceSets []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)
		switch {
		case f.IsFile:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"))
		case len(flagValues(f, referenceSets)) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"), strings.Join(flagValues(f, referenceSets), " "))
		}
	}
	return fmt.Sprintf(`# Bash completion script for armcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_armcalc_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _armcalc_completions armcalc
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion(referenceSets []string) string {
	var args []string
	for _, f := range flagRegistry {
		suffix := ""
		switch values := flagValues(f, referenceSets); {
		case f.IsFile:
			suffix = ":" + f.ValueName + ":_files"
		case len(values) > 0:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(values, " "))
		case f.ValueName != "":
			suffix = ":" + f.ValueName + ":"
		}
		switch {
		case f.Long != "" && f.Short != "":
			args = append(args, fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
				f.Short, f.Long, f.Short, f.Long, f.Help, suffix))
		case f.Long != "":
			args = append(args, fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, suffix))
		default:
			args = append(args, fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, suffix))
		}
	}
	return fmt.Sprintf(`#compdef armcalc

# Zsh completion script for armcalc
# Place this file in a directory of your $fpath

_armcalc() {
    _arguments -s \
%s
}

_armcalc "$@"
`, strings.Join(args, " \\\n"))
}

func fishCompletion(referenceSets []string) string {
	lines := []string{
		"# Fish completion script for armcalc",
		"# Add this to ~/.config/fish/completions/armcalc.fish",
		"",
		"complete -c armcalc -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c armcalc"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		if f.Long != "" {
			parts = append(parts, "-l "+f.Long)
		}
		parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
		switch values := flagValues(f, referenceSets); {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion(referenceSets []string) string {
	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		values := flagValues(f, referenceSets)
		if f.IsFile || len(values) == 0 {
			continue
		}
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "'" + v + "'"
		}
		switches = append(switches, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}
	return fmt.Sprintf(`# PowerShell completion script for armcalc
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'armcalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, "\n"), strings.Join(switches, "\n"))
}
