package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/hongdown/internal/ui/pretty"
)

// helpFormatter renders cobra help and usage with lipgloss styles. The
// color mode is read at render time, after flags are parsed.
type helpFormatter struct {
	colorMode func() string
}

func (h *helpFormatter) styles(w io.Writer) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(h.colorMode(), w))
}

const usageTemplate = `{{ heading "Usage:" }}{{if .Runnable}}
  {{ command .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}
{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}` + usageTemplate

func funcs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"heading": styles.Heading.Render,
		"command": styles.Command.Render,
		"dim":     styles.Dim.Render,
		"flags": func(set *pflag.FlagSet) string {
			return flagUsages(styles, set)
		},
		"rpad":    rpad,
		"trimRight": func(s string) string {
			lines := strings.Split(s, "\n")
			for i, line := range lines {
				lines[i] = strings.TrimRight(line, " \t")
			}
			return strings.Join(lines, "\n")
		},
	}
}

// flagUsages styles the flag names of each pflag usage line. pflag
// separates the flag column from the description with at least two spaces.
func flagUsages(styles *pretty.Styles, set *pflag.FlagSet) string {
	usages := strings.TrimSuffix(set.FlagUsages(), "\n")
	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]

		names, desc, found := strings.Cut(trimmed, "   ")
		if !found {
			lines[i] = indent + styles.Flag.Render(trimmed)
			continue
		}
		lines[i] = indent + styleNames(styles, names) + "   " + desc
	}
	return strings.Join(lines, "\n")
}

func styleNames(styles *pretty.Styles, names string) string {
	tokens := strings.Fields(names)
	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			clean := strings.TrimSuffix(token, ",")
			tokens[i] = styles.Flag.Render(clean) + token[len(clean):]
		} else {
			tokens[i] = styles.Dim.Render(token)
		}
	}
	return strings.Join(tokens, " ")
}

// apply installs the styled templates on cmd and its subcommands.
func (h *helpFormatter) apply(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.render(c.OutOrStderr(), usageTemplate, c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.render(c.OutOrStdout(), helpTemplate, c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func (h *helpFormatter) render(w io.Writer, text string, cmd *cobra.Command) error {
	tmpl, err := template.New("help").Funcs(funcs(h.styles(w))).Parse(text)
	if err != nil {
		return fmt.Errorf("parse help template: %w", err)
	}
	if err := tmpl.Execute(w, cmd); err != nil {
		return fmt.Errorf("render help: %w", err)
	}
	return nil
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
