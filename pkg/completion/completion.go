/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package completion generates static shell-completion scripts from the
// command model. Scripts embed the full word lists per subcommand path at
// generation time; nothing is computed at completion time.
package completion

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/clix/pkg/command"
)

// pathWords is one subcommand path with its completable words.
type pathWords struct {
	path  string
	words []string
}

// Bash returns a bash completion script for the program rooted at root.
// The script resolves the typed subcommand path against embedded word
// lists and completes flags, options and subcommand names.
func Bash(root *command.Command) string {
	name := root.Binary()
	fn := "_" + sanitize(name) + "_completions"

	var b strings.Builder
	fmt.Fprintf(&b, "# bash completion for %s, generated from its command model\n", name)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur path word\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&b, "    path=%q\n", root.Name())
	b.WriteString("    for word in \"${COMP_WORDS[@]:1:COMP_CWORD-1}\"; do\n")
	b.WriteString("        case \"$word\" in -*) continue ;; esac\n")
	b.WriteString("        case \" $(_" + sanitize(name) + "_subs \"$path\") \" in\n")
	b.WriteString("            *\" $word \"*) path=\"${path}/${word}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    COMPREPLY=( $(compgen -W \"$(_%s_words \"$path\")\" -- \"$cur\") )\n", sanitize(name))
	b.WriteString("}\n\n")

	writeBashLookup(&b, "_"+sanitize(name)+"_words", collect(root, root.Name(), allWords))
	writeBashLookup(&b, "_"+sanitize(name)+"_subs", collect(root, root.Name(), subWords))

	fmt.Fprintf(&b, "complete -F %s %s\n", fn, name)
	return b.String()
}

// Zsh returns a zsh completion script for the program rooted at root.
func Zsh(root *command.Command) string {
	name := root.Binary()
	fn := "_" + sanitize(name)

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n", name)
	fmt.Fprintf(&b, "# zsh completion for %s, generated from its command model\n\n", name)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local -a completions\n")
	fmt.Fprintf(&b, "    local path=%q word\n", root.Name())
	b.WriteString("    for word in \"${words[@]:1:$((CURRENT-2))}\"; do\n")
	b.WriteString("        [[ \"$word\" == -* ]] && continue\n")
	b.WriteString("        case \" $(" + fn + "_subs \"$path\") \" in\n")
	b.WriteString("            *\" $word \"*) path=\"${path}/${word}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    completions=( $(%s_words \"$path\") )\n", fn)
	b.WriteString("    _describe 'completions' completions\n")
	b.WriteString("}\n\n")

	writeBashLookup(&b, fn+"_words", collect(root, root.Name(), allWords))
	writeBashLookup(&b, fn+"_subs", collect(root, root.Name(), subWords))

	fmt.Fprintf(&b, "\n%s \"$@\"\n", fn)
	return b.String()
}

// writeBashLookup emits a function mapping a subcommand path to its word
// list via a case statement (portable across bash 3 and zsh, unlike
// associative arrays).
func writeBashLookup(b *strings.Builder, fn string, entries []pathWords) {
	fmt.Fprintf(b, "%s() {\n", fn)
	b.WriteString("    case \"$1\" in\n")
	for _, e := range entries {
		fmt.Fprintf(b, "        %q) echo %q ;;\n", e.path, strings.Join(e.words, " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
}

// collect walks the subcommand tree depth-first, recording the words of
// every path.
func collect(cmd *command.Command, path string, words func(*command.Command) []string) []pathWords {
	out := []pathWords{{path: path, words: words(cmd)}}
	for _, sub := range cmd.Subcommands() {
		out = append(out, collect(sub, path+"/"+sub.Name(), words)...)
	}
	return out
}

// allWords lists everything completable at one level: dashed flag and
// option forms plus subcommand names.
func allWords(cmd *command.Command) []string {
	var words []string
	for _, f := range cmd.Flags() {
		if f.ShortForm() != "" {
			words = append(words, "-"+f.ShortForm())
		}
		if f.LongForm() != "" {
			words = append(words, "--"+f.LongForm())
		}
	}
	for _, o := range cmd.Options() {
		if o.ShortForm() != "" {
			words = append(words, "-"+o.ShortForm())
		}
		if o.LongForm() != "" {
			words = append(words, "--"+o.LongForm())
		}
	}
	return append(words, cmd.SubcommandNames()...)
}

func subWords(cmd *command.Command) []string {
	return cmd.SubcommandNames()
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}
