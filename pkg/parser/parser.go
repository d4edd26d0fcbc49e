/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parser

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/clix/pkg/command"
	"github.com/NVIDIA/clix/pkg/entry"
	"github.com/NVIDIA/clix/pkg/result"
	"github.com/NVIDIA/clix/pkg/suggest"
)

// terminator ends option and argument scanning for the current level.
// Everything after it is exposed verbatim through Result.Rest.
const terminator = "--"

// Parse walks argv against the model rooted at root. The leading token is
// the conventional binary name and is skipped.
//
// On success the returned outcome carries the root of the result chain, or
// marks a help/version short-circuit. On failure the returned error is a
// *ParseError and no partial result is produced; the parse is not
// resumable.
func Parse(root *command.Command, argv []string) (*Outcome, error) {
	start := time.Now()

	cur := newCursor(argv)
	if cur.hasNext() {
		cur.next() // binary name
	}

	res := result.New(root.Name())
	out, err := parseLevel(root, cur, res)

	parseDuration.Observe(time.Since(start).Seconds())
	switch {
	case err != nil:
		parseTotal.WithLabelValues("error").Inc()
		return nil, err
	case out != nil && out.Help != nil:
		parseTotal.WithLabelValues("help").Inc()
		return out, nil
	case out != nil && out.Version:
		parseTotal.WithLabelValues("version").Inc()
		return out, nil
	}

	parseTotal.WithLabelValues("success").Inc()
	slog.Debug("parse completed",
		"command", root.Name(),
		"duration", time.Since(start))

	return &Outcome{Result: res}, nil
}

// parseLevel runs the per-level state machine: token walk, help/version
// short-circuit, defaulting, requiredness/cardinality checks, validator
// chains, then subcommand dispatch. It returns a non-nil outcome only for
// help/version short-circuits, which propagate unchanged out of the
// recursion.
func parseLevel(cmd *command.Command, cur *cursor, res *result.Result) (*Outcome, error) {
	args := cmd.Arguments()
	argIdx := 0
	var pending *command.Command

	// Options resolved from an ancestor or from the default-subcommand
	// chain collect their values into this level's result, so this level
	// must also run their validators (the declaring level's validation pass
	// has either already run or will see a seeded copy).
	var foreign []*entry.Option
	foreignSeen := make(map[string]bool)

scan:
	for cur.hasNext() {
		tok := cur.next()
		switch {
		case tok == terminator:
			res.SetRest(cur.drain())
			break scan

		case isOptionToken(tok):
			opt, err := consumeOptionToken(cmd, cur, res, tok)
			if err != nil {
				return nil, err
			}
			if opt != nil && !ownsOption(cmd, opt) && !foreignSeen[opt.Name()] {
				foreignSeen[opt.Name()] = true
				foreign = append(foreign, opt)
			}

		default:
			if argIdx < len(args) {
				a := args[argIdx]
				res.AppendArg(a.Name(), unescape(tok))
				if !a.IsRepeating() {
					argIdx++
				}
				continue
			}
			if !cmd.HasSubcommands() {
				return nil, parseErrf(ErrCodeExcessiveArgument, cmd,
					"unexpected argument %q", tok)
			}
			sub := cmd.Subcommand(tok)
			if sub == nil {
				perr := parseErrf(ErrCodeUnknownSubcommand, cmd, "unknown command %q", tok)
				if near, ok := suggest.Nearest(tok, cmd.SubcommandNames()); ok {
					perr.suggesting(near)
				}
				return nil, perr
			}
			// The rest of the stream belongs to the subcommand level.
			pending = sub
			break scan
		}
	}

	// Help/version short-circuit: skip all remaining validation, propagate
	// straight out of the recursion.
	if res.Occurrences(command.HelpFlagName) > 0 {
		return &Outcome{Help: cmd}, nil
	}
	if res.Occurrences(command.VersionFlagName) > 0 {
		return &Outcome{Version: true}, nil
	}

	// Defaulting pass. Runs before the requiredness checks so a default can
	// never mask a genuinely required entry (defaults clear requiredness at
	// model-build time), and before validators so defaults are validated
	// like any other value.
	for _, o := range cmd.Options() {
		if !res.HasOption(o.Name()) && len(o.DefaultValues()) > 0 {
			res.SetOption(o.Name(), o.DefaultValues())
		}
	}
	for _, a := range args {
		if !res.HasArg(a.Name()) && len(a.DefaultValues()) > 0 {
			res.SetArg(a.Name(), a.DefaultValues())
		}
	}

	// Requiredness and cardinality pass.
	for _, o := range cmd.Options() {
		values := res.Options(o.Name(), nil)
		if o.IsRequired() && len(values) == 0 {
			perr := parseErrf(ErrCodeMissingOption, cmd,
				"missing required option %q", optionDisplay(o))
			perr.Entry = o.Name()
			return nil, perr
		}
		if len(values) > 1 && !o.IsRepeating() {
			perr := parseErrf(ErrCodeIllegalRepetition, cmd,
				"option %q given more than once", optionDisplay(o))
			perr.Entry = o.Name()
			return nil, perr
		}
	}
	for _, a := range args {
		values := res.Args(a.Name(), nil)
		if a.IsRequired() && len(values) == 0 {
			perr := parseErrf(ErrCodeMissingArgument, cmd,
				"missing required argument %q", a.Tag())
			perr.Entry = a.Name()
			return nil, perr
		}
		if len(values) > 1 && !a.IsRepeating() {
			perr := parseErrf(ErrCodeIllegalRepetition, cmd,
				"argument %q given more than once", a.Tag())
			perr.Entry = a.Name()
			return nil, perr
		}
	}

	// Validation pass, in declaration order, options before arguments. The
	// first failing validator aborts the whole parse.
	for _, o := range cmd.Options() {
		if err := runValidators(cmd, o.Name(), o.Validators(), res.Options(o.Name(), nil)); err != nil {
			return nil, err
		}
	}
	for _, a := range args {
		if err := runValidators(cmd, a.Name(), a.Validators(), res.Args(a.Name(), nil)); err != nil {
			return nil, err
		}
	}
	for _, o := range foreign {
		if err := runValidators(cmd, o.Name(), o.Validators(), res.Options(o.Name(), nil)); err != nil {
			return nil, err
		}
	}

	// Subcommand dispatch.
	if pending == nil && cmd.HasSubcommands() {
		pending = cmd.DefaultSubcommand()
		if pending == nil {
			return nil, parseErrf(ErrCodeMissingSubcommand, cmd,
				"missing subcommand for %q", strings.Join(cmd.Chain(), " "))
		}
	}
	if pending != nil {
		child := res.Spawn(pending.Name())
		return parseLevel(pending, cur, child)
	}
	return nil, nil
}

// consumeOptionToken resolves one dash-prefixed token against the visible
// flags and options, consuming a following value token when needed. When an
// option was consumed it is returned so the level can track foreign
// (ancestor or default-subcommand) entries for its validation pass.
func consumeOptionToken(cmd *command.Command, cur *cursor, res *result.Result, tok string) (*entry.Option, error) {
	long := strings.HasPrefix(tok, "--")
	body := tok[1:]
	if long {
		body = tok[2:]
	}
	name, inline, hasInline := strings.Cut(body, "=")

	count := 1
	flag := cmd.ResolveFlag(name, !long, true)
	if flag == nil && !long && len(name) > 1 && isRepeatedRune(name) {
		// Unix-style stacking of one repeated short flag: -vvvv counts as
		// four occurrences of -v. Distinct combined shorts (-vl) are not
		// supported.
		first := string([]rune(name)[:1])
		flag = cmd.ResolveFlag(first, true, true)
		count = len([]rune(name))
	}
	if flag != nil {
		if hasInline {
			perr := parseErrf(ErrCodeFlagWithValue, cmd,
				"flag %q does not take a value", dashed(name, long))
			perr.Entry = flag.Name()
			return nil, perr
		}
		res.BumpFlag(flag.Name(), count)
		if res.Occurrences(flag.Name()) > 1 && !flag.IsRepeating() {
			perr := parseErrf(ErrCodeIllegalRepetition, cmd,
				"flag %q given more than once", dashed(name, long))
			perr.Entry = flag.Name()
			return nil, perr
		}
		return nil, nil
	}

	opt := cmd.ResolveOption(name, !long, true)
	if opt == nil {
		perr := parseErrf(ErrCodeUnknownOption, cmd,
			"unknown option %q", dashed(name, long))
		if near, ok := suggest.Nearest(name, cmd.Forms(!long)); ok {
			perr.suggesting(dashed(near, long))
		}
		return nil, perr
	}

	var value string
	switch {
	case hasInline:
		value = inline
	case !cur.hasNext() || isOptionToken(cur.peek()):
		perr := parseErrf(ErrCodeMissingValue, cmd,
			"option %q requires a value", dashed(name, long))
		perr.Entry = opt.Name()
		return nil, perr
	default:
		value = unescape(cur.next())
	}
	res.AppendOption(opt.Name(), value)

	// Repetition is enforced at collect time, like flags, so values of
	// ancestor-declared options supplied below their declaring level (and
	// counted through the seeded copy) cannot slip past the per-level pass.
	if !opt.IsRepeating() && len(res.Options(opt.Name(), nil)) > 1 {
		perr := parseErrf(ErrCodeIllegalRepetition, cmd,
			"option %q given more than once", dashed(name, long))
		perr.Entry = opt.Name()
		return nil, perr
	}
	return opt, nil
}

// ownsOption reports whether the option is declared on the command itself
// rather than resolved from an ancestor or a default subcommand.
func ownsOption(cmd *command.Command, opt *entry.Option) bool {
	for _, o := range cmd.Options() {
		if o == opt {
			return true
		}
	}
	return false
}

func runValidators(cmd *command.Command, name string, validators []entry.Validator, values []string) error {
	if len(values) == 0 {
		return nil
	}
	for _, v := range validators {
		if err := v.Validate(name, values); err != nil {
			return &ParseError{
				Code:    ErrCodeValidation,
				Command: cmd,
				Entry:   name,
				Message: fmt.Sprintf("invalid value: %v", err),
				Err:     err,
			}
		}
	}
	return nil
}

// isOptionToken reports whether a token enters the option/flag branch of
// the state machine. A bare dash is a conventional stdin placeholder and
// stays positional.
func isOptionToken(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-")
}

// isRepeatedRune reports whether the string is one rune repeated.
func isRepeatedRune(s string) bool {
	runes := []rune(s)
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

// unescape strips the single leading backslash that marks a value as
// positional even though it looks like an option.
func unescape(tok string) string {
	if strings.HasPrefix(tok, `\`) {
		return tok[1:]
	}
	return tok
}

func dashed(form string, long bool) string {
	if long {
		return "--" + form
	}
	return "-" + form
}

func optionDisplay(o *entry.Option) string {
	if o.LongForm() != "" {
		return "--" + o.LongForm()
	}
	return "-" + o.ShortForm()
}
