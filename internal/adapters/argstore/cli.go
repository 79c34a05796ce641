package argstore

import (
	"strconv"
	"strings"

	"go.trai.ch/buildargs/internal/core/domain"
	"go.trai.ch/zerr"
)

const flagTrue = "true"

// ParseCommandLine reads build arguments from command line tokens.
//
// Accepted forms are --name=value, -name=value, --name value and -name value.
// A name that is not followed by a value is a flag and reads as "true".
// A following token is taken as the value unless it starts with a dash and is
// not a negative number. "--" ends argument parsing; the remaining tokens and
// any token without a leading dash are positionals.
func ParseCommandLine(args []string) (*Store, error) {
	s := newStore()

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if tok == "--" {
			s.positionals = append(s.positionals, args[i+1:]...)
			break
		}

		if !strings.HasPrefix(tok, "-") || tok == "-" {
			s.positionals = append(s.positionals, tok)
			continue
		}

		body := strings.TrimPrefix(tok, "-")
		body = strings.TrimPrefix(body, "-")

		name, value, hasValue := strings.Cut(body, "=")
		if name == "" || strings.HasPrefix(name, "-") {
			err := zerr.Wrap(domain.ErrInvalidArgumentSyntax, "malformed argument name")
			return nil, zerr.With(zerr.With(err, "token", tok), "position", i)
		}

		if !hasValue {
			value = flagTrue
			if i+1 < len(args) && isValue(args[i+1]) {
				value = args[i+1]
				i++
			}
		}

		s.add(name, value)
	}

	return s, nil
}

func isValue(tok string) bool {
	if tok == "--" {
		return false
	}
	if !strings.HasPrefix(tok, "-") {
		return true
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
