package ir

import "strings"

// TagArgs splits the first tag off a composed tag such as
// "!element(div).other", returning the head ("!element"), its arguments
// and the remaining tags ("!other").
func TagArgs(tag string) (string, []string, string) {
	var (
		head, rest string
		args       []string
		n          = len(tag)
		depth      int
		open       int
		argStart   int
	)
	for i := 0; i < n; i++ {
		switch tag[i] {
		case '.':
			if depth != 0 {
				continue
			}
			if open != 0 {
				head = tag[:open]
			} else {
				head = tag[:i]
			}
			rest = tag[i+1:]
			return head, args, "!" + rest
		case '(':
			if depth == 0 {
				open = i
				argStart = i + 1
			}
			depth++
		case ')':
			depth--
			if depth != 0 {
				continue
			}
			if i != argStart && argStart != 0 {
				args = append(args, tag[argStart:i])
			}
			argStart = 0
		case ',':
			if depth != 1 {
				continue
			}
			if argStart != 0 {
				args = append(args, tag[argStart:i])
			}
			argStart = i + 1
		}
	}
	if open != 0 {
		head = tag[:open]
	} else {
		head = tag
	}
	return head, args, rest
}

// TagCompose prefixes oTag with tag and its arguments.
func TagCompose(tag string, args []string, oTag string) string {
	headTag := tag
	if len(args) != 0 {
		headTag += "(" + strings.Join(args, ",") + ")"
	}
	if oTag != "" {
		return headTag + "." + oTag[1:]
	}
	return headTag
}

// TagHas: what should be ! prefixed
func TagHas(tag, what string) bool {
	_, ok := TagGet(tag, what)
	return ok
}

// TagGet returns the arguments of the tag named what within tag.
func TagGet(tag, what string) ([]string, bool) {
	for tag != "" {
		hd, args, rest := TagArgs(tag)
		if hd == what {
			return args, true
		}
		tag = rest
	}
	return nil, false
}
