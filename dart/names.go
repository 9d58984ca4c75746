package dart

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// invalidNameChars split a source name into words that are camel-joined.
var invalidNameChars = []string{"-", "~", ":", "#", "$"}

// reservedNames rewrites Dart reserved words into usable identifiers.
var reservedNames = map[string]string{
	"assert":   "aAssert",
	"break":    "bBreak",
	"case":     "cCase",
	"catch":    "cCatch",
	"class":    "cClass",
	"const":    "cConst",
	"continue": "cContinue",
	"default":  "dDefault",
	"do":       "dDo",
	"else":     "eElse",
	"enum":     "eEnum",
	"extends":  "eExtends",
	"false":    "fFalse",
	"final":    "fFinal",
	"finally":  "fFinally",
	"for":      "fFor",
	"if":       "iIf",
	"in":       "iIn",
	"is":       "iIs",
	"new":      "nNew",
	"null":     "nNull",
	"rethrow":  "rRethrow",
	"return":   "rReturn",
	"super":    "sSuper",
	"switch":   "sSwitch",
	"this":     "tThis",
	"throw":    "tThrow",
	"true":     "tTrue",
	"try":      "tTry",
	"var":      "vVar",
	"void":     "vVoid",
	"while":    "wWhile",
	"with":     "wWith",
}

// VarName turns a name as written in source (or in a map key) into a valid,
// non-reserved Dart identifier. "first-name" becomes "firstName", "class"
// becomes "cClass" and "1st" becomes "n1st".
func VarName(source string) string {
	name := source
	for _, sep := range invalidNameChars {
		if !strings.Contains(name, sep) {
			continue
		}
		words := strings.Split(name, sep)
		var sb strings.Builder
		for i, w := range words {
			if i == 0 {
				sb.WriteString(w)
			} else {
				sb.WriteString(capitalize(w))
			}
		}
		name = sb.String()
	}

	if rewritten, ok := reservedNames[name]; ok {
		name = rewritten
	}

	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "n" + name
	}
	return name
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
