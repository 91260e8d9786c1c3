package syntax

var (
	C = &Profile{
		Name:              "c",
		Extensions:        []string{".c", ".h", ".cpp", ".cc"},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return",
			"else", "struct", "union", "typedef", "static", "enum", "class",
			"case", "sizeof",
		},
		Types: []string{
			"int", "long", "double", "float", "char", "unsigned", "signed",
			"void",
		},
		StringQuotes: `"`,
		Flags:        HighlightNumbers | HighlightStrings | HighlightChars,
	}

	Go = &Profile{
		Name:              "go",
		Extensions:        []string{".go"},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Keywords: []string{
			"break", "default", "func", "interface", "select", "case", "defer",
			"go", "map", "struct", "chan", "else", "goto", "package", "switch",
			"const", "fallthrough", "if", "range", "type", "continue", "for",
			"import", "return", "var",
		},
		Types: []string{
			"bool", "byte", "complex64", "complex128", "error", "float32",
			"float64", "int", "int8", "int16", "int32", "int64", "rune",
			"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
			"any",
		},
		Builtins: []string{
			"append", "cap", "clear", "close", "complex", "copy", "delete",
			"imag", "len", "make", "max", "min", "new", "panic", "print",
			"println", "real", "recover", "true", "false", "iota", "nil",
		},
		StringQuotes: "\"`",
		Flags:        HighlightNumbers | HighlightStrings | HighlightChars,
	}

	Rust = &Profile{
		Name:              "rust",
		Extensions:        []string{".rs"},
		SingleLineComment: "//",
		MultiLineStart:    "/*",
		MultiLineEnd:      "*/",
		Keywords: []string{
			"as", "break", "const", "continue", "crate", "else", "enum",
			"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop",
			"match", "mod", "move", "mut", "pub", "ref", "return", "self",
			"Self", "static", "struct", "super", "trait", "true", "type",
			"unsafe", "use", "where", "while", "async", "await", "dyn",
		},
		Types: []string{
			"bool", "char", "f32", "f64", "i128", "i16", "i32", "i64", "i8",
			"isize", "str", "u128", "u16", "u32", "u64", "u8", "usize",
		},
		StringQuotes: `"`,
		Flags:        HighlightNumbers | HighlightStrings | HighlightChars,
	}

	Haskell = &Profile{
		Name:              "haskell",
		Extensions:        []string{".hs"},
		SingleLineComment: "--",
		MultiLineStart:    "{-",
		MultiLineEnd:      "-}",
		Keywords: []string{
			"as", "case", "of", "class", "data", "data family",
			"data instance", "default", "deriving", "deriving instance", "do",
			"forall", "foreign", "hiding", "if", "then", "else", "import",
			"infix", "infixl", "infixr", "instance", "let", "in", "mdo",
			"module", "newtype", "proc", "qualified", "rec", "type",
			"type family", "type instance", "where",
		},
		Types: []string{
			"Bool", "Bounded", "Char", "Double", "Either", "Enum", "Eq",
			"Float", "Floating", "Fractional", "Functor", "IO", "Int",
			"Integer", "Integral", "Maybe", "Monad", "Num", "Ord", "Ordering",
			"Rational", "Real", "RealFloat", "RealFrac", "String",
		},
		StringQuotes: `"`,
		Flags:        HighlightNumbers | HighlightStrings | HighlightChars,
	}

	Python = &Profile{
		Name:              "python",
		Extensions:        []string{".py"},
		SingleLineComment: "#",
		Keywords: []string{
			"False", "None", "True", "and", "as", "assert", "async", "await",
			"break", "class", "continue", "def", "del", "elif", "else",
			"except", "finally", "for", "from", "global", "if", "import", "in",
			"is", "lambda", "nonlocal", "not", "or", "pass", "raise", "return",
			"try", "while", "with", "yield",
		},
		Types: []string{"int", "float", "bool", "str", "bytes", "object"},
		Builtins: []string{
			"abs", "all", "any", "ascii", "bin", "bool", "breakpoint",
			"bytearray", "bytes", "callable", "chr", "classmethod", "compile",
			"complex", "delattr", "dict", "dir", "divmod", "enumerate", "eval",
			"exec", "filter", "float", "format", "frozenset", "getattr",
			"globals", "hasattr", "hash", "help", "hex", "id", "input", "int",
			"isinstance", "issubclass", "iter", "len", "list", "locals", "map",
			"max", "memoryview", "min", "next", "object", "oct", "open", "ord",
			"pow", "print", "property", "range", "repr", "reversed", "round",
			"set", "setattr", "slice", "sorted", "staticmethod", "str", "sum",
			"super", "tuple", "type", "vars", "zip",
		},
		StringQuotes: `"'`,
		Flags:        HighlightNumbers | HighlightStrings,
	}

	Shell = &Profile{
		Name:              "shell",
		Extensions:        []string{".sh", ".bash"},
		SingleLineComment: "#",
		Keywords: []string{
			"if", "fi", "then", "elif", "else", "return", "function", "for",
			"case", "esac", "while", "do", "done", "in", "break", "select",
			"until",
		},
		Builtins: []string{
			"alias", "bg", "bind", "builtin", "caller", "cd", "command",
			"compgen", "complete", "compopt", "coproc", "declare", "dirs",
			"disown", "echo", "enable", "eval", "exec", "export", "false", "fc",
			"fg", "getopts", "hash", "help", "history", "jobs", "kill", "let",
			"local", "logout", "mapfile", "popd", "printf", "pushd", "pwd",
			"read", "readarray", "readonly", "set", "shift", "shopt", "source",
			"suspend", "test", "time", "times", "trap", "true", "type",
			"typeset", "ulimit", "umask", "unalias", "unset", "wait",
		},
		StringQuotes: `"'`,
		Flags:        HighlightNumbers | HighlightStrings | HighlightChars,
	}
)

// Profiles is the highlight database, searched in order by Lookup.
var Profiles = []*Profile{C, Go, Rust, Haskell, Python, Shell}
