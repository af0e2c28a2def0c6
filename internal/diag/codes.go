package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Внутренние инварианты фронтенда
	InternalInvariant Code = 100

	// Командная строка
	CLIFileFailedToRead Code = 500

	// Лексические
	LexIllegalCharacter Code = 1001
	LexMissingCharacter Code = 1002
	LexInvalidEscape    Code = 1003
	LexInvalidNumber    Code = 1004

	// Парсерные
	SynMissingToken      Code = 2001
	SynInvalidHeader     Code = 2002
	SynInvalidMutability Code = 2003

	// Валидатор
	SemaName Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown",
	InternalInvariant:    "Internal Exception",
	CLIFileFailedToRead:  "FileFailedToRead",
	LexIllegalCharacter:  "IllegalCharacter",
	LexMissingCharacter:  "MissingCharacter",
	LexInvalidEscape:     "InvalidEscape",
	LexInvalidNumber:     "InvalidNumber",
	SynMissingToken:      "MissingToken",
	SynInvalidHeader:     "InvalidHeader",
	SynInvalidMutability: "InvalidMutability",
	SemaName:             "Name",
}

// Category groups codes by the stage that raises them.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryInternal
	CategoryCommandLine
	CategoryLexer
	CategoryParser
	CategoryValidator
)

// Prefix is the banner heading for diagnostics of this category.
func (c Category) Prefix() string {
	switch c {
	case CategoryInternal:
		return "InternalException"
	case CategoryCommandLine:
		return "CommandLineException"
	case CategoryLexer:
		return "LexerException"
	case CategoryParser:
		return "ParserException"
	case CategoryValidator:
		return "ValidatorException"
	}
	return "Exception"
}

func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 100 && ic < 500:
		return CategoryInternal
	case ic >= 500 && ic < 1000:
		return CategoryCommandLine
	case ic >= 1000 && ic < 2000:
		return CategoryLexer
	case ic >= 2000 && ic < 3000:
		return CategoryParser
	case ic >= 3000 && ic < 4000:
		return CategoryValidator
	}
	return CategoryUnknown
}

func (c Code) ID() string {
	switch c.Category() {
	case CategoryInternal:
		return fmt.Sprintf("INT%04d", int(c))
	case CategoryCommandLine:
		return fmt.Sprintf("CLI%04d", int(c))
	case CategoryLexer:
		return fmt.Sprintf("LEX%04d", int(c))
	case CategoryParser:
		return fmt.Sprintf("SYN%04d", int(c))
	case CategoryValidator:
		return fmt.Sprintf("SEM%04d", int(c))
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
