// Package diagnostics provides the single ParseError abstraction the
// parser raises. There is no recovery (spec §7): the first error aborts
// parsing and the parser instance is not reused afterward.
package diagnostics

import (
	"fmt"

	"github.com/jostylr/rix-lang/internal/token"
)

// ErrorCode tags one of the error categories spec §7 enumerates.
type ErrorCode string

const (
	// Structural.
	ErrUnmatchedParen   ErrorCode = "P-STRUCT-001" // unmatched ) ] } }}
	ErrUnexpectedSymbol ErrorCode = "P-STRUCT-002" // unexpected symbol in prefix position
	ErrUnexpectedToken  ErrorCode = "P-STRUCT-003" // unexpected token type
	ErrNoPrefixParseFn  ErrorCode = "P-STRUCT-004" // no prefix parser registered for token

	// Tuple.
	ErrConsecutiveCommas ErrorCode = "P-TUPLE-001"

	// Parameter list.
	ErrExpectedParamName       ErrorCode = "P-PARAM-001"
	ErrKeywordParamNeedsDefault ErrorCode = "P-PARAM-002"

	// Container-brace classification.
	ErrPatternMatchNeedsArray ErrorCode = "P-BRACE-001"
	ErrSystemNeedsEquations   ErrorCode = "P-BRACE-002"
	ErrMapNeedsKeyValuePairs  ErrorCode = "P-BRACE-003"
	ErrMixedEquationTypes     ErrorCode = "P-BRACE-004"

	// Array / matrix.
	ErrMetadataKeyInvalid  ErrorCode = "P-ARRAY-001"
	ErrMixedArrayMetadata  ErrorCode = "P-ARRAY-002"
	ErrMixedMatrixMetadata ErrorCode = "P-ARRAY-003"

	// Calculus.
	ErrExpectedFunctionName    ErrorCode = "P-CALC-001"
	ErrExpectedVariableName    ErrorCode = "P-CALC-002"
	ErrExpectedCommaOrBracket  ErrorCode = "P-CALC-003"
	ErrExpectedClosingBracket  ErrorCode = "P-CALC-004"

	// Embedded-language header.
	ErrUnmatchedOpenParen  ErrorCode = "P-EMBED-001"
	ErrUnmatchedCloseParen ErrorCode = "P-EMBED-002"
	ErrMultipleParenGroups ErrorCode = "P-EMBED-003"
	ErrInvalidHeaderFormat ErrorCode = "P-EMBED-004"
)

var errorTemplates = map[ErrorCode]string{
	ErrUnmatchedParen:   "unmatched '%s'",
	ErrUnexpectedSymbol: "unexpected symbol '%s' in prefix position",
	ErrUnexpectedToken:  "unexpected token: expected %s, got '%s'",
	ErrNoPrefixParseFn:  "no prefix parser for token '%s'",

	ErrConsecutiveCommas: "consecutive commas not allowed",

	ErrExpectedParamName:        "expected parameter name",
	ErrKeywordParamNeedsDefault: "keyword-only parameter '%s' must have a default value",

	ErrPatternMatchNeedsArray: "pattern matching should use array syntax, not brace syntax",
	ErrSystemNeedsEquations:   "system containers must contain only equations, separated by ';'",
	ErrMapNeedsKeyValuePairs:  "map containers must contain only key-value pairs",
	ErrMixedEquationTypes:     "cannot mix equations with other assignment types",

	ErrMetadataKeyInvalid:  "metadata key must be an identifier or string",
	ErrMixedArrayMetadata:  "cannot mix array elements with metadata",
	ErrMixedMatrixMetadata: "cannot mix matrix/tensor syntax with metadata",

	ErrExpectedFunctionName:   "expected function name after integral operator",
	ErrExpectedVariableName:   "expected variable name",
	ErrExpectedCommaOrBracket: "expected comma or closing bracket",
	ErrExpectedClosingBracket: "expected closing bracket after variable list",

	ErrUnmatchedOpenParen:  "unmatched opening parenthesis in embedded-language header",
	ErrUnmatchedCloseParen: "unmatched closing parenthesis in embedded-language header",
	ErrMultipleParenGroups: "multiple parenthetical groups in embedded-language header",
	ErrInvalidHeaderFormat: "invalid header format",
}

// ParseError is the one error type the parser raises.
type ParseError struct {
	Code  ErrorCode
	Token token.Token
	Args  []interface{}
}

func (e *ParseError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		template = string(e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)
	return fmt.Sprintf("%d:%d [%s]: %s", e.Token.Pos.Line, e.Token.Pos.Start, e.Code, message)
}

// New builds a ParseError anchored at tok.
func New(code ErrorCode, tok token.Token, args ...interface{}) *ParseError {
	return &ParseError{Code: code, Token: tok, Args: args}
}
