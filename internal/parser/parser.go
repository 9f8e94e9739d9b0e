// Package parser implements emlang's parser: recursive descent over
// statements, Pratt (precedence-climbing) parsing over expressions,
// built around a two-token cursor (curToken/peekToken) rather than a
// full backtracking cursor, since emlang's grammar needs no speculative
// re-parsing.
package parser

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/token"
)

// Precedence levels, lowest to highest (spec.md §4.2's table).
const (
	_ int = iota
	LOWEST
	ASSIGN  // =
	LOGIC_OR
	LOGIC_AND
	EQUALS  // == !=
	RELATIONAL // < <= > >=
	BIT_OR // |
	BIT_XOR // ^
	BIT_AND // &
	SHIFT   // << >>
	SUM     // + -
	PRODUCT // * / %
	PREFIX  // -x !x ~x *x &x
	CALL    // f(...)
	INDEX   // a[i] a.b
)

var precedences = map[token.Kind]int{
	token.ASSIGN:  ASSIGN,
	token.OR_OR:   LOGIC_OR,
	token.AND_AND: LOGIC_AND,
	token.EQ:      EQUALS,
	token.NOT_EQ:  EQUALS,
	token.LT:      RELATIONAL,
	token.LT_EQ:   RELATIONAL,
	token.GT:      RELATIONAL,
	token.GT_EQ:   RELATIONAL,
	token.PIPE:    BIT_OR,
	token.CARET:   BIT_XOR,
	token.AMP:     BIT_AND,
	token.SHL:     SHIFT,
	token.SHR:     SHIFT,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: PRODUCT,
	token.LPAREN:  CALL,
	token.LBRACKET: INDEX,
	token.DOT:     INDEX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// statementStartKeywords are the panic-mode synchronisation points
// spec.md §4.2 names.
var statementStartKeywords = map[token.Kind]bool{
	token.FUNCTION: true,
	token.LET:      true,
	token.CONST:    true,
	token.FOR:      true,
	token.IF:       true,
	token.WHILE:    true,
	token.RETURN:   true,
}

// Parser consumes a token stream left-to-right via a two-token cursor
// and never mutates it (spec.md §4.2).
type Parser struct {
	tokens   []token.Token
	pos      int
	curTok   token.Token
	peekTok  token.Token
	report   *diag.Reporter

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New builds a Parser over a finished token stream (the lexer's output).
func New(tokens []token.Token, report *diag.Reporter) *Parser {
	p := &Parser{tokens: tokens, report: report}
	p.prefixParseFns = make(map[token.Kind]prefixParseFn)
	p.infixParseFns = make(map[token.Kind]infixParseFn)

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.CHAR, p.parseCharLiteral)
	p.registerPrefix(token.BOOL, p.parseBoolLiteral)
	p.registerPrefix(token.NULL_LITERAL, p.parseNullLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.TILDE, p.parsePrefixExpression)
	p.registerPrefix(token.STAR, p.parseDereferenceExpression)
	p.registerPrefix(token.AMP, p.parseAddressOfExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrCastExpression)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseObjectLiteral)

	p.registerInfix(token.PLUS, p.parseBinaryExpression)
	p.registerInfix(token.MINUS, p.parseBinaryExpression)
	p.registerInfix(token.STAR, p.parseBinaryExpression)
	p.registerInfix(token.SLASH, p.parseBinaryExpression)
	p.registerInfix(token.PERCENT, p.parseBinaryExpression)
	p.registerInfix(token.EQ, p.parseBinaryExpression)
	p.registerInfix(token.NOT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.LT, p.parseBinaryExpression)
	p.registerInfix(token.LT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.GT, p.parseBinaryExpression)
	p.registerInfix(token.GT_EQ, p.parseBinaryExpression)
	p.registerInfix(token.AND_AND, p.parseBinaryExpression)
	p.registerInfix(token.OR_OR, p.parseBinaryExpression)
	p.registerInfix(token.AMP, p.parseBinaryExpression)
	p.registerInfix(token.PIPE, p.parseBinaryExpression)
	p.registerInfix(token.CARET, p.parseBinaryExpression)
	p.registerInfix(token.SHL, p.parseBinaryExpression)
	p.registerInfix(token.SHR, p.parseBinaryExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)

	// prime curTok/peekTok
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(k token.Kind, fn prefixParseFn) { p.prefixParseFns[k] = fn }
func (p *Parser) registerInfix(k token.Kind, fn infixParseFn)   { p.infixParseFns[k] = fn }

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.pos < len(p.tokens) {
		p.peekTok = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekTok = token.Token{Kind: token.EOF, Pos: p.curTok.Pos}
	}
}

// skipNewlines advances past NEWLINE tokens; the grammar treats them as
// structurally insignificant (spec.md §4.1).
func (p *Parser) skipNewlines() {
	for p.curTok.Kind == token.NEWLINE {
		p.nextToken()
	}
}

func (p *Parser) curTokenIs(k token.Kind) bool  { return p.curTok.Kind == k }
func (p *Parser) peekTokenIs(k token.Kind) bool { return p.peekTok.Kind == k }

func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}

func (p *Parser) peekError(want token.Kind) {
	p.report.Errorf(diag.CategorySyntactic, p.peekTok.Pos, "expected next token to be %s, got %s instead", want, p.peekTok.Kind)
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekTok.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curTok.Kind]; ok {
		return pr
	}
	return LOWEST
}

// Parse drives the whole token stream to a Program root (spec.md §4.2).
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}
	p.skipNewlines()
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
		p.skipNewlines()
	}
	return program
}

// synchronize implements panic-mode recovery (spec.md §4.2): discard
// tokens until ';' or a statement-start keyword, then resume. It stops
// with curTok on the ';' or on the token just before the keyword, so the
// caller's usual nextToken() lands on the next statement's first token.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) && !p.curTokenIs(token.SEMICOLON) {
		if statementStartKeywords[p.peekTok.Kind] {
			return
		}
		p.nextToken()
	}
}
