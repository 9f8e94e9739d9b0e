package parser

import (
	"github.com/byacherx/emlangc/internal/ast"
	"github.com/byacherx/emlangc/internal/diag"
	"github.com/byacherx/emlangc/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case token.LET, token.CONST:
		return p.parseVarDeclStatement()
	case token.FUNCTION:
		return p.parseFunctionDeclStatement()
	case token.EXTERN:
		return p.parseExternFunctionDeclStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.SEMICOLON:
		return &ast.EmptyStatement{Token: p.curTok}
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curTok}
	p.nextToken() // consume '{'
	p.skipNewlines()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
		p.skipNewlines()
	}
	if !p.curTokenIs(token.RBRACE) {
		p.report.Errorf(diag.CategorySyntactic, p.curTok.Pos, "expected '}' to close block")
	}
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curTok
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		p.synchronize()
		return &ast.EmptyStatement{Token: tok}
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curTok}
	if !p.expectPeek(token.LPAREN) {
		p.synchronize()
		return stmt
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		p.synchronize()
		return stmt
	}
	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return stmt
	}
	stmt.Consequence = p.parseBlockStatement()
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			inner := p.parseIfStatement()
			wrapperTok := token.Token{Kind: token.LBRACE, Literal: "{", Pos: inner.Pos()}
			stmt.Alternative = &ast.BlockStatement{Token: wrapperTok, Statements: []ast.Statement{inner}}
		} else if p.expectPeek(token.LBRACE) {
			stmt.Alternative = p.parseBlockStatement()
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curTok}
	if !p.expectPeek(token.LPAREN) {
		p.synchronize()
		return stmt
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		p.synchronize()
		return stmt
	}
	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

// parseForStatement implements the C-style `for (init; cond; incr) body`
// grammar supplemented into this parser (spec.md §9's open question:
// the reference leaves this a stub, but the codegen contract in §4.6
// assumes it exists).
func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curTok}
	if !p.expectPeek(token.LPAREN) {
		p.synchronize()
		return stmt
	}
	p.nextToken()

	if p.curTokenIs(token.LET) || p.curTokenIs(token.CONST) {
		stmt.Init = p.parseVarDeclStatement()
	} else if !p.curTokenIs(token.SEMICOLON) {
		exprTok := p.curTok
		expr := p.parseExpression(LOWEST)
		stmt.Init = &ast.ExpressionStatement{Token: exprTok, Expression: expr}
		if !p.expectPeek(token.SEMICOLON) {
			p.synchronize()
			return stmt
		}
	} else {
		// empty init, curTok sits on ';'
	}
	p.nextToken() // move past ';' onto condition (or onto the next ';')

	if !p.curTokenIs(token.SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.SEMICOLON) {
			p.synchronize()
			return stmt
		}
	}
	p.nextToken() // move past ';' onto increment (or onto ')')

	if !p.curTokenIs(token.RPAREN) {
		stmt.Increment = p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			p.synchronize()
			return stmt
		}
	}
	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return stmt
	}
	stmt.Body = p.parseBlockStatement()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curTok}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}
	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseVarDeclStatement() ast.Statement {
	stmt := &ast.VarDeclStatement{Token: p.curTok, IsConst: p.curTokenIs(token.CONST)}
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return stmt
	}
	stmt.Name = &ast.Identifier{Token: p.curTok, Name: p.curTok.Literal}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.expectPeekTypeKeyword() {
			p.synchronize()
			return stmt
		}
		stmt.Type = p.parseTypeName()
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		stmt.Init = p.parseExpression(LOWEST)
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// expectPeekTypeKeyword advances onto the peek token if it names a
// primitive type; the language has no user-defined type names (spec.md
// §3's type vocabulary is closed).
func (p *Parser) expectPeekTypeKeyword() bool {
	if p.peekTok.Kind.IsTypeKeyword() {
		p.nextToken()
		return true
	}
	p.report.Errorf(diag.CategorySyntactic, p.peekTok.Pos, "expected a type name, got %s instead", p.peekTok.Kind)
	return false
}

// parseTypeName parses a type annotation already positioned on its base
// name token, consuming any trailing '*' pointer-rank suffixes.
func (p *Parser) parseTypeName() *ast.TypeName {
	tn := &ast.TypeName{Token: p.curTok, Name: p.curTok.Literal}
	for p.peekTokenIs(token.STAR) {
		p.nextToken()
		tn.PointerRank++
	}
	return tn
}

func (p *Parser) parseFunctionDeclStatement() ast.Statement {
	return p.parseFunctionLike(false)
}

func (p *Parser) parseExternFunctionDeclStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.FUNCTION) {
		p.synchronize()
		return &ast.EmptyStatement{Token: tok}
	}
	fn := p.parseFunctionLike(true)
	if decl, ok := fn.(*ast.FunctionDeclStatement); ok {
		decl.Token = tok
	}
	return fn
}

func (p *Parser) parseFunctionLike(isExtern bool) ast.Statement {
	decl := &ast.FunctionDeclStatement{Token: p.curTok, IsExtern: isExtern}
	if !p.expectPeek(token.IDENT) {
		p.synchronize()
		return decl
	}
	decl.Name = &ast.Identifier{Token: p.curTok, Name: p.curTok.Literal}

	if !p.expectPeek(token.LPAREN) {
		p.synchronize()
		return decl
	}
	decl.Params = p.parseParameterList()

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		decl.ReturnType = p.parseTypeName()
	}

	if isExtern {
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
		return decl
	}

	if !p.expectPeek(token.LBRACE) {
		p.synchronize()
		return decl
	}
	decl.Body = p.parseBlockStatement()
	return decl
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseParameter())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParameter())
	}
	if !p.expectPeek(token.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	param := &ast.Parameter{Token: p.curTok, Name: &ast.Identifier{Token: p.curTok, Name: p.curTok.Literal}}
	if !p.expectPeek(token.COLON) {
		return param
	}
	p.nextToken()
	if !p.curTok.Kind.IsTypeKeyword() {
		p.report.Errorf(diag.CategorySyntactic, p.curTok.Pos, "expected a type name, got %s instead", p.curTok.Kind)
	}
	param.Type = p.parseTypeName()
	return param
}
