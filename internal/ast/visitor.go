package ast

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil && !isNilNode(n) {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *Program:
		for _, item := range n.Items {
			add(item)
		}

	case *GlobalDecl:
		add(n.Decl)

	case *FuncDecl:
		add(n.Params)
		add(n.Body)

	case *ParamList:
		for _, p := range n.List {
			add(p)
		}

	case *Param:
		// no children

	// Statements
	case *VarDecl:
		add(n.Init)

	case *LocalDecl:
		add(n.Decl)

	case *AssignStmt:
		add(n.Value)

	case *ExprStmt:
		add(n.Expr)

	case *ReturnStmt:
		add(n.Value)

	case *EmptyStmt:
		// no children

	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}

	case *IfStmt:
		add(n.Cond)
		add(n.Then)
		add(n.Else)

	case *WhileStmt:
		add(n.Cond)
		add(n.Body)

	case *ForStmt:
		add(n.Init)
		add(n.Cond)
		add(n.Post)
		add(n.Body)

	// Expressions
	case *IntLit, *FloatLit, *StrLit, *Ident, *BadExpr:
		// no children

	case *CallExpr:
		for _, arg := range n.Args {
			add(arg)
		}

	case *BinaryExpr:
		add(n.Left)
		add(n.Right)

	case *UnaryExpr:
		add(n.Expr)

	case *PostfixExpr:
		add(n.Expr)

	case *GroupExpr:
		add(n.Expr)
	}
	return out
}

// isNilNode reports whether n is an interface holding a typed nil pointer,
// as happens for optional fields such as FuncDecl.Params.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *ParamList:
		return v == nil
	case *Block:
		return v == nil
	case *VarDecl:
		return v == nil
	}
	return false
}

// Walk traverses a tree in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all calls
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.CallExpr); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || isNilNode(node) || !fn(node) {
		return
	}
	for _, c := range Children(node) {
		Walk(c, fn)
	}
}

// Inspect traverses a tree with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the root node.
// If fn returns false, the children of that node are not visited. Otherwise,
// once all children have been visited, fn(nil, node) is called so callers
// can tell when a node is left.
//
// Example: Track block depth
//
//	depth := 0
//	ast.Inspect(program, func(n, parent ast.Node) bool {
//	    if n == nil {
//	        if _, ok := parent.(*ast.Block); ok {
//	            depth--
//	        }
//	        return true
//	    }
//	    if _, ok := n.(*ast.Block); ok {
//	        depth++
//	    }
//	    return true
//	})
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if node == nil || isNilNode(node) || !fn(node, parent) {
		return
	}
	for _, c := range Children(node) {
		inspect(c, node, fn)
	}
	fn(nil, node)
}
