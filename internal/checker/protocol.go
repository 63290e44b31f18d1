package checker

import (
	"candy/internal/ast"
	"candy/internal/diag"
)

// edgeKey identifies one directed transition for duplicate detection.
type edgeKey struct {
	from, to string
}

// checkProtocols is Phase B: each protocol is checked independently for
// state uniqueness, the presence of Init, transition well-formedness,
// determinism, finality, and reachability. All nine checks run and may
// each emit independently.
func (c *checker) checkProtocols() {
	for _, proto := range c.prog.Protocols {
		c.checkProtocol(proto)
	}
}

func (c *checker) checkProtocol(proto *ast.ProtocolDecl) {
	// 1. Unique state names, first declaration wins; later ones are flagged.
	firstDecl := make(map[string]ast.StateDecl)
	var order []string
	for _, sd := range proto.States {
		if _, dup := firstDecl[sd.Name.Name]; dup {
			c.rep.Error(diag.ProtocolDuplicateState, sd.Span, "state '"+sd.Name.Name+"' is already declared")
			continue
		}
		firstDecl[sd.Name.Name] = sd
		order = append(order, sd.Name.Name)
	}

	// 2. An empty state set short-circuits the remaining checks.
	if len(order) == 0 {
		c.rep.Error(diag.ProtocolEmpty, proto.Span, "protocol '"+proto.Name.Name+"' declares no states")
		return
	}

	// 3. Init must exist.
	if _, ok := firstDecl["Init"]; !ok {
		c.rep.Error(diag.ProtocolMissingInit, proto.Span, "protocol '"+proto.Name.Name+"' has no 'Init' state")
	}

	// 4. Transitions: unknown endpoints and duplicate edges.
	seenEdges := make(map[edgeKey]bool)
	adj := make(map[string][]string)
	outDegree := make(map[string]int)
	for _, tr := range proto.Transitions {
		_, fromKnown := firstDecl[tr.From.Name]
		_, toKnown := firstDecl[tr.To.Name]
		if !fromKnown {
			c.rep.Error(diag.ProtocolUnknownState, tr.From.Span, "unknown state '"+tr.From.Name+"'")
		}
		if !toKnown {
			c.rep.Error(diag.ProtocolUnknownState, tr.To.Span, "unknown state '"+tr.To.Name+"'")
		}
		if !fromKnown || !toKnown {
			continue
		}
		key := edgeKey{from: tr.From.Name, to: tr.To.Name}
		if seenEdges[key] {
			c.rep.Error(diag.ProtocolDuplicateTransition, tr.Span, "transition '"+tr.From.Name+" -> "+tr.To.Name+"' is already declared")
			continue
		}
		seenEdges[key] = true
		adj[tr.From.Name] = append(adj[tr.From.Name], tr.To.Name)
		outDegree[tr.From.Name]++
	}

	// 5. Determinism: at most one outgoing transition per state.
	for _, name := range order {
		if outDegree[name] > 1 {
			c.rep.Error(diag.ProtocolNondeterministic, firstDecl[name].Span, "state '"+name+"' has more than one outgoing transition")
		}
	}

	// 6. Final states must not have outgoing transitions.
	for _, name := range order {
		sd := firstDecl[name]
		if sd.IsFinal && outDegree[name] > 0 {
			c.rep.Error(diag.ProtocolFinalHasOutgoing, sd.Span, "final state '"+name+"' has an outgoing transition")
		}
	}

	// 7. Reachability from Init.
	reached := map[string]bool{}
	if _, ok := firstDecl["Init"]; ok {
		reached["Init"] = true
		queue := []string{"Init"}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if !reached[next] {
					reached[next] = true
					queue = append(queue, next)
				}
			}
		}
		for _, name := range order {
			if name != "Init" && !reached[name] {
				c.rep.Error(diag.ProtocolUnreachableState, firstDecl[name].Span, "state '"+name+"' is unreachable from 'Init'")
			}
		}
	}

	// 8. Dead ends: out-degree zero and not final.
	for _, name := range order {
		sd := firstDecl[name]
		if outDegree[name] == 0 && !sd.IsFinal {
			c.rep.Error(diag.ProtocolDeadEndState, sd.Span, "state '"+name+"' has no outgoing transition and is not marked 'final'")
		}
	}

	// 9. Some final state must be reachable from Init.
	if _, ok := firstDecl["Init"]; ok {
		anyFinalReached := false
		for _, name := range order {
			if firstDecl[name].IsFinal && reached[name] {
				anyFinalReached = true
				break
			}
		}
		if !anyFinalReached {
			c.rep.Error(diag.ProtocolNoFinalReachable, proto.Span, "no final state of protocol '"+proto.Name.Name+"' is reachable from 'Init'")
		}
	}
}
