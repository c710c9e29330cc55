package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// idGenerator hands out fresh node ids during a single sanitize or mutate
// pass. It is seeded with every id already present in the input tree so a
// fresh id can never collide, and counts upward monotonically from the
// highest numeric suffix seen.
type idGenerator struct {
	taken map[string]struct{}
	next  int
}

func newIDGenerator(root *Node) *idGenerator {
	gen := &idGenerator{taken: make(map[string]struct{}), next: 1}
	root.Walk(func(node *Node) {
		if node.Kind == NodeEmpty || node.ID == "" {
			return
		}
		gen.taken[node.ID] = struct{}{}
		if suffix, ok := numericSuffix(node.ID); ok && suffix >= gen.next {
			gen.next = suffix + 1
		}
	})
	return gen
}

func numericSuffix(id string) (int, bool) {
	trimmed := strings.TrimLeft(id, "ls")
	if trimmed == id || trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (g *idGenerator) fresh(prefix string) string {
	for {
		id := fmt.Sprintf("%s%d", prefix, g.next)
		g.next++
		if _, exists := g.taken[id]; !exists {
			g.taken[id] = struct{}{}
			return id
		}
	}
}

// NextLeafID returns a fresh leaf id ("l{n}").
func (g *idGenerator) NextLeafID() string {
	return g.fresh("l")
}

// NextSplitID returns a fresh split id ("s{n}").
func (g *idGenerator) NextSplitID() string {
	return g.fresh("s")
}
