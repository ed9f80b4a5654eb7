// Package keymap implements a prefix tree from key-token sequences to
// commands. It is generic over the command type so it carries no dependency
// on editor state.
//
// A node is either a leaf bound to a command or an interior node holding
// child transitions, never both: a binding that is a strict prefix of
// another would make one of the two unreachable at dispatch time, so Build
// rejects the configuration outright.
package keymap

import (
	"fmt"
	"strings"
)

// Pair binds one token sequence to a command.
type Pair[C any] struct {
	Seq []string
	Cmd C
}

// Bind is a convenience constructor for a Pair.
func Bind[C any](cmd C, seq ...string) Pair[C] {
	return Pair[C]{Seq: seq, Cmd: cmd}
}

// Node is a keymap trie node: a leaf carrying a command, or an interior node
// carrying child transitions.
type Node[C any] struct {
	cmd      C
	leaf     bool
	children map[string]*Node[C]
}

// IsLeaf reports whether the node is bound to a command.
func (n *Node[C]) IsLeaf() bool { return n.leaf }

// Command returns the bound command. Only meaningful on a leaf.
func (n *Node[C]) Command() C { return n.cmd }

// Step returns the child reached by token, or false when no transition
// exists.
func (n *Node[C]) Step(token string) (*Node[C], bool) {
	if n.leaf {
		return nil, false
	}
	child, ok := n.children[token]
	return child, ok
}

// Build constructs the trie from flat (sequence, command) pairs.
// It fails on empty sequences, duplicate sequences, and any pair of
// sequences where one is a strict prefix of the other.
func Build[C any](pairs []Pair[C]) (*Node[C], error) {
	root := &Node[C]{children: make(map[string]*Node[C])}

	for _, p := range pairs {
		if len(p.Seq) == 0 {
			return nil, fmt.Errorf("keymap: empty key sequence")
		}
		node := root
		for i, tok := range p.Seq {
			if node.leaf {
				return nil, fmt.Errorf("keymap: %q is bound but is a prefix of %q",
					strings.Join(p.Seq[:i], " "), strings.Join(p.Seq, " "))
			}
			last := i == len(p.Seq)-1
			child, ok := node.children[tok]
			if !ok {
				child = &Node[C]{}
				if !last {
					child.children = make(map[string]*Node[C])
				}
				node.children[tok] = child
			}
			if last {
				if ok {
					if child.leaf {
						return nil, fmt.Errorf("keymap: %q is bound twice", strings.Join(p.Seq, " "))
					}
					return nil, fmt.Errorf("keymap: %q is bound but prefixes longer bindings", strings.Join(p.Seq, " "))
				}
				child.leaf = true
				child.cmd = p.Cmd
			}
			node = child
		}
	}

	return root, nil
}
