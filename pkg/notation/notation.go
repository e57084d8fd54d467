// Package notation reads and writes binary trees in a compact brace notation.
//
// # Grammar
//
//	tree  = label [ "{" child "," child "}" ]
//	child = tree | "_"
//
// A label is any run of characters other than '{', '}', ',' and white space.
// "_" marks an absent child. Both child positions must be written, so a node
// with only a right child is "6{_,9}". White space between tokens is ignored.
//
//	1{2{4,5{8,_}},3{6{_,9},7}}
//
// describes the tree
//
//	       1
//	      / \
//	     /   \
//	    /     \
//	   /       \
//	   2       3
//	  / \     / \
//	 /   \   /   \
//	 4   5   6   7
//	    /     \
//	    8     9
//
// The notation is meant for typing trees on the command line and in tests.
// [Format] renders elements with "%v" and does not escape them, so elements
// whose text contains delimiters do not read back.
package notation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/graytree/pkg/bintree"
	"github.com/matzehuels/graytree/pkg/errors"
)

// Absent is the token for a missing child.
const Absent = "_"

// Parse builds the tree described by expr. Errors carry the code
// [errors.ErrCodeInvalidExpression] and the byte offset of the problem.
func Parse(expr string) (*bintree.Node[string], error) {
	if err := errors.ValidateExpression(expr); err != nil {
		return nil, err
	}

	p := &parser{src: expr}
	root, err := p.tree()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, p.errorf(0, "the root cannot be absent")
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf(p.pos, "unexpected %q after the root", p.peek())
	}
	return root, nil
}

type parser struct {
	src string
	pos int
}

// tree parses a tree or an absent marker, returning nil for the latter.
func (p *parser) tree() (*bintree.Node[string], error) {
	p.skipSpace()
	start := p.pos
	label := p.label()
	if label == "" {
		if p.eof() {
			return nil, p.errorf(p.pos, "expected a label, found end of input")
		}
		return nil, p.errorf(p.pos, "expected a label, found %q", p.peek())
	}

	p.skipSpace()
	hasChildren := p.consume('{')
	if label == Absent {
		if hasChildren {
			return nil, p.errorf(start, "an absent child cannot have children")
		}
		return nil, nil
	}

	b := bintree.NewBuilder[string]().Data(label)
	if !hasChildren {
		return b.Build()
	}

	left, err := p.tree()
	if err != nil {
		return nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	right, err := p.tree()
	if err != nil {
		return nil, err
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return b.Left(left).Right(right).Build()
}

func (p *parser) label() string {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if strings.ContainsRune("{},", r) || unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.consume(c) {
		return nil
	}
	if p.eof() {
		return p.errorf(p.pos, "expected %q, found end of input", c)
	}
	return p.errorf(p.pos, "expected %q, found %q", c, p.peek())
}

func (p *parser) consume(c byte) bool {
	if !p.eof() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) errorf(offset int, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidExpression, "offset %d: %s", offset, fmt.Sprintf(format, args...))
}

// Format writes the tree rooted at n in brace notation. The empty tree formats
// as the empty string.
func Format[T any](n *bintree.Node[T]) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	format(&sb, n)
	return sb.String()
}

func format[T any](sb *strings.Builder, n *bintree.Node[T]) {
	if n == nil {
		sb.WriteString(Absent)
		return
	}
	fmt.Fprint(sb, n.Data())
	if n.IsLeaf() {
		return
	}
	sb.WriteByte('{')
	format(sb, n.Left())
	sb.WriteByte(',')
	format(sb, n.Right())
	sb.WriteByte('}')
}
