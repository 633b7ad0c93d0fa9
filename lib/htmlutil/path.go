package htmlutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Step selects the element children of every node in the current set that
// have the tag `Tag`. When Index is non-zero only the Index-th (1-based)
// matching child of each node is kept, like an xpath `div[3]`.
type Step struct {
	Tag   string
	Index int
}

func (s Step) String() string {
	if s.Index == 0 {
		return s.Tag
	}
	return fmt.Sprintf("%s[%d]", s.Tag, s.Index)
}

// Path is a positional address into a document. It either starts at the
// document root or at every element with the id RootId.
//
// Paths are purely positional, if the structure of the page shifts the path
// will silently point at nothing (or at the wrong thing).
type Path struct {
	RootId string
	Steps  []Step
}

// ParsePath parses the xpath subset used to address fields:
//
//	/html/body/div[4]/div[2]
//	//*[@id="innings_1"]/div[1]/div[3]/div[1]/a/text()
//
// a trailing `/text()` is accepted and ignored, all lookups produce text.
func ParsePath(expr string) (Path, error) {
	var path Path
	rest := expr

	if strings.HasPrefix(rest, "//*[@id=") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return Path{}, fmt.Errorf("unterminated id predicate in %q", expr)
		}
		id := rest[len("//*[@id="):end]
		id = strings.Trim(id, `"'`)
		if id == "" {
			return Path{}, fmt.Errorf("empty id predicate in %q", expr)
		}
		path.RootId = id
		rest = rest[end+1:]
	} else if !strings.HasPrefix(rest, "/") {
		return Path{}, fmt.Errorf("path %q must be absolute or rooted at an id", expr)
	}

	rest = strings.TrimSuffix(rest, "/text()")
	for _, part := range strings.Split(rest, "/") {
		if part == "" {
			continue
		}
		step, err := parseStep(part)
		if err != nil {
			return Path{}, fmt.Errorf("%q: %w", expr, err)
		}
		path.Steps = append(path.Steps, step)
	}

	return path, nil
}

// MustParsePath is ParsePath but it panics on an invalid expression, it is
// meant for package level path tables.
func MustParsePath(expr string) Path {
	path, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return path
}

func parseStep(part string) (Step, error) {
	open := strings.Index(part, "[")
	if open < 0 {
		if part == "*" || part == "text()" {
			return Step{}, fmt.Errorf("unsupported step %q", part)
		}
		return Step{Tag: part}, nil
	}
	if !strings.HasSuffix(part, "]") {
		return Step{}, fmt.Errorf("unterminated index in step %q", part)
	}
	idx, err := strconv.Atoi(part[open+1 : len(part)-1])
	if err != nil || idx < 1 {
		return Step{}, fmt.Errorf("invalid index in step %q", part)
	}
	return Step{Tag: part[:open], Index: idx}, nil
}

func (p Path) String() string {
	var b strings.Builder
	if p.RootId != "" {
		fmt.Fprintf(&b, `//*[@id="%s"]`, p.RootId)
	}
	for _, s := range p.Steps {
		b.WriteString("/")
		b.WriteString(s.String())
	}
	return b.String()
}

// Child returns a copy of the path extended by a single step.
func (p Path) Child(tag string, index int) Path {
	return p.Join(Path{Steps: []Step{{Tag: tag, Index: index}}})
}

// Join returns a copy of the path with the steps of `rel` appended, the root
// of `rel` is ignored.
func (p Path) Join(rel Path) Path {
	steps := make([]Step, 0, len(p.Steps)+len(rel.Steps))
	steps = append(steps, p.Steps...)
	steps = append(steps, rel.Steps...)
	return Path{RootId: p.RootId, Steps: steps}
}

// Nodes resolves the path to the set of matching elements in document order.
func (p Path) Nodes(doc *goquery.Document) []*html.Node {
	if doc == nil {
		return nil
	}

	var current []*html.Node
	if p.RootId != "" {
		current = doc.Find(fmt.Sprintf(`[id="%s"]`, p.RootId)).Nodes
	} else {
		current = doc.Nodes
	}

	return p.walk(current)
}

// NodesFrom resolves the steps of the path relative to `node`, the root of
// the path is ignored.
func (p Path) NodesFrom(node *html.Node) []*html.Node {
	if node == nil {
		return nil
	}
	return p.walk([]*html.Node{node})
}

func (p Path) walk(current []*html.Node) []*html.Node {
	for _, step := range p.Steps {
		var next []*html.Node
		for _, n := range current {
			next = append(next, step.apply(n)...)
		}
		current = next
		if len(current) == 0 {
			return nil
		}
	}
	return current
}

func (s Step) apply(n *html.Node) []*html.Node {
	var out []*html.Node
	position := 0
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.Data != s.Tag {
			continue
		}
		position++
		if s.Index == 0 {
			out = append(out, child)
			continue
		}
		if position == s.Index {
			return []*html.Node{child}
		}
	}
	return out
}

// Locate returns the direct text of every element the path resolves to, in
// document order. No match is not an error, it is an empty result.
func (p Path) Locate(doc *goquery.Document) []string {
	var values []string
	for _, n := range p.Nodes(doc) {
		values = append(values, OwnText(n)...)
	}
	return values
}

// First returns the first located text value with surrounding whitespace
// trimmed, the bool reports whether anything was located at all.
func (p Path) First(doc *goquery.Document) (string, bool) {
	values := p.Locate(doc)
	if len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[0]), true
}

// FirstFrom is First but relative to `node`, see NodesFrom.
func (p Path) FirstFrom(node *html.Node) (string, bool) {
	for _, n := range p.NodesFrom(node) {
		values := OwnText(n)
		if len(values) > 0 {
			return strings.TrimSpace(values[0]), true
		}
	}
	return "", false
}
