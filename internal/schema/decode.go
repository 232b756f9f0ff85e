package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// typeErrorPattern matches the messages of *yaml.TypeError.
var typeErrorPattern = regexp.MustCompile("^line (\\d+): cannot unmarshal (!!\\w+)(?: `([^`]*)`)? into (.+)$")

type fieldNode struct {
	path string
	node *yaml.Node
}

// decoded is the outcome of unmarshalling one record. Type mismatches do not
// stop decoding: they become problems keyed by field path and the field is
// remembered as failed so later checks skip it.
type decoded struct {
	problems problems
	failed   map[string]bool
}

// decode unmarshals data into out. Only a malformed document is returned as
// an error; type mismatches are collected in the result.
func decode(data []byte, out any) (*decoded, error) {
	d := &decoded{failed: map[string]bool{}}
	err := yaml.Unmarshal(data, out)
	if err == nil {
		return d, nil
	}
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		var p problems
		p.add("", "decode: %v", err)
		return nil, p.err()
	}

	lines := fieldsByLine(data)
	for _, msg := range te.Errors {
		path := locate(lines, msg)
		if path != "" {
			d.failed[path] = true
		}
		d.problems.add(path, "%s", msg)
	}
	return d, nil
}

// finish merges the problems of the validation step, dropping those about
// fields that already failed to decode.
func (d *decoded) finish(err error) error {
	if err == nil {
		return d.problems.err()
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		d.problems.merge("", err)
		return d.problems.err()
	}
	for _, fe := range ve.Problems {
		if !d.covers(fe.Path) {
			d.problems.list = append(d.problems.list, fe)
		}
	}
	return d.problems.err()
}

func (d *decoded) covers(path string) bool {
	for failed := range d.failed {
		if path == failed || strings.HasPrefix(path, failed+".") || strings.HasPrefix(path, failed+"[") {
			return true
		}
	}
	return false
}

// fieldsByLine indexes every field of the document by the line its value
// starts on, parents before children.
func fieldsByLine(data []byte) map[int][]fieldNode {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}
	lines := map[int][]fieldNode{}
	var walk func(path string, n *yaml.Node)
	walk = func(path string, n *yaml.Node) {
		if path != "" {
			lines[n.Line] = append(lines[n.Line], fieldNode{path: path, node: n})
		}
		switch n.Kind {
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				if path != "" {
					key = path + "." + key
				}
				walk(key, n.Content[i+1])
			}
		case yaml.SequenceNode:
			for i, c := range n.Content {
				walk(fmt.Sprintf("%s[%d]", path, i), c)
			}
		}
	}
	walk("", doc.Content[0])
	return lines
}

// locate maps a type error message to the field it is about. Several fields
// can share a line (flow style or JSON), so the tag and quoted value of the
// message pick between them.
func locate(lines map[int][]fieldNode, msg string) string {
	m := typeErrorPattern.FindStringSubmatch(msg)
	if m == nil {
		return ""
	}
	line, _ := strconv.Atoi(m[1])
	tag, value := m[2], m[3]

	var sameTag string
	for _, c := range lines[line] {
		if c.node.ShortTag() != tag {
			continue
		}
		if c.node.Kind != yaml.ScalarNode || valueMatches(c.node.Value, value) {
			return c.path
		}
		if sameTag == "" {
			sameTag = c.path
		}
	}
	if sameTag != "" {
		return sameTag
	}
	if cands := lines[line]; len(cands) > 0 {
		return cands[0].path
	}
	return ""
}

// valueMatches compares a node value with the one quoted in a type error,
// which yaml.v3 shortens to seven characters plus "..." past ten.
func valueMatches(nodeValue, quoted string) bool {
	if prefix, ok := strings.CutSuffix(quoted, "..."); ok && len(nodeValue) > 10 {
		return strings.HasPrefix(nodeValue, prefix)
	}
	return nodeValue == quoted
}
