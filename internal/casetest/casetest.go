// Package casetest runs table tests kept in YAML files. Each case names an
// operation, its arguments and the expected result or error text; in update
// mode the observed values are written back into the files, preserving
// comments and layout.
package casetest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Case is a single test case of a YAML file.
type Case struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Op          string   `yaml:"op"`   // registered with Suite.Register
	Type        string   `yaml:"type"` // value type, when the group default does not fit
	Args        []string `yaml:"args"`
	Expect      struct {
		Result string `yaml:"result"`
		Error  string `yaml:"error"`
	} `yaml:"expect"`
}

// Group is the content of one YAML file.
type Group struct {
	Name  string `yaml:"-"` // file name
	Type  string `yaml:"type"`
	Cases []Case `yaml:"tests"`
}

// Runner evaluates a case and returns its rendered result.
type Runner func(c Case) (string, error)

// Suite holds the groups read from a directory.
type Suite struct {
	groups   []*Group
	runners  map[string]Runner
	backings map[*Group]*groupBacking
	mu       sync.Mutex
}

type groupBacking struct {
	path      string
	root      *yaml.Node
	caseNodes []*yaml.Node
}

// Read loads every .yaml and .yml file below dir.
func Read(dir string) (*Suite, error) {
	suite := &Suite{
		runners:  make(map[string]Runner),
		backings: make(map[*Group]*groupBacking),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		var root yaml.Node
		if err := yaml.Unmarshal(content, &root); err != nil {
			return errors.Wrapf(err, "parse %s", path)
		}
		if len(root.Content) == 0 {
			return errors.Newf("%s: empty yaml", path)
		}
		doc := root.Content[0]

		casesNode, err := locateCasesNode(doc)
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}

		group := &Group{}
		if doc.Kind == yaml.SequenceNode {
			err = doc.Decode(&group.Cases)
		} else {
			err = doc.Decode(group)
		}
		if err != nil {
			return errors.Wrapf(err, "%s: decode", path)
		}
		group.Name = filepath.Base(path)
		if len(casesNode.Content) != len(group.Cases) {
			return errors.Newf("%s: case count mismatch between yaml node and struct", path)
		}

		suite.groups = append(suite.groups, group)
		suite.backings[group] = &groupBacking{
			path:      path,
			root:      &root,
			caseNodes: casesNode.Content,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

// Groups returns the groups read, in file order.
func (s *Suite) Groups() []*Group {
	return s.groups
}

// Register binds op, as named by the cases, to run.
func (s *Suite) Register(op string, run Runner) {
	s.runners[op] = run
}

// Run runs every case as a subtest. With update, mismatching expectations are
// rewritten in the YAML files instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		g := group
		t.Run(g.Name, func(t *testing.T) {
			for i := range g.Cases {
				idx := i
				t.Run(caseName(g, idx), func(t *testing.T) {
					s.runCase(t, g, idx, update)
				})
			}
		})
	}
}

func caseName(g *Group, idx int) string {
	if name := g.Cases[idx].Name; name != "" {
		return name
	}
	return fmt.Sprintf("Case-%d", idx)
}

func (s *Suite) runCase(t *testing.T, group *Group, idx int, update bool) {
	c := group.Cases[idx]
	if c.Type == "" {
		c.Type = group.Type
	}
	run, ok := s.runners[c.Op]
	if !ok {
		t.Fatalf("op %q not registered", c.Op)
	}

	var result, errText string
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
			}
		}()
		res, err := run(c)
		result = res
		if err != nil {
			errText = err.Error()
		}
	}()

	changes := s.applyExpect(t, group, idx, result, errText, update)
	if update && len(changes) > 0 {
		if err := s.persistGroup(group); err != nil {
			t.Fatalf("persist %s: %v", s.backings[group].path, err)
		}
		t.Logf("casetest: updated %s (%s): %s", s.backings[group].path, caseName(group, idx), strings.Join(changes, "; "))
	}
}

func (s *Suite) applyExpect(t *testing.T, group *Group, idx int, result, errText string, update bool) []string {
	c := &group.Cases[idx]
	backing := s.backings[group]
	if backing == nil {
		t.Fatalf("no yaml backing for group %s", group.Name)
	}
	expectNode := ensureMapValue(backing.caseNodes[idx], "expect")

	var changes []string
	if result != c.Expect.Result {
		if update {
			c.Expect.Result = result
			setStringScalar(ensureMapValue(expectNode, "result"), result)
			changes = append(changes, fmt.Sprintf("result=%q", result))
		} else {
			t.Errorf("%v: result mismatch:\nExpected: %s\nActual:   %s", c.Args, c.Expect.Result, result)
		}
	}
	if errText != c.Expect.Error {
		if update {
			c.Expect.Error = errText
			setStringScalar(ensureMapValue(expectNode, "error"), errText)
			changes = append(changes, fmt.Sprintf("error=%q", errText))
		} else {
			t.Errorf("%v: error mismatch:\nExpected: %s\nActual:   %s", c.Args, c.Expect.Error, errText)
		}
	}
	return changes
}

func (s *Suite) persistGroup(group *Group) error {
	backing := s.backings[group]
	if backing == nil {
		return errors.Newf("no yaml backing for group %s", group.Name)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(backing.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(backing.path, buf.Bytes(), 0o644)
}

func locateCasesNode(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.MappingNode:
		if val := findMapValue(doc, "tests"); val != nil {
			if val.Kind != yaml.SequenceNode {
				return nil, errors.New("tests must be a sequence")
			}
			return val, nil
		}
		return nil, errors.New("missing 'tests' key")
	case yaml.SequenceNode:
		return doc, nil
	}
	return nil, errors.Newf("unsupported top-level yaml kind: %v", doc.Kind)
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Tag = "!!map"
		mapNode.Value = ""
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ""}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	// bracketed intervals would read back as flow sequences without quotes
	node.Style = yaml.DoubleQuotedStyle
	node.Value = val
}
