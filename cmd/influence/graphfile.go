package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/trust"
)

var errGraphFile = errors.New("influence: invalid graph file")

// graphFile is the on-disk YAML layout of a trust graph and the content item
// the commands analyze.
type graphFile struct {
	Nodes   []nodeSpec  `yaml:"nodes"`
	Edges   []edgeSpec  `yaml:"edges"`
	Content contentSpec `yaml:"content"`
}

type nodeSpec struct {
	Label      string           `yaml:"label"`
	Identity   string           `yaml:"identity"`
	State      string           `yaml:"state"`
	Attributes trust.Attributes `yaml:"attributes"`
}

type edgeSpec struct {
	From  string  `yaml:"from"`
	To    string  `yaml:"to"`
	Trust float64 `yaml:"trust"`
}

type contentSpec struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Attributes meme.Attributes `yaml:"attributes"`
}

func loadGraphFile(path string) (*trust.Graph, meme.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, meme.Content{}, err
	}
	defer f.Close()

	return loadGraph(f)
}

// loadGraph decodes a graph file. Edges refer to nodes by label; node order
// fixes NodeIDs.
func loadGraph(r io.Reader) (*trust.Graph, meme.Content, error) {
	var gf graphFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&gf); err != nil {
		return nil, meme.Content{}, fmt.Errorf("%w: %w", errGraphFile, err)
	}
	if len(gf.Nodes) == 0 {
		return nil, meme.Content{}, fmt.Errorf("%w: no nodes", errGraphFile)
	}

	g := trust.New(trust.WithCapacity(len(gf.Nodes)))
	for i, n := range gf.Nodes {
		id, err := g.AddNode(n.Label, n.Identity, n.Attributes)
		if err != nil {
			return nil, meme.Content{}, fmt.Errorf("%w: node #%d: %w", errGraphFile, i, err)
		}
		st, err := trust.ParseState(n.State)
		if err != nil {
			return nil, meme.Content{}, fmt.Errorf("%w: node %q state %q: %w", errGraphFile, n.Label, n.State, err)
		}
		if err = g.SetState(id, st); err != nil {
			return nil, meme.Content{}, err
		}
	}
	for i, e := range gf.Edges {
		u, err := g.Lookup(e.From)
		if err != nil {
			return nil, meme.Content{}, fmt.Errorf("%w: edge #%d: %w", errGraphFile, i, err)
		}
		v, err := g.Lookup(e.To)
		if err != nil {
			return nil, meme.Content{}, fmt.Errorf("%w: edge #%d: %w", errGraphFile, i, err)
		}
		if err = g.AddTrust(u, v, e.Trust); err != nil {
			return nil, meme.Content{}, fmt.Errorf("%w: edge %s-%s: %w", errGraphFile, e.From, e.To, err)
		}
	}

	opts := []meme.Option{meme.WithName(gf.Content.Name)}
	if gf.Content.ID != "" {
		opts = append(opts, meme.WithID(gf.Content.ID))
	}
	item, err := meme.New(gf.Content.Attributes, opts...)
	if err != nil {
		return nil, meme.Content{}, fmt.Errorf("%w: content: %w", errGraphFile, err)
	}

	return g, item, nil
}
