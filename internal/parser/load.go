package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/aidemo/internal/corpus"
)

// ErrUnsupported is returned for file types no parser handles.
var ErrUnsupported = errors.New("unsupported file extension")

// LoadCorpus parses the document at path and renders it as a corpus.
func LoadCorpus(path string, opts Options) (corpus.Corpus, error) {
	p, err := ForFile(path, opts)
	if err != nil {
		return corpus.Corpus{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	tree, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return corpus.Corpus{}, fmt.Errorf("parse corpus %s: %w", filepath.Base(path), err)
	}

	if tree.NodeCount() == 0 {
		return corpus.Corpus{}, fmt.Errorf("corpus %s has no text", filepath.Base(path))
	}
	return corpus.FromTree(tree), nil
}
