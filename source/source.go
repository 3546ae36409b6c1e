// Package source resolves the raw document text from a named file or from
// standard input. Whether stdin is interactive is decided up front, before
// any blocking read: an interactive terminal is never read from.
package source

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/minios-linux/mdtranslate/clierr"
)

// Kind tags the capability of an input source.
type Kind int

const (
	// KindFile reads a named file.
	KindFile Kind = iota
	// KindInteractiveStream is a terminal-attached stream; reading it
	// would block on the user, so resolution fails with a usage error.
	KindInteractiveStream
	// KindNonInteractiveStream is a pipe or redirect, read to EOF.
	KindNonInteractiveStream
)

// Source is the capability-tagged input. Exactly one of Path or Stream is
// meaningful, depending on Kind.
type Source struct {
	Kind   Kind
	Path   string
	Stream io.Reader
}

// Detect classifies the input for an optional file path. When no path is
// given, the stream's terminal status decides between the interactive and
// non-interactive kinds.
func Detect(path string, stream *os.File) Source {
	if path != "" {
		return Source{Kind: KindFile, Path: path}
	}
	fd := stream.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return Source{Kind: KindInteractiveStream, Stream: stream}
	}
	return Source{Kind: KindNonInteractiveStream, Stream: stream}
}

// Read resolves the source to its UTF-8 text. The empty-after-trim check
// happens here, once, for every kind.
func Read(src Source) (string, error) {
	var text string

	switch src.Kind {
	case KindFile:
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return "", &clierr.InputRead{Path: src.Path, Err: err}
		}
		text = string(data)

	case KindInteractiveStream:
		return "", &clierr.Usage{
			Reason: "no input file given and standard input is a terminal; pass a file path or pipe a document in",
		}

	case KindNonInteractiveStream:
		data, err := io.ReadAll(src.Stream)
		if err != nil {
			return "", &clierr.InputRead{Err: err}
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return "", &clierr.EmptyInput{}
	}
	return text, nil
}

// Resolve is the whole input pipeline: classify, then read.
func Resolve(path string, stream *os.File) (string, error) {
	return Read(Detect(path, stream))
}
