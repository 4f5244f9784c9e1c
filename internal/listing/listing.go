// Package listing reads and writes the function listings a generation run
// consumes: the decompiled functions of one field script in stream order.
package listing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"

	"fieldgen/internal/script"
)

// Format selects the on-disk encoding of a listing.
type Format uint8

const (
	FormatTOML    Format = iota + 1 // hand-editable, *.toml
	FormatMsgpack                   // compact, *.fnpack
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatMsgpack:
		return "fnpack"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned for paths whose extension names no format.
var ErrUnknownFormat = errors.New("unknown listing format")

// ErrEmptyListing is returned for a listing without functions.
var ErrEmptyListing = errors.New("listing has no functions")

// Listing is one field script's function stream.
type Listing struct {
	Source    string           `toml:"source" msgpack:"source"`
	Functions []FunctionRecord `toml:"function" msgpack:"functions"`
}

// FunctionRecord is the serialised form of script.Function.
type FunctionRecord struct {
	Name     string   `toml:"name" msgpack:"name"`
	Metadata string   `toml:"metadata" msgpack:"metadata"`
	Body     []string `toml:"body" msgpack:"body"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".fnpack", ".msgpack":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads a listing, returning its raw bytes as well so callers can hash
// them.
func Load(path string) (*Listing, []byte, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	l, err := Decode(data, format)
	if err != nil {
		return nil, data, fmt.Errorf("%s: %w", path, err)
	}
	if l.Source == "" {
		l.Source = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l, data, nil
}

// Decode parses a listing in the given format.
func Decode(data []byte, format Format) (*Listing, error) {
	var l Listing
	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(data), &l)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode fnpack: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Encode writes l in the given format.
func Encode(w io.Writer, l *Listing, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(l)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(l)
	default:
		return ErrUnknownFormat
	}
}

func (l *Listing) validate() error {
	if len(l.Functions) == 0 {
		return ErrEmptyListing
	}
	for i, fn := range l.Functions {
		if strings.TrimSpace(fn.Name) == "" {
			return fmt.Errorf("function #%d has no name", i)
		}
	}
	return nil
}

// Funcs converts the records into the stream handed to code generation.
func (l *Listing) Funcs() []*script.Function {
	out := make([]*script.Function, len(l.Functions))
	for i, rec := range l.Functions {
		out[i] = &script.Function{
			Name:     rec.Name,
			Metadata: rec.Metadata,
			Body:     rec.Body,
		}
	}
	return out
}
