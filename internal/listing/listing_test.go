package listing

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const doorTOML = `
source = "md1stin"

[[function]]
name = "init"
metadata = "start_5_door_01"
body = ["self.open = false"]

[[function]]
name = "main"
metadata = "end_5_door_01"
body = []
`

func TestDecodeTOML(t *testing.T) {
	l, err := Decode([]byte(doorTOML), FormatTOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if l.Source != "md1stin" || len(l.Functions) != 2 {
		t.Fatalf("listing = %+v", l)
	}
	funcs := l.Funcs()
	if funcs[0].Name != "init" || funcs[0].Metadata != "start_5_door_01" || funcs[0].Body[0] != "self.open = false" {
		t.Fatalf("first function = %+v", funcs[0])
	}
	md, err := funcs[1].Meta()
	if err != nil || !md.IsEnd() || md.EntityName() != "door_01" {
		t.Fatalf("second function metadata = %+v, %v", md, err)
	}
}

func TestPackPreservesListing(t *testing.T) {
	src, err := Decode([]byte(doorTOML), FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatMsgpack); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	packed, err := Decode(buf.Bytes(), FormatMsgpack)
	if err != nil {
		t.Fatalf("Decode fnpack: %v", err)
	}
	if !reflect.DeepEqual(src.Funcs()[0], packed.Funcs()[0]) || packed.Source != src.Source {
		t.Fatalf("packed listing differs: %+v vs %+v", packed, src)
	}
}

func TestDecodeRejectsNamelessFunction(t *testing.T) {
	_, err := Decode([]byte("[[function]]\nmetadata = \"-1_x\"\n"), FormatTOML)
	if err == nil || !strings.Contains(err.Error(), "function #0 has no name") {
		t.Fatalf("err = %v", err)
	}
}

func TestDecodeRejectsEmptyListing(t *testing.T) {
	var packed bytes.Buffer
	if err := Encode(&packed, &Listing{Source: "blank"}, FormatMsgpack); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		format Format
		data   []byte
	}{
		{FormatTOML, []byte("source = \"blank\"\n")},
		{FormatMsgpack, packed.Bytes()},
	}
	for _, tt := range tests {
		if _, err := Decode(tt.data, tt.format); !errors.Is(err, ErrEmptyListing) {
			t.Errorf("%s: err = %v, want ErrEmptyListing", tt.format, err)
		}
	}
}

func TestDecodeRejectsManifestTables(t *testing.T) {
	manifest := "[output]\ndir = \"out\"\n\n[generate]\njobs = 2\n"
	_, err := Decode([]byte(manifest), FormatTOML)
	if err == nil || !strings.Contains(err.Error(), "unknown keys") || !strings.Contains(err.Error(), "output") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadDefaultsSourceToBasename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ancnt1.toml")
	if err := os.WriteFile(path, []byte("[[function]]\nname = \"boot\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, raw, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Source != "ancnt1" || len(raw) == 0 {
		t.Fatalf("Source = %q, raw %d bytes", l.Source, len(raw))
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":    FormatTOML,
		"b.FNPACK":  FormatMsgpack,
		"c.msgpack": FormatMsgpack,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %v, %v", path, got, err)
		}
	}
	if _, err := FormatFromPath("d.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("json should be unknown, got %v", err)
	}
}
