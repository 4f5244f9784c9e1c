package script

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseMetaData(t *testing.T) {
	tests := []struct {
		name      string
		record    string
		entity    string
		character int32
		start     bool
		end       bool
		wantErr   error
	}{
		{name: "empty", record: "", character: NoCharacter},
		{name: "member", record: "-1_door_01", entity: "door_01", character: NoCharacter},
		{name: "start", record: "start_5_door_01", entity: "door_01", character: 5, start: true},
		{name: "end", record: "end_-1_cloud", entity: "cloud", character: NoCharacter, end: true},
		{name: "start and end", record: "start_end_0_tifa", entity: "tifa", character: 0, start: true, end: true},
		{name: "entity named end", record: "3_end", entity: "end", character: 3},
		{name: "missing entity", record: "start_7", entity: "", character: 7, start: true},
		{name: "only markers", record: "start_end", wantErr: ErrBadRecord},
		{name: "bad id", record: "start_x_door", wantErr: ErrBadCharacter},
		{name: "below sentinel", record: "-2_door", wantErr: ErrBadCharacter},
		{name: "overflow", record: "4294967296_door", wantErr: ErrBadCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := ParseMetaData(tt.record)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMetaData(%q) error = %v, want %v", tt.record, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMetaData(%q) unexpected error: %v", tt.record, err)
			}
			if md.EntityName() != tt.entity {
				t.Errorf("EntityName = %q, want %q", md.EntityName(), tt.entity)
			}
			if md.CharacterID() != tt.character {
				t.Errorf("CharacterID = %d, want %d", md.CharacterID(), tt.character)
			}
			if md.IsStart() != tt.start || md.IsEnd() != tt.end {
				t.Errorf("flags = (%v,%v), want (%v,%v)", md.IsStart(), md.IsEnd(), tt.start, tt.end)
			}
		})
	}
}

func TestMetaDataNormalizesEntityName(t *testing.T) {
	// "e" followed by a combining acute accent composes to U+00E9.
	md, err := ParseMetaData("start_-1_cafe\u0301")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md.EntityName() != "caf\u00e9" {
		t.Fatalf("EntityName = %q, want NFC form", md.EntityName())
	}
}

func TestFunctionMetaOnNil(t *testing.T) {
	var fn *Function
	md, err := fn.Meta()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md.IsStart() || md.IsEnd() || md.HasCharacter() {
		t.Fatalf("nil function should yield the zero view, got %+v", md)
	}
}

func TestProperty_MetaDataRecordRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("encoded records parse back to the same view", prop.ForAll(
		func(entity string, id int32, start, end bool) bool {
			record := FormatMetaData(entity, id, start, end)
			md, err := ParseMetaData(record)
			if err != nil {
				return false
			}
			return md.EntityName() == entity &&
				md.CharacterID() == id &&
				md.IsStart() == start &&
				md.IsEnd() == end &&
				md.String() == record
		},
		gen.Identifier(),
		gen.Int32Range(-1, 4096),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
