package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// NoCharacter marks an entity that is not bound to a character.
const NoCharacter int32 = -1

const (
	startMarker = "start"
	endMarker   = "end"
	separator   = "_"
)

var (
	// ErrBadRecord reports a metadata record without a character id.
	ErrBadRecord = errors.New("malformed metadata record")
	// ErrBadCharacter reports a character id that is not an int32 >= -1.
	ErrBadCharacter = errors.New("invalid character id")
)

// MetaData is a read-only view over a function's metadata record.
//
// Wire form: [start_][end_]<characterId>_<entityName>. The entity name is
// the remainder of the record and may contain underscores.
type MetaData struct {
	entityName  string
	characterID int32
	start       bool
	end         bool
}

// NewMetaData builds a view directly, mostly for callers that already hold
// the decoded fields.
func NewMetaData(entity string, characterID int32, start, end bool) MetaData {
	return MetaData{
		entityName:  norm.NFC.String(entity),
		characterID: characterID,
		start:       start,
		end:         end,
	}
}

// ParseMetaData decodes a metadata record.
func ParseMetaData(record string) (MetaData, error) {
	md := MetaData{characterID: NoCharacter}
	record = strings.TrimSpace(record)
	if record == "" {
		return md, nil
	}

	parts := strings.Split(record, separator)
	if parts[0] == startMarker {
		md.start = true
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[0] == endMarker {
		md.end = true
		parts = parts[1:]
	}
	if len(parts) == 0 || parts[0] == "" {
		return MetaData{characterID: NoCharacter}, fmt.Errorf("%w: %q", ErrBadRecord, record)
	}

	id, err := parseCharacterID(parts[0])
	if err != nil {
		return MetaData{characterID: NoCharacter}, fmt.Errorf("%q: %w", record, err)
	}
	md.characterID = id
	md.entityName = norm.NFC.String(strings.Join(parts[1:], separator))
	return md, nil
}

func parseCharacterID(s string) (int32, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NoCharacter, fmt.Errorf("%w: %q", ErrBadCharacter, s)
	}
	if raw < int64(NoCharacter) {
		return NoCharacter, fmt.Errorf("%w: %d", ErrBadCharacter, raw)
	}
	id, err := safecast.Conv[int32](raw)
	if err != nil {
		return NoCharacter, fmt.Errorf("%w: %d", ErrBadCharacter, raw)
	}
	return id, nil
}

// EntityName returns the owning entity, empty when the function is not
// entity scoped.
func (m MetaData) EntityName() string { return m.entityName }

// CharacterID returns the bound character or NoCharacter.
func (m MetaData) CharacterID() int32 { return m.characterID }

// HasCharacter reports whether the entity is bound to a character.
func (m MetaData) HasCharacter() bool { return m.characterID != NoCharacter }

// IsStart is true for the first function of an entity.
func (m MetaData) IsStart() bool { return m.start }

// IsEnd is true for the last function of an entity.
func (m MetaData) IsEnd() bool { return m.end }

// String re-encodes the view into its wire form.
func (m MetaData) String() string {
	return FormatMetaData(m.entityName, m.characterID, m.start, m.end)
}

// FormatMetaData encodes metadata fields into a record.
func FormatMetaData(entity string, characterID int32, start, end bool) string {
	var sb strings.Builder
	if start {
		sb.WriteString(startMarker + separator)
	}
	if end {
		sb.WriteString(endMarker + separator)
	}
	sb.WriteString(strconv.FormatInt(int64(characterID), 10))
	sb.WriteString(separator)
	sb.WriteString(entity)
	return sb.String()
}
