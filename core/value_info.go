package core

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ValueInfo describes a value column and its uncertainty sources.
//
// The central value comes from a single column named by Column. UncP and
// UncM map the names of contributing source columns to their
// UncertaintyType, for the positive and negative deviation band
// respectively. How multiple sources of one direction are combined is up to
// the reader of the table; this model only records them.
type ValueInfo struct {
	Column string
	UncP   map[string]UncertaintyType
	UncM   map[string]UncertaintyType
}

var valueInfoKeys = []string{"column", "unc+", "unc-", "unc"}

// ValueInfoFromJSON builds a ValueInfo from a raw JSON object.
//
// The "unc" shortcut applies one source list to both directions and must
// not be combined with the explicit "unc+"/"unc-" keys. A direction with no
// definition at all is legal but discouraged: it is logged and left as an
// empty source map. Unrecognized keys are logged and ignored.
func ValueInfoFromJSON(raw json.RawMessage) (*ValueInfo, error) {
	fields, err := objectFields("ValueInfo", raw)
	if err != nil {
		return nil, err
	}
	warnUnknownKeys("ValueInfo", fields, valueInfoKeys)

	v := &ValueInfo{
		UncP: map[string]UncertaintyType{},
		UncM: map[string]UncertaintyType{},
	}
	if err := requiredField("ValueInfo", fields, "column", &v.Column); err != nil {
		return nil, err
	}

	_, hasShortcut := fields["unc"]
	_, hasPlus := fields["unc+"]
	_, hasMinus := fields["unc-"]
	if hasShortcut && (hasPlus || hasMinus) {
		return nil, fmt.Errorf("%w: value %s specifies both unc and unc+/unc-", ErrInvalidValue, v.Column)
	}

	for _, dir := range []struct {
		key string
		dst *map[string]UncertaintyType
	}{
		{"unc+", &v.UncP},
		{"unc-", &v.UncM},
	} {
		raw, ok := fields[dir.key]
		if !ok {
			raw, ok = fields["unc"]
		}
		if !ok {
			logger.Warnf("uncertainty (%s) missing for %s", dir.key, v.Column)
			continue
		}

		sources, err := uncertaintySourcesFromJSON(dir.key, v.Column, raw)
		if err != nil {
			return nil, err
		}
		*dir.dst = sources
	}

	if len(v.UncP) == 0 || len(v.UncM) == 0 {
		logger.Warnf("value %s lacks uncertainties", v.Column)
	}

	return v, nil
}

// uncertaintySourcesFromJSON decodes one direction's source list, a JSON
// array of {"column": ..., "type": ...} objects.
func uncertaintySourcesFromJSON(key, value string, raw json.RawMessage) (map[string]UncertaintyType, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s of %s is not a list: %s", ErrInvalidData, key, value, err)
	}

	sources := make(map[string]UncertaintyType, len(entries))
	for _, entry := range entries {
		fields, err := objectFields(key, entry)
		if err != nil {
			return nil, err
		}

		var column string
		var typ UncertaintyType
		if err := requiredField(key, fields, "column", &column); err != nil {
			return nil, err
		}
		if err := requiredField(key, fields, "type", &typ); err != nil {
			return nil, err
		}
		sources[column] = typ
	}
	return sources, nil
}

type uncertaintySourcePersistent struct {
	Column string          `json:"column"`
	Type   UncertaintyType `json:"type"`
}

type valueInfoPersistent struct {
	Column string                        `json:"column"`
	UncP   []uncertaintySourcePersistent `json:"unc+,omitempty"`
	UncM   []uncertaintySourcePersistent `json:"unc-,omitempty"`
}

// MarshalJSON emits the source lists ordered by column name and omits empty
// directions.
func (v *ValueInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(&valueInfoPersistent{
		Column: v.Column,
		UncP:   sortedSources(v.UncP),
		UncM:   sortedSources(v.UncM),
	})
}

func sortedSources(sources map[string]UncertaintyType) []uncertaintySourcePersistent {
	out := make([]uncertaintySourcePersistent, 0, len(sources))
	for column, typ := range sources {
		out = append(out, uncertaintySourcePersistent{Column: column, Type: typ})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Column < out[j].Column })
	return out
}

// Validate checks the content.
func (v *ValueInfo) Validate() error {
	if v.Column == "" {
		return fmt.Errorf("%w: ValueInfo.column is missing", ErrInvalidValue)
	}
	for _, dir := range []struct {
		key     string
		sources map[string]UncertaintyType
	}{
		{"unc+", v.UncP},
		{"unc-", v.UncM},
	} {
		for column, typ := range dir.sources {
			if column == "" {
				return fmt.Errorf("%w: value %s: %s has an unnamed source column", ErrInvalidValue, v.Column, dir.key)
			}
			if !typ.valid() {
				return fmt.Errorf("%w: value %s: %s has wrong type: %q", ErrInvalidValue, v.Column, dir.key, typ)
			}
		}
	}
	return nil
}
