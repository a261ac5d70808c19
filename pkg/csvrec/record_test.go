package csvrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_GetAndHas(t *testing.T) {
	rec := Record{"Place": "Oxford", "Bells": "10"}

	assert.Equal(t, "Oxford", rec.Get("Place"))
	assert.Equal(t, "", rec.Get("County"))
	assert.True(t, rec.Has("Bells"))
	assert.False(t, rec.Has("County"))
}

func TestRecord_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want bool
	}{
		{"identical", Record{"a": "1", "b": "2"}, Record{"a": "1", "b": "2"}, true},
		{"empty", Record{}, Record{}, true},
		{"different value", Record{"a": "1"}, Record{"a": "2"}, false},
		{"different key", Record{"a": "1"}, Record{"b": "1"}, false},
		{"subset", Record{"a": "1"}, Record{"a": "1", "b": "2"}, false},
		{"superset", Record{"a": "1", "b": "2"}, Record{"a": "1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a), "Equal must be symmetric")
		})
	}
}

func TestRecordSet_Len(t *testing.T) {
	assert.Equal(t, 0, RecordSet{}.Len())

	set := RecordSet{
		Fields:  []string{"a"},
		Records: []Record{{"a": "1"}, {"a": "2"}},
	}
	assert.Equal(t, 2, set.Len())
}

func TestRecordSet_Equal(t *testing.T) {
	base := RecordSet{
		Fields:  []string{"a", "b"},
		Records: []Record{{"a": "1", "b": "2"}, {"a": "3", "b": "4"}},
	}

	tests := []struct {
		name  string
		other RecordSet
		want  bool
	}{
		{
			"identical",
			RecordSet{
				Fields:  []string{"a", "b"},
				Records: []Record{{"a": "1", "b": "2"}, {"a": "3", "b": "4"}},
			},
			true,
		},
		{
			"field order differs",
			RecordSet{
				Fields:  []string{"b", "a"},
				Records: []Record{{"a": "1", "b": "2"}, {"a": "3", "b": "4"}},
			},
			false,
		},
		{
			"record order differs",
			RecordSet{
				Fields:  []string{"a", "b"},
				Records: []Record{{"a": "3", "b": "4"}, {"a": "1", "b": "2"}},
			},
			false,
		},
		{
			"fewer records",
			RecordSet{
				Fields:  []string{"a", "b"},
				Records: []Record{{"a": "1", "b": "2"}},
			},
			false,
		},
		{"empty", RecordSet{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
			assert.Equal(t, tt.want, tt.other.Equal(base), "Equal must be symmetric")
		})
	}

	assert.True(t, RecordSet{}.Equal(RecordSet{}))
}
