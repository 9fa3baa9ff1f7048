package types_test

import (
	"encoding/json"
	"taskly/shared/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolInt_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    bool
		wantErr bool
	}{
		{name: "int64 one", src: int64(1), want: true},
		{name: "int64 zero", src: int64(0), want: false},
		{name: "native bool true", src: true, want: true},
		{name: "native bool false", src: false, want: false},
		{name: "nil is false", src: nil, want: false},
		{name: "bytes one", src: []byte("1"), want: true},
		{name: "bytes zero", src: []byte("0"), want: false},
		{name: "unsupported type", src: 3.14, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b types.BoolInt
			err := b.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, b.Bool())
		})
	}
}

func TestBoolInt_Value(t *testing.T) {
	v, err := types.BoolInt(true).Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = types.BoolInt(false).Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestBoolInt_JSON(t *testing.T) {
	data, err := json.Marshal(types.BoolInt(true))
	assert.NoError(t, err)
	assert.Equal(t, "true", string(data))

	data, err = json.Marshal(types.BoolInt(false))
	assert.NoError(t, err)
	assert.Equal(t, "false", string(data))

	var b types.BoolInt
	assert.NoError(t, json.Unmarshal([]byte("true"), &b))
	assert.True(t, b.Bool())

	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &b))
}
